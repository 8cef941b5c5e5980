package services

import (
	"math"
	"time"

	"staybnb/errors"
)

const hoursPerNight = 24

// CountNights đếm số đêm giữa check-in và check-out, làm tròn LÊN theo
// ngày: chênh lệch lẻ (ví dụ còn giờ trong ngày) luôn tính thành một đêm
// trọn. 2.5 ngày -> 3 đêm.
func CountNights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / hoursPerNight))
}

// ComputeTotal tính tổng giá = số đêm * giá mỗi đêm. Hàm thuần, không
// kiểm tra thứ tự ngày: caller phải gọi ValidateStayRange trước, nếu
// không tổng có thể ra số không dương.
func ComputeTotal(checkIn, checkOut time.Time, nightlyRate float64) float64 {
	return float64(CountNights(checkIn, checkOut)) * nightlyRate
}

// ValidateStayRange là điều kiện tiên quyết tường minh cho ComputeTotal:
// check-out phải sau check-in và check-in không nằm trong quá khứ
// (so theo ngày, không so theo giờ).
func ValidateStayRange(checkIn, checkOut, now time.Time) error {
	if !checkOut.After(checkIn) {
		return errors.ErrInvalidDateRange
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	checkInDay := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	if checkInDay.Before(today) {
		return errors.ErrCheckInPast
	}
	return nil
}
