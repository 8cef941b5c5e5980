package validator

import (
	"regexp"
	"time"

	"staybnb/errors"
	"staybnb/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// RegisterCustomValidations đăng ký rule binding bổ sung cho gin
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.NewAppError(errors.ErrCodeValidation, "Không lấy được validator engine", nil)
	}

	// stay_date: chuỗi ngày dạng YYYY-MM-DD và parse được
	return v.RegisterValidation("stay_date", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if !dateRegex.MatchString(value) {
			return false
		}
		_, err := time.Parse("2006-01-02", value)
		return err == nil
	})
}

// ValidateListing validate thông tin listing
func ValidateListing(listing *models.Listing) error {
	if listing.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tiêu đề không được để trống", nil)
	}

	if listing.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá không được âm", nil)
	}

	if listing.Location == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Vị trí không được để trống", nil)
	}

	if listing.Rating < 0 || listing.Rating > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Rating phải nằm trong khoảng 0-5", nil)
	}

	return nil
}

// ValidateBookingDates validate chuỗi ngày của booking trước khi parse
func ValidateBookingDates(checkInDate, checkOutDate string) error {
	checkIn, err := time.Parse("2006-01-02", checkInDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày nhận phòng không hợp lệ", err)
	}

	checkOut, err := time.Parse("2006-01-02", checkOutDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày trả phòng không hợp lệ", err)
	}

	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	return nil
}
