package models

import "time"

// PaymentAttempt là một lần gửi form thanh toán cho một booking.
// Mỗi lần thử là một instance mới; instance đã Succeeded hoặc Cancelled
// không được dùng lại.
type PaymentAttempt struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	BookingID  uint      `json:"bookingId" gorm:"index"`
	Booking    Booking   `json:"booking" gorm:"foreignKey:BookingID"`
	CardName   string    `json:"cardName"`
	CardLast4  string    `json:"cardLast4"` // Chỉ lưu 4 số cuối, không lưu số thẻ đầy đủ
	Amount     float64   `json:"amount"`
	State      int       `json:"state"`
	FailReason string    `json:"failReason,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
