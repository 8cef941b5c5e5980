package models

import (
	"time"
)

type Booking struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       *uint     `json:"userId"`
	User         *User     `json:"user" gorm:"foreignKey:UserID"`
	ListingID    uint      `json:"listingId"`
	Listing      Listing   `json:"listing" gorm:"foreignKey:ListingID"`
	CheckInDate  string    `json:"checkInDate"`
	CheckOutDate string    `json:"checkOutDate"`
	Guests       int       `json:"guests"`
	Status       int       `json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	GuestName    string    `json:"guestName,omitempty"`
	GuestEmail   string    `json:"guestEmail,omitempty"`
	GuestPhone   string    `json:"guestPhone,omitempty"`
	NightlyRate  float64   `json:"nightlyRate"` // Giá mỗi đêm tại thời điểm đặt
	Nights       int       `json:"nights"`      // Số đêm (làm tròn lên)
	TotalPrice   float64   `json:"totalPrice"`  // Tổng giá = Nights * NightlyRate
}
