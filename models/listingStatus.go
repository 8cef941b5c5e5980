package models

import "time"

// ListingStatus giữ khoảng ngày mà listing không còn trống (đã đặt hoặc bảo trì)
type ListingStatus struct {
	ID        uint      `gorm:"primaryKey"`
	ListingID uint      `gorm:"index"`
	FromDate  time.Time `gorm:"index"`
	ToDate    time.Time `gorm:"index"`
	Status    int
	CreatedAt time.Time
	UpdatedAt time.Time
}
