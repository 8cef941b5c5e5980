package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Listing struct {
	ID          uint           `json:"id" gorm:"primaryKey"` // ID cho listing
	UserID      uint           `json:"userId"`               // ID của host
	User        User           `json:"user" gorm:"foreignKey:UserID"`
	Title       string         `json:"title" gorm:"not null"` // Tiêu đề listing
	Description string         `json:"description"`           // Mô tả chi tiết
	Price       float64        `json:"price"`                 // Giá mỗi đêm
	ImageURL    string         `json:"imageUrl"`              // Ảnh đại diện
	Location    string         `json:"location"`              // Vị trí, ví dụ "Aspen, CO"
	City        string         `json:"city"`
	Country     string         `json:"country"`
	Rating      float64        `json:"rating"`
	Reviews     int            `json:"reviews"`
	Bedrooms    int            `json:"bedrooms"`
	Bathrooms   int            `json:"bathrooms"`
	Amenities   pq.StringArray `json:"amenities" gorm:"type:text[]"` // Danh sách tiện ích
	Superhost   bool           `json:"superhost"`
	Status      int            `json:"status"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Statuses    []ListingStatus `json:"statuses" gorm:"foreignKey:ListingID"` // Danh sách khoảng ngày bị giữ
}

func (l *Listing) ValidatePrice() error {
	if l.Price < 0 {
		return fmt.Errorf("invalid Price: %f, must not be negative", l.Price)
	}
	return nil
}

func (l *Listing) ValidateStatus() error {
	if l.Status < 0 || l.Status > 2 {
		return fmt.Errorf("invalid Status: %d, must be between 0 and 2", l.Status)
	}
	return nil
}
