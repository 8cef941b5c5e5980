package models

import (
	"time"
)

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string    `gorm:"default:New User" json:"name"`
	Email         string    `gorm:"unique" json:"email"`
	Password      string    `json:"password"`
	IsVerified    bool      `gorm:"default:false" json:"is_verified"`
	Code          string    `json:"code"`
	CodeCreatedAt time.Time `gorm:"autoCreateTime" json:"codeCreatedAt"`
	PhoneNumber   string    `gorm:"type:varchar(11)" json:"phoneNumber"`
	Avatar        string    `json:"avatar"`
	GoogleID      string    `json:"googleId,omitempty"`
	Role          int       `gorm:"default:0" json:"role"` // 0: khách, 1: host, 2: admin
	Status        int       `gorm:"default:0" json:"status"`
	Listings      []Listing `json:"listings,omitempty" gorm:"foreignKey:UserID"`
	Bookings      []Booking `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
}
