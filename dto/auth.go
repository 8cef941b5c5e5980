package dto

import "time"

// LoginInput là DTO cho request đăng nhập
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // Email hoặc số điện thoại
	Password   string `json:"password" binding:"required"`
}

// RegisterInput là DTO cho request đăng ký
type RegisterInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber"`
}

// GoogleAuthInput là DTO cho request đăng nhập Google
type GoogleAuthInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UserLoginResponse là DTO cho thông tin user sau khi đăng nhập
type UserLoginResponse struct {
	UserID       uint      `json:"userId"`
	UserName     string    `json:"userName"`
	UserEmail    string    `json:"userEmail"`
	UserVerified bool      `json:"userVerified"`
	UserPhone    string    `json:"userPhone"`
	UserRole     int       `json:"userRole"`
	UserAvatar   string    `json:"userAvatar"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
