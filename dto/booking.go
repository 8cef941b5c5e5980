package dto

import "time"

// CreateBookingRequest là DTO cho request đặt chỗ. Listing được truyền
// tường minh theo ID, không dựa vào state điều hướng phía client.
type CreateBookingRequest struct {
	UserID       uint   `json:"userId"`
	ListingID    uint   `json:"listingId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required,stay_date"`
	CheckOutDate string `json:"checkOutDate" binding:"required,stay_date"`
	Guests       int    `json:"guests" binding:"required,gte=1,lte=10"`
	GuestName    string `json:"guestName,omitempty"`
	GuestEmail   string `json:"guestEmail,omitempty"`
	GuestPhone   string `json:"guestPhone,omitempty"`
}

// UpdateBookingStatusRequest là DTO cho request cập nhật trạng thái booking
type UpdateBookingStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// BookingListingResponse là thông tin listing gắn trong response booking
type BookingListingResponse struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

// BookingResponse là DTO cho response của booking
type BookingResponse struct {
	ID           uint                   `json:"id"`
	User         ActorResponse          `json:"user"`
	Listing      BookingListingResponse `json:"listing"`
	CheckInDate  string                 `json:"checkInDate"`
	CheckOutDate string                 `json:"checkOutDate"`
	Guests       int                    `json:"guests"`
	Status       int                    `json:"status"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
	NightlyRate  float64                `json:"nightlyRate"`
	Nights       int                    `json:"nights"`
	TotalPrice   float64                `json:"totalPrice"`
}
