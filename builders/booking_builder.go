package builders

import (
	"staybnb/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithUser thêm thông tin user
func (b *BookingBuilder) WithUser(userID *uint) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

// WithListing thêm thông tin listing
func (b *BookingBuilder) WithListing(listingID uint) *BookingBuilder {
	b.booking.ListingID = listingID
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status int) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithGuestInfo thêm thông tin khách
func (b *BookingBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *BookingBuilder {
	b.booking.GuestName = guestName
	b.booking.GuestPhone = guestPhone
	b.booking.GuestEmail = guestEmail
	return b
}

// WithStay thêm khoảng ngày và số khách
func (b *BookingBuilder) WithStay(checkIn, checkOut string, guests int) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	b.booking.Guests = guests
	return b
}

// WithPricing thêm giá mỗi đêm, số đêm và tổng giá
func (b *BookingBuilder) WithPricing(nightlyRate float64, nights int, totalPrice float64) *BookingBuilder {
	b.booking.NightlyRate = nightlyRate
	b.booking.Nights = nights
	b.booking.TotalPrice = totalPrice
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
