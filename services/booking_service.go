package services

import (
	"errors"
	"time"

	"staybnb/commands"
	"staybnb/constants"
	"staybnb/models"

	"gorm.io/gorm"
)

// BookingStore là phần persistence mà BookingService cần đến. Tách
// interface để test vòng đời booking (đặc biệt là hủy + nhả hold)
// không cần DB thật.
type BookingStore interface {
	SaveBooking(booking *models.Booking) error
	HasOverlappingHold(listingID uint, checkIn, checkOut time.Time) (bool, error)
	CreateHold(listingID uint, checkIn, checkOut time.Time) error
	ReleaseHold(listingID uint, checkIn, checkOut time.Time) error
}

// GormBookingStore là BookingStore chạy trên gorm
type GormBookingStore struct {
	db *gorm.DB
}

func NewGormBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{db: db}
}

func (s *GormBookingStore) SaveBooking(booking *models.Booking) error {
	return commands.NewUpdateBookingCommand(booking, s.db).Execute()
}

func (s *GormBookingStore) HasOverlappingHold(listingID uint, checkIn, checkOut time.Time) (bool, error) {
	var holds []models.ListingStatus
	err := s.db.Where("listing_id = ? AND status = ? AND from_date < ? AND to_date > ?",
		listingID, constants.ListingStatusBooked, checkOut, checkIn).Find(&holds).Error
	if err != nil {
		return false, err
	}
	return len(holds) > 0, nil
}

func (s *GormBookingStore) CreateHold(listingID uint, checkIn, checkOut time.Time) error {
	hold := models.ListingStatus{
		ListingID: listingID,
		Status:    constants.ListingStatusBooked,
		FromDate:  checkIn,
		ToDate:    checkOut,
	}
	return s.db.Create(&hold).Error
}

func (s *GormBookingStore) ReleaseHold(listingID uint, checkIn, checkOut time.Time) error {
	return s.db.Where("listing_id = ? AND from_date = ? AND to_date = ?",
		listingID, checkIn, checkOut).
		Delete(&models.ListingStatus{}).Error
}

// BookingService xử lý logic liên quan đến booking
type BookingService struct {
	db    *gorm.DB
	store BookingStore
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db, store: NewGormBookingStore(db)}
}

// Validate kiểm tra tính hợp lệ của booking
func (s *BookingService) Validate(booking *models.Booking) error {
	if booking.ListingID == 0 {
		return errors.New("listing ID is required")
	}
	if booking.UserID == nil && booking.GuestEmail == "" {
		return errors.New("a user or guest contact is required")
	}

	checkIn, err := time.Parse("2006-01-02", booking.CheckInDate)
	if err != nil {
		return errors.New("invalid check-in date")
	}
	checkOut, err := time.Parse("2006-01-02", booking.CheckOutDate)
	if err != nil {
		return errors.New("invalid check-out date")
	}
	return ValidateStayRange(checkIn, checkOut, time.Now())
}

// Create tạo booking mới
func (s *BookingService) Create(booking *models.Booking) error {
	return s.db.Create(booking).Error
}

// GetByID lấy booking theo ID
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Listing").First(&booking, bookingID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// Confirm xác nhận booking
func (s *BookingService) Confirm(booking *models.Booking) error {
	state := models.GetBookingState(booking.Status)
	if err := state.Confirm(booking); err != nil {
		return err
	}
	return s.store.SaveBooking(booking)
}

// Cancel hủy booking và nhả khoảng ngày đang giữ: listing phải đặt lại
// được ngay sau khi hủy.
func (s *BookingService) Cancel(booking *models.Booking) error {
	state := models.GetBookingState(booking.Status)
	if err := state.Cancel(booking); err != nil {
		return err
	}
	if err := s.store.SaveBooking(booking); err != nil {
		return err
	}
	return s.ReleaseHold(booking)
}

// Complete hoàn thành booking
func (s *BookingService) Complete(booking *models.Booking) error {
	state := models.GetBookingState(booking.Status)
	if err := state.Complete(booking); err != nil {
		return err
	}
	return s.store.SaveBooking(booking)
}

// HasOverlappingHold kiểm tra listing có bị giữ trong khoảng ngày không
func (s *BookingService) HasOverlappingHold(listingID uint, checkIn, checkOut time.Time) (bool, error) {
	return s.store.HasOverlappingHold(listingID, checkIn, checkOut)
}

// CreateHold giữ khoảng ngày cho listing sau khi tạo booking
func (s *BookingService) CreateHold(listingID uint, checkIn, checkOut time.Time) error {
	return s.store.CreateHold(listingID, checkIn, checkOut)
}

// ReleaseHold nhả khoảng ngày đang giữ của booking
func (s *BookingService) ReleaseHold(booking *models.Booking) error {
	checkIn, err := time.Parse("2006-01-02", booking.CheckInDate)
	if err != nil {
		return err
	}
	checkOut, err := time.Parse("2006-01-02", booking.CheckOutDate)
	if err != nil {
		return err
	}
	return s.store.ReleaseHold(booking.ListingID, checkIn, checkOut)
}
