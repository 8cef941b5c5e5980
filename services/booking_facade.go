package services

import (
	"staybnb/constants"
	"staybnb/models"

	"gorm.io/gorm"
)

// BookingFacade đơn giản hóa việc tương tác giữa booking, thanh toán và
// thông báo cho tầng controller.
type BookingFacade struct {
	bookingService *BookingService
	processor      *PaymentProcessor
}

// NewBookingFacade tạo instance mới của BookingFacade
func NewBookingFacade(db *gorm.DB, gateway PaymentGateway, notifier PaymentNotifier) *BookingFacade {
	bookingService := NewBookingService(db)
	return &BookingFacade{
		bookingService: bookingService,
		processor: NewPaymentProcessor(PaymentProcessorOptions{
			Store:    NewGormPaymentStore(db),
			Gateway:  gateway,
			Notifier: notifier,
		}),
	}
}

func (f *BookingFacade) Bookings() *BookingService {
	return f.bookingService
}

func (f *BookingFacade) Payments() *PaymentProcessor {
	return f.processor
}

// GormPaymentStore là PaymentStore chạy trên gorm
type GormPaymentStore struct {
	db *gorm.DB
}

func NewGormPaymentStore(db *gorm.DB) *GormPaymentStore {
	return &GormPaymentStore{db: db}
}

func (s *GormPaymentStore) SaveAttempt(attempt *models.PaymentAttempt) error {
	return s.db.Save(attempt).Error
}

// ClaimProcessing giành quyền chuyển Editing -> Processing bằng một
// UPDATE có điều kiện: request thứ hai trên cùng row thấy state đã đổi
// và không update được dòng nào.
func (s *GormPaymentStore) ClaimProcessing(attempt *models.PaymentAttempt) error {
	result := s.db.Model(&models.PaymentAttempt{}).
		Where("id = ? AND state = ?", attempt.ID, constants.PaymentStateEditing).
		Update("state", constants.PaymentStateProcessing)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrPaymentInProgress
	}
	return nil
}

// ConfirmBooking chuyển booking sang Confirmed sau khi thanh toán thành công
func (s *GormPaymentStore) ConfirmBooking(bookingID uint) error {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		return err
	}

	state := models.GetBookingState(booking.Status)
	if err := state.Confirm(&booking); err != nil {
		return err
	}
	return s.db.Save(&booking).Error
}

// ReleaseHold nhả khoảng ngày đang giữ của booking khi thanh toán bị hủy
func (s *GormPaymentStore) ReleaseHold(bookingID uint) error {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		return err
	}
	return NewBookingService(s.db).ReleaseHold(&booking)
}
