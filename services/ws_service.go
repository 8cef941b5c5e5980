package services

import (
	"log"

	"staybnb/config"
	"staybnb/models"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// WsNotifier phát kết quả thanh toán qua websocket và gửi email xác nhận
type WsNotifier struct {
	m *melody.Melody
}

func NewWsNotifier(m *melody.Melody) *WsNotifier {
	return &WsNotifier{m: m}
}

func (n *WsNotifier) broadcast(event string, attempt *models.PaymentAttempt) {
	payload, err := json.Marshal(map[string]interface{}{
		"event":     event,
		"bookingId": attempt.BookingID,
		"attemptId": attempt.ID,
		"state":     attempt.State,
		"amount":    attempt.Amount,
	})
	if err != nil {
		log.Printf("Lỗi khi tạo payload websocket: %v", err)
		return
	}
	if err := n.m.Broadcast(payload); err != nil {
		log.Printf("Lỗi khi broadcast websocket: %v", err)
	}
}

// NotifyPaymentSucceeded báo thanh toán thành công và gửi mail xác nhận
func (n *WsNotifier) NotifyPaymentSucceeded(attempt *models.PaymentAttempt) {
	n.broadcast("payment.succeeded", attempt)

	var booking models.Booking
	if err := config.DB.Preload("User").First(&booking, attempt.BookingID).Error; err != nil {
		log.Printf("Không tìm thấy booking %d để gửi mail: %v", attempt.BookingID, err)
		return
	}

	email := booking.GuestEmail
	if booking.User != nil && booking.User.Email != "" {
		email = booking.User.Email
	}
	if email == "" {
		return
	}

	if err := SendBookingEmail(email, booking.ID, booking.TotalPrice, booking.CheckInDate, booking.CheckOutDate); err != nil {
		log.Printf("Gửi email không thành công: %v", err)
	}
}

// NotifyPaymentFailed báo thanh toán bị từ chối
func (n *WsNotifier) NotifyPaymentFailed(attempt *models.PaymentAttempt) {
	n.broadcast("payment.failed", attempt)
}
