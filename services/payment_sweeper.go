package services

import (
	"log"
	"time"

	"staybnb/constants"
	"staybnb/models"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// Attempt nằm ở Processing quá lâu coi như người dùng đã bỏ dở
const staleProcessingTTL = 15 * time.Minute

// PaymentSweeper dọn các attempt kẹt ở Processing: hủy attempt và nhả
// khoảng ngày đang giữ của booking tương ứng.
type PaymentSweeper struct {
	db        *gorm.DB
	processor *PaymentProcessor
}

func NewPaymentSweeper(db *gorm.DB, processor *PaymentProcessor) *PaymentSweeper {
	return &PaymentSweeper{db: db, processor: processor}
}

// SweepStalePayments hủy mọi attempt Processing không được cập nhật quá TTL
func (s *PaymentSweeper) SweepStalePayments(m *melody.Melody) error {
	cutoff := time.Now().Add(-staleProcessingTTL)

	var staleAttempts []models.PaymentAttempt
	if err := s.db.
		Where("state = ? AND updated_at < ?", constants.PaymentStateProcessing, cutoff).
		Find(&staleAttempts).Error; err != nil {
		return err
	}

	for i := range staleAttempts {
		attempt := &staleAttempts[i]
		if err := s.processor.Cancel(attempt); err != nil {
			return err
		}

		if m != nil {
			payload, err := json.Marshal(map[string]interface{}{
				"event":     "payment.cancelled",
				"bookingId": attempt.BookingID,
				"attemptId": attempt.ID,
				"state":     attempt.State,
			})
			if err != nil {
				log.Printf("Lỗi khi tạo payload websocket: %v", err)
				continue
			}
			if err := m.Broadcast(payload); err != nil {
				log.Printf("Lỗi khi broadcast websocket: %v", err)
			}
		}
	}

	return nil
}
