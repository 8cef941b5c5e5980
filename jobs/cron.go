package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// StalePaymentSweeper định nghĩa interface cho việc dọn các lần thanh toán
// kẹt ở trạng thái Processing quá lâu
type StalePaymentSweeper interface {
	SweepStalePayments(m *melody.Melody) error
}

var stalePaymentSweeper StalePaymentSweeper

// SetStalePaymentSweeper thiết lập implementation cho StalePaymentSweeper
func SetStalePaymentSweeper(sweeper StalePaymentSweeper) {
	stalePaymentSweeper = sweeper
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Chạy mỗi 5 phút: attempt kẹt ở Processing sẽ bị hủy và nhả
	// khoảng ngày đang giữ
	_, err := c.AddFunc("*/5 * * * *", func() {
		now := time.Now()
		log.Printf("Đang dọn các thanh toán kẹt lúc: %v", now)
		if stalePaymentSweeper == nil {
			log.Printf("Lỗi: StalePaymentSweeper chưa được thiết lập")
			return
		}
		if err := stalePaymentSweeper.SweepStalePayments(m); err != nil {
			log.Printf("Lỗi khi dọn các thanh toán kẹt: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
