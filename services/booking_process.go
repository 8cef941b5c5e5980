package services

import (
	"context"
	"strings"

	"staybnb/dto"
	"staybnb/models"
	"staybnb/services/logger"
)

// PaymentStore là phần persistence mà quy trình thanh toán cần đến.
// Tách interface để test quy trình không cần DB thật.
type PaymentStore interface {
	SaveAttempt(attempt *models.PaymentAttempt) error
	// ClaimProcessing chuyển attempt từ Editing sang Processing một cách
	// atomic trên storage: hai request cùng lúc thì chỉ một bên giành
	// được, bên còn lại nhận ErrPaymentInProgress.
	ClaimProcessing(attempt *models.PaymentAttempt) error
	ConfirmBooking(bookingID uint) error
	ReleaseHold(bookingID uint) error
}

// PaymentNotifier thông báo kết quả thanh toán (websocket, email...)
type PaymentNotifier interface {
	NotifyPaymentSucceeded(attempt *models.PaymentAttempt)
	NotifyPaymentFailed(attempt *models.PaymentAttempt)
}

// PaymentProcessor điều phối quy trình submit thanh toán:
// validate -> Processing -> gọi gateway -> Succeeded/Failed.
// Validate fail thì không có chuyển trạng thái nào xảy ra.
type PaymentProcessor struct {
	store    PaymentStore
	gateway  PaymentGateway
	notifier PaymentNotifier
	log      logger.Logger
}

// PaymentProcessorOptions gom dependency của PaymentProcessor
type PaymentProcessorOptions struct {
	Store    PaymentStore
	Gateway  PaymentGateway
	Notifier PaymentNotifier
	Logger   logger.Logger
}

func NewPaymentProcessor(opts PaymentProcessorOptions) *PaymentProcessor {
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PaymentProcessor{
		store:    opts.Store,
		gateway:  opts.Gateway,
		notifier: opts.Notifier,
		log:      log,
	}
}

// Submit chạy một lần gửi form thanh toán cho attempt. Trả về map lỗi
// theo field nếu form không hợp lệ (attempt giữ nguyên trạng thái), lỗi
// chuyển trạng thái nếu attempt đang Processing hoặc đã kết thúc.
func (p *PaymentProcessor) Submit(ctx context.Context, attempt *models.PaymentAttempt, fields dto.PaymentFields) (ValidationResult, error) {
	fieldErrors := ValidatePaymentFields(fields)
	if len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	state := models.GetPaymentState(attempt.State)
	if err := state.Process(attempt); err != nil {
		return nil, err
	}

	// Chuyển trạng thái trong struct chưa đủ: hai request có thể cùng
	// load một row đang Editing. Claim trên storage quyết định bên nào
	// được gọi gateway; bên thua không charge.
	if err := p.store.ClaimProcessing(attempt); err != nil {
		return nil, err
	}

	attempt.CardName = strings.TrimSpace(fields.CardName)
	attempt.CardLast4 = MaskCardNumber(fields.CardNumber)
	if err := p.store.SaveAttempt(attempt); err != nil {
		return nil, err
	}

	result, err := p.gateway.Charge(ctx, ChargeRequest{
		BookingID: attempt.BookingID,
		Amount:    attempt.Amount,
		Fields:    fields,
	})
	if err != nil {
		if ctx.Err() != nil {
			// Người dùng bỏ dở trong lúc Processing: hủy attempt và
			// nhả khoảng ngày đang giữ.
			return nil, p.Cancel(attempt)
		}
		p.log.Error("Gọi cổng thanh toán thất bại cho booking %d: %v", attempt.BookingID, err)
		return nil, p.fail(attempt, err.Error())
	}

	if !result.Approved {
		return nil, p.fail(attempt, result.DeclineReason)
	}

	state = models.GetPaymentState(attempt.State)
	if err := state.Succeed(attempt); err != nil {
		return nil, err
	}
	if err := p.store.SaveAttempt(attempt); err != nil {
		return nil, err
	}
	if err := p.store.ConfirmBooking(attempt.BookingID); err != nil {
		p.log.Error("Xác nhận booking %d thất bại sau khi thanh toán: %v", attempt.BookingID, err)
		return nil, err
	}

	if p.notifier != nil {
		p.notifier.NotifyPaymentSucceeded(attempt)
	}
	p.log.Info("Thanh toán thành công cho booking %d, số tiền %.2f", attempt.BookingID, attempt.Amount)
	return nil, nil
}

// Retry đưa attempt từ Failed về Editing để người dùng sửa và gửi lại
func (p *PaymentProcessor) Retry(attempt *models.PaymentAttempt) error {
	state := models.GetPaymentState(attempt.State)
	if err := state.Retry(attempt); err != nil {
		return err
	}
	return p.store.SaveAttempt(attempt)
}

// Cancel hủy attempt đang dang dở và nhả khoảng ngày đang giữ của booking
func (p *PaymentProcessor) Cancel(attempt *models.PaymentAttempt) error {
	state := models.GetPaymentState(attempt.State)
	if err := state.Cancel(attempt); err != nil {
		return err
	}
	if err := p.store.SaveAttempt(attempt); err != nil {
		return err
	}
	return p.store.ReleaseHold(attempt.BookingID)
}

func (p *PaymentProcessor) fail(attempt *models.PaymentAttempt, reason string) error {
	state := models.GetPaymentState(attempt.State)
	if err := state.Fail(attempt, reason); err != nil {
		return err
	}
	if err := p.store.SaveAttempt(attempt); err != nil {
		return err
	}
	if p.notifier != nil {
		p.notifier.NotifyPaymentFailed(attempt)
	}
	return nil
}
