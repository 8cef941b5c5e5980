package services

import (
	"context"
	"time"

	"staybnb/dto"
	"staybnb/errors"
)

// ChargeRequest là dữ liệu gửi sang cổng thanh toán: field đã validate
// và tổng tiền của booking.
type ChargeRequest struct {
	BookingID uint
	Amount    float64
	Fields    dto.PaymentFields
}

// ChargeResult là kết quả trả về từ cổng thanh toán
type ChargeResult struct {
	Approved      bool
	DeclineReason string
	TransactionID string
}

// PaymentGateway là ranh giới bất đồng bộ với cổng thanh toán bên ngoài.
// Một cổng thật (Stripe, VNPay...) chỉ cần implement interface này.
type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// SimulatedGateway giả lập cổng thanh toán: chờ một khoảng delay cố định
// rồi chấp thuận. Decline được cấu hình để test nhánh thất bại.
type SimulatedGateway struct {
	Delay         time.Duration
	Decline       bool
	DeclineReason string
}

// NewSimulatedGateway tạo gateway giả lập với delay cho trước
func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{Delay: delay}
}

// Charge chờ hết delay hoặc context bị hủy, tùy cái nào đến trước
func (g *SimulatedGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if req.Amount <= 0 {
		return nil, errors.ErrInvalidAmount
	}

	timer := time.NewTimer(g.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	if g.Decline {
		reason := g.DeclineReason
		if reason == "" {
			reason = "card declined"
		}
		return &ChargeResult{Approved: false, DeclineReason: reason}, nil
	}

	return &ChargeResult{
		Approved:      true,
		TransactionID: time.Now().UTC().Format("20060102150405.000000000"),
	}, nil
}
