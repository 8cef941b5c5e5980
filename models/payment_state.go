package models

import (
	"errors"

	"staybnb/constants"
)

// PaymentState định nghĩa interface cho các trạng thái của một lần thanh toán.
// Editing -> Processing -> Succeeded là đường đi thành công; Processing là
// cơ chế loại trừ lẫn nhau: trong lúc Processing không được gửi lần hai.
type PaymentState interface {
	Process(attempt *PaymentAttempt) error
	Succeed(attempt *PaymentAttempt) error
	Fail(attempt *PaymentAttempt, reason string) error
	Cancel(attempt *PaymentAttempt) error
	Retry(attempt *PaymentAttempt) error
}

var (
	ErrPaymentInProgress = errors.New("payment attempt already processing")
	ErrPaymentFinished   = errors.New("payment attempt already finished")
)

// PaymentEditingState người dùng còn đang nhập form
type PaymentEditingState struct{}

func (s *PaymentEditingState) Process(attempt *PaymentAttempt) error {
	attempt.State = constants.PaymentStateProcessing
	return nil
}

func (s *PaymentEditingState) Succeed(attempt *PaymentAttempt) error {
	return errors.New("cannot succeed before processing")
}

func (s *PaymentEditingState) Fail(attempt *PaymentAttempt, reason string) error {
	return errors.New("cannot fail before processing")
}

func (s *PaymentEditingState) Cancel(attempt *PaymentAttempt) error {
	attempt.State = constants.PaymentStateCancelled
	return nil
}

func (s *PaymentEditingState) Retry(attempt *PaymentAttempt) error {
	return errors.New("attempt is already editable")
}

// PaymentProcessingState đang chờ cổng thanh toán trả lời
type PaymentProcessingState struct{}

func (s *PaymentProcessingState) Process(attempt *PaymentAttempt) error {
	return ErrPaymentInProgress
}

func (s *PaymentProcessingState) Succeed(attempt *PaymentAttempt) error {
	attempt.State = constants.PaymentStateSucceeded
	return nil
}

func (s *PaymentProcessingState) Fail(attempt *PaymentAttempt, reason string) error {
	attempt.State = constants.PaymentStateFailed
	attempt.FailReason = reason
	return nil
}

func (s *PaymentProcessingState) Cancel(attempt *PaymentAttempt) error {
	attempt.State = constants.PaymentStateCancelled
	return nil
}

func (s *PaymentProcessingState) Retry(attempt *PaymentAttempt) error {
	return ErrPaymentInProgress
}

// PaymentSucceededState trạng thái kết thúc thành công
type PaymentSucceededState struct{}

func (s *PaymentSucceededState) Process(attempt *PaymentAttempt) error {
	return ErrPaymentFinished
}

func (s *PaymentSucceededState) Succeed(attempt *PaymentAttempt) error {
	return ErrPaymentFinished
}

func (s *PaymentSucceededState) Fail(attempt *PaymentAttempt, reason string) error {
	return ErrPaymentFinished
}

func (s *PaymentSucceededState) Cancel(attempt *PaymentAttempt) error {
	return ErrPaymentFinished
}

func (s *PaymentSucceededState) Retry(attempt *PaymentAttempt) error {
	return ErrPaymentFinished
}

// PaymentFailedState cổng thanh toán từ chối; cho phép quay lại Editing
type PaymentFailedState struct{}

func (s *PaymentFailedState) Process(attempt *PaymentAttempt) error {
	return errors.New("must retry before processing again")
}

func (s *PaymentFailedState) Succeed(attempt *PaymentAttempt) error {
	return errors.New("cannot succeed a failed attempt")
}

func (s *PaymentFailedState) Fail(attempt *PaymentAttempt, reason string) error {
	return errors.New("attempt already failed")
}

func (s *PaymentFailedState) Cancel(attempt *PaymentAttempt) error {
	attempt.State = constants.PaymentStateCancelled
	return nil
}

func (s *PaymentFailedState) Retry(attempt *PaymentAttempt) error {
	attempt.State = constants.PaymentStateEditing
	attempt.FailReason = ""
	return nil
}

// PaymentCancelledState người dùng bỏ dở; trạng thái kết thúc
type PaymentCancelledState struct{}

func (s *PaymentCancelledState) Process(attempt *PaymentAttempt) error {
	return ErrPaymentFinished
}

func (s *PaymentCancelledState) Succeed(attempt *PaymentAttempt) error {
	return ErrPaymentFinished
}

func (s *PaymentCancelledState) Fail(attempt *PaymentAttempt, reason string) error {
	return ErrPaymentFinished
}

func (s *PaymentCancelledState) Cancel(attempt *PaymentAttempt) error {
	return ErrPaymentFinished
}

func (s *PaymentCancelledState) Retry(attempt *PaymentAttempt) error {
	return ErrPaymentFinished
}

// GetPaymentState trả về state tương ứng với trạng thái attempt
func GetPaymentState(state int) PaymentState {
	switch state {
	case constants.PaymentStateEditing:
		return &PaymentEditingState{}
	case constants.PaymentStateProcessing:
		return &PaymentProcessingState{}
	case constants.PaymentStateSucceeded:
		return &PaymentSucceededState{}
	case constants.PaymentStateFailed:
		return &PaymentFailedState{}
	case constants.PaymentStateCancelled:
		return &PaymentCancelledState{}
	default:
		return &PaymentEditingState{}
	}
}
