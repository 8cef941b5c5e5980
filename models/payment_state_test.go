package models

import (
	"testing"

	"staybnb/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStateTransitions(t *testing.T) {
	t.Run("đường đi thành công", func(t *testing.T) {
		attempt := &PaymentAttempt{State: constants.PaymentStateEditing}

		require.NoError(t, GetPaymentState(attempt.State).Process(attempt))
		assert.Equal(t, constants.PaymentStateProcessing, attempt.State)

		require.NoError(t, GetPaymentState(attempt.State).Succeed(attempt))
		assert.Equal(t, constants.PaymentStateSucceeded, attempt.State)
	})

	t.Run("không thể succeed khi chưa processing", func(t *testing.T) {
		attempt := &PaymentAttempt{State: constants.PaymentStateEditing}
		assert.Error(t, GetPaymentState(attempt.State).Succeed(attempt))
	})

	t.Run("processing chặn lần gửi thứ hai", func(t *testing.T) {
		attempt := &PaymentAttempt{State: constants.PaymentStateProcessing}
		assert.ErrorIs(t, GetPaymentState(attempt.State).Process(attempt), ErrPaymentInProgress)
	})

	t.Run("fail giữ lại lý do", func(t *testing.T) {
		attempt := &PaymentAttempt{State: constants.PaymentStateProcessing}
		require.NoError(t, GetPaymentState(attempt.State).Fail(attempt, "card declined"))
		assert.Equal(t, constants.PaymentStateFailed, attempt.State)
		assert.Equal(t, "card declined", attempt.FailReason)
	})

	t.Run("retry từ failed về editing", func(t *testing.T) {
		attempt := &PaymentAttempt{State: constants.PaymentStateFailed, FailReason: "card declined"}
		require.NoError(t, GetPaymentState(attempt.State).Retry(attempt))
		assert.Equal(t, constants.PaymentStateEditing, attempt.State)
		assert.Empty(t, attempt.FailReason)
	})

	t.Run("failed phải retry trước khi process lại", func(t *testing.T) {
		attempt := &PaymentAttempt{State: constants.PaymentStateFailed}
		assert.Error(t, GetPaymentState(attempt.State).Process(attempt))
	})

	t.Run("cancel được từ editing, processing và failed", func(t *testing.T) {
		for _, state := range []int{
			constants.PaymentStateEditing,
			constants.PaymentStateProcessing,
			constants.PaymentStateFailed,
		} {
			attempt := &PaymentAttempt{State: state}
			require.NoError(t, GetPaymentState(attempt.State).Cancel(attempt))
			assert.Equal(t, constants.PaymentStateCancelled, attempt.State)
		}
	})

	t.Run("trạng thái kết thúc không đi đâu được nữa", func(t *testing.T) {
		for _, state := range []int{
			constants.PaymentStateSucceeded,
			constants.PaymentStateCancelled,
		} {
			attempt := &PaymentAttempt{State: state}
			s := GetPaymentState(attempt.State)
			assert.ErrorIs(t, s.Process(attempt), ErrPaymentFinished)
			assert.ErrorIs(t, s.Succeed(attempt), ErrPaymentFinished)
			assert.ErrorIs(t, s.Fail(attempt, "x"), ErrPaymentFinished)
			assert.ErrorIs(t, s.Cancel(attempt), ErrPaymentFinished)
			assert.ErrorIs(t, s.Retry(attempt), ErrPaymentFinished)
			assert.Equal(t, state, attempt.State)
		}
	})
}

func TestBookingStateTransitions(t *testing.T) {
	t.Run("pending sang confirmed", func(t *testing.T) {
		booking := &Booking{Status: constants.BookingStatusPending}
		require.NoError(t, GetBookingState(booking.Status).Confirm(booking))
		assert.Equal(t, constants.BookingStatusConfirmed, booking.Status)
	})

	t.Run("confirmed sang completed", func(t *testing.T) {
		booking := &Booking{Status: constants.BookingStatusConfirmed}
		require.NoError(t, GetBookingState(booking.Status).Complete(booking))
		assert.Equal(t, constants.BookingStatusCompleted, booking.Status)
	})

	t.Run("completed không hủy được", func(t *testing.T) {
		booking := &Booking{Status: constants.BookingStatusCompleted}
		assert.Error(t, GetBookingState(booking.Status).Cancel(booking))
	})
}
