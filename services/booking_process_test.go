package services

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"staybnb/constants"
	"staybnb/dto"
	"staybnb/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePaymentStore mô phỏng storage: state của mỗi attempt được lưu
// theo ID để ClaimProcessing hành xử như UPDATE có điều kiện trên DB.
type fakePaymentStore struct {
	mu               sync.Mutex
	states           map[uint]int
	saveCount        int
	confirmedBooking uint
	confirmCount     int
	releasedBooking  uint
	releaseCount     int
}

func (s *fakePaymentStore) SaveAttempt(attempt *models.PaymentAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.states == nil {
		s.states = map[uint]int{}
	}
	s.saveCount++
	s.states[attempt.ID] = attempt.State
	return nil
}

func (s *fakePaymentStore) ClaimProcessing(attempt *models.PaymentAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.states == nil {
		s.states = map[uint]int{}
	}
	current, ok := s.states[attempt.ID]
	if !ok {
		current = constants.PaymentStateEditing
	}
	if current != constants.PaymentStateEditing {
		return models.ErrPaymentInProgress
	}
	s.states[attempt.ID] = constants.PaymentStateProcessing
	return nil
}

func (s *fakePaymentStore) ConfirmBooking(bookingID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmedBooking = bookingID
	s.confirmCount++
	return nil
}

func (s *fakePaymentStore) ReleaseHold(bookingID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releasedBooking = bookingID
	s.releaseCount++
	return nil
}

type fakeNotifier struct {
	succeeded int
	failed    int
}

func (n *fakeNotifier) NotifyPaymentSucceeded(attempt *models.PaymentAttempt) { n.succeeded++ }
func (n *fakeNotifier) NotifyPaymentFailed(attempt *models.PaymentAttempt)   { n.failed++ }

func newTestProcessor(gateway PaymentGateway) (*PaymentProcessor, *fakePaymentStore, *fakeNotifier) {
	store := &fakePaymentStore{}
	notifier := &fakeNotifier{}
	processor := NewPaymentProcessor(PaymentProcessorOptions{
		Store:    store,
		Gateway:  gateway,
		Notifier: notifier,
	})
	return processor, store, notifier
}

func newEditingAttempt() *models.PaymentAttempt {
	return &models.PaymentAttempt{
		ID:        1,
		BookingID: 42,
		Amount:    360,
		State:     constants.PaymentStateEditing,
	}
}

func TestSubmitHappyPath(t *testing.T) {
	processor, store, notifier := newTestProcessor(NewSimulatedGateway(0))
	attempt := newEditingAttempt()

	fieldErrors, err := processor.Submit(context.Background(), attempt, validFields())
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)

	assert.Equal(t, constants.PaymentStateSucceeded, attempt.State)
	assert.Equal(t, "1111", attempt.CardLast4)
	assert.Equal(t, "Nguyen Van A", attempt.CardName)
	assert.Equal(t, uint(42), store.confirmedBooking)
	assert.Equal(t, 1, store.confirmCount)
	assert.Equal(t, 1, notifier.succeeded)
	assert.Equal(t, 0, notifier.failed)
}

func TestSubmitValidationFailKeepsState(t *testing.T) {
	processor, store, notifier := newTestProcessor(NewSimulatedGateway(0))
	attempt := newEditingAttempt()

	fieldErrors, err := processor.Submit(context.Background(), attempt, dto.PaymentFields{
		CardNumber: "123",
		CardName:   "",
		ExpiryDate: "13/99",
		CVV:        "12",
	})
	require.NoError(t, err)
	assert.Len(t, fieldErrors, 4)

	// Validate fail thì không có chuyển trạng thái, không ghi gì
	assert.Equal(t, constants.PaymentStateEditing, attempt.State)
	assert.Equal(t, 0, store.saveCount)
	assert.Equal(t, 0, notifier.succeeded)
	assert.Equal(t, 0, notifier.failed)
}

func TestSubmitWhileProcessingRejected(t *testing.T) {
	processor, store, _ := newTestProcessor(NewSimulatedGateway(0))
	attempt := newEditingAttempt()
	attempt.State = constants.PaymentStateProcessing

	fieldErrors, err := processor.Submit(context.Background(), attempt, validFields())
	assert.Empty(t, fieldErrors)
	assert.ErrorIs(t, err, models.ErrPaymentInProgress)
	assert.Equal(t, constants.PaymentStateProcessing, attempt.State)
	assert.Equal(t, 0, store.saveCount)
}

func TestSubmitFinishedAttemptRejected(t *testing.T) {
	processor, _, _ := newTestProcessor(NewSimulatedGateway(0))

	for _, state := range []int{constants.PaymentStateSucceeded, constants.PaymentStateCancelled} {
		attempt := newEditingAttempt()
		attempt.State = state

		_, err := processor.Submit(context.Background(), attempt, validFields())
		assert.ErrorIs(t, err, models.ErrPaymentFinished)
		assert.Equal(t, state, attempt.State)
	}
}

func TestSubmitDeclinedThenRetry(t *testing.T) {
	gateway := &SimulatedGateway{Decline: true, DeclineReason: "insufficient funds"}
	processor, store, notifier := newTestProcessor(gateway)
	attempt := newEditingAttempt()

	fieldErrors, err := processor.Submit(context.Background(), attempt, validFields())
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)

	assert.Equal(t, constants.PaymentStateFailed, attempt.State)
	assert.Equal(t, "insufficient funds", attempt.FailReason)
	assert.Equal(t, 1, notifier.failed)
	assert.Equal(t, 0, store.confirmCount)

	// Retry đưa attempt về Editing và xóa lý do thất bại
	require.NoError(t, processor.Retry(attempt))
	assert.Equal(t, constants.PaymentStateEditing, attempt.State)
	assert.Empty(t, attempt.FailReason)

	// Gửi lại sau khi retry thì đi được đến Succeeded
	gateway.Decline = false
	fieldErrors, err = processor.Submit(context.Background(), attempt, validFields())
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, constants.PaymentStateSucceeded, attempt.State)
	assert.Equal(t, 1, notifier.succeeded)
}

func TestRetryOnlyFromFailed(t *testing.T) {
	processor, _, _ := newTestProcessor(NewSimulatedGateway(0))

	attempt := newEditingAttempt()
	assert.Error(t, processor.Retry(attempt))

	attempt.State = constants.PaymentStateSucceeded
	assert.ErrorIs(t, processor.Retry(attempt), models.ErrPaymentFinished)
}

func TestCancelReleasesHold(t *testing.T) {
	processor, store, _ := newTestProcessor(NewSimulatedGateway(0))
	attempt := newEditingAttempt()
	attempt.State = constants.PaymentStateProcessing

	require.NoError(t, processor.Cancel(attempt))
	assert.Equal(t, constants.PaymentStateCancelled, attempt.State)
	assert.Equal(t, uint(42), store.releasedBooking)
	assert.Equal(t, 1, store.releaseCount)
}

func TestCancelFinishedAttemptRejected(t *testing.T) {
	processor, store, _ := newTestProcessor(NewSimulatedGateway(0))
	attempt := newEditingAttempt()
	attempt.State = constants.PaymentStateSucceeded

	assert.ErrorIs(t, processor.Cancel(attempt), models.ErrPaymentFinished)
	assert.Equal(t, 0, store.releaseCount)
}

func TestSubmitAbandonedDuringProcessing(t *testing.T) {
	// Gateway chậm, người dùng bỏ dở: attempt phải bị hủy và nhả hold
	processor, store, notifier := newTestProcessor(NewSimulatedGateway(time.Minute))
	attempt := newEditingAttempt()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	fieldErrors, err := processor.Submit(ctx, attempt, validFields())
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)

	assert.Equal(t, constants.PaymentStateCancelled, attempt.State)
	assert.Equal(t, 1, store.releaseCount)
	assert.Equal(t, 0, notifier.succeeded)
	assert.Equal(t, 0, notifier.failed)
}

// countingGateway đếm số lần bị charge để kiểm tra không có charge trùng
type countingGateway struct {
	calls int32
	delay time.Duration
}

func (g *countingGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	atomic.AddInt32(&g.calls, 1)
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return &ChargeResult{Approved: true}, nil
}

func TestSubmitConcurrentDuplicateChargesOnce(t *testing.T) {
	// Hai request cùng lúc load cùng một row đang Editing: mỗi bên giữ
	// một bản struct riêng, nhưng gateway chỉ được charge đúng một lần.
	gateway := &countingGateway{delay: 20 * time.Millisecond}
	processor, store, notifier := newTestProcessor(gateway)

	first := newEditingAttempt()
	second := newEditingAttempt()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, attempt := range []*models.PaymentAttempt{first, second} {
		wg.Add(1)
		go func(i int, attempt *models.PaymentAttempt) {
			defer wg.Done()
			_, errs[i] = processor.Submit(context.Background(), attempt, validFields())
		}(i, attempt)
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&gateway.calls))

	succeeded := 0
	rejected := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, models.ErrPaymentInProgress):
			rejected++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 1, store.confirmCount)
	assert.Equal(t, 1, notifier.succeeded)
}

func TestSimulatedGatewayRejectsNonPositiveAmount(t *testing.T) {
	gateway := NewSimulatedGateway(0)

	_, err := gateway.Charge(context.Background(), ChargeRequest{BookingID: 1, Amount: 0})
	assert.Error(t, err)

	_, err = gateway.Charge(context.Background(), ChargeRequest{BookingID: 1, Amount: -10})
	assert.Error(t, err)
}
