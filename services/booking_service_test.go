package services

import (
	"testing"
	"time"

	"staybnb/constants"
	"staybnb/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingStore struct {
	savedStatus     int
	saveCount       int
	releasedListing uint
	releasedFrom    time.Time
	releasedTo      time.Time
	releaseCount    int
}

func (s *fakeBookingStore) SaveBooking(booking *models.Booking) error {
	s.savedStatus = booking.Status
	s.saveCount++
	return nil
}

func (s *fakeBookingStore) HasOverlappingHold(listingID uint, checkIn, checkOut time.Time) (bool, error) {
	return false, nil
}

func (s *fakeBookingStore) CreateHold(listingID uint, checkIn, checkOut time.Time) error {
	return nil
}

func (s *fakeBookingStore) ReleaseHold(listingID uint, checkIn, checkOut time.Time) error {
	s.releasedListing = listingID
	s.releasedFrom = checkIn
	s.releasedTo = checkOut
	s.releaseCount++
	return nil
}

func newPendingBooking() *models.Booking {
	return &models.Booking{
		ID:           7,
		ListingID:    3,
		CheckInDate:  "2026-03-01",
		CheckOutDate: "2026-03-04",
		Status:       constants.BookingStatusPending,
	}
}

func TestBookingCancelReleasesHold(t *testing.T) {
	store := &fakeBookingStore{}
	service := &BookingService{store: store}
	booking := newPendingBooking()

	require.NoError(t, service.Cancel(booking))

	assert.Equal(t, constants.BookingStatusCancelled, booking.Status)
	assert.Equal(t, constants.BookingStatusCancelled, store.savedStatus)

	// Khoảng ngày của đúng booking đó phải được nhả ra
	assert.Equal(t, 1, store.releaseCount)
	assert.Equal(t, uint(3), store.releasedListing)
	assert.Equal(t, date(2026, 3, 1), store.releasedFrom)
	assert.Equal(t, date(2026, 3, 4), store.releasedTo)
}

func TestBookingCancelConfirmedReleasesHold(t *testing.T) {
	store := &fakeBookingStore{}
	service := &BookingService{store: store}
	booking := newPendingBooking()
	booking.Status = constants.BookingStatusConfirmed

	require.NoError(t, service.Cancel(booking))
	assert.Equal(t, constants.BookingStatusCancelled, booking.Status)
	assert.Equal(t, 1, store.releaseCount)
}

func TestBookingCancelCompletedRejected(t *testing.T) {
	store := &fakeBookingStore{}
	service := &BookingService{store: store}
	booking := newPendingBooking()
	booking.Status = constants.BookingStatusCompleted

	assert.Error(t, service.Cancel(booking))
	assert.Equal(t, 0, store.saveCount)
	assert.Equal(t, 0, store.releaseCount)
}

func TestBookingConfirmAndComplete(t *testing.T) {
	store := &fakeBookingStore{}
	service := &BookingService{store: store}
	booking := newPendingBooking()

	require.NoError(t, service.Confirm(booking))
	assert.Equal(t, constants.BookingStatusConfirmed, booking.Status)

	require.NoError(t, service.Complete(booking))
	assert.Equal(t, constants.BookingStatusCompleted, booking.Status)

	// Confirm/Complete không đụng đến hold
	assert.Equal(t, 0, store.releaseCount)
}
