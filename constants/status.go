package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Booking status
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusCompleted = 2
	BookingStatusCancelled = 3
)

// Listing availability status
const (
	ListingStatusAvailable   = 0
	ListingStatusBooked      = 1
	ListingStatusMaintenance = 2
)

// Payment attempt state
const (
	PaymentStateEditing    = 0
	PaymentStateProcessing = 1
	PaymentStateSucceeded  = 2
	PaymentStateFailed     = 3
	PaymentStateCancelled  = 4
)
