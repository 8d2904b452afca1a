package errs

// Domain-specific sentinel errors shared across usecase layers
var (
	// User errors
	ErrUserNotFound      = New("user not found")
	ErrDuplicateUser     = New("username or email already taken")
	ErrUserHasBookings   = New("user is referenced by bookings")
	ErrUserBlocked       = New("user account is blocked")
	ErrSelfUpdateLimited = New("only admins may change role or block status")
	ErrUserAccessDenied  = New("cannot access another user's account")

	// Court errors
	ErrCourtNotFound    = New("court not found")
	ErrCourtInactive    = New("court is not active")
	ErrCourtHasBookings = New("court has booked time slots")

	// Time slot errors
	ErrTimeSlotNotFound    = New("time slot not found")
	ErrDuplicateTimeSlot   = New("time slot already exists")
	ErrTimeSlotHasBookings = New("time slot is referenced by bookings")

	// Booking errors
	ErrBookingNotFound    = New("booking not found")
	ErrSlotUnavailable    = New("time slot is no longer available")
	ErrNotBookingOwner    = New("booking belongs to another user")
	ErrAlreadyCancelled   = New("booking is already cancelled")
	ErrInvalidTransition  = New("invalid booking status transition")
	ErrIdempotencyReplay  = New("idempotent request replayed with different parameters")
	ErrRequestInProgress  = New("request is currently being processed")
	ErrIdempotencyKeyMiss = New("idempotency key required")

	// Pricing errors
	ErrPricingRuleNotFound = New("pricing rule not found")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
