package booking

import (
	"errors"
	"time"

	"courtbook/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

type Booking struct {
	id         uuid.UUID
	userID     uuid.UUID
	timeSlotID uuid.UUID
	status     Status
	totalPrice pricing.Money
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking snapshots the slot price at creation; later pricing changes do
// not touch existing bookings.
func NewBooking(userID, timeSlotID uuid.UUID, totalPrice pricing.Money) *Booking {
	return &Booking{
		id:         uuid.New(),
		userID:     userID,
		timeSlotID: timeSlotID,
		status:     StatusPending,
		totalPrice: totalPrice,
	}
}

func ReconstructBooking(
	id, userID, timeSlotID uuid.UUID,
	status Status,
	totalPrice pricing.Money,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		userID:     userID,
		timeSlotID: timeSlotID,
		status:     status,
		totalPrice: totalPrice,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) Confirm() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusConfirmed
	return nil
}

// Cancel is idempotent at the caller's discretion: cancelling twice returns
// ErrAlreadyCancelled so the caller can treat it as a no-op.
func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) UserID() uuid.UUID         { return b.userID }
func (b *Booking) TimeSlotID() uuid.UUID     { return b.timeSlotID }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) TotalPrice() pricing.Money { return b.totalPrice }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
