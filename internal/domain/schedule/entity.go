package schedule

import (
	"errors"
	"time"

	"courtbook/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeRange = errors.New("start time must be before end time")
	ErrSlotBooked       = errors.New("time slot already has an active booking")
	ErrSlotNotBooked    = errors.New("time slot is not booked")
)

// TimeSlot is a bookable interval on a specific date for a specific court.
// isAvailable is false exactly when a non-cancelled booking references the
// slot; the flip happens in the same transaction as the booking write.
type TimeSlot struct {
	id          uuid.UUID
	courtID     uuid.UUID
	date        time.Time
	startTime   pricing.ClockTime
	endTime     pricing.ClockTime
	price       pricing.Money
	isAvailable bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTimeSlot(
	courtID uuid.UUID,
	date time.Time,
	startTime, endTime pricing.ClockTime,
	price pricing.Money,
) (*TimeSlot, error) {
	if !startTime.Before(endTime) {
		return nil, ErrInvalidTimeRange
	}

	return &TimeSlot{
		id:          uuid.New(),
		courtID:     courtID,
		date:        date,
		startTime:   startTime,
		endTime:     endTime,
		price:       price,
		isAvailable: true,
	}, nil
}

func ReconstructTimeSlot(
	id, courtID uuid.UUID,
	date time.Time,
	startTime, endTime pricing.ClockTime,
	price pricing.Money,
	isAvailable bool,
	createdAt, updatedAt time.Time,
) *TimeSlot {
	return &TimeSlot{
		id:          id,
		courtID:     courtID,
		date:        date,
		startTime:   startTime,
		endTime:     endTime,
		price:       price,
		isAvailable: isAvailable,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// MarkBooked transitions Available -> Booked. Booking an unavailable slot is
// a conflict, never a silent overwrite.
func (ts *TimeSlot) MarkBooked() error {
	if !ts.isAvailable {
		return ErrSlotBooked
	}
	ts.isAvailable = false
	return nil
}

// Release transitions Booked -> Available on cancellation.
func (ts *TimeSlot) Release() error {
	if ts.isAvailable {
		return ErrSlotNotBooked
	}
	ts.isAvailable = true
	return nil
}

func (ts *TimeSlot) DayOfWeek() pricing.DayOfWeek {
	return pricing.DayOfWeekFromDate(ts.date)
}

func (ts *TimeSlot) ID() uuid.UUID                { return ts.id }
func (ts *TimeSlot) CourtID() uuid.UUID           { return ts.courtID }
func (ts *TimeSlot) Date() time.Time              { return ts.date }
func (ts *TimeSlot) StartTime() pricing.ClockTime { return ts.startTime }
func (ts *TimeSlot) EndTime() pricing.ClockTime   { return ts.endTime }
func (ts *TimeSlot) Price() pricing.Money         { return ts.price }
func (ts *TimeSlot) IsAvailable() bool            { return ts.isAvailable }
func (ts *TimeSlot) CreatedAt() time.Time         { return ts.createdAt }
func (ts *TimeSlot) UpdatedAt() time.Time         { return ts.updatedAt }
