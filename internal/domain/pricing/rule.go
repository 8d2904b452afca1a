package pricing

import (
	"time"

	"github.com/google/uuid"
)

// Rule overrides a court's computed price for one (day-of-week, start-time)
// slot key. Rules materialized by weekly propagation are ordinary rows; the
// source day is not recorded.
type Rule struct {
	id        uuid.UUID
	courtID   uuid.UUID
	dayOfWeek DayOfWeek
	startTime ClockTime
	price     Money
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewRule(courtID uuid.UUID, dayOfWeek DayOfWeek, startTime ClockTime, price Money) *Rule {
	return &Rule{
		id:        uuid.New(),
		courtID:   courtID,
		dayOfWeek: dayOfWeek,
		startTime: startTime,
		price:     price,
		isActive:  true,
	}
}

func ReconstructRule(
	id, courtID uuid.UUID,
	dayOfWeek DayOfWeek,
	startTime ClockTime,
	price Money,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Rule {
	return &Rule{
		id:        id,
		courtID:   courtID,
		dayOfWeek: dayOfWeek,
		startTime: startTime,
		price:     price,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// PropagateTo copies the rule to another day, keeping price and slot key.
func (r *Rule) PropagateTo(day DayOfWeek) *Rule {
	return NewRule(r.courtID, day, r.startTime, r.price)
}

func (r *Rule) ID() uuid.UUID        { return r.id }
func (r *Rule) CourtID() uuid.UUID   { return r.courtID }
func (r *Rule) DayOfWeek() DayOfWeek { return r.dayOfWeek }
func (r *Rule) StartTime() ClockTime { return r.startTime }
func (r *Rule) Price() Money         { return r.price }
func (r *Rule) IsActive() bool       { return r.isActive }
func (r *Rule) CreatedAt() time.Time { return r.createdAt }
func (r *Rule) UpdatedAt() time.Time { return r.updatedAt }
