package queries

import (
	"context"
	"time"

	"courtbook/internal/domain/pricing"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange = errs.New("invalid date range")
	ErrDateRangeTooWide = errs.New("date range must not exceed 31 days")
)

const maxRangeDays = 31

type TimeSlotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TimeSlotView, error)
	ListByCourtAndDate(ctx context.Context, courtID uuid.UUID, date time.Time, availableOnly bool) ([]*TimeSlotView, error)
	Range(ctx context.Context, from, to time.Time) ([]*SlotWithBooking, error)
	Quote(ctx context.Context, courtID uuid.UUID, date time.Time, startTime pricing.ClockTime) (*QuoteView, error)
}

type TimeSlotReadStore interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*TimeSlotView, error)
	ListByCourtAndDate(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID, date time.Time, availableOnly bool) ([]*TimeSlotView, error)
	FindRange(ctx context.Context, dbtx db.DBTX, from, to time.Time) ([]*SlotWithBooking, error)
}

type PricingRuleReadStore interface {
	FindActiveRule(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID, dayOfWeek int, startTime string) (*PricingRuleView, error)
	ListByCourt(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID) ([]*PricingRuleView, error)
}

type timeSlotQueriesImpl struct {
	slotReads    TimeSlotReadStore
	courtReads   CourtReadStore
	pricingReads PricingRuleReadStore
	resolver     *pricing.Resolver
	db           db.DBTX
}

func NewTimeSlotQueries(
	slotReads TimeSlotReadStore,
	courtReads CourtReadStore,
	pricingReads PricingRuleReadStore,
	resolver *pricing.Resolver,
	pool db.DBTX,
) TimeSlotQueries {
	return &timeSlotQueriesImpl{
		slotReads:    slotReads,
		courtReads:   courtReads,
		pricingReads: pricingReads,
		resolver:     resolver,
		db:           pool,
	}
}

func (q *timeSlotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TimeSlotView, error) {
	slot, err := q.slotReads.FindByID(ctx, q.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTimeSlotNotFound
		}
		return nil, err
	}
	return slot, nil
}

func (q *timeSlotQueriesImpl) ListByCourtAndDate(ctx context.Context, courtID uuid.UUID, date time.Time, availableOnly bool) ([]*TimeSlotView, error) {
	if _, err := q.courtReads.FindByID(ctx, q.db, courtID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCourtNotFound
		}
		return nil, err
	}
	return q.slotReads.ListByCourtAndDate(ctx, q.db, courtID, date, availableOnly)
}

func (q *timeSlotQueriesImpl) Range(ctx context.Context, from, to time.Time) ([]*SlotWithBooking, error) {
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}
	if to.Sub(from) > maxRangeDays*24*time.Hour {
		return nil, ErrDateRangeTooWide
	}
	return q.slotReads.FindRange(ctx, q.db, from, to)
}

// Quote prices a hypothetical slot without persisting anything. An active
// rule for the exact (day, start-time) key wins; otherwise the band formula
// applies against the court's base rate.
func (q *timeSlotQueriesImpl) Quote(ctx context.Context, courtID uuid.UUID, date time.Time, startTime pricing.ClockTime) (*QuoteView, error) {
	courtView, err := q.courtReads.FindByID(ctx, q.db, courtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCourtNotFound
		}
		return nil, err
	}

	day := pricing.DayOfWeekFromDate(date)
	ruleView, err := q.pricingReads.FindActiveRule(ctx, q.db, courtID, day.Int(), startTime.String())
	if err != nil {
		return nil, err
	}

	quote := &QuoteView{
		CourtID:   courtID,
		Date:      date,
		StartTime: startTime.String(),
		Band:      q.resolver.BandName(startTime),
	}

	if ruleView != nil {
		quote.PriceCents = ruleView.PriceCents
		quote.FromRule = true
		return quote, nil
	}

	baseRate, err := pricing.NewMoney(courtView.HourlyRateCents)
	if err != nil {
		return nil, errs.ErrDomainValidation
	}
	quote.PriceCents = q.resolver.Resolve(baseRate, day, startTime, nil).Cents()
	return quote, nil
}
