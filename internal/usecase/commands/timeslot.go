package commands

import (
	"context"
	"time"

	"courtbook/internal/domain/pricing"
	"courtbook/internal/domain/schedule"
	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/infra"
	"courtbook/internal/infra/repository"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type TimeSlotCommands interface {
	Create(ctx context.Context, req reqdto.CreateTimeSlotRequest) (*queries.TimeSlotView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateTimeSlotRequest) (*queries.TimeSlotView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type timeSlotUseCaseImpl struct {
	slotRepo     TimeSlotRepository
	slotReads    TimeSlotReads
	courtReads   CourtReads
	pricingReads PricingRuleReads
	resolver     *pricing.Resolver
	db           DB
}

func NewTimeSlotUseCase(
	slotRepo TimeSlotRepository,
	slotReads TimeSlotReads,
	courtReads CourtReads,
	pricingReads PricingRuleReads,
	resolver *pricing.Resolver,
	db DB,
) TimeSlotCommands {
	return &timeSlotUseCaseImpl{
		slotRepo:     slotRepo,
		slotReads:    slotReads,
		courtReads:   courtReads,
		pricingReads: pricingReads,
		resolver:     resolver,
		db:           db,
	}
}

// Create prices the slot from the court's base rate through the band formula
// and any active rule unless the request pins an explicit price.
func (u *timeSlotUseCaseImpl) Create(ctx context.Context, req reqdto.CreateTimeSlotRequest) (*queries.TimeSlotView, error) {
	courtID, err := uuid.Parse(req.CourtID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	startTime, err := pricing.NewClockTime(req.StartTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	endTime, err := pricing.NewClockTime(req.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	courtView, err := u.courtReads.FindByID(ctx, u.db, courtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCourtNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	price, err := u.resolvePrice(ctx, courtView, date, startTime, req.PriceCents)
	if err != nil {
		return nil, err
	}

	entity, err := schedule.NewTimeSlot(courtID, date, startTime, endTime, price)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := u.slotRepo.Create(ctx, u.db, entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.ErrDuplicateTimeSlot
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, errs.ErrCourtNotFound
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	return u.slotReads.FindByID(ctx, u.db, entity.ID())
}

func (u *timeSlotUseCaseImpl) resolvePrice(
	ctx context.Context,
	courtView *queries.CourtView,
	date time.Time,
	startTime pricing.ClockTime,
	explicitCents *int64,
) (pricing.Money, error) {
	if explicitCents != nil {
		price, err := pricing.NewMoney(*explicitCents)
		if err != nil {
			return pricing.Money{}, errs.Mark(err, errs.ErrDomainValidation)
		}
		return price, nil
	}

	day := pricing.DayOfWeekFromDate(date)
	ruleView, err := u.pricingReads.FindActiveRule(ctx, u.db, courtView.ID, day.Int(), startTime.String())
	if err != nil {
		return pricing.Money{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if ruleView != nil {
		price, err := pricing.NewMoney(ruleView.PriceCents)
		if err != nil {
			return pricing.Money{}, errs.Mark(err, errs.ErrDomainValidation)
		}
		return price, nil
	}

	baseRate, err := pricing.NewMoney(courtView.HourlyRateCents)
	if err != nil {
		return pricing.Money{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	return u.resolver.Resolve(baseRate, day, startTime, nil), nil
}

func (u *timeSlotUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateTimeSlotRequest) (*queries.TimeSlotView, error) {
	current, err := u.slotReads.FindByID(ctx, u.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTimeSlotNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	start := current.StartTime
	if req.StartTime != nil {
		start = *req.StartTime
	}
	end := current.EndTime
	if req.EndTime != nil {
		end = *req.EndTime
	}
	startTime, err := pricing.NewClockTime(start)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	endTime, err := pricing.NewClockTime(end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if !startTime.Before(endTime) {
		return nil, errs.Mark(schedule.ErrInvalidTimeRange, errs.ErrDomainValidation)
	}
	if req.PriceCents != nil {
		if _, err := pricing.NewMoney(*req.PriceCents); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	params := repository.UpdateTimeSlotParams{
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		PriceCents: req.PriceCents,
	}
	if err := u.slotRepo.Update(ctx, u.db, id, params); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.ErrTimeSlotNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.ErrDuplicateTimeSlot
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	return u.slotReads.FindByID(ctx, u.db, id)
}

func (u *timeSlotUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.slotRepo.Delete(ctx, u.db, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.ErrTimeSlotNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return errs.ErrTimeSlotHasBookings
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}
