package commands

import (
	"context"

	"courtbook/internal/domain/court"
	"courtbook/internal/domain/pricing"
	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/infra"
	"courtbook/internal/infra/repository"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourtCommands interface {
	Create(ctx context.Context, req reqdto.CreateCourtRequest) (*queries.CourtView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCourtRequest) (*queries.CourtView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type courtUseCaseImpl struct {
	courtRepo    CourtRepository
	courtQueries queries.CourtQueries
	db           DB
}

func NewCourtUseCase(courtRepo CourtRepository, courtQueries queries.CourtQueries, db DB) CourtCommands {
	return &courtUseCaseImpl{
		courtRepo:    courtRepo,
		courtQueries: courtQueries,
		db:           db,
	}
}

func (u *courtUseCaseImpl) Create(ctx context.Context, req reqdto.CreateCourtRequest) (*queries.CourtView, error) {
	rate, err := pricing.NewMoney(req.HourlyRateCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity, err := court.NewCourt(req.Name, req.Description, rate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := u.courtRepo.Create(ctx, u.db, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u.courtQueries.GetByID(ctx, entity.ID())
}

func (u *courtUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCourtRequest) (*queries.CourtView, error) {
	if req.HourlyRateCents != nil {
		if _, err := pricing.NewMoney(*req.HourlyRateCents); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	params := repository.UpdateCourtParams{
		Name:            req.Name,
		Description:     req.Description,
		HourlyRateCents: req.HourlyRateCents,
		IsActive:        req.IsActive,
	}
	if err := u.courtRepo.Update(ctx, u.db, id, params); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCourtNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u.courtQueries.GetByID(ctx, id)
}

// Delete removes the court with its slots and pricing rules. Slots that are
// referenced by bookings block the delete at the database level.
func (u *courtUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.courtRepo.Delete(ctx, u.db, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.ErrCourtNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return errs.ErrCourtHasBookings
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}
