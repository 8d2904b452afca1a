package commands

import (
	"context"
	"log/slog"

	"courtbook/internal/domain/pricing"
	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrPropagationDay = errs.New("weekly propagation applies to Monday and Saturday rules only")

type PricingCommands interface {
	Upsert(ctx context.Context, courtID uuid.UUID, req reqdto.UpsertPricingRuleRequest) ([]*queries.PricingRuleView, error)
	// UpsertBatch applies every rule or none of them.
	UpsertBatch(ctx context.Context, courtID uuid.UUID, req reqdto.BatchPricingRulesRequest) ([]*queries.PricingRuleView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type pricingUseCaseImpl struct {
	ruleRepo       PricingRuleRepository
	courtReads     CourtReads
	pricingQueries queries.PricingQueries
	db             DB
}

func NewPricingUseCase(
	ruleRepo PricingRuleRepository,
	courtReads CourtReads,
	pricingQueries queries.PricingQueries,
	db DB,
) PricingCommands {
	return &pricingUseCaseImpl{
		ruleRepo:       ruleRepo,
		courtReads:     courtReads,
		pricingQueries: pricingQueries,
		db:             db,
	}
}

func (u *pricingUseCaseImpl) Upsert(ctx context.Context, courtID uuid.UUID, req reqdto.UpsertPricingRuleRequest) ([]*queries.PricingRuleView, error) {
	return u.UpsertBatch(ctx, courtID, reqdto.BatchPricingRulesRequest{
		Rules: []reqdto.UpsertPricingRuleRequest{req},
	})
}

func (u *pricingUseCaseImpl) UpsertBatch(ctx context.Context, courtID uuid.UUID, req reqdto.BatchPricingRulesRequest) ([]*queries.PricingRuleView, error) {
	if _, err := u.courtReads.FindByID(ctx, u.db, courtID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCourtNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rules := make([]*pricing.Rule, 0, len(req.Rules))
	for _, item := range req.Rules {
		expanded, err := buildRules(courtID, item)
		if err != nil {
			return nil, err
		}
		rules = append(rules, expanded...)
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := u.upsertAll(ctx, tx, rules); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return u.pricingQueries.ListByCourt(ctx, courtID)
}

func (u *pricingUseCaseImpl) upsertAll(ctx context.Context, tx db.DBTX, rules []*pricing.Rule) error {
	for _, rule := range rules {
		if err := u.ruleRepo.Upsert(ctx, tx, rule); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.ErrCourtNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func (u *pricingUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.ruleRepo.Delete(ctx, u.db, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrPricingRuleNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// buildRules expands one request into the rule rows to write. Propagation
// copies a Monday rule to the remaining weekdays and a Saturday rule to
// Sunday; the copies are ordinary rows with no link back to their source.
func buildRules(courtID uuid.UUID, req reqdto.UpsertPricingRuleRequest) ([]*pricing.Rule, error) {
	day, err := pricing.NewDayOfWeek(req.DayOfWeek)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	startTime, err := pricing.NewClockTime(req.StartTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	price, err := pricing.NewMoney(req.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	base := pricing.NewRule(courtID, day, startTime, price)
	rules := []*pricing.Rule{base}

	if !req.ApplyToWeekdays {
		return rules, nil
	}
	switch day {
	case pricing.Monday:
		for _, target := range pricing.Weekdays() {
			rules = append(rules, base.PropagateTo(target))
		}
	case pricing.Saturday:
		rules = append(rules, base.PropagateTo(pricing.Sunday))
	default:
		return nil, ErrPropagationDay
	}
	return rules, nil
}
