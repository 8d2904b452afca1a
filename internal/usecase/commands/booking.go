package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/pricing"
	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

const idempotencyTTL = 24 * time.Hour

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	Create(ctx context.Context, actor Actor, req reqdto.CreateBookingRequest, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	Confirm(ctx context.Context, actor Actor, id uuid.UUID) (*queries.BookingView, error)
	// Cancel releases the slot and reports whether this call did the work;
	// cancelling an already-cancelled booking is a no-op.
	Cancel(ctx context.Context, actor Actor, id uuid.UUID) (bool, error)
}

type bookingUseCaseImpl struct {
	bookingRepo     BookingRepository
	slotRepo        TimeSlotRepository
	idempotencyRepo IdempotencyRepository
	userReads       UserReads
	slotReads       TimeSlotReads
	courtReads      CourtReads
	bookingReads    BookingReads
	bookingQueries  queries.BookingQueries
	db              DB
	clock           clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	slotRepo TimeSlotRepository,
	idempotencyRepo IdempotencyRepository,
	userReads UserReads,
	slotReads TimeSlotReads,
	courtReads CourtReads,
	bookingReads BookingReads,
	bookingQueries queries.BookingQueries,
	db DB,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:     bookingRepo,
		slotRepo:        slotRepo,
		idempotencyRepo: idempotencyRepo,
		userReads:       userReads,
		slotReads:       slotReads,
		courtReads:      courtReads,
		bookingReads:    bookingReads,
		bookingQueries:  bookingQueries,
		db:              db,
		clock:           clk,
	}
}

func (u *bookingUseCaseImpl) Create(
	ctx context.Context,
	actor Actor,
	req reqdto.CreateBookingRequest,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	account, err := u.userReads.FindAuthorizedByID(ctx, u.db, actor.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if account.IsBlocked {
		return nil, errs.ErrUserBlocked
	}

	requestHash := calculateRequestHash(req)
	replayed, err := u.handleIdempotency(ctx, idempotencyKey, actor.ID, requestHash)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateBookingResult{Booking: replayed, IsReplayed: true}, nil
	}

	view, err := u.createBooking(ctx, actor.ID, req.TimeSlotID, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: view}, nil
}

// handleIdempotency claims the key or resolves the prior request: a completed
// key replays its booking, a processing key with the same payload means a
// retry raced us, and a different payload under the same key is a client bug.
func (u *bookingUseCaseImpl) handleIdempotency(
	ctx context.Context,
	key, userID uuid.UUID,
	requestHash string,
) (*queries.BookingView, error) {
	inserted, err := u.idempotencyRepo.TryInsert(
		ctx, u.db, key, userID, "POST /api/bookings", requestHash, u.clock.Now().Add(idempotencyTTL),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := u.idempotencyRepo.Get(ctx, u.db, key, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// An expired key no longer binds its prior request. This covers a
	// creator that died between claiming the key and committing, which
	// would otherwise answer in-progress forever.
	if !u.clock.Now().Before(existing.ExpiresAt) {
		reclaimed, err := u.idempotencyRepo.Reclaim(
			ctx, u.db, key, userID, requestHash, u.clock.Now().Add(idempotencyTTL),
		)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if reclaimed {
			return nil, nil
		}
		return nil, errs.ErrRequestInProgress
	}

	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyReplay
	}

	switch existing.Status {
	case "completed":
		if existing.ResultBookingID == nil {
			return nil, errs.New("completed idempotency key has no booking")
		}
		return u.bookingQueries.GetByIDSystem(ctx, *existing.ResultBookingID)
	case "processing":
		return nil, errs.ErrRequestInProgress
	default:
		return nil, errs.New("unexpected idempotency key status")
	}
}

func (u *bookingUseCaseImpl) createBooking(
	ctx context.Context,
	userID, timeSlotID, idempotencyKey uuid.UUID,
) (*queries.BookingView, error) {
	slot, err := u.slotReads.FindByID(ctx, u.db, timeSlotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTimeSlotNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	courtView, err := u.courtReads.FindByID(ctx, u.db, slot.CourtID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !courtView.IsActive {
		return nil, errs.ErrCourtInactive
	}

	price, err := pricing.NewMoney(slot.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	entity := booking.NewBooking(userID, timeSlotID, price)

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	// The guarded flip is the only availability check that counts; the
	// read above is advisory.
	if err := u.slotRepo.Hold(ctx, tx, timeSlotID); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrSlotUnavailable
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := u.bookingRepo.Create(ctx, tx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := u.idempotencyRepo.MarkCompleted(ctx, tx, idempotencyKey, userID, entity.ID()); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return u.bookingQueries.GetByIDSystem(ctx, entity.ID())
}

func (u *bookingUseCaseImpl) Confirm(ctx context.Context, actor Actor, id uuid.UUID) (*queries.BookingView, error) {
	_, _, status, err := u.bookingReads.OwnerAndStatus(ctx, u.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	current, err := booking.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	switch current {
	case booking.StatusCancelled:
		return nil, errs.ErrAlreadyCancelled
	case booking.StatusConfirmed:
		return nil, errs.ErrInvalidTransition
	}

	if err := u.bookingRepo.UpdateStatus(ctx, u.db, id, booking.StatusConfirmed); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u.bookingQueries.GetByIDSystem(ctx, id)
}

func (u *bookingUseCaseImpl) Cancel(ctx context.Context, actor Actor, id uuid.UUID) (bool, error) {
	ownerID, timeSlotID, status, err := u.bookingReads.OwnerAndStatus(ctx, u.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, errs.ErrBookingNotFound
		}
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if ownerID != actor.ID && !actor.IsVendorOrAdmin() {
		return false, errs.ErrNotBookingOwner
	}
	if status == booking.StatusCancelled.String() {
		return false, nil
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	cancelled, err := u.bookingRepo.CancelIfActive(ctx, tx, id)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !cancelled {
		// A concurrent cancel won the race; nothing left to release.
		if commitErr := tx.Commit(ctx); commitErr != nil {
			return false, errs.Mark(commitErr, errs.ErrDatabaseOperationFailed)
		}
		return false, nil
	}

	if err := u.slotRepo.Release(ctx, tx, timeSlotID); err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return true, nil
}

func calculateRequestHash(req any) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
