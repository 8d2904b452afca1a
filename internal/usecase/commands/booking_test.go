//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/user"
	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/infra/repository"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
)

// The fakes below embed their port interface so unused methods panic loudly
// instead of silently succeeding.

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	log        *[]string
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	*t.log = append(*t.log, "commit")
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	db.DBTX
	tx *fakeTx
}

func (f *fakeDB) Begin(context.Context) (pgx.Tx, error) { return f.tx, nil }

type fakeUserReads struct {
	UserReads
	account *queries.AuthorizedUserView
}

func (f *fakeUserReads) FindAuthorizedByID(context.Context, db.DBTX, uuid.UUID) (*queries.AuthorizedUserView, error) {
	return f.account, nil
}

type fakeTimeSlotReads struct {
	TimeSlotReads
	slot *queries.TimeSlotView
}

func (f *fakeTimeSlotReads) FindByID(context.Context, db.DBTX, uuid.UUID) (*queries.TimeSlotView, error) {
	return f.slot, nil
}

type fakeCourtReads struct {
	CourtReads
	court *queries.CourtView
}

func (f *fakeCourtReads) FindByID(context.Context, db.DBTX, uuid.UUID) (*queries.CourtView, error) {
	return f.court, nil
}

type fakeBookingReads struct {
	BookingReads
	ownerID uuid.UUID
	slotID  uuid.UUID
	status  string
	err     error
}

func (f *fakeBookingReads) OwnerAndStatus(context.Context, db.DBTX, uuid.UUID) (uuid.UUID, uuid.UUID, string, error) {
	if f.err != nil {
		return uuid.Nil, uuid.Nil, "", f.err
	}
	return f.ownerID, f.slotID, f.status, nil
}

type fakeSlotRepo struct {
	TimeSlotRepository
	holdErr error
	log     *[]string
}

func (f *fakeSlotRepo) Hold(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	if f.holdErr != nil {
		return f.holdErr
	}
	*f.log = append(*f.log, "hold")
	return nil
}

func (f *fakeSlotRepo) Release(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	*f.log = append(*f.log, "release")
	return nil
}

type fakeBookingRepo struct {
	BookingRepository
	created   *booking.Booking
	cancelWon bool
	log       *[]string
}

func (f *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) error {
	f.created = b
	*f.log = append(*f.log, "insert")
	return nil
}

func (f *fakeBookingRepo) CancelIfActive(context.Context, db.DBTX, uuid.UUID) (bool, error) {
	*f.log = append(*f.log, "cancel")
	return f.cancelWon, nil
}

type fakeIdempotencyRepo struct {
	IdempotencyRepository
	claimed     bool
	record      *repository.IdempotencyRecord
	reclaimWon  bool
	reclaimed   bool
	completedID uuid.UUID
	log         *[]string
}

func (f *fakeIdempotencyRepo) TryInsert(context.Context, db.DBTX, uuid.UUID, uuid.UUID, string, string, time.Time) (bool, error) {
	return f.claimed, nil
}

func (f *fakeIdempotencyRepo) Get(context.Context, db.DBTX, uuid.UUID, uuid.UUID) (*repository.IdempotencyRecord, error) {
	return f.record, nil
}

func (f *fakeIdempotencyRepo) Reclaim(context.Context, db.DBTX, uuid.UUID, uuid.UUID, string, time.Time) (bool, error) {
	f.reclaimed = true
	return f.reclaimWon, nil
}

func (f *fakeIdempotencyRepo) MarkCompleted(_ context.Context, _ db.DBTX, _, _, resultBookingID uuid.UUID) error {
	f.completedID = resultBookingID
	*f.log = append(*f.log, "complete")
	return nil
}

type fakeBookingQueries struct {
	view *queries.BookingView
}

func (f *fakeBookingQueries) GetByID(context.Context, uuid.UUID, uuid.UUID, user.Role) (*queries.BookingView, error) {
	return f.view, nil
}

func (f *fakeBookingQueries) GetByIDSystem(context.Context, uuid.UUID) (*queries.BookingView, error) {
	return f.view, nil
}

func (f *fakeBookingQueries) List(context.Context, uuid.UUID, user.Role, *uuid.UUID) ([]*queries.BookingView, error) {
	return []*queries.BookingView{f.view}, nil
}

type BookingCommandTestSuite struct {
	suite.Suite

	log            []string
	tx             *fakeTx
	pool           *fakeDB
	slotRepo       *fakeSlotRepo
	bookingRepo    *fakeBookingRepo
	idemRepo       *fakeIdempotencyRepo
	userReads      *fakeUserReads
	slotReads      *fakeTimeSlotReads
	courtReads     *fakeCourtReads
	bookingReads   *fakeBookingReads
	bookingQueries *fakeBookingQueries
	clk            *clock.MockClock

	uc     BookingCommands
	actor  Actor
	slotID uuid.UUID
	key    uuid.UUID
	req    reqdto.CreateBookingRequest
}

func (s *BookingCommandTestSuite) SetupTest() {
	s.log = nil
	s.tx = &fakeTx{log: &s.log}
	s.pool = &fakeDB{tx: s.tx}
	s.slotID = uuid.New()
	s.key = uuid.New()
	s.req = reqdto.CreateBookingRequest{TimeSlotID: s.slotID}
	s.actor = Actor{ID: uuid.New(), Role: user.RoleUser}
	s.clk = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	s.slotRepo = &fakeSlotRepo{log: &s.log}
	s.bookingRepo = &fakeBookingRepo{log: &s.log, cancelWon: true}
	s.idemRepo = &fakeIdempotencyRepo{claimed: true, log: &s.log}
	s.userReads = &fakeUserReads{account: &queries.AuthorizedUserView{ID: s.actor.ID, Role: "user"}}
	courtID := uuid.New()
	s.slotReads = &fakeTimeSlotReads{slot: &queries.TimeSlotView{
		ID: s.slotID, CourtID: courtID, PriceCents: 3000, IsAvailable: true,
	}}
	s.courtReads = &fakeCourtReads{court: &queries.CourtView{ID: courtID, IsActive: true}}
	s.bookingReads = &fakeBookingReads{ownerID: s.actor.ID, slotID: s.slotID, status: "pending"}
	s.bookingQueries = &fakeBookingQueries{view: &queries.BookingView{UserID: s.actor.ID}}

	s.uc = NewBookingUseCase(
		s.bookingRepo, s.slotRepo, s.idemRepo,
		s.userReads, s.slotReads, s.courtReads, s.bookingReads,
		s.bookingQueries, s.pool, s.clk,
	)
}

func TestBookingCommandSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandTestSuite))
}

func (s *BookingCommandTestSuite) TestCreate() {
	s.Run("fresh request holds the slot, inserts, and completes the key in order", func() {
		s.SetupTest()

		result, err := s.uc.Create(context.Background(), s.actor, s.req, s.key)

		s.Require().NoError(err)
		s.False(result.IsReplayed)
		s.Equal([]string{"hold", "insert", "complete", "commit"}, s.log)
		s.Require().NotNil(s.bookingRepo.created)
		s.Equal(s.actor.ID, s.bookingRepo.created.UserID())
		s.Equal(s.slotID, s.bookingRepo.created.TimeSlotID())
		s.Equal(int64(3000), s.bookingRepo.created.TotalPrice().Cents())
		s.Equal(s.bookingRepo.created.ID(), s.idemRepo.completedID)
	})

	s.Run("unavailable slot aborts with nothing written", func() {
		s.SetupTest()
		s.slotRepo.holdErr = infra.WrapRepoErr("no available slot row", nil, infra.KindConflict)

		_, err := s.uc.Create(context.Background(), s.actor, s.req, s.key)

		s.ErrorIs(err, errs.ErrSlotUnavailable)
		s.Nil(s.bookingRepo.created)
		s.False(s.tx.committed)
		s.True(s.tx.rolledBack)
	})

	s.Run("blocked account is rejected before any write", func() {
		s.SetupTest()
		s.userReads.account.IsBlocked = true

		_, err := s.uc.Create(context.Background(), s.actor, s.req, s.key)

		s.ErrorIs(err, errs.ErrUserBlocked)
		s.Empty(s.log)
	})

	s.Run("replayed key returns the stored booking without a transaction", func() {
		s.SetupTest()
		bookingID := uuid.New()
		s.idemRepo.claimed = false
		s.idemRepo.record = &repository.IdempotencyRecord{
			Key: s.key, UserID: s.actor.ID, Status: "completed",
			RequestHash:     calculateRequestHash(s.req),
			ResultBookingID: &bookingID,
			ExpiresAt:       s.clk.Now().Add(12 * time.Hour),
		}

		result, err := s.uc.Create(context.Background(), s.actor, s.req, s.key)

		s.Require().NoError(err)
		s.True(result.IsReplayed)
		s.Empty(s.log)
	})

	s.Run("key reused with a different payload is a conflict", func() {
		s.SetupTest()
		s.idemRepo.claimed = false
		s.idemRepo.record = &repository.IdempotencyRecord{
			Key: s.key, UserID: s.actor.ID, Status: "completed",
			RequestHash: "some-other-payload",
			ExpiresAt:   s.clk.Now().Add(12 * time.Hour),
		}

		_, err := s.uc.Create(context.Background(), s.actor, s.req, s.key)
		s.ErrorIs(err, errs.ErrIdempotencyReplay)
	})

	s.Run("live processing key answers in progress", func() {
		s.SetupTest()
		s.idemRepo.claimed = false
		s.idemRepo.record = &repository.IdempotencyRecord{
			Key: s.key, UserID: s.actor.ID, Status: "processing",
			RequestHash: calculateRequestHash(s.req),
			ExpiresAt:   s.clk.Now().Add(12 * time.Hour),
		}

		_, err := s.uc.Create(context.Background(), s.actor, s.req, s.key)

		s.ErrorIs(err, errs.ErrRequestInProgress)
		s.False(s.idemRepo.reclaimed)
	})

	s.Run("stale processing key is reclaimed and the booking proceeds", func() {
		s.SetupTest()
		s.idemRepo.claimed = false
		s.idemRepo.reclaimWon = true
		s.idemRepo.record = &repository.IdempotencyRecord{
			Key: s.key, UserID: s.actor.ID, Status: "processing",
			RequestHash: calculateRequestHash(s.req),
			ExpiresAt:   s.clk.Now().Add(-48 * time.Hour),
		}

		result, err := s.uc.Create(context.Background(), s.actor, s.req, s.key)

		s.Require().NoError(err)
		s.False(result.IsReplayed)
		s.True(s.idemRepo.reclaimed)
		s.Equal([]string{"hold", "insert", "complete", "commit"}, s.log)
	})

	s.Run("stale key lost to a concurrent reclaim stays in progress", func() {
		s.SetupTest()
		s.idemRepo.claimed = false
		s.idemRepo.reclaimWon = false
		s.idemRepo.record = &repository.IdempotencyRecord{
			Key: s.key, UserID: s.actor.ID, Status: "processing",
			RequestHash: calculateRequestHash(s.req),
			ExpiresAt:   s.clk.Now().Add(-48 * time.Hour),
		}

		_, err := s.uc.Create(context.Background(), s.actor, s.req, s.key)

		s.ErrorIs(err, errs.ErrRequestInProgress)
		s.True(s.idemRepo.reclaimed)
		s.Empty(s.log)
	})
}

func (s *BookingCommandTestSuite) TestCancel() {
	id := uuid.New()

	s.Run("owner cancel releases the slot in the same transaction", func() {
		s.SetupTest()

		didCancel, err := s.uc.Cancel(context.Background(), s.actor, id)

		s.Require().NoError(err)
		s.True(didCancel)
		s.Equal([]string{"cancel", "release", "commit"}, s.log)
	})

	s.Run("repeat cancel is a no-op without a transaction", func() {
		s.SetupTest()
		s.bookingReads.status = "cancelled"

		didCancel, err := s.uc.Cancel(context.Background(), s.actor, id)

		s.Require().NoError(err)
		s.False(didCancel)
		s.Empty(s.log)
	})

	s.Run("losing a concurrent cancel skips the release", func() {
		s.SetupTest()
		s.bookingRepo.cancelWon = false

		didCancel, err := s.uc.Cancel(context.Background(), s.actor, id)

		s.Require().NoError(err)
		s.False(didCancel)
		s.Equal([]string{"cancel", "commit"}, s.log)
	})

	s.Run("another user's booking is refused", func() {
		s.SetupTest()
		s.bookingReads.ownerID = uuid.New()

		_, err := s.uc.Cancel(context.Background(), s.actor, id)

		s.ErrorIs(err, errs.ErrNotBookingOwner)
		s.Empty(s.log)
	})

	s.Run("staff may cancel another user's booking", func() {
		s.SetupTest()
		s.bookingReads.ownerID = uuid.New()
		s.actor.Role = user.RoleAdmin

		didCancel, err := s.uc.Cancel(context.Background(), s.actor, id)

		s.Require().NoError(err)
		s.True(didCancel)
	})
}
