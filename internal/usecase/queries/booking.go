package queries

import (
	"context"

	"courtbook/internal/domain/user"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// GetByID enforces ownership: plain users only see their own bookings.
	GetByID(ctx context.Context, id, viewerID uuid.UUID, viewerRole user.Role) (*BookingView, error)
	// GetByIDSystem skips the ownership check for internal read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// List returns the viewer's own bookings; staff see every booking and
	// may narrow to a single user with filterUserID.
	List(ctx context.Context, viewerID uuid.UUID, viewerRole user.Role, filterUserID *uuid.UUID) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) ([]*BookingView, error)
	ListAll(ctx context.Context, dbtx db.DBTX) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	db        db.DBTX
}

func NewBookingQueries(readStore BookingReadStore, pool db.DBTX) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
		db:        pool,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id, viewerID uuid.UUID, viewerRole user.Role) (*BookingView, error) {
	v, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if viewerRole == user.RoleUser && v.UserID != viewerID {
		return nil, errs.ErrNotBookingOwner
	}
	return v, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	v, err := q.readStore.FindByID(ctx, q.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, viewerID uuid.UUID, viewerRole user.Role, filterUserID *uuid.UUID) ([]*BookingView, error) {
	if viewerRole == user.RoleUser {
		return q.readStore.ListByUser(ctx, q.db, viewerID)
	}
	if filterUserID != nil {
		return q.readStore.ListByUser(ctx, q.db, *filterUserID)
	}
	return q.readStore.ListAll(ctx, q.db)
}
