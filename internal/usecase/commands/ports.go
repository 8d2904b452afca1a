package commands

import (
	"context"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/court"
	"courtbook/internal/domain/pricing"
	"courtbook/internal/domain/schedule"
	"courtbook/internal/domain/user"
	"courtbook/internal/infra/db"
	"courtbook/internal/infra/repository"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

// Actor is the authenticated caller, carried from the auth middleware into
// ownership and role checks.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsVendorOrAdmin() bool {
	return a.Role == user.RoleVendor || a.Role == user.RoleAdmin
}

// Write-side ports implemented by internal/infra/repository.

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) error
	Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, params repository.UpdateUserParams) error
	SetBlocked(ctx context.Context, dbtx db.DBTX, id uuid.UUID, blocked bool) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type CourtRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *court.Court) error
	Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, params repository.UpdateCourtParams) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type TimeSlotRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, slot *schedule.TimeSlot) error
	Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, params repository.UpdateTimeSlotParams) error
	Hold(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	Release(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error
	CancelIfActive(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error)
}

type PricingRuleRepository interface {
	Upsert(ctx context.Context, dbtx db.DBTX, rule *pricing.Rule) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Reclaim(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID) (*repository.IdempotencyRecord, error)
	MarkCompleted(ctx context.Context, dbtx db.DBTX, key, userID, resultBookingID uuid.UUID) error
}

// Read-side ports the write paths need.

type UserReads interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.UserView, error)
	FindAuthorizedByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.AuthorizedUserView, error)
	CountBookings(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (int64, error)
}

type CourtReads interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.CourtView, error)
}

type TimeSlotReads interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.TimeSlotView, error)
}

type BookingReads interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.BookingView, error)
	OwnerAndStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (uuid.UUID, uuid.UUID, string, error)
}

type PricingRuleReads interface {
	FindActiveRule(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID, dayOfWeek int, startTime string) (*queries.PricingRuleView, error)
}
