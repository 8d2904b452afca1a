package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsBlocked bool      `json:"is_blocked"`
}

type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	Role      string     `json:"role"`
	IsBlocked bool       `json:"is_blocked"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CourtView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type TimeSlotView struct {
	ID          uuid.UUID `json:"id"`
	CourtID     uuid.UUID `json:"court_id"`
	CourtName   string    `json:"court_name"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	PriceCents  int64     `json:"price_cents"`
	IsAvailable bool      `json:"is_available"`
}

type BookingSummary struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Status   string    `json:"status"`
}

// SlotWithBooking is the discriminated range-query result: Booking is nil for
// free slots instead of an ad-hoc optional JSON field.
type SlotWithBooking struct {
	Slot    TimeSlotView    `json:"slot"`
	Booking *BookingSummary `json:"booking,omitempty"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Username        string    `json:"username"`
	TimeSlotID      uuid.UUID `json:"time_slot_id"`
	CourtID         uuid.UUID `json:"court_id"`
	CourtName       string    `json:"court_name"`
	Date            time.Time `json:"date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type PricingRuleView struct {
	ID         uuid.UUID `json:"id"`
	CourtID    uuid.UUID `json:"court_id"`
	DayOfWeek  int       `json:"day_of_week"`
	StartTime  string    `json:"start_time"`
	PriceCents int64     `json:"price_cents"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type QuoteView struct {
	CourtID    uuid.UUID `json:"court_id"`
	Date       time.Time `json:"date"`
	StartTime  string    `json:"start_time"`
	Band       string    `json:"band"`
	PriceCents int64     `json:"price_cents"`
	FromRule   bool      `json:"from_rule"`
}

type BookingStatsView struct {
	TotalCourts      int64            `json:"total_courts"`
	TotalTimeSlots   int64            `json:"total_time_slots"`
	AvailableSlots   int64            `json:"available_slots"`
	BookingsByStatus map[string]int64 `json:"bookings_by_status"`
	RevenueCents     int64            `json:"revenue_cents"`
}

type AdminStatsView struct {
	BookingStatsView
	TotalUsers   int64            `json:"total_users"`
	BlockedUsers int64            `json:"blocked_users"`
	UsersByRole  map[string]int64 `json:"users_by_role"`
}
