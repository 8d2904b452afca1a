package court

import (
	"errors"
	"strings"
	"time"

	"courtbook/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrEmptyName   = errors.New("court name must not be empty")
	ErrNameTooLong = errors.New("court name must be at most 100 characters")
)

const maxNameLength = 100

type Court struct {
	id          uuid.UUID
	name        string
	description string
	hourlyRate  pricing.Money
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCourt(name, description string, hourlyRate pricing.Money) (*Court, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > maxNameLength {
		return nil, ErrNameTooLong
	}

	return &Court{
		id:          uuid.New(),
		name:        name,
		description: description,
		hourlyRate:  hourlyRate,
		isActive:    true,
	}, nil
}

func ReconstructCourt(
	id uuid.UUID,
	name, description string,
	hourlyRate pricing.Money,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Court {
	return &Court{
		id:          id,
		name:        name,
		description: description,
		hourlyRate:  hourlyRate,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Court) ID() uuid.UUID             { return c.id }
func (c *Court) Name() string              { return c.name }
func (c *Court) Description() string       { return c.description }
func (c *Court) HourlyRate() pricing.Money { return c.hourlyRate }
func (c *Court) IsActive() bool            { return c.isActive }
func (c *Court) CreatedAt() time.Time      { return c.createdAt }
func (c *Court) UpdatedAt() time.Time      { return c.updatedAt }
