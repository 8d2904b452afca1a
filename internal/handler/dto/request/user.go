package request

import (
	"errors"
	"time"
)

var ErrInvalidBirthday = errors.New("birthday must be formatted as YYYY-MM-DD")

type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
	Birthday *string `json:"birthday,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// ParseBirthday turns the optional "YYYY-MM-DD" string into a time. A nil
// input stays nil so COALESCE-style partial updates keep the stored value.
func ParseBirthday(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, ErrInvalidBirthday
	}
	return &t, nil
}
