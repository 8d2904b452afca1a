package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	username     Username
	email        Email
	passwordHash string
	birthday     *time.Time
	role         Role
	isBlocked    bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username Username, email Email, passwordHash string, role Role, birthday *time.Time) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		birthday:     birthday,
		role:         role,
		isBlocked:    false,
	}
}

func ReconstructUser(
	id uuid.UUID,
	username Username,
	email Email,
	passwordHash string,
	birthday *time.Time,
	role Role,
	isBlocked bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		birthday:     birthday,
		role:         role,
		isBlocked:    isBlocked,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Block is idempotent: blocking a blocked user leaves it blocked.
func (u *User) Block() {
	u.isBlocked = true
}

func (u *User) Unblock() {
	u.isBlocked = false
}

func (u *User) CanBook() bool {
	return !u.isBlocked
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Birthday() *time.Time { return u.birthday }
func (u *User) Role() Role           { return u.role }
func (u *User) IsBlocked() bool      { return u.isBlocked }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
