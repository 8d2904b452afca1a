//go:build unit

package builder

import (
	"time"

	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Password  string
	Role      string
	IsBlocked bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        uuid.New(),
		Username:  "testplayer",
		Email:     "test@example.com",
		Password:  "password123",
		Role:      "user",
		IsBlocked: false,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	now := time.Now()
	return &queries.UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsBlocked: u.IsBlocked,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (u *UserBuilder) BuildAuthorizedView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsBlocked: u.IsBlocked,
	}
}
