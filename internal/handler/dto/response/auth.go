package response

import (
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthorizedUserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsBlocked bool      `json:"isBlocked"`
}

type LoginResponse struct {
	Token string                 `json:"token"`
	User  AuthorizedUserResponse `json:"user"`
}

func FromAuthorizedUserView(rm *queries.AuthorizedUserView) AuthorizedUserResponse {
	return AuthorizedUserResponse{
		ID:        rm.ID,
		Username:  rm.Username,
		Email:     rm.Email,
		Role:      rm.Role,
		IsBlocked: rm.IsBlocked,
	}
}
