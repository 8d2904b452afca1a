package response

import (
	"time"

	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Birthday  *string   `json:"birthday,omitempty"`
	Role      string    `json:"role"`
	IsBlocked bool      `json:"isBlocked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromUserView(rm *queries.UserView) *UserResponse {
	resp := &UserResponse{
		ID:        rm.ID,
		Username:  rm.Username,
		Email:     rm.Email,
		Role:      rm.Role,
		IsBlocked: rm.IsBlocked,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
	if rm.Birthday != nil {
		b := rm.Birthday.Format("2006-01-02")
		resp.Birthday = &b
	}
	return resp
}

func FromUserViews(rms []*queries.UserView) []*UserResponse {
	out := make([]*UserResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromUserView(rm)
	}
	return out
}
