package request

type CreateCourtRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Description     string `json:"description"`
	HourlyRateCents int64  `json:"hourly_rate_cents" binding:"required,gt=0"`
}

type UpdateCourtRequest struct {
	Name            *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Description     *string `json:"description,omitempty"`
	HourlyRateCents *int64  `json:"hourly_rate_cents,omitempty" binding:"omitempty,gt=0"`
	IsActive        *bool   `json:"is_active,omitempty"`
}
