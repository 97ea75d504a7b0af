package request

import (
	"collective-lifecycle/internal/domain/auth"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

// RefreshRequest is optional when the refresh token cookie is present.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}
