//go:build unit || e2e

package builder

import (
	"collective-lifecycle/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	OffererID    *uuid.UUID
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	offererID := DefaultOffererID
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "pro@example.com",
		PasswordHash: "hashed_password",
		Role:         "pro",
		OffererID:    &offererID,
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		OffererID: u.OffererID,
		IsActive:  u.IsActive,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithOffererID(offererID uuid.UUID) *UserBuilder {
	u.OffererID = &offererID
	return u
}

func (u *UserBuilder) WithoutOfferer() *UserBuilder {
	u.OffererID = nil
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
