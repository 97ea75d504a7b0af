package auth

import (
	"errors"
	"strings"

	"collective-lifecycle/internal/domain/user"

	"github.com/google/uuid"
)

var ErrMissingProviderCredentials = errors.New("provider id and api key are required")

// Credentials authenticate a pro user or an institution redactor.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{email: email, password: password}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// ProviderCredentials authenticate a public API integration.
type ProviderCredentials struct {
	providerID uuid.UUID
	apiKey     string
}

func NewProviderCredentials(providerID, apiKey string) (ProviderCredentials, error) {
	id, err := uuid.Parse(strings.TrimSpace(providerID))
	if err != nil || id == uuid.Nil {
		return ProviderCredentials{}, ErrMissingProviderCredentials
	}
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return ProviderCredentials{}, ErrMissingProviderCredentials
	}
	return ProviderCredentials{providerID: id, apiKey: apiKey}, nil
}

func (c ProviderCredentials) ProviderID() uuid.UUID {
	return c.providerID
}

func (c ProviderCredentials) APIKey() string {
	return c.apiKey
}
