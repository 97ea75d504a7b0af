package usecase

import (
	"context"

	"collective-lifecycle/internal/infra"
	"collective-lifecycle/internal/pkg/errs"
	"collective-lifecycle/internal/pkg/password"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidAPIKey = errs.New("invalid provider credentials")

type ProviderReadStore interface {
	FindProvider(ctx context.Context, id uuid.UUID) (*shared.ProviderRecord, error)
}

// ProviderAuthenticator checks public API credentials.
//
//go:generate mockgen -source=provider_authenticator.go -destination=../../tests/mock/usecase/provider_authenticator.go -package=usecasemock
type ProviderAuthenticator interface {
	Authenticate(ctx context.Context, providerID uuid.UUID, apiKey string) (shared.Actor, error)
}

type providerAuthenticatorImpl struct {
	store ProviderReadStore
}

func NewProviderAuthenticator(store ProviderReadStore) ProviderAuthenticator {
	return &providerAuthenticatorImpl{store: store}
}

func (p *providerAuthenticatorImpl) Authenticate(ctx context.Context, providerID uuid.UUID, apiKey string) (shared.Actor, error) {
	provider, err := p.store.FindProvider(ctx, providerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return shared.Actor{}, errs.Mark(err, ErrInvalidAPIKey)
		}
		return shared.Actor{}, err
	}
	if !provider.IsActive {
		return shared.Actor{}, ErrInvalidAPIKey
	}
	if err := password.Compare(provider.APIKeyHash, apiKey); err != nil {
		return shared.Actor{}, errs.Mark(err, ErrInvalidAPIKey)
	}
	return shared.ProviderActor(provider.ID), nil
}
