package shared

import (
	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	Kind       collective.ActorKind
	UserID     uuid.UUID
	Role       user.Role
	OffererID  *uuid.UUID
	ProviderID *uuid.UUID
}

func ProActor(userID uuid.UUID, role user.Role, offererID *uuid.UUID) Actor {
	return Actor{Kind: collective.ActorPro, UserID: userID, Role: role, OffererID: offererID}
}

func ProviderActor(providerID uuid.UUID) Actor {
	return Actor{Kind: collective.ActorPublicAPI, ProviderID: &providerID}
}

func (a Actor) IsAdmin() bool {
	return a.Kind == collective.ActorPro && a.Role == user.RoleAdmin
}

// ID identifies the actor in logs and events.
func (a Actor) ID() uuid.UUID {
	if a.Kind == collective.ActorPublicAPI && a.ProviderID != nil {
		return *a.ProviderID
	}
	return a.UserID
}

// CanAccessOffer reports whether the actor may read or act on an offer of the given owner.
func (a Actor) CanAccessOffer(offererID uuid.UUID, providerID *uuid.UUID) bool {
	switch a.Kind {
	case collective.ActorPublicAPI:
		return a.ProviderID != nil && providerID != nil && *a.ProviderID == *providerID
	case collective.ActorPro:
		if a.IsAdmin() {
			return true
		}
		return a.Role == user.RolePro && a.OffererID != nil && *a.OffererID == offererID
	}
	panic("unknown actor kind: " + string(a.Kind))
}

// CanAccessTemplate applies the offerer rule; templates are never owned by providers.
func (a Actor) CanAccessTemplate(offererID uuid.UUID) bool {
	return a.Kind == collective.ActorPro && a.CanAccessOffer(offererID, nil)
}

// CancellationReason is the reason recorded when this actor cancels a booking.
func (a Actor) CancellationReason() collective.CancellationReason {
	switch a.Kind {
	case collective.ActorPublicAPI:
		return collective.ReasonPublicAPI
	case collective.ActorPro:
		if a.IsAdmin() {
			return collective.ReasonBackoffice
		}
		return collective.ReasonOfferer
	}
	panic("unknown actor kind: " + string(a.Kind))
}
