package collective

import (
	"time"

	"github.com/google/uuid"
)

type OfferFacts struct {
	ID               uuid.UUID
	Validation       ValidationStatus
	IsActive         bool
	DateArchived     *time.Time
	IsPublicAPI      bool
	ProviderPresent  bool
	OffererValidated bool
	OffererActive    bool
}

func (o OfferFacts) IsArchived() bool {
	return o.DateArchived != nil
}

func (o OfferFacts) State() OfferState {
	return OfferState{
		Validation:       o.Validation,
		IsActive:         o.IsActive,
		OffererValidated: o.OffererValidated,
		OffererActive:    o.OffererActive,
	}
}

type DateRange struct {
	Start time.Time
	End   time.Time
}

type TemplateFacts struct {
	ID           uuid.UUID
	Validation   ValidationStatus
	IsActive     bool
	DateArchived *time.Time
	DateRange    *DateRange
}

func (t TemplateFacts) IsArchived() bool {
	return t.DateArchived != nil
}

// IsEditable mirrors the stock rule for templates, which have no bookings.
func (t TemplateFacts) IsEditable() bool {
	return t.Validation == ValidationApproved || t.Validation == ValidationDraft
}
