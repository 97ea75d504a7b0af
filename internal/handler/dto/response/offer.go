package response

import (
	"time"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OfferResponse struct {
	ID              uuid.UUID        `json:"id"`
	OffererID       uuid.UUID        `json:"offererId"`
	ProviderID      *uuid.UUID       `json:"providerId,omitempty"`
	Name            string           `json:"name"`
	Validation      string           `json:"validation"`
	DateCreated     time.Time        `json:"dateCreated"`
	DisplayedStatus string           `json:"displayedStatus"`
	AllowedActions  []string         `json:"allowedActions" copier:"-"`
	IsBookable      bool             `json:"isBookable"`
	IsSoldOut       bool             `json:"isSoldOut"`
	IsEditable      bool             `json:"isEditable"`
	IsArchived      bool             `json:"isArchived"`
	IsPublicAPI     bool             `json:"isPublicApi"`
	Stock           *StockResponse   `json:"stock" copier:"-"`
	Booking         *BookingResponse `json:"booking" copier:"-"`
}

type StockResponse struct {
	ID                   uuid.UUID  `json:"id"`
	BeginningDatetime    *time.Time `json:"beginningDatetime"`
	EndDatetime          *time.Time `json:"endDatetime"`
	BookingLimitDatetime time.Time  `json:"bookingLimitDatetime"`
	PriceCents           int64      `json:"priceCents"`
}

type BookingResponse struct {
	ID                    uuid.UUID  `json:"id"`
	Status                string     `json:"status"`
	DateCreated           time.Time  `json:"dateCreated"`
	ConfirmationLimitDate time.Time  `json:"confirmationLimitDate"`
	CancellationLimitDate time.Time  `json:"cancellationLimitDate"`
	CancellationReason    *string    `json:"cancellationReason,omitempty" copier:"-"`
	CancellationDate      *time.Time `json:"cancellationDate,omitempty"`
}

type OfferListResponse struct {
	Offers     []*OfferResponse `json:"offers"`
	NextCursor string           `json:"nextCursor,omitempty"`
}

type TemplateResponse struct {
	ID              uuid.UUID      `json:"id"`
	OffererID       uuid.UUID      `json:"offererId"`
	Name            string         `json:"name"`
	Validation      string         `json:"validation"`
	DateCreated     time.Time      `json:"dateCreated"`
	DateRange       *DateRangeJSON `json:"dateRange" copier:"-"`
	DisplayedStatus string         `json:"displayedStatus"`
	AllowedActions  []string       `json:"allowedActions" copier:"-"`
	IsEditable      bool           `json:"isEditable"`
	IsArchived      bool           `json:"isArchived"`
}

type DateRangeJSON struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type BookingCreatedResponse struct {
	BookingID  uuid.UUID `json:"bookingId"`
	IsReplayed bool      `json:"isReplayed"`
}

// FromOfferView copies the flat fields by name; typed enums become plain strings.
func FromOfferView(v *queries.OfferView) (*OfferResponse, error) {
	res := &OfferResponse{AllowedActions: actionStrings(v.AllowedActions)}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}

	if v.Stock != nil {
		res.Stock = &StockResponse{}
		if err := copier.Copy(res.Stock, v.Stock); err != nil {
			return nil, err
		}
	}

	if v.Booking != nil {
		res.Booking = &BookingResponse{}
		if err := copier.Copy(res.Booking, v.Booking); err != nil {
			return nil, err
		}
		if r := v.Booking.CancellationReason; r != nil {
			reason := r.String()
			res.Booking.CancellationReason = &reason
		}
	}
	return res, nil
}

func FromOfferViews(views []*queries.OfferView, next *queries.Cursor) (*OfferListResponse, error) {
	res := &OfferListResponse{Offers: make([]*OfferResponse, 0, len(views))}
	for _, v := range views {
		item, err := FromOfferView(v)
		if err != nil {
			return nil, err
		}
		res.Offers = append(res.Offers, item)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}

func FromTemplateView(v *queries.TemplateView) (*TemplateResponse, error) {
	res := &TemplateResponse{AllowedActions: actionStrings(v.AllowedActions)}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	if v.DateRange != nil {
		res.DateRange = &DateRangeJSON{Start: v.DateRange.Start, End: v.DateRange.End}
	}
	return res, nil
}

func actionStrings(actions []collective.AllowedAction) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.String()
	}
	return out
}
