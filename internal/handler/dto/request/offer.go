package request

import (
	"time"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/pkg/errs"
	"collective-lifecycle/internal/usecase/commands"
	"collective-lifecycle/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errs.New("invalid displayed status")

type ListOffersQuery struct {
	OffererID string   `form:"offererId" binding:"omitempty,uuid"`
	Statuses  []string `form:"status"`
	SoldOut   *bool    `form:"soldOut"`
	Limit     int      `form:"limit" binding:"omitempty,min=1,max=200"`
	After     string   `form:"after"`
}

func (q *ListOffersQuery) ToFilter() (queries.OfferFilter, error) {
	filter := queries.OfferFilter{SoldOut: q.SoldOut, Limit: q.Limit}

	if q.OffererID != "" {
		id, err := uuid.Parse(q.OffererID)
		if err != nil {
			return queries.OfferFilter{}, err
		}
		filter.OffererID = &id
	}

	for _, s := range q.Statuses {
		status, err := collective.NewDisplayedStatus(s)
		if err != nil {
			return queries.OfferFilter{}, errs.WithDetail(errs.Mark(err, ErrInvalidStatus), s)
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	if q.After != "" {
		filter.Cursor = &queries.Cursor{After: q.After}
	}
	return filter, nil
}

type ArchiveRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1,max=100"`
}

// EditDatesRequest leaves a date untouched when it is omitted.
type EditDatesRequest struct {
	BeginningDatetime    *time.Time `json:"beginningDatetime"`
	EndDatetime          *time.Time `json:"endDatetime"`
	BookingLimitDatetime *time.Time `json:"bookingLimitDatetime"`
}

func (r *EditDatesRequest) ToCommand() commands.EditDatesRequest {
	return commands.EditDatesRequest{
		BeginningDatetime:    r.BeginningDatetime,
		EndDatetime:          r.EndDatetime,
		BookingLimitDatetime: r.BookingLimitDatetime,
	}
}

func (r *EditDatesRequest) IsEmpty() bool {
	return r.BeginningDatetime == nil && r.EndDatetime == nil && r.BookingLimitDatetime == nil
}

type SetActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
