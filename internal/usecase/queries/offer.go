package queries

import (
	"context"
	"slices"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/infra"
	"collective-lifecycle/internal/pkg/clock"
	"collective-lifecycle/internal/pkg/errs"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOfferNotFound    = errs.New("offer not found")
	ErrTemplateNotFound = errs.New("template not found")
	ErrForbidden        = errs.New("access to offer denied")
	ErrInvalidCursor    = errs.New("invalid cursor")
)

//go:generate mockgen -source=offer.go -destination=../../../tests/mock/queries/offer.go -package=queriesmock
type OfferReadStore interface {
	FindOffer(ctx context.Context, id uuid.UUID) (*shared.OfferRecord, error)
	ListOffers(ctx context.Context, p OfferListParams) ([]*shared.OfferRecord, error)
}

type OfferFilter struct {
	OffererID *uuid.UUID
	Statuses  []collective.DisplayedStatus
	SoldOut   *bool
	Cursor    *Cursor
	Limit     int
}

type OfferQueries interface {
	Get(ctx context.Context, offerID uuid.UUID, actor shared.Actor) (*OfferView, error)
	List(ctx context.Context, filter OfferFilter, actor shared.Actor) ([]*OfferView, *Cursor, error)
}

type offerQueriesImpl struct {
	store  OfferReadStore
	engine *collective.Engine
	clock  clock.Clock
}

func NewOfferQueries(store OfferReadStore, engine *collective.Engine, clk clock.Clock) OfferQueries {
	return &offerQueriesImpl{store: store, engine: engine, clock: clk}
}

func (q *offerQueriesImpl) Get(ctx context.Context, offerID uuid.UUID, actor shared.Actor) (*OfferView, error) {
	rec, err := q.store.FindOffer(ctx, offerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOfferNotFound)
		}
		return nil, err
	}

	if !actor.CanAccessOffer(rec.OffererID, rec.ProviderID) {
		return nil, ErrForbidden
	}

	return q.view(rec), nil
}

// List pages through the actor's offers. Status filtering happens after derivation,
// so a page may hold fewer items than the limit while a next cursor is still returned.
func (q *offerQueriesImpl) List(ctx context.Context, filter OfferFilter, actor shared.Actor) ([]*OfferView, *Cursor, error) {
	params := OfferListParams{
		OffererID: filter.OffererID,
		SoldOut:   filter.SoldOut,
		Limit:     ValidateLimit(filter.Limit),
	}

	if !actor.IsAdmin() {
		if actor.OffererID == nil {
			return nil, nil, ErrForbidden
		}
		if params.OffererID != nil && *params.OffererID != *actor.OffererID {
			return nil, nil, ErrForbidden
		}
		params.OffererID = actor.OffererID
	}

	if filter.Cursor != nil && filter.Cursor.After != "" {
		after, err := DecodeAfterCursor(filter.Cursor.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidCursor)
		}
		params.After = &after
	}

	limit := params.Limit
	params.Limit = limit + 1
	recs, err := q.store.ListOffers(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(recs) > limit {
		last := recs[limit-1]
		next = &Cursor{After: EncodeAfterCursor(Keyset{CreatedAt: last.DateCreated, ID: last.ID})}
		recs = recs[:limit]
	}

	views := make([]*OfferView, 0, len(recs))
	for _, rec := range recs {
		v := q.view(rec)
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, v.DisplayedStatus) {
			continue
		}
		views = append(views, v)
	}
	return views, next, nil
}

func (q *offerQueriesImpl) view(rec *shared.OfferRecord) *OfferView {
	offer, stock := rec.Facts()
	return NewOfferView(rec, q.engine.Offer(q.clock.Now(), offer, stock))
}
