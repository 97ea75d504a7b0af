package queries

import (
	"context"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/infra"
	"collective-lifecycle/internal/pkg/errs"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=template.go -destination=../../../tests/mock/queries/template.go -package=queriesmock
type TemplateReadStore interface {
	FindTemplate(ctx context.Context, id uuid.UUID) (*shared.TemplateRecord, error)
}

type TemplateQueries interface {
	Get(ctx context.Context, templateID uuid.UUID, actor shared.Actor) (*TemplateView, error)
}

type templateQueriesImpl struct {
	store  TemplateReadStore
	engine *collective.Engine
}

func NewTemplateQueries(store TemplateReadStore, engine *collective.Engine) TemplateQueries {
	return &templateQueriesImpl{store: store, engine: engine}
}

func (q *templateQueriesImpl) Get(ctx context.Context, templateID uuid.UUID, actor shared.Actor) (*TemplateView, error) {
	rec, err := q.store.FindTemplate(ctx, templateID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrTemplateNotFound)
		}
		return nil, err
	}

	if !actor.CanAccessTemplate(rec.OffererID) {
		return nil, ErrForbidden
	}

	return NewTemplateView(rec, q.engine.Template(rec.Facts())), nil
}
