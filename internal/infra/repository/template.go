package repository

import (
	"context"
	"time"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/infra"
	"collective-lifecycle/internal/infra/db"
	"collective-lifecycle/internal/infra/readstore"
	"collective-lifecycle/internal/pkg/pgconv"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/google/uuid"
)

type TemplateRepository struct {
	db db.DBTX
}

func NewTemplateRepository(dbtx db.DBTX) *TemplateRepository {
	return &TemplateRepository{db: dbtx}
}

func (r *TemplateRepository) GetForUpdate(ctx context.Context, templateID uuid.UUID) (*shared.TemplateRecord, error) {
	rec, err := readstore.LoadTemplate(ctx, r.db, "FOR UPDATE", templateID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock collective offer template", err)
	}
	return rec, nil
}

func (r *TemplateRepository) Archive(ctx context.Context, templateIDs []uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE collective_offer_template SET date_archived = $2, is_active = FALSE
		WHERE id = ANY($1) AND date_archived IS NULL`,
		templateIDs, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to archive templates", err)
	}
	return nil
}

func (r *TemplateRepository) SetValidation(ctx context.Context, templateID uuid.UUID, v collective.ValidationStatus) error {
	return r.update(ctx, `UPDATE collective_offer_template SET validation = $2 WHERE id = $1`, templateID, v.String())
}

func (r *TemplateRepository) SetActive(ctx context.Context, templateID uuid.UUID, active bool) error {
	return r.update(ctx, `UPDATE collective_offer_template SET is_active = $2 WHERE id = $1`, templateID, active)
}

func (r *TemplateRepository) update(ctx context.Context, sql string, id uuid.UUID, value any) error {
	tag, err := r.db.Exec(ctx, sql, id, value)
	if err != nil {
		return infra.WrapRepoErr("failed to update template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("template not found", nil, infra.KindNotFound)
	}
	return nil
}
