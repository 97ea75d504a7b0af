package readstore

import (
	"context"
	"fmt"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/infra"
	"collective-lifecycle/internal/infra/db"
	"collective-lifecycle/internal/pkg/pgconv"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const templateSelect = `
SELECT t.id, t.offerer_id, t.name, t.validation, t.is_active, t.date_archived, t.date_created,
       t.start_date, t.end_date
FROM collective_offer_template t`

type templateRow struct {
	ID           uuid.UUID
	OffererID    uuid.UUID
	Name         string
	Validation   string
	IsActive     bool
	DateArchived pgtype.Timestamptz
	DateCreated  pgtype.Timestamptz
	StartDate    pgtype.Timestamptz
	EndDate      pgtype.Timestamptz
}

func rowToTemplateRecord(r templateRow) (*shared.TemplateRecord, error) {
	validation, err := collective.NewValidationStatus(r.Validation)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", r.ID, err)
	}
	rec := &shared.TemplateRecord{
		ID:           r.ID,
		OffererID:    r.OffererID,
		Name:         r.Name,
		Validation:   validation,
		IsActive:     r.IsActive,
		DateArchived: pgconv.TimePtrFromPgtype(r.DateArchived),
		DateCreated:  pgconv.TimeFromPgtype(r.DateCreated),
	}
	if r.StartDate.Valid && r.EndDate.Valid {
		rec.DateRange = &collective.DateRange{
			Start: pgconv.TimeFromPgtype(r.StartDate),
			End:   pgconv.TimeFromPgtype(r.EndDate),
		}
	}
	return rec, nil
}

// LoadTemplate reads one template; suffix is appended after the WHERE clause.
func LoadTemplate(ctx context.Context, dbtx db.DBTX, suffix string, id uuid.UUID) (*shared.TemplateRecord, error) {
	var r templateRow
	err := dbtx.QueryRow(ctx, templateSelect+" WHERE t.id = $1 "+suffix, id).Scan(
		&r.ID, &r.OffererID, &r.Name, &r.Validation, &r.IsActive,
		&r.DateArchived, &r.DateCreated, &r.StartDate, &r.EndDate,
	)
	if err != nil {
		return nil, err
	}
	return rowToTemplateRecord(r)
}

type TemplateReadStore struct {
	db db.DBTX
}

func NewTemplateReadStore(dbtx db.DBTX) *TemplateReadStore {
	return &TemplateReadStore{db: dbtx}
}

func (r *TemplateReadStore) FindTemplate(ctx context.Context, id uuid.UUID) (*shared.TemplateRecord, error) {
	rec, err := LoadTemplate(ctx, r.db, "", id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find template by ID", err)
	}
	return rec, nil
}

