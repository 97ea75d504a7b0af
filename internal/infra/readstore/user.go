package readstore

import (
	"context"

	"collective-lifecycle/internal/infra"
	"collective-lifecycle/internal/infra/db"
	"collective-lifecycle/internal/pkg/pgconv"
	"collective-lifecycle/internal/usecase/queries"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const userSelect = `SELECT id, email, password_hash, role, offerer_id, is_active FROM pro_user`

type userRow struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	OffererID    pgtype.UUID
	IsActive     bool
}

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.find(ctx, "id = $1", id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toAuthorizedUserView(row), nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.find(ctx, "email = $1", email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func (r *UserReadStore) find(ctx context.Context, where string, arg any) (userRow, error) {
	var row userRow
	err := r.db.QueryRow(ctx, userSelect+" WHERE "+where, arg).Scan(
		&row.ID, &row.Email, &row.PasswordHash, &row.Role, &row.OffererID, &row.IsActive,
	)
	return row, err
}

func toAuthorizedUserView(row userRow) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        row.ID,
		Email:     row.Email,
		Role:      row.Role,
		OffererID: pgconv.UUIDPtrFromPgtype(row.OffererID),
		IsActive:  row.IsActive,
	}
}

type ProviderReadStore struct {
	db db.DBTX
}

func NewProviderReadStore(dbtx db.DBTX) *ProviderReadStore {
	return &ProviderReadStore{db: dbtx}
}

func (r *ProviderReadStore) FindProvider(ctx context.Context, id uuid.UUID) (*shared.ProviderRecord, error) {
	var rec shared.ProviderRecord
	err := r.db.QueryRow(ctx, `SELECT id, name, api_key_hash, is_active FROM provider WHERE id = $1`, id).Scan(
		&rec.ID, &rec.Name, &rec.APIKeyHash, &rec.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("provider not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find provider", err)
	}
	return &rec, nil
}
