package repository

import (
	"context"
	"time"

	"collective-lifecycle/internal/infra"
	"collective-lifecycle/internal/infra/db"
	"collective-lifecycle/internal/pkg/pgconv"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertOutboxSQL = `
INSERT INTO outbox_event (id, aggregate_type, aggregate_id, event_type, payload, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const claimOutboxSQL = `
SELECT id, aggregate_type, aggregate_id, event_type, payload, created_at
FROM outbox_event
WHERE published_at IS NULL
ORDER BY created_at, id
LIMIT $1
FOR UPDATE SKIP LOCKED`

type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(dbtx db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: dbtx}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, events ...shared.OutboxEvent) error {
	for _, e := range events {
		_, err := r.db.Exec(ctx, insertOutboxSQL,
			e.ID, e.AggregateType, e.AggregateID, e.EventType, []byte(e.Payload), pgconv.TimeToPgtype(e.CreatedAt))
		if err != nil {
			return infra.WrapRepoErr("failed to enqueue outbox event", err)
		}
	}
	return nil
}

func (r *OutboxRepository) ClaimUnpublished(ctx context.Context, limit int) ([]shared.OutboxEvent, error) {
	rows, err := r.db.Query(ctx, claimOutboxSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}

	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (shared.OutboxEvent, error) {
		var (
			e         shared.OutboxEvent
			payload   []byte
			createdAt pgtype.Timestamptz
		)
		if err := row.Scan(&e.ID, &e.AggregateType, &e.AggregateID, &e.EventType, &payload, &createdAt); err != nil {
			return e, err
		}
		e.Payload = payload
		e.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		return e, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan outbox events", err)
	}
	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, `UPDATE outbox_event SET published_at = $2 WHERE id = ANY($1)`, ids, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox events published", err)
	}
	return nil
}
