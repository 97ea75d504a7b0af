package repository

import (
	"context"
	"time"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/infra"
	"collective-lifecycle/internal/infra/db"
	"collective-lifecycle/internal/pkg/pgconv"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const claimExpiredPendingSQL = `
SELECT b.id, b.collective_stock_id, s.collective_offer_id, b.confirmation_limit_date
FROM collective_booking b
JOIN collective_stock s ON s.id = b.collective_stock_id
WHERE b.status = 'PENDING' AND b.confirmation_limit_date < $1
ORDER BY b.confirmation_limit_date, b.id
LIMIT $2
FOR UPDATE OF b SKIP LOCKED`

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// Create inserts a booking. A second live booking on the same stock fails with KindDuplicateKey.
func (r *BookingRepository) Create(ctx context.Context, b shared.NewBooking) error {
	var reason pgtype.Text
	if b.CancellationReason != nil {
		reason = pgtype.Text{String: b.CancellationReason.String(), Valid: true}
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO collective_booking (
			id, collective_stock_id, educational_redactor_id, status, date_created,
			confirmation_limit_date, cancellation_limit_date, cancellation_reason, cancellation_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID, b.StockID, b.RedactorID, b.Status.String(), pgconv.TimeToPgtype(b.DateCreated),
		pgconv.TimeToPgtype(b.ConfirmationLimitDate), pgconv.TimeToPgtype(b.CancellationLimitDate),
		reason, pgconv.TimePtrToPgtype(b.CancellationDate))
	if err != nil {
		return infra.WrapRepoErr("failed to create collective booking", err)
	}
	return nil
}

func (r *BookingRepository) Confirm(ctx context.Context, bookingID uuid.UUID, at time.Time) error {
	return r.transition(ctx, `
		UPDATE collective_booking SET status = $2, confirmation_date = $3
		WHERE id = $1 AND status = 'PENDING'`,
		bookingID, collective.BookingConfirmed.String(), pgconv.TimeToPgtype(at))
}

func (r *BookingRepository) Cancel(ctx context.Context, bookingID uuid.UUID, reason collective.CancellationReason, at time.Time) error {
	return r.transition(ctx, `
		UPDATE collective_booking SET status = $2, cancellation_reason = $3, cancellation_date = $4
		WHERE id = $1 AND status <> 'CANCELLED'`,
		bookingID, collective.BookingCancelled.String(), reason.String(), pgconv.TimeToPgtype(at))
}

func (r *BookingRepository) UpdateCancellationLimit(ctx context.Context, bookingID uuid.UUID, limit time.Time) error {
	return r.transition(ctx, `UPDATE collective_booking SET cancellation_limit_date = $2 WHERE id = $1`,
		bookingID, pgconv.TimeToPgtype(limit))
}

func (r *BookingRepository) transition(ctx context.Context, sql string, args ...any) error {
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update collective booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("collective booking not found in expected status", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) ClaimExpiredPending(ctx context.Context, now time.Time, limit int) ([]shared.PendingBooking, error) {
	rows, err := r.db.Query(ctx, claimExpiredPendingSQL, pgconv.TimeToPgtype(now), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim expired bookings", err)
	}
	defer rows.Close()

	var out []shared.PendingBooking
	for rows.Next() {
		var (
			p     shared.PendingBooking
			limit pgtype.Timestamptz
		)
		if err := rows.Scan(&p.ID, &p.StockID, &p.OfferID, &limit); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired booking", err)
		}
		p.ConfirmationLimitDate = pgconv.TimeFromPgtype(limit)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate expired bookings", err)
	}
	return out, nil
}
