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

// Offers are always locked before their stock so that every write path takes locks in the same order.
const (
	lockOfferClause = "FOR UPDATE OF o"
	lockStockSQL    = `SELECT 1 FROM collective_stock WHERE id = $1 FOR UPDATE`

	offerByStock   = `o.id = (SELECT st.collective_offer_id FROM collective_stock st WHERE st.id = $1)`
	offerByBooking = `o.id = (
		SELECT st.collective_offer_id FROM collective_stock st
		JOIN collective_booking bk ON bk.collective_stock_id = st.id
		WHERE bk.id = $1)`
)

type OfferRepository struct {
	db db.DBTX
}

func NewOfferRepository(dbtx db.DBTX) *OfferRepository {
	return &OfferRepository{db: dbtx}
}

func (r *OfferRepository) GetForUpdate(ctx context.Context, offerID uuid.UUID) (*shared.OfferRecord, error) {
	return r.lock(ctx, "o.id = $1", offerID)
}

func (r *OfferRepository) GetByStockForUpdate(ctx context.Context, stockID uuid.UUID) (*shared.OfferRecord, error) {
	rec, err := r.lock(ctx, offerByStock, stockID)
	if err != nil {
		return nil, err
	}
	if rec.Stock == nil {
		return nil, infra.WrapRepoErr("stock not found", nil, infra.KindNotFound)
	}
	return rec, nil
}

func (r *OfferRepository) GetByBookingForUpdate(ctx context.Context, bookingID uuid.UUID) (*shared.OfferRecord, error) {
	rec, err := r.lock(ctx, offerByBooking, bookingID)
	if err != nil {
		return nil, err
	}
	if rec.Stock == nil || rec.Stock.Booking(bookingID) == nil {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return rec, nil
}

func (r *OfferRepository) lock(ctx context.Context, where string, arg uuid.UUID) (*shared.OfferRecord, error) {
	rec, err := readstore.LoadOffer(ctx, r.db, where, lockOfferClause, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock collective offer", err)
	}
	if rec.Stock != nil {
		if _, err := r.db.Exec(ctx, lockStockSQL, rec.Stock.ID); err != nil {
			return nil, infra.WrapRepoErr("failed to lock collective stock", err)
		}
	}
	return rec, nil
}

func (r *OfferRepository) Archive(ctx context.Context, offerIDs []uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE collective_offer SET date_archived = $2, is_active = FALSE
		WHERE id = ANY($1) AND date_archived IS NULL`,
		offerIDs, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to archive collective offers", err)
	}
	return nil
}

func (r *OfferRepository) SetValidation(ctx context.Context, offerID uuid.UUID, v collective.ValidationStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE collective_offer SET validation = $2 WHERE id = $1`, offerID, v.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update offer validation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("collective offer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OfferRepository) UpdateStockDates(ctx context.Context, stockID uuid.UUID, beginning, end *time.Time, bookingLimit time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE collective_stock
		SET beginning_datetime = $2, end_datetime = $3, booking_limit_datetime = $4
		WHERE id = $1`,
		stockID, pgconv.TimePtrToPgtype(beginning), pgconv.TimePtrToPgtype(end), pgconv.TimeToPgtype(bookingLimit))
	if err != nil {
		return infra.WrapRepoErr("failed to update stock dates", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("collective stock not found", nil, infra.KindNotFound)
	}
	return nil
}
