package readstore

import (
	"context"
	"fmt"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/infra/db"
	"collective-lifecycle/internal/pkg/pgconv"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const offerSelect = `
SELECT o.id, o.offerer_id, o.provider_id, o.name, o.validation, o.is_active,
       o.date_archived, o.date_created, ofr.is_validated, ofr.is_active,
       s.id, s.beginning_datetime, s.end_datetime, s.booking_limit_datetime, s.price_cents
FROM collective_offer o
JOIN offerer ofr ON ofr.id = o.offerer_id
LEFT JOIN collective_stock s ON s.collective_offer_id = o.id`

const bookingSelect = `
SELECT b.id, b.collective_stock_id, b.educational_redactor_id, b.status, b.date_created,
       b.confirmation_limit_date, b.cancellation_limit_date, b.cancellation_reason, b.cancellation_date
FROM collective_booking b
WHERE b.collective_stock_id = ANY($1)
ORDER BY b.date_created, b.id`

// SoldOutPredicate is the SQL rendition of collective.IsSoldOut for the stock aliased stockAlias.
func SoldOutPredicate(stockAlias string) string {
	return fmt.Sprintf(
		"EXISTS (SELECT 1 FROM collective_booking sb WHERE sb.collective_stock_id = %s.id AND sb.status <> '%s')",
		stockAlias, collective.BookingCancelled,
	)
}

type offerRow struct {
	ID               uuid.UUID
	OffererID        uuid.UUID
	ProviderID       pgtype.UUID
	Name             string
	Validation       string
	IsActive         bool
	DateArchived     pgtype.Timestamptz
	DateCreated      pgtype.Timestamptz
	OffererValidated bool
	OffererActive    bool
	StockID          pgtype.UUID
	Beginning        pgtype.Timestamptz
	End              pgtype.Timestamptz
	BookingLimit     pgtype.Timestamptz
	PriceCents       pgtype.Int8
}

func scanOfferRow(row pgx.Row) (offerRow, error) {
	var r offerRow
	err := row.Scan(
		&r.ID, &r.OffererID, &r.ProviderID, &r.Name, &r.Validation, &r.IsActive,
		&r.DateArchived, &r.DateCreated, &r.OffererValidated, &r.OffererActive,
		&r.StockID, &r.Beginning, &r.End, &r.BookingLimit, &r.PriceCents,
	)
	return r, err
}

func rowToOfferRecord(r offerRow) (*shared.OfferRecord, error) {
	validation, err := collective.NewValidationStatus(r.Validation)
	if err != nil {
		return nil, fmt.Errorf("offer %s: %w", r.ID, err)
	}
	rec := &shared.OfferRecord{
		ID:               r.ID,
		OffererID:        r.OffererID,
		ProviderID:       pgconv.UUIDPtrFromPgtype(r.ProviderID),
		Name:             r.Name,
		Validation:       validation,
		IsActive:         r.IsActive,
		DateArchived:     pgconv.TimePtrFromPgtype(r.DateArchived),
		DateCreated:      pgconv.TimeFromPgtype(r.DateCreated),
		OffererValidated: r.OffererValidated,
		OffererActive:    r.OffererActive,
	}
	if r.StockID.Valid {
		rec.Stock = &shared.StockRecord{
			ID:                   uuid.UUID(r.StockID.Bytes),
			BeginningDatetime:    pgconv.TimePtrFromPgtype(r.Beginning),
			EndDatetime:          pgconv.TimePtrFromPgtype(r.End),
			BookingLimitDatetime: pgconv.TimeFromPgtype(r.BookingLimit),
			PriceCents:           r.PriceCents.Int64,
		}
	}
	return rec, nil
}

type bookingRow struct {
	ID                    uuid.UUID
	StockID               uuid.UUID
	RedactorID            uuid.UUID
	Status                string
	DateCreated           pgtype.Timestamptz
	ConfirmationLimitDate pgtype.Timestamptz
	CancellationLimitDate pgtype.Timestamptz
	CancellationReason    pgtype.Text
	CancellationDate      pgtype.Timestamptz
}

func rowToBookingRecord(r bookingRow) (shared.BookingRecord, error) {
	status, err := collective.NewBookingStatus(r.Status)
	if err != nil {
		return shared.BookingRecord{}, fmt.Errorf("booking %s: %w", r.ID, err)
	}
	b := shared.BookingRecord{
		Booking: collective.Booking{
			ID:                    r.ID,
			Status:                status,
			DateCreated:           pgconv.TimeFromPgtype(r.DateCreated),
			ConfirmationLimitDate: pgconv.TimeFromPgtype(r.ConfirmationLimitDate),
			CancellationLimitDate: pgconv.TimeFromPgtype(r.CancellationLimitDate),
			CancellationDate:      pgconv.TimePtrFromPgtype(r.CancellationDate),
		},
		RedactorID: r.RedactorID,
	}
	if r.CancellationReason.Valid {
		reason, err := collective.NewCancellationReason(r.CancellationReason.String)
		if err != nil {
			return shared.BookingRecord{}, fmt.Errorf("booking %s: %w", r.ID, err)
		}
		b.CancellationReason = &reason
	}
	return b, nil
}

// AttachBookings loads the bookings of every stock in recs, oldest first.
func AttachBookings(ctx context.Context, dbtx db.DBTX, recs ...*shared.OfferRecord) error {
	byStock := make(map[uuid.UUID]*shared.StockRecord, len(recs))
	stockIDs := make([]uuid.UUID, 0, len(recs))
	for _, rec := range recs {
		if rec.Stock == nil {
			continue
		}
		byStock[rec.Stock.ID] = rec.Stock
		stockIDs = append(stockIDs, rec.Stock.ID)
	}
	if len(stockIDs) == 0 {
		return nil
	}

	rows, err := dbtx.Query(ctx, bookingSelect, stockIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r bookingRow
		if err := rows.Scan(
			&r.ID, &r.StockID, &r.RedactorID, &r.Status, &r.DateCreated,
			&r.ConfirmationLimitDate, &r.CancellationLimitDate, &r.CancellationReason, &r.CancellationDate,
		); err != nil {
			return err
		}
		b, err := rowToBookingRecord(r)
		if err != nil {
			return err
		}
		stock := byStock[r.StockID]
		stock.Bookings = append(stock.Bookings, b)
	}
	return rows.Err()
}

// LoadOffer reads one offer with its stock and bookings. suffix is appended verbatim
// after the WHERE clause (e.g. a locking clause).
func LoadOffer(ctx context.Context, dbtx db.DBTX, where, suffix string, args ...any) (*shared.OfferRecord, error) {
	r, err := scanOfferRow(dbtx.QueryRow(ctx, offerSelect+" WHERE "+where+" "+suffix, args...))
	if err != nil {
		return nil, err
	}
	rec, err := rowToOfferRecord(r)
	if err != nil {
		return nil, err
	}
	if err := AttachBookings(ctx, dbtx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
