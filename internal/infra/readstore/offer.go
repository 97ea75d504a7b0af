package readstore

import (
	"context"
	"fmt"
	"strings"

	"collective-lifecycle/internal/infra"
	"collective-lifecycle/internal/infra/db"
	"collective-lifecycle/internal/pkg/pgconv"
	"collective-lifecycle/internal/usecase/queries"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/google/uuid"
)

type OfferReadStore struct {
	db db.DBTX
}

func NewOfferReadStore(dbtx db.DBTX) *OfferReadStore {
	return &OfferReadStore{db: dbtx}
}

func (r *OfferReadStore) FindOffer(ctx context.Context, id uuid.UUID) (*shared.OfferRecord, error) {
	rec, err := LoadOffer(ctx, r.db, "o.id = $1", "", id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer by ID", err)
	}
	return rec, nil
}

func (r *OfferReadStore) ListOffers(ctx context.Context, p queries.OfferListParams) ([]*shared.OfferRecord, error) {
	query, args := buildListOffers(p)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	defer rows.Close()

	var recs []*shared.OfferRecord
	for rows.Next() {
		row, err := scanOfferRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer", err)
		}
		rec, err := rowToOfferRecord(row)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid offer row", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}

	if err := AttachBookings(ctx, r.db, recs...); err != nil {
		return nil, infra.WrapRepoErr("failed to load bookings", err)
	}
	return recs, nil
}

func buildListOffers(p queries.OfferListParams) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if p.OffererID != nil {
		conds = append(conds, "o.offerer_id = "+arg(*p.OffererID))
	}
	if p.SoldOut != nil {
		if *p.SoldOut {
			conds = append(conds, SoldOutPredicate("s"))
		} else {
			conds = append(conds, "NOT "+SoldOutPredicate("s"))
		}
	}
	if p.After != nil {
		conds = append(conds, fmt.Sprintf("(o.date_created, o.id) < (%s, %s)", arg(p.After.CreatedAt), arg(p.After.ID)))
	}

	var sb strings.Builder
	sb.WriteString(offerSelect)
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY o.date_created DESC, o.id DESC LIMIT ")
	sb.WriteString(arg(p.Limit))
	return sb.String(), args
}
