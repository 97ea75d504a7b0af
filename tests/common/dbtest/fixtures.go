//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

func CreateOfferer(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO offerer (id, name) VALUES ($1, $2)", id, name)
	require.NoError(t, err)
	return id
}

// CreateUser inserts an active user whose password is DefaultPassword.
func CreateUser(t *testing.T, db DBLike, email, role string, offererID *uuid.UUID) uuid.UUID {
	t.Helper()

	hash, err := password.Hash(DefaultPassword)
	require.NoError(t, err)

	id := uuid.New()
	_, err = db.Exec(context.Background(),
		"INSERT INTO pro_user (id, email, password_hash, role, offerer_id, is_active) VALUES ($1, $2, $3, $4, $5, true)",
		id, email, hash, role, offererID)
	require.NoError(t, err)
	return id
}

func DeactivateUser(t *testing.T, db DBLike, id uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE pro_user SET is_active = false WHERE id = $1", id)
	require.NoError(t, err)
}

func CreateProvider(t *testing.T, db DBLike, name, apiKey string) uuid.UUID {
	t.Helper()

	hash, err := password.Hash(apiKey)
	require.NoError(t, err)

	id := uuid.New()
	_, err = db.Exec(context.Background(),
		"INSERT INTO provider (id, name, api_key_hash) VALUES ($1, $2, $3)", id, name, hash)
	require.NoError(t, err)
	return id
}

type OfferFixture struct {
	OffererID  uuid.UUID
	ProviderID *uuid.UUID
	Name       string
	Validation collective.ValidationStatus
	IsActive   bool
	Archived   *time.Time
	CreatedAt  time.Time
}

func CreateOffer(t *testing.T, db DBLike, f OfferFixture) uuid.UUID {
	t.Helper()

	if f.Name == "" {
		f.Name = "Atelier théâtre"
	}
	if f.Validation == "" {
		f.Validation = collective.ValidationApproved
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO collective_offer (id, offerer_id, provider_id, name, validation, is_active, date_archived, date_created)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, f.OffererID, f.ProviderID, f.Name, string(f.Validation), f.IsActive, f.Archived, f.CreatedAt)
	require.NoError(t, err)
	return id
}

type StockFixture struct {
	Beginning    *time.Time
	End          *time.Time
	BookingLimit time.Time
	PriceCents   int64
}

func CreateStock(t *testing.T, db DBLike, offerID uuid.UUID, f StockFixture) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO collective_stock (id, collective_offer_id, beginning_datetime, end_datetime, booking_limit_datetime, price_cents)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		id, offerID, f.Beginning, f.End, f.BookingLimit, f.PriceCents)
	require.NoError(t, err)
	return id
}

type BookingFixture struct {
	RedactorID uuid.UUID
	Status     collective.BookingStatus
	CreatedAt  time.Time
	Reason     *collective.CancellationReason
}

func CreateBooking(t *testing.T, db DBLike, stockID uuid.UUID, f BookingFixture) uuid.UUID {
	t.Helper()

	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}

	var (
		reason       *string
		cancelledAt  *time.Time
		confirmedAt  *time.Time
		confirmLimit = f.CreatedAt.Add(30 * 24 * time.Hour)
	)
	if f.Status == collective.BookingCancelled {
		cancelledAt = &f.CreatedAt
		if f.Reason != nil {
			r := string(*f.Reason)
			reason = &r
		}
	}
	if f.Status == collective.BookingConfirmed || f.Status == collective.BookingUsed || f.Status == collective.BookingReimbursed {
		confirmedAt = &f.CreatedAt
	}

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO collective_booking (id, collective_stock_id, educational_redactor_id, status, date_created,
			confirmation_limit_date, cancellation_limit_date, confirmation_date, cancellation_reason, cancellation_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, stockID, f.RedactorID, string(f.Status), f.CreatedAt,
		confirmLimit, f.CreatedAt.Add(15*24*time.Hour), confirmedAt, reason, cancelledAt)
	require.NoError(t, err)
	return id
}

type TemplateFixture struct {
	OffererID  uuid.UUID
	Validation collective.ValidationStatus
	IsActive   bool
}

func CreateTemplate(t *testing.T, db DBLike, f TemplateFixture) uuid.UUID {
	t.Helper()

	if f.Validation == "" {
		f.Validation = collective.ValidationApproved
	}

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO collective_offer_template (id, offerer_id, name, validation, is_active)
		VALUES ($1, $2, $3, $4, $5)`,
		id, f.OffererID, "Visite guidée", string(f.Validation), f.IsActive)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table except the migration bookkeeping.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
