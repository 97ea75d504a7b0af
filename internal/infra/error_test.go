//go:build unit

package infra_test

import (
	"testing"

	"collective-lifecycle/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505", ConstraintName: "ux_collective_booking_live_per_stock"}, want: infra.KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "lock not available", err: &pgconn.PgError{Code: "55P03"}, want: infra.KindLockConflict},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, want: infra.KindDBFailure},
		{name: "plain error", err: assert.AnError, want: infra.KindDBFailure},
		{name: "explicit kind wins", err: assert.AnError, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.want))
			assert.Contains(t, err.Error(), "op failed")
		})
	}
}

func TestConstraintName(t *testing.T) {
	err := infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23505", ConstraintName: "ux_collective_booking_live_per_stock"})

	assert.Equal(t, "ux_collective_booking_live_per_stock", infra.ConstraintName(err))
	assert.Empty(t, infra.ConstraintName(assert.AnError))
}
