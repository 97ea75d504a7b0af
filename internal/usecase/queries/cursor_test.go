//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"collective-lifecycle/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	k := queries.Keyset{
		CreatedAt: time.Date(2025, 3, 1, 9, 30, 15, 123456789, time.UTC),
		ID:        uuid.New(),
	}

	got, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(k))

	require.NoError(t, err)
	assert.Equal(t, k.ID, got.ID)
	assert.True(t, k.CreatedAt.Truncate(time.Microsecond).Equal(got.CreatedAt))
}

func TestDecodeAfterCursor_Rejects(t *testing.T) {
	tests := map[string]string{
		"empty":         "",
		"not base64":    "%%%",
		"other version": base64.URLEncoding.EncodeToString([]byte("v2:1-" + uuid.NewString())),
		"missing id":    base64.URLEncoding.EncodeToString([]byte("v1:12345")),
		"bad timestamp": base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString())),
		"bad uuid":      base64.URLEncoding.EncodeToString([]byte("v1:12345-nope")),
	}

	for name, cursor := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := queries.DecodeAfterCursor(cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, 5, queries.ValidateLimit(5))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
