//go:build unit

package password_test

import (
	"testing"

	"collective-lifecycle/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := password.Hash("s3cret-api-key")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-api-key", hashed)

	assert.NoError(t, password.Compare(hashed, "s3cret-api-key"))
	assert.ErrorIs(t, password.Compare(hashed, "wrong"), password.ErrComparisonFailed)
}

func TestEmptyInputs(t *testing.T) {
	_, err := password.Hash("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)

	assert.ErrorIs(t, password.Compare("", "x"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Compare("x", ""), password.ErrInvalidPassword)
}
