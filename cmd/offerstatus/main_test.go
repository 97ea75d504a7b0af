//go:build unit

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const now = "2026-03-10T10:00:00Z"

const expiredOffer = `{
	// no booking and the booking limit is behind us
	"kind": "offer",
	"offer": {"validation": "APPROVED", "isActive": true},
	"stock": {
		"beginningDatetime": "2026-03-20T09:00:00Z",
		"bookingLimitDatetime": "2026-03-09T10:00:00Z",
		"bookings": [],
	},
}`

const expiredThenCancelled = `{
	"offer": {"validation": "APPROVED", "isActive": true},
	"stock": {
		"beginningDatetime": "2026-04-20T09:00:00Z",
		"bookingLimitDatetime": "2026-04-10T10:00:00Z",
		"bookings": [
			{
				"status": "CANCELLED",
				"dateCreated": "2026-02-01T10:00:00Z",
				"cancellationReason": "EXPIRED",
			},
		],
	},
}`

const inactiveTemplate = `{
	"kind": "template",
	"template": {"validation": "APPROVED", "isActive": false},
}`

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCLI(t *testing.T, args ...string) (int, result, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), &out, &errOut, args)

	var res result
	if code == 0 && out.Len() > 0 {
		require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	}
	return code, res, errOut.String()
}

func TestEvaluate(t *testing.T) {
	t.Run("expired offer from a JSONC snapshot", func(t *testing.T) {
		code, res, stderr := runCLI(t, "--snapshot", writeSnapshot(t, expiredOffer), "--now", now)

		require.Equal(t, 0, code, stderr)
		assert.Equal(t, "offer", res.Kind)
		assert.Equal(t, "EXPIRED", res.DisplayedStatus)
		assert.Equal(t, []string{"CAN_EDIT_DATES", "CAN_DUPLICATE", "CAN_ARCHIVE"}, res.AllowedActions)
		assert.False(t, res.IsBookable)
		assert.False(t, res.IsSoldOut)
		assert.Equal(t, now, res.EvaluatedAt)
	})

	t.Run("expiration-cancelled booking depends on the status set", func(t *testing.T) {
		path := writeSnapshot(t, expiredThenCancelled)

		code, extended, stderr := runCLI(t, "--snapshot", path, "--now", now)
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, "CANCELLED", extended.DisplayedStatus)

		code, legacy, stderr := runCLI(t, "--snapshot", path, "--now", now, "--legacy")
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, "ACTIVE", legacy.DisplayedStatus)
		assert.True(t, legacy.IsBookable)
	})

	t.Run("template snapshot", func(t *testing.T) {
		code, res, stderr := runCLI(t, "--snapshot", writeSnapshot(t, inactiveTemplate))

		require.Equal(t, 0, code, stderr)
		assert.Equal(t, "template", res.Kind)
		assert.Equal(t, "INACTIVE", res.DisplayedStatus)
		assert.Contains(t, res.AllowedActions, "CAN_PUBLISH")
		assert.NotContains(t, res.AllowedActions, "CAN_HIDE")
	})

	t.Run("writes the read model to --out", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "result.json")
		code, _, stderr := runCLI(t, "--snapshot", writeSnapshot(t, expiredOffer), "--now", now, "--out", outPath)
		require.Equal(t, 0, code, stderr)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		var res result
		require.NoError(t, json.Unmarshal(data, &res))
		assert.Equal(t, "EXPIRED", res.DisplayedStatus)
	})
}

func TestEvaluate_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    func(t *testing.T) []string
		wantErr string
	}{
		{
			name:    "missing snapshot flag",
			args:    func(*testing.T) []string { return nil },
			wantErr: "--snapshot is required",
		},
		{
			name: "unknown validation status",
			args: func(t *testing.T) []string {
				return []string{"--snapshot", writeSnapshot(t, `{"offer": {"validation": "MAYBE"}}`)}
			},
			wantErr: "offer.validation",
		},
		{
			name: "unknown cancellation reason",
			args: func(t *testing.T) []string {
				return []string{"--snapshot", writeSnapshot(t, `{
					"offer": {"validation": "APPROVED"},
					"stock": {
						"bookingLimitDatetime": "2026-04-10T10:00:00Z",
						"bookings": [{"status": "CANCELLED", "cancellationReason": "BORED"}],
					},
				}`)}
			},
			wantErr: "cancellationReason",
		},
		{
			name: "stock without booking limit",
			args: func(t *testing.T) []string {
				return []string{"--snapshot", writeSnapshot(t, `{"offer": {"validation": "APPROVED"}, "stock": {}}`)}
			},
			wantErr: "bookingLimitDatetime",
		},
		{
			name: "broken JSONC",
			args: func(t *testing.T) []string {
				return []string{"--snapshot", writeSnapshot(t, `{"offer": `)}
			},
			wantErr: "invalid JSONC",
		},
		{
			name: "invalid --now",
			args: func(t *testing.T) []string {
				return []string{"--snapshot", writeSnapshot(t, expiredOffer), "--now", "yesterday"}
			},
			wantErr: "--now",
		},
		{
			name: "unknown kind",
			args: func(t *testing.T) []string {
				return []string{"--snapshot", writeSnapshot(t, `{"kind": "venue"}`)}
			},
			wantErr: "unknown snapshot kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args(t)...)

			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tt.wantErr)
		})
	}
}
