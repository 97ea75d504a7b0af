//go:build unit

package collective_test

import (
	"testing"
	"time"

	"collective-lifecycle/internal/domain/collective"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("every reason is classified", func(t *testing.T) {
		for _, reason := range collective.AllCancellationReasons() {
			assert.NotPanics(t, func() { collective.Classify(reason) }, reason.String())
		}
	})

	t.Run("kinds", func(t *testing.T) {
		cases := map[collective.CancellationReason]collective.CancellationKind{
			collective.ReasonExpired:                  collective.KindExpired,
			collective.ReasonOfferer:                  collective.KindNormal,
			collective.ReasonBeneficiary:              collective.KindNormal,
			collective.ReasonRefusedByInstitute:       collective.KindNormal,
			collective.ReasonPublicAPI:                collective.KindNormal,
			collective.ReasonFraud:                    collective.KindAdministrative,
			collective.ReasonFinanceIncident:          collective.KindAdministrative,
			collective.ReasonBackofficeOverbooking:    collective.KindAdministrative,
			collective.ReasonBackofficeEventCancelled: collective.KindAdministrative,
			collective.ReasonOffererConnectAs:         collective.KindAdministrative,
		}
		for reason, want := range cases {
			assert.Equal(t, want, collective.Classify(reason), reason.String())
		}
	})

	t.Run("unknown reason panics", func(t *testing.T) {
		assert.Panics(t, func() { collective.Classify("NOT_A_REASON") })
	})

	t.Run("parse", func(t *testing.T) {
		r, err := collective.NewCancellationReason("BACKOFFICE_OFFER_MODIFIED")
		require.NoError(t, err)
		assert.Equal(t, collective.ReasonBackofficeOfferModified, r)

		_, err = collective.NewCancellationReason("offerer")
		assert.ErrorIs(t, err, collective.ErrUnknownValue)
	})
}

func TestCancellationPolicy_LimitDate(t *testing.T) {
	policy := collective.NewCancellationPolicy(15*24*time.Hour, 15*24*time.Hour)
	created := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		v := created.Add(d)
		return &v
	}

	tests := []struct {
		name      string
		beginning *time.Time
		want      time.Time
	}{
		{name: "event far away: grace window wins", beginning: at(60 * 24 * time.Hour), want: created.Add(15 * 24 * time.Hour)},
		{name: "event soon: cutoff before event wins", beginning: at(20 * 24 * time.Hour), want: created.Add(5 * 24 * time.Hour)},
		{name: "both bounds equal", beginning: at(30 * 24 * time.Hour), want: created.Add(15 * 24 * time.Hour)},
		{name: "no beginning: grace window only", beginning: nil, want: created.Add(15 * 24 * time.Hour)},
		{name: "event already inside cutoff", beginning: at(24 * time.Hour), want: created.Add(-14 * 24 * time.Hour)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.LimitDate(tt.beginning, created))
		})
	}
}
