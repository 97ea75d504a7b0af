//go:build e2e

package offer_test

import (
	"testing"
	"time"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/domain/user"
	"collective-lifecycle/internal/infra/readstore"
	"collective-lifecycle/tests/common/dbtest"
	"collective-lifecycle/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// soldOutContractSuite checks that the SQL sold-out predicate agrees with collective.IsSoldOut.
type soldOutContractSuite struct {
	e2e.SharedSuite
}

func TestSoldOutContract(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(soldOutContractSuite))
}

func (s *soldOutContractSuite) TestPredicateMatchesDomain() {
	reason := collective.ReasonOfferer
	bookingSets := map[string][]collective.BookingStatus{
		"no booking":             nil,
		"cancelled only":         {collective.BookingCancelled},
		"pending":                {collective.BookingPending},
		"cancelled then booked":  {collective.BookingCancelled, collective.BookingConfirmed},
		"used":                   {collective.BookingUsed},
		"reimbursed":             {collective.BookingReimbursed},
		"two cancelled bookings": {collective.BookingCancelled, collective.BookingCancelled},
	}

	s.Run("every fixture", func() {
		t := s.T()
		now := time.Now().UTC()
		offererID := dbtest.CreateOfferer(t, s.DB, "Contract")
		redactorID := dbtest.CreateUser(t, s.DB, "contract@example.com", string(user.RoleRedactor), nil)

		want := make(map[uuid.UUID]bool, len(bookingSets))
		names := make(map[uuid.UUID]string, len(bookingSets))
		for name, statuses := range bookingSets {
			offerID := dbtest.CreateOffer(t, s.DB, dbtest.OfferFixture{OffererID: offererID, IsActive: true})
			stockID := dbtest.CreateStock(t, s.DB, offerID, dbtest.StockFixture{BookingLimit: now.Add(24 * time.Hour)})

			bookings := make([]collective.Booking, 0, len(statuses))
			for i, status := range statuses {
				f := dbtest.BookingFixture{
					RedactorID: redactorID,
					Status:     status,
					CreatedAt:  now.Add(time.Duration(i) * time.Minute),
				}
				if status == collective.BookingCancelled {
					f.Reason = &reason
				}
				dbtest.CreateBooking(t, s.DB, stockID, f)
				bookings = append(bookings, collective.Booking{Status: status})
			}

			want[stockID] = collective.IsSoldOut(bookings)
			names[stockID] = name
		}

		rows, err := s.DB.Query(t.Context(),
			"SELECT s.id, "+readstore.SoldOutPredicate("s")+" FROM collective_stock s")
		require.NoError(t, err)
		defer rows.Close()

		seen := 0
		for rows.Next() {
			var (
				id      uuid.UUID
				soldOut bool
			)
			require.NoError(t, rows.Scan(&id, &soldOut))
			assert.Equal(t, want[id], soldOut, names[id])
			seen++
		}
		require.NoError(t, rows.Err())
		assert.Equal(t, len(bookingSets), seen)
	})
}
