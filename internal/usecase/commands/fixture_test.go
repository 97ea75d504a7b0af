//go:build unit

package commands_test

import (
	"context"
	"testing"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/domain/user"
	"collective-lifecycle/internal/pkg/clock"
	"collective-lifecycle/internal/pkg/config"
	"collective-lifecycle/internal/usecase/shared"
	"collective-lifecycle/tests/common/builder"
	sharedmock "collective-lifecycle/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

type txFixture struct {
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	offers    *sharedmock.MockOfferRepository
	templates *sharedmock.MockTemplateRepository
	bookings  *sharedmock.MockBookingRepository
	outbox    *sharedmock.MockOutboxRepository
	users     *sharedmock.MockUserRepository
	guard     *sharedmock.MockIdempotencyGuard
	clock     *clock.MockClock
	engine    *collective.Engine
}

// newTxFixture runs every Within callback against the same mocked transaction.
func newTxFixture(t *testing.T) *txFixture {
	ctrl := gomock.NewController(t)
	f := &txFixture{
		ctrl:      ctrl,
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		offers:    sharedmock.NewMockOfferRepository(ctrl),
		templates: sharedmock.NewMockTemplateRepository(ctrl),
		bookings:  sharedmock.NewMockBookingRepository(ctrl),
		outbox:    sharedmock.NewMockOutboxRepository(ctrl),
		users:     sharedmock.NewMockUserRepository(ctrl),
		guard:     sharedmock.NewMockIdempotencyGuard(ctrl),
		clock:     clock.NewMockClock(builder.DefaultNow),
		engine:    collective.NewEngine(config.NewTestConfig().Lifecycle.Settings()),
	}

	tx := sharedmock.NewMockTx(ctrl)
	tx.EXPECT().Offers().Return(f.offers).AnyTimes()
	tx.EXPECT().Templates().Return(f.templates).AnyTimes()
	tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	tx.EXPECT().Outbox().Return(f.outbox).AnyTimes()
	tx.EXPECT().Users().Return(f.users).AnyTimes()

	run := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, tx)
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	f.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	return f
}

func proActor() shared.Actor {
	offererID := builder.DefaultOffererID
	return shared.ProActor(uuid.New(), user.RolePro, &offererID)
}

func otherProActor() shared.Actor {
	offererID := uuid.New()
	return shared.ProActor(uuid.New(), user.RolePro, &offererID)
}

func adminActor() shared.Actor {
	return shared.ProActor(uuid.New(), user.RoleAdmin, nil)
}

// eventOfType matches one enqueued outbox event by type.
func eventOfType(eventType string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		e, ok := x.(shared.OutboxEvent)
		return ok && e.EventType == eventType
	})
}
