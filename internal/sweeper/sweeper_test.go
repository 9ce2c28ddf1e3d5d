//go:build unit

package sweeper_test

import (
	"context"
	"testing"
	"time"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"
	"courtbook/internal/sweeper"
	"courtbook/internal/usecase/commands"
	"courtbook/tests/common/dbtest"
	commandsmock "courtbook/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type sweeperFixture struct {
	reservationRepo  *commandsmock.MockReservationRepository
	paymentRepo      *commandsmock.MockPaymentRepository
	notificationRepo *commandsmock.MockNotificationRepository
	clock            *clock.MockClock
	sweeper          *sweeper.Sweeper
}

func newSweeperFixture(t *testing.T) *sweeperFixture {
	ctrl := gomock.NewController(t)
	f := &sweeperFixture{
		reservationRepo:  commandsmock.NewMockReservationRepository(ctrl),
		paymentRepo:      commandsmock.NewMockPaymentRepository(ctrl),
		notificationRepo: commandsmock.NewMockNotificationRepository(ctrl),
		clock:            clock.NewMockClock(time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)),
	}
	f.sweeper = sweeper.New(
		dbtest.NewStubTxRunner(),
		f.reservationRepo,
		f.paymentRepo,
		f.notificationRepo,
		f.clock,
		config.NewTestConfig(),
	)
	return f
}

func expiredSnapshot(id uuid.UUID, total string, expiresAt time.Time) *commands.ReservationSnapshot {
	return &commands.ReservationSnapshot{
		ID:          id,
		HostID:      uuid.New(),
		CourtID:     uuid.New(),
		Date:        time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Status:      reservation.StatusPending,
		TotalAmount: decimal.RequireFromString(total),
		AmountPaid:  decimal.Zero,
		ExpiresAt:   expiresAt,
	}
}

func TestSweeper_CancelsUnpaidExpiredReservation(t *testing.T) {
	f := newSweeperFixture(t)
	id := uuid.New()
	expired := f.clock.Now().Add(-time.Minute)

	f.reservationRepo.EXPECT().ListExpiredPending(gomock.Any(), gomock.Any(), f.clock.Now(), int32(100)).
		Return([]uuid.UUID{id}, nil)
	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).
		Return(expiredSnapshot(id, "200", expired), nil)
	f.paymentRepo.EXPECT().SumByReservation(gomock.Any(), gomock.Any(), id).
		Return(decimal.Zero, nil)
	f.reservationRepo.EXPECT().
		UpdatePaidStatus(gomock.Any(), gomock.Any(), id, decimal.Zero, reservation.StatusCancelled).
		Return(nil)
	f.notificationRepo.EXPECT().
		CreateJob(gomock.Any(), gomock.Any(), "slot_release", "reservations.cancelled", gomock.Any(), f.clock.Now()).
		Return(nil)

	f.sweeper.Sweep(context.Background())
}

func TestSweeper_KeepsReservationAtOrAboveThreshold(t *testing.T) {
	f := newSweeperFixture(t)
	id := uuid.New()
	expired := f.clock.Now().Add(-time.Minute)
	paid := decimal.RequireFromString("50")

	f.reservationRepo.EXPECT().ListExpiredPending(gomock.Any(), gomock.Any(), f.clock.Now(), int32(100)).
		Return([]uuid.UUID{id}, nil)
	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).
		Return(expiredSnapshot(id, "200", expired), nil)
	f.paymentRepo.EXPECT().SumByReservation(gomock.Any(), gomock.Any(), id).
		Return(paid, nil)
	// At threshold the booking is kept, no slot release job.
	f.reservationRepo.EXPECT().
		UpdatePaidStatus(gomock.Any(), gomock.Any(), id, paid, reservation.StatusPartiallyPaid).
		Return(nil)

	f.sweeper.Sweep(context.Background())
}

func TestSweeper_MarksCoveredReservationFullyPaid(t *testing.T) {
	f := newSweeperFixture(t)
	id := uuid.New()
	expired := f.clock.Now().Add(-time.Minute)
	paid := decimal.RequireFromString("200")

	f.reservationRepo.EXPECT().ListExpiredPending(gomock.Any(), gomock.Any(), f.clock.Now(), int32(100)).
		Return([]uuid.UUID{id}, nil)
	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).
		Return(expiredSnapshot(id, "200", expired), nil)
	f.paymentRepo.EXPECT().SumByReservation(gomock.Any(), gomock.Any(), id).
		Return(paid, nil)
	f.reservationRepo.EXPECT().
		UpdatePaidStatus(gomock.Any(), gomock.Any(), id, paid, reservation.StatusFullyPaid).
		Return(nil)

	f.sweeper.Sweep(context.Background())
}

func TestSweeper_SkipsReservationPaidBetweenListingAndLocking(t *testing.T) {
	f := newSweeperFixture(t)
	id := uuid.New()

	snap := expiredSnapshot(id, "200", f.clock.Now().Add(-time.Minute))
	snap.Status = reservation.StatusPartiallyPaid

	f.reservationRepo.EXPECT().ListExpiredPending(gomock.Any(), gomock.Any(), f.clock.Now(), int32(100)).
		Return([]uuid.UUID{id}, nil)
	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).
		Return(snap, nil)

	f.sweeper.Sweep(context.Background())
}

func TestSweeper_SkipsReservationNoLongerExpired(t *testing.T) {
	f := newSweeperFixture(t)
	id := uuid.New()

	// Expiry pushed into the future, e.g. after a header update in flight.
	snap := expiredSnapshot(id, "200", f.clock.Now().Add(time.Hour))

	f.reservationRepo.EXPECT().ListExpiredPending(gomock.Any(), gomock.Any(), f.clock.Now(), int32(100)).
		Return([]uuid.UUID{id}, nil)
	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).
		Return(snap, nil)

	f.sweeper.Sweep(context.Background())
}

func TestSweeper_OneFailureDoesNotBlockTheBatch(t *testing.T) {
	f := newSweeperFixture(t)
	failing := uuid.New()
	healthy := uuid.New()
	expired := f.clock.Now().Add(-time.Minute)

	f.reservationRepo.EXPECT().ListExpiredPending(gomock.Any(), gomock.Any(), f.clock.Now(), int32(100)).
		Return([]uuid.UUID{failing, healthy}, nil)

	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), failing).
		Return(nil, assert.AnError)

	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), healthy).
		Return(expiredSnapshot(healthy, "200", expired), nil)
	f.paymentRepo.EXPECT().SumByReservation(gomock.Any(), gomock.Any(), healthy).
		Return(decimal.Zero, nil)
	f.reservationRepo.EXPECT().
		UpdatePaidStatus(gomock.Any(), gomock.Any(), healthy, decimal.Zero, reservation.StatusCancelled).
		Return(nil)
	f.notificationRepo.EXPECT().
		CreateJob(gomock.Any(), gomock.Any(), "slot_release", "reservations.cancelled", gomock.Any(), f.clock.Now()).
		Return(nil)

	f.sweeper.Sweep(context.Background())
}

func TestSweeper_EmptyBatchDoesNothing(t *testing.T) {
	f := newSweeperFixture(t)

	f.reservationRepo.EXPECT().ListExpiredPending(gomock.Any(), gomock.Any(), f.clock.Now(), int32(100)).
		Return(nil, nil)

	f.sweeper.Sweep(context.Background())
}
