//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"courtbook/internal/domain/person"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"
	"courtbook/tests/common/dbtest"
	commandsmock "courtbook/tests/mock/commands"
	queriesmock "courtbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reservationFixture struct {
	reservationRepo *commandsmock.MockReservationRepository
	personRepo      *commandsmock.MockPersonRepository
	courtRepo       *commandsmock.MockCourtRepository
	renderer        *commandsmock.MockQRRenderer
	readStore       *queriesmock.MockReservationReadStore
	clock           *clock.MockClock
	commands        commands.ReservationCommands
}

func newReservationFixture(t *testing.T) *reservationFixture {
	ctrl := gomock.NewController(t)
	f := &reservationFixture{
		reservationRepo: commandsmock.NewMockReservationRepository(ctrl),
		personRepo:      commandsmock.NewMockPersonRepository(ctrl),
		courtRepo:       commandsmock.NewMockCourtRepository(ctrl),
		renderer:        commandsmock.NewMockQRRenderer(ctrl),
		readStore:       queriesmock.NewMockReservationReadStore(ctrl),
		clock:           clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)),
	}
	f.commands = commands.NewReservationCommands(
		dbtest.NewStubTxRunner(),
		f.reservationRepo,
		f.personRepo,
		f.courtRepo,
		f.renderer,
		f.readStore,
		f.clock,
		config.NewTestConfig(),
	)
	return f
}

func courtSnapshot(rate string) *commands.CourtSnapshot {
	return &commands.CourtSnapshot{
		ID:         uuid.New(),
		VenueID:    uuid.New(),
		Name:       "Court 1",
		VenueName:  "Riverside",
		HourlyRate: decimal.RequireFromString(rate),
	}
}

func twoHourSlot() []reservation.SlotInput {
	return []reservation.SlotInput{{
		Start: time.Date(2026, 9, 5, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC),
	}}
}

func TestReservationCommands_Create(t *testing.T) {
	f := newReservationFixture(t)
	hostID := uuid.New()
	court := courtSnapshot("50")
	reservationID := uuid.New()

	f.personRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), hostID).
		Return(&commands.PersonSnapshot{ID: hostID, Alias: "ana"}, nil)
	f.personRepo.EXPECT().EnsureRole(gomock.Any(), gomock.Any(), hostID, person.RoleHost).Return(nil)
	f.courtRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), court.ID).Return(court, nil)
	f.reservationRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, res *reservation.Reservation) (uuid.UUID, error) {
			assert.True(t, res.TotalAmount().Equal(decimal.RequireFromString("100")))
			assert.Equal(t, reservation.StatusPending, res.Status())
			assert.Equal(t, f.clock.Now().Add(time.Hour), res.ExpiresAt())
			return reservationID, nil
		})
	f.readStore.EXPECT().FindByID(gomock.Any(), reservationID).
		Return(&queries.ReservationView{ID: reservationID, Status: "pending"}, nil)

	view, err := f.commands.Create(context.Background(), commands.CreateReservationParams{
		HostID:  hostID,
		CourtID: court.ID,
		Date:    time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Slots:   twoHourSlot(),
	})

	require.NoError(t, err)
	assert.Equal(t, reservationID, view.ID)
}

func TestReservationCommands_Create_UnknownHost(t *testing.T) {
	f := newReservationFixture(t)
	hostID := uuid.New()

	f.personRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), hostID).
		Return(nil, notFoundErr("person not found"))

	_, err := f.commands.Create(context.Background(), commands.CreateReservationParams{
		HostID:  hostID,
		CourtID: uuid.New(),
		Date:    time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Slots:   twoHourSlot(),
	})

	assert.ErrorIs(t, err, commands.ErrHostNotFound)
}

func TestReservationCommands_Create_MisalignedSlot(t *testing.T) {
	f := newReservationFixture(t)
	hostID := uuid.New()
	court := courtSnapshot("50")

	f.personRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), hostID).
		Return(&commands.PersonSnapshot{ID: hostID, Alias: "ana"}, nil)
	f.personRepo.EXPECT().EnsureRole(gomock.Any(), gomock.Any(), hostID, person.RoleHost).Return(nil)
	f.courtRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), court.ID).Return(court, nil)

	_, err := f.commands.Create(context.Background(), commands.CreateReservationParams{
		HostID:  hostID,
		CourtID: court.ID,
		Date:    time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Slots: []reservation.SlotInput{{
			Start: time.Date(2026, 9, 5, 8, 30, 0, 0, time.UTC),
			End:   time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC),
		}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReservationValidation)
	assert.ErrorIs(t, err, reservation.ErrSlotNotHourAligned)
}

func TestReservationCommands_Update_ReplaceSlots(t *testing.T) {
	f := newReservationFixture(t)
	snap := pendingSnapshot("100", "0")
	court := courtSnapshot("50")
	newTotal := decimal.RequireFromString("150")

	newSlots := []reservation.SlotInput{
		{Start: time.Date(2026, 9, 5, 8, 0, 0, 0, time.UTC), End: time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC)},
		{Start: time.Date(2026, 9, 5, 14, 0, 0, 0, time.UTC), End: time.Date(2026, 9, 5, 16, 0, 0, 0, time.UTC)},
	}

	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
	f.courtRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), snap.CourtID).Return(court, nil)
	f.reservationRepo.EXPECT().
		ReplaceSlots(gomock.Any(), gomock.Any(), snap.ID, gomock.Len(2), newTotal).
		Return(nil)
	f.reservationRepo.EXPECT().
		UpdatePaidStatus(gomock.Any(), gomock.Any(), snap.ID, snap.AmountPaid, reservation.StatusPending).
		Return(nil)
	f.readStore.EXPECT().FindByID(gomock.Any(), snap.ID).
		Return(&queries.ReservationView{ID: snap.ID, TotalAmount: newTotal}, nil)

	view, err := f.commands.Update(context.Background(), snap.ID, commands.UpdateReservationParams{
		Slots: &newSlots,
	})

	require.NoError(t, err)
	assert.True(t, view.TotalAmount.Equal(newTotal))
}

func TestReservationCommands_Update_HeaderOnlyPatchRecalcsTotal(t *testing.T) {
	f := newReservationFixture(t)
	snap := pendingSnapshot("100", "0")
	court := courtSnapshot("50")
	capacity := int32(6)
	stored := decimal.RequireFromString("100")

	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
	f.courtRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), snap.CourtID).Return(court, nil)
	f.reservationRepo.EXPECT().
		UpdateHeader(gomock.Any(), gomock.Any(), snap.ID, commands.ReservationPatch{Capacity: &capacity}).
		Return(nil)
	f.reservationRepo.EXPECT().RecalcTotal(gomock.Any(), gomock.Any(), snap.ID).Return(stored, nil)
	f.reservationRepo.EXPECT().
		UpdatePaidStatus(gomock.Any(), gomock.Any(), snap.ID, snap.AmountPaid, reservation.StatusPending).
		Return(nil)
	f.readStore.EXPECT().FindByID(gomock.Any(), snap.ID).
		Return(&queries.ReservationView{ID: snap.ID, TotalAmount: stored}, nil)

	view, err := f.commands.Update(context.Background(), snap.ID, commands.UpdateReservationParams{
		Patch: commands.ReservationPatch{Capacity: &capacity},
	})

	require.NoError(t, err)
	assert.True(t, view.TotalAmount.Equal(stored))
}

func TestReservationCommands_Update_CourtChangeRepricesStoredSlots(t *testing.T) {
	f := newReservationFixture(t)
	snap := pendingSnapshot("100", "0")
	newCourt := courtSnapshot("80")
	repriced := decimal.RequireFromString("160")

	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
	f.courtRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), newCourt.ID).Return(newCourt, nil)
	f.reservationRepo.EXPECT().
		UpdateHeader(gomock.Any(), gomock.Any(), snap.ID, commands.ReservationPatch{CourtID: &newCourt.ID}).
		Return(nil)
	f.reservationRepo.EXPECT().SlotBounds(gomock.Any(), gomock.Any(), snap.ID).Return(twoHourSlot(), nil)
	f.reservationRepo.EXPECT().
		ReplaceSlots(gomock.Any(), gomock.Any(), snap.ID, gomock.Len(1), repriced).
		Return(nil)
	f.reservationRepo.EXPECT().
		UpdatePaidStatus(gomock.Any(), gomock.Any(), snap.ID, snap.AmountPaid, reservation.StatusPending).
		Return(nil)
	f.readStore.EXPECT().FindByID(gomock.Any(), snap.ID).
		Return(&queries.ReservationView{ID: snap.ID, TotalAmount: repriced}, nil)

	_, err := f.commands.Update(context.Background(), snap.ID, commands.UpdateReservationParams{
		Patch: commands.ReservationPatch{CourtID: &newCourt.ID},
	})

	require.NoError(t, err)
}

func TestReservationCommands_Update_RejectsTotalBelowPaid(t *testing.T) {
	f := newReservationFixture(t)
	snap := pendingSnapshot("200", "150")
	court := courtSnapshot("50")

	oneHour := []reservation.SlotInput{{
		Start: time.Date(2026, 9, 5, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC),
	}}

	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
	f.courtRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), snap.CourtID).Return(court, nil)

	_, err := f.commands.Update(context.Background(), snap.ID, commands.UpdateReservationParams{
		Slots: &oneHour,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReservationValidation)
	assert.Contains(t, err.Error(), "below amount already paid")
}

func TestReservationCommands_Update_EmptyParams(t *testing.T) {
	f := newReservationFixture(t)

	_, err := f.commands.Update(context.Background(), uuid.New(), commands.UpdateReservationParams{})

	assert.ErrorIs(t, err, commands.ErrReservationValidation)
}

func TestReservationCommands_Delete_RemovesArtifactsAfterCommit(t *testing.T) {
	f := newReservationFixture(t)
	snap := pendingSnapshot("100", "60")

	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
	f.reservationRepo.EXPECT().ArtifactPaths(gomock.Any(), gomock.Any(), snap.ID).
		Return([]string{"/uploads/reservations/abc.png", "/uploads/guests/def.png"}, nil)
	f.reservationRepo.EXPECT().Delete(gomock.Any(), gomock.Any(), snap.ID).Return(nil)
	f.renderer.EXPECT().Remove("/uploads/reservations/abc.png").Return(nil)
	f.renderer.EXPECT().Remove("/uploads/guests/def.png").Return(nil)

	err := f.commands.Delete(context.Background(), snap.ID)

	require.NoError(t, err)
}

func TestReservationCommands_Delete_NotFound(t *testing.T) {
	f := newReservationFixture(t)
	id := uuid.New()

	f.reservationRepo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).
		Return(nil, notFoundErr("reservation not found"))

	err := f.commands.Delete(context.Background(), id)

	assert.ErrorIs(t, err, commands.ErrReservationNotFound)
}
