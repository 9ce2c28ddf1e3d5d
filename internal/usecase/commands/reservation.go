package commands

import (
	"context"
	"log/slog"
	"time"

	"courtbook/internal/domain/person"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/patch"
	"courtbook/internal/usecase/queries"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrHostNotFound          = errs.New("host not found")
	ErrCourtNotFound         = errs.New("court not found")
	ErrReservationValidation = errs.New("reservation validation failed")
)

type CreateReservationParams struct {
	HostID   uuid.UUID
	CourtID  uuid.UUID
	Date     time.Time
	Capacity *int32
	Slots    []reservation.SlotInput
}

// UpdateReservationParams carries the header patch plus an optional full slot
// replacement. A nil Slots leaves the stored slots alone; an empty non-nil
// slice is rejected by the slot calculator.
type UpdateReservationParams struct {
	Patch ReservationPatch
	Slots *[]reservation.SlotInput
}

func (p UpdateReservationParams) IsEmpty() bool {
	return p.Patch.IsEmpty() && p.Slots == nil
}

type ReservationCommands interface {
	Create(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateReservationParams) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	runner          shared.TxRunner
	reservationRepo ReservationRepository
	personRepo      PersonRepository
	courtRepo       CourtRepository
	renderer        QRRenderer
	readStore       queries.ReservationReadStore
	clock           clock.Clock
	pendingTTL      time.Duration
}

func NewReservationCommands(
	runner shared.TxRunner,
	reservationRepo ReservationRepository,
	personRepo PersonRepository,
	courtRepo CourtRepository,
	renderer QRRenderer,
	readStore queries.ReservationReadStore,
	clk clock.Clock,
	cfg config.Config,
) ReservationCommands {
	return &reservationCommandsImpl{
		runner:          runner,
		reservationRepo: reservationRepo,
		personRepo:      personRepo,
		courtRepo:       courtRepo,
		renderer:        renderer,
		readStore:       readStore,
		clock:           clk,
		pendingTTL:      cfg.Booking.PendingTTL,
	}
}

func (r *reservationCommandsImpl) Create(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error) {
	var reservationID uuid.UUID

	err := r.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		host, err := r.personRepo.FindByID(ctx, tx, params.HostID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrHostNotFound
			}
			return err
		}
		if err := r.personRepo.EnsureRole(ctx, tx, host.ID, person.RoleHost); err != nil {
			return err
		}

		court, err := r.courtRepo.FindByID(ctx, tx, params.CourtID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCourtNotFound
			}
			return err
		}

		res, err := reservation.NewReservation(
			r.clock,
			host.ID,
			court.ID,
			params.Date,
			params.Capacity,
			reservation.CourtSpec{ID: court.ID, VenueID: court.VenueID, HourlyRate: court.HourlyRate},
			params.Slots,
			r.pendingTTL,
		)
		if err != nil {
			return errs.Mark(err, ErrReservationValidation)
		}

		reservationID, err = r.reservationRepo.Create(ctx, tx, res)
		return err
	})
	if err != nil {
		return nil, err
	}

	return r.readStore.FindByID(ctx, reservationID)
}

func (r *reservationCommandsImpl) Update(ctx context.Context, id uuid.UUID, params UpdateReservationParams) (*queries.ReservationView, error) {
	if params.IsEmpty() {
		return nil, errs.Mark(errs.New("no fields to update"), ErrReservationValidation)
	}
	if params.Patch.Capacity != nil && *params.Patch.Capacity <= 0 {
		return nil, errs.Mark(reservation.ErrNonPositiveCapacity, ErrReservationValidation)
	}

	err := r.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		snap, err := r.reservationRepo.FindForUpdate(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if snap.Status.IsTerminal() {
			return errs.Mark(reservation.ErrReservationCancelled, ErrReservationValidation)
		}

		courtID := patch.Coalesce(params.Patch.CourtID, snap.CourtID)
		court, err := r.courtRepo.FindByID(ctx, tx, courtID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCourtNotFound
			}
			return err
		}

		if !params.Patch.IsEmpty() {
			if err := r.reservationRepo.UpdateHeader(ctx, tx, id, params.Patch); err != nil {
				return err
			}
		}

		// A slot replacement re-prices from scratch; a court change alone
		// re-prices the stored slot bounds at the new court's rate.
		var inputs []reservation.SlotInput
		switch {
		case params.Slots != nil:
			inputs = *params.Slots
		case params.Patch.CourtID != nil:
			inputs, err = r.reservationRepo.SlotBounds(ctx, tx, id)
			if err != nil {
				return err
			}
		default:
			// Header-only patch: rewrite the total from the stored slot rows
			// and re-derive the status from it.
			total, err := r.reservationRepo.RecalcTotal(ctx, tx, id)
			if err != nil {
				return err
			}
			return r.reservationRepo.UpdatePaidStatus(ctx, tx, id, snap.AmountPaid, reservation.DeriveStatus(snap.AmountPaid, total))
		}

		slots, total, err := reservation.CalculateSlots(court.HourlyRate, inputs)
		if err != nil {
			return errs.Mark(err, ErrReservationValidation)
		}
		if total.LessThan(snap.AmountPaid) {
			return errs.Mark(
				errs.Newf("new total %s is below amount already paid %s", total.String(), snap.AmountPaid.String()),
				ErrReservationValidation,
			)
		}

		if err := r.reservationRepo.ReplaceSlots(ctx, tx, id, slots, total); err != nil {
			return err
		}

		newStatus := reservation.DeriveStatus(snap.AmountPaid, total)
		return r.reservationRepo.UpdatePaidStatus(ctx, tx, id, snap.AmountPaid, newStatus)
	})
	if err != nil {
		return nil, err
	}

	return r.readStore.FindByID(ctx, id)
}

// Delete removes the reservation and everything hanging off it. Rendered QR
// files are collected before the cascade and removed only after the
// transaction commits.
func (r *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var artifacts []string

	err := r.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := r.reservationRepo.FindForUpdate(ctx, tx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		paths, err := r.reservationRepo.ArtifactPaths(ctx, tx, id)
		if err != nil {
			return err
		}
		artifacts = paths

		return r.reservationRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	removeRendered(r.renderer, artifacts)
	return nil
}

func removeRendered(renderer QRRenderer, paths []string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := renderer.Remove(path); err != nil {
			slog.Warn("failed to remove rendered QR artifact", "path", path, "error", err.Error())
		}
	}
}
