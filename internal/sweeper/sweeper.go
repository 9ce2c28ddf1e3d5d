// Package sweeper resolves pending reservations whose expiry window has
// lapsed. It is the only producer of the cancelled status.
package sweeper

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"time"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/shared"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const batchLimit = 100

type Sweeper struct {
	runner           shared.TxRunner
	reservationRepo  commands.ReservationRepository
	paymentRepo      commands.PaymentRepository
	notificationRepo commands.NotificationRepository
	clock            clock.Clock
	threshold        decimal.Decimal
	interval         time.Duration

	scheduler gocron.Scheduler
	running   atomic.Bool
}

func New(
	runner shared.TxRunner,
	reservationRepo commands.ReservationRepository,
	paymentRepo commands.PaymentRepository,
	notificationRepo commands.NotificationRepository,
	clk clock.Clock,
	cfg config.Config,
) *Sweeper {
	return &Sweeper{
		runner:           runner,
		reservationRepo:  reservationRepo,
		paymentRepo:      paymentRepo,
		notificationRepo: notificationRepo,
		clock:            clk,
		threshold:        cfg.Booking.Threshold(),
		interval:         cfg.Booking.SweepInterval,
	}
}

// Start registers the sweep as a recurring job and begins the scheduler.
func (s *Sweeper) Start(ctx context.Context) error {
	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					slog.Error("sweep job panicked", "job_id", jobID.String(), "job_name", jobName, "panic", recoverData)
				}),
			),
		),
	)
	if err != nil {
		return errs.Wrap(err, "failed to create scheduler")
	}

	_, err = sched.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() { s.Sweep(ctx) }),
		gocron.WithName("expiration-sweep"),
	)
	if err != nil {
		return errs.Wrap(err, "failed to register sweep job")
	}

	s.scheduler = sched
	sched.Start()
	slog.Info("expiration sweeper started", "interval", s.interval.String())
	return nil
}

func (s *Sweeper) Stop() error {
	if s.scheduler == nil {
		return nil
	}
	return s.scheduler.Shutdown()
}

// Sweep runs one pass. Overlapping passes are collapsed to one; each
// reservation is resolved in its own transaction so a failure on one never
// blocks the rest of the batch.
func (s *Sweeper) Sweep(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		slog.Debug("sweep already in progress, skipping")
		return
	}
	defer s.running.Store(false)

	now := s.clock.Now()

	var ids []uuid.UUID
	err := s.runner.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		ids, err = s.reservationRepo.ListExpiredPending(ctx, dbtx, now, batchLimit)
		return err
	})
	if err != nil {
		slog.Error("failed to list expired pending reservations", "error", err.Error())
		return
	}
	if len(ids) == 0 {
		return
	}

	var resolved, failed int
	for _, id := range ids {
		if err := s.resolve(ctx, id, now); err != nil {
			failed++
			slog.Error("failed to resolve expired reservation", "reservation_id", id.String(), "error", err.Error())
			continue
		}
		resolved++
	}

	slog.Info("sweep pass finished", "candidates", len(ids), "resolved", resolved, "failed", failed)
}

// resolve re-checks expiry under the row lock, then forces a terminal
// decision: enough paid to keep the booking, or cancel and release the slots.
func (s *Sweeper) resolve(ctx context.Context, id uuid.UUID, now time.Time) error {
	return s.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		snap, err := s.reservationRepo.FindForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		// A payment may have landed between listing and locking.
		if snap.Status != reservation.StatusPending || !now.After(snap.ExpiresAt) {
			return nil
		}

		paid, err := s.paymentRepo.SumByReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		var newStatus reservation.Status
		switch {
		case paid.GreaterThanOrEqual(snap.TotalAmount):
			newStatus = reservation.StatusFullyPaid
		case paid.GreaterThanOrEqual(s.threshold):
			newStatus = reservation.StatusPartiallyPaid
		default:
			newStatus = reservation.StatusCancelled
		}

		if err := s.reservationRepo.UpdatePaidStatus(ctx, tx, id, paid, newStatus); err != nil {
			return err
		}

		if newStatus == reservation.StatusCancelled {
			if err := s.enqueueSlotRelease(ctx, tx, snap, now); err != nil {
				return err
			}
		}

		slog.Info("expired reservation resolved",
			"reservation_id", id.String(),
			"status", newStatus.String(),
			"amount_paid", paid.String(),
		)
		return nil
	})
}

type slotReleasePayload struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	CourtID       uuid.UUID `json:"court_id"`
	Date          string    `json:"date"`
}

func (s *Sweeper) enqueueSlotRelease(ctx context.Context, tx db.DBTX, snap *commands.ReservationSnapshot, now time.Time) error {
	payload, err := json.Marshal(slotReleasePayload{
		ReservationID: snap.ID,
		CourtID:       snap.CourtID,
		Date:          snap.Date.Format("2006-01-02"),
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal slot release payload")
	}
	return s.notificationRepo.CreateJob(ctx, tx, "slot_release", "reservations.cancelled", payload, now)
}
