package reservation

import (
	"errors"
	"time"

	"courtbook/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNonPositiveCapacity = errors.New("capacity must be positive when supplied")

type CourtSpec struct {
	ID         uuid.UUID
	VenueID    uuid.UUID
	HourlyRate decimal.Decimal
}

type Reservation struct {
	id          uuid.UUID
	hostID      uuid.UUID
	courtID     uuid.UUID
	date        time.Time
	capacity    *int32
	status      Status
	totalAmount decimal.Decimal
	amountPaid  decimal.Decimal
	slots       []Slot
	createdAt   time.Time
	expiresAt   time.Time
}

// NewReservation runs the slot calculator against the court's hourly rate and
// assembles a pending reservation with nothing paid. expiresAt marks when the
// sweeper may force a terminal status on a still-pending reservation.
func NewReservation(
	clk clock.Clock,
	hostID, courtID uuid.UUID,
	date time.Time,
	capacity *int32,
	court CourtSpec,
	inputs []SlotInput,
	pendingTTL time.Duration,
) (*Reservation, error) {
	if capacity != nil && *capacity <= 0 {
		return nil, ErrNonPositiveCapacity
	}

	slots, total, err := CalculateSlots(court.HourlyRate, inputs)
	if err != nil {
		return nil, err
	}

	now := clk.Now()
	return &Reservation{
		id:          uuid.New(),
		hostID:      hostID,
		courtID:     courtID,
		date:        date,
		capacity:    capacity,
		status:      StatusPending,
		totalAmount: total,
		amountPaid:  decimal.Zero,
		slots:       slots,
		createdAt:   now,
		expiresAt:   now.Add(pendingTTL),
	}, nil
}

func ReconstructReservation(
	id, hostID, courtID uuid.UUID,
	date time.Time,
	capacity *int32,
	status Status,
	totalAmount, amountPaid decimal.Decimal,
	slots []Slot,
	createdAt, expiresAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		hostID:      hostID,
		courtID:     courtID,
		date:        date,
		capacity:    capacity,
		status:      status,
		totalAmount: totalAmount,
		amountPaid:  amountPaid,
		slots:       slots,
		createdAt:   createdAt,
		expiresAt:   expiresAt,
	}
}

func (r *Reservation) OutstandingBalance() decimal.Decimal {
	return r.totalAmount.Sub(r.amountPaid)
}

// PendingExpired reports whether the sweeper should resolve this reservation.
func (r *Reservation) PendingExpired(now time.Time) bool {
	return r.status == StatusPending && now.After(r.expiresAt)
}

// QRExpiry is the instant issued QR codes stop being valid: the end of the
// latest slot.
func (r *Reservation) QRExpiry() time.Time {
	return LatestSlotEnd(r.slots)
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) HostID() uuid.UUID           { return r.hostID }
func (r *Reservation) CourtID() uuid.UUID          { return r.courtID }
func (r *Reservation) Date() time.Time             { return r.date }
func (r *Reservation) Capacity() *int32            { return r.capacity }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) TotalAmount() decimal.Decimal { return r.totalAmount }
func (r *Reservation) AmountPaid() decimal.Decimal  { return r.amountPaid }
func (r *Reservation) Slots() []Slot               { return r.slots }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
func (r *Reservation) ExpiresAt() time.Time        { return r.expiresAt }
