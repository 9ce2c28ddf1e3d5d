package commands

import (
	"context"
	"time"

	"courtbook/internal/domain/person"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots keep the command layer independent of read-side view
// types.

type ReservationSnapshot struct {
	ID          uuid.UUID
	HostID      uuid.UUID
	CourtID     uuid.UUID
	Date        time.Time
	Capacity    *int32
	Status      reservation.Status
	TotalAmount decimal.Decimal
	AmountPaid  decimal.Decimal
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

func (s *ReservationSnapshot) OutstandingBalance() decimal.Decimal {
	return s.TotalAmount.Sub(s.AmountPaid)
}

type CourtSnapshot struct {
	ID         uuid.UUID
	VenueID    uuid.UUID
	Name       string
	VenueName  string
	HourlyRate decimal.Decimal
}

type PersonSnapshot struct {
	ID    uuid.UUID
	Alias string
	Email string
}

type PaymentRecord struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Amount        decimal.Decimal
	Method        reservation.Method
	PaidAt        time.Time
}

type IssuanceRecord struct {
	ID                uuid.UUID
	ReservationID     uuid.UUID
	PaymentID         uuid.UUID
	InvitationCode    string
	TrackingCode      string
	Verified          bool
	ReservationQRPath string
	InvitationQRPath  string
	ControllerID      uuid.UUID
	GeneratedAt       time.Time
	ExpiresAt         time.Time
}

type InvitationRecord struct {
	ID             uuid.UUID
	ReservationID  uuid.UUID
	PersonID       uuid.UUID
	InvitationCode string
	Attendance     reservation.Attendance
	QRPath         string
	ConfirmedAt    *time.Time
	ExpiresAt      time.Time
	CreatedAt      time.Time
}

// IssuanceDetails carries the display data embedded into QR payloads.
type IssuanceDetails struct {
	ReservationID uuid.UUID
	HostAlias     string
	CourtName     string
	VenueName     string
	Date          time.Time
	SlotDisplays  []string
	LastSlotEnd   time.Time
}

// ReservationPatch is the typed optional-field structure for partial updates:
// only non-nil fields are applied.
type ReservationPatch struct {
	Date     *time.Time
	CourtID  *uuid.UUID
	Capacity *int32
}

func (p ReservationPatch) IsEmpty() bool {
	return p.Date == nil && p.CourtID == nil && p.Capacity == nil
}

type PaymentPatch struct {
	Amount *decimal.Decimal
	Method *reservation.Method
	PaidAt *time.Time
}

type ReservationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*ReservationSnapshot, error)
	// FindForUpdate locks the reservation row for the duration of the
	// transaction, serializing concurrent payment mutations.
	FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*ReservationSnapshot, error)
	UpdateHeader(ctx context.Context, dbtx db.DBTX, id uuid.UUID, patch ReservationPatch) error
	ReplaceSlots(ctx context.Context, dbtx db.DBTX, id uuid.UUID, slots []reservation.Slot, total decimal.Decimal) error
	// SlotBounds returns the stored slot time ranges, for re-pricing when the
	// court (and therefore the hourly rate) changes without new slots supplied.
	SlotBounds(ctx context.Context, dbtx db.DBTX, id uuid.UUID) ([]reservation.SlotInput, error)
	// RecalcTotal rewrites total_amount from the stored slot rows (idempotent).
	RecalcTotal(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (decimal.Decimal, error)
	UpdatePaidStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, amountPaid decimal.Decimal, status reservation.Status) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	ListExpiredPending(ctx context.Context, dbtx db.DBTX, now time.Time, limit int32) ([]uuid.UUID, error)
	DetailsForIssuance(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*IssuanceDetails, error)
	// ArtifactPaths collects every rendered QR file referenced by the
	// reservation, for best-effort cleanup after a cascade delete.
	ArtifactPaths(ctx context.Context, dbtx db.DBTX, id uuid.UUID) ([]string, error)
}

type PaymentRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, rec *PaymentRecord) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*PaymentRecord, error)
	Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, patch PaymentPatch) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	// SumByReservation recomputes the paid total from the payment rows, the
	// authoritative source (never trusts the cached amount_paid).
	SumByReservation(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) (decimal.Decimal, error)
}

type IssuanceRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, rec *IssuanceRecord) (uuid.UUID, error)
	FindByReservation(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) (*IssuanceRecord, error)
	// DeleteByPayment removes the issuance tied to the payment, returning the
	// deleted record (nil when none existed) so artifacts can be cleaned up.
	DeleteByPayment(ctx context.Context, dbtx db.DBTX, paymentID uuid.UUID) (*IssuanceRecord, error)
	InvitationCodeInUse(ctx context.Context, dbtx db.DBTX, code string) (bool, error)
	TrackingCodeInUse(ctx context.Context, dbtx db.DBTX, code string) (bool, error)
}

type InvitationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, rec *InvitationRecord) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*InvitationRecord, error)
	ExistsFor(ctx context.Context, dbtx db.DBTX, reservationID, personID uuid.UUID) (bool, error)
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	CodeInUse(ctx context.Context, dbtx db.DBTX, code string) (bool, error)
}

type PersonRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*PersonSnapshot, error)
	HasRole(ctx context.Context, dbtx db.DBTX, personID uuid.UUID, role person.Role) (bool, error)
	// EnsureRole grants the role if absent; granting an already-held role is
	// a no-op, never an error.
	EnsureRole(ctx context.Context, dbtx db.DBTX, personID uuid.UUID, role person.Role) error
}

type CourtRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*CourtSnapshot, error)
}

type ControllerRepository interface {
	// PickRandomActive selects one active controller uniformly at random.
	PickRandomActive(ctx context.Context, dbtx db.DBTX) (uuid.UUID, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

// QRRenderer renders raster artifacts and returns their repository-relative
// paths. Remove is best-effort cleanup for failure branches.
type QRRenderer interface {
	RenderReservationQR(req ReservationQRRequest) (string, error)
	RenderInvitationQR(req InvitationQRRequest) (string, error)
	RenderGuestQR(req GuestQRRequest) (string, error)
	Remove(path string) error
}

type ReservationQRRequest struct {
	// Content is the verification URL embedding the tracking code.
	Content      string
	TrackingCode string
	VenueName    string
	CourtName    string
	ExpiresAt    time.Time
}

type InvitationQRRequest struct {
	// Content is the shareable link wrapping the encoded reservation payload.
	Content        string
	InvitationCode string
	VenueName      string
	CourtName      string
}

type GuestQRRequest struct {
	Content        string
	InvitationCode string
	GuestAlias     string
	CourtName      string
}
