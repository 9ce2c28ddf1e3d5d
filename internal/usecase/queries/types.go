package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type SlotView struct {
	Start  time.Time       `json:"start"`
	End    time.Time       `json:"end"`
	Amount decimal.Decimal `json:"amount"`
}

type ReservationView struct {
	ID                 uuid.UUID       `json:"id"`
	HostID             uuid.UUID       `json:"host_id"`
	HostAlias          string          `json:"host_alias"`
	CourtID            uuid.UUID       `json:"court_id"`
	CourtName          string          `json:"court_name"`
	VenueName          string          `json:"venue_name"`
	Date               time.Time       `json:"date"`
	Capacity           *int32          `json:"capacity,omitempty"`
	Status             string          `json:"status"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	Slots              []SlotView      `json:"slots"`
	CreatedAt          time.Time       `json:"created_at"`
	ExpiresAt          time.Time       `json:"expires_at"`
}

// ReservationSummary is the compact shape returned alongside payment
// mutations.
type ReservationSummary struct {
	ID                 uuid.UUID       `json:"id"`
	Status             string          `json:"status"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

type PaymentView struct {
	ID            uuid.UUID       `json:"id"`
	ReservationID uuid.UUID       `json:"reservation_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	PaidAt        time.Time       `json:"paid_at"`
}

type IssuanceView struct {
	ID                uuid.UUID `json:"id"`
	ReservationID     uuid.UUID `json:"reservation_id"`
	PaymentID         uuid.UUID `json:"payment_id"`
	InvitationCode    string    `json:"invitation_code"`
	TrackingCode      string    `json:"tracking_code"`
	Verified          bool      `json:"verified"`
	ReservationQRPath string    `json:"reservation_qr_path"`
	InvitationQRPath  string    `json:"invitation_qr_path"`
	ControllerID      uuid.UUID `json:"controller_id"`
	GeneratedAt       time.Time `json:"generated_at"`
	ExpiresAt         time.Time `json:"expires_at"`
}

type InvitationView struct {
	ID             uuid.UUID  `json:"id"`
	ReservationID  uuid.UUID  `json:"reservation_id"`
	PersonID       uuid.UUID  `json:"person_id"`
	PersonAlias    string     `json:"person_alias"`
	InvitationCode string     `json:"invitation_code"`
	Attendance     string     `json:"attendance"`
	QRPath         string     `json:"qr_path"`
	ConfirmedAt    *time.Time `json:"confirmed_at,omitempty"`
	ExpiresAt      time.Time  `json:"expires_at"`
	CreatedAt      time.Time  `json:"created_at"`
}
