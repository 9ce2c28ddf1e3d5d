package request

import (
	"time"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecordPaymentRequest struct {
	ReservationID uuid.UUID       `json:"reservation_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Method        string          `json:"method" binding:"required"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
}

func (r RecordPaymentRequest) ToParams() commands.RecordPaymentParams {
	return commands.RecordPaymentParams{
		ReservationID: r.ReservationID,
		Amount:        r.Amount,
		Method:        reservation.Method(r.Method),
		PaidAt:        r.PaidAt,
	}
}

type UpdatePaymentRequest struct {
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Method *string          `json:"method,omitempty"`
	PaidAt *time.Time       `json:"paid_at,omitempty"`
}

func (r UpdatePaymentRequest) ToPatch() commands.PaymentPatch {
	patch := commands.PaymentPatch{
		Amount: r.Amount,
		PaidAt: r.PaidAt,
	}
	if r.Method != nil {
		m := reservation.Method(*r.Method)
		patch.Method = &m
	}
	return patch
}

func (r UpdatePaymentRequest) IsEmpty() bool {
	return r.Amount == nil && r.Method == nil && r.PaidAt == nil
}
