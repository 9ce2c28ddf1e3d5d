package commands

import (
	"courtbook/internal/domain/reservation"
	"courtbook/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

func paymentViewFrom(rec *PaymentRecord) *queries.PaymentView {
	view := &queries.PaymentView{}
	_ = copier.Copy(view, rec)
	view.Method = rec.Method.String()
	return view
}

func issuanceViewFrom(rec *IssuanceRecord) *queries.IssuanceView {
	if rec == nil {
		return nil
	}
	view := &queries.IssuanceView{}
	_ = copier.Copy(view, rec)
	return view
}

func invitationViewFrom(rec *InvitationRecord, alias string) *queries.InvitationView {
	view := &queries.InvitationView{}
	_ = copier.Copy(view, rec)
	view.PersonAlias = alias
	view.Attendance = rec.Attendance.String()
	return view
}

func summaryFrom(snap *ReservationSnapshot, amountPaid decimal.Decimal, status reservation.Status) *queries.ReservationSummary {
	return &queries.ReservationSummary{
		ID:                 snap.ID,
		Status:             status.String(),
		TotalAmount:        snap.TotalAmount,
		AmountPaid:         amountPaid,
		OutstandingBalance: snap.TotalAmount.Sub(amountPaid),
	}
}
