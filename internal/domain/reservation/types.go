package reservation

import "github.com/shopspring/decimal"

type Status string

const (
	StatusPending       Status = "pending"
	StatusPartiallyPaid Status = "partially_paid"
	StatusFullyPaid     Status = "fully_paid"
	StatusCancelled     Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPartiallyPaid, StatusFullyPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status accepts no further payments.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled
}

// DeriveStatus maps a paid amount onto the lifecycle status:
// pending iff nothing is paid, fully_paid iff paid covers the total,
// partially_paid in between. Cancellation is never derived here; only the
// expiration sweeper produces it.
func DeriveStatus(amountPaid, totalAmount decimal.Decimal) Status {
	switch {
	case amountPaid.LessThanOrEqual(decimal.Zero):
		return StatusPending
	case amountPaid.GreaterThanOrEqual(totalAmount):
		return StatusFullyPaid
	default:
		return StatusPartiallyPaid
	}
}

type Method string

const (
	MethodCard     Method = "card"
	MethodCash     Method = "cash"
	MethodTransfer Method = "transfer"
	MethodQR       Method = "qr"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodCard, MethodCash, MethodTransfer, MethodQR:
		return true
	default:
		return false
	}
}

type Attendance string

const (
	AttendancePending  Attendance = "pending"
	AttendanceAttended Attendance = "attended"
	AttendanceNoShow   Attendance = "no_show"
)

func (a Attendance) String() string {
	return string(a)
}

func (a Attendance) IsValid() bool {
	switch a {
	case AttendancePending, AttendanceAttended, AttendanceNoShow:
		return true
	default:
		return false
	}
}
