package reservation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount    = errors.New("payment amount must be positive")
	ErrAmountExceedsBalance = errors.New("payment amount exceeds outstanding balance")
	ErrInvalidMethod        = errors.New("invalid payment method")
	ErrReservationCancelled = errors.New("cancelled reservation accepts no payments")
)

// ValidatePayment enforces the ledger's insert-time invariants: positive
// amount, recognized method, non-terminal reservation, and the paid sum never
// exceeding the total. The exceeds-balance error names the excess so callers
// can surface it.
func ValidatePayment(amount decimal.Decimal, method Method, status Status, outstanding decimal.Decimal) error {
	if status.IsTerminal() {
		return ErrReservationCancelled
	}
	if !method.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveAmount
	}
	if amount.GreaterThan(outstanding) {
		excess := amount.Sub(outstanding)
		return fmt.Errorf("%w: over by %s", ErrAmountExceedsBalance, excess.String())
	}
	return nil
}
