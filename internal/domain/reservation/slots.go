package reservation

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNoSlots              = errors.New("at least one slot is required")
	ErrNonPositiveRate      = errors.New("hourly rate must be positive")
	ErrSlotMissingBound     = errors.New("slot start and end are required")
	ErrSlotNotHourAligned   = errors.New("slot times must fall on exact hour boundaries")
	ErrSlotEndNotAfterStart = errors.New("slot end must be after start")
	ErrSlotOverlap          = errors.New("slots must not overlap")
)

type SlotInput struct {
	Start time.Time
	End   time.Time
}

type Slot struct {
	Start  time.Time
	End    time.Time
	Amount decimal.Decimal
}

func (s Slot) Hours() int64 {
	return int64(s.End.Sub(s.Start) / time.Hour)
}

// Display renders a slot the way it appears inside QR payloads.
func (s Slot) Display() string {
	return fmt.Sprintf("%s %s-%s",
		s.Start.Format("2006-01-02"),
		s.Start.Format("15:04"),
		s.End.Format("15:04"))
}

// SlotError identifies which input pair failed validation.
type SlotError struct {
	Index int
	err   error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("slot %d: %s", e.Index, e.err.Error())
}

func (e *SlotError) Unwrap() error {
	return e.err
}

// CalculateSlots validates the requested hour blocks and prices each one at
// rate per whole hour. Pure and deterministic: no I/O, no clock.
// The returned slots are sorted by start time; the second return value is the
// sum of the slot amounts.
func CalculateSlots(rate decimal.Decimal, inputs []SlotInput) ([]Slot, decimal.Decimal, error) {
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, decimal.Zero, ErrNonPositiveRate
	}
	if len(inputs) == 0 {
		return nil, decimal.Zero, ErrNoSlots
	}

	slots := make([]Slot, 0, len(inputs))
	total := decimal.Zero

	for i, in := range inputs {
		if err := validateSlotInput(in); err != nil {
			return nil, decimal.Zero, &SlotError{Index: i, err: err}
		}

		hours := int64(in.End.Sub(in.Start) / time.Hour)
		amount := rate.Mul(decimal.NewFromInt(hours))
		slots = append(slots, Slot{Start: in.Start, End: in.End, Amount: amount})
		total = total.Add(amount)
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	for i := 1; i < len(slots); i++ {
		if slots[i].Start.Before(slots[i-1].End) {
			return nil, decimal.Zero, &SlotError{Index: i, err: ErrSlotOverlap}
		}
	}

	return slots, total, nil
}

func validateSlotInput(in SlotInput) error {
	if in.Start.IsZero() || in.End.IsZero() {
		return ErrSlotMissingBound
	}
	if !hourAligned(in.Start) || !hourAligned(in.End) {
		return ErrSlotNotHourAligned
	}
	if !in.End.After(in.Start) {
		return ErrSlotEndNotAfterStart
	}
	return nil
}

func hourAligned(t time.Time) bool {
	return t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// LatestSlotEnd returns the end instant of the last slot, the expiry used for
// issued QR codes.
func LatestSlotEnd(slots []Slot) time.Time {
	var latest time.Time
	for _, s := range slots {
		if s.End.After(latest) {
			latest = s.End
		}
	}
	return latest
}
