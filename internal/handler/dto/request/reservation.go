package request

import (
	"time"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type SlotRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

type CreateReservationRequest struct {
	HostID   uuid.UUID     `json:"host_id" binding:"required"`
	CourtID  uuid.UUID     `json:"court_id" binding:"required"`
	Date     time.Time     `json:"date" binding:"required"`
	Capacity *int32        `json:"capacity,omitempty"`
	Slots    []SlotRequest `json:"slots" binding:"required"`
}

func (r CreateReservationRequest) ToParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		HostID:   r.HostID,
		CourtID:  r.CourtID,
		Date:     r.Date,
		Capacity: r.Capacity,
		Slots:    toSlotInputs(r.Slots),
	}
}

// UpdateReservationRequest uses pointer fields so absent keys are
// distinguishable from zero values; a present slots array replaces the stored
// slots wholesale.
type UpdateReservationRequest struct {
	Date     *time.Time     `json:"date,omitempty"`
	CourtID  *uuid.UUID     `json:"court_id,omitempty"`
	Capacity *int32         `json:"capacity,omitempty"`
	Slots    *[]SlotRequest `json:"slots,omitempty"`
}

func (r UpdateReservationRequest) ToParams() commands.UpdateReservationParams {
	params := commands.UpdateReservationParams{
		Patch: commands.ReservationPatch{
			Date:     r.Date,
			CourtID:  r.CourtID,
			Capacity: r.Capacity,
		},
	}
	if r.Slots != nil {
		inputs := toSlotInputs(*r.Slots)
		params.Slots = &inputs
	}
	return params
}

func toSlotInputs(slots []SlotRequest) []reservation.SlotInput {
	inputs := make([]reservation.SlotInput, 0, len(slots))
	for _, s := range slots {
		inputs = append(inputs, reservation.SlotInput{Start: s.Start, End: s.End})
	}
	return inputs
}
