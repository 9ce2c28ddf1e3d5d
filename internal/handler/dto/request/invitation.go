package request

import (
	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateInvitationRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	PersonID      uuid.UUID `json:"person_id" binding:"required"`
}

func (r CreateInvitationRequest) ToParams() commands.InviteGuestParams {
	return commands.InviteGuestParams{
		ReservationID: r.ReservationID,
		PersonID:      r.PersonID,
	}
}
