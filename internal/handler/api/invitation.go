package api

import (
	"errors"
	"net/http"

	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/httperr"
	"courtbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type InvitationHandler struct {
	commands commands.InvitationCommands
}

func NewInvitationHandler(cmds commands.InvitationCommands) *InvitationHandler {
	return &InvitationHandler{commands: cmds}
}

// @Summary Invite guest
// @Description Invite a registered client to a reservation and render their personal QR
// @Tags guest-invitations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateInvitationRequest true "Invitation request"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /guest-invitations [post]
func (h *InvitationHandler) InviteGuest(c *gin.Context) {
	var req reqdto.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Invite(c.Request.Context(), req.ToParams())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Created(c, "guest invited", view)
}

// @Summary Delete guest invitation
// @Description Withdraw a guest invitation and remove its rendered QR
// @Tags guest-invitations
// @Produce json
// @Param id path string true "Invitation ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} httperr.Response
// @Router /guest-invitations/{id} [delete]
func (h *InvitationHandler) DeleteInvitation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, "guest invitation deleted", nil)
}

func (h *InvitationHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReservationValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, commands.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errors.Is(err, commands.ErrInviteeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Invitee not found", nil)
	case errors.Is(err, commands.ErrInvitationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Guest invitation not found", nil)
	case errors.Is(err, commands.ErrInviteeNotClient):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invitee must be a registered client", nil)
	case errors.Is(err, commands.ErrDuplicateInvitation):
		httperr.AbortWithError(c, http.StatusConflict, err, "Person is already invited to this reservation", nil)
	case errors.Is(err, commands.ErrCodeGenerationExhausted):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Unable to generate a unique code, try again", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
