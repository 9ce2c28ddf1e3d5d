package api

import (
	"errors"
	"net/http"

	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/httperr"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, qrs queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Create reservation
// @Description Create a reservation with hour-aligned slots priced at the court's hourly rate
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Created(c, "reservation created", view)
}

// @Summary Get reservation
// @Description Get a reservation with its slots and payment progress
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response.OK(c, "reservation retrieved", view)
}

// @Summary Update reservation
// @Description Patch reservation fields and optionally replace its slots
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Fields to update"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, req.ToParams())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, "reservation updated", view)
}

// @Summary Delete reservation
// @Description Delete a reservation and everything attached to it
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, "reservation deleted", nil)
}

func (h *ReservationHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReservationValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, commands.ErrHostNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Host not found", nil)
	case errors.Is(err, commands.ErrCourtNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Court not found", nil)
	case errors.Is(err, commands.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
