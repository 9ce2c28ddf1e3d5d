package api

import (
	"errors"
	"net/http"

	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/httperr"
	"courtbook/internal/infra/uow"
	"courtbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	commands commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{commands: cmds}
}

// @Summary Record payment
// @Description Record a partial or full payment against a reservation; crossing the threshold issues the QR bundle
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.RecordPaymentRequest true "Payment request"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.commands.Record(c.Request.Context(), req.ToParams())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Created(c, result.Message, result)
}

// @Summary Update payment
// @Description Edit a payment; the reservation's paid total and status are recomputed from all remaining payments
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body reqdto.UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/{id} [patch]
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if req.IsEmpty() {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("empty patch"), "No fields to update", nil)
		return
	}

	result, err := h.commands.Edit(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, result.Message, result)
}

// @Summary Delete payment
// @Description Delete a payment; an issuance created by it is withdrawn and the reservation recomputed
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} httperr.Response
// @Router /payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.commands.Delete(c.Request.Context(), id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, result.Message, result)
}

func (h *PaymentHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrPaymentValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, commands.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errors.Is(err, commands.ErrPaymentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Payment not found", nil)
	case errors.Is(err, commands.ErrNoActiveControllers):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "No active controllers available for QR assignment", nil)
	case errors.Is(err, commands.ErrCodeGenerationExhausted):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Unable to generate a unique code, try again", nil)
	case errors.Is(err, uow.ErrMaxRetriesExceeded):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Operation contended, try again", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
