package api

import (
	"errors"
	"net/http"

	reqdto "innbook/internal/handler/dto/request"
	resdto "innbook/internal/handler/dto/response"
	"innbook/internal/handler/httperr"
	"innbook/internal/pkg/errs"
	"innbook/internal/usecase/commands"
	"innbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingIdentity = errs.New("caller identity not resolved")

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.ReservationQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.ReservationQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Record payment
// @Description Append a settlement to a reservation and mark it paid
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	var req reqdto.RecordPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Record(c.Request.Context(), commands.RecordPaymentParams{
		ReservationID: reservationID,
		Amount:        req.Amount,
		Method:        req.Method,
	})
	if err != nil {
		if errors.Is(err, commands.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to record payment", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPaymentView(view))
}
