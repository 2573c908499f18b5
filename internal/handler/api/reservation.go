package api

import (
	"errors"
	"net/http"

	reqdto "innbook/internal/handler/dto/request"
	resdto "innbook/internal/handler/dto/response"
	"innbook/internal/handler/httperr"
	"innbook/internal/handler/middleware"
	"innbook/internal/infra/observability"
	"innbook/internal/usecase/commands"
	"innbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Book a room
// @Description Price the stay at today's seasonal rate and confirm the reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param request body reqdto.BookRoomRequest true "Booking request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Book(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	var req reqdto.BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	checkIn, checkOut, err := req.ParseStay()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	view, err := h.cmds.Book(c.Request.Context(), commands.BookRoomParams{
		RoomID:        req.RoomID,
		UserID:        userID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			observability.ObserveBooking("error")
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, commands.ErrRoomUnavailable):
			observability.ObserveBooking("unavailable")
			httperr.AbortWithError(c, http.StatusConflict, err, "Room is not available", nil)
		case errors.Is(err, commands.ErrRoomConflict):
			observability.ObserveBooking("conflict")
			httperr.AbortWithError(c, http.StatusConflict, err, "Room was booked by another request", nil)
		case errors.Is(err, commands.ErrInvalidBooking):
			observability.ObserveBooking("error")
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid booking request", nil)
		default:
			observability.ObserveBooking("error")
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to book room", nil)
		}
		return
	}

	observability.ObserveBooking("confirmed")
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Description Get a reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservation", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Get invoice
// @Description Get a reservation together with its room and payment records
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/invoice [get]
func (h *ReservationHandler) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	view, err := h.q.GetInvoice(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load invoice", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// @Summary List own reservations
// @Description List the caller's reservations, newest first
// @Tags reservations
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations", nil)
		return
	}

	response := make([]*resdto.ReservationResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromReservationView(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List all reservations
// @Description List every reservation in the system, newest first
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Failure 500 {object} httperr.Response
// @Router /admin/reservations [get]
func (h *ReservationHandler) ListAll(c *gin.Context) {
	views, err := h.q.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations", nil)
		return
	}

	response := make([]*resdto.ReservationResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromReservationView(rm)
	}
	c.JSON(http.StatusOK, response)
}
