package api

import (
	"errors"
	"net/http"

	reqdto "innbook/internal/handler/dto/request"
	resdto "innbook/internal/handler/dto/response"
	"innbook/internal/handler/httperr"
	"innbook/internal/usecase/commands"
	"innbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary Search rooms
// @Description List available rooms priced for today, optionally filtered by type and max price
// @Tags rooms
// @Produce json
// @Param type query string false "Room type filter; 'Any' disables it"
// @Param max_price query string false "Price ceiling; non-numeric values are ignored"
// @Success 200 {array} resdto.SearchRoomResponse
// @Failure 500 {object} httperr.Response
// @Router /rooms/search [get]
func (h *RoomHandler) Search(c *gin.Context) {
	rooms, err := h.q.Search(c.Request.Context(), c.Query("type"), c.Query("max_price"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Room search failed", nil)
		return
	}

	response := make([]*resdto.SearchRoomResponse, len(rooms))
	for i, rm := range rooms {
		response[i] = resdto.FromRoomWithPrice(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get room
// @Description Get a room by ID
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrRoomNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary List rooms
// @Description List every room in the catalog, available or not
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Failure 500 {object} httperr.Response
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list rooms", nil)
		return
	}

	response := make([]*resdto.RoomResponse, len(rooms))
	for i, rm := range rooms {
		response[i] = resdto.FromRoomView(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create room
// @Description Add a room to the catalog
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomRequest true "Room attributes"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), commands.CreateRoomParams{
		RoomType:    req.RoomType,
		BasePrice:   req.BasePrice,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, commands.ErrInvalidRoom) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid room attributes", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create room", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary Update room
// @Description Replace the editable attributes of a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Room attributes"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	var req reqdto.UpdateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	err = h.cmds.Update(c.Request.Context(), id, commands.UpdateRoomParams{
		RoomType:    req.RoomType,
		BasePrice:   req.BasePrice,
		IsAvailable: req.IsAvailable,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, commands.ErrInvalidRoom):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid room attributes", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update room", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Delete room
// @Description Remove a room unless a confirmed reservation references it
// @Tags rooms
// @Param id path string true "Room ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, commands.ErrRoomHasReservations):
			httperr.AbortWithError(c, http.StatusConflict, err, "Room has confirmed reservations", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete room", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
