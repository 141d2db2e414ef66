package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"lanebook/internal/domain/user"
	reqdto "lanebook/internal/handler/dto/request"
	resdto "lanebook/internal/handler/dto/response"
	"lanebook/internal/handler/httperr"
	"lanebook/internal/handler/middleware"
	"lanebook/internal/pkg/errs"
	"lanebook/internal/usecase/commands"
	"lanebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands     commands.BookingCommands
	availabilityQueries queries.AvailabilityQueries
	location            *time.Location
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	availabilityQueries queries.AvailabilityQueries,
	location *time.Location,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands:     bookingCommands,
		availabilityQueries: availabilityQueries,
		location:            location,
	}
}

// @Summary Reserve a lane slot
// @Description Reserve one half-hour slot on a lane for the current user
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReserveLaneSlotRequest true "Lane slot reservation request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/lanes [post]
func (h *BookingHandler) ReserveLaneSlot(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ReserveLaneSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.bookingCommands.ReserveLaneSlot(c.Request.Context(), userID, req.LaneID, req.SlotStart)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(created))
}

// @Summary Reserve a lane range
// @Description Reserve every slot in a contiguous range on a lane, all or nothing
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReserveLaneRangeRequest true "Lane range reservation request"
// @Success 201 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/lanes/range [post]
func (h *BookingHandler) ReserveLaneRange(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ReserveLaneRangeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, start, end, err := req.Resolve(h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date or time format",
		})
		return
	}

	created, err := h.bookingCommands.ReserveLaneRange(c.Request.Context(), userID, req.LaneID, date, start, end)
	if err != nil {
		var conflict *commands.SlotConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot unavailable",
				"slot":  conflict.Slot.Format(time.RFC3339),
			})
			return
		}
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookings(created))
}

// @Summary Reserve a session spot
// @Description Reserve a spot in a trainer session for the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/sessions/{id} [post]
func (h *BookingHandler) ReserveSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// Trainers run sessions; they do not take spots in them.
	if role, ok := middleware.GetUserRole(c); ok && role == user.RoleTrainer {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Trainers cannot reserve session spots",
		})
		return
	}

	sessionID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID format",
		})
		return
	}

	created, err := h.bookingCommands.ReserveSession(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(created))
}

// @Summary Cancel a reservation
// @Description Cancel one of the current user's reservations by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	reservationID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	removed, err := h.bookingCommands.CancelReservation(c.Request.Context(), userID, reservationID)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Cancel a lane booking
// @Description Cancel the current user's reservation for a lane slot
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CancelLaneBookingRequest true "Lane booking cancel request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/lanes [delete]
func (h *BookingHandler) CancelLaneBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CancelLaneBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	removed, err := h.bookingCommands.CancelLaneBooking(c.Request.Context(), userID, req.LaneID, req.SlotStart)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Cancel a session booking
// @Description Cancel the current user's reservation for a session
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/sessions/{id} [delete]
func (h *BookingHandler) CancelSessionBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	sessionID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID format",
		})
		return
	}

	removed, err := h.bookingCommands.CancelSessionBooking(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get my reservations
// @Description Get all reservations of the current user, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetMyReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	reservations, err := h.availabilityQueries.ListUserReservations(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(reservations))
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrLaneNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Lane not found",
		})
	case errs.Is(err, commands.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Session not found",
		})
	case errs.Is(err, commands.ErrAlreadyBooked):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Already booked",
		})
	case errs.Is(err, commands.ErrFull):
		c.JSON(http.StatusConflict, gin.H{
			"error": "No capacity left",
		})
	case errs.Is(err, commands.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time range",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
