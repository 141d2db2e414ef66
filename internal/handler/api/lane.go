package api

import (
	"net/http"
	"time"

	resdto "lanebook/internal/handler/dto/response"
	"lanebook/internal/handler/httperr"
	"lanebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LaneHandler struct {
	availabilityQueries queries.AvailabilityQueries
	location            *time.Location
}

func NewLaneHandler(availabilityQueries queries.AvailabilityQueries, location *time.Location) *LaneHandler {
	return &LaneHandler{
		availabilityQueries: availabilityQueries,
		location:            location,
	}
}

// @Summary Get lane availability grid
// @Description Get per-lane occupancy for every slot of the given day
// @Tags lanes
// @Produce json
// @Security BearerAuth
// @Param date query string true "Day in YYYY-MM-DD format"
// @Success 200 {object} resdto.DayGridResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /lanes/grid [get]
func (h *LaneHandler) GetDayGrid(c *gin.Context) {
	dateStr := c.Query("date")
	date, err := time.ParseInLocation("2006-01-02", dateStr, h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	grid, err := h.availabilityQueries.LaneGrid(c.Request.Context(), date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayGrid(grid))
}
