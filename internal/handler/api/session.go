package api

import (
	"net/http"

	reqdto "lanebook/internal/handler/dto/request"
	resdto "lanebook/internal/handler/dto/response"
	"lanebook/internal/handler/httperr"
	"lanebook/internal/pkg/errs"
	"lanebook/internal/usecase/commands"
	"lanebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionCommands     commands.SessionCommands
	availabilityQueries queries.AvailabilityQueries
}

func NewSessionHandler(sessionCommands commands.SessionCommands, availabilityQueries queries.AvailabilityQueries) *SessionHandler {
	return &SessionHandler{
		sessionCommands:     sessionCommands,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List sessions
// @Description List all trainer sessions with their reserved counts
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SessionResponse
// @Failure 401 {object} map[string]string
// @Router /sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.availabilityQueries.ListSessions(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response, err := resdto.FromSessionViews(sessions)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Create session
// @Description Create a trainer session (trainer or administrator only)
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSessionRequest true "Session creation request"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req reqdto.CreateSessionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.sessionCommands.CreateSession(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidSession):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid session parameters",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSession(created))
}

// @Summary Delete session
// @Description Delete a trainer session and all its reservations (trainer or administrator only)
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	sessionID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID format",
		})
		return
	}

	if err := h.sessionCommands.DeleteSession(c.Request.Context(), sessionID); err != nil {
		switch {
		case errs.Is(err, commands.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Session not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
