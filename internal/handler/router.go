package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lanebook/internal/domain/user"
	"lanebook/internal/handler/api"
	"lanebook/internal/handler/middleware"
	"lanebook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	laneHandler *api.LaneHandler,
	sessionHandler *api.SessionHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
	logger *middleware.Logger,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, laneHandler, sessionHandler, bookingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	laneHandler *api.LaneHandler,
	sessionHandler *api.SessionHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		lanes := apiGroup.Group("/lanes")
		lanes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(lanes, []route{
				{Method: http.MethodGet, Path: "/grid", Handler: laneHandler.GetDayGrid},
			})
		}

		sessions := apiGroup.Group("/sessions")
		sessions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(sessions, []route{
				{Method: http.MethodGet, Path: "", Handler: sessionHandler.ListSessions},
				{
					Method:  http.MethodPost,
					Path:    "",
					Handler: sessionHandler.CreateSession,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleTrainer)},
				},
				{
					Method:  http.MethodDelete,
					Path:    "/:id",
					Handler: sessionHandler.DeleteSession,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)},
				},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetMyReservations},
				{Method: http.MethodPost, Path: "/lanes", Handler: bookingHandler.ReserveLaneSlot},
				{Method: http.MethodDelete, Path: "/lanes", Handler: bookingHandler.CancelLaneBooking},
				{Method: http.MethodPost, Path: "/lanes/range", Handler: bookingHandler.ReserveLaneRange},
				{Method: http.MethodPost, Path: "/sessions/:id", Handler: bookingHandler.ReserveSession},
				{Method: http.MethodDelete, Path: "/sessions/:id", Handler: bookingHandler.CancelSessionBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.CancelReservation},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
