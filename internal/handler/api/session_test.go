//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"lanebook/internal/domain/session"
	"lanebook/internal/domain/user"
	"lanebook/internal/handler/api"
	resdto "lanebook/internal/handler/dto/response"
	"lanebook/internal/usecase/commands"
	"lanebook/internal/usecase/queries"
	"lanebook/tests/common/httptest"
	commandsmock "lanebook/tests/mock/commands"
	queriesmock "lanebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSessionCommands
	mockQueries  *queriesmock.MockAvailabilityQueries
	handler      *api.SessionHandler
	role         user.Role
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.role = user.RoleTrainer

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSessionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewSessionHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", testUserID)
		c.Set("user_role", s.role)
		c.Next()
	}

	ranks := map[user.Role]int{user.RoleMember: 1, user.RoleTrainer: 2, user.RoleAdmin: 3}
	requireAtLeast := func(min user.Role) gin.HandlerFunc {
		return func(c *gin.Context) {
			if ranks[s.role] < ranks[min] {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
				return
			}
			c.Next()
		}
	}

	s.router.GET("/sessions", authMiddleware, s.handler.ListSessions)
	s.router.POST("/sessions", authMiddleware, requireAtLeast(user.RoleTrainer), s.handler.CreateSession)
	s.router.DELETE("/sessions/:id", authMiddleware, requireAtLeast(user.RoleAdmin), s.handler.DeleteSession)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func (s *SessionHandlerTestSuite) TestListSessions() {
	s.Run("success: returns sessions with counts", func() {
		s.mockQueries.EXPECT().
			ListSessions(gomock.Any()).
			Return([]queries.SessionView{
				{ID: 1, Title: "Morning swim", AvailableSlots: 10, ReservedCount: 4},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions", nil, "token")

		var resp []resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().Len(resp, 1)
		s.Equal(int32(4), resp[0].ReservedCount)
	})
}

func (s *SessionHandlerTestSuite) TestCreateSession() {
	url := "/sessions"
	start := time.Date(2026, time.June, 2, 18, 0, 0, 0, time.UTC)
	reqBody := map[string]any{
		"title":           "Evening drills",
		"start":           start.Format(time.RFC3339),
		"end":             start.Add(time.Hour).Format(time.RFC3339),
		"available_slots": 8,
	}

	s.Run("success: returns 201", func() {
		created := session.ReconstructSession(9, "Evening drills", start, start.Add(time.Hour), 8)
		s.mockCommands.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(int64(9), resp.ID)
	})

	s.Run("member is forbidden", func() {
		s.role = user.RoleMember
		defer func() { s.role = user.RoleTrainer }()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("missing title rejected by binding", func() {
		badBody := map[string]any{
			"start":           start.Format(time.RFC3339),
			"end":             start.Add(time.Hour).Format(time.RFC3339),
			"available_slots": 8,
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, badBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("domain rejection maps to 422", func() {
		s.mockCommands.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidSession).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid session")
	})
}

func (s *SessionHandlerTestSuite) TestDeleteSession() {
	s.Run("success: admin returns 204", func() {
		s.role = user.RoleAdmin
		s.mockCommands.EXPECT().
			DeleteSession(gomock.Any(), int64(9)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/sessions/9", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("trainer is forbidden", func() {
		s.role = user.RoleTrainer

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/sessions/9", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("missing session maps to 404", func() {
		s.role = user.RoleAdmin
		s.mockCommands.EXPECT().
			DeleteSession(gomock.Any(), int64(9)).
			Return(commands.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/sessions/9", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Session not found")
	})

	s.Run("non-numeric id maps to 400", func() {
		s.role = user.RoleAdmin
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/sessions/abc", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
