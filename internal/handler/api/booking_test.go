//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"lanebook/internal/domain/booking"
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

const testUserID int64 = 42

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockAvailabilityQueries
	handler      *api.BookingHandler
	location     *time.Location
	role         user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.role = user.RoleMember

	loc, err := time.LoadLocation("Europe/Warsaw")
	s.Require().NoError(err)
	s.location = loc

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, loc)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", testUserID)
		c.Set("user_role", s.role)
		c.Next()
	}

	s.router.GET("/bookings", authMiddleware, s.handler.GetMyReservations)
	s.router.POST("/bookings/lanes", authMiddleware, s.handler.ReserveLaneSlot)
	s.router.DELETE("/bookings/lanes", authMiddleware, s.handler.CancelLaneBooking)
	s.router.POST("/bookings/lanes/range", authMiddleware, s.handler.ReserveLaneRange)
	s.router.POST("/bookings/sessions/:id", authMiddleware, s.handler.ReserveSession)
	s.router.DELETE("/bookings/sessions/:id", authMiddleware, s.handler.CancelSessionBooking)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.CancelReservation)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) laneBooking(id int64, laneID int32, slot time.Time) *booking.Booking {
	return booking.ReconstructBooking(id, testUserID, booking.LaneSlot{LaneID: laneID, SlotStart: slot}, time.Now().UTC())
}

func (s *BookingHandlerTestSuite) TestReserveLaneSlot() {
	url := "/bookings/lanes"
	slot := time.Date(2026, time.June, 2, 8, 0, 0, 0, time.UTC)
	reqBody := map[string]any{"lane_id": 1, "slot_start": slot.Format(time.RFC3339)}

	s.Run("success: returns 201 with the created booking", func() {
		s.mockCommands.EXPECT().
			ReserveLaneSlot(gomock.Any(), testUserID, int32(1), slot).
			Return(s.laneBooking(10, 1, slot), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(int64(10), resp.ID)
		s.Require().NotNil(resp.LaneID)
		s.Equal(int32(1), *resp.LaneID)
	})

	s.Run("unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("missing lane_id is rejected by binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"slot_start": slot.Format(time.RFC3339)}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("unknown lane maps to 404", func() {
		s.mockCommands.EXPECT().
			ReserveLaneSlot(gomock.Any(), testUserID, int32(1), slot).
			Return(nil, commands.ErrLaneNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Lane not found")
	})

	s.Run("duplicate maps to 409", func() {
		s.mockCommands.EXPECT().
			ReserveLaneSlot(gomock.Any(), testUserID, int32(1), slot).
			Return(nil, commands.ErrAlreadyBooked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Already booked")
	})

	s.Run("full slot maps to 409", func() {
		s.mockCommands.EXPECT().
			ReserveLaneSlot(gomock.Any(), testUserID, int32(1), slot).
			Return(nil, commands.ErrFull).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "No capacity left")
	})

	s.Run("unaligned slot maps to 400", func() {
		s.mockCommands.EXPECT().
			ReserveLaneSlot(gomock.Any(), testUserID, int32(1), gomock.Any()).
			Return(nil, commands.ErrInvalidRange).Times(1)

		badBody := map[string]any{"lane_id": 1, "slot_start": slot.Add(10 * time.Minute).Format(time.RFC3339)}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, badBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid time range")
	})
}

func (s *BookingHandlerTestSuite) TestReserveLaneRange() {
	url := "/bookings/lanes/range"
	reqBody := map[string]any{"lane_id": 1, "date": "2026-06-02", "start": "10:00", "end": "12:00"}

	s.Run("success: returns 201 with all created bookings", func() {
		date := time.Date(2026, time.June, 2, 0, 0, 0, 0, s.location)
		slots := []time.Time{
			time.Date(2026, time.June, 2, 10, 0, 0, 0, s.location).UTC(),
			time.Date(2026, time.June, 2, 10, 30, 0, 0, s.location).UTC(),
		}
		created := []*booking.Booking{
			s.laneBooking(1, 1, slots[0]),
			s.laneBooking(2, 1, slots[1]),
		}
		s.mockCommands.EXPECT().
			ReserveLaneRange(gomock.Any(), testUserID, int32(1), date, 10*time.Hour, 12*time.Hour).
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Len(resp, 2)
	})

	s.Run("malformed clock value maps to 400", func() {
		badBody := map[string]any{"lane_id": 1, "date": "2026-06-02", "start": "ten", "end": "12:00"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, badBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("slot conflict maps to 409 and names the slot", func() {
		conflictSlot := time.Date(2026, time.June, 2, 11, 0, 0, 0, s.location).UTC()
		s.mockCommands.EXPECT().
			ReserveLaneRange(gomock.Any(), testUserID, int32(1), gomock.Any(), 10*time.Hour, 12*time.Hour).
			Return(nil, commands.NewSlotConflictError(conflictSlot, commands.ErrFull)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), conflictSlot.Format(time.RFC3339))
	})

	s.Run("invalid range maps to 400", func() {
		s.mockCommands.EXPECT().
			ReserveLaneRange(gomock.Any(), testUserID, int32(1), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid time range")
	})
}

func (s *BookingHandlerTestSuite) TestReserveSession() {
	url := "/bookings/sessions/7"

	s.Run("success: returns 201", func() {
		created := booking.ReconstructBooking(3, testUserID, booking.SessionEntry{SessionID: 7}, time.Now().UTC())
		s.mockCommands.EXPECT().
			ReserveSession(gomock.Any(), testUserID, int64(7)).
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Require().NotNil(resp.SessionID)
		s.Equal(int64(7), *resp.SessionID)
	})

	s.Run("trainer is forbidden", func() {
		s.role = user.RoleTrainer
		defer func() { s.role = user.RoleMember }()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Trainers cannot reserve")
	})

	s.Run("non-numeric id maps to 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/sessions/abc", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("full session maps to 409", func() {
		s.mockCommands.EXPECT().
			ReserveSession(gomock.Any(), testUserID, int64(7)).
			Return(nil, commands.ErrFull).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "No capacity left")
	})
}

func (s *BookingHandlerTestSuite) TestCancelReservation() {
	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().
			CancelReservation(gomock.Any(), testUserID, int64(5)).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/5", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("not removed maps to 404", func() {
		s.mockCommands.EXPECT().
			CancelReservation(gomock.Any(), testUserID, int64(5)).
			Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/5", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *BookingHandlerTestSuite) TestGetMyReservations() {
	s.Run("success: returns the user's reservations", func() {
		laneID := int32(2)
		s.mockQueries.EXPECT().
			ListUserReservations(gomock.Any(), testUserID).
			Return([]queries.ReservationView{{ID: 1, UserID: testUserID, LaneID: &laneID}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "token")

		var resp []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
	})
}
