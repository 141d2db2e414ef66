//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"lanebook/internal/handler/api"
	resdto "lanebook/internal/handler/dto/response"
	"lanebook/internal/usecase/queries"
	"lanebook/tests/common/httptest"
	queriesmock "lanebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LaneHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.LaneHandler
	location    *time.Location
}

func (s *LaneHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	loc, err := time.LoadLocation("Europe/Warsaw")
	s.Require().NoError(err)
	s.location = loc

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewLaneHandler(s.mockQueries, loc)

	s.router.GET("/lanes/grid", s.handler.GetDayGrid)
}

func (s *LaneHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLaneHandlerSuite(t *testing.T) {
	suite.Run(t, new(LaneHandlerTestSuite))
}

func (s *LaneHandlerTestSuite) TestGetDayGrid() {
	s.Run("success: returns the grid for the requested day", func() {
		date := time.Date(2026, time.June, 2, 0, 0, 0, 0, s.location)
		grid := &queries.DayGrid{
			Date:  date,
			Lanes: []queries.LaneView{{ID: 1, Name: "Lane 1", Capacity: 1}},
			Slots: []queries.SlotRow{
				{SlotStart: time.Date(2026, time.June, 2, 6, 0, 0, 0, s.location).UTC(), Counts: []int32{0}},
			},
		}
		s.mockQueries.EXPECT().
			LaneGrid(gomock.Any(), date).
			Return(grid, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lanes/grid?date=2026-06-02", nil, "")

		var resp resdto.DayGridResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("2026-06-02", resp.Date)
		s.Require().Len(resp.Lanes, 1)
		s.Equal("Lane 1", resp.Lanes[0].Name)
	})

	s.Run("missing date maps to 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lanes/grid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("malformed date maps to 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lanes/grid?date=junk", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})
}
