//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"courtbook/internal/domain/pricing"
	"courtbook/internal/domain/user"
	"courtbook/internal/handler/api"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"
	"courtbook/tests/common/builder"
	"courtbook/tests/common/httptest"
	commandsmock "courtbook/tests/mock/commands"
	queriesmock "courtbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TimeSlotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTimeSlotCommands
	mockQueries  *queriesmock.MockTimeSlotQueries
	handler      *api.TimeSlotHandler
}

func (s *TimeSlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTimeSlotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTimeSlotQueries(s.mockCtrl)
	s.handler = api.NewTimeSlotHandler(s.mockCommands, s.mockQueries)

	fakeAuth := func(c *gin.Context) {
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleVendor)
		c.Next()
	}

	s.router.GET("/courts/:id/time-slots", fakeAuth, s.handler.ListByCourt)
	s.router.GET("/courts/:id/quote", fakeAuth, s.handler.Quote)
	s.router.GET("/time-slots/range", fakeAuth, s.handler.Range)
	s.router.POST("/time-slots", fakeAuth, s.handler.Create)
	s.router.DELETE("/time-slots/:id", fakeAuth, s.handler.Delete)
}

func (s *TimeSlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTimeSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(TimeSlotHandlerTestSuite))
}

func (s *TimeSlotHandlerTestSuite) TestListByCourt() {
	slot := builder.NewTimeSlotBuilder()
	view := slot.BuildView()
	base := "/courts/" + slot.CourtID.String() + "/time-slots"

	s.Run("success: returns 200 OK with the day's slots", func() {
		s.mockQueries.EXPECT().
			ListByCourtAndDate(gomock.Any(), slot.CourtID, slot.Date, false).
			Return([]*queries.TimeSlotView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=2026-09-01", nil, "")

		var response []*resdto.TimeSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(view.StartTime, response[0].StartTime)
	})

	s.Run("success: available=true filters to open slots", func() {
		s.mockQueries.EXPECT().
			ListByCourtAndDate(gomock.Any(), slot.CourtID, slot.Date, true).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=2026-09-01&available=true", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=tomorrow", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date")
	})
}

func (s *TimeSlotHandlerTestSuite) TestQuote() {
	courtID := uuid.New()
	base := "/courts/" + courtID.String() + "/quote"
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	start, err := pricing.NewClockTime("18:00")
	s.Require().NoError(err)

	s.Run("success: returns 200 OK with the computed price", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), courtID, date, start).
			Return(&queries.QuoteView{
				CourtID:    courtID,
				Date:       date,
				StartTime:  "18:00",
				Band:       "peak",
				PriceCents: 3400,
				FromRule:   false,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=2026-09-05&start_time=18:00", nil, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("peak", response.Band)
		s.Equal(int64(3400), response.PriceCents)
		s.False(response.FromRule)
	})

	s.Run("error: 400 Bad Request for a malformed start_time", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=2026-09-05&start_time=6pm", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "start_time")
	})

	s.Run("error: 404 Not Found for an unknown court", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), courtID, date, start).
			Return(nil, errs.ErrCourtNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=2026-09-05&start_time=18:00", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

func (s *TimeSlotHandlerTestSuite) TestRange() {
	s.Run("success: returns 200 OK with slots and booking summaries", func() {
		slot := builder.NewTimeSlotBuilder().BuildView()
		s.mockQueries.EXPECT().Range(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*queries.SlotWithBooking{{Slot: *slot}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/time-slots/range?from=2026-09-01&to=2026-09-07", nil, "")

		var response []*resdto.SlotWithBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Nil(response[0].Booking)
	})

	s.Run("error: 400 Bad Request when from is after to", func() {
		s.mockQueries.EXPECT().Range(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidDateRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/time-slots/range?from=2026-09-07&to=2026-09-01", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 Bad Request for a range beyond the cap", func() {
		s.mockQueries.EXPECT().Range(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrDateRangeTooWide).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/time-slots/range?from=2026-01-01&to=2026-09-01", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 Bad Request for malformed bounds", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/time-slots/range?from=notadate&to=2026-09-01", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *TimeSlotHandlerTestSuite) TestCreate() {
	slot := builder.NewTimeSlotBuilder()
	reqBody := slot.BuildCreateDTO()
	view := slot.BuildView()

	s.Run("success: returns 201 Created with the new slot", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/time-slots", reqBody, "")

		var response resdto.TimeSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.True(response.IsAvailable)
	})

	s.Run("error: 409 Conflict for an overlapping slot", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(nil, errs.ErrDuplicateTimeSlot).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/time-slots", reqBody, "")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 404 Not Found for an unknown court", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(nil, errs.ErrCourtNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/time-slots", reqBody, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *TimeSlotHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("error: 409 Conflict for a slot referenced by bookings", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(errs.ErrTimeSlotHasBookings).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/time-slots/"+id.String(), nil, "")
		s.Equal(http.StatusConflict, rec.Code)
	})
}
