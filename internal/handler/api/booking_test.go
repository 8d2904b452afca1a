//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"courtbook/internal/domain/user"
	"courtbook/internal/handler/api"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/commands"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	actorID   uuid.UUID
	actorRole user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.actorRole = user.RoleUser

	// Stands in for RequireAuth so each test controls the caller identity.
	fakeAuth := func(c *gin.Context) {
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.actorRole)
		c.Next()
	}

	s.router.POST("/bookings", fakeAuth, s.handler.Create)
	s.router.GET("/bookings", fakeAuth, s.handler.List)
	s.router.GET("/bookings/:id", fakeAuth, s.handler.Get)
	s.router.POST("/bookings/:id/confirm", fakeAuth, s.handler.Confirm)
	s.router.DELETE("/bookings/:id", fakeAuth, s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func idempotencyHeader(key uuid.UUID) map[string]string {
	return map[string]string{"Idempotency-Key": key.String()}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	key := uuid.New()

	bk := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.UserID = s.actorID
	})
	reqBody := bk.BuildCreateDTO()
	view := bk.BuildView()

	s.Run("success: returns 201 Created for a fresh booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.Actor{ID: s.actorID, Role: s.actorRole}, reqBody, key).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: false}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "", idempotencyHeader(key))

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.TotalPriceCents, response.TotalPriceCents)
	})

	s.Run("success: returns 200 OK when the idempotency key replays a completed booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), reqBody, key).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "", idempotencyHeader(key))

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 400 Bad Request without an Idempotency-Key header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for a missing time slot", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), reqBody, key).
			Return(nil, errs.ErrTimeSlotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "", idempotencyHeader(key))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Time slot not found")
	})

	s.Run("error: 409 Conflict when the slot was taken first", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), reqBody, key).
			Return(nil, errs.ErrSlotUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "", idempotencyHeader(key))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer available")
	})

	s.Run("error: 409 Conflict when the key is reused with different parameters", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), reqBody, key).
			Return(nil, errs.ErrIdempotencyReplay).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "", idempotencyHeader(key))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "different parameters")
	})

	s.Run("error: 409 Conflict while the first request is still running", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), reqBody, key).
			Return(nil, errs.ErrRequestInProgress).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "", idempotencyHeader(key))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "being processed")
	})

	s.Run("error: 403 Forbidden for a blocked account", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), reqBody, key).
			Return(nil, errs.ErrUserBlocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "", idempotencyHeader(key))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "blocked")
	})

	s.Run("error: 400 Bad Request for an inactive court", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), reqBody, key).
			Return(nil, errs.ErrCourtInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "", idempotencyHeader(key))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "not active")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	view := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 200 OK with the caller's bookings", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.actorID, s.actorRole, gomock.Nil()).
			Return([]*queries.BookingView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: staff narrow the listing with a user_id filter", func() {
		s.actorRole = user.RoleVendor
		target := uuid.New()

		s.mockQueries.EXPECT().List(gomock.Any(), s.actorID, user.RoleVendor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ user.Role, filter *uuid.UUID) ([]*queries.BookingView, error) {
				s.Require().NotNil(filter)
				s.Equal(target, *filter)
				return []*queries.BookingView{view}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?user_id="+target.String(), nil, "")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 Bad Request for a malformed user_id filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?user_id=not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "user_id")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	bk := builder.NewBookingBuilder()
	view := bk.BuildView()

	s.Run("success: returns 200 OK with the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID, s.actorRole).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 403 Forbidden for another user's booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID, s.actorRole).
			Return(nil, errs.ErrNotBookingOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another user")
	})

	s.Run("error: 404 Not Found for an unknown booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID, s.actorRole).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 400 Bad Request for a malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID")
	})
}

func (s *BookingHandlerTestSuite) TestConfirm() {
	bk := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Status = "confirmed"
	})
	view := bk.BuildView()
	url := "/bookings/" + view.ID.String() + "/confirm"

	s.Run("success: returns 200 OK with the confirmed booking", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 409 Conflict for a cancelled booking", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any(), view.ID).
			Return(nil, errs.ErrAlreadyCancelled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "current status")
	})

	s.Run("error: 409 Conflict for a repeated confirm", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any(), view.ID).
			Return(nil, errs.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "current status")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/bookings/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: repeated cancel is still 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).
			Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden for another user's booking", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).
			Return(false, errs.ErrNotBookingOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another user")
	})
}
