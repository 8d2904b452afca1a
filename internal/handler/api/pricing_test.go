//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"courtbook/internal/domain/user"
	"courtbook/internal/handler/api"
	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"
	"courtbook/tests/common/httptest"
	commandsmock "courtbook/tests/mock/commands"
	queriesmock "courtbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPricingCommands
	mockQueries  *queriesmock.MockPricingQueries
	handler      *api.PricingHandler
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPricingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.handler = api.NewPricingHandler(s.mockCommands, s.mockQueries)

	fakeAuth := func(c *gin.Context) {
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleVendor)
		c.Next()
	}

	s.router.GET("/courts/:id/pricing-rules", fakeAuth, s.handler.List)
	s.router.PUT("/courts/:id/pricing-rules", fakeAuth, s.handler.Upsert)
	s.router.PUT("/courts/:id/pricing-rules/batch", fakeAuth, s.handler.UpsertBatch)
	s.router.DELETE("/pricing-rules/:id", fakeAuth, s.handler.Delete)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func ruleView(courtID uuid.UUID, dayOfWeek int, startTime string, priceCents int64) *queries.PricingRuleView {
	now := time.Now()
	return &queries.PricingRuleView{
		ID:         uuid.New(),
		CourtID:    courtID,
		DayOfWeek:  dayOfWeek,
		StartTime:  startTime,
		PriceCents: priceCents,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (s *PricingHandlerTestSuite) TestUpsert() {
	courtID := uuid.New()
	url := "/courts/" + courtID.String() + "/pricing-rules"
	reqBody := reqdto.UpsertPricingRuleRequest{
		DayOfWeek:  1,
		StartTime:  "18:00",
		PriceCents: 2500,
	}

	s.Run("success: returns 200 OK with the stored rule", func() {
		s.mockCommands.EXPECT().Upsert(gomock.Any(), courtID, reqBody).
			Return([]*queries.PricingRuleView{ruleView(courtID, 1, "18:00", 2500)}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var response []*resdto.PricingRuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(int64(2500), response[0].PriceCents)
	})

	s.Run("success: Monday propagation returns one rule per weekday", func() {
		body := reqBody
		body.ApplyToWeekdays = true

		rules := make([]*queries.PricingRuleView, 0, 5)
		for d := 1; d <= 5; d++ {
			rules = append(rules, ruleView(courtID, d, "18:00", 2500))
		}
		s.mockCommands.EXPECT().Upsert(gomock.Any(), courtID, body).
			Return(rules, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")

		var response []*resdto.PricingRuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 5)
	})

	s.Run("error: 400 Bad Request when propagating from a non-anchor day", func() {
		body := reqBody
		body.DayOfWeek = 3
		body.ApplyToWeekdays = true

		s.mockCommands.EXPECT().Upsert(gomock.Any(), courtID, body).
			Return(nil, commands.ErrPropagationDay).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pricing rule")
	})

	s.Run("error: 404 Not Found for an unknown court", func() {
		s.mockCommands.EXPECT().Upsert(gomock.Any(), courtID, reqBody).
			Return(nil, errs.ErrCourtNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Court not found")
	})
}

func (s *PricingHandlerTestSuite) TestUpsertBatch() {
	courtID := uuid.New()
	url := "/courts/" + courtID.String() + "/pricing-rules/batch"
	reqBody := reqdto.BatchPricingRulesRequest{
		Rules: []reqdto.UpsertPricingRuleRequest{
			{DayOfWeek: 1, StartTime: "06:00", PriceCents: 2000},
			{DayOfWeek: 1, StartTime: "18:00", PriceCents: 3000},
		},
	}

	s.Run("success: returns 200 OK with every stored rule", func() {
		s.mockCommands.EXPECT().UpsertBatch(gomock.Any(), courtID, reqBody).
			Return([]*queries.PricingRuleView{
				ruleView(courtID, 1, "06:00", 2000),
				ruleView(courtID, 1, "18:00", 3000),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var response []*resdto.PricingRuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: 400 Bad Request for an empty batch", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"rules": []any{}}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 Bad Request rejects the whole batch on one bad rule", func() {
		s.mockCommands.EXPECT().UpsertBatch(gomock.Any(), courtID, gomock.Any()).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *PricingHandlerTestSuite) TestList() {
	courtID := uuid.New()
	url := "/courts/" + courtID.String() + "/pricing-rules"

	s.Run("success: returns 200 OK with the court's rules", func() {
		s.mockQueries.EXPECT().ListByCourt(gomock.Any(), courtID).
			Return([]*queries.PricingRuleView{ruleView(courtID, 6, "09:00", 2600)}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.PricingRuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 404 Not Found for an unknown court", func() {
		s.mockQueries.EXPECT().ListByCourt(gomock.Any(), courtID).
			Return(nil, errs.ErrCourtNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *PricingHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/pricing-rules/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for an unknown rule", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(errs.ErrPricingRuleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
