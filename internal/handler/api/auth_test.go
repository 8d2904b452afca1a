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
	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/jwt"
	"courtbook/internal/usecase"
	"courtbook/tests/common/builder"
	"courtbook/tests/common/httptest"
	"courtbook/tests/common/testutil"
	usecasemock "courtbook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", time.Hour)
	s.handler = api.NewAuthHandler(s.mockUseCase, config.NewTestConfig(), jwtService)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
			c.Set("user_role", user.RoleUser)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	usr := builder.NewUserBuilder()
	reqBody := reqdto.LoginRequest{Login: usr.Email, Password: usr.Password}
	returnUser := usr.BuildAuthorizedView()
	expectedToken := "test-jwt-token"

	s.Run("success: returns 200 OK with token and user for valid credentials", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), reqBody.Login, reqBody.Password).
			Return(expectedToken, returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(expectedToken, response.Token)
		s.Equal(returnUser.Email, response.User.Email)
	})

	s.Run("success: login sets the access token cookie", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), reqBody.Login, reqBody.Password).
			Return(expectedToken, returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusOK, rec.Code)
		s.NotEmpty(rec.Header().Get("Set-Cookie"))
	})

	s.Run("error: 401 Unauthorized for bad credentials", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), reqBody.Login, "wrong-password").
			Return("", nil, usecase.ErrInvalidCredentials).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("password", "wrong-password"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid username or password")
	})

	s.Run("error: 403 Forbidden for a blocked account", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), reqBody.Login, reqBody.Password).
			Return("", nil, usecase.ErrUserBlocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "blocked")
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing login", mutate: testutil.Field("login", nil)},
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "empty login", mutate: testutil.Field("login", "")},
			{name: "empty password", mutate: testutil.Field("password", "")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 No Content and clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
		s.NotEmpty(rec.Header().Get("Set-Cookie"))
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns 200 OK with the current account", func() {
		returnUser := builder.NewUserBuilder().BuildAuthorizedView()
		s.mockUseCase.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "some-token")

		var response resdto.AuthorizedUserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.Email)
	})

	s.Run("error: 401 Unauthorized without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
