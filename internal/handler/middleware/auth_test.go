//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"courtbook/internal/domain/user"
	"courtbook/internal/handler/middleware"
	usecasemock "courtbook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/cockroachdb/errors"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
	middleware    *middleware.AuthMiddleware
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.middleware = middleware.NewAuthMiddleware(s.mockValidator)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) newRouter(minRole *user.Role) *gin.Engine {
	router := gin.New()
	handlers := []gin.HandlerFunc{s.middleware.RequireAuth()}
	if minRole != nil {
		handlers = append(handlers, s.middleware.RequireRoleAtLeast(*minRole))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/protected", handlers...)
	return router
}

func (s *AuthMiddlewareTestSuite) perform(router *gin.Engine, bearer, cookieToken string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if cookieToken != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: cookieToken})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: valid bearer token passes through", func() {
		s.mockValidator.EXPECT().ValidateToken("good-token").
			Return(uuid.New(), user.RoleUser, nil).Times(1)

		rec := s.perform(s.newRouter(nil), "good-token", "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: cookie token is accepted without a header", func() {
		s.mockValidator.EXPECT().ValidateToken("cookie-token").
			Return(uuid.New(), user.RoleUser, nil).Times(1)

		rec := s.perform(s.newRouter(nil), "", "cookie-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 401 Unauthorized without any token", func() {
		rec := s.perform(s.newRouter(nil), "", "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 401 Unauthorized for an invalid token", func() {
		s.mockValidator.EXPECT().ValidateToken("bad-token").
			Return(uuid.Nil, user.Role(""), errors.New("token is expired")).Times(1)

		rec := s.perform(s.newRouter(nil), "bad-token", "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AuthMiddlewareTestSuite) newOptionalRouter() *gin.Engine {
	router := gin.New()
	router.GET("/open", s.middleware.OptionalAuth(), func(c *gin.Context) {
		if role, ok := middleware.GetUserRole(c); ok {
			c.JSON(http.StatusOK, gin.H{"role": role.String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": "anonymous"})
	})
	return router
}

func (s *AuthMiddlewareTestSuite) performOpen(router *gin.Engine, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func (s *AuthMiddlewareTestSuite) TestOptionalAuth() {
	s.Run("success: anonymous request passes through without identity", func() {
		rec := s.performOpen(s.newOptionalRouter(), "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "anonymous")
	})

	s.Run("success: valid token attaches the caller's role", func() {
		s.mockValidator.EXPECT().ValidateToken("good-token").
			Return(uuid.New(), user.RoleVendor, nil).Times(1)

		rec := s.performOpen(s.newOptionalRouter(), "good-token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "vendor")
	})

	s.Run("success: invalid token still serves the request anonymously", func() {
		s.mockValidator.EXPECT().ValidateToken("bad-token").
			Return(uuid.Nil, user.Role(""), errors.New("token is expired")).Times(1)

		rec := s.performOpen(s.newOptionalRouter(), "bad-token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "anonymous")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRoleAtLeast() {
	cases := []struct {
		name       string
		actorRole  user.Role
		minRole    user.Role
		expectCode int
	}{
		{name: "user denied on vendor gate", actorRole: user.RoleUser, minRole: user.RoleVendor, expectCode: http.StatusForbidden},
		{name: "user denied on admin gate", actorRole: user.RoleUser, minRole: user.RoleAdmin, expectCode: http.StatusForbidden},
		{name: "vendor allowed on vendor gate", actorRole: user.RoleVendor, minRole: user.RoleVendor, expectCode: http.StatusOK},
		{name: "vendor denied on admin gate", actorRole: user.RoleVendor, minRole: user.RoleAdmin, expectCode: http.StatusForbidden},
		{name: "admin allowed on vendor gate", actorRole: user.RoleAdmin, minRole: user.RoleVendor, expectCode: http.StatusOK},
		{name: "admin allowed on admin gate", actorRole: user.RoleAdmin, minRole: user.RoleAdmin, expectCode: http.StatusOK},
		{name: "user allowed on user gate", actorRole: user.RoleUser, minRole: user.RoleUser, expectCode: http.StatusOK},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockValidator.EXPECT().ValidateToken("token").
				Return(uuid.New(), tc.actorRole, nil).Times(1)

			rec := s.perform(s.newRouter(&tc.minRole), "token", "")
			s.Equal(tc.expectCode, rec.Code)
		})
	}
}
