package api

import (
	"errors"
	"net/http"

	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/cookie"
	"courtbook/internal/pkg/jwt"
	"courtbook/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookieCfg   config.CookieConfig
	jwtService  *jwt.Service
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config, jwtService *jwt.Service) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookieCfg:   cfg.Cookie,
		jwtService:  jwtService,
	}
}

// @Summary User login
// @Description Login with username or email plus password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, view, err := h.authUseCase.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid username or password",
			})
		case errors.Is(err, usecase.ErrUserBlocked):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is blocked",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetTokenCookie(c, h.cookieCfg, token, h.jwtService.TokenDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{
		Token: token,
		User:  resdto.FromAuthorizedUserView(view),
	})
}

// @Summary User logout
// @Description Clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get the authenticated user's account
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AuthorizedUserResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	view, err := h.authUseCase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, usecase.ErrUserBlocked):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is blocked",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedUserView(view))
}
