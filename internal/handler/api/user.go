package api

import (
	"errors"
	"net/http"

	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userCommands commands.UserCommands
	userQueries  queries.UserQueries
}

func NewUserHandler(userCommands commands.UserCommands, userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{
		userCommands: userCommands,
		userQueries:  userQueries,
	}
}

// @Summary Register account
// @Description Create a new user account with the regular user role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.userCommands.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateUser):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Username or email already taken",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid registration data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromUserView(view))
}

// @Summary List users
// @Description List all user accounts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.userQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}

// @Summary Get user
// @Description Get a user account by ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.userQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Update user
// @Description Update a user account; only admins may change roles
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateUserRequest true "Update request"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.userCommands.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserAccessDenied), errors.Is(err, errs.ErrSelfUpdateLimited):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, errs.ErrDuplicateUser):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Username or email already taken",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid update data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Block user
// @Description Block a user account from creating bookings
// @Tags users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id}/block [post]
func (h *UserHandler) Block(c *gin.Context) {
	h.setBlocked(c, true)
}

// @Summary Unblock user
// @Description Lift the block on a user account
// @Tags users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id}/unblock [post]
func (h *UserHandler) Unblock(c *gin.Context) {
	h.setBlocked(c, false)
}

func (h *UserHandler) setBlocked(c *gin.Context, blocked bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userCommands.SetBlocked(c.Request.Context(), id, blocked); err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete user
// @Description Delete a user account that has no booking history
// @Tags users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, errs.ErrUserHasBookings):
			c.JSON(http.StatusConflict, gin.H{
				"error": "User is referenced by bookings",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
