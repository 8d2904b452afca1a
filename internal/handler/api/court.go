package api

import (
	"errors"
	"net/http"

	"courtbook/internal/domain/user"
	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CourtHandler struct {
	courtCommands commands.CourtCommands
	courtQueries  queries.CourtQueries
}

func NewCourtHandler(courtCommands commands.CourtCommands, courtQueries queries.CourtQueries) *CourtHandler {
	return &CourtHandler{
		courtCommands: courtCommands,
		courtQueries:  courtQueries,
	}
}

// @Summary List courts
// @Description List courts; authenticated staff see inactive courts as well
// @Tags courts
// @Produce json
// @Success 200 {array} resdto.CourtResponse
// @Router /courts [get]
func (h *CourtHandler) List(c *gin.Context) {
	// Regular users only see courts open for booking.
	activeOnly := true
	if role, ok := middleware.GetUserRole(c); ok && role != user.RoleUser {
		activeOnly = false
	}

	views, err := h.courtQueries.List(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourtViews(views))
}

// @Summary Get court
// @Description Get a court by ID
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {object} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id} [get]
func (h *CourtHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.courtQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourtView(view))
}

// @Summary Create court
// @Description Create a new court
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCourtRequest true "Court request"
// @Success 201 {object} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /courts [post]
func (h *CourtHandler) Create(c *gin.Context) {
	var req reqdto.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.courtCommands.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid court data",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCourtView(view))
}

// @Summary Update court
// @Description Update a court's fields
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param request body reqdto.UpdateCourtRequest true "Update request"
// @Success 200 {object} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id} [put]
func (h *CourtHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.courtCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid court data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourtView(view))
}

// @Summary Delete court
// @Description Delete a court and its free time slots
// @Tags courts
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /courts/{id} [delete]
func (h *CourtHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.courtCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		case errors.Is(err, errs.ErrCourtHasBookings):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Court has booked time slots",
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
