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
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a time slot; requires an Idempotency-Key header
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse "Replayed prior result"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Success 201 {object} resdto.BookingResponse
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Create(c.Request.Context(), actor, req, idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTimeSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Time slot not found",
			})
		case errors.Is(err, errs.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot is no longer available",
			})
		case errors.Is(err, errs.ErrUserBlocked):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is blocked",
			})
		case errors.Is(err, errs.ErrCourtInactive):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Court is not active",
			})
		case errors.Is(err, errs.ErrIdempotencyReplay):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Idempotency key reused with different parameters",
			})
		case errors.Is(err, errs.ErrRequestInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Request is currently being processed",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingView(result.Booking))
}

// @Summary List bookings
// @Description List own bookings; staff see every booking and may filter by user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param user_id query string false "Filter by user (staff only)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var filterUserID *uuid.UUID
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid user_id filter",
			})
			return
		}
		filterUserID = &id
	}

	views, err := h.bookingQueries.List(c.Request.Context(), actor.ID, actor.Role, filterUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Description Get a booking by ID; users only see their own
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id, actor.ID, actor.Role)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another user",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Confirm booking
// @Description Move a pending booking to confirmed
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.bookingCommands.Confirm(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrAlreadyCancelled), errors.Is(err, errs.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking cannot be confirmed from its current status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a booking and release its slot; repeated cancels are no-ops
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.bookingCommands.Cancel(c.Request.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another user",
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

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyMiss
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}
	return key, nil
}
