package api

import (
	"errors"
	"net/http"
	"time"

	"courtbook/internal/domain/pricing"
	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TimeSlotHandler struct {
	slotCommands commands.TimeSlotCommands
	slotQueries  queries.TimeSlotQueries
}

func NewTimeSlotHandler(slotCommands commands.TimeSlotCommands, slotQueries queries.TimeSlotQueries) *TimeSlotHandler {
	return &TimeSlotHandler{
		slotCommands: slotCommands,
		slotQueries:  slotQueries,
	}
}

// @Summary List court time slots
// @Description List a court's time slots for a date; available=true filters to free slots
// @Tags time-slots
// @Produce json
// @Param id path string true "Court ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param available query bool false "Only free slots"
// @Success 200 {array} resdto.TimeSlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id}/time-slots [get]
func (h *TimeSlotHandler) ListByCourt(c *gin.Context) {
	courtID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing date",
		})
		return
	}
	availableOnly := c.Query("available") == "true"

	views, err := h.slotQueries.ListByCourtAndDate(c.Request.Context(), courtID, date, availableOnly)
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
	c.JSON(http.StatusOK, resdto.FromTimeSlotViews(views))
}

// @Summary Time slot range
// @Description List all slots in a date range with their active bookings
// @Tags time-slots
// @Produce json
// @Security BearerAuth
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotWithBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /time-slots/range [get]
func (h *TimeSlotHandler) Range(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing from date",
		})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing to date",
		})
		return
	}

	views, err := h.slotQueries.Range(c.Request.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDateRange), errors.Is(err, queries.ErrDateRangeTooWide):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotRange(views))
}

// @Summary Get time slot
// @Description Get a time slot by ID
// @Tags time-slots
// @Produce json
// @Param id path string true "Time slot ID"
// @Success 200 {object} resdto.TimeSlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /time-slots/{id} [get]
func (h *TimeSlotHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.slotQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrTimeSlotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Time slot not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeSlotView(view))
}

// @Summary Create time slot
// @Description Create a slot; without an explicit price the pricing formula decides
// @Tags time-slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTimeSlotRequest true "Time slot request"
// @Success 201 {object} resdto.TimeSlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /time-slots [post]
func (h *TimeSlotHandler) Create(c *gin.Context) {
	var req reqdto.CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.slotCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		case errors.Is(err, errs.ErrDuplicateTimeSlot):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot already exists",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time slot data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTimeSlotView(view))
}

// @Summary Update time slot
// @Description Update a time slot's times or price
// @Tags time-slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Time slot ID"
// @Param request body reqdto.UpdateTimeSlotRequest true "Update request"
// @Success 200 {object} resdto.TimeSlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /time-slots/{id} [put]
func (h *TimeSlotHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.slotCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTimeSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Time slot not found",
			})
		case errors.Is(err, errs.ErrDuplicateTimeSlot):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot already exists",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time slot data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeSlotView(view))
}

// @Summary Delete time slot
// @Description Delete a time slot with no bookings
// @Tags time-slots
// @Security BearerAuth
// @Param id path string true "Time slot ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /time-slots/{id} [delete]
func (h *TimeSlotHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.slotCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrTimeSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Time slot not found",
			})
		case errors.Is(err, errs.ErrTimeSlotHasBookings):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot is referenced by bookings",
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

// @Summary Price quote
// @Description Quote the price for a court at a date and start time
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start_time query string true "Start time (HH:MM)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id}/quote [get]
func (h *TimeSlotHandler) Quote(c *gin.Context) {
	courtID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing date",
		})
		return
	}
	startTime, err := pricing.NewClockTime(c.Query("start_time"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing start_time",
		})
		return
	}

	view, err := h.slotQueries.Quote(c.Request.Context(), courtID, date, startTime)
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
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
