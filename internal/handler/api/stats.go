package api

import (
	"net/http"

	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsQueries queries.StatsQueries
}

func NewStatsHandler(statsQueries queries.StatsQueries) *StatsHandler {
	return &StatsHandler{
		statsQueries: statsQueries,
	}
}

// @Summary Booking statistics
// @Description Aggregate counts over courts, slots and bookings
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookingStatsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /stats [get]
func (h *StatsHandler) BookingStats(c *gin.Context) {
	view, err := h.statsQueries.BookingStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingStatsView(view))
}

// @Summary Admin statistics
// @Description Booking statistics extended with per-role user counts
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AdminStatsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/stats [get]
func (h *StatsHandler) AdminStats(c *gin.Context) {
	view, err := h.statsQueries.AdminStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdminStatsView(view))
}
