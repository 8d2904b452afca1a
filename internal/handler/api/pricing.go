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

type PricingHandler struct {
	pricingCommands commands.PricingCommands
	pricingQueries  queries.PricingQueries
}

func NewPricingHandler(pricingCommands commands.PricingCommands, pricingQueries queries.PricingQueries) *PricingHandler {
	return &PricingHandler{
		pricingCommands: pricingCommands,
		pricingQueries:  pricingQueries,
	}
}

// @Summary List pricing rules
// @Description List a court's pricing rules
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Success 200 {array} resdto.PricingRuleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id}/pricing-rules [get]
func (h *PricingHandler) List(c *gin.Context) {
	courtID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.pricingQueries.ListByCourt(c.Request.Context(), courtID)
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
	c.JSON(http.StatusOK, resdto.FromPricingRuleViews(views))
}

// @Summary Upsert pricing rule
// @Description Create or replace one rule, optionally propagating across the week
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param request body reqdto.UpsertPricingRuleRequest true "Rule request"
// @Success 200 {array} resdto.PricingRuleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id}/pricing-rules [put]
func (h *PricingHandler) Upsert(c *gin.Context) {
	courtID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpsertPricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	views, err := h.pricingCommands.Upsert(c.Request.Context(), courtID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingRuleViews(views))
}

// @Summary Batch upsert pricing rules
// @Description Apply several rules atomically; any failure rolls back the whole batch
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param request body reqdto.BatchPricingRulesRequest true "Batch request"
// @Success 200 {array} resdto.PricingRuleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id}/pricing-rules/batch [put]
func (h *PricingHandler) UpsertBatch(c *gin.Context) {
	courtID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.BatchPricingRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	views, err := h.pricingCommands.UpsertBatch(c.Request.Context(), courtID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingRuleViews(views))
}

// @Summary Delete pricing rule
// @Description Delete one pricing rule by ID
// @Tags pricing
// @Security BearerAuth
// @Param id path string true "Pricing rule ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pricing-rules/{id} [delete]
func (h *PricingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.pricingCommands.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrPricingRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Pricing rule not found",
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

func (h *PricingHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCourtNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Court not found",
		})
	case errors.Is(err, commands.ErrPropagationDay), errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pricing rule data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
