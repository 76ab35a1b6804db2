package handlers

import (
	"errors"
	"net/http"

	"github.com/ao561/cues-hackathon/models"
	"github.com/ao561/cues-hackathon/services/planner"

	"github.com/gin-gonic/gin"
)

// PlanHandler exposes the planning engine over HTTP.
type PlanHandler struct {
	Service planner.PlanningService
}

// NewPlanHandler builds the plan endpoints around a planning service.
func NewPlanHandler(service planner.PlanningService) *PlanHandler {
	return &PlanHandler{Service: service}
}

// CreatePlan runs one orchestration pass for the posted request.
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	rec, err := h.Service.Plan(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		var perr *planner.PlanError
		switch {
		case planner.IsInsufficientContext(err):
			status = http.StatusUnprocessableEntity
		case errors.As(err, &perr):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// GetPlan returns a previously computed recommendation.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	planID := c.Param("planID")
	rec, err := h.Service.GetPlan(c.Request.Context(), planID)
	if err != nil {
		if planner.IsPlanNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}
