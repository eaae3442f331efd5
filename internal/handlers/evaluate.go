package handlers

import (
	"net/http"

	"urbannest-properties/internal/models"
	"urbannest-properties/internal/services"

	"github.com/gin-gonic/gin"
)

type EvaluateHandler struct {
	evaluations *services.EvaluationService
}

func NewEvaluateHandler(evaluations *services.EvaluationService) *EvaluateHandler {
	return &EvaluateHandler{evaluations: evaluations}
}

// EvaluateProperty godoc
// @Summary AI market evaluation of a candidate property
// @Description Compares the submitted property against market aggregates and returns a generated analysis
// @Tags Evaluation
// @Accept json
// @Produce json
// @Param property body models.EvaluationRequest true "Property to evaluate"
// @Security BearerAuth
// @Success 200 {object} models.EvaluationResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /properties/evaluate [post]
func (h *EvaluateHandler) EvaluateProperty(c *gin.Context) {
	var req models.EvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.evaluations.Evaluate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.EvaluationResponse{Success: true, Result: result})
}
