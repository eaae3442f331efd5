package handlers

import (
	"net/http"

	"urbannest-properties/internal/middleware"
	"urbannest-properties/internal/models"
	"urbannest-properties/internal/services"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recommendations *services.RecommendationService
}

func NewRecommendationHandler(recommendations *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations}
}

// RecommendProperty godoc
// @Summary Recommend a property to another user by email
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param propertyId path string true "Property ID"
// @Param recommendation body models.RecommendRequest true "Recipient and message"
// @Security BearerAuth
// @Success 201 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /recommendations/{propertyId} [post]
func (h *RecommendationHandler) RecommendProperty(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	var req models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.recommendations.Recommend(c.Request.Context(), caller, c.Param("propertyId"), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Property recommended successfully"})
}

// ReceivedRecommendations godoc
// @Summary List recommendations received by the caller
// @Tags Recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]models.Recommendation
// @Router /recommendations [get]
func (h *RecommendationHandler) ReceivedRecommendations(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	recommendations, err := h.recommendations.Received(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
