package handlers

import (
	"net/http"

	"urbannest-properties/internal/middleware"
	"urbannest-properties/internal/models"
	"urbannest-properties/internal/services"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	listings  *services.ListingService
	mutations *services.MutationService
}

func NewPropertyHandler(listings *services.ListingService, mutations *services.MutationService) *PropertyHandler {
	return &PropertyHandler{listings: listings, mutations: mutations}
}

// ListProperties godoc
// @Summary List properties
// @Description Get a filtered, paginated list of properties
// @Tags Properties
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Search terms matched against title, state and city"
// @Param location query string false "City or state substring"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param bedrooms query int false "Exact bedroom count"
// @Param bathrooms query int false "Exact bathroom count"
// @Param type query string false "Property type"
// @Param status query string false "Listing type (rent/sale)"
// @Param amenities query string false "Comma-separated amenities, all required"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {object} models.PropertyListResult
// @Failure 500 {object} map[string]string
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	result, err := h.listings.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetProperty godoc
// @Summary Get property by ID
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} models.PropertyView
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	view, err := h.listings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetMyProperties godoc
// @Summary List the caller's properties
// @Tags Properties
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]models.PropertyView
// @Failure 401 {object} map[string]string
// @Router /properties/my [get]
func (h *PropertyHandler) GetMyProperties(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	views, err := h.listings.MyProperties(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": views})
}

// CreateProperty godoc
// @Summary Create a property
// @Tags Properties
// @Accept json
// @Produce json
// @Param property body models.Property true "Property"
// @Security BearerAuth
// @Success 201 {object} models.Property
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.mutations.Create(c.Request.Context(), &property, caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProperty godoc
// @Summary Update an owned property
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param update body models.PropertyUpdate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} models.Property
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	var update models.PropertyUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := h.mutations.Update(c.Request.Context(), c.Param("id"), &update, caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProperty godoc
// @Summary Delete an owned property
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	if err := h.mutations.Delete(c.Request.Context(), c.Param("id"), caller); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
}
