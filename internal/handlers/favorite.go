package handlers

import (
	"net/http"

	"urbannest-properties/internal/middleware"
	"urbannest-properties/internal/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favorites *services.FavoriteService
}

func NewFavoriteHandler(favorites *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// AddFavorite godoc
// @Summary Add a property to favorites
// @Tags Favorites
// @Produce json
// @Param id path string true "Property ID"
// @Security BearerAuth
// @Success 201 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /favorites/{id} [post]
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	if err := h.favorites.Add(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Property added to favorites"})
}

// RemoveFavorite godoc
// @Summary Remove a property from favorites
// @Tags Favorites
// @Produce json
// @Param id path string true "Property ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /favorites/{id} [delete]
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	if err := h.favorites.Remove(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property removed from favorites"})
}

// ListFavorites godoc
// @Summary List the caller's favorite properties
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]models.PropertyView
// @Router /favorites [get]
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	views, err := h.favorites.List(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": views})
}
