package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/digitalstore/digitalstore-api/services"
)

type FavoriteController struct {
	favorites *services.FavoriteService
	log       *zap.Logger
}

func NewFavoriteController(favorites *services.FavoriteService, log *zap.Logger) *FavoriteController {
	return &FavoriteController{favorites: favorites, log: log}
}

// Toggle godoc
// @Summary Add or remove a favorite
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Product slug"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/favorites/{slug} [post]
func (h *FavoriteController) Toggle(c *gin.Context) {
	sub, ok := subject(c)
	if !ok {
		return
	}
	added, err := h.favorites.Toggle(c.Request.Context(), sub, c.Param("slug"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"slug": c.Param("slug"), "favorite": added})
}

// List godoc
// @Summary My favorite products
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DataResponse{data=[]models.Product}
// @Router /api/v1/favorites [get]
func (h *FavoriteController) List(c *gin.Context) {
	sub, ok := subject(c)
	if !ok {
		return
	}
	products, err := h.favorites.List(c.Request.Context(), sub)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, products)
}
