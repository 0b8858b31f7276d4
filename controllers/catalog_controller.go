package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/digitalstore/digitalstore-api/services"
)

type CatalogController struct {
	catalog *services.CatalogService
	log     *zap.Logger
}

func NewCatalogController(catalog *services.CatalogService, log *zap.Logger) *CatalogController {
	return &CatalogController{catalog: catalog, log: log}
}

// ListProducts godoc
// @Summary List products
// @Description Every product in the store, newest first
// @Tags catalog
// @Produce json
// @Success 200 {object} DataResponse{data=[]models.Product}
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/products [get]
func (h *CatalogController) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, products)
}

// GetProduct godoc
// @Summary Product detail
// @Description A product with its specifications, related products and same-model variants
// @Tags catalog
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} DataResponse{data=services.ProductDetail}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/products/{slug} [get]
func (h *CatalogController) GetProduct(c *gin.Context) {
	detail, err := h.catalog.GetProductDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, detail)
}

// ListCategories godoc
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {object} DataResponse{data=[]models.Category}
// @Router /api/v1/categories [get]
func (h *CatalogController) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, categories)
}

// ListCategoryProducts godoc
// @Summary Category listing
// @Description Products of a category filtered by brand, color, discount or list price, with facets over the whole category
// @Tags catalog
// @Produce json
// @Param slug path string true "Category slug"
// @Param brand query string false "Brand title"
// @Param color query string false "Color name"
// @Param discount query int false "Discount percent"
// @Param price query string false "List price"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} DataResponse{data=services.CategoryListing}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/categories/{slug}/products [get]
func (h *CatalogController) ListCategoryProducts(c *gin.Context) {
	page, limit := pageParams(c)
	q := services.CategoryQuery{Page: page, Limit: limit}

	if v, ok := c.GetQuery("brand"); ok && v != "" {
		q.Brand = &v
	}
	if v, ok := c.GetQuery("color"); ok && v != "" {
		q.Color = &v
	}
	if v, ok := c.GetQuery("discount"); ok && v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "discount must be an integer")
			return
		}
		q.Discount = &d
	}
	if v, ok := c.GetQuery("price"); ok && v != "" {
		p, err := decimal.NewFromString(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "price must be a number")
			return
		}
		q.Price = &p
	}

	listing, err := h.catalog.ListCategoryProducts(c.Request.Context(), c.Param("slug"), q)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, listing)
}

// ListRegions godoc
// @Summary List delivery regions
// @Tags shipping
// @Produce json
// @Success 200 {object} DataResponse{data=[]models.Region}
// @Router /api/v1/regions [get]
func (h *CatalogController) ListRegions(c *gin.Context) {
	regions, err := h.catalog.ListRegions(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, regions)
}

// ListCities godoc
// @Summary List cities of a region
// @Tags shipping
// @Produce json
// @Param id path int true "Region ID"
// @Success 200 {object} DataResponse{data=[]models.City}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/regions/{id}/cities [get]
func (h *CatalogController) ListCities(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	cities, err := h.catalog.ListCities(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, cities)
}
