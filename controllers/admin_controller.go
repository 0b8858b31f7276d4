package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/digitalstore/digitalstore-api/services"
)

// TitleRequest is the body of brand and product model creation
type TitleRequest struct {
	Title string `json:"title" binding:"required"`
}

// NameRequest is the body of region and city creation
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// SpecificationRequest is one product characteristic
type SpecificationRequest struct {
	Title string `json:"title" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// AdminController edits the catalog and delivery lookups. Routes are guarded by the admin scope.
type AdminController struct {
	catalog *services.CatalogService
	log     *zap.Logger
}

func NewAdminController(catalog *services.CatalogService, log *zap.Logger) *AdminController {
	return &AdminController{catalog: catalog, log: log}
}

// CreateCategory godoc
// @Summary Create a category
// @Description The slug is derived from the title when omitted
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body services.CreateCategoryInput true "Category"
// @Success 201 {object} DataResponse{data=models.Category}
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/admin/categories [post]
func (h *AdminController) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	category, err := h.catalog.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusCreated, category)
}

// UploadCategoryIcon godoc
// @Summary Upload a category icon
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Category slug"
// @Param image formData file true "PNG, JPG or SVG icon (max 10MB)"
// @Success 200 {object} DataResponse{data=models.Category}
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/categories/{slug}/icon [post]
func (h *AdminController) UploadCategoryIcon(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "An image file is required in the 'image' field")
		return
	}
	category, err := h.catalog.SetCategoryIcon(c.Request.Context(), c.Param("slug"), fh)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, category)
}

// CreateBrand godoc
// @Summary Create a brand
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param brand body TitleRequest true "Brand"
// @Success 201 {object} DataResponse{data=models.Brand}
// @Router /api/v1/admin/brands [post]
func (h *AdminController) CreateBrand(c *gin.Context) {
	var req TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	brand, err := h.catalog.CreateBrand(c.Request.Context(), req.Title)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusCreated, brand)
}

// ListBrands godoc
// @Summary List brands
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DataResponse{data=[]models.Brand}
// @Router /api/v1/admin/brands [get]
func (h *AdminController) ListBrands(c *gin.Context) {
	brands, err := h.catalog.ListBrands(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, brands)
}

// CreateProductModel godoc
// @Summary Create a product model
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param model body TitleRequest true "Model"
// @Success 201 {object} DataResponse{data=models.ProductModel}
// @Router /api/v1/admin/models [post]
func (h *AdminController) CreateProductModel(c *gin.Context) {
	var req TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	model, err := h.catalog.CreateProductModel(c.Request.Context(), req.Title)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusCreated, model)
}

// CreateProduct godoc
// @Summary Create a product
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body services.CreateProductInput true "Product"
// @Success 201 {object} DataResponse{data=models.Product}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/admin/products [post]
func (h *AdminController) CreateProduct(c *gin.Context) {
	var req services.CreateProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	product, err := h.catalog.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary Change price, stock or discount
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Product slug"
// @Param product body services.UpdateProductInput true "Changes"
// @Success 200 {object} DataResponse{data=models.Product}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/products/{slug} [patch]
func (h *AdminController) UpdateProduct(c *gin.Context) {
	var req services.UpdateProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	product, err := h.catalog.UpdateProduct(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, product)
}

// AddSpecification godoc
// @Summary Add a product specification
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Product slug"
// @Param specification body SpecificationRequest true "Specification"
// @Success 201 {object} DataResponse{data=models.Specification}
// @Router /api/v1/admin/products/{slug}/specifications [post]
func (h *AdminController) AddSpecification(c *gin.Context) {
	var req SpecificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	spec, err := h.catalog.AddSpecification(c.Request.Context(), c.Param("slug"), req.Title, req.Value)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusCreated, spec)
}

// UploadProductImage godoc
// @Summary Upload a product image
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Product slug"
// @Param image formData file true "PNG, JPG or SVG image (max 10MB)"
// @Success 200 {object} DataResponse{data=models.Product}
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/products/{slug}/image [post]
func (h *AdminController) UploadProductImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "An image file is required in the 'image' field")
		return
	}
	product, err := h.catalog.SetProductImage(c.Request.Context(), c.Param("slug"), fh)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, product)
}

// CreateRegion godoc
// @Summary Create a delivery region
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param region body NameRequest true "Region"
// @Success 201 {object} DataResponse{data=models.Region}
// @Router /api/v1/admin/regions [post]
func (h *AdminController) CreateRegion(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	region, err := h.catalog.CreateRegion(c.Request.Context(), req.Name)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusCreated, region)
}

// CreateCity godoc
// @Summary Create a city in a region
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Region ID"
// @Param city body NameRequest true "City"
// @Success 201 {object} DataResponse{data=models.City}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/regions/{id}/cities [post]
func (h *AdminController) CreateCity(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	city, err := h.catalog.CreateCity(c.Request.Context(), id, req.Name)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusCreated, city)
}
