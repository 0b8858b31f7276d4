package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/digitalstore/digitalstore-api/middleware"
	"github.com/digitalstore/digitalstore-api/services"
	"github.com/digitalstore/digitalstore-api/utils"
)

// ErrorBody is the error half of the response envelope
type ErrorBody struct {
	Code    string `json:"code" example:"PRODUCT_NOT_FOUND"`
	Message string `json:"message" example:"Product not found"`
}

// ErrorResponse is returned with every non-2xx status
type ErrorResponse struct {
	Success bool      `json:"success" example:"false"`
	Error   ErrorBody `json:"error"`
}

// DataResponse is returned with every 2xx status
type DataResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

var serviceErrors = []errorMapping{
	{services.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND", "User not found"},
	{services.ErrCustomerNotFound, http.StatusNotFound, "CUSTOMER_NOT_FOUND", "Customer not found, register first"},
	{services.ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found"},
	{services.ErrCategoryNotFound, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found"},
	{services.ErrBrandNotFound, http.StatusNotFound, "BRAND_NOT_FOUND", "Brand not found"},
	{services.ErrModelNotFound, http.StatusNotFound, "MODEL_NOT_FOUND", "Product model not found"},
	{services.ErrOrderNotFound, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found"},
	{services.ErrLineNotFound, http.StatusNotFound, "LINE_NOT_FOUND", "Order line not found"},
	{services.ErrRegionNotFound, http.StatusNotFound, "REGION_NOT_FOUND", "Region not found"},
	{services.ErrCityNotFound, http.StatusNotFound, "CITY_NOT_FOUND", "City not found"},
	{services.ErrForbidden, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this order"},
	{services.ErrUserExists, http.StatusConflict, "USER_EXISTS", "A user with this identity or email already exists"},
	{services.ErrSlugTaken, http.StatusConflict, "SLUG_TAKEN", "Slug is already in use"},
	{services.ErrOrderNotOpen, http.StatusConflict, "ORDER_NOT_OPEN", "Order is no longer open"},
	{services.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION", "Order status change is not allowed"},
	{services.ErrEmptyCart, http.StatusUnprocessableEntity, "EMPTY_CART", "Cart is empty"},
	{services.ErrStockExceeded, http.StatusUnprocessableEntity, "STOCK_EXCEEDED", "Not enough stock for the requested quantity"},
	{services.ErrInvalidAction, http.StatusBadRequest, "INVALID_ACTION", "Action must be add or delete"},
}

// respondServiceError translates a service error into the response envelope.
// Unknown errors are logged and reported as DATABASE_ERROR.
func respondServiceError(c *gin.Context, log *zap.Logger, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.target) {
			respondError(c, m.status, m.code, m.message)
			return
		}
	}

	if errors.Is(err, services.ErrInvalidInput) {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var uploadErr *utils.FileUploadError
	if errors.As(err, &uploadErr) {
		respondError(c, http.StatusBadRequest, uploadErr.Code, uploadErr.Message)
		return
	}

	log.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(middleware.ContextRequestID)),
		zap.Error(err),
	)
	respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "An internal error occurred")
}

// subject returns the authenticated identity, writing a 401 when it is missing
func subject(c *gin.Context) (string, bool) {
	id, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user ID from token")
		return "", false
	}
	return id, true
}

// paramID parses a positive numeric path parameter, writing a 400 when it is invalid
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// pageParams reads ?page= and ?limit=, defaulting to 1 and 10 and capping limit at 100
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
