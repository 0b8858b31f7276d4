package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/digitalstore/digitalstore-api/services"
)

type CartController struct {
	cart *services.CartService
	log  *zap.Logger
}

func NewCartController(cart *services.CartService, log *zap.Logger) *CartController {
	return &CartController{cart: cart, log: log}
}

// GetCart godoc
// @Summary My cart
// @Description The caller's open order with priced lines. An empty cart is created on first access.
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DataResponse{data=services.CartSummary}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/cart [get]
func (h *CartController) GetCart(c *gin.Context) {
	sub, ok := subject(c)
	if !ok {
		return
	}
	summary, err := h.cart.Cart(c.Request.Context(), sub)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, summary)
}

// AddOrDelete godoc
// @Summary Add or remove one unit
// @Description Adds one unit when stock allows (result "stock_exceeded" otherwise) or removes one unit, deleting the line at zero
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Product slug"
// @Param action path string true "add or delete" Enums(add, delete)
// @Success 200 {object} DataResponse{data=services.CartSummary}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/add_or_delete/{slug}/{action} [post]
func (h *CartController) AddOrDelete(c *gin.Context) {
	sub, ok := subject(c)
	if !ok {
		return
	}
	summary, err := h.cart.AddOrDelete(c.Request.Context(), sub, c.Param("slug"), c.Param("action"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, summary)
}

// RemoveLine godoc
// @Summary Remove a cart line
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param line_id path int true "Line ID"
// @Success 200 {object} DataResponse{data=services.CartSummary}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/orders/{id}/products/{line_id} [delete]
func (h *CartController) RemoveLine(c *gin.Context) {
	sub, ok := subject(c)
	if !ok {
		return
	}
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	lineID, ok := paramID(c, "line_id")
	if !ok {
		return
	}
	summary, err := h.cart.RemoveLine(c.Request.Context(), sub, orderID, lineID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, summary)
}
