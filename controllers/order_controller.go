package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/digitalstore/digitalstore-api/services"
)

type OrderController struct {
	orders *services.OrderService
	log    *zap.Logger
}

func NewOrderController(orders *services.OrderService, log *zap.Logger) *OrderController {
	return &OrderController{orders: orders, log: log}
}

// Checkout godoc
// @Summary Place the current cart
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param checkout body services.CheckoutInput true "Shipping details"
// @Success 201 {object} DataResponse{data=services.PlacedOrder}
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/cart/checkout [post]
func (h *OrderController) Checkout(c *gin.Context) {
	sub, ok := subject(c)
	if !ok {
		return
	}

	var req services.CheckoutInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	placed, err := h.orders.PlaceOrder(c.Request.Context(), sub, req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusCreated, placed)
}

// ListOrders godoc
// @Summary My order history
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} DataResponse
// @Router /api/v1/orders [get]
func (h *OrderController) ListOrders(c *gin.Context) {
	sub, ok := subject(c)
	if !ok {
		return
	}
	page, limit := pageParams(c)

	orders, total, err := h.orders.ListOrders(c.Request.Context(), sub, page, limit)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       orders,
		"pagination": services.NewPagination(page, limit, total),
	})
}

// GetOrder godoc
// @Summary One of my orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} DataResponse{data=services.PlacedOrder}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/orders/{id} [get]
func (h *OrderController) GetOrder(c *gin.Context) {
	sub, ok := subject(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.GetOrder(c.Request.Context(), sub, id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

// UpdateStatus godoc
// @Summary Change order status or payment flag
// @Description Allowed transitions: placed to fulfilled, placed to cancelled
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param update body services.UpdateStatusInput true "Changes"
// @Success 200 {object} DataResponse{data=models.Order}
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/admin/orders/{id} [patch]
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateStatusInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, order)
}
