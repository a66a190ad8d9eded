// controller/order_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	lyfter_errors "github.com/andreyques41/lyfter-store/errors"
	"github.com/andreyques41/lyfter-store/model"
	"github.com/andreyques41/lyfter-store/service"
	"github.com/andreyques41/lyfter-store/util"
	helper_util "github.com/andreyques41/lyfter-store/util/helper"
)

type OrderController struct {
	orderService service.IOrderService
}

func NewOrderController(orderService service.IOrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

// RegisterRoutes registers the API routes
func (oc *OrderController) RegisterRoutes(r *gin.RouterGroup) {
	orders := r.Group("/orders")
	{
		orders.POST("", oc.CreateOrder)
		orders.PATCH("/:id/status", oc.UpdateOrderStatus)
		orders.DELETE("/:id", oc.DeleteOrder)
		orders.GET("/:id", oc.GetOrder)
		orders.GET("", oc.ListOrders)
		orders.GET("/user/:userId", oc.ListOrdersByUser)
	}
}

// CreateOrder endpoint
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var order model.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid order data", lyfter_errors.ErrInvalidOrderData)
		return
	}
	actorID := util.GetActorFromContext(c)

	createdOrder, err := oc.orderService.CreateOrder(c, order, actorID)
	if err != nil {
		if errors.Is(err, lyfter_errors.ErrDatabaseOperation) {
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		} else {
			util.RespondWithError(c, http.StatusBadRequest, "Failed to create order", err)
		}
		return
	}

	c.JSON(http.StatusCreated, createdOrder)
}

// UpdateOrderStatus endpoint
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")
	var payload struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid status payload", err)
		return
	}
	actorID := util.GetActorFromContext(c)

	updatedOrder, err := oc.orderService.UpdateOrderStatus(c, orderID, payload.Status, actorID)
	if err != nil {
		switch {
		case errors.Is(err, lyfter_errors.ErrOrderNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Order not found", err)
		case errors.Is(err, lyfter_errors.ErrInvalidOrderTransition):
			util.RespondWithError(c, http.StatusConflict, "Invalid status transition", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update order", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedOrder)
}

// DeleteOrder endpoint
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	orderID := c.Param("id")
	actorID := util.GetActorFromContext(c)

	if err := oc.orderService.DeleteOrder(c, orderID, actorID); err != nil {
		if errors.Is(err, lyfter_errors.ErrOrderNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Order not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete order", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetOrder endpoint
func (oc *OrderController) GetOrder(c *gin.Context) {
	orderID := c.Param("id")

	order, err := oc.orderService.GetOrder(c, orderID)
	if err != nil {
		if errors.Is(err, lyfter_errors.ErrOrderNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Order not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to get order", err)
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// ListOrders endpoint
func (oc *OrderController) ListOrders(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	orders, err := oc.orderService.ListOrders(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list orders", err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// ListOrdersByUser endpoint
func (oc *OrderController) ListOrdersByUser(c *gin.Context) {
	userID := c.Param("userId")

	orders, err := oc.orderService.ListOrdersByUser(c, userID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list orders", err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
