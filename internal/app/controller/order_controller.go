package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fara3/fara3-backend/internal/app/service"
	apperrors "github.com/fara3/fara3-backend/internal/errors"
	"github.com/fara3/fara3-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity"`
}

type CreateOrderRequest struct {
	UserID          uint               `json:"user_id" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required"`
	PaymentMethod   string             `json:"payment_method"`
	ShippingAddress string             `json:"shipping_address"`
}

// CreateOrder places an order for a user. Stock is checked and decremented
// and the user's cart cleared in the same transaction.
// POST /api/orders
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid order request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, "User ID and items are required")
		return
	}

	lines := make([]service.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		lines = append(lines, service.OrderLine{
			ProductID: item.ProductID,
			Quantity:  quantity,
		})
	}

	order, err := ctrl.orderService.PlaceOrder(req.UserID, lines, req.PaymentMethod, req.ShippingAddress)
	if err != nil {
		var notFoundErr *service.ProductNotFoundError
		var stockErr *service.InsufficientStockError
		switch {
		case errors.Is(err, service.ErrEmptyOrder):
			log.Warn("Order rejected: no items", map[string]interface{}{
				"user_id": req.UserID,
			})
			apperrors.BadRequest(c, "User ID and items are required")
		case errors.Is(err, service.ErrInvalidQuantity):
			log.Warn("Order rejected: invalid quantity", map[string]interface{}{
				"user_id": req.UserID,
			})
			apperrors.BadRequest(c, "Quantity must be at least 1")
		case errors.As(err, &notFoundErr):
			log.Warn("Order rejected: product not found", map[string]interface{}{
				"user_id":    req.UserID,
				"product_id": notFoundErr.ProductID,
			})
			apperrors.NotFound(c, fmt.Sprintf("Product %d not found", notFoundErr.ProductID))
		case errors.As(err, &stockErr):
			log.Warn("Order rejected: insufficient stock", map[string]interface{}{
				"user_id":   req.UserID,
				"product":   stockErr.ProductName,
				"requested": stockErr.Requested,
				"available": stockErr.Available,
			})
			apperrors.BadRequest(c, fmt.Sprintf("Insufficient stock for %s", stockErr.ProductName))
		default:
			log.Error("Failed to create order", err, map[string]interface{}{
				"user_id": req.UserID,
			})
			apperrors.InternalError(c)
		}
		return
	}

	log.Info("Order created", map[string]interface{}{
		"user_id":      req.UserID,
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"total_amount": order.TotalAmount,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order": gin.H{
			"id":           order.ID,
			"order_number": order.OrderNumber,
			"total_amount": order.TotalAmount,
			"status":       order.Status,
			"order_date":   order.OrderDate,
		},
	})
}

// GetUserOrders lists a user's orders, newest first
// GET /api/orders/:user_id
func (ctrl *OrderController) GetUserOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userIDStr := c.Param("user_id")
	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		log.Warn("Invalid user ID format", map[string]interface{}{
			"user_id": userIDStr,
		})
		apperrors.BadRequest(c, "User ID is required")
		return
	}

	orders, err := ctrl.orderService.GetUserOrders(uint(userID))
	if err != nil {
		log.Error("Failed to fetch orders", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c)
		return
	}

	orderList := make([]gin.H, 0, len(orders))
	for i := range orders {
		order := &orders[i]
		items := make([]gin.H, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, gin.H{
				"product_name": item.ProductName,
				"quantity":     item.Quantity,
				"price":        item.Price,
				"image_url":    item.ImageURL,
			})
		}
		orderList = append(orderList, gin.H{
			"id":             order.ID,
			"order_number":   order.OrderNumber,
			"order_date":     order.OrderDate,
			"total_amount":   order.TotalAmount,
			"payment_method": order.PaymentMethod,
			"status":         order.Status,
			"items":          items,
		})
	}

	log.Info("Orders fetched successfully", map[string]interface{}{
		"user_id": userID,
		"count":   len(orderList),
	})

	c.JSON(http.StatusOK, gin.H{
		"orders": orderList,
	})
}
