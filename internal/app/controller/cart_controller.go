package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fara3/fara3-backend/internal/app/service"
	apperrors "github.com/fara3/fara3-backend/internal/errors"
	"github.com/fara3/fara3-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddToCartRequest struct {
	UserID    uint `json:"user_id" binding:"required"`
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity"`
}

// GetCart returns all cart rows for a user with per-row subtotals
// GET /api/cart?user_id=
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userIDStr := c.Query("user_id")
	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		log.Warn("Missing or invalid user ID", map[string]interface{}{
			"user_id": userIDStr,
		})
		apperrors.BadRequest(c, "User ID is required")
		return
	}

	cartItems, err := ctrl.cartService.GetUserCart(uint(userID))
	if err != nil {
		log.Error("Failed to fetch cart", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c)
		return
	}

	var total float64
	itemList := make([]gin.H, 0, len(cartItems))
	for i := range cartItems {
		item := &cartItems[i]
		subtotal := item.Product.Price * float64(item.Quantity)
		total += subtotal
		itemList = append(itemList, gin.H{
			"id":            item.ID,
			"product_id":    item.ProductID,
			"product_name":  item.Product.Name,
			"product_price": item.Product.Price,
			"product_image": item.Product.ImageURL,
			"quantity":      item.Quantity,
			"subtotal":      subtotal,
		})
	}

	log.Info("Cart fetched successfully", map[string]interface{}{
		"user_id": userID,
		"count":   len(itemList),
		"total":   total,
	})

	c.JSON(http.StatusOK, gin.H{
		"cart_items": itemList,
		"total":      total,
	})
}

// AddToCart adds a product to a user's cart, merging quantities when the
// product is already there. A missing quantity means 1.
// POST /api/cart
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add-to-cart request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, "User ID and Product ID are required")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if err := ctrl.cartService.AddToCart(req.UserID, req.ProductID, quantity); err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			log.Warn("Add-to-cart rejected: invalid quantity", map[string]interface{}{
				"user_id":  req.UserID,
				"quantity": quantity,
			})
			apperrors.BadRequest(c, "Quantity must be at least 1")
			return
		}
		if errors.Is(err, service.ErrProductNotFound) {
			log.Warn("Add-to-cart rejected: product not found", map[string]interface{}{
				"user_id":    req.UserID,
				"product_id": req.ProductID,
			})
			apperrors.NotFound(c, "Product not found")
			return
		}
		log.Error("Failed to add item to cart", err, map[string]interface{}{
			"user_id":    req.UserID,
			"product_id": req.ProductID,
		})
		apperrors.InternalError(c)
		return
	}

	log.Info("Item added to cart", map[string]interface{}{
		"user_id":    req.UserID,
		"product_id": req.ProductID,
		"quantity":   quantity,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item added to cart successfully",
	})
}

// RemoveFromCart deletes a single cart row by its id
// DELETE /api/cart/:item_id
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	itemIDStr := c.Param("item_id")
	itemID, err := strconv.ParseUint(itemIDStr, 10, 32)
	if err != nil {
		log.Warn("Invalid cart item ID format", map[string]interface{}{
			"item_id": itemIDStr,
		})
		apperrors.BadRequest(c, "Invalid cart item ID")
		return
	}

	if err := ctrl.cartService.RemoveFromCart(uint(itemID)); err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			log.Warn("Cart item not found", map[string]interface{}{
				"item_id": itemID,
			})
			apperrors.NotFound(c, "Cart item not found")
			return
		}
		log.Error("Failed to remove cart item", err, map[string]interface{}{
			"item_id": itemID,
		})
		apperrors.InternalError(c)
		return
	}

	log.Info("Cart item removed", map[string]interface{}{
		"item_id": itemID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
	})
}

// ClearCart removes every cart row for a user. Clearing an empty cart
// still succeeds.
// DELETE /api/cart/clear/:user_id
func (ctrl *CartController) ClearCart(c *gin.Context) {
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

	if err := ctrl.cartService.ClearCart(uint(userID)); err != nil {
		log.Error("Failed to clear cart", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c)
		return
	}

	log.Info("Cart cleared", map[string]interface{}{
		"user_id": userID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}
