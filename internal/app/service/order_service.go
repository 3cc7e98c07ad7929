package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fara3/fara3-backend/internal/app/model"
	"github.com/fara3/fara3-backend/internal/app/repository"
	"github.com/fara3/fara3-backend/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// ProductNotFoundError names the order line whose product id did not resolve.
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// InsufficientStockError names the product whose stock cannot cover the
// requested quantity.
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.ProductName)
}

// OrderLine is one requested (product, quantity) pair of an order.
type OrderLine struct {
	ProductID uint
	Quantity  int
}

type OrderService interface {
	PlaceOrder(userID uint, lines []OrderLine, paymentMethod, shippingAddress string) (*model.Order, error)
	GetUserOrders(userID uint) ([]model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	db        *gorm.DB
}

func NewOrderService(orderRepo repository.OrderRepository, db *gorm.DB) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		db:        db,
	}
}

// PlaceOrder validates every requested line, then persists the order with
// its item snapshots, decrements stock and clears the purchaser's cart as
// one transaction. Product rows are locked for the duration so concurrent
// orders cannot both pass the stock check and drive stock negative.
func (s *orderService) PlaceOrder(userID uint, lines []OrderLine, paymentMethod, shippingAddress string) (*model.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			logger.Warn("Order rejected: invalid line quantity", map[string]interface{}{
				"user_id":    userID,
				"product_id": line.ProductID,
				"quantity":   line.Quantity,
			})
			return nil, ErrInvalidQuantity
		}
	}

	if paymentMethod == "" {
		paymentMethod = "cod"
	}

	logger.Info("Placing order", map[string]interface{}{
		"user_id":        userID,
		"line_count":     len(lines),
		"payment_method": paymentMethod,
	})

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during order placement, rolling back", fmt.Errorf("panic: %v", r), map[string]interface{}{
				"user_id": userID,
			})
		}
	}()

	var (
		totalAmount float64
		orderItems  []model.OrderItem
		decrements  = make(map[uint]int, len(lines))
	)

	for _, line := range lines {
		var product model.Product
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, line.ProductID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Warn("Order aborted: product not found", map[string]interface{}{
					"user_id":    userID,
					"product_id": line.ProductID,
				})
				return nil, &ProductNotFoundError{ProductID: line.ProductID}
			}
			logger.Error("Failed to fetch product during order placement", err, map[string]interface{}{
				"user_id":    userID,
				"product_id": line.ProductID,
			})
			return nil, err
		}

		// Two lines for the same product draw from the same stock.
		needed := decrements[product.ID] + line.Quantity
		if product.Stock < needed {
			tx.Rollback()
			logger.Warn("Order aborted: insufficient stock", map[string]interface{}{
				"user_id":    userID,
				"product_id": product.ID,
				"requested":  needed,
				"available":  product.Stock,
			})
			return nil, &InsufficientStockError{
				ProductName: product.Name,
				Requested:   needed,
				Available:   product.Stock,
			}
		}
		decrements[product.ID] = needed

		orderItems = append(orderItems, model.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			Price:       product.Price,
			ImageURL:    product.ImageURL,
		})
		totalAmount += product.Price * float64(line.Quantity)
	}

	order := &model.Order{
		UserID:          userID,
		OrderNumber:     newOrderNumber(),
		OrderDate:       time.Now().UTC(),
		TotalAmount:     totalAmount,
		PaymentMethod:   paymentMethod,
		Status:          model.OrderStatusPending,
		ShippingAddress: shippingAddress,
		Items:           orderItems,
	}

	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create order", err, map[string]interface{}{
			"user_id":      userID,
			"total_amount": totalAmount,
		})
		return nil, err
	}

	for productID, quantity := range decrements {
		if err := tx.Model(&model.Product{}).
			Where("id = ?", productID).
			Update("stock", gorm.Expr("stock - ?", quantity)).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to decrement product stock", err, map[string]interface{}{
				"user_id":    userID,
				"product_id": productID,
			})
			return nil, err
		}
	}

	// The cart is considered consumed by the order, whatever it held.
	if err := tx.Where("user_id = ?", userID).Delete(&model.CartItem{}).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to clear cart after order placement", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit order transaction", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("Order placed successfully", map[string]interface{}{
		"user_id":      userID,
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"total_amount": totalAmount,
		"item_count":   len(orderItems),
	})

	return s.orderRepo.FindByID(order.ID)
}

func (s *orderService) GetUserOrders(userID uint) ([]model.Order, error) {
	logger.Debug("Fetching user orders", map[string]interface{}{
		"user_id": userID,
	})

	orders, err := s.orderRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch user orders", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("User orders fetched successfully", map[string]interface{}{
		"user_id": userID,
		"count":   len(orders),
	})
	return orders, nil
}

// newOrderNumber builds an FA-prefixed, timestamp-derived order number. The
// random suffix keeps two orders in the same second from colliding.
func newOrderNumber() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("FA%s-%s", time.Now().UTC().Format("20060102150405"), suffix)
}
