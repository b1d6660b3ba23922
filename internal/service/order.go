package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/beingsaumyadeep/py-commerce/internal/logging"
	"github.com/beingsaumyadeep/py-commerce/internal/models"
	"github.com/beingsaumyadeep/py-commerce/internal/util"
)

const DefaultPaymentMethod = "credit_card"

type OrderService struct {
	DB *gorm.DB
}

// OrderLine is one requested cart position.
type OrderLine struct {
	ProductID uint
	Quantity  int
}

// PlaceOrder converts a cart into a persisted order, its items, decremented
// stock rows and a pending payment transaction. Everything runs inside one
// database transaction: if any line fails, nothing is persisted.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint, lines []OrderLine, paymentMethod string) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: items required", ErrValidation)
	}
	for _, line := range lines {
		if line.ProductID == 0 {
			return nil, fmt.Errorf("%w: product_id required", ErrValidation)
		}
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
		}
	}
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	var order models.Order
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("user", userID)
			}
			return err
		}

		order = models.Order{UserID: userID, Status: models.OrderStatusPending}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		var total float64
		for _, line := range lines {
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return notFound("product", line.ProductID)
				}
				return err
			}

			var stock models.ProductStock
			if err := tx.Where("product_id = ?", line.ProductID).First(&stock).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return notFound("stock", line.ProductID)
				}
				return err
			}
			if stock.Quantity < line.Quantity {
				return &InsufficientStockError{ProductID: line.ProductID}
			}

			// Conditional decrement: the quantity guard makes the
			// check-and-decrement atomic per product, so two concurrent
			// orders cannot both drain the same units.
			res := tx.Model(&models.ProductStock{}).
				Where("product_id = ? AND quantity >= ?", line.ProductID, line.Quantity).
				Updates(map[string]interface{}{
					"quantity":     gorm.Expr("quantity - ?", line.Quantity),
					"last_updated": time.Now().UTC(),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &InsufficientStockError{ProductID: line.ProductID}
			}

			item := models.OrderItem{
				OrderID:     order.ID,
				ProductID:   line.ProductID,
				Quantity:    line.Quantity,
				PriceAtTime: product.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			order.Items = append(order.Items, item)
			total += product.Price * float64(line.Quantity)
		}

		trx := models.Transaction{
			OrderID:       order.ID,
			Reference:     uuid.NewString(),
			Amount:        total,
			Status:        models.TransactionStatusPending,
			PaymentMethod: paymentMethod,
		}
		if err := tx.Create(&trx).Error; err != nil {
			return err
		}
		order.Transaction = &trx

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	logging.FromContext(ctx).Info("order_placed",
		"order_id", order.ID,
		"user_id", userID,
		"items", len(order.Items),
		"amount", order.Transaction.Amount,
	)
	return &order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.WithContext(ctx).
		Preload("Items").
		Preload("Transaction").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("order", id)
		}
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, skip, limit int) ([]models.Order, error) {
	skip, limit = util.Clamp(skip, limit)

	var orders []models.Order
	err := s.DB.WithContext(ctx).
		Preload("Items").
		Preload("Transaction").
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
