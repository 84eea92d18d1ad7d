package repo

import (
	"context"
	"fmt"

	"github.com/bakelk/cake_shop/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateOrder persists the order and decrements stock for every line in
// one transaction. The conditional update refuses to over-commit: when a
// product's live qty is below the ordered quantity the whole order rolls
// back with ErrInsufficientStock.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range order.Items {
			it := &order.Items[i]
			res := tx.Model(&models.Product{}).
				Where("id = ? AND qty >= ?", it.ProductID, it.Quantity).
				Update("qty", gorm.Expr("qty - ?", it.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				var exists int64
				if err := tx.Model(&models.Product{}).Where("id = ?", it.ProductID).Count(&exists).Error; err != nil {
					return err
				}
				if exists == 0 {
					return gorm.ErrRecordNotFound
				}
				return fmt.Errorf("product %s: %w", it.ProductID, ErrInsufficientStock)
			}
		}
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id, userID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, limit, offset int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	res := r.DB.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
