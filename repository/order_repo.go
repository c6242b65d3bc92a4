package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kreissys/mi-ecommerce-pro/models"
	"gorm.io/gorm"
)

type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create persists the order header and every item as one transaction.
// If any item references a missing product the whole order rolls back and
// nothing is persisted.
func (r *OrderRepo) Create(ctx context.Context, order *models.Order) error {
	if len(order.Items) == 0 {
		return ErrEmptyOrder
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			var count int64
			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("item producto %d: %w", item.ProductID, ErrProductNotFound)
			}
		}
		return tx.Create(order).Error
	})
	if err != nil {
		return err
	}

	order.ComputeSubtotals()
	return nil
}

// GetByID returns one order with its items.
func (r *OrderRepo) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	order.ComputeSubtotals()
	return &order, nil
}

// GetAll returns every order, newest first.
func (r *OrderRepo) GetAll(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.db.WithContext(ctx).Preload("Items").Order("created_at desc, id desc").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].ComputeSubtotals()
	}
	return orders, nil
}

// Update saves the header fields. When items is non-nil the existing item
// set is replaced by it inside the same transaction; replacement items must
// reference existing products or the whole update rolls back.
func (r *OrderRepo) Update(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items", "CreatedAt").Save(order).Error; err != nil {
			return err
		}
		if items == nil {
			return nil
		}
		if len(items) == 0 {
			return ErrEmptyOrder
		}
		for _, item := range items {
			var count int64
			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("item producto %d: %w", item.ProductID, ErrProductNotFound)
			}
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return err
	}

	order.ComputeSubtotals()
	return nil
}

// Delete removes the order; items go with it.
func (r *OrderRepo) Delete(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(order).Error
	})
}
