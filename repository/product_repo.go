package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Kreissys/mi-ecommerce-pro/models"
	"gorm.io/gorm"
)

type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// List returns products ordered by id. With onlyAvailable it filters on the
// disponible flag; single-product reads never apply that filter.
func (r *ProductRepo) List(ctx context.Context, onlyAvailable bool) ([]models.Product, error) {
	// Never nil: an empty catalog serializes as [].
	products := []models.Product{}
	query := r.db.WithContext(ctx).Preload("Category").Order("id")
	if onlyAvailable {
		query = query.Where("available = ?", true)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	for i := range products {
		products[i].CategoryName = products[i].Category.Name
	}
	return products, nil
}

// GetBySlug returns one product regardless of availability.
func (r *ProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Preload("Category").Where("slug = ?", slug).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	product.CategoryName = product.Category.Name
	return &product, nil
}

func (r *ProductRepo) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	return nil
}

func (r *ProductRepo) Update(ctx context.Context, product *models.Product) error {
	// The preloaded Category association must not drag the FK around when
	// categoria_id itself changed.
	if err := r.db.WithContext(ctx).Omit("Category").Save(product).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	return nil
}

// Delete removes a product. Products referenced by an order item are
// protected, like the RESTRICT constraint on the column enforces.
func (r *ProductRepo) Delete(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.OrderItem{}).
			Where("product_id = ?", product.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrProductReferenced
		}
		if err := tx.Delete(product).Error; err != nil {
			if isForeignKeyViolation(err) {
				return ErrProductReferenced
			}
			return err
		}
		return nil
	})
}

// DecrementStock atomically reduces stock by quantity. The check and the
// write happen in one conditional UPDATE so concurrent decrements cannot
// drive stock negative; zero rows affected means either the product does
// not exist or its stock is insufficient.
func (r *ProductRepo) DecrementStock(ctx context.Context, slug string, quantity int) (*models.Product, error) {
	res := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("slug = ? AND stock >= ?", slug, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Product{}).
			Where("slug = ?", slug).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrProductNotFound
		}
		return nil, ErrInsufficientStock
	}
	return r.GetBySlug(ctx, slug)
}

func isForeignKeyViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key") || strings.Contains(msg, "violates")
}

// isUniqueViolation matches SQLite's "UNIQUE constraint failed" and
// PostgreSQL's "duplicate key value violates unique constraint".
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key")
}
