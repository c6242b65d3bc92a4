package repository

import (
	"context"
	"errors"

	"github.com/Kreissys/mi-ecommerce-pro/models"
	"gorm.io/gorm"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// GetAll returns every category with its nested products. The nested list
// is not filtered by availability.
func (r *CategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := r.db.WithContext(ctx).Preload("Products").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	for i := range categories {
		fillCategoryName(&categories[i])
	}
	return categories, nil
}

// GetBySlug returns one category with its nested products.
func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Preload("Products").Where("slug = ?", slug).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	fillCategoryName(&category)
	return &category, nil
}

func (r *CategoryRepo) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func fillCategoryName(category *models.Category) {
	// Preload leaves the slice nil when the category has no products,
	// which would serialize as null instead of [].
	if category.Products == nil {
		category.Products = []models.Product{}
	}
	for i := range category.Products {
		category.Products[i].CategoryName = category.Name
	}
}
