package repository

import "errors"

var (
	// ErrProductNotFound is returned when a product slug or id does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category slug does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrOrderNotFound is returned when an order id does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInsufficientStock is returned when a decrement would drive stock negative.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrEmptyOrder is returned when an order carries no items.
	ErrEmptyOrder = errors.New("order has no items")
	// ErrProductReferenced is returned when deleting a product that an order item references.
	ErrProductReferenced = errors.New("product referenced by an order item")
	// ErrDuplicateSlug is returned when a product slug is already taken.
	ErrDuplicateSlug = errors.New("slug already in use")
)
