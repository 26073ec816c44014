package repository

import (
	"context"

	"github.com/vantran-dev/storefront/internal/domain/model"
)

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Category string
	Search   string
}

// ProductRepository describes persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) (*model.Product, error)
	Update(ctx context.Context, p *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter, offset, limit int) ([]model.Product, int64, error)
	// AdjustQuantity changes stock by delta. A negative delta only succeeds
	// when at least -delta units are on hand; otherwise ErrInsufficientStock.
	AdjustQuantity(ctx context.Context, id int64, delta int64) error
	CountCreatedPerDay(ctx context.Context, month, year int) (map[int]float64, error)
}
