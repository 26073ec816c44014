package repository

import (
	"context"

	"github.com/vantran-dev/storefront/internal/domain/model"
)

// CategoryRepository describes persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) (*model.Category, error)
	Update(ctx context.Context, c *model.Category) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	List(ctx context.Context, search string) ([]model.Category, error)
}
