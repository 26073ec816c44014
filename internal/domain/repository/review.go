package repository

import (
	"context"

	"github.com/vantran-dev/storefront/internal/domain/model"
)

// ReviewRepository describes persistence operations for product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *model.Review) (*model.Review, error)
	Update(ctx context.Context, r *model.Review) (*model.Review, error)
	Delete(ctx context.Context, id, userID int64) error
	GetByID(ctx context.Context, id int64) (*model.Review, error)
	ListByProduct(ctx context.Context, productID int64, offset, limit int) ([]model.Review, int64, error)
}
