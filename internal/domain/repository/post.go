package repository

import (
	"context"

	"github.com/vantran-dev/storefront/internal/domain/model"
)

// PostRepository describes persistence operations for blog posts.
type PostRepository interface {
	Create(ctx context.Context, p *model.Post) (*model.Post, error)
	Update(ctx context.Context, p *model.Post) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	List(ctx context.Context, offset, limit int) ([]model.Post, int64, error)
}
