package repository

import (
	"context"

	"github.com/vantran-dev/storefront/internal/domain/model"
)

// CartRepository describes persistence operations for per-user carts.
type CartRepository interface {
	// Upsert merges quantity into an existing line or creates one.
	Upsert(ctx context.Context, userID, productID, quantity int64) error
	Get(ctx context.Context, userID int64) ([]model.CartItem, error)
	GetItem(ctx context.Context, userID, productID int64) (*model.CartItem, error)
	SetQuantity(ctx context.Context, userID, productID, quantity int64) error
	Remove(ctx context.Context, userID, productID int64) error
	// RemoveMany deletes the given product lines without touching stock.
	RemoveMany(ctx context.Context, userID int64, productIDs []int64) error
	Clear(ctx context.Context, userID int64) error
}
