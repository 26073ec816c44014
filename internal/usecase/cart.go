package usecase

import (
	"context"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
)

// CartUseCase manages per-user carts. Adding to a cart reserves stock by
// decrementing the product quantity; removing or clearing returns it.
type CartUseCase struct {
	products repository.ProductRepository
	carts    repository.CartRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(products repository.ProductRepository, carts repository.CartRepository) *CartUseCase {
	return &CartUseCase{products: products, carts: carts}
}

// AddItems reserves stock for each requested line and merges it into the
// cart. A line that cannot be reserved fails without touching later lines.
func (u *CartUseCase) AddItems(ctx context.Context, userID int64, items []repository.OrderItemRequest) ([]model.CartItem, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	for _, item := range items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return nil, domainErrors.ErrInvalidInput
		}
	}

	for _, item := range items {
		if err := u.products.AdjustQuantity(ctx, item.ProductID, -item.Quantity); err != nil {
			return nil, err
		}
		if err := u.carts.Upsert(ctx, userID, item.ProductID, item.Quantity); err != nil {
			return nil, err
		}
	}

	return u.carts.Get(ctx, userID)
}

// UpdateItem sets a cart line to an absolute quantity, reserving or
// returning the difference in stock.
func (u *CartUseCase) UpdateItem(ctx context.Context, userID, productID, quantity int64) ([]model.CartItem, error) {
	if productID <= 0 || quantity <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}

	item, err := u.carts.GetItem(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if delta := quantity - item.Quantity; delta != 0 {
		if err := u.products.AdjustQuantity(ctx, productID, -delta); err != nil {
			return nil, err
		}
	}
	if err := u.carts.SetQuantity(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}

	return u.carts.Get(ctx, userID)
}

// RemoveItem drops a cart line and returns its quantity to stock.
func (u *CartUseCase) RemoveItem(ctx context.Context, userID, productID int64) ([]model.CartItem, error) {
	item, err := u.carts.GetItem(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if err := u.products.AdjustQuantity(ctx, productID, item.Quantity); err != nil {
		return nil, err
	}
	if err := u.carts.Remove(ctx, userID, productID); err != nil {
		return nil, err
	}
	return u.carts.Get(ctx, userID)
}

// Clear empties the cart, returning every reserved quantity to stock.
func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	items, err := u.carts.Get(ctx, userID)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := u.products.AdjustQuantity(ctx, item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	return u.carts.Clear(ctx, userID)
}

// Items returns the cart content with resolved product details.
func (u *CartUseCase) Items(ctx context.Context, userID int64) ([]model.CartItem, error) {
	return u.carts.Get(ctx, userID)
}
