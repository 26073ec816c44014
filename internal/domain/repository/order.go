package repository

import (
	"context"

	"github.com/vantran-dev/storefront/internal/domain/model"
)

// OrderItemRequest is a requested (product, quantity) pair at checkout.
type OrderItemRequest struct {
	ProductID int64
	Quantity  int64
}

// CreateOrderParams carries everything the checkout transaction needs.
type CreateOrderParams struct {
	UserID          int64
	Items           []OrderItemRequest
	VoucherID       *int64
	ShippingAddress string
	PaymentMethod   model.PaymentMethod
	Note            string
}

// OrderRepository describes persistence operations for orders.
type OrderRepository interface {
	// Create performs the whole checkout write set in one transaction:
	// conditional stock decrements, voucher validation and usage decrement,
	// and the order insert with line-item snapshots. Any failure rolls back
	// every decrement.
	Create(ctx context.Context, params CreateOrderParams) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*model.Order, error)
	// ListByUser loads a page of the user's orders with each line item
	// annotated with whether a matching review exists.
	ListByUser(ctx context.Context, userID int64, offset, limit int) ([]model.Order, int64, error)
	// List loads a page of all orders with owner emails resolved.
	List(ctx context.Context, offset, limit int) ([]model.Order, int64, error)
	// UpdateStatus persists the transition from -> to as a compare-and-swap on
	// the stored status; a concurrent transition surfaces as
	// ErrInvalidStatusTransition. markSold additionally increments each line
	// item's product sold counter in the same transaction.
	UpdateStatus(ctx context.Context, id int64, from, to model.OrderStatus, markSold bool) (*model.Order, error)
	SumCompletedPerDay(ctx context.Context, month, year int) (map[int]float64, error)
}
