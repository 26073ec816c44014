package usecase

import (
	"context"
	"fmt"
	"log/slog"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
	"github.com/vantran-dev/storefront/internal/notifier"
	"github.com/vantran-dev/storefront/internal/pkg/pagination"
)

// OrderUseCase orchestrates checkout and the order lifecycle.
type OrderUseCase struct {
	users  repository.UserRepository
	orders repository.OrderRepository
	carts  repository.CartRepository
	notify Notifier
	logger *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(users repository.UserRepository, orders repository.OrderRepository, carts repository.CartRepository, notify Notifier, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{users: users, orders: orders, carts: carts, notify: notify, logger: logger}
}

// Create places an order. All stock and voucher decrements commit atomically
// with the order itself; after commit the ordered cart lines are removed and
// a confirmation is enqueued, both best-effort.
func (u *OrderUseCase) Create(ctx context.Context, params repository.CreateOrderParams) (*model.Order, error) {
	if len(params.Items) == 0 || params.ShippingAddress == "" || !params.PaymentMethod.Valid() {
		return nil, domainErrors.ErrInvalidInput
	}
	for _, item := range params.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return nil, domainErrors.ErrInvalidInput
		}
	}

	user, err := u.users.GetByID(ctx, params.UserID)
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, domainErrors.ErrAccountInactive
	}

	order, err := u.orders.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	productIDs := make([]int64, 0, len(order.Items))
	for _, item := range order.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	if err := u.carts.RemoveMany(ctx, order.UserID, productIDs); err != nil {
		u.logger.Warn("cart cleanup after checkout failed",
			slog.Int64("order", order.ID),
			slog.String("error", err.Error()),
		)
	}

	u.notify.Enqueue(notifier.Message{
		To:      user.Email,
		Subject: "Order placed",
		Body:    fmt.Sprintf("Your order %d has been placed successfully. Track it for further updates.", order.ID),
	})

	return order, nil
}

// UpdateStatus applies an administrative transition through the state
// machine; the stored status is compare-and-swapped so concurrent updates
// cannot skip states.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, next model.OrderStatus) (*model.Order, error) {
	if !next.Valid() {
		return nil, domainErrors.ErrInvalidInput
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, domainErrors.ErrInvalidStatusTransition
	}

	markSold := next == model.OrderStatusCompleted
	return u.orders.UpdateStatus(ctx, orderID, order.Status, next, markSold)
}

// Cancel sets a pending order to cancelled. Stock and voucher usage are not
// restored, matching the storefront's historical behavior.
func (u *OrderUseCase) Cancel(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusPending {
		return nil, domainErrors.ErrOrderNotCancellable
	}

	return u.orders.UpdateStatus(ctx, orderID, model.OrderStatusPending, model.OrderStatusCancelled, false)
}

// ConfirmReceived marks a shipped order as completed and credits each line
// item's sold counter. Confirming an already completed order is a no-op, so
// sold counters are never double-counted.
func (u *OrderUseCase) ConfirmReceived(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if order.Status == model.OrderStatusCompleted {
		return order, nil
	}
	if !order.Status.CanTransitionTo(model.OrderStatusCompleted) {
		return nil, domainErrors.ErrInvalidStatusTransition
	}

	updated, err := u.orders.UpdateStatus(ctx, orderID, order.Status, model.OrderStatusCompleted, true)
	if err != nil {
		return nil, err
	}

	if user, err := u.users.GetByID(ctx, userID); err == nil {
		u.notify.Enqueue(notifier.Message{
			To:      user.Email,
			Subject: "Delivery confirmed",
			Body:    fmt.Sprintf("Thank you for confirming delivery of order %d.", updated.ID),
		})
	}

	return updated, nil
}

// ListByUser returns a page of the caller's orders with review annotations.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64, page, limit int) (*pagination.Page[model.Order], error) {
	page, limit = pagination.Normalize(page, limit)
	orders, total, err := u.orders.ListByUser(ctx, userID, pagination.Offset(page, limit), limit)
	if err != nil {
		return nil, err
	}
	result := pagination.New(page, limit, total, orders)
	return &result, nil
}

// List returns a page of all orders with owner emails, for administrators.
func (u *OrderUseCase) List(ctx context.Context, page, limit int) (*pagination.Page[model.Order], error) {
	page, limit = pagination.Normalize(page, limit)
	orders, total, err := u.orders.List(ctx, pagination.Offset(page, limit), limit)
	if err != nil {
		return nil, err
	}
	result := pagination.New(page, limit, total, orders)
	return &result, nil
}

// Detail returns a single order with line items resolved.
func (u *OrderUseCase) Detail(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}
