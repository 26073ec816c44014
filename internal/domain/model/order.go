package model

import "time"

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipping  OrderStatus = "shipping"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentMethod enumerates supported checkout payment options.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "COD"
	PaymentBankTransfer   PaymentMethod = "bank_transfer"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:  {OrderStatusShipping, OrderStatusCancelled},
	OrderStatusShipping: {OrderStatusCompleted},
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipping, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition s -> next is legal.
// Completed and cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCashOnDelivery || m == PaymentBankTransfer
}

// OrderItem is an immutable snapshot of product id, quantity and unit price
// captured at order-creation time. Reviewed is derived at read time for the
// owning user, never stored.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int64
	Price     float64
	Reviewed  bool
}

// Order aggregates line-item snapshots with totals and lifecycle state.
// UserEmail is denormalized at read time for administrative listings.
type Order struct {
	ID              int64
	UserID          int64
	UserEmail       string
	Items           []OrderItem
	VoucherID       *int64
	TotalPrice      float64
	Status          OrderStatus
	ShippingAddress string
	PaymentMethod   PaymentMethod
	Note            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
