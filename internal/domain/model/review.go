package model

import "time"

// Review is a customer rating for a product within a particular order.
// At most one review exists per (user, order, product) triple.
type Review struct {
	ID        int64
	UserID    int64
	OrderID   int64
	ProductID int64
	Rating    int
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
