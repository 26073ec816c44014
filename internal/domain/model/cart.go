package model

import "time"

// CartItem maps a product to the quantity a user intends to order.
// Adding to the cart reserves stock; removing restores it.
type CartItem struct {
	UserID    int64
	ProductID int64
	Quantity  int64
	Product   *Product
	CreatedAt time.Time
}
