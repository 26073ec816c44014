package model

import "time"

// Voucher is a discount instrument with a finite redemption count.
// Discount is either a fixed amount or a percentage, selected by IsPercentage.
type Voucher struct {
	ID            int64
	Code          string
	Name          string
	Discount      float64
	IsPercentage  bool
	MinOrderValue float64
	Quantity      int64
	IsActive      bool
	ExpiryDate    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Usable reports whether the voucher itself is redeemable at the given moment.
// Order subtotal eligibility is checked separately.
func (v Voucher) Usable(now time.Time) bool {
	if !v.IsActive {
		return false
	}
	if v.ExpiryDate != nil && now.After(*v.ExpiryDate) {
		return false
	}
	return true
}

// DiscountFor returns the discount amount applicable to the subtotal,
// never exceeding the subtotal itself.
func (v Voucher) DiscountFor(subtotal float64) float64 {
	amount := v.Discount
	if v.IsPercentage {
		amount = subtotal * v.Discount / 100
	}
	if amount > subtotal {
		return subtotal
	}
	return amount
}
