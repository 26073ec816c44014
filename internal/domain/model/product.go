package model

import "time"

// ProductStatus is a free-form catalog label; only these two are produced today.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product is a catalog entry. Quantity is units on hand, Sold the cumulative
// units delivered to completed orders.
type Product struct {
	ID           int64
	Name         string
	SKU          string
	Description  string
	Size         string
	Material     string
	Warranty     string
	ShippingInfo string
	Images       []string
	Categories   []string
	Price        float64
	Quantity     int64
	Sold         int64
	Status       ProductStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StatusLabel derives the human readable label returned by catalog listings.
func (p Product) StatusLabel() string {
	switch p.Status {
	case ProductStatusActive:
		return "Available"
	case ProductStatusInactive:
		return "Unavailable"
	default:
		return string(p.Status)
	}
}
