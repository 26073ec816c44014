package dto

import (
	"time"

	"github.com/vantran-dev/storefront/internal/domain/model"
)

// ProductRequest carries product fields for create and update.
type ProductRequest struct {
	Name         string   `json:"name" binding:"required"`
	SKU          string   `json:"sku" binding:"required"`
	Description  string   `json:"description"`
	Size         string   `json:"size"`
	Material     string   `json:"material"`
	Warranty     string   `json:"warranty"`
	ShippingInfo string   `json:"shippingInfo"`
	Images       []string `json:"images"`
	Categories   []string `json:"categories"`
	Price        float64  `json:"price" binding:"min=0"`
	Quantity     int64    `json:"quantity" binding:"min=0"`
	Status       string   `json:"status"`
}

// ProductResponse is the catalog representation of a product.
type ProductResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	SKU          string   `json:"sku"`
	Description  string   `json:"description"`
	Size         string   `json:"size"`
	Material     string   `json:"material"`
	Warranty     string   `json:"warranty"`
	ShippingInfo string   `json:"shippingInfo"`
	Images       []string `json:"images"`
	Categories   []string `json:"categories"`
	Price        float64  `json:"price"`
	Quantity     int64    `json:"quantity"`
	Sold         int64    `json:"sold"`
	Status       string   `json:"status"`
	StatusLabel  string   `json:"statusLabel"`
	CreatedAt    string   `json:"createdAt"`
}

// Model converts the request into a product model.
func (r ProductRequest) Model() model.Product {
	status := model.ProductStatus(r.Status)
	if r.Status == "" {
		status = model.ProductStatusActive
	}
	return model.Product{
		Name:         r.Name,
		SKU:          r.SKU,
		Description:  r.Description,
		Size:         r.Size,
		Material:     r.Material,
		Warranty:     r.Warranty,
		ShippingInfo: r.ShippingInfo,
		Images:       r.Images,
		Categories:   r.Categories,
		Price:        r.Price,
		Quantity:     r.Quantity,
		Status:       status,
	}
}

// NewProductResponse maps a product model to its API shape.
func NewProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Description:  p.Description,
		Size:         p.Size,
		Material:     p.Material,
		Warranty:     p.Warranty,
		ShippingInfo: p.ShippingInfo,
		Images:       p.Images,
		Categories:   p.Categories,
		Price:        p.Price,
		Quantity:     p.Quantity,
		Sold:         p.Sold,
		Status:       string(p.Status),
		StatusLabel:  p.StatusLabel(),
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

// NewProductResponses maps a slice of product models.
func NewProductResponses(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProductResponse(&products[i]))
	}
	return out
}
