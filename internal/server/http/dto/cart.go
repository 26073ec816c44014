package dto

import (
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
)

// CartItemRequest is one (product, quantity) pair to merge into the cart.
type CartItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int64 `json:"quantity" binding:"required,min=1"`
}

// AddToCartRequest merges one or more lines into the caller's cart.
type AddToCartRequest struct {
	Items []CartItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateCartItemRequest sets one cart line to an absolute quantity.
type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity" binding:"required,min=1"`
}

// CartItemResponse is one cart line with its resolved product.
type CartItemResponse struct {
	ProductID int64            `json:"productId"`
	Quantity  int64            `json:"quantity"`
	Product   *ProductResponse `json:"product,omitempty"`
}

// Requests converts cart lines to checkout item requests.
func (r AddToCartRequest) Requests() []repository.OrderItemRequest {
	out := make([]repository.OrderItemRequest, 0, len(r.Items))
	for _, item := range r.Items {
		out = append(out, repository.OrderItemRequest{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return out
}

// NewCartItemResponses maps cart lines to their API shape.
func NewCartItemResponses(items []model.CartItem) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		resp := CartItemResponse{ProductID: item.ProductID, Quantity: item.Quantity}
		if item.Product != nil {
			product := NewProductResponse(item.Product)
			resp.Product = &product
		}
		out = append(out, resp)
	}
	return out
}
