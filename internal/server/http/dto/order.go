package dto

import (
	"time"

	"github.com/vantran-dev/storefront/internal/app"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
)

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	Items           []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	VoucherID       *int64            `json:"voucherId"`
	ShippingAddress string            `json:"shippingAddress" binding:"required"`
	PaymentMethod   string            `json:"paymentMethod" binding:"required"`
	Note            string            `json:"note"`
}

// UpdateOrderStatusRequest carries the administrative transition target.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemResponse is one immutable order line.
type OrderItemResponse struct {
	ProductID int64   `json:"productId"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
	Reviewed  bool    `json:"reviewed"`
}

// OrderResponse is the API representation of an order.
type OrderResponse struct {
	ID              int64               `json:"id"`
	UserID          int64               `json:"userId"`
	UserEmail       string              `json:"userEmail,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	VoucherID       *int64              `json:"voucherId,omitempty"`
	TotalPrice      float64             `json:"totalPrice"`
	Status          string              `json:"status"`
	ShippingAddress string              `json:"shippingAddress"`
	PaymentMethod   string              `json:"paymentMethod"`
	Note            string              `json:"note,omitempty"`
	CreatedAt       string              `json:"createdAt"`
}

// BankInfoResponse is the transfer destination for bank_transfer orders.
type BankInfoResponse struct {
	BankName        string  `json:"bankName"`
	BankNumber      string  `json:"bankNumber"`
	BankAccountName string  `json:"bankAccountName"`
	TotalPrice      float64 `json:"totalPrice"`
}

// CheckoutResponse is the order plus optional payment instructions.
type CheckoutResponse struct {
	Order    OrderResponse     `json:"order"`
	BankInfo *BankInfoResponse `json:"bankInfo,omitempty"`
}

// Params converts the checkout payload into repository parameters.
func (r CreateOrderRequest) Params(userID int64) repository.CreateOrderParams {
	items := make([]repository.OrderItemRequest, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, repository.OrderItemRequest{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return repository.CreateOrderParams{
		UserID:          userID,
		Items:           items,
		VoucherID:       r.VoucherID,
		ShippingAddress: r.ShippingAddress,
		PaymentMethod:   model.PaymentMethod(r.PaymentMethod),
		Note:            r.Note,
	}
}

// NewOrderResponse maps an order model to its API shape.
func NewOrderResponse(o *model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Reviewed:  item.Reviewed,
		})
	}
	return OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		UserEmail:       o.UserEmail,
		Items:           items,
		VoucherID:       o.VoucherID,
		TotalPrice:      o.TotalPrice,
		Status:          string(o.Status),
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   string(o.PaymentMethod),
		Note:            o.Note,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
	}
}

// NewOrderResponses maps a slice of order models.
func NewOrderResponses(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	return out
}

// NewCheckoutResponse maps a checkout result, attaching bank instructions
// when present.
func NewCheckoutResponse(result *app.CheckoutResult) CheckoutResponse {
	resp := CheckoutResponse{Order: NewOrderResponse(result.Order)}
	if result.BankInfo != nil {
		resp.BankInfo = &BankInfoResponse{
			BankName:        result.BankInfo.BankName,
			BankNumber:      result.BankInfo.BankNumber,
			BankAccountName: result.BankInfo.AccountHolder,
			TotalPrice:      result.BankInfo.TotalPrice,
		}
	}
	return resp
}
