package dto

import (
	"time"

	"github.com/vantran-dev/storefront/internal/domain/model"
)

// VoucherRequest carries voucher fields for create and update.
type VoucherRequest struct {
	Code          string     `json:"code" binding:"required"`
	Name          string     `json:"name"`
	Discount      float64    `json:"discount" binding:"min=0"`
	IsPercentage  bool       `json:"isPercentage"`
	MinOrderValue float64    `json:"minOrderValue" binding:"min=0"`
	Quantity      int64      `json:"quantity" binding:"min=0"`
	IsActive      bool       `json:"isActive"`
	ExpiryDate    *time.Time `json:"expiryDate"`
}

// VoucherResponse is the API representation of a voucher.
type VoucherResponse struct {
	ID            int64      `json:"id"`
	Code          string     `json:"code"`
	Name          string     `json:"name"`
	Discount      float64    `json:"discount"`
	IsPercentage  bool       `json:"isPercentage"`
	MinOrderValue float64    `json:"minOrderValue"`
	Quantity      int64      `json:"quantity"`
	IsActive      bool       `json:"isActive"`
	ExpiryDate    *time.Time `json:"expiryDate,omitempty"`
}

// ApplyVoucherRequest previews a voucher against an existing order.
type ApplyVoucherRequest struct {
	OrderID   int64 `json:"orderId" binding:"required"`
	VoucherID int64 `json:"voucherId" binding:"required"`
}

// ApplyVoucherResponse reports the discounted total.
type ApplyVoucherResponse struct {
	TotalPrice float64 `json:"totalPrice"`
}

// Model converts the request into a voucher model.
func (r VoucherRequest) Model() model.Voucher {
	return model.Voucher{
		Code:          r.Code,
		Name:          r.Name,
		Discount:      r.Discount,
		IsPercentage:  r.IsPercentage,
		MinOrderValue: r.MinOrderValue,
		Quantity:      r.Quantity,
		IsActive:      r.IsActive,
		ExpiryDate:    r.ExpiryDate,
	}
}

// NewVoucherResponse maps a voucher model to its API shape.
func NewVoucherResponse(v *model.Voucher) VoucherResponse {
	return VoucherResponse{
		ID:            v.ID,
		Code:          v.Code,
		Name:          v.Name,
		Discount:      v.Discount,
		IsPercentage:  v.IsPercentage,
		MinOrderValue: v.MinOrderValue,
		Quantity:      v.Quantity,
		IsActive:      v.IsActive,
		ExpiryDate:    v.ExpiryDate,
	}
}

// NewVoucherResponses maps a slice of voucher models.
func NewVoucherResponses(vouchers []model.Voucher) []VoucherResponse {
	out := make([]VoucherResponse, 0, len(vouchers))
	for i := range vouchers {
		out = append(out, NewVoucherResponse(&vouchers[i]))
	}
	return out
}
