package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
	"github.com/vantran-dev/storefront/internal/pkg/pagination"
)

// VoucherUseCase manages discount vouchers.
type VoucherUseCase struct {
	vouchers repository.VoucherRepository
	orders   repository.OrderRepository
}

// NewVoucherUseCase constructs VoucherUseCase.
func NewVoucherUseCase(vouchers repository.VoucherRepository, orders repository.OrderRepository) *VoucherUseCase {
	return &VoucherUseCase{vouchers: vouchers, orders: orders}
}

// Create validates and stores a new voucher.
func (u *VoucherUseCase) Create(ctx context.Context, voucher model.Voucher) (*model.Voucher, error) {
	if err := validateVoucher(&voucher); err != nil {
		return nil, err
	}
	return u.vouchers.Create(ctx, &voucher)
}

// Update replaces a stored voucher.
func (u *VoucherUseCase) Update(ctx context.Context, voucher model.Voucher) (*model.Voucher, error) {
	if voucher.ID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	if err := validateVoucher(&voucher); err != nil {
		return nil, err
	}
	return u.vouchers.Update(ctx, &voucher)
}

// Delete removes a voucher by id.
func (u *VoucherUseCase) Delete(ctx context.Context, id int64) error {
	return u.vouchers.Delete(ctx, id)
}

// Voucher returns a single voucher.
func (u *VoucherUseCase) Voucher(ctx context.Context, id int64) (*model.Voucher, error) {
	return u.vouchers.GetByID(ctx, id)
}

// Vouchers returns a page of vouchers matching the search term.
func (u *VoucherUseCase) Vouchers(ctx context.Context, search string, page, limit int) (*pagination.Page[model.Voucher], error) {
	page, limit = pagination.Normalize(page, limit)
	vouchers, total, err := u.vouchers.List(ctx, search, pagination.Offset(page, limit), limit)
	if err != nil {
		return nil, err
	}
	result := pagination.New(page, limit, total, vouchers)
	return &result, nil
}

// Available returns vouchers that can currently be redeemed.
func (u *VoucherUseCase) Available(ctx context.Context) ([]model.Voucher, error) {
	return u.vouchers.ListActive(ctx)
}

// Preview reports the total an existing order would have paid with the
// voucher applied. The voucher quantity is not consumed.
func (u *VoucherUseCase) Preview(ctx context.Context, orderID, voucherID int64) (float64, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return 0, err
	}

	voucher, err := u.vouchers.GetByID(ctx, voucherID)
	if err != nil {
		return 0, err
	}
	if !voucher.Usable(timeNow()) {
		return 0, domainErrors.ErrVoucherInactive
	}
	if order.TotalPrice < voucher.MinOrderValue {
		return 0, domainErrors.ErrVoucherMinNotMet
	}

	return order.TotalPrice - voucher.DiscountFor(order.TotalPrice), nil
}

func validateVoucher(voucher *model.Voucher) error {
	voucher.Code = strings.TrimSpace(voucher.Code)
	if voucher.Code == "" || voucher.Discount < 0 || voucher.Quantity < 0 || voucher.MinOrderValue < 0 {
		return domainErrors.ErrInvalidInput
	}
	if voucher.IsPercentage && voucher.Discount > 100 {
		return domainErrors.ErrInvalidInput
	}
	return nil
}
