package repository

import (
	"context"

	"github.com/vantran-dev/storefront/internal/domain/model"
)

// VoucherRepository describes persistence operations for vouchers.
// Redemption during checkout happens inside OrderRepository.Create so the
// usage decrement shares the order transaction.
type VoucherRepository interface {
	Create(ctx context.Context, v *model.Voucher) (*model.Voucher, error)
	Update(ctx context.Context, v *model.Voucher) (*model.Voucher, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Voucher, error)
	List(ctx context.Context, search string, offset, limit int) ([]model.Voucher, int64, error)
	ListActive(ctx context.Context) ([]model.Voucher, error)
}
