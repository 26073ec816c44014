package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
)

type voucherRepository struct {
	storage *Storage
}

const voucherColumns = `id, code, name, discount, is_percentage, min_order_value,
                        quantity, is_active, expiry_date, created_at, updated_at`

func (r *voucherRepository) Create(ctx context.Context, v *model.Voucher) (*model.Voucher, error) {
	const query = `INSERT INTO vouchers (code, name, discount, is_percentage, min_order_value, quantity, is_active, expiry_date)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING id, created_at, updated_at`
	created := *v
	err := r.storage.pool.QueryRow(ctx, query,
		v.Code, v.Name, v.Discount, v.IsPercentage, v.MinOrderValue, v.Quantity, v.IsActive, v.ExpiryDate,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *voucherRepository) Update(ctx context.Context, v *model.Voucher) (*model.Voucher, error) {
	const query = `UPDATE vouchers SET
                   code=$2, name=$3, discount=$4, is_percentage=$5, min_order_value=$6,
                   quantity=$7, is_active=$8, expiry_date=$9, updated_at=NOW()
                   WHERE id=$1
                   RETURNING ` + voucherColumns
	return scanVoucher(r.storage.pool.QueryRow(ctx, query,
		v.ID, v.Code, v.Name, v.Discount, v.IsPercentage, v.MinOrderValue,
		v.Quantity, v.IsActive, v.ExpiryDate))
}

func (r *voucherRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM vouchers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *voucherRepository) GetByID(ctx context.Context, id int64) (*model.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE id=$1`
	return scanVoucher(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *voucherRepository) List(ctx context.Context, search string, offset, limit int) ([]model.Voucher, int64, error) {
	where := ``
	args := []any{}
	if search != "" {
		where = ` WHERE name ILIKE $1 OR code ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM vouchers`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + voucherColumns + ` FROM vouchers` + where + ` ORDER BY created_at DESC`
	if search != "" {
		query += ` OFFSET $2 LIMIT $3`
	} else {
		query += ` OFFSET $1 LIMIT $2`
	}
	args = append(args, offset, limit)

	result, err := r.queryVouchers(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *voucherRepository) ListActive(ctx context.Context) ([]model.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers
              WHERE is_active AND quantity > 0 AND (expiry_date IS NULL OR expiry_date > NOW())
              ORDER BY created_at DESC`
	return r.queryVouchers(ctx, query)
}

func (r *voucherRepository) queryVouchers(ctx context.Context, query string, args ...any) ([]model.Voucher, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Voucher
	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanVoucher(row pgx.Row) (*model.Voucher, error) {
	var v model.Voucher
	err := row.Scan(&v.ID, &v.Code, &v.Name, &v.Discount, &v.IsPercentage, &v.MinOrderValue,
		&v.Quantity, &v.IsActive, &v.ExpiryDate, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}
