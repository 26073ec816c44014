package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
)

type reviewRepository struct {
	storage *Storage
}

const reviewColumns = `id, user_id, order_id, product_id, rating, content, created_at, updated_at`

func (r *reviewRepository) Create(ctx context.Context, rv *model.Review) (*model.Review, error) {
	const query = `INSERT INTO reviews (user_id, order_id, product_id, rating, content)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at, updated_at`
	created := *rv
	err := r.storage.pool.QueryRow(ctx, query, rv.UserID, rv.OrderID, rv.ProductID, rv.Rating, rv.Content).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *reviewRepository) Update(ctx context.Context, rv *model.Review) (*model.Review, error) {
	const query = `UPDATE reviews SET rating=$3, content=$4, updated_at=NOW()
                   WHERE id=$1 AND user_id=$2
                   RETURNING ` + reviewColumns
	return scanReview(r.storage.pool.QueryRow(ctx, query, rv.ID, rv.UserID, rv.Rating, rv.Content))
}

func (r *reviewRepository) Delete(ctx context.Context, id, userID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM reviews WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id=$1`
	return scanReview(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID int64, offset, limit int) ([]model.Review, int64, error) {
	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE product_id=$1`, productID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE product_id=$1 ORDER BY created_at DESC OFFSET $2 LIMIT $3`
	rows, err := r.storage.pool.Query(ctx, query, productID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *rv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func scanReview(row pgx.Row) (*model.Review, error) {
	var rv model.Review
	err := row.Scan(&rv.ID, &rv.UserID, &rv.OrderID, &rv.ProductID, &rv.Rating, &rv.Content,
		&rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}
