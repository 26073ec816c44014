package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
)

type cartRepository struct {
	storage *Storage
}

func (r *cartRepository) Upsert(ctx context.Context, userID, productID, quantity int64) error {
	const query = `INSERT INTO carts (user_id, product_id, quantity)
                   VALUES ($1, $2, $3)
                   ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = carts.quantity + EXCLUDED.quantity`
	_, err := r.storage.pool.Exec(ctx, query, userID, productID, quantity)
	return err
}

func (r *cartRepository) Get(ctx context.Context, userID int64) ([]model.CartItem, error) {
	const query = `SELECT c.user_id, c.product_id, c.quantity, c.created_at, ` + productColumns + `
                   FROM carts c JOIN products p ON p.id = c.product_id
                   WHERE c.user_id=$1 ORDER BY c.created_at`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		var item model.CartItem
		var p model.Product
		if err := rows.Scan(&item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt,
			&p.ID, &p.Name, &p.SKU, &p.Description, &p.Size, &p.Material, &p.Warranty,
			&p.ShippingInfo, &p.Images, &p.Categories, &p.Price, &p.Quantity, &p.Sold, &p.Status,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		item.Product = &p
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) GetItem(ctx context.Context, userID, productID int64) (*model.CartItem, error) {
	const query = `SELECT user_id, product_id, quantity, created_at FROM carts WHERE user_id=$1 AND product_id=$2`
	var item model.CartItem
	err := r.storage.pool.QueryRow(ctx, query, userID, productID).
		Scan(&item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) SetQuantity(ctx context.Context, userID, productID, quantity int64) error {
	tag, err := r.storage.pool.Exec(ctx,
		`UPDATE carts SET quantity=$3 WHERE user_id=$1 AND product_id=$2`, userID, productID, quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Remove(ctx context.Context, userID, productID int64) error {
	tag, err := r.storage.pool.Exec(ctx,
		`DELETE FROM carts WHERE user_id=$1 AND product_id=$2`, userID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) RemoveMany(ctx context.Context, userID int64, productIDs []int64) error {
	if len(productIDs) == 0 {
		return nil
	}
	_, err := r.storage.pool.Exec(ctx,
		`DELETE FROM carts WHERE user_id=$1 AND product_id = ANY($2)`, userID, productIDs)
	return err
}

func (r *cartRepository) Clear(ctx context.Context, userID int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM carts WHERE user_id=$1`, userID)
	return err
}
