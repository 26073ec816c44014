package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
)

type productRepository struct {
	storage *Storage
}

type categoryRepository struct {
	storage *Storage
}

const productColumns = `id, name, sku, description, size, material, warranty, shipping_info,
                        images, categories, price, quantity, sold, status, created_at, updated_at`

func (r *productRepository) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products
                   (name, sku, description, size, material, warranty, shipping_info, images, categories, price, quantity, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
                   RETURNING id, sold, created_at, updated_at`
	created := *p
	if created.Status == "" {
		created.Status = model.ProductStatusActive
	}
	err := r.storage.pool.QueryRow(ctx, query,
		p.Name, p.SKU, p.Description, p.Size, p.Material, p.Warranty, p.ShippingInfo,
		p.Images, p.Categories, p.Price, p.Quantity, created.Status,
	).Scan(&created.ID, &created.Sold, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *productRepository) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	const query = `UPDATE products SET
                   name=$2, sku=$3, description=$4, size=$5, material=$6, warranty=$7,
                   shipping_info=$8, images=$9, categories=$10, price=$11, quantity=$12,
                   status=$13, updated_at=NOW()
                   WHERE id=$1
                   RETURNING ` + productColumns
	row := r.storage.pool.QueryRow(ctx, query,
		p.ID, p.Name, p.SKU, p.Description, p.Size, p.Material, p.Warranty,
		p.ShippingInfo, p.Images, p.Categories, p.Price, p.Quantity, p.Status,
	)
	return scanProduct(row)
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) List(ctx context.Context, filter repository.ProductFilter, offset, limit int) ([]model.Product, int64, error) {
	where := ` WHERE TRUE`
	args := []any{}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(` AND (name ILIKE $%d OR sku ILIKE $%d)`, len(args), len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where += fmt.Sprintf(` AND $%d = ANY(categories)`, len(args))
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, offset, limit)
	query := `SELECT ` + productColumns + ` FROM products` + where +
		fmt.Sprintf(` ORDER BY created_at DESC OFFSET $%d LIMIT $%d`, len(args)-1, len(args))

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *productRepository) AdjustQuantity(ctx context.Context, id int64, delta int64) error {
	const query = `UPDATE products SET quantity = quantity + $2, updated_at=NOW()
                   WHERE id=$1 AND quantity + $2 >= 0`
	tag, err := r.storage.pool.Exec(ctx, query, id, delta)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domainErrors.ErrInsufficientStock
	}
	return nil
}

func (r *productRepository) CountCreatedPerDay(ctx context.Context, month, year int) (map[int]float64, error) {
	const query = `SELECT EXTRACT(DAY FROM created_at)::INT AS day, COUNT(*)::DOUBLE PRECISION
                   FROM products WHERE created_at >= $1 AND created_at < $2
                   GROUP BY day ORDER BY day`
	return countPerDay(ctx, r.storage.pool, query, month, year)
}

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Description, &p.Size, &p.Material, &p.Warranty,
		&p.ShippingInfo, &p.Images, &p.Categories, &p.Price, &p.Quantity, &p.Sold, &p.Status,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// --- CategoryRepository implementation ---

func (r *categoryRepository) Create(ctx context.Context, c *model.Category) (*model.Category, error) {
	const query = `INSERT INTO categories (name, description) VALUES ($1, $2)
                   RETURNING id, created_at, updated_at`
	created := *c
	err := r.storage.pool.QueryRow(ctx, query, c.Name, c.Description).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *categoryRepository) Update(ctx context.Context, c *model.Category) (*model.Category, error) {
	const query = `UPDATE categories SET name=$2, description=$3, updated_at=NOW() WHERE id=$1
                   RETURNING id, name, description, created_at, updated_at`
	return scanCategory(r.storage.pool.QueryRow(ctx, query, c.ID, c.Name, c.Description))
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	const query = `SELECT id, name, description, created_at, updated_at FROM categories WHERE id=$1`
	return scanCategory(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *categoryRepository) List(ctx context.Context, search string) ([]model.Category, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM categories`
	args := []any{}
	if search != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY name`

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanCategory(row pgx.Row) (*model.Category, error) {
	var c model.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
