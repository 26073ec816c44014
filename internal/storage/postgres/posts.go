package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
)

type postRepository struct {
	storage *Storage
}

const postColumns = `id, title, content, images, tags, created_at, updated_at`

func (r *postRepository) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	const query = `INSERT INTO posts (title, content, images, tags) VALUES ($1, $2, $3, $4)
                   RETURNING id, created_at, updated_at`
	created := *p
	err := r.storage.pool.QueryRow(ctx, query, p.Title, p.Content, p.Images, p.Tags).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *postRepository) Update(ctx context.Context, p *model.Post) (*model.Post, error) {
	const query = `UPDATE posts SET title=$2, content=$3, images=$4, tags=$5, updated_at=NOW()
                   WHERE id=$1
                   RETURNING ` + postColumns
	return scanPost(r.storage.pool.QueryRow(ctx, query, p.ID, p.Title, p.Content, p.Images, p.Tags))
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id=$1`
	return scanPost(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *postRepository) List(ctx context.Context, offset, limit int) ([]model.Post, int64, error) {
	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC OFFSET $1 LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Post
	for rows.Next() {
		p, err := scanPost(rows)
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

func scanPost(row pgx.Row) (*model.Post, error) {
	var p model.Post
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Images, &p.Tags, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
