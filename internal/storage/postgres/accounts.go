package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

const uniqueViolation = "23505"

func (r *userRepository) Create(ctx context.Context, email, name, passwordHash string, role model.Role) (*model.User, error) {
	const query = `INSERT INTO users (email, name, password_hash, role)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, active, created_at`
	u := model.User{Email: email, Name: name, PasswordHash: passwordHash, Role: role}
	err := r.storage.pool.QueryRow(ctx, query, email, name, passwordHash, role).Scan(&u.ID, &u.Active, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, name, password_hash, role, active, created_at FROM users WHERE email=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, name, password_hash, role, active, created_at FROM users WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanOne(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.Active, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) CountCreatedPerDay(ctx context.Context, month, year int) (map[int]float64, error) {
	const query = `SELECT EXTRACT(DAY FROM created_at)::INT AS day, COUNT(*)::DOUBLE PRECISION
                   FROM users WHERE created_at >= $1 AND created_at < $2
                   GROUP BY day ORDER BY day`
	return countPerDay(ctx, r.storage.pool, query, month, year)
}

// countPerDay runs a (day, value) aggregation over one calendar month.
func countPerDay(ctx context.Context, q querier, query string, month, year int) (map[int]float64, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int]float64)
	for rows.Next() {
		var day int
		var value float64
		if err := rows.Scan(&day, &value); err != nil {
			return nil, err
		}
		result[day] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
