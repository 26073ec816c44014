package usecase

import (
	"context"
	"time"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
)

// StatsUseCase produces per-day administrative statistics.
type StatsUseCase struct {
	users    repository.UserRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
}

// NewStatsUseCase constructs StatsUseCase.
func NewStatsUseCase(users repository.UserRepository, products repository.ProductRepository, orders repository.OrderRepository) *StatsUseCase {
	return &StatsUseCase{users: users, products: products, orders: orders}
}

// NewUsers returns the number of accounts registered on each day of the month.
func (u *StatsUseCase) NewUsers(ctx context.Context, month, year int) ([]model.DailyCount, error) {
	if err := validateMonth(month, year); err != nil {
		return nil, err
	}
	counts, err := u.users.CountCreatedPerDay(ctx, month, year)
	if err != nil {
		return nil, err
	}
	return fillDays(counts, month, year), nil
}

// NewProducts returns the number of products created on each day of the month.
func (u *StatsUseCase) NewProducts(ctx context.Context, month, year int) ([]model.DailyCount, error) {
	if err := validateMonth(month, year); err != nil {
		return nil, err
	}
	counts, err := u.products.CountCreatedPerDay(ctx, month, year)
	if err != nil {
		return nil, err
	}
	return fillDays(counts, month, year), nil
}

// Revenue returns the completed-order revenue for each day of the month.
func (u *StatsUseCase) Revenue(ctx context.Context, month, year int) ([]model.DailyCount, error) {
	if err := validateMonth(month, year); err != nil {
		return nil, err
	}
	sums, err := u.orders.SumCompletedPerDay(ctx, month, year)
	if err != nil {
		return nil, err
	}
	return fillDays(sums, month, year), nil
}

func validateMonth(month, year int) error {
	if month < 1 || month > 12 || year < 1 {
		return domainErrors.ErrInvalidInput
	}
	return nil
}

// fillDays expands a sparse day map into one entry per calendar day so
// charts render gap-free.
func fillDays(values map[int]float64, month, year int) []model.DailyCount {
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	out := make([]model.DailyCount, 0, last)
	for day := 1; day <= last; day++ {
		out = append(out, model.DailyCount{Day: day, Count: values[day]})
	}
	return out
}
