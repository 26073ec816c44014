package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	testhelpers "github.com/vantran-dev/storefront/internal/test"
)

func TestStatsRejectsInvalidMonth(t *testing.T) {
	uc := NewStatsUseCase(testhelpers.UserRepoStub{}, testhelpers.ProductRepoStub{}, testhelpers.OrderRepoStub{})

	for _, month := range []int{0, 13, -1} {
		if _, err := uc.NewUsers(context.Background(), month, 2025); !errors.Is(err, domainErrors.ErrInvalidInput) {
			t.Fatalf("month %d: expected ErrInvalidInput, got %v", month, err)
		}
	}
}

func TestStatsFillsEveryDay(t *testing.T) {
	users := testhelpers.UserRepoStub{
		PerDayFn: func(context.Context, int, int) (map[int]float64, error) {
			return map[int]float64{3: 2, 15: 1}, nil
		},
	}
	uc := NewStatsUseCase(users, testhelpers.ProductRepoStub{}, testhelpers.OrderRepoStub{})

	counts, err := uc.NewUsers(context.Background(), 2, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 28 {
		t.Fatalf("february 2025 has 28 days, got %d entries", len(counts))
	}
	if counts[2].Count != 2 || counts[14].Count != 1 {
		t.Fatalf("sparse values not placed: %+v %+v", counts[2], counts[14])
	}
	if counts[0].Day != 1 || counts[27].Day != 28 {
		t.Fatalf("days must run 1..28, got %d..%d", counts[0].Day, counts[27].Day)
	}
}

func TestStatsLeapFebruary(t *testing.T) {
	uc := NewStatsUseCase(testhelpers.UserRepoStub{}, testhelpers.ProductRepoStub{}, testhelpers.OrderRepoStub{})

	counts, err := uc.NewUsers(context.Background(), 2, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 29 {
		t.Fatalf("february 2024 has 29 days, got %d", len(counts))
	}
}

func TestRevenueUsesCompletedSums(t *testing.T) {
	orders := testhelpers.OrderRepoStub{
		PerDayFn: func(_ context.Context, month, year int) (map[int]float64, error) {
			if month != 6 || year != 2025 {
				t.Fatalf("unexpected window %d/%d", month, year)
			}
			return map[int]float64{10: 199.5}, nil
		},
	}
	uc := NewStatsUseCase(testhelpers.UserRepoStub{}, testhelpers.ProductRepoStub{}, orders)

	sums, err := uc.Revenue(context.Background(), 6, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sums) != 30 || sums[9].Count != 199.5 {
		t.Fatalf("unexpected revenue series: len=%d day10=%+v", len(sums), sums[9])
	}
}
