package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
	testhelpers "github.com/vantran-dev/storefront/internal/test"
)

func completedOrderWithProduct(productID int64) testhelpers.OrderRepoStub {
	return testhelpers.OrderRepoStub{
		ByIDForUserFn: func(_ context.Context, id, userID int64) (*model.Order, error) {
			return &model.Order{
				ID:     id,
				UserID: userID,
				Status: model.OrderStatusCompleted,
				Items:  []model.OrderItem{{ProductID: productID, Quantity: 1, Price: 10}},
			}, nil
		},
	}
}

func TestReviewCreateAcceptsPurchasedProduct(t *testing.T) {
	uc := NewReviewUseCase(testhelpers.ReviewRepoStub{}, completedOrderWithProduct(5))

	review, err := uc.Create(context.Background(), model.Review{UserID: 7, OrderID: 1, ProductID: 5, Rating: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.ID == 0 {
		t.Fatalf("expected stored review with id")
	}
}

func TestReviewCreateRejectsRatingOutOfRange(t *testing.T) {
	uc := NewReviewUseCase(testhelpers.ReviewRepoStub{}, completedOrderWithProduct(5))

	for _, rating := range []int{0, 6, -1} {
		if _, err := uc.Create(context.Background(), model.Review{UserID: 7, OrderID: 1, ProductID: 5, Rating: rating}); !errors.Is(err, domainErrors.ErrInvalidInput) {
			t.Fatalf("rating %d: expected ErrInvalidInput, got %v", rating, err)
		}
	}
}

func TestReviewCreateRejectsIncompleteOrder(t *testing.T) {
	orders := testhelpers.OrderRepoStub{
		ByIDForUserFn: func(_ context.Context, id, userID int64) (*model.Order, error) {
			return &model.Order{
				ID:     id,
				UserID: userID,
				Status: model.OrderStatusShipping,
				Items:  []model.OrderItem{{ProductID: 5}},
			}, nil
		},
	}
	uc := NewReviewUseCase(testhelpers.ReviewRepoStub{}, orders)

	if _, err := uc.Create(context.Background(), model.Review{UserID: 7, OrderID: 1, ProductID: 5, Rating: 4}); !errors.Is(err, domainErrors.ErrReviewWithoutPurchase) {
		t.Fatalf("expected ErrReviewWithoutPurchase, got %v", err)
	}
}

func TestReviewCreateRejectsForeignProduct(t *testing.T) {
	uc := NewReviewUseCase(testhelpers.ReviewRepoStub{}, completedOrderWithProduct(5))

	if _, err := uc.Create(context.Background(), model.Review{UserID: 7, OrderID: 1, ProductID: 99, Rating: 4}); !errors.Is(err, domainErrors.ErrReviewWithoutPurchase) {
		t.Fatalf("expected ErrReviewWithoutPurchase, got %v", err)
	}
}

func TestReviewCreateRejectsForeignOrder(t *testing.T) {
	orders := testhelpers.OrderRepoStub{
		ByIDForUserFn: func(context.Context, int64, int64) (*model.Order, error) {
			return nil, domainErrors.ErrNotFound
		},
	}
	uc := NewReviewUseCase(testhelpers.ReviewRepoStub{}, orders)

	if _, err := uc.Create(context.Background(), model.Review{UserID: 7, OrderID: 1, ProductID: 5, Rating: 4}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReviewCreatePropagatesDuplicate(t *testing.T) {
	reviews := testhelpers.ReviewRepoStub{
		CreateFn: func(context.Context, *model.Review) (*model.Review, error) {
			return nil, domainErrors.ErrAlreadyExists
		},
	}
	uc := NewReviewUseCase(reviews, completedOrderWithProduct(5))

	if _, err := uc.Create(context.Background(), model.Review{UserID: 7, OrderID: 1, ProductID: 5, Rating: 4}); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestReviewUpdateRejectsOtherOwner(t *testing.T) {
	reviews := testhelpers.ReviewRepoStub{
		ByIDFn: func(_ context.Context, id int64) (*model.Review, error) {
			return &model.Review{ID: id, UserID: 42, Rating: 3}, nil
		},
	}
	uc := NewReviewUseCase(reviews, testhelpers.OrderRepoStub{})

	if _, err := uc.Update(context.Background(), model.Review{ID: 1, UserID: 7, Rating: 4}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign review, got %v", err)
	}
}
