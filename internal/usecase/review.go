package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
	"github.com/vantran-dev/storefront/internal/pkg/pagination"
)

// ReviewUseCase manages product reviews. A review is only accepted for a
// product the caller received through a completed order.
type ReviewUseCase struct {
	reviews repository.ReviewRepository
	orders  repository.OrderRepository
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(reviews repository.ReviewRepository, orders repository.OrderRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, orders: orders}
}

// Create stores a review after verifying the purchase. One review per
// user, order and product; a duplicate reports ErrAlreadyExists.
func (u *ReviewUseCase) Create(ctx context.Context, review model.Review) (*model.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, domainErrors.ErrInvalidInput
	}

	order, err := u.orders.GetByIDForUser(ctx, review.OrderID, review.UserID)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusCompleted {
		return nil, domainErrors.ErrReviewWithoutPurchase
	}
	purchased := false
	for _, item := range order.Items {
		if item.ProductID == review.ProductID {
			purchased = true
			break
		}
	}
	if !purchased {
		return nil, domainErrors.ErrReviewWithoutPurchase
	}

	return u.reviews.Create(ctx, &review)
}

// Update edits the caller's own review.
func (u *ReviewUseCase) Update(ctx context.Context, review model.Review) (*model.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, domainErrors.ErrInvalidInput
	}

	existing, err := u.reviews.GetByID(ctx, review.ID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != review.UserID {
		return nil, domainErrors.ErrNotFound
	}

	existing.Rating = review.Rating
	existing.Content = strings.TrimSpace(review.Content)
	return u.reviews.Update(ctx, existing)
}

// Delete removes the caller's own review.
func (u *ReviewUseCase) Delete(ctx context.Context, id, userID int64) error {
	return u.reviews.Delete(ctx, id, userID)
}

// ByProduct returns a page of reviews for one product.
func (u *ReviewUseCase) ByProduct(ctx context.Context, productID int64, page, limit int) (*pagination.Page[model.Review], error) {
	page, limit = pagination.Normalize(page, limit)
	reviews, total, err := u.reviews.ListByProduct(ctx, productID, pagination.Offset(page, limit), limit)
	if err != nil {
		return nil, err
	}
	result := pagination.New(page, limit, total, reviews)
	return &result, nil
}
