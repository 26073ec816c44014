package dto

import (
	"time"

	"github.com/vantran-dev/storefront/internal/domain/model"
)

// CreateReviewRequest submits a rating for a purchased product.
type CreateReviewRequest struct {
	OrderID   int64  `json:"orderId" binding:"required"`
	ProductID int64  `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Content   string `json:"content"`
}

// UpdateReviewRequest edits an existing review.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Content string `json:"content"`
}

// ReviewResponse is the API representation of a review.
type ReviewResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	OrderID   int64  `json:"orderId"`
	ProductID int64  `json:"productId"`
	Rating    int    `json:"rating"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// Model converts the create request into a review model.
func (r CreateReviewRequest) Model(userID int64) model.Review {
	return model.Review{
		UserID:    userID,
		OrderID:   r.OrderID,
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Content:   r.Content,
	}
}

// NewReviewResponse maps a review model to its API shape.
func NewReviewResponse(r *model.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		OrderID:   r.OrderID,
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Content:   r.Content,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

// NewReviewResponses maps a slice of review models.
func NewReviewResponses(reviews []model.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewResponse(&reviews[i]))
	}
	return out
}
