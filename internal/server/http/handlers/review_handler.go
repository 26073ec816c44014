package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/pkg/pagination"
	"github.com/vantran-dev/storefront/internal/server/http/dto"
	"github.com/vantran-dev/storefront/internal/server/http/response"
)

// ReviewHandler serves product review endpoints.
type ReviewHandler struct {
	facade  ReviewFacade
	respond *response.Responder
}

// NewReviewHandler creates ReviewHandler instance.
func NewReviewHandler(facade ReviewFacade, respond *response.Responder) *ReviewHandler {
	return &ReviewHandler{facade: facade, respond: respond}
}

// Create handles POST /v1/review.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	principal := CurrentPrincipal(c)
	review, err := h.facade.CreateReview(c.Request.Context(), req.Model(principal.UserID))
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusCreated, "review created", dto.NewReviewResponse(review))
}

// Update handles PUT /v1/review/:id.
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid review id")
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	principal := CurrentPrincipal(c)
	review, err := h.facade.UpdateReview(c.Request.Context(), model.Review{
		ID:      id,
		UserID:  principal.UserID,
		Rating:  req.Rating,
		Content: req.Content,
	})
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "review updated", dto.NewReviewResponse(review))
}

// Delete handles DELETE /v1/review/:id.
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid review id")
		return
	}

	principal := CurrentPrincipal(c)
	if err := h.facade.DeleteReview(c.Request.Context(), id, principal.UserID); err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "review deleted", nil)
}

// ByProduct handles GET /v1/review/product/:id.
func (h *ReviewHandler) ByProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	page, limit := pageQuery(c)
	result, err := h.facade.ProductReviews(c.Request.Context(), id, page, limit)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "reviews", pagination.Remap(*result, dto.NewReviewResponses(result.Data)))
}
