package dto

import "github.com/vantran-dev/storefront/internal/domain/model"

// CategoryRequest carries category fields for create and update.
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CategoryResponse is the API representation of a category.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Model converts the request into a category model.
func (r CategoryRequest) Model() model.Category {
	return model.Category{Name: r.Name, Description: r.Description}
}

// NewCategoryResponse maps a category model to its API shape.
func NewCategoryResponse(c *model.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

// NewCategoryResponses maps a slice of category models.
func NewCategoryResponses(categories []model.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, NewCategoryResponse(&categories[i]))
	}
	return out
}
