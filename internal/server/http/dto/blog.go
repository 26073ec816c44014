package dto

import (
	"time"

	"github.com/vantran-dev/storefront/internal/domain/model"
)

// PostRequest carries blog post fields for create and update.
type PostRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Images  []string `json:"images"`
	Tags    []string `json:"tags"`
}

// PostResponse is the API representation of a blog post.
type PostResponse struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Images    []string `json:"images"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
}

// Model converts the request into a post model.
func (r PostRequest) Model() model.Post {
	return model.Post{Title: r.Title, Content: r.Content, Images: r.Images, Tags: r.Tags}
}

// NewPostResponse maps a post model to its API shape.
func NewPostResponse(p *model.Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Images:    p.Images,
		Tags:      p.Tags,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

// NewPostResponses maps a slice of post models.
func NewPostResponses(posts []model.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, NewPostResponse(&posts[i]))
	}
	return out
}
