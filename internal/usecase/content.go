package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
	"github.com/vantran-dev/storefront/internal/pkg/pagination"
)

// ContentUseCase manages blog posts.
type ContentUseCase struct {
	posts repository.PostRepository
}

// NewContentUseCase constructs ContentUseCase.
func NewContentUseCase(posts repository.PostRepository) *ContentUseCase {
	return &ContentUseCase{posts: posts}
}

// CreatePost validates and stores a new post.
func (u *ContentUseCase) CreatePost(ctx context.Context, post model.Post) (*model.Post, error) {
	if err := validatePost(&post); err != nil {
		return nil, err
	}
	return u.posts.Create(ctx, &post)
}

// UpdatePost replaces a stored post.
func (u *ContentUseCase) UpdatePost(ctx context.Context, post model.Post) (*model.Post, error) {
	if post.ID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	if err := validatePost(&post); err != nil {
		return nil, err
	}
	return u.posts.Update(ctx, &post)
}

// DeletePost removes a post by id.
func (u *ContentUseCase) DeletePost(ctx context.Context, id int64) error {
	return u.posts.Delete(ctx, id)
}

// Post returns a single post.
func (u *ContentUseCase) Post(ctx context.Context, id int64) (*model.Post, error) {
	return u.posts.GetByID(ctx, id)
}

// Posts returns a page of posts, newest first.
func (u *ContentUseCase) Posts(ctx context.Context, page, limit int) (*pagination.Page[model.Post], error) {
	page, limit = pagination.Normalize(page, limit)
	posts, total, err := u.posts.List(ctx, pagination.Offset(page, limit), limit)
	if err != nil {
		return nil, err
	}
	result := pagination.New(page, limit, total, posts)
	return &result, nil
}

func validatePost(post *model.Post) error {
	post.Title = strings.TrimSpace(post.Title)
	if post.Title == "" || strings.TrimSpace(post.Content) == "" {
		return domainErrors.ErrInvalidInput
	}
	return nil
}
