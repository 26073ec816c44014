package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
	"github.com/vantran-dev/storefront/internal/pkg/pagination"
)

// CatalogUseCase covers products and categories.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories}
}

// CreateProduct validates and stores a new product.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if err := validateProduct(&product); err != nil {
		return nil, err
	}
	return u.products.Create(ctx, &product)
}

// UpdateProduct replaces the stored product with the given one.
func (u *CatalogUseCase) UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if product.ID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	if err := validateProduct(&product); err != nil {
		return nil, err
	}
	return u.products.Update(ctx, &product)
}

// DeleteProduct removes a product by id.
func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}

// Product returns a single product.
func (u *CatalogUseCase) Product(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// Products returns a filtered page of products.
func (u *CatalogUseCase) Products(ctx context.Context, filter repository.ProductFilter, page, limit int) (*pagination.Page[model.Product], error) {
	page, limit = pagination.Normalize(page, limit)
	products, total, err := u.products.List(ctx, filter, pagination.Offset(page, limit), limit)
	if err != nil {
		return nil, err
	}
	result := pagination.New(page, limit, total, products)
	return &result, nil
}

// CreateCategory stores a new category.
func (u *CatalogUseCase) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.categories.Create(ctx, &category)
}

// UpdateCategory renames an existing category.
func (u *CatalogUseCase) UpdateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	category.Name = strings.TrimSpace(category.Name)
	if category.ID <= 0 || category.Name == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.categories.Update(ctx, &category)
}

// DeleteCategory removes a category by id.
func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return u.categories.Delete(ctx, id)
}

// Category returns a single category.
func (u *CatalogUseCase) Category(ctx context.Context, id int64) (*model.Category, error) {
	return u.categories.GetByID(ctx, id)
}

// Categories returns all categories matching the search term, unpaginated.
func (u *CatalogUseCase) Categories(ctx context.Context, search string) ([]model.Category, error) {
	return u.categories.List(ctx, search)
}

func validateProduct(product *model.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	product.SKU = strings.TrimSpace(product.SKU)
	if product.Name == "" || product.SKU == "" || product.Price < 0 || product.Quantity < 0 {
		return domainErrors.ErrInvalidInput
	}
	return nil
}
