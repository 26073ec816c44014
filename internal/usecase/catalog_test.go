package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
	testhelpers "github.com/vantran-dev/storefront/internal/test"
)

func validProduct() model.Product {
	return model.Product{Name: "Ceramic Mug", SKU: "MUG-01", Price: 9.5, Quantity: 40}
}

func TestCreateProductValidation(t *testing.T) {
	uc := NewCatalogUseCase(testhelpers.ProductRepoStub{}, testhelpers.CategoryRepoStub{})

	cases := []struct {
		name   string
		mutate func(*model.Product)
	}{
		{"blank name", func(p *model.Product) { p.Name = "  " }},
		{"blank sku", func(p *model.Product) { p.SKU = "" }},
		{"negative price", func(p *model.Product) { p.Price = -1 }},
		{"negative quantity", func(p *model.Product) { p.Quantity = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			product := validProduct()
			tc.mutate(&product)
			if _, err := uc.CreateProduct(context.Background(), product); !errors.Is(err, domainErrors.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateProductTrimsIdentifiers(t *testing.T) {
	var stored *model.Product
	products := testhelpers.ProductRepoStub{
		CreateFn: func(_ context.Context, p *model.Product) (*model.Product, error) {
			stored = p
			return p, nil
		},
	}
	uc := NewCatalogUseCase(products, testhelpers.CategoryRepoStub{})

	product := validProduct()
	product.Name = "  Ceramic Mug "
	product.SKU = " MUG-01 "
	if _, err := uc.CreateProduct(context.Background(), product); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Name != "Ceramic Mug" || stored.SKU != "MUG-01" {
		t.Fatalf("expected trimmed identifiers, got %q / %q", stored.Name, stored.SKU)
	}
}

func TestUpdateProductRequiresID(t *testing.T) {
	uc := NewCatalogUseCase(testhelpers.ProductRepoStub{}, testhelpers.CategoryRepoStub{})

	if _, err := uc.UpdateProduct(context.Background(), validProduct()); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing id, got %v", err)
	}

	product := validProduct()
	product.ID = 4
	updated, err := uc.UpdateProduct(context.Background(), product)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != 4 {
		t.Fatalf("expected id 4 preserved, got %d", updated.ID)
	}
}

func TestProductsNormalizesPagination(t *testing.T) {
	var gotOffset, gotLimit int
	products := testhelpers.ProductRepoStub{
		ListFn: func(_ context.Context, _ repository.ProductFilter, offset, limit int) ([]model.Product, int64, error) {
			gotOffset, gotLimit = offset, limit
			return []model.Product{{ID: 1}}, 21, nil
		},
	}
	uc := NewCatalogUseCase(products, testhelpers.CategoryRepoStub{})

	page, err := uc.Products(context.Background(), repository.ProductFilter{}, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotOffset != 0 || gotLimit != 10 {
		t.Fatalf("expected defaults offset=0 limit=10, got %d/%d", gotOffset, gotLimit)
	}
	if page.TotalItems != 21 || page.TotalPages != 3 || !page.HasNextPage {
		t.Fatalf("unexpected page envelope: %+v", page)
	}
}

func TestProductsPropagatesListError(t *testing.T) {
	boom := errors.New("boom")
	products := testhelpers.ProductRepoStub{
		ListFn: func(context.Context, repository.ProductFilter, int, int) ([]model.Product, int64, error) {
			return nil, 0, boom
		},
	}
	uc := NewCatalogUseCase(products, testhelpers.CategoryRepoStub{})

	if _, err := uc.Products(context.Background(), repository.ProductFilter{}, 1, 10); !errors.Is(err, boom) {
		t.Fatalf("expected list error, got %v", err)
	}
}

func TestCategoryValidation(t *testing.T) {
	uc := NewCatalogUseCase(testhelpers.ProductRepoStub{}, testhelpers.CategoryRepoStub{})

	if _, err := uc.CreateCategory(context.Background(), model.Category{Name: "   "}); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := uc.UpdateCategory(context.Background(), model.Category{Name: "Kitchen"}); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing id, got %v", err)
	}

	created, err := uc.CreateCategory(context.Background(), model.Category{Name: " Kitchen "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "Kitchen" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
}

func TestCategoriesPassesSearchTerm(t *testing.T) {
	var gotSearch string
	categories := testhelpers.CategoryRepoStub{
		ListFn: func(_ context.Context, search string) ([]model.Category, error) {
			gotSearch = search
			return []model.Category{{ID: 1, Name: "Kitchen"}}, nil
		},
	}
	uc := NewCatalogUseCase(testhelpers.ProductRepoStub{}, categories)

	listed, err := uc.Categories(context.Background(), "kit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotSearch != "kit" || len(listed) != 1 {
		t.Fatalf("unexpected result: search=%q listed=%v", gotSearch, listed)
	}
}
