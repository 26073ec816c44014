package handlers

import (
	"context"

	"github.com/vantran-dev/storefront/internal/app"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
	"github.com/vantran-dev/storefront/internal/pkg/auth"
	"github.com/vantran-dev/storefront/internal/pkg/pagination"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, name, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	VerifyToken(token string) (*auth.Principal, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
}

// CatalogFacade exposes product and category operations.
type CatalogFacade interface {
	Products(ctx context.Context, filter repository.ProductFilter, page, limit int) (*pagination.Page[model.Product], error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	Categories(ctx context.Context, search string) ([]model.Category, error)
	Category(ctx context.Context, id int64) (*model.Category, error)
	CreateCategory(ctx context.Context, category model.Category) (*model.Category, error)
	UpdateCategory(ctx context.Context, category model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// CartFacade exposes cart operations.
type CartFacade interface {
	Cart(ctx context.Context, userID int64) ([]model.CartItem, error)
	AddToCart(ctx context.Context, userID int64, items []repository.OrderItemRequest) ([]model.CartItem, error)
	UpdateCartItem(ctx context.Context, userID, productID, quantity int64) ([]model.CartItem, error)
	RemoveCartItem(ctx context.Context, userID, productID int64) ([]model.CartItem, error)
	ClearCart(ctx context.Context, userID int64) error
}

// OrderFacade exposes checkout and order lifecycle operations.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, params repository.CreateOrderParams) (*app.CheckoutResult, error)
	MyOrders(ctx context.Context, userID int64, page, limit int) (*pagination.Page[model.Order], error)
	AllOrders(ctx context.Context, page, limit int) (*pagination.Page[model.Order], error)
	OrderDetail(ctx context.Context, orderID int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
	CancelOrder(ctx context.Context, userID, orderID int64) (*model.Order, error)
	ConfirmOrderReceived(ctx context.Context, userID, orderID int64) (*model.Order, error)
}

// VoucherFacade exposes voucher operations.
type VoucherFacade interface {
	Vouchers(ctx context.Context, search string, page, limit int) (*pagination.Page[model.Voucher], error)
	Voucher(ctx context.Context, id int64) (*model.Voucher, error)
	AvailableVouchers(ctx context.Context) ([]model.Voucher, error)
	CreateVoucher(ctx context.Context, voucher model.Voucher) (*model.Voucher, error)
	UpdateVoucher(ctx context.Context, voucher model.Voucher) (*model.Voucher, error)
	DeleteVoucher(ctx context.Context, id int64) error
	PreviewVoucher(ctx context.Context, orderID, voucherID int64) (float64, error)
}

// ReviewFacade exposes review operations.
type ReviewFacade interface {
	CreateReview(ctx context.Context, review model.Review) (*model.Review, error)
	UpdateReview(ctx context.Context, review model.Review) (*model.Review, error)
	DeleteReview(ctx context.Context, id, userID int64) error
	ProductReviews(ctx context.Context, productID int64, page, limit int) (*pagination.Page[model.Review], error)
}

// ContentFacade exposes blog operations.
type ContentFacade interface {
	Posts(ctx context.Context, page, limit int) (*pagination.Page[model.Post], error)
	Post(ctx context.Context, id int64) (*model.Post, error)
	CreatePost(ctx context.Context, post model.Post) (*model.Post, error)
	UpdatePost(ctx context.Context, post model.Post) (*model.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

// StatsFacade exposes administrative statistics.
type StatsFacade interface {
	NewUserStats(ctx context.Context, month, year int) ([]model.DailyCount, error)
	NewProductStats(ctx context.Context, month, year int) ([]model.DailyCount, error)
	RevenueStats(ctx context.Context, month, year int) ([]model.DailyCount, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	OrderFacade
	VoucherFacade
	ReviewFacade
	ContentFacade
	StatsFacade
}
