package facades

import (
	"context"

	"github.com/vantran-dev/storefront/internal/app"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
	pkgAuth "github.com/vantran-dev/storefront/internal/pkg/auth"
	"github.com/vantran-dev/storefront/internal/pkg/pagination"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	VerifyTokenFn  func(string) (*pkgAuth.Principal, error)
	ProfileFn      func(context.Context, int64) (*model.User, error)
}

// Register delegates to the override or returns a default customer.
func (s AuthFacadeStub) Register(ctx context.Context, email, name, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, name, password)
	}
	return &model.User{ID: 1, Email: email, Name: name, Role: model.RoleCustomer, Active: true}, "token", nil
}

// Authenticate delegates to the override or returns a default customer.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleCustomer, Active: true}, "token", nil
}

// VerifyToken resolves bearer tokens for the auth middleware.
func (s AuthFacadeStub) VerifyToken(token string) (*pkgAuth.Principal, error) {
	if s.VerifyTokenFn != nil {
		return s.VerifyTokenFn(token)
	}
	return &pkgAuth.Principal{UserID: 1, Role: model.RoleCustomer}, nil
}

// Profile returns the configured or default account.
func (s AuthFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Email: "user@example.com", Role: model.RoleCustomer, Active: true}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceOrderFn           func(context.Context, repository.CreateOrderParams) (*app.CheckoutResult, error)
	MyOrdersFn             func(context.Context, int64, int, int) (*pagination.Page[model.Order], error)
	AllOrdersFn            func(context.Context, int, int) (*pagination.Page[model.Order], error)
	OrderDetailFn          func(context.Context, int64) (*model.Order, error)
	UpdateOrderStatusFn    func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	CancelOrderFn          func(context.Context, int64, int64) (*model.Order, error)
	ConfirmOrderReceivedFn func(context.Context, int64, int64) (*model.Order, error)
}

func defaultOrder(id, userID int64) *model.Order {
	return &model.Order{
		ID:              id,
		UserID:          userID,
		TotalPrice:      20,
		Status:          model.OrderStatusPending,
		ShippingAddress: "12 Main St",
		PaymentMethod:   model.PaymentCashOnDelivery,
	}
}

// PlaceOrder delegates to the override or returns a default checkout result.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, params repository.CreateOrderParams) (*app.CheckoutResult, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, params)
	}
	return &app.CheckoutResult{Order: defaultOrder(1, params.UserID)}, nil
}

// MyOrders returns the configured or default page.
func (s OrderFacadeStub) MyOrders(ctx context.Context, userID int64, page, limit int) (*pagination.Page[model.Order], error) {
	if s.MyOrdersFn != nil {
		return s.MyOrdersFn(ctx, userID, page, limit)
	}
	result := pagination.New(page, limit, 1, []model.Order{*defaultOrder(1, userID)})
	return &result, nil
}

// AllOrders returns the configured or default page.
func (s OrderFacadeStub) AllOrders(ctx context.Context, page, limit int) (*pagination.Page[model.Order], error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx, page, limit)
	}
	result := pagination.New(page, limit, 1, []model.Order{*defaultOrder(1, 7)})
	return &result, nil
}

// OrderDetail returns the configured or default order.
func (s OrderFacadeStub) OrderDetail(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.OrderDetailFn != nil {
		return s.OrderDetailFn(ctx, orderID)
	}
	return defaultOrder(orderID, 7), nil
}

// UpdateOrderStatus delegates to the override or echoes the target status.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, orderID, status)
	}
	order := defaultOrder(orderID, 7)
	order.Status = status
	return order, nil
}

// CancelOrder delegates to the override or returns a cancelled order.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, userID, orderID)
	}
	order := defaultOrder(orderID, userID)
	order.Status = model.OrderStatusCancelled
	return order, nil
}

// ConfirmOrderReceived delegates to the override or returns a completed order.
func (s OrderFacadeStub) ConfirmOrderReceived(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.ConfirmOrderReceivedFn != nil {
		return s.ConfirmOrderReceivedFn(ctx, userID, orderID)
	}
	order := defaultOrder(orderID, userID)
	order.Status = model.OrderStatusCompleted
	return order, nil
}

// CartFacadeStub provides controllable behaviour for cart endpoints.
type CartFacadeStub struct {
	CartFn           func(context.Context, int64) ([]model.CartItem, error)
	AddToCartFn      func(context.Context, int64, []repository.OrderItemRequest) ([]model.CartItem, error)
	UpdateCartItemFn func(context.Context, int64, int64, int64) ([]model.CartItem, error)
	RemoveCartItemFn func(context.Context, int64, int64) ([]model.CartItem, error)
	ClearCartFn      func(context.Context, int64) error
}

func defaultCart(userID int64) []model.CartItem {
	return []model.CartItem{{UserID: userID, ProductID: 1, Quantity: 2, Product: &model.Product{ID: 1, Name: "Chair", Price: 10}}}
}

// Cart returns the configured or default cart lines.
func (s CartFacadeStub) Cart(ctx context.Context, userID int64) ([]model.CartItem, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return defaultCart(userID), nil
}

// AddToCart delegates to the override or returns the default cart.
func (s CartFacadeStub) AddToCart(ctx context.Context, userID int64, items []repository.OrderItemRequest) ([]model.CartItem, error) {
	if s.AddToCartFn != nil {
		return s.AddToCartFn(ctx, userID, items)
	}
	return defaultCart(userID), nil
}

// UpdateCartItem delegates to the override or returns the default cart.
func (s CartFacadeStub) UpdateCartItem(ctx context.Context, userID, productID, quantity int64) ([]model.CartItem, error) {
	if s.UpdateCartItemFn != nil {
		return s.UpdateCartItemFn(ctx, userID, productID, quantity)
	}
	return defaultCart(userID), nil
}

// RemoveCartItem delegates to the override or returns an empty cart.
func (s CartFacadeStub) RemoveCartItem(ctx context.Context, userID, productID int64) ([]model.CartItem, error) {
	if s.RemoveCartItemFn != nil {
		return s.RemoveCartItemFn(ctx, userID, productID)
	}
	return []model.CartItem{}, nil
}

// ClearCart delegates to the override or succeeds.
func (s CartFacadeStub) ClearCart(ctx context.Context, userID int64) error {
	if s.ClearCartFn != nil {
		return s.ClearCartFn(ctx, userID)
	}
	return nil
}

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	ProductsFn       func(context.Context, repository.ProductFilter, int, int) (*pagination.Page[model.Product], error)
	ProductFn        func(context.Context, int64) (*model.Product, error)
	CreateProductFn  func(context.Context, model.Product) (*model.Product, error)
	UpdateProductFn  func(context.Context, model.Product) (*model.Product, error)
	DeleteProductFn  func(context.Context, int64) error
	CategoriesFn     func(context.Context, string) ([]model.Category, error)
	CategoryFn       func(context.Context, int64) (*model.Category, error)
	CreateCategoryFn func(context.Context, model.Category) (*model.Category, error)
	UpdateCategoryFn func(context.Context, model.Category) (*model.Category, error)
	DeleteCategoryFn func(context.Context, int64) error
}

// Products returns the configured or default catalog page.
func (s CatalogFacadeStub) Products(ctx context.Context, filter repository.ProductFilter, page, limit int) (*pagination.Page[model.Product], error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, filter, page, limit)
	}
	result := pagination.New(page, limit, 1, []model.Product{{ID: 1, Name: "Chair", Price: 10}})
	return &result, nil
}

// Product returns the configured or default product.
func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Chair", Price: 10}, nil
}

// CreateProduct delegates to the override or echoes the product.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	product.ID = 1
	return &product, nil
}

// UpdateProduct delegates to the override or echoes the product.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, product)
	}
	return &product, nil
}

// DeleteProduct delegates to the override or succeeds.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

// Categories returns the configured or default list.
func (s CatalogFacadeStub) Categories(ctx context.Context, search string) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx, search)
	}
	return []model.Category{{ID: 1, Name: "Chairs"}}, nil
}

// Category returns the configured or default category.
func (s CatalogFacadeStub) Category(ctx context.Context, id int64) (*model.Category, error) {
	if s.CategoryFn != nil {
		return s.CategoryFn(ctx, id)
	}
	return &model.Category{ID: id, Name: "Chairs"}, nil
}

// CreateCategory delegates to the override or echoes the category.
func (s CatalogFacadeStub) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, category)
	}
	category.ID = 1
	return &category, nil
}

// UpdateCategory delegates to the override or echoes the category.
func (s CatalogFacadeStub) UpdateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	if s.UpdateCategoryFn != nil {
		return s.UpdateCategoryFn(ctx, category)
	}
	return &category, nil
}

// DeleteCategory delegates to the override or succeeds.
func (s CatalogFacadeStub) DeleteCategory(ctx context.Context, id int64) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

// VoucherFacadeStub provides controllable behaviour for voucher endpoints.
type VoucherFacadeStub struct {
	VouchersFn          func(context.Context, string, int, int) (*pagination.Page[model.Voucher], error)
	VoucherFn           func(context.Context, int64) (*model.Voucher, error)
	AvailableVouchersFn func(context.Context) ([]model.Voucher, error)
	CreateVoucherFn     func(context.Context, model.Voucher) (*model.Voucher, error)
	UpdateVoucherFn     func(context.Context, model.Voucher) (*model.Voucher, error)
	DeleteVoucherFn     func(context.Context, int64) error
	PreviewVoucherFn    func(context.Context, int64, int64) (float64, error)
}

// Vouchers returns the configured or default page.
func (s VoucherFacadeStub) Vouchers(ctx context.Context, search string, page, limit int) (*pagination.Page[model.Voucher], error) {
	if s.VouchersFn != nil {
		return s.VouchersFn(ctx, search, page, limit)
	}
	result := pagination.New(page, limit, 1, []model.Voucher{{ID: 1, Code: "SAVE5", Discount: 5, IsActive: true}})
	return &result, nil
}

// Voucher returns the configured or default voucher.
func (s VoucherFacadeStub) Voucher(ctx context.Context, id int64) (*model.Voucher, error) {
	if s.VoucherFn != nil {
		return s.VoucherFn(ctx, id)
	}
	return &model.Voucher{ID: id, Code: "SAVE5", Discount: 5, IsActive: true}, nil
}

// AvailableVouchers returns the configured or default list.
func (s VoucherFacadeStub) AvailableVouchers(ctx context.Context) ([]model.Voucher, error) {
	if s.AvailableVouchersFn != nil {
		return s.AvailableVouchersFn(ctx)
	}
	return []model.Voucher{{ID: 1, Code: "SAVE5", Discount: 5, IsActive: true}}, nil
}

// CreateVoucher delegates to the override or echoes the voucher.
func (s VoucherFacadeStub) CreateVoucher(ctx context.Context, voucher model.Voucher) (*model.Voucher, error) {
	if s.CreateVoucherFn != nil {
		return s.CreateVoucherFn(ctx, voucher)
	}
	voucher.ID = 1
	return &voucher, nil
}

// UpdateVoucher delegates to the override or echoes the voucher.
func (s VoucherFacadeStub) UpdateVoucher(ctx context.Context, voucher model.Voucher) (*model.Voucher, error) {
	if s.UpdateVoucherFn != nil {
		return s.UpdateVoucherFn(ctx, voucher)
	}
	return &voucher, nil
}

// DeleteVoucher delegates to the override or succeeds.
func (s VoucherFacadeStub) DeleteVoucher(ctx context.Context, id int64) error {
	if s.DeleteVoucherFn != nil {
		return s.DeleteVoucherFn(ctx, id)
	}
	return nil
}

// PreviewVoucher delegates to the override or returns a fixed total.
func (s VoucherFacadeStub) PreviewVoucher(ctx context.Context, orderID, voucherID int64) (float64, error) {
	if s.PreviewVoucherFn != nil {
		return s.PreviewVoucherFn(ctx, orderID, voucherID)
	}
	return 15, nil
}

// ReviewFacadeStub provides controllable behaviour for review endpoints.
type ReviewFacadeStub struct {
	CreateReviewFn   func(context.Context, model.Review) (*model.Review, error)
	UpdateReviewFn   func(context.Context, model.Review) (*model.Review, error)
	DeleteReviewFn   func(context.Context, int64, int64) error
	ProductReviewsFn func(context.Context, int64, int, int) (*pagination.Page[model.Review], error)
}

// CreateReview delegates to the override or echoes the review.
func (s ReviewFacadeStub) CreateReview(ctx context.Context, review model.Review) (*model.Review, error) {
	if s.CreateReviewFn != nil {
		return s.CreateReviewFn(ctx, review)
	}
	review.ID = 1
	return &review, nil
}

// UpdateReview delegates to the override or echoes the review.
func (s ReviewFacadeStub) UpdateReview(ctx context.Context, review model.Review) (*model.Review, error) {
	if s.UpdateReviewFn != nil {
		return s.UpdateReviewFn(ctx, review)
	}
	return &review, nil
}

// DeleteReview delegates to the override or succeeds.
func (s ReviewFacadeStub) DeleteReview(ctx context.Context, id, userID int64) error {
	if s.DeleteReviewFn != nil {
		return s.DeleteReviewFn(ctx, id, userID)
	}
	return nil
}

// ProductReviews returns the configured or default page.
func (s ReviewFacadeStub) ProductReviews(ctx context.Context, productID int64, page, limit int) (*pagination.Page[model.Review], error) {
	if s.ProductReviewsFn != nil {
		return s.ProductReviewsFn(ctx, productID, page, limit)
	}
	result := pagination.New(page, limit, 1, []model.Review{{ID: 1, ProductID: productID, Rating: 5, Content: "Great"}})
	return &result, nil
}

// ContentFacadeStub provides controllable behaviour for blog endpoints.
type ContentFacadeStub struct {
	PostsFn      func(context.Context, int, int) (*pagination.Page[model.Post], error)
	PostFn       func(context.Context, int64) (*model.Post, error)
	CreatePostFn func(context.Context, model.Post) (*model.Post, error)
	UpdatePostFn func(context.Context, model.Post) (*model.Post, error)
	DeletePostFn func(context.Context, int64) error
}

// Posts returns the configured or default page.
func (s ContentFacadeStub) Posts(ctx context.Context, page, limit int) (*pagination.Page[model.Post], error) {
	if s.PostsFn != nil {
		return s.PostsFn(ctx, page, limit)
	}
	result := pagination.New(page, limit, 1, []model.Post{{ID: 1, Title: "Care guide", Content: "Oil the wood"}})
	return &result, nil
}

// Post returns the configured or default post.
func (s ContentFacadeStub) Post(ctx context.Context, id int64) (*model.Post, error) {
	if s.PostFn != nil {
		return s.PostFn(ctx, id)
	}
	return &model.Post{ID: id, Title: "Care guide", Content: "Oil the wood"}, nil
}

// CreatePost delegates to the override or echoes the post.
func (s ContentFacadeStub) CreatePost(ctx context.Context, post model.Post) (*model.Post, error) {
	if s.CreatePostFn != nil {
		return s.CreatePostFn(ctx, post)
	}
	post.ID = 1
	return &post, nil
}

// UpdatePost delegates to the override or echoes the post.
func (s ContentFacadeStub) UpdatePost(ctx context.Context, post model.Post) (*model.Post, error) {
	if s.UpdatePostFn != nil {
		return s.UpdatePostFn(ctx, post)
	}
	return &post, nil
}

// DeletePost delegates to the override or succeeds.
func (s ContentFacadeStub) DeletePost(ctx context.Context, id int64) error {
	if s.DeletePostFn != nil {
		return s.DeletePostFn(ctx, id)
	}
	return nil
}

// StatsFacadeStub provides controllable behaviour for statistic endpoints.
type StatsFacadeStub struct {
	NewUserStatsFn    func(context.Context, int, int) ([]model.DailyCount, error)
	NewProductStatsFn func(context.Context, int, int) ([]model.DailyCount, error)
	RevenueStatsFn    func(context.Context, int, int) ([]model.DailyCount, error)
}

// NewUserStats returns the configured or default series.
func (s StatsFacadeStub) NewUserStats(ctx context.Context, month, year int) ([]model.DailyCount, error) {
	if s.NewUserStatsFn != nil {
		return s.NewUserStatsFn(ctx, month, year)
	}
	return []model.DailyCount{{Day: 1, Count: 2}}, nil
}

// NewProductStats returns the configured or default series.
func (s StatsFacadeStub) NewProductStats(ctx context.Context, month, year int) ([]model.DailyCount, error) {
	if s.NewProductStatsFn != nil {
		return s.NewProductStatsFn(ctx, month, year)
	}
	return []model.DailyCount{{Day: 1, Count: 1}}, nil
}

// RevenueStats returns the configured or default series.
func (s StatsFacadeStub) RevenueStats(ctx context.Context, month, year int) ([]model.DailyCount, error) {
	if s.RevenueStatsFn != nil {
		return s.RevenueStatsFn(ctx, month, year)
	}
	return []model.DailyCount{{Day: 1, Count: 199.5}}, nil
}

// StorefrontFacadeStub aggregates every facade stub for router level tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	OrderFacadeStub
	VoucherFacadeStub
	ReviewFacadeStub
	ContentFacadeStub
	StatsFacadeStub
}
