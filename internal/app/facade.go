package app

import (
	"context"

	"github.com/vantran-dev/storefront/internal/config"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
	"github.com/vantran-dev/storefront/internal/pkg/auth"
	"github.com/vantran-dev/storefront/internal/pkg/pagination"
	"github.com/vantran-dev/storefront/internal/usecase"
)

// BankInfo is the transfer destination returned with bank_transfer orders.
type BankInfo struct {
	BankName      string
	BankNumber    string
	AccountHolder string
	TotalPrice    float64
}

// CheckoutResult is a placed order plus payment instructions when the
// chosen method requires them.
type CheckoutResult struct {
	Order    *model.Order
	BankInfo *BankInfo
}

// StorefrontFacade is the single application surface the HTTP layer talks to.
type StorefrontFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	cart     *usecase.CartUseCase
	orders   *usecase.OrderUseCase
	vouchers *usecase.VoucherUseCase
	reviews  *usecase.ReviewUseCase
	content  *usecase.ContentUseCase
	stats    *usecase.StatsUseCase
	bank     config.BankAccount
}

func NewStorefrontFacade(
	authUC *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	vouchers *usecase.VoucherUseCase,
	reviews *usecase.ReviewUseCase,
	content *usecase.ContentUseCase,
	stats *usecase.StatsUseCase,
	cfg *config.Config,
) *StorefrontFacade {
	return &StorefrontFacade{
		auth:     authUC,
		catalog:  catalog,
		cart:     cart,
		orders:   orders,
		vouchers: vouchers,
		reviews:  reviews,
		content:  content,
		stats:    stats,
		bank:     cfg.Bank,
	}
}

func (f *StorefrontFacade) Register(ctx context.Context, email, name, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, name, password)
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StorefrontFacade) VerifyToken(token string) (*auth.Principal, error) {
	return f.auth.VerifyToken(token)
}

func (f *StorefrontFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *StorefrontFacade) Products(ctx context.Context, filter repository.ProductFilter, page, limit int) (*pagination.Page[model.Product], error) {
	return f.catalog.Products(ctx, filter, page, limit)
}

func (f *StorefrontFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Product(ctx, id)
}

func (f *StorefrontFacade) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, product)
}

func (f *StorefrontFacade) UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	return f.catalog.UpdateProduct(ctx, product)
}

func (f *StorefrontFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.catalog.DeleteProduct(ctx, id)
}

func (f *StorefrontFacade) Categories(ctx context.Context, search string) ([]model.Category, error) {
	return f.catalog.Categories(ctx, search)
}

func (f *StorefrontFacade) Category(ctx context.Context, id int64) (*model.Category, error) {
	return f.catalog.Category(ctx, id)
}

func (f *StorefrontFacade) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	return f.catalog.CreateCategory(ctx, category)
}

func (f *StorefrontFacade) UpdateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	return f.catalog.UpdateCategory(ctx, category)
}

func (f *StorefrontFacade) DeleteCategory(ctx context.Context, id int64) error {
	return f.catalog.DeleteCategory(ctx, id)
}

func (f *StorefrontFacade) Cart(ctx context.Context, userID int64) ([]model.CartItem, error) {
	return f.cart.Items(ctx, userID)
}

func (f *StorefrontFacade) AddToCart(ctx context.Context, userID int64, items []repository.OrderItemRequest) ([]model.CartItem, error) {
	return f.cart.AddItems(ctx, userID, items)
}

func (f *StorefrontFacade) UpdateCartItem(ctx context.Context, userID, productID, quantity int64) ([]model.CartItem, error) {
	return f.cart.UpdateItem(ctx, userID, productID, quantity)
}

func (f *StorefrontFacade) RemoveCartItem(ctx context.Context, userID, productID int64) ([]model.CartItem, error) {
	return f.cart.RemoveItem(ctx, userID, productID)
}

func (f *StorefrontFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.cart.Clear(ctx, userID)
}

// PlaceOrder runs checkout and, for bank transfers, attaches the transfer
// destination so the client can show payment instructions.
func (f *StorefrontFacade) PlaceOrder(ctx context.Context, params repository.CreateOrderParams) (*CheckoutResult, error) {
	order, err := f.orders.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	result := &CheckoutResult{Order: order}
	if order.PaymentMethod == model.PaymentBankTransfer {
		result.BankInfo = &BankInfo{
			BankName:      f.bank.Name,
			BankNumber:    f.bank.Number,
			AccountHolder: f.bank.AccountHolder,
			TotalPrice:    order.TotalPrice,
		}
	}
	return result, nil
}

func (f *StorefrontFacade) MyOrders(ctx context.Context, userID int64, page, limit int) (*pagination.Page[model.Order], error) {
	return f.orders.ListByUser(ctx, userID, page, limit)
}

func (f *StorefrontFacade) AllOrders(ctx context.Context, page, limit int) (*pagination.Page[model.Order], error) {
	return f.orders.List(ctx, page, limit)
}

func (f *StorefrontFacade) OrderDetail(ctx context.Context, orderID int64) (*model.Order, error) {
	return f.orders.Detail(ctx, orderID)
}

func (f *StorefrontFacade) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, orderID, status)
}

func (f *StorefrontFacade) CancelOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return f.orders.Cancel(ctx, userID, orderID)
}

func (f *StorefrontFacade) ConfirmOrderReceived(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return f.orders.ConfirmReceived(ctx, userID, orderID)
}

func (f *StorefrontFacade) Vouchers(ctx context.Context, search string, page, limit int) (*pagination.Page[model.Voucher], error) {
	return f.vouchers.Vouchers(ctx, search, page, limit)
}

func (f *StorefrontFacade) Voucher(ctx context.Context, id int64) (*model.Voucher, error) {
	return f.vouchers.Voucher(ctx, id)
}

func (f *StorefrontFacade) AvailableVouchers(ctx context.Context) ([]model.Voucher, error) {
	return f.vouchers.Available(ctx)
}

func (f *StorefrontFacade) CreateVoucher(ctx context.Context, voucher model.Voucher) (*model.Voucher, error) {
	return f.vouchers.Create(ctx, voucher)
}

func (f *StorefrontFacade) UpdateVoucher(ctx context.Context, voucher model.Voucher) (*model.Voucher, error) {
	return f.vouchers.Update(ctx, voucher)
}

func (f *StorefrontFacade) DeleteVoucher(ctx context.Context, id int64) error {
	return f.vouchers.Delete(ctx, id)
}

func (f *StorefrontFacade) PreviewVoucher(ctx context.Context, orderID, voucherID int64) (float64, error) {
	return f.vouchers.Preview(ctx, orderID, voucherID)
}

func (f *StorefrontFacade) CreateReview(ctx context.Context, review model.Review) (*model.Review, error) {
	return f.reviews.Create(ctx, review)
}

func (f *StorefrontFacade) UpdateReview(ctx context.Context, review model.Review) (*model.Review, error) {
	return f.reviews.Update(ctx, review)
}

func (f *StorefrontFacade) DeleteReview(ctx context.Context, id, userID int64) error {
	return f.reviews.Delete(ctx, id, userID)
}

func (f *StorefrontFacade) ProductReviews(ctx context.Context, productID int64, page, limit int) (*pagination.Page[model.Review], error) {
	return f.reviews.ByProduct(ctx, productID, page, limit)
}

func (f *StorefrontFacade) Posts(ctx context.Context, page, limit int) (*pagination.Page[model.Post], error) {
	return f.content.Posts(ctx, page, limit)
}

func (f *StorefrontFacade) Post(ctx context.Context, id int64) (*model.Post, error) {
	return f.content.Post(ctx, id)
}

func (f *StorefrontFacade) CreatePost(ctx context.Context, post model.Post) (*model.Post, error) {
	return f.content.CreatePost(ctx, post)
}

func (f *StorefrontFacade) UpdatePost(ctx context.Context, post model.Post) (*model.Post, error) {
	return f.content.UpdatePost(ctx, post)
}

func (f *StorefrontFacade) DeletePost(ctx context.Context, id int64) error {
	return f.content.DeletePost(ctx, id)
}

func (f *StorefrontFacade) NewUserStats(ctx context.Context, month, year int) ([]model.DailyCount, error) {
	return f.stats.NewUsers(ctx, month, year)
}

func (f *StorefrontFacade) NewProductStats(ctx context.Context, month, year int) ([]model.DailyCount, error) {
	return f.stats.NewProducts(ctx, month, year)
}

func (f *StorefrontFacade) RevenueStats(ctx context.Context, month, year int) ([]model.DailyCount, error) {
	return f.stats.Revenue(ctx, month, year)
}
