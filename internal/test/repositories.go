package test

import (
	"context"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
)

// UserRepoStub provides controllable account persistence behaviour.
type UserRepoStub struct {
	CreateFn  func(context.Context, string, string, string, model.Role) (*model.User, error)
	ByEmailFn func(context.Context, string) (*model.User, error)
	ByIDFn    func(context.Context, int64) (*model.User, error)
	PerDayFn  func(context.Context, int, int) (map[int]float64, error)
}

func (s UserRepoStub) Create(ctx context.Context, email, name, hash string, role model.Role) (*model.User, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, email, name, hash, role)
	}
	return &model.User{ID: 1, Email: email, Name: name, PasswordHash: hash, Role: role, Active: true}, nil
}

func (s UserRepoStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.ByEmailFn != nil {
		return s.ByEmailFn(ctx, email)
	}
	return nil, domainErrors.ErrNotFound
}

func (s UserRepoStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.ByIDFn != nil {
		return s.ByIDFn(ctx, id)
	}
	return &model.User{ID: id, Email: "user@example.com", Role: model.RoleCustomer, Active: true}, nil
}

func (s UserRepoStub) CountCreatedPerDay(ctx context.Context, month, year int) (map[int]float64, error) {
	if s.PerDayFn != nil {
		return s.PerDayFn(ctx, month, year)
	}
	return map[int]float64{}, nil
}

// ProductRepoStub provides controllable catalog persistence behaviour.
type ProductRepoStub struct {
	CreateFn func(context.Context, *model.Product) (*model.Product, error)
	UpdateFn func(context.Context, *model.Product) (*model.Product, error)
	DeleteFn func(context.Context, int64) error
	ByIDFn   func(context.Context, int64) (*model.Product, error)
	ListFn   func(context.Context, repository.ProductFilter, int, int) ([]model.Product, int64, error)
	AdjustFn func(context.Context, int64, int64) error
	PerDayFn func(context.Context, int, int) (map[int]float64, error)
}

func (s ProductRepoStub) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, p)
	}
	out := *p
	out.ID = 1
	return &out, nil
}

func (s ProductRepoStub) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, p)
	}
	return p, nil
}

func (s ProductRepoStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s ProductRepoStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.ByIDFn != nil {
		return s.ByIDFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "product", Price: 10, Quantity: 100}, nil
}

func (s ProductRepoStub) List(ctx context.Context, filter repository.ProductFilter, offset, limit int) ([]model.Product, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (s ProductRepoStub) AdjustQuantity(ctx context.Context, id int64, delta int64) error {
	if s.AdjustFn != nil {
		return s.AdjustFn(ctx, id, delta)
	}
	return nil
}

func (s ProductRepoStub) CountCreatedPerDay(ctx context.Context, month, year int) (map[int]float64, error) {
	if s.PerDayFn != nil {
		return s.PerDayFn(ctx, month, year)
	}
	return map[int]float64{}, nil
}

// CategoryRepoStub provides controllable category persistence behaviour.
type CategoryRepoStub struct {
	CreateFn func(context.Context, *model.Category) (*model.Category, error)
	UpdateFn func(context.Context, *model.Category) (*model.Category, error)
	DeleteFn func(context.Context, int64) error
	ByIDFn   func(context.Context, int64) (*model.Category, error)
	ListFn   func(context.Context, string) ([]model.Category, error)
}

func (s CategoryRepoStub) Create(ctx context.Context, c *model.Category) (*model.Category, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, c)
	}
	out := *c
	out.ID = 1
	return &out, nil
}

func (s CategoryRepoStub) Update(ctx context.Context, c *model.Category) (*model.Category, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, c)
	}
	return c, nil
}

func (s CategoryRepoStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s CategoryRepoStub) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	if s.ByIDFn != nil {
		return s.ByIDFn(ctx, id)
	}
	return &model.Category{ID: id, Name: "category"}, nil
}

func (s CategoryRepoStub) List(ctx context.Context, search string) ([]model.Category, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, search)
	}
	return nil, nil
}

// VoucherRepoStub provides controllable voucher persistence behaviour.
type VoucherRepoStub struct {
	CreateFn func(context.Context, *model.Voucher) (*model.Voucher, error)
	UpdateFn func(context.Context, *model.Voucher) (*model.Voucher, error)
	DeleteFn func(context.Context, int64) error
	ByIDFn   func(context.Context, int64) (*model.Voucher, error)
	ListFn   func(context.Context, string, int, int) ([]model.Voucher, int64, error)
	ActiveFn func(context.Context) ([]model.Voucher, error)
}

func (s VoucherRepoStub) Create(ctx context.Context, v *model.Voucher) (*model.Voucher, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, v)
	}
	out := *v
	out.ID = 1
	return &out, nil
}

func (s VoucherRepoStub) Update(ctx context.Context, v *model.Voucher) (*model.Voucher, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, v)
	}
	return v, nil
}

func (s VoucherRepoStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s VoucherRepoStub) GetByID(ctx context.Context, id int64) (*model.Voucher, error) {
	if s.ByIDFn != nil {
		return s.ByIDFn(ctx, id)
	}
	return &model.Voucher{ID: id, Code: "CODE", IsActive: true, Quantity: 1}, nil
}

func (s VoucherRepoStub) List(ctx context.Context, search string, offset, limit int) ([]model.Voucher, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, search, offset, limit)
	}
	return nil, 0, nil
}

func (s VoucherRepoStub) ListActive(ctx context.Context) ([]model.Voucher, error) {
	if s.ActiveFn != nil {
		return s.ActiveFn(ctx)
	}
	return nil, nil
}

// OrderRepoStub provides controllable order persistence behaviour.
type OrderRepoStub struct {
	CreateFn       func(context.Context, repository.CreateOrderParams) (*model.Order, error)
	ByIDFn         func(context.Context, int64) (*model.Order, error)
	ByIDForUserFn  func(context.Context, int64, int64) (*model.Order, error)
	ListByUserFn   func(context.Context, int64, int, int) ([]model.Order, int64, error)
	ListFn         func(context.Context, int, int) ([]model.Order, int64, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, model.OrderStatus, bool) (*model.Order, error)
	PerDayFn       func(context.Context, int, int) (map[int]float64, error)
}

func (s OrderRepoStub) Create(ctx context.Context, params repository.CreateOrderParams) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, params)
	}
	items := make([]model.OrderItem, 0, len(params.Items))
	for _, item := range params.Items {
		items = append(items, model.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity, Price: 10})
	}
	return &model.Order{
		ID:              1,
		UserID:          params.UserID,
		Items:           items,
		VoucherID:       params.VoucherID,
		Status:          model.OrderStatusPending,
		ShippingAddress: params.ShippingAddress,
		PaymentMethod:   params.PaymentMethod,
		Note:            params.Note,
	}, nil
}

func (s OrderRepoStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.ByIDFn != nil {
		return s.ByIDFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusPending}, nil
}

func (s OrderRepoStub) GetByIDForUser(ctx context.Context, id, userID int64) (*model.Order, error) {
	if s.ByIDForUserFn != nil {
		return s.ByIDForUserFn(ctx, id, userID)
	}
	return &model.Order{ID: id, UserID: userID, Status: model.OrderStatusPending}, nil
}

func (s OrderRepoStub) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]model.Order, int64, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID, offset, limit)
	}
	return nil, 0, nil
}

func (s OrderRepoStub) List(ctx context.Context, offset, limit int) ([]model.Order, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (s OrderRepoStub) UpdateStatus(ctx context.Context, id int64, from, to model.OrderStatus, markSold bool) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, from, to, markSold)
	}
	return &model.Order{ID: id, Status: to}, nil
}

func (s OrderRepoStub) SumCompletedPerDay(ctx context.Context, month, year int) (map[int]float64, error) {
	if s.PerDayFn != nil {
		return s.PerDayFn(ctx, month, year)
	}
	return map[int]float64{}, nil
}

// CartRepoStub provides controllable cart persistence behaviour.
type CartRepoStub struct {
	UpsertFn     func(context.Context, int64, int64, int64) error
	GetFn        func(context.Context, int64) ([]model.CartItem, error)
	GetItemFn    func(context.Context, int64, int64) (*model.CartItem, error)
	SetFn        func(context.Context, int64, int64, int64) error
	RemoveFn     func(context.Context, int64, int64) error
	RemoveManyFn func(context.Context, int64, []int64) error
	ClearFn      func(context.Context, int64) error
}

func (s CartRepoStub) Upsert(ctx context.Context, userID, productID, quantity int64) error {
	if s.UpsertFn != nil {
		return s.UpsertFn(ctx, userID, productID, quantity)
	}
	return nil
}

func (s CartRepoStub) Get(ctx context.Context, userID int64) ([]model.CartItem, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID)
	}
	return nil, nil
}

func (s CartRepoStub) GetItem(ctx context.Context, userID, productID int64) (*model.CartItem, error) {
	if s.GetItemFn != nil {
		return s.GetItemFn(ctx, userID, productID)
	}
	return &model.CartItem{UserID: userID, ProductID: productID, Quantity: 1}, nil
}

func (s CartRepoStub) SetQuantity(ctx context.Context, userID, productID, quantity int64) error {
	if s.SetFn != nil {
		return s.SetFn(ctx, userID, productID, quantity)
	}
	return nil
}

func (s CartRepoStub) Remove(ctx context.Context, userID, productID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, productID)
	}
	return nil
}

func (s CartRepoStub) RemoveMany(ctx context.Context, userID int64, productIDs []int64) error {
	if s.RemoveManyFn != nil {
		return s.RemoveManyFn(ctx, userID, productIDs)
	}
	return nil
}

func (s CartRepoStub) Clear(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	return nil
}

// ReviewRepoStub provides controllable review persistence behaviour.
type ReviewRepoStub struct {
	CreateFn        func(context.Context, *model.Review) (*model.Review, error)
	UpdateFn        func(context.Context, *model.Review) (*model.Review, error)
	DeleteFn        func(context.Context, int64, int64) error
	ByIDFn          func(context.Context, int64) (*model.Review, error)
	ListByProductFn func(context.Context, int64, int, int) ([]model.Review, int64, error)
}

func (s ReviewRepoStub) Create(ctx context.Context, r *model.Review) (*model.Review, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, r)
	}
	out := *r
	out.ID = 1
	return &out, nil
}

func (s ReviewRepoStub) Update(ctx context.Context, r *model.Review) (*model.Review, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, r)
	}
	return r, nil
}

func (s ReviewRepoStub) Delete(ctx context.Context, id, userID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id, userID)
	}
	return nil
}

func (s ReviewRepoStub) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	if s.ByIDFn != nil {
		return s.ByIDFn(ctx, id)
	}
	return &model.Review{ID: id, UserID: 1, Rating: 5}, nil
}

func (s ReviewRepoStub) ListByProduct(ctx context.Context, productID int64, offset, limit int) ([]model.Review, int64, error) {
	if s.ListByProductFn != nil {
		return s.ListByProductFn(ctx, productID, offset, limit)
	}
	return nil, 0, nil
}

// PostRepoStub provides controllable blog persistence behaviour.
type PostRepoStub struct {
	CreateFn func(context.Context, *model.Post) (*model.Post, error)
	UpdateFn func(context.Context, *model.Post) (*model.Post, error)
	DeleteFn func(context.Context, int64) error
	ByIDFn   func(context.Context, int64) (*model.Post, error)
	ListFn   func(context.Context, int, int) ([]model.Post, int64, error)
}

func (s PostRepoStub) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, p)
	}
	out := *p
	out.ID = 1
	return &out, nil
}

func (s PostRepoStub) Update(ctx context.Context, p *model.Post) (*model.Post, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, p)
	}
	return p, nil
}

func (s PostRepoStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s PostRepoStub) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	if s.ByIDFn != nil {
		return s.ByIDFn(ctx, id)
	}
	return &model.Post{ID: id, Title: "post"}, nil
}

func (s PostRepoStub) List(ctx context.Context, offset, limit int) ([]model.Post, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, offset, limit)
	}
	return nil, 0, nil
}
