package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
	testhelpers "github.com/vantran-dev/storefront/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func validOrderParams() repository.CreateOrderParams {
	return repository.CreateOrderParams{
		UserID:          7,
		Items:           []repository.OrderItemRequest{{ProductID: 1, Quantity: 2}},
		ShippingAddress: "1 Main St",
		PaymentMethod:   model.PaymentCashOnDelivery,
	}
}

func TestOrderCreateRejectsInvalidInput(t *testing.T) {
	uc := NewOrderUseCase(testhelpers.UserRepoStub{}, testhelpers.OrderRepoStub{}, testhelpers.CartRepoStub{}, &testhelpers.NotifierStub{}, discardLogger())

	cases := []struct {
		name   string
		mutate func(*repository.CreateOrderParams)
	}{
		{"no items", func(p *repository.CreateOrderParams) { p.Items = nil }},
		{"zero quantity", func(p *repository.CreateOrderParams) { p.Items[0].Quantity = 0 }},
		{"negative quantity", func(p *repository.CreateOrderParams) { p.Items[0].Quantity = -1 }},
		{"missing address", func(p *repository.CreateOrderParams) { p.ShippingAddress = "" }},
		{"unknown payment method", func(p *repository.CreateOrderParams) { p.PaymentMethod = "wire" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := validOrderParams()
			tc.mutate(&params)
			if _, err := uc.Create(context.Background(), params); !errors.Is(err, domainErrors.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestOrderCreateRejectsInactiveAccount(t *testing.T) {
	users := testhelpers.UserRepoStub{
		ByIDFn: func(_ context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Active: false}, nil
		},
	}
	uc := NewOrderUseCase(users, testhelpers.OrderRepoStub{}, testhelpers.CartRepoStub{}, &testhelpers.NotifierStub{}, discardLogger())

	if _, err := uc.Create(context.Background(), validOrderParams()); !errors.Is(err, domainErrors.ErrAccountInactive) {
		t.Fatalf("expected ErrAccountInactive, got %v", err)
	}
}

func TestOrderCreateRemovesCartLinesAndNotifies(t *testing.T) {
	var removed []int64
	carts := testhelpers.CartRepoStub{
		RemoveManyFn: func(_ context.Context, _ int64, ids []int64) error {
			removed = ids
			return nil
		},
	}
	notify := &testhelpers.NotifierStub{}
	uc := NewOrderUseCase(testhelpers.UserRepoStub{}, testhelpers.OrderRepoStub{}, carts, notify, discardLogger())

	order, err := uc.Create(context.Background(), validOrderParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	if len(removed) != 1 || removed[0] != 1 {
		t.Fatalf("expected cart line 1 removed, got %v", removed)
	}
	if msgs := notify.Sent(); len(msgs) != 1 || msgs[0].To != "user@example.com" {
		t.Fatalf("expected one confirmation message, got %v", msgs)
	}
}

func TestOrderCreateSucceedsWhenCartCleanupFails(t *testing.T) {
	carts := testhelpers.CartRepoStub{
		RemoveManyFn: func(context.Context, int64, []int64) error {
			return errors.New("cart unavailable")
		},
	}
	uc := NewOrderUseCase(testhelpers.UserRepoStub{}, testhelpers.OrderRepoStub{}, carts, &testhelpers.NotifierStub{}, discardLogger())

	if _, err := uc.Create(context.Background(), validOrderParams()); err != nil {
		t.Fatalf("cart cleanup failure must not fail checkout: %v", err)
	}
}

func TestOrderCreatePropagatesStockError(t *testing.T) {
	orders := testhelpers.OrderRepoStub{
		CreateFn: func(context.Context, repository.CreateOrderParams) (*model.Order, error) {
			return nil, domainErrors.ErrInsufficientStock
		},
	}
	notify := &testhelpers.NotifierStub{}
	uc := NewOrderUseCase(testhelpers.UserRepoStub{}, orders, testhelpers.CartRepoStub{}, notify, discardLogger())

	if _, err := uc.Create(context.Background(), validOrderParams()); !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if len(notify.Sent()) != 0 {
		t.Fatalf("no notification may be sent for a failed order")
	}
}

func TestOrderUpdateStatusFollowsTransitionTable(t *testing.T) {
	cases := []struct {
		name    string
		current model.OrderStatus
		next    model.OrderStatus
		wantErr error
	}{
		{"pending to shipping", model.OrderStatusPending, model.OrderStatusShipping, nil},
		{"pending to cancelled", model.OrderStatusPending, model.OrderStatusCancelled, nil},
		{"shipping to completed", model.OrderStatusShipping, model.OrderStatusCompleted, nil},
		{"pending to completed", model.OrderStatusPending, model.OrderStatusCompleted, domainErrors.ErrInvalidStatusTransition},
		{"completed to shipping", model.OrderStatusCompleted, model.OrderStatusShipping, domainErrors.ErrInvalidStatusTransition},
		{"cancelled to pending", model.OrderStatusCancelled, model.OrderStatusPending, domainErrors.ErrInvalidStatusTransition},
		{"unknown status", model.OrderStatusPending, "misplaced", domainErrors.ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orders := testhelpers.OrderRepoStub{
				ByIDFn: func(_ context.Context, id int64) (*model.Order, error) {
					return &model.Order{ID: id, Status: tc.current}, nil
				},
			}
			uc := NewOrderUseCase(testhelpers.UserRepoStub{}, orders, testhelpers.CartRepoStub{}, &testhelpers.NotifierStub{}, discardLogger())

			order, err := uc.UpdateStatus(context.Background(), 1, tc.next)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if order.Status != tc.next {
				t.Fatalf("expected status %s, got %s", tc.next, order.Status)
			}
		})
	}
}

func TestOrderUpdateStatusMarksSoldOnlyOnCompletion(t *testing.T) {
	var gotMarkSold bool
	orders := testhelpers.OrderRepoStub{
		ByIDFn: func(_ context.Context, id int64) (*model.Order, error) {
			return &model.Order{ID: id, Status: model.OrderStatusShipping}, nil
		},
		UpdateStatusFn: func(_ context.Context, id int64, _, to model.OrderStatus, markSold bool) (*model.Order, error) {
			gotMarkSold = markSold
			return &model.Order{ID: id, Status: to}, nil
		},
	}
	uc := NewOrderUseCase(testhelpers.UserRepoStub{}, orders, testhelpers.CartRepoStub{}, &testhelpers.NotifierStub{}, discardLogger())

	if _, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotMarkSold {
		t.Fatalf("completion must increment sold counters")
	}
}

func TestOrderCancelOnlyPending(t *testing.T) {
	for _, status := range []model.OrderStatus{model.OrderStatusShipping, model.OrderStatusCompleted, model.OrderStatusCancelled} {
		orders := testhelpers.OrderRepoStub{
			ByIDForUserFn: func(_ context.Context, id, userID int64) (*model.Order, error) {
				return &model.Order{ID: id, UserID: userID, Status: status}, nil
			},
		}
		uc := NewOrderUseCase(testhelpers.UserRepoStub{}, orders, testhelpers.CartRepoStub{}, &testhelpers.NotifierStub{}, discardLogger())

		if _, err := uc.Cancel(context.Background(), 7, 1); !errors.Is(err, domainErrors.ErrOrderNotCancellable) {
			t.Fatalf("status %s: expected ErrOrderNotCancellable, got %v", status, err)
		}
	}
}

func TestOrderCancelPendingSucceeds(t *testing.T) {
	uc := NewOrderUseCase(testhelpers.UserRepoStub{}, testhelpers.OrderRepoStub{}, testhelpers.CartRepoStub{}, &testhelpers.NotifierStub{}, discardLogger())

	order, err := uc.Cancel(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", order.Status)
	}
}

func TestConfirmReceivedIdempotentWhenCompleted(t *testing.T) {
	var updateCalled bool
	orders := testhelpers.OrderRepoStub{
		ByIDForUserFn: func(_ context.Context, id, userID int64) (*model.Order, error) {
			return &model.Order{ID: id, UserID: userID, Status: model.OrderStatusCompleted}, nil
		},
		UpdateStatusFn: func(_ context.Context, id int64, _, to model.OrderStatus, _ bool) (*model.Order, error) {
			updateCalled = true
			return &model.Order{ID: id, Status: to}, nil
		},
	}
	uc := NewOrderUseCase(testhelpers.UserRepoStub{}, orders, testhelpers.CartRepoStub{}, &testhelpers.NotifierStub{}, discardLogger())

	order, err := uc.ConfirmReceived(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusCompleted {
		t.Fatalf("expected completed, got %s", order.Status)
	}
	if updateCalled {
		t.Fatalf("already completed order must not be transitioned again")
	}
}

func TestConfirmReceivedCompletesShippingOrder(t *testing.T) {
	var gotFrom, gotTo model.OrderStatus
	var gotMarkSold bool
	orders := testhelpers.OrderRepoStub{
		ByIDForUserFn: func(_ context.Context, id, userID int64) (*model.Order, error) {
			return &model.Order{ID: id, UserID: userID, Status: model.OrderStatusShipping}, nil
		},
		UpdateStatusFn: func(_ context.Context, id int64, from, to model.OrderStatus, markSold bool) (*model.Order, error) {
			gotFrom, gotTo, gotMarkSold = from, to, markSold
			return &model.Order{ID: id, Status: to}, nil
		},
	}
	notify := &testhelpers.NotifierStub{}
	uc := NewOrderUseCase(testhelpers.UserRepoStub{}, orders, testhelpers.CartRepoStub{}, notify, discardLogger())

	order, err := uc.ConfirmReceived(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusCompleted {
		t.Fatalf("expected completed, got %s", order.Status)
	}
	if gotFrom != model.OrderStatusShipping || gotTo != model.OrderStatusCompleted || !gotMarkSold {
		t.Fatalf("unexpected transition %s -> %s markSold=%v", gotFrom, gotTo, gotMarkSold)
	}
	if len(notify.Sent()) != 1 {
		t.Fatalf("expected delivery confirmation message")
	}
}

func TestConfirmReceivedRejectsPendingOrder(t *testing.T) {
	uc := NewOrderUseCase(testhelpers.UserRepoStub{}, testhelpers.OrderRepoStub{}, testhelpers.CartRepoStub{}, &testhelpers.NotifierStub{}, discardLogger())

	if _, err := uc.ConfirmReceived(context.Background(), 7, 1); !errors.Is(err, domainErrors.ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}
}

func TestOrderListByUserWrapsPage(t *testing.T) {
	orders := testhelpers.OrderRepoStub{
		ListByUserFn: func(_ context.Context, _ int64, offset, limit int) ([]model.Order, int64, error) {
			if offset != 10 || limit != 10 {
				t.Fatalf("unexpected window offset=%d limit=%d", offset, limit)
			}
			return []model.Order{{ID: 11}}, 21, nil
		},
	}
	uc := NewOrderUseCase(testhelpers.UserRepoStub{}, orders, testhelpers.CartRepoStub{}, &testhelpers.NotifierStub{}, discardLogger())

	page, err := uc.ListByUser(context.Background(), 7, 2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalPages != 3 || !page.HasNextPage || !page.HasPreviousPage {
		t.Fatalf("unexpected envelope: %+v", page)
	}
}
