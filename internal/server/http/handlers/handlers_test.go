package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vantran-dev/storefront/internal/app"
	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
	pkgAuth "github.com/vantran-dev/storefront/internal/pkg/auth"
	"github.com/vantran-dev/storefront/internal/server/http/dto"
	"github.com/vantran-dev/storefront/internal/server/http/middleware"
	"github.com/vantran-dev/storefront/internal/server/http/response"
	testhelpers "github.com/vantran-dev/storefront/internal/test/facades"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var respond = response.NewResponder("UTC")

func asCustomer(c *gin.Context) {
	c.Set(middleware.PrincipalContextKey, &pkgAuth.Principal{UserID: 7, Role: model.RoleCustomer})
}

func performRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func TestCurrentPrincipal(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentPrincipal(c); got != nil {
		t.Fatalf("expected nil without principal, got %+v", got)
	}

	c.Set(middleware.PrincipalContextKey, &pkgAuth.Principal{UserID: 42, Role: model.RoleAdmin})
	got := CurrentPrincipal(c)
	if got == nil || got.UserID != 42 || got.Role != model.RoleAdmin {
		t.Fatalf("unexpected principal: %+v", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.RegisterRequest{Email: "a@example.com", Name: "Ann", Password: "secret1"})
	h := NewAuthHandler(testhelpers.AuthFacadeStub{}, respond)

	w := performRequest(t, http.MethodPost, "/register", "/register", h.Register, nil, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	env := decodeBody(t, w)
	if env.Message != "registration successful" || env.Data == nil {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	valid, _ := json.Marshal(dto.RegisterRequest{Email: "a@example.com", Name: "Ann", Password: "secret1"})

	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "missing email", body: []byte(`{"name":"Ann","password":"secret1"}`), status: http.StatusBadRequest},
		{name: "short password", body: []byte(`{"email":"a@example.com","name":"Ann","password":"abc"}`), status: http.StatusBadRequest},
		{name: "already exists", body: valid, facade: testhelpers.AuthFacadeStub{
			RegisterFn: func(context.Context, string, string, string) (*model.User, string, error) {
				return nil, "", domainErrors.ErrAlreadyExists
			},
		}, status: http.StatusConflict},
		{name: "internal", body: valid, facade: testhelpers.AuthFacadeStub{
			RegisterFn: func(context.Context, string, string, string) (*model.User, string, error) {
				return nil, "", errors.New("boom")
			},
		}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(tt.facade, respond)
			w := performRequest(t, http.MethodPost, "/register", "/register", h.Register, nil, tt.body)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "a@example.com", Password: "secret1"})
	h := NewAuthHandler(testhelpers.AuthFacadeStub{
		AuthenticateFn: func(_ context.Context, email, password string) (*model.User, string, error) {
			if email != "a@example.com" || password != "secret1" {
				t.Fatalf("unexpected credentials: %q %q", email, password)
			}
			return &model.User{ID: 1, Email: email, Role: model.RoleCustomer}, "session-token", nil
		},
	}, respond)

	w := performRequest(t, http.MethodPost, "/login", "/login", h.Login, nil, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var env struct {
		Data dto.AuthResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Data.Token != "session-token" || env.Data.User.Email != "a@example.com" {
		t.Fatalf("unexpected payload: %+v", env.Data)
	}
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "a@example.com", Password: "wrong1"})
	h := NewAuthHandler(testhelpers.AuthFacadeStub{
		AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrInvalidCredentials
		},
	}, respond)

	w := performRequest(t, http.MethodPost, "/login", "/login", h.Login, nil, body)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthHandlerProfile(t *testing.T) {
	h := NewAuthHandler(testhelpers.AuthFacadeStub{}, respond)

	w := performRequest(t, http.MethodGet, "/me", "/me", h.Profile, asCustomer, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = performRequest(t, http.MethodGet, "/me", "/me", h.Profile, nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without principal, got %d", w.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.CreateOrderRequest{
		Items:           []dto.CartItemRequest{{ProductID: 1, Quantity: 2}},
		ShippingAddress: "12 Main St",
		PaymentMethod:   "COD",
	})

	var gotParams repository.CreateOrderParams
	h := NewOrderHandler(testhelpers.OrderFacadeStub{
		PlaceOrderFn: func(_ context.Context, params repository.CreateOrderParams) (*app.CheckoutResult, error) {
			gotParams = params
			return &app.CheckoutResult{Order: &model.Order{ID: 1, UserID: params.UserID, TotalPrice: 20, Status: model.OrderStatusPending}}, nil
		},
	}, respond)

	w := performRequest(t, http.MethodPost, "/order", "/order", h.Create, asCustomer, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if gotParams.UserID != 7 || len(gotParams.Items) != 1 || gotParams.PaymentMethod != model.PaymentCashOnDelivery {
		t.Fatalf("unexpected params: %+v", gotParams)
	}
}

func TestOrderHandlerCreateBankTransfer(t *testing.T) {
	body, _ := json.Marshal(dto.CreateOrderRequest{
		Items:           []dto.CartItemRequest{{ProductID: 1, Quantity: 2}},
		ShippingAddress: "12 Main St",
		PaymentMethod:   "bank_transfer",
	})

	h := NewOrderHandler(testhelpers.OrderFacadeStub{
		PlaceOrderFn: func(_ context.Context, params repository.CreateOrderParams) (*app.CheckoutResult, error) {
			return &app.CheckoutResult{
				Order:    &model.Order{ID: 1, UserID: params.UserID, TotalPrice: 20, PaymentMethod: model.PaymentBankTransfer},
				BankInfo: &app.BankInfo{BankName: "First Bank", BankNumber: "123456", AccountHolder: "Storefront LLC", TotalPrice: 20},
			}, nil
		},
	}, respond)

	w := performRequest(t, http.MethodPost, "/order", "/order", h.Create, asCustomer, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	var env struct {
		Data dto.CheckoutResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Data.BankInfo == nil || env.Data.BankInfo.BankName != "First Bank" || env.Data.BankInfo.TotalPrice != 20 {
		t.Fatalf("expected bank instructions, got %+v", env.Data.BankInfo)
	}
}

func TestOrderHandlerCreateFailures(t *testing.T) {
	valid, _ := json.Marshal(dto.CreateOrderRequest{
		Items:           []dto.CartItemRequest{{ProductID: 1, Quantity: 2}},
		ShippingAddress: "12 Main St",
		PaymentMethod:   "COD",
	})

	tests := []struct {
		name   string
		facade testhelpers.OrderFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "no items", body: []byte(`{"items":[],"shippingAddress":"a","paymentMethod":"COD"}`), status: http.StatusBadRequest},
		{name: "insufficient stock", body: valid, facade: testhelpers.OrderFacadeStub{
			PlaceOrderFn: func(context.Context, repository.CreateOrderParams) (*app.CheckoutResult, error) {
				return nil, domainErrors.ErrInsufficientStock
			},
		}, status: http.StatusConflict},
		{name: "inactive account", body: valid, facade: testhelpers.OrderFacadeStub{
			PlaceOrderFn: func(context.Context, repository.CreateOrderParams) (*app.CheckoutResult, error) {
				return nil, domainErrors.ErrAccountInactive
			},
		}, status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewOrderHandler(tt.facade, respond)
			w := performRequest(t, http.MethodPost, "/order", "/order", h.Create, asCustomer, tt.body)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
		})
	}
}

func TestOrderHandlerMyOrdersEnvelope(t *testing.T) {
	h := NewOrderHandler(testhelpers.OrderFacadeStub{}, respond)

	w := performRequest(t, http.MethodGet, "/order", "/order?page=2&limit=5", h.My, asCustomer, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var env struct {
		Data struct {
			Page  int                 `json:"page"`
			Limit int                 `json:"limit"`
			Data  []dto.OrderResponse `json:"data"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Data.Page != 2 || env.Data.Limit != 5 || len(env.Data.Data) != 1 {
		t.Fatalf("unexpected page envelope: %+v", env.Data)
	}
}

func TestOrderHandlerUpdateStatus(t *testing.T) {
	h := NewOrderHandler(testhelpers.OrderFacadeStub{
		UpdateOrderStatusFn: func(_ context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
			if orderID != 5 || status != model.OrderStatusShipping {
				t.Fatalf("unexpected call: id=%d status=%s", orderID, status)
			}
			return &model.Order{ID: orderID, Status: status}, nil
		},
	}, respond)

	body := []byte(`{"status":"shipping"}`)
	w := performRequest(t, http.MethodPatch, "/order/:id/status", "/order/5/status", h.UpdateStatus, asCustomer, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = performRequest(t, http.MethodPatch, "/order/:id/status", "/order/abc/status", h.UpdateStatus, asCustomer, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", w.Code)
	}

	h = NewOrderHandler(testhelpers.OrderFacadeStub{
		UpdateOrderStatusFn: func(context.Context, int64, model.OrderStatus) (*model.Order, error) {
			return nil, domainErrors.ErrInvalidStatusTransition
		},
	}, respond)
	w = performRequest(t, http.MethodPatch, "/order/:id/status", "/order/5/status", h.UpdateStatus, asCustomer, []byte(`{"status":"completed"}`))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for illegal transition, got %d", w.Code)
	}
}

func TestOrderHandlerCancel(t *testing.T) {
	h := NewOrderHandler(testhelpers.OrderFacadeStub{
		CancelOrderFn: func(_ context.Context, userID, orderID int64) (*model.Order, error) {
			if userID != 7 || orderID != 9 {
				t.Fatalf("unexpected call: user=%d order=%d", userID, orderID)
			}
			return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusCancelled}, nil
		},
	}, respond)

	w := performRequest(t, http.MethodPut, "/order/:id/cancel", "/order/9/cancel", h.Cancel, asCustomer, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	h = NewOrderHandler(testhelpers.OrderFacadeStub{
		CancelOrderFn: func(context.Context, int64, int64) (*model.Order, error) {
			return nil, domainErrors.ErrOrderNotCancellable
		},
	}, respond)
	w = performRequest(t, http.MethodPut, "/order/:id/cancel", "/order/9/cancel", h.Cancel, asCustomer, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestOrderHandlerConfirmReceived(t *testing.T) {
	h := NewOrderHandler(testhelpers.OrderFacadeStub{}, respond)

	w := performRequest(t, http.MethodPut, "/order/:id/receive", "/order/9/receive", h.ConfirmReceived, asCustomer, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var env struct {
		Data dto.OrderResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Data.Status != string(model.OrderStatusCompleted) {
		t.Fatalf("expected completed order, got %+v", env.Data)
	}
}

func TestCartHandlerUpdateItem(t *testing.T) {
	var gotProduct, gotQuantity int64
	h := NewCartHandler(testhelpers.CartFacadeStub{
		UpdateCartItemFn: func(_ context.Context, userID, productID, quantity int64) ([]model.CartItem, error) {
			gotProduct, gotQuantity = productID, quantity
			return []model.CartItem{}, nil
		},
	}, respond)

	body := []byte(`{"quantity":4}`)
	w := performRequest(t, http.MethodPut, "/cart/:productId", "/cart/3", h.UpdateItem, asCustomer, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotProduct != 3 || gotQuantity != 4 {
		t.Fatalf("unexpected call: product=%d quantity=%d", gotProduct, gotQuantity)
	}

	w = performRequest(t, http.MethodPut, "/cart/:productId", "/cart/abc", h.UpdateItem, asCustomer, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad product id, got %d", w.Code)
	}
}

func TestCartHandlerRemoveItem(t *testing.T) {
	h := NewCartHandler(testhelpers.CartFacadeStub{
		RemoveCartItemFn: func(context.Context, int64, int64) ([]model.CartItem, error) {
			return nil, domainErrors.ErrNotFound
		},
	}, respond)

	w := performRequest(t, http.MethodDelete, "/cart/:productId", "/cart/3", h.RemoveItem, asCustomer, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestVoucherHandlerApply(t *testing.T) {
	h := NewVoucherHandler(testhelpers.VoucherFacadeStub{
		PreviewVoucherFn: func(_ context.Context, orderID, voucherID int64) (float64, error) {
			if orderID != 4 || voucherID != 2 {
				t.Fatalf("unexpected call: order=%d voucher=%d", orderID, voucherID)
			}
			return 15, nil
		},
	}, respond)

	body := []byte(`{"orderId":4,"voucherId":2}`)
	w := performRequest(t, http.MethodPost, "/voucher/apply", "/voucher/apply", h.Apply, asCustomer, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	h = NewVoucherHandler(testhelpers.VoucherFacadeStub{
		PreviewVoucherFn: func(context.Context, int64, int64) (float64, error) {
			return 0, domainErrors.ErrVoucherMinNotMet
		},
	}, respond)
	w = performRequest(t, http.MethodPost, "/voucher/apply", "/voucher/apply", h.Apply, asCustomer, body)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestStatsHandlerValidation(t *testing.T) {
	h := NewStatsHandler(testhelpers.StatsFacadeStub{}, respond)

	w := performRequest(t, http.MethodGet, "/statistic/users", "/statistic/users?month=2&year=2025", h.NewUsers, asCustomer, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = performRequest(t, http.MethodGet, "/statistic/users", "/statistic/users?month=2", h.NewUsers, asCustomer, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without year, got %d", w.Code)
	}
}
