package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/pkg/pagination"
	"github.com/vantran-dev/storefront/internal/server/http/dto"
	"github.com/vantran-dev/storefront/internal/server/http/response"
)

// OrderHandler serves checkout and order lifecycle endpoints.
type OrderHandler struct {
	facade  OrderFacade
	respond *response.Responder
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade, respond *response.Responder) *OrderHandler {
	return &OrderHandler{facade: facade, respond: respond}
}

// Create handles POST /v1/order.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	principal := CurrentPrincipal(c)
	result, err := h.facade.PlaceOrder(c.Request.Context(), req.Params(principal.UserID))
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusCreated, "order placed", dto.NewCheckoutResponse(result))
}

// My handles GET /v1/order.
func (h *OrderHandler) My(c *gin.Context) {
	page, limit := pageQuery(c)
	principal := CurrentPrincipal(c)

	result, err := h.facade.MyOrders(c.Request.Context(), principal.UserID, page, limit)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "orders", pagination.Remap(*result, dto.NewOrderResponses(result.Data)))
}

// List handles GET /v1/order/admin.
func (h *OrderHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)

	result, err := h.facade.AllOrders(c.Request.Context(), page, limit)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "orders", pagination.Remap(*result, dto.NewOrderResponses(result.Data)))
}

// Detail handles GET /v1/order/:id.
func (h *OrderHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.facade.OrderDetail(c.Request.Context(), id)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "order", dto.NewOrderResponse(order))
}

// UpdateStatus handles PATCH /v1/order/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid order id")
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "order status updated", dto.NewOrderResponse(order))
}

// Cancel handles PUT /v1/order/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid order id")
		return
	}

	principal := CurrentPrincipal(c)
	order, err := h.facade.CancelOrder(c.Request.Context(), principal.UserID, id)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "order cancelled", dto.NewOrderResponse(order))
}

// ConfirmReceived handles PUT /v1/order/:id/receive.
func (h *OrderHandler) ConfirmReceived(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid order id")
		return
	}

	principal := CurrentPrincipal(c)
	order, err := h.facade.ConfirmOrderReceived(c.Request.Context(), principal.UserID, id)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "delivery confirmed", dto.NewOrderResponse(order))
}
