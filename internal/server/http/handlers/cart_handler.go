package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran-dev/storefront/internal/server/http/dto"
	"github.com/vantran-dev/storefront/internal/server/http/response"
)

// CartHandler serves the authenticated user's cart.
type CartHandler struct {
	facade  CartFacade
	respond *response.Responder
}

// NewCartHandler creates CartHandler instance.
func NewCartHandler(facade CartFacade, respond *response.Responder) *CartHandler {
	return &CartHandler{facade: facade, respond: respond}
}

// Get handles GET /v1/cart.
func (h *CartHandler) Get(c *gin.Context) {
	principal := CurrentPrincipal(c)
	items, err := h.facade.Cart(c.Request.Context(), principal.UserID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "cart", dto.NewCartItemResponses(items))
}

// Add handles POST /v1/cart.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	principal := CurrentPrincipal(c)
	items, err := h.facade.AddToCart(c.Request.Context(), principal.UserID, req.Requests())
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "items added to cart", dto.NewCartItemResponses(items))
}

// UpdateItem handles PUT /v1/cart/:productId.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	principal := CurrentPrincipal(c)
	items, err := h.facade.UpdateCartItem(c.Request.Context(), principal.UserID, productID, req.Quantity)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "cart item updated", dto.NewCartItemResponses(items))
}

// RemoveItem handles DELETE /v1/cart/:productId.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	principal := CurrentPrincipal(c)
	items, err := h.facade.RemoveCartItem(c.Request.Context(), principal.UserID, productID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "cart item removed", dto.NewCartItemResponses(items))
}

// Clear handles DELETE /v1/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	principal := CurrentPrincipal(c)
	if err := h.facade.ClearCart(c.Request.Context(), principal.UserID); err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "cart cleared", nil)
}
