package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran-dev/storefront/internal/domain/repository"
	"github.com/vantran-dev/storefront/internal/pkg/pagination"
	"github.com/vantran-dev/storefront/internal/server/http/dto"
	"github.com/vantran-dev/storefront/internal/server/http/response"
)

// ProductHandler serves catalog product endpoints.
type ProductHandler struct {
	facade  CatalogFacade
	respond *response.Responder
}

// NewProductHandler creates ProductHandler instance.
func NewProductHandler(facade CatalogFacade, respond *response.Responder) *ProductHandler {
	return &ProductHandler{facade: facade, respond: respond}
}

// List handles GET /v1/product.
func (h *ProductHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	filter := repository.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	result, err := h.facade.Products(c.Request.Context(), filter, page, limit)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "products", pagination.Remap(*result, dto.NewProductResponses(result.Data)))
}

// Detail handles GET /v1/product/:id.
func (h *ProductHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "product", dto.NewProductResponse(product))
}

// Create handles POST /v1/product.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), req.Model())
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusCreated, "product created", dto.NewProductResponse(product))
}

// Update handles PUT /v1/product/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	product := req.Model()
	product.ID = id
	updated, err := h.facade.UpdateProduct(c.Request.Context(), product)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "product updated", dto.NewProductResponse(updated))
}

// Delete handles DELETE /v1/product/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "product deleted", nil)
}
