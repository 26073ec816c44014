package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran-dev/storefront/internal/server/http/dto"
	"github.com/vantran-dev/storefront/internal/server/http/response"
)

// CategoryHandler serves category endpoints.
type CategoryHandler struct {
	facade  CatalogFacade
	respond *response.Responder
}

// NewCategoryHandler creates CategoryHandler instance.
func NewCategoryHandler(facade CatalogFacade, respond *response.Responder) *CategoryHandler {
	return &CategoryHandler{facade: facade, respond: respond}
}

// List handles GET /v1/category.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "categories", dto.NewCategoryResponses(categories))
}

// Detail handles GET /v1/category/:id.
func (h *CategoryHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid category id")
		return
	}

	category, err := h.facade.Category(c.Request.Context(), id)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "category", dto.NewCategoryResponse(category))
}

// Create handles POST /v1/category.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	category, err := h.facade.CreateCategory(c.Request.Context(), req.Model())
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusCreated, "category created", dto.NewCategoryResponse(category))
}

// Update handles PUT /v1/category/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid category id")
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	category := req.Model()
	category.ID = id
	updated, err := h.facade.UpdateCategory(c.Request.Context(), category)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "category updated", dto.NewCategoryResponse(updated))
}

// Delete handles DELETE /v1/category/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.facade.DeleteCategory(c.Request.Context(), id); err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "category deleted", nil)
}
