package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran-dev/storefront/internal/pkg/pagination"
	"github.com/vantran-dev/storefront/internal/server/http/dto"
	"github.com/vantran-dev/storefront/internal/server/http/response"
)

// BlogHandler serves blog post endpoints.
type BlogHandler struct {
	facade  ContentFacade
	respond *response.Responder
}

// NewBlogHandler creates BlogHandler instance.
func NewBlogHandler(facade ContentFacade, respond *response.Responder) *BlogHandler {
	return &BlogHandler{facade: facade, respond: respond}
}

// List handles GET /v1/blog.
func (h *BlogHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)

	result, err := h.facade.Posts(c.Request.Context(), page, limit)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "posts", pagination.Remap(*result, dto.NewPostResponses(result.Data)))
}

// Detail handles GET /v1/blog/:id.
func (h *BlogHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := h.facade.Post(c.Request.Context(), id)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "post", dto.NewPostResponse(post))
}

// Create handles POST /v1/blog.
func (h *BlogHandler) Create(c *gin.Context) {
	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	post, err := h.facade.CreatePost(c.Request.Context(), req.Model())
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusCreated, "post created", dto.NewPostResponse(post))
}

// Update handles PUT /v1/blog/:id.
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid post id")
		return
	}

	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	post := req.Model()
	post.ID = id
	updated, err := h.facade.UpdatePost(c.Request.Context(), post)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "post updated", dto.NewPostResponse(updated))
}

// Delete handles DELETE /v1/blog/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := h.facade.DeletePost(c.Request.Context(), id); err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "post deleted", nil)
}
