package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran-dev/storefront/internal/server/http/dto"
	"github.com/vantran-dev/storefront/internal/server/http/response"
)

// AuthHandler processes registration, login and profile lookup.
type AuthHandler struct {
	facade  AuthFacade
	respond *response.Responder
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, respond *response.Responder) *AuthHandler {
	return &AuthHandler{facade: facade, respond: respond}
}

// Register handles POST /v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusCreated, "registration successful", dto.NewAuthResponse(user, token))
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "login successful", dto.NewAuthResponse(user, token))
}

// Profile handles GET /v1/auth/me.
func (h *AuthHandler) Profile(c *gin.Context) {
	principal := CurrentPrincipal(c)
	if principal == nil {
		h.respond.Fail(c, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.facade.Profile(c.Request.Context(), principal.UserID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "profile", dto.NewUserResponse(user))
}
