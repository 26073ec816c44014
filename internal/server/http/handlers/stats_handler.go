package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran-dev/storefront/internal/server/http/response"
)

// StatsHandler serves administrative statistics endpoints.
type StatsHandler struct {
	facade  StatsFacade
	respond *response.Responder
}

// NewStatsHandler creates StatsHandler instance.
func NewStatsHandler(facade StatsFacade, respond *response.Responder) *StatsHandler {
	return &StatsHandler{facade: facade, respond: respond}
}

// NewUsers handles GET /v1/statistic/users.
func (h *StatsHandler) NewUsers(c *gin.Context) {
	month, year, ok := monthYearQuery(c)
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "month and year are required")
		return
	}

	counts, err := h.facade.NewUserStats(c.Request.Context(), month, year)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "new users per day", counts)
}

// NewProducts handles GET /v1/statistic/products.
func (h *StatsHandler) NewProducts(c *gin.Context) {
	month, year, ok := monthYearQuery(c)
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "month and year are required")
		return
	}

	counts, err := h.facade.NewProductStats(c.Request.Context(), month, year)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "new products per day", counts)
}

// Revenue handles GET /v1/statistic/revenue.
func (h *StatsHandler) Revenue(c *gin.Context) {
	month, year, ok := monthYearQuery(c)
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "month and year are required")
		return
	}

	sums, err := h.facade.RevenueStats(c.Request.Context(), month, year)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "revenue per day", sums)
}
