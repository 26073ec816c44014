package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran-dev/storefront/internal/pkg/pagination"
	"github.com/vantran-dev/storefront/internal/server/http/dto"
	"github.com/vantran-dev/storefront/internal/server/http/response"
)

// VoucherHandler serves voucher endpoints.
type VoucherHandler struct {
	facade  VoucherFacade
	respond *response.Responder
}

// NewVoucherHandler creates VoucherHandler instance.
func NewVoucherHandler(facade VoucherFacade, respond *response.Responder) *VoucherHandler {
	return &VoucherHandler{facade: facade, respond: respond}
}

// List handles GET /v1/voucher.
func (h *VoucherHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)

	result, err := h.facade.Vouchers(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "vouchers", pagination.Remap(*result, dto.NewVoucherResponses(result.Data)))
}

// Available handles GET /v1/voucher/active.
func (h *VoucherHandler) Available(c *gin.Context) {
	vouchers, err := h.facade.AvailableVouchers(c.Request.Context())
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "available vouchers", dto.NewVoucherResponses(vouchers))
}

// Detail handles GET /v1/voucher/:id.
func (h *VoucherHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid voucher id")
		return
	}

	voucher, err := h.facade.Voucher(c.Request.Context(), id)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "voucher", dto.NewVoucherResponse(voucher))
}

// Create handles POST /v1/voucher.
func (h *VoucherHandler) Create(c *gin.Context) {
	var req dto.VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	voucher, err := h.facade.CreateVoucher(c.Request.Context(), req.Model())
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusCreated, "voucher created", dto.NewVoucherResponse(voucher))
}

// Update handles PUT /v1/voucher/:id.
func (h *VoucherHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid voucher id")
		return
	}

	var req dto.VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	voucher := req.Model()
	voucher.ID = id
	updated, err := h.facade.UpdateVoucher(c.Request.Context(), voucher)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "voucher updated", dto.NewVoucherResponse(updated))
}

// Delete handles DELETE /v1/voucher/:id.
func (h *VoucherHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.respond.Fail(c, http.StatusBadRequest, "invalid voucher id")
		return
	}

	if err := h.facade.DeleteVoucher(c.Request.Context(), id); err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "voucher deleted", nil)
}

// Apply handles POST /v1/voucher/apply.
func (h *VoucherHandler) Apply(c *gin.Context) {
	var req dto.ApplyVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	total, err := h.facade.PreviewVoucher(c.Request.Context(), req.OrderID, req.VoucherID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, "voucher applied", dto.ApplyVoucherResponse{TotalPrice: total})
}
