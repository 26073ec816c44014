package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/pkg/auth"
)

const timestampLayout = "2006-01-02 15:04:05"

// Envelope is the uniform JSON body every endpoint returns. Data is set on
// success, Errors on failure, never both.
type Envelope struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Data       any      `json:"data,omitempty"`
	Errors     []string `json:"errors,omitempty"`
	Timestamp  string   `json:"timestamp"`
}

// Responder renders envelopes with timestamps in a fixed display timezone.
type Responder struct {
	loc *time.Location
}

// NewResponder loads the display timezone, falling back to UTC when the
// name is unknown.
func NewResponder(timezone string) *Responder {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &Responder{loc: loc}
}

// OK writes a success envelope with a data payload.
func (r *Responder) OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		StatusCode: status,
		Message:    message,
		Data:       data,
		Timestamp:  r.now(),
	})
}

// Fail writes a failure envelope with the given status and error details.
func (r *Responder) Fail(c *gin.Context, status int, message string, details ...string) {
	c.AbortWithStatusJSON(status, Envelope{
		StatusCode: status,
		Message:    message,
		Errors:     details,
		Timestamp:  r.now(),
	})
}

// Error maps a domain error onto the failure envelope.
func (r *Responder) Error(c *gin.Context, err error) {
	status, message := classify(err)
	r.Fail(c, status, message, err.Error())
}

func (r *Responder) now() string {
	return time.Now().In(r.loc).Format(timestampLayout)
}

// classify maps sentinel errors to HTTP statuses: validation 400, auth 401,
// inactive account 403, missing resources 404, business-rule conflicts 409,
// everything else 500.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, domainErrors.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, "authentication failed"
	case errors.Is(err, domainErrors.ErrAccountInactive):
		return http.StatusForbidden, "account is deactivated"
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict, "resource already exists"
	case errors.Is(err, domainErrors.ErrInsufficientStock):
		return http.StatusConflict, "insufficient stock"
	case errors.Is(err, domainErrors.ErrVoucherInactive):
		return http.StatusConflict, "voucher is not usable"
	case errors.Is(err, domainErrors.ErrVoucherExhausted):
		return http.StatusConflict, "voucher has no uses left"
	case errors.Is(err, domainErrors.ErrVoucherMinNotMet):
		return http.StatusConflict, "order total below voucher minimum"
	case errors.Is(err, domainErrors.ErrInvalidStatusTransition):
		return http.StatusConflict, "illegal status transition"
	case errors.Is(err, domainErrors.ErrOrderNotCancellable):
		return http.StatusConflict, "order can no longer be cancelled"
	case errors.Is(err, domainErrors.ErrReviewWithoutPurchase):
		return http.StatusConflict, "product was not purchased in this order"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
