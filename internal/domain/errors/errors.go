package errors

import "errors"

var (
	ErrAlreadyExists           = errors.New("already exists")
	ErrNotFound                = errors.New("not found")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrAccountInactive         = errors.New("account is inactive")
	ErrInvalidInput            = errors.New("invalid input")
	ErrInsufficientStock       = errors.New("insufficient product stock")
	ErrVoucherInactive         = errors.New("voucher is inactive or expired")
	ErrVoucherExhausted        = errors.New("voucher has no redemptions left")
	ErrVoucherMinNotMet        = errors.New("order total below voucher minimum")
	ErrInvalidStatusTransition = errors.New("illegal order status transition")
	ErrOrderNotCancellable     = errors.New("order can no longer be cancelled")
	ErrReviewWithoutPurchase   = errors.New("product was not purchased in this order")
)
