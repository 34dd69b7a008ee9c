package payments

import "errors"

var (
	// ErrValidation covers malformed or missing input: empty cart item
	// list, unsupported method, blank tx hash.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is an unknown payment or cart line id.
	ErrNotFound = errors.New("not found")

	// ErrConflict is a transition attempted on a terminal payment.
	ErrConflict = errors.New("payment is not pending")

	// ErrNotImplemented is returned for card rails, which are accepted
	// on the wire but not backed by any processor.
	ErrNotImplemented = errors.New("payment method not implemented")

	// ErrRateUnavailable and ErrQRRender are upstream failures. They
	// abort creation before anything is persisted and the caller may
	// retry.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
	ErrQRRender        = errors.New("qr code rendering failed")
)
