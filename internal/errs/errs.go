package errs

import (
	"net/http"

	"github.com/pkg/errors"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrDuplicateHash       = errors.New("transaction hash already tracked")
	ErrNotFound            = errors.New("not found")
	ErrMissingField        = errors.New("missing required field")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrWalletUnavailable   = errors.New("wallet rpc unavailable")
	ErrPollTimeout         = errors.New("polling timed out before a terminal status")
)

// HTTPStatus maps a domain error, possibly wrapped, to the response status code.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrUnsupportedCurrency),
		errors.Is(err, ErrMissingField),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrInsufficientBalance),
		errors.Is(err, ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateHash):
		return http.StatusConflict
	case errors.Is(err, ErrWalletUnavailable), errors.Is(err, ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrPollTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Code returns a stable machine readable name for a domain error.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return "InvalidAmount"
	case errors.Is(err, ErrUnsupportedCurrency):
		return "UnsupportedCurrency"
	case errors.Is(err, ErrMissingField):
		return "MissingField"
	case errors.Is(err, ErrInvalidRequest):
		return "InvalidRequest"
	case errors.Is(err, ErrInsufficientBalance):
		return "InsufficientBalance"
	case errors.Is(err, ErrInvalidAddress):
		return "InvalidAddress"
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrDuplicateHash):
		return "DuplicateHash"
	case errors.Is(err, ErrWalletUnavailable):
		return "WalletUnavailable"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "UpstreamUnavailable"
	case errors.Is(err, ErrPollTimeout):
		return "PollTimeout"
	default:
		return "Internal"
	}
}
