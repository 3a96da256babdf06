package errs

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		code string
	}{
		{name: "invalid amount", err: ErrInvalidAmount, want: http.StatusBadRequest, code: "InvalidAmount"},
		{name: "wrapped unsupported currency", err: errors.Wrap(ErrUnsupportedCurrency, "XRP"), want: http.StatusBadRequest, code: "UnsupportedCurrency"},
		{name: "missing field", err: errors.Wrapf(ErrMissingField, "field %s", "accountNumber"), want: http.StatusBadRequest, code: "MissingField"},
		{name: "not found", err: ErrNotFound, want: http.StatusNotFound, code: "NotFound"},
		{name: "duplicate", err: ErrDuplicateHash, want: http.StatusConflict, code: "DuplicateHash"},
		{name: "wallet unavailable", err: ErrWalletUnavailable, want: http.StatusServiceUnavailable, code: "WalletUnavailable"},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError, code: "Internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
			assert.Equal(t, tt.code, Code(tt.err))
		})
	}
}

func TestHTTPStatus_Nil(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
}
