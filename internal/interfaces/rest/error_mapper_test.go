package rest_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/interfaces/rest"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"aborted", domain.NewError(domain.ErrCodeRequestAborted), http.StatusGatewayTimeout},
		{"missing secret", domain.NewError(domain.ErrCodeInvalidSecretAPIKey), http.StatusInternalServerError},
		{"internal", domain.WrapError(domain.ErrCodeInternal, errors.New("panic: nil map")), http.StatusInternalServerError},
		{"upstream", domain.WrapError(domain.ErrCodeSecureToken, errors.New("401")), http.StatusBadGateway},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rest.ToHTTPStatus(tt.err))
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	rest.WriteError(rec, errors.New("dial tcp 10.0.0.1: refused"), slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"error":{"code":"UNKNOWN_ERROR","message":"An unexpected error occurred."}}`, rec.Body.String())
}
