package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/transport"
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToHTTPStatus maps a checkout error to the status the server answers with.
// Failures of the upstream backend surface as 502.
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded),
		domain.IsErrorCode(err, domain.ErrCodeRequestAborted):
		return http.StatusGatewayTimeout
	case domain.IsErrorCode(err, domain.ErrCodeInvalidSecretAPIKey),
		domain.IsErrorCode(err, domain.ErrCodeInvalidConfig),
		domain.IsErrorCode(err, domain.ErrCodeInternal):
		return http.StatusInternalServerError
	}

	if reqErr, ok := transport.IsRequestError(err); ok {
		if reqErr.Code == domain.ErrCodeRequestAborted {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	}
	if _, ok := domain.IsCheckoutError(err); ok {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// WriteError maps err to an HTTP response. Internal details are logged, not
// sent.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	status := ToHTTPStatus(err)

	detail := ErrorDetail{
		Code:    domain.ErrCodeUnknown,
		Message: domain.Message(domain.ErrCodeUnknown, domain.LanguageEN),
	}
	if ce, ok := domain.IsCheckoutError(err); ok {
		detail = ErrorDetail{Code: ce.Code, Message: ce.Message}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request rejected", "status", status, "error", err)
	}

	WriteJSON(w, status, ErrorResponse{Success: false, Error: detail}, logger)
}
