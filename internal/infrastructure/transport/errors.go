package transport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
)

const defaultFailureMessage = "Request failed"

// RequestError is a failed call to the backend. Code is HTTP_<status> for
// non-2xx replies, otherwise one of the domain transport codes.
type RequestError struct {
	Code       string
	Message    string
	StatusCode int
	Body       map[string]any
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("request error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("request error [%s]: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("request error [%s]: %s", e.Code, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsRetryable is true for server-side failures and network errors. Aborted
// requests never retry.
func (e *RequestError) IsRetryable() bool {
	if e.StatusCode >= 500 {
		return true
	}
	return e.Code == domain.ErrCodeRequestFailed
}

func IsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	ok := errors.As(err, &reqErr)
	return reqErr, ok
}

func httpError(status int, body map[string]any) *RequestError {
	message := defaultFailureMessage
	if detail, ok := body["detail"].(string); ok && strings.TrimSpace(detail) != "" {
		message = detail
	}
	return &RequestError{
		Code:       fmt.Sprintf("HTTP_%d", status),
		Message:    message,
		StatusCode: status,
		Body:       body,
	}
}

func abortedError(err error) *RequestError {
	return &RequestError{
		Code:    domain.ErrCodeRequestAborted,
		Message: domain.Message(domain.ErrCodeRequestAborted, domain.LanguageEN),
		Err:     err,
	}
}

func failedError(err error) *RequestError {
	return &RequestError{
		Code:    domain.ErrCodeRequestFailed,
		Message: domain.Message(domain.ErrCodeRequestFailed, domain.LanguageEN),
		Err:     err,
	}
}

func unknownError(err error) *RequestError {
	return &RequestError{
		Code:    domain.ErrCodeUnknown,
		Message: domain.Message(domain.ErrCodeUnknown, domain.LanguageEN),
		Err:     err,
	}
}
