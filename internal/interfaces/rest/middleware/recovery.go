package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/interfaces/rest"
)

// Recovery turns a panicking handler into a 500 INTERNAL_ERROR response. The
// panic value and stack are logged, never sent.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("handler panicked",
					"panic", rec,
					"request_id", w.Header().Get(requestIDHeader),
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				err := domain.WrapError(domain.ErrCodeInternal, fmt.Errorf("panic: %v", rec))
				rest.WriteError(w, err, logger)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
