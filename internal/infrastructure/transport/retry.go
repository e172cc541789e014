package transport

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/DanielPopoola/checkout-sdk/internal/config"
)

// RetryClient retries idempotent reads. Writes (orders, payments, router
// calls) go through exactly once.
type RetryClient struct {
	inner      Doer
	baseDelay  time.Duration
	maxRetries int
	logger     *slog.Logger
}

func NewRetryClient(inner Doer, cfg config.RetryConfig, logger *slog.Logger) *RetryClient {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RetryClient{
		inner:      inner,
		baseDelay:  cfg.BaseDelay,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

func (r *RetryClient) Do(ctx context.Context, req Request, out any) error {
	if req.Method != http.MethodGet {
		return r.inner.Do(ctx, req, out)
	}

	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return abortedError(err)
		}

		err := r.inner.Do(ctx, req, out)
		if err == nil {
			return nil
		}

		lastErr = err

		if !isRetryable(err) {
			return err
		}

		if attempt < r.maxRetries-1 {
			delay := r.backoff(attempt)
			r.logger.Warn("retrying backend read",
				"path", req.Path,
				"attempt", attempt+1,
				"delay", delay,
				"error", err,
			)
			select {
			case <-ctx.Done():
				return abortedError(ctx.Err())
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

func isRetryable(err error) bool {
	reqErr, ok := IsRequestError(err)
	if !ok {
		return false
	}
	return reqErr.IsRetryable()
}

// Backoff calculation with exponential delay and jitter
func (r *RetryClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)
	if r.baseDelay <= 0 {
		return 0
	}

	jitter := time.Duration(rand.Int63n(int64(r.baseDelay)/2 + 1))

	return base + jitter
}
