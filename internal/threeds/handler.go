// Package threeds drives the post-router authentication flow: verifying the
// transaction, presenting challenges and resuming on the next provider.
package threeds

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/DanielPopoola/checkout-sdk/internal/config"
	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/session"
)

// providerNuvei settles synchronously; an approved router reply from it needs
// no verification round.
const providerNuvei = "nuvei"

type Verifier interface {
	VerifyTransactionStatus(ctx context.Context, verifyURL string) (*domain.Transaction, error)
}

type Resumer interface {
	ResumeCheckout(ctx context.Context, checkoutID string) (*domain.CheckoutResponse, error)
}

type Emitter interface {
	Emit(e session.Event)
}

// FinishFunc receives the outcome of Handle. Exactly one of tx and err is
// non-nil.
type FinishFunc func(ctx context.Context, tx *domain.Transaction, err error)

var ErrChallengeTimeout = errors.New("challenge not completed in time")

type Handler struct {
	verifier Verifier
	resumer  Resumer
	events   Emitter
	logger   *slog.Logger

	maxAttempts      int
	challengeTimeout time.Duration

	mu        sync.Mutex
	verifyURL string
}

func NewHandler(verifier Verifier, resumer Resumer, events Emitter, cfg config.ThreeDSConfig, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Handler{
		verifier:         verifier,
		resumer:          resumer,
		events:           events,
		logger:           logger,
		maxAttempts:      maxAttempts,
		challengeTimeout: cfg.ChallengeTimeout,
	}
}

// VerifyURL is the status URL of the round in progress, empty otherwise.
func (h *Handler) VerifyURL() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.verifyURL
}

func (h *Handler) setVerifyURL(u string) {
	h.mu.Lock()
	h.verifyURL = u
	h.mu.Unlock()
}

// Handle runs rounds until the transaction settles, the route is exhausted
// or an error ends the attempt. Each round follows the router reply: verify
// it, show a challenge when the reply carries a redirect, verify again and
// resume on the next provider when the result is still open. finish is
// called exactly once before Handle returns.
func (h *Handler) Handle(ctx context.Context, payload *domain.CheckoutResponse, returnURL string, finish FinishFunc) (*domain.Transaction, error) {
	tx, err := h.run(ctx, payload, returnURL)

	h.setVerifyURL("")
	h.events.Emit(session.Hide3DS{})
	if finish != nil {
		finish(ctx, tx, err)
	}
	return tx, err
}

func (h *Handler) run(ctx context.Context, payload *domain.CheckoutResponse, returnURL string) (*domain.Transaction, error) {
	checkoutID := ""

	for attempt := 1; ; attempt++ {
		if payload == nil {
			return nil, domain.WrapError(domain.ErrCodeThreeDSRedirection, errors.New("empty router response"))
		}
		if payload.CheckoutID != "" {
			checkoutID = payload.CheckoutID
		}

		redirectURL := payload.RedirectURL()
		h.setVerifyURL(payload.VerifyURL())

		if payload.Provider == providerNuvei &&
			(payload.TransactionStatus == domain.StatusSuccess || payload.TransactionStatus == domain.StatusAuthorized) {
			return payload.AsTransaction(), nil
		}

		tx, err := h.verify(ctx, payload)
		if err != nil {
			return nil, domain.WrapError(domain.ErrCodeThreeDSRedirection, err)
		}
		if redirectURL == "" {
			return tx, nil
		}

		if err := h.challenge(ctx, redirectURL, returnURL); err != nil {
			return nil, domain.WrapError(domain.ErrCodeThreeDSRedirection, err)
		}

		tx, err = h.verify(ctx, payload)
		if err != nil {
			return nil, domain.WrapError(domain.ErrCodeThreeDSRedirection, err)
		}
		if tx.IsTerminal() {
			return tx, nil
		}

		if tx.Checkout.ID != "" {
			checkoutID = tx.Checkout.ID
		}
		// A resume starts a router attempt that must get its own round.
		if attempt >= h.maxAttempts {
			return nil, domain.WrapError(domain.ErrCodeThreeDSRedirection,
				fmt.Errorf("checkout %s still open after %d rounds", checkoutID, h.maxAttempts))
		}
		h.logger.Info("resuming checkout on next provider",
			"checkout_id", checkoutID,
			"attempt", attempt,
			"transaction_status", tx.TransactionStatus,
		)

		// Resume failures are already classified by the router service.
		payload, err = h.resumer.ResumeCheckout(ctx, checkoutID)
		if err != nil {
			return nil, err
		}
	}
}

// verify polls the stored status URL. Without one, the router reply is the
// only word on the transaction.
func (h *Handler) verify(ctx context.Context, payload *domain.CheckoutResponse) (*domain.Transaction, error) {
	u := h.VerifyURL()
	if u == "" {
		return payload.AsTransaction(), nil
	}
	return h.verifier.VerifyTransactionStatus(ctx, u)
}

func (h *Handler) challenge(ctx context.Context, redirectURL, returnURL string) error {
	ch := session.NewChallenge(redirectURL, returnURL)
	h.events.Emit(session.Show3DS{Challenge: ch})

	var timeout <-chan time.Time
	if h.challengeTimeout > 0 {
		timer := time.NewTimer(h.challengeTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case <-ch.Done():
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	case <-timeout:
		return ErrChallengeTimeout
	}
}
