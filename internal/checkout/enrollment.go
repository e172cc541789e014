package checkout

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/session"
)

// Enrollment saves cards outside of a payment.
type Enrollment struct {
	base
}

func NewEnrollment(store *session.Store, logger *slog.Logger) *Enrollment {
	return &Enrollment{base: newBase(store, logger)}
}

// Create bootstraps an enrollment session. The secondary payment provider
// is never started here.
func (e *Enrollment) Create(ctx context.Context, opts Options) error {
	gen := e.store.Generation()
	e.store.SetStateIf(gen, opts.apply)

	if err := e.loadInitialData(ctx, gen); err != nil {
		return e.createFailed(gen, err, domain.ErrCodeLoadEnrollmentForm)
	}
	e.initProviders(gen, false)

	e.created(gen)
	return nil
}

// SaveCard stores a tokenized card for the session's customer. gen is the
// session generation the save belongs to.
func (e *Enrollment) SaveCard(ctx context.Context, gen uint64, cardID string) (*domain.SavedCard, error) {
	if cardID == "" {
		return nil, domain.NewError(domain.ErrCodeInvalidCardData)
	}
	return e.saveCard(ctx, gen, cardID)
}
