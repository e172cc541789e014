package sdk

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/checkout-sdk/internal/checkout"
	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/session"
)

var enrollmentDefaults = domain.Customization{
	SaveButton:   domain.SaveButtonOptions{Show: true, Text: "Guardar"},
	ShowMessages: true,
}

// Enrollment is a session that only saves cards for later payments.
type Enrollment struct {
	sessionHandle
	enrollment *checkout.Enrollment
	logger     *slog.Logger
}

func NewEnrollment(cfg *Config, opts ...Option) (*Enrollment, error) {
	o := newOptions(opts)
	store, err := newStore(cfg, o)
	if err != nil {
		return nil, err
	}
	return &Enrollment{
		sessionHandle: sessionHandle{store: store},
		enrollment:    checkout.NewEnrollment(store, o.logger),
		logger:        o.logger,
	}, nil
}

func (e *Enrollment) Create(ctx context.Context, opts CreateOptions) error {
	return e.enrollment.Create(ctx, checkout.Options{
		ReturnURL:     opts.ReturnURL,
		SecureToken:   opts.SecureToken,
		Customer:      opts.Customer,
		Customization: enrollmentDefaults.Merge(opts.Customization),
		Callbacks:     opts.Callbacks,
		Collector:     opts.Collector,
	})
}

// SaveCustomerCard runs BeforeSave, tokenizes the card form, stores the card
// and reports the outcome to OnFinishSave. A failing BeforeSave is reported
// like any other failure.
func (e *Enrollment) SaveCustomerCard(ctx context.Context) (*domain.SavedCard, error) {
	ctx, gen, release := e.store.Bind(ctx)
	defer release()

	callbacks := e.store.GetState().Callbacks
	saved, err := e.save(ctx, gen, callbacks.BeforeSave)
	if err != nil {
		err = e.saveFailed(gen, err)
	} else {
		e.store.SetStateIf(gen, func(st *session.State) { st.IsProcessing = false })
	}

	finishSave(ctx, callbacks.OnFinishSave, domain.SaveCardResult{Card: saved, Err: err})
	return saved, err
}

func (e *Enrollment) save(ctx context.Context, gen uint64, beforeSave func(context.Context) error) (*domain.SavedCard, error) {
	if beforeSave != nil {
		if err := beforeSave(ctx); err != nil {
			return nil, err
		}
	}

	e.store.SetStateIf(gen, func(st *session.State) { st.IsProcessing = true })
	card, err := e.enrollment.CollectCard(ctx)
	if err != nil {
		return nil, err
	}
	return e.enrollment.SaveCard(ctx, gen, card.SkyflowID)
}

// saveFailed classifies err: an unfinished form is the shopper's to fix,
// typed errors keep their code and anything else failed the save itself.
func (e *Enrollment) saveFailed(gen uint64, err error) error {
	out, code := classifySaveError(err)
	e.store.SetStateIf(gen, func(st *session.State) {
		st.Err = out
		st.IsProcessing = false
		st.Message = e.enrollment.Message(code)
	})
	e.logger.Error("enrollment save failed", "error", out)
	return out
}

func (e *Enrollment) GetCustomerCards(ctx context.Context) (*domain.CustomerCards, error) {
	return e.enrollment.CustomerCards(ctx)
}

func (e *Enrollment) GetCardSummary(ctx context.Context, cardID string) (*domain.CardSummary, error) {
	return e.enrollment.GetCardSummary(ctx, cardID)
}
