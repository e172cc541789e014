package sdk

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/checkout-sdk/internal/checkout"
	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/session"
)

var liteDefaults = domain.Customization{
	SaveCards: domain.SaveCardsOptions{AutoSave: false},
}

// Lite is a session where the merchant renders its own form and calls the
// operations directly.
type Lite struct {
	sessionHandle
	svc    *checkout.Service
	logger *slog.Logger
}

func NewLite(cfg *Config, opts ...Option) (*Lite, error) {
	o := newOptions(opts)
	store, err := newStore(cfg, o)
	if err != nil {
		return nil, err
	}
	return &Lite{
		sessionHandle: sessionHandle{store: store},
		svc:           checkout.NewService(store, checkout.ModeLite, o.fingerprint, o.logger),
		logger:        o.logger,
	}, nil
}

func (l *Lite) Create(ctx context.Context, opts CreateOptions) error {
	return l.svc.Create(ctx, checkout.Options{
		ReturnURL:     opts.ReturnURL,
		SecureToken:   opts.SecureToken,
		Customer:      opts.Customer,
		PaymentData:   opts.PaymentData,
		Customization: liteDefaults.Merge(opts.Customization),
		Callbacks:     opts.Callbacks,
		Collector:     opts.Collector,
	})
}

// Payment charges req with req.Card, req.PaymentMethod, or the card form
// when neither is set. A nil req charges the payment data given to Create.
// Setting both card and payment method is rejected before any request.
func (l *Lite) Payment(ctx context.Context, req *PaymentRequest) (*Transaction, error) {
	gen := l.store.Generation()
	data := paymentData(l.store, gen, req)
	if data.IsEmpty() {
		return nil, l.svc.HandlePaymentError(ctx, gen, domain.NewError(domain.ErrCodeInvalidPaymentRequest))
	}
	if data.Card != "" && data.PaymentMethod != "" {
		l.logger.Warn("payment rejected", "reason", "card and payment method both set")
		return nil, l.svc.HandlePaymentError(ctx, gen, domain.NewError(domain.ErrCodeInvalidPaymentRequestCardPM))
	}

	tx, err := l.svc.SetupPaymentFlow(ctx, *data)
	if err != nil {
		return nil, l.svc.HandlePaymentError(ctx, gen, err)
	}
	return tx, nil
}

// SaveCustomerCard tokenizes the card form and stores the card.
func (l *Lite) SaveCustomerCard(ctx context.Context) (*domain.SavedCard, error) {
	ctx, gen, release := l.store.Bind(ctx)
	defer release()

	l.store.SetStateIf(gen, func(st *session.State) { st.IsProcessing = true })
	defer l.store.SetStateIf(gen, func(st *session.State) { st.IsProcessing = false })

	card, err := l.svc.CollectCard(ctx)
	if err != nil {
		return nil, l.saveFailed(gen, err)
	}
	saved, err := l.svc.ValidateAndSaveCard(ctx, gen, card.SkyflowID, true)
	if err != nil {
		return nil, l.saveFailed(gen, err)
	}
	return saved, nil
}

func (l *Lite) saveFailed(gen uint64, err error) error {
	out, code := classifySaveError(err)
	l.store.SetStateIf(gen, func(st *session.State) {
		st.Err = out
		st.Message = l.svc.Message(code)
	})
	l.logger.Error("save card failed", "error", out)
	return out
}

func (l *Lite) GetCustomerCards(ctx context.Context) (*domain.CustomerCards, error) {
	return l.svc.CustomerCards(ctx)
}

// RemoveCustomerCard deletes a saved card and returns the confirmation.
func (l *Lite) RemoveCustomerCard(ctx context.Context, cardID string) (string, error) {
	return l.svc.RemoveCustomerCard(ctx, cardID)
}

func (l *Lite) GetPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return l.svc.PaymentMethods(ctx)
}

func (l *Lite) GetCardSummary(ctx context.Context, cardID string) (*domain.CardSummary, error) {
	return l.svc.GetCardSummary(ctx, cardID)
}

func (l *Lite) VerifyURL() string {
	return l.svc.VerifyURL()
}
