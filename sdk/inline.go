package sdk

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/checkout-sdk/internal/checkout"
	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/session"
)

var inlineDefaults = domain.Customization{
	SaveCards: domain.SaveCardsOptions{
		ShowSaveCardOption: true,
		ShowSaved:          true,
		AutoSave:           false,
		ShowDeleteOption:   true,
	},
	PaymentButton: domain.PaymentButtonOptions{
		Show:       true,
		Text:       "Pagar",
		ShowAmount: true,
	},
	ShowPaymentMethods: true,
	ShowCardForm:       true,
	ShowMessages:       true,
}

// Inline is a session behind a prebuilt payment form. The form reads cards,
// payment methods and the current selection from State.UIData.
type Inline struct {
	sessionHandle
	svc    *checkout.Service
	logger *slog.Logger
}

func NewInline(cfg *Config, opts ...Option) (*Inline, error) {
	o := newOptions(opts)
	store, err := newStore(cfg, o)
	if err != nil {
		return nil, err
	}
	return &Inline{
		sessionHandle: sessionHandle{store: store},
		svc:           checkout.NewService(store, checkout.ModeInline, o.fingerprint, o.logger),
		logger:        o.logger,
	}, nil
}

// Create loads the merchant, the customer and the data the form renders.
func (i *Inline) Create(ctx context.Context, opts CreateOptions) error {
	return i.svc.Create(ctx, checkout.Options{
		ReturnURL:     opts.ReturnURL,
		SecureToken:   opts.SecureToken,
		Customer:      opts.Customer,
		PaymentData:   opts.PaymentData,
		Customization: inlineDefaults.Merge(opts.Customization),
		Callbacks:     opts.Callbacks,
		Collector:     opts.Collector,
		UIData: domain.UIData{
			SelectedMethod: domain.SelectedMethodNew,
			Cards:          []domain.Card{},
			PaymentMethods: []domain.PaymentMethod{},
		},
	})
}

// Payment charges req with whatever the shopper selected in the form: a
// saved card, a payment method, or the new card form. A nil req charges the
// payment data given to Create.
func (i *Inline) Payment(ctx context.Context, req *PaymentRequest) (*Transaction, error) {
	gen := i.store.Generation()
	var r PaymentRequest
	if data := paymentData(i.store, gen, req); data != nil {
		r = *data
	}
	ui := i.store.GetState().UIData
	r.Card = ui.Card
	r.PaymentMethod = ui.PaymentMethod
	if r.IsEmpty() {
		i.logger.Warn("payment rejected", "reason", "empty payment request")
		return nil, i.svc.HandlePaymentError(ctx, gen, domain.NewError(domain.ErrCodeInvalidPaymentRequest))
	}

	tx, err := i.svc.SetupPaymentFlow(ctx, r)
	if err != nil {
		return nil, i.svc.HandlePaymentError(ctx, gen, err)
	}
	return tx, nil
}

// SelectPaymentMethod records the shopper's choice. method is
// domain.SelectedMethodNew for the card form, a saved card id, or the
// name of a payment method.
func (i *Inline) SelectPaymentMethod(method string) {
	u := session.UIUpdate{SelectedMethod: method}
	if method != domain.SelectedMethodNew {
		if i.isSavedCard(method) {
			u.Card = method
		} else {
			u.PaymentMethod = method
		}
	}
	i.store.UpdateUI(u)
}

// SetSaveCard toggles the "save this card" checkbox of the card form.
func (i *Inline) SetSaveCard(save bool) {
	i.store.UpdateUI(session.UIUpdate{SaveCard: &save})
}

func (i *Inline) isSavedCard(id string) bool {
	for _, c := range i.store.GetState().UIData.Cards {
		if c.Fields.SkyflowID == id {
			return true
		}
	}
	return false
}

// RemoveCustomerCard deletes a saved card, refreshes the list and falls
// back to the card form when the removed card was selected.
func (i *Inline) RemoveCustomerCard(ctx context.Context, cardID string) (string, error) {
	callbacks := i.store.GetState().Callbacks
	if hook := callbacks.BeforeDeleteCard; hook != nil {
		if err := hook(ctx); err != nil {
			return "", err
		}
	}

	gen := i.store.Generation()
	msg, err := i.svc.RemoveCustomerCard(ctx, cardID)
	if cb := callbacks.OnFinishDeleteCard; cb != nil {
		cb(ctx, domain.RemoveCardResult{Message: msg, Err: err})
	}
	if err != nil {
		i.logger.Error("remove card failed", "error", err)
		return "", err
	}

	if i.store.GetState().UIData.Card == cardID {
		i.store.UpdateUIIf(gen, session.UIUpdate{SelectedMethod: domain.SelectedMethodNew})
	}
	i.svc.RefreshUIData(ctx, true, false)
	return msg, nil
}

// VerifyURL is the status URL of the 3DS round in progress, if any.
func (i *Inline) VerifyURL() string {
	return i.svc.VerifyURL()
}
