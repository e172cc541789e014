// Package checkout orchestrates a session end to end: merchant bootstrap,
// customer registration, the order/payment/router sequence and card
// enrollment.
package checkout

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/session"
	"github.com/DanielPopoola/checkout-sdk/internal/vault"
)

// Options is what a mode facade hands over on Create. Customization is
// already merged with the mode defaults.
type Options struct {
	ReturnURL     string
	SecureToken   string
	Customer      *domain.Customer
	PaymentData   *domain.PaymentRequest
	Customization domain.Customization
	Callbacks     domain.Callbacks
	Collector     vault.Collector
	UIData        domain.UIData
}

// apply copies the caller-provided options into the session state.
func (o Options) apply(st *session.State) {
	st.Customization = o.Customization
	st.Callbacks = o.Callbacks
	st.UIData = o.UIData
	if o.ReturnURL != "" {
		st.ReturnURL = o.ReturnURL
	}
	if o.SecureToken != "" {
		st.SecureToken = o.SecureToken
	}
	if o.Customer != nil {
		st.Customer = o.Customer
	}
	if o.PaymentData != nil {
		st.PaymentData = o.PaymentData
	}
	if o.Collector != nil {
		st.Collector = o.Collector
	}
	st.IsCreating = true
	st.IsCreated = false
}

// base holds the steps shared by the payment and enrollment flows.
type base struct {
	store  *session.Store
	logger *slog.Logger
	lang   domain.Language
	env    domain.Environment
}

func newBase(store *session.Store, logger *slog.Logger) base {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := store.Config()
	return base{
		store:  store,
		logger: logger,
		lang:   domain.Language(cfg.SDK.Language),
		env:    domain.Environment(cfg.SDK.Mode),
	}
}

// Message resolves a state message in the session language.
func (b *base) Message(code string) string {
	return domain.Message(code, b.lang)
}

// loadInitialData fetches the merchant and, when the session already knows
// the shopper, registers them. Customer failures do not fail the session.
func (b *base) loadInitialData(ctx context.Context, gen uint64) error {
	merchant, err := b.store.Services().Business.FetchBusiness(ctx)
	if err != nil {
		return err
	}
	b.store.SetStateIf(gen, func(st *session.State) { st.MerchantData = merchant })

	st := b.store.GetState()
	customer := st.Customer
	if st.PaymentData != nil && !st.PaymentData.Customer.IsEmpty() {
		customer = &st.PaymentData.Customer
	}
	if _, err := b.registerCustomer(ctx, gen, customer); err != nil {
		b.logger.Warn("customer registration skipped", "error", err)
	}
	return nil
}

func (b *base) registerCustomer(ctx context.Context, gen uint64, customer *domain.Customer) (*domain.CustomerRecord, error) {
	if customer.IsEmpty() {
		b.logger.Debug("no customer data provided, skipping registration")
		return nil, nil
	}

	record, err := b.store.Services().Customer.RegisterOrFetch(ctx, *customer)
	if err != nil {
		if _, ok := domain.IsCheckoutError(err); ok {
			return nil, err
		}
		return nil, domain.WrapError(domain.ErrCodeStateError, err)
	}
	b.store.SetStateIf(gen, func(st *session.State) { st.CustomerData = record })
	return record, nil
}

// initProviders builds the vault configuration and, for payment modes,
// records whether the merchant runs the secondary provider.
func (b *base) initProviders(gen uint64, secondary bool) {
	merchant := b.store.GetState().MerchantData
	if merchant == nil {
		return
	}

	tokens := b.store.Services().VaultToken
	vaultCfg := vault.BuildProviderConfig(merchant, b.env, func(ctx context.Context) (string, error) {
		return tokens.GetVaultToken(ctx, b.store.SecureToken())
	})

	b.store.SetStateIf(gen, func(st *session.State) {
		if vaultCfg != nil {
			st.VaultConfig = vaultCfg
		}
		st.SecondaryProviderActive = secondary && merchant.MercadoPago.Active
	})
}

func (b *base) createFailed(gen uint64, err error, messageCode string) error {
	out := err
	if _, ok := domain.IsCheckoutError(err); !ok {
		out = domain.WrapError(domain.ErrCodeCreate, err)
	}
	b.store.SetStateIf(gen, func(st *session.State) {
		st.Err = out
		st.IsCreating = false
		if messageCode != "" {
			st.Message = b.Message(messageCode)
		}
	})
	b.logger.Error("session create failed", "error", out)
	return out
}

func (b *base) created(gen uint64) {
	b.store.SetStateIf(gen, func(st *session.State) {
		st.IsCreated = true
		st.IsCreating = false
	})
}

// CustomerCards lists the stored cards of the session customer with brand
// icons attached.
func (b *base) CustomerCards(ctx context.Context) (*domain.CustomerCards, error) {
	cards, err := b.store.Services().Cards.FetchCustomerCards(ctx, b.store.CardCredentials())
	if err != nil {
		return nil, err
	}
	return cards.WithIcons(), nil
}

// GetCardSummary returns the masked details of a stored card.
func (b *base) GetCardSummary(ctx context.Context, cardID string) (*domain.CardSummary, error) {
	return b.store.Services().Cards.GetCardSummary(ctx, b.store.CardCredentials(), cardID)
}

func (b *base) saveCard(ctx context.Context, gen uint64, cardID string) (*domain.SavedCard, error) {
	saved, err := b.store.Services().Cards.SaveCustomerCard(ctx, b.store.CardCredentials(), domain.SaveCardRequest{SkyflowID: cardID})
	if err != nil {
		return nil, err
	}
	b.store.SetStateIf(gen, func(st *session.State) { st.Message = b.Message(domain.MsgCardSaved) })
	return saved, nil
}

// CollectCard tokenizes the card form held by the session's collector.
func (b *base) CollectCard(ctx context.Context) (*domain.CardFields, error) {
	collector := b.store.GetState().Collector
	if collector == nil {
		return nil, domain.NewError(domain.ErrCodeVaultNotInitialized)
	}
	res, err := collector.Collect(ctx)
	if err != nil {
		return nil, err
	}
	card := res.Card()
	if card == nil || card.SkyflowID == "" {
		return nil, domain.NewError(domain.ErrCodeInvalidCardData)
	}
	return card, nil
}
