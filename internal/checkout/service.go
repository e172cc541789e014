package checkout

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DanielPopoola/checkout-sdk/internal/config"
	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/fingerprint"
	"github.com/DanielPopoola/checkout-sdk/internal/session"
	"github.com/DanielPopoola/checkout-sdk/internal/threeds"
	"github.com/DanielPopoola/checkout-sdk/internal/vault"
	"golang.org/x/sync/errgroup"
)

const (
	orderStatusActive = "A"
	routerProductID   = "no_id"
	routerShipID      = "0"
	routerShipTitle   = "shipping"
	routerDescription = "transaction"
	sdkUserAgent      = "checkout-sdk-go"
)

type Mode string

const (
	ModeInline Mode = "inline"
	ModeLite   Mode = "lite"
)

// Service runs the payment flow for the inline and lite modes.
type Service struct {
	base
	mode        Mode
	fingerprint fingerprint.Provider
	policy      config.FingerprintPolicy
	threeDS     config.ThreeDSConfig

	processing atomic.Bool
	handler    atomic.Pointer[threeds.Handler]
}

func NewService(store *session.Store, mode Mode, fp fingerprint.Provider, logger *slog.Logger) *Service {
	b := newBase(store, logger)
	if fp == nil {
		fp = fingerprint.NewNoop(b.logger)
	}
	cfg := store.Config()
	return &Service{
		base:        b,
		mode:        mode,
		fingerprint: fp,
		policy:      cfg.Fingerprint.Policy,
		threeDS:     cfg.ThreeDS,
	}
}

// Create bootstraps the session: merchant, customer, providers and, in
// inline mode, the saved cards and payment methods to render.
func (s *Service) Create(ctx context.Context, opts Options) error {
	gen := s.store.Generation()
	baseURL := s.store.Services().BaseURL()
	s.store.SetStateIf(gen, func(st *session.State) {
		opts.apply(st)
		if st.ReturnURL == "" {
			st.ReturnURL = baseURL
		}
	})

	if err := s.loadInitialData(ctx, gen); err != nil {
		return s.createFailed(gen, err, "")
	}
	s.initProviders(gen, true)

	if s.mode == ModeInline {
		s.refreshUIData(ctx, gen, true, true)
	}

	s.created(gen)
	return nil
}

// SetupPaymentFlow runs one payment: hooks, card tokenization, customer
// registration, optional card save, order, payment, router and the 3DS
// rounds. Only one payment may run per session at a time. A Reset while it
// runs cancels it, and nothing it learns afterwards reaches the new session.
func (s *Service) SetupPaymentFlow(ctx context.Context, req domain.PaymentRequest) (*domain.Transaction, error) {
	if !s.processing.CompareAndSwap(false, true) {
		return nil, domain.NewError(domain.ErrCodePaymentInProgress)
	}
	defer s.processing.Store(false)

	ctx, gen, release := s.store.Bind(ctx)
	defer release()

	s.store.SetStateIf(gen, func(st *session.State) { st.IsProcessing = true })

	st := s.store.GetState()
	if hook := st.Callbacks.BeforePayment; hook != nil {
		if err := hook(ctx); err != nil {
			return nil, err
		}
	}

	prepared, err := s.prepareCheckoutData(ctx, req)
	if err != nil {
		return nil, err
	}
	s.store.SetStateIf(gen, func(st *session.State) {
		customer := prepared.Customer
		st.Customer = &customer
		st.InternalPaymentData = prepared
	})

	if _, err := s.registerCustomer(ctx, gen, &prepared.Customer); err != nil {
		return nil, err
	}

	st = s.store.GetState()
	save := st.Customization.SaveCards.AutoSave || st.UIData.SaveCard
	if _, err := s.ValidateAndSaveCard(ctx, gen, prepared.CardID(), save); err != nil {
		return nil, err
	}

	s.refreshUIData(ctx, gen, true, false)

	resp, err := s.startCheckout(ctx, prepared)
	if err != nil {
		return nil, err
	}

	handler := threeds.NewHandler(s.store.Services().Transactions, s, s.store, s.threeDS, s.logger)
	s.handler.Store(handler)

	tx, err := handler.Handle(ctx, resp, st.ReturnURL, func(ctx context.Context, tx *domain.Transaction, err error) {
		current := s.store.SetStateIf(gen, func(st *session.State) { st.IsProcessing = false })
		if current && err == nil && st.Callbacks.OnFinishPayment != nil {
			st.Callbacks.OnFinishPayment(ctx, domain.PaymentResult{Transaction: tx})
		}
	})
	if err != nil {
		ce, _ := domain.IsCheckoutError(err)
		var details any
		if ce != nil {
			details = ce.Details
		}
		return nil, domain.WrapErrorWithDetails(domain.ErrCodePaymentProcess, err, details)
	}
	return tx, nil
}

// prepareCheckoutData normalizes req for the router. With neither a stored
// card nor a payment method, the card form is tokenized.
func (s *Service) prepareCheckoutData(ctx context.Context, req domain.PaymentRequest) (*domain.PreparedPayment, error) {
	prepared := &domain.PreparedPayment{
		Customer: req.Customer,
		Cart:     req.Cart,
		Metadata: req.Metadata,
		Currency: req.Currency,
	}
	if prepared.Currency == "" {
		prepared.Currency = domain.DefaultCurrency
	}
	if prepared.Metadata == nil {
		prepared.Metadata = map[string]any{}
	}

	switch {
	case req.Card != "":
		prepared.Card = &domain.CardFields{SkyflowID: req.Card}
	case req.PaymentMethod != "":
		prepared.PaymentMethod = req.PaymentMethod
	default:
		card, err := s.CollectCard(ctx)
		if err != nil {
			return nil, err
		}
		prepared.Card = card
	}
	return prepared, nil
}

// ValidateAndSaveCard stores cardID for future payments when save is set.
// An empty id is not an error: there is simply nothing to save.
func (s *Service) ValidateAndSaveCard(ctx context.Context, gen uint64, cardID string, save bool) (*domain.SavedCard, error) {
	if cardID == "" || !save {
		return nil, nil
	}
	return s.saveCard(ctx, gen, cardID)
}

func (s *Service) startCheckout(ctx context.Context, prepared *domain.PreparedPayment) (*domain.CheckoutResponse, error) {
	st := s.store.GetState()
	checkout := s.store.Services().Checkout

	var clientToken string
	var clientID domain.ID
	if st.CustomerData != nil {
		clientToken = st.CustomerData.AuthToken
		clientID = st.CustomerData.ID
	}
	merchant := st.MerchantData
	if merchant == nil {
		return nil, domain.NewError(domain.ErrCodeFetchBusiness)
	}

	order, err := checkout.CreateOrder(ctx, domain.OrderRequest{
		Business:   s.store.Config().SDK.APIKey,
		Client:     clientToken,
		Amount:     prepared.Cart.Total,
		Status:     orderStatusActive,
		Reference:  merchant.Reference,
		IsOneclick: true,
		Items:      prepared.Cart.Items,
	})
	if err != nil {
		return nil, err
	}

	payment, err := checkout.CreatePayment(ctx, domain.CreatePaymentRequest{
		BusinessPK: merchant.Business.PK,
		ClientID:   clientID,
		Amount:     prepared.Cart.Total,
		Date:       time.Now().UTC().Format(time.RFC3339Nano),
		OrderID:    order.ID,
	})
	if err != nil {
		return nil, err
	}

	deviceSessionID, err := s.deviceSessionID(ctx, merchant.OpenpayKeys)
	if err != nil {
		return nil, err
	}

	req := domain.RouterRequest{
		Name:            prepared.Customer.FirstName,
		LastName:        prepared.Customer.LastName,
		EmailClient:     prepared.Customer.Email,
		PhoneNumber:     prepared.Customer.Phone,
		ReturnURL:       st.ReturnURL,
		IDProduct:       routerProductID,
		QuantityProduct: 1,
		IDShip:          routerShipID,
		InstanceIDShip:  routerShipID,
		Amount:          prepared.Cart.Total,
		TitleShip:       routerShipTitle,
		Description:     routerDescription,
		DeviceSessionID: deviceSessionID,
		OrderID:         order.ID,
		BusinessID:      merchant.Business.PK,
		PaymentID:       payment.PK,
		Source:          domain.RouterSource,
		Metadata:        prepared.Metadata,
		BrowserInfo:     browserInfo(s.lang),
		Currency:        prepared.Currency,
	}
	if prepared.PaymentMethod != "" {
		req.PaymentMethod = prepared.PaymentMethod
	} else {
		req.Card = prepared.Card
	}

	return checkout.StartCheckoutRouter(ctx, req)
}

// deviceSessionID runs fingerprinting when the merchant has processor keys.
// Failures follow the configured policy.
func (s *Service) deviceSessionID(ctx context.Context, keys domain.ProcessorKeys) (string, error) {
	if !keys.Configured() {
		return "", nil
	}

	id, err := s.fingerprint.DeviceSessionID(ctx, keys.MerchantID, keys.PublicKey, !s.env.IsProduction())
	if err == nil {
		return id, nil
	}
	if s.policy == config.FingerprintAbort {
		return "", domain.WrapError(domain.ErrCodeStartCheckout, err)
	}
	s.logger.Warn("device fingerprinting failed, continuing without session id", "error", err)
	return "", nil
}

// ResumeCheckout continues checkoutID on the next provider of its route.
func (s *Service) ResumeCheckout(ctx context.Context, checkoutID string) (*domain.CheckoutResponse, error) {
	return s.store.Services().Checkout.ResumeCheckout(ctx, checkoutID)
}

// HandlePaymentError classifies err, records it on the session of
// generation gen and reports it to OnFinishPayment. A rejected concurrent
// payment leaves the running one untouched, and an error from a session
// that was reset since is returned without being recorded.
func (s *Service) HandlePaymentError(ctx context.Context, gen uint64, err error) error {
	if domain.IsErrorCode(err, domain.ErrCodePaymentInProgress) {
		return err
	}

	out := err
	messageCode := domain.ErrCodePaymentProcess
	switch {
	case vault.IsIncompleteInputs(err):
		out = domain.WrapError(domain.ErrCodeInvalidCardData, err)
		messageCode = domain.ErrCodeInvalidCardData
	default:
		if _, ok := domain.IsCheckoutError(err); !ok {
			out = domain.WrapError(domain.ErrCodePaymentProcess, err)
		}
	}

	recorded := s.store.SetStateIf(gen, func(st *session.State) {
		st.Err = out
		st.IsProcessing = false
		st.Message = s.Message(messageCode)
	})
	if !recorded {
		s.logger.Warn("payment of a reset session failed", "error", out)
		return out
	}
	s.logger.Error("payment failed", "error", out)

	if cb := s.store.GetState().Callbacks.OnFinishPayment; cb != nil {
		cb(ctx, domain.PaymentResult{Err: out})
	}
	return out
}

// RefreshUIData reloads the saved cards and payment methods the session is
// configured to show. Failures are logged and leave the previous data.
func (s *Service) RefreshUIData(ctx context.Context, cards, paymentMethods bool) {
	s.refreshUIData(ctx, s.store.Generation(), cards, paymentMethods)
}

func (s *Service) refreshUIData(ctx context.Context, gen uint64, cards, paymentMethods bool) {
	customization := s.store.GetState().Customization

	var g errgroup.Group
	if cards && customization.SaveCards.ShowSaved {
		g.Go(func() error {
			result, err := s.CustomerCards(ctx)
			if err != nil {
				s.logger.Warn("could not refresh saved cards", "error", err)
				return nil
			}
			s.store.UpdateUIIf(gen, session.UIUpdate{Cards: result.Cards})
			return nil
		})
	}
	if paymentMethods && customization.ShowPaymentMethods {
		g.Go(func() error {
			methods, err := s.store.Services().PaymentMethods.FetchPaymentMethods(ctx)
			if err != nil {
				s.logger.Warn("could not refresh payment methods", "error", err)
				return nil
			}
			s.store.UpdateUIIf(gen, session.UIUpdate{PaymentMethods: methods})
			return nil
		})
	}
	_ = g.Wait()
}

func (s *Service) RemoveCustomerCard(ctx context.Context, cardID string) (string, error) {
	return s.store.Services().Cards.RemoveCustomerCard(ctx, s.store.CardCredentials(), cardID)
}

func (s *Service) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return s.store.Services().PaymentMethods.FetchPaymentMethods(ctx)
}

// VerifyURL exposes the status URL of the 3DS round in progress, if any.
func (s *Service) VerifyURL() string {
	if h := s.handler.Load(); h != nil {
		return h.VerifyURL()
	}
	return ""
}

func browserInfo(lang domain.Language) domain.BrowserInfo {
	_, offset := time.Now().Zone()
	return domain.BrowserInfo{
		Language:  string(lang),
		TimeZone:  -offset / 60,
		UserAgent: sdkUserAgent,
	}
}
