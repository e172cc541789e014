// Package sdk is the public entry point of the checkout module. It offers
// three session modes over the same orchestration core: Inline renders a
// prebuilt form from session state, Lite leaves the form to the merchant,
// and Enrollment only saves cards.
package sdk

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/checkout-sdk/internal/config"
	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/fingerprint"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/services"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/transport"
	"github.com/DanielPopoola/checkout-sdk/internal/session"
	"github.com/DanielPopoola/checkout-sdk/internal/vault"
)

type (
	Config    = config.Config
	State     = session.State
	Event     = session.Event
	EventName = session.EventName
	Listener  = session.Listener
	Show3DS   = session.Show3DS
	Challenge = session.Challenge

	Customer               = domain.Customer
	PaymentRequest         = domain.PaymentRequest
	Transaction            = domain.Transaction
	Callbacks              = domain.Callbacks
	CustomizationOverrides = domain.CustomizationOverrides
	CheckoutError          = domain.CheckoutError

	Collector     = vault.Collector
	CollectResult = vault.CollectResult

	FingerprintProvider = fingerprint.Provider
)

const (
	EventShow3DS = session.EventShow3DS
	EventHide3DS = session.EventHide3DS
)

// ErrIncompleteInputs is returned by collectors whose card form is not fully
// filled in.
var ErrIncompleteInputs = vault.ErrIncompleteInputs

// LoadConfig reads the SDK configuration from the environment.
func LoadConfig() (*Config, error) {
	return config.LoadConfig()
}

// CreateOptions configures a session on Create. Customization is applied on
// top of the mode defaults.
type CreateOptions struct {
	ReturnURL     string
	SecureToken   string
	Customer      *Customer
	PaymentData   *PaymentRequest
	Customization *CustomizationOverrides
	Callbacks     Callbacks
	Collector     Collector
}

type Option func(*options)

type options struct {
	logger      *slog.Logger
	httpClient  *http.Client
	fingerprint fingerprint.Provider
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithHTTPClient replaces the HTTP client used for backend calls. The
// configured timeout is applied to it.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

func WithFingerprintProvider(p FingerprintProvider) Option {
	return func(o *options) { o.fingerprint = p }
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newManager(cfg *Config, o options) (*services.Manager, error) {
	var clientOpts []transport.ClientOption
	if o.httpClient != nil {
		// The timeout option runs first, so reapply it to the replacement.
		hc := *o.httpClient
		hc.Timeout = cfg.HTTP.Timeout
		clientOpts = append(clientOpts, transport.WithHTTPClient(&hc))
	}
	return services.NewManager(cfg, o.logger, clientOpts...)
}

func newStore(cfg *Config, o options) (*session.Store, error) {
	return session.NewStore(cfg, func() (*services.Manager, error) {
		return newManager(cfg, o)
	}, o.logger)
}

// sessionHandle carries the state access every mode exposes.
type sessionHandle struct {
	store *session.Store
}

// State returns a copy of the current session state.
func (h sessionHandle) State() State {
	return h.store.GetState()
}

// Subscribe registers fn for every state change and returns its remover.
func (h sessionHandle) Subscribe(fn func(State)) func() {
	return h.store.Subscribe(fn)
}

// On registers l for the named event and returns its remover.
func (h sessionHandle) On(name EventName, l Listener) func() {
	return h.store.On(name, l)
}

// Reset aborts in-flight requests and starts over with an empty session.
// Event listeners are dropped; state subscribers are kept.
func (h sessionHandle) Reset() error {
	return h.store.Reset()
}

// classifySaveError returns the error a failed card save reports and the
// code of its state message. Checkout errors keep their own code.
func classifySaveError(err error) (error, string) {
	if vault.IsIncompleteInputs(err) {
		return domain.WrapError(domain.ErrCodeInvalidCardData, err), domain.ErrCodeInvalidCardData
	}
	if ce, ok := domain.IsCheckoutError(err); ok {
		return err, ce.Code
	}
	return domain.WrapError(domain.ErrCodeSaveCardProcess, err), domain.ErrCodeSaveCardProcess
}

// paymentData stores req as the session's payment data when given and
// returns what the next payment should charge.
func paymentData(store *session.Store, gen uint64, req *PaymentRequest) *PaymentRequest {
	if req != nil {
		r := *req
		store.SetStateIf(gen, func(st *session.State) { st.PaymentData = &r })
		return &r
	}
	return store.GetState().PaymentData
}

func finishSave(ctx context.Context, cb func(context.Context, domain.SaveCardResult), res domain.SaveCardResult) {
	if cb != nil {
		cb(ctx, res)
	}
}
