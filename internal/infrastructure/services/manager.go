package services

import (
	"log/slog"

	"github.com/DanielPopoola/checkout-sdk/internal/config"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/transport"
)

// Manager owns one transport client and every resource service built on
// top of it. Cleanup aborts whatever the services still have in flight.
type Manager struct {
	client *transport.Client

	Business       *BusinessService
	Customer       *CustomerService
	Checkout       *CheckoutService
	Cards          *CardService
	PaymentMethods *PaymentMethodService
	VaultToken     *VaultTokenService
	SecureToken    *SecureTokenService
	Transactions   *TransactionService
}

// NewManager wires the services for cfg. Reads are retried per cfg.Retry;
// writes pass through the retry layer untouched.
func NewManager(cfg *config.Config, logger *slog.Logger, opts ...transport.ClientOption) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	clientOpts := append([]transport.ClientOption{
		transport.WithTimeout(cfg.HTTP.Timeout),
		transport.WithLogger(logger),
	}, opts...)

	client, err := transport.NewClient(cfg.SDK, clientOpts...)
	if err != nil {
		return nil, err
	}

	http := transport.NewRetryClient(client, cfg.Retry, logger)

	return &Manager{
		client:         client,
		Business:       NewBusinessService(http, client.APIKey()),
		Customer:       NewCustomerService(http, logger),
		Checkout:       NewCheckoutService(http),
		Cards:          NewCardService(http),
		PaymentMethods: NewPaymentMethodService(http),
		VaultToken:     NewVaultTokenService(http),
		SecureToken:    NewSecureTokenService(http),
		Transactions:   NewTransactionService(http),
	}, nil
}

func (m *Manager) BaseURL() string {
	return m.client.BaseURL()
}

func (m *Manager) Cleanup() {
	m.client.Cleanup()
}
