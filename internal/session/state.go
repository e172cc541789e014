package session

import (
	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/vault"
)

// State is one checkout session. Readers always get a copy.
type State struct {
	SessionID string

	SecureToken string
	ReturnURL   string

	MerchantData        *domain.Business
	Customer            *domain.Customer
	CustomerData        *domain.CustomerRecord
	PaymentData         *domain.PaymentRequest
	InternalPaymentData *domain.PreparedPayment

	VaultConfig *domain.VaultProviderConfig
	Collector   vault.Collector

	Customization domain.Customization
	Callbacks     domain.Callbacks
	UIData        domain.UIData

	SecondaryProviderActive bool

	IsCreating   bool
	IsCreated    bool
	IsProcessing bool

	Err     error
	Message string
}

func (s State) clone() State {
	if s.UIData.Cards != nil {
		s.UIData.Cards = append([]domain.Card(nil), s.UIData.Cards...)
	}
	if s.UIData.PaymentMethods != nil {
		s.UIData.PaymentMethods = append([]domain.PaymentMethod(nil), s.UIData.PaymentMethods...)
	}
	return s
}
