package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodsWithDetails(t *testing.T) {
	page := &domain.PaymentMethodsPage{
		Results: []domain.RawPaymentMethod{
			{PK: "3", PaymentMethod: "SPEI", Priority: 5, Category: "transfer"},
			{PK: "1", PaymentMethod: "VISA", Priority: 1, Category: "Cards"},
			{PK: "2", PaymentMethod: "oxxo pay", Priority: 2, Category: "cash"},
			{PK: "4", PaymentMethod: "unknown_store", Priority: 9, Category: "cash"},
		},
	}

	methods := domain.PaymentMethodsWithDetails(page)

	require.Len(t, methods, 3)
	assert.Equal(t, domain.ID("2"), methods[0].ID)
	assert.Equal(t, "Oxxo Pay", methods[0].Label)
	assert.Equal(t, "SPEI", methods[1].Label)
	assert.Empty(t, methods[2].Label)
	assert.Contains(t, methods[2].Icon, "store.png")
}

func TestPaymentMethodsWithDetails_NilPage(t *testing.T) {
	assert.Empty(t, domain.PaymentMethodsWithDetails(nil))
}

func TestCardBrandIcon(t *testing.T) {
	assert.Contains(t, domain.CardBrandIcon("Visa"), "/cards/visa.png")
	assert.Contains(t, domain.CardBrandIcon("American Express"), "/cards/american_express.png")
	assert.Contains(t, domain.CardBrandIcon("diners"), "/cards/default_card.png")
}

func TestCustomerCards_WithIcons(t *testing.T) {
	cards := &domain.CustomerCards{
		UserID: "7",
		Cards:  []domain.Card{{Fields: domain.CardFields{SkyflowID: "sk_1", CardScheme: "mastercard"}}},
	}

	decorated := cards.WithIcons()

	assert.Contains(t, decorated.Cards[0].Icon, "mastercard.png")
	assert.Empty(t, cards.Cards[0].Icon)
}

func TestMessage_Languages(t *testing.T) {
	assert.Equal(t, "Tarjeta registrada con éxito.", domain.Message(domain.MsgCardSaved, domain.LanguageES))
	assert.Equal(t, "Card saved successfully.", domain.Message(domain.MsgCardSaved, domain.LanguageEN))
	assert.Equal(t, "Hubo un problema al procesar el pago.", domain.Message(domain.ErrCodePaymentProcess, domain.LanguageES))
	assert.Equal(t, "Ocurrió un error inesperado.", domain.Message("NOT_A_CODE", domain.LanguageES))
}

func TestCheckoutError_Helpers(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("placing order: %w", domain.WrapError(domain.ErrCodeCreateOrder, cause))

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeCreateOrder))
	assert.False(t, domain.IsErrorCode(err, domain.ErrCodeCreatePayment))
	assert.Equal(t, domain.ErrCodeCreateOrder, domain.ErrorCode(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, domain.ErrCodeUnknown, domain.ErrorCode(cause))
}

func TestCustomization_Merge(t *testing.T) {
	base := domain.Customization{
		SaveCards:     domain.SaveCardsOptions{ShowSaved: true, ShowDeleteOption: true},
		PaymentButton: domain.PaymentButtonOptions{Show: true, Text: "Pagar"},
	}

	merged := base.Merge(&domain.CustomizationOverrides{
		AutoSave:          domain.Bool(true),
		PaymentButtonText: domain.String("Pay now"),
	})

	assert.True(t, merged.SaveCards.AutoSave)
	assert.True(t, merged.SaveCards.ShowSaved)
	assert.Equal(t, "Pay now", merged.PaymentButton.Text)
	assert.True(t, merged.PaymentButton.Show)
	assert.Equal(t, base, base.Merge(nil))
}
