package sdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/sdk"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInline(t *testing.T, opts sdk.CreateOptions) (*sdk.Inline, *httpmock.MockTransport) {
	t.Helper()
	mt, opt := newMock(t)
	registerSession(mt)
	inline, err := sdk.NewInline(testConfig(), opt)
	require.NoError(t, err)
	opts.SecureToken = "secure"
	opts.Customer = customer()
	require.NoError(t, inline.Create(context.Background(), opts))
	return inline, mt
}

func TestInline_CreateAppliesDefaults(t *testing.T) {
	inline, _ := newInline(t, sdk.CreateOptions{
		Customization: &sdk.CustomizationOverrides{PaymentButtonText: domain.String("Pay now")},
	})

	st := inline.State()
	assert.True(t, st.IsCreated)
	assert.True(t, st.Customization.SaveCards.ShowSaved)
	assert.True(t, st.Customization.SaveCards.ShowDeleteOption)
	assert.False(t, st.Customization.SaveCards.AutoSave)
	assert.True(t, st.Customization.PaymentButton.Show)
	assert.Equal(t, "Pay now", st.Customization.PaymentButton.Text)
	assert.Equal(t, domain.SelectedMethodNew, st.UIData.SelectedMethod)
	assert.Len(t, st.UIData.Cards, 2)
	assert.Len(t, st.UIData.PaymentMethods, 1)
}

func TestInline_PaymentRejectsEmptyRequest(t *testing.T) {
	inline, mt := newInline(t, sdk.CreateOptions{})
	before := mt.GetTotalCallCount()

	_, err := inline.Payment(context.Background(), &sdk.PaymentRequest{})

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidPaymentRequest))
	assert.Equal(t, before, mt.GetTotalCallCount())
	assert.Equal(t, err, inline.State().Err)
}

func TestInline_SelectPaymentMethod(t *testing.T) {
	inline, _ := newInline(t, sdk.CreateOptions{})

	inline.SelectPaymentMethod("sk_2")
	ui := inline.State().UIData
	assert.Equal(t, "sk_2", ui.Card)
	assert.Empty(t, ui.PaymentMethod)

	inline.SelectPaymentMethod("SPEI")
	ui = inline.State().UIData
	assert.Empty(t, ui.Card)
	assert.Equal(t, "SPEI", ui.PaymentMethod)

	inline.SelectPaymentMethod(domain.SelectedMethodNew)
	ui = inline.State().UIData
	assert.Empty(t, ui.Card)
	assert.Empty(t, ui.PaymentMethod)
	assert.Equal(t, domain.SelectedMethodNew, ui.SelectedMethod)
}

func TestInline_PaymentUsesSelection(t *testing.T) {
	inline, mt := newInline(t, sdk.CreateOptions{})
	registerCheckout(mt)
	var routed map[string]any
	mt.RegisterResponder(http.MethodPost, api+"/api/v1/checkout-router/",
		func(req *http.Request) (*http.Response, error) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&routed))
			return httpmock.NewJsonResponse(200, map[string]any{"checkout_id": "chk_1", "transaction_status": "Authorized"})
		})
	inline.SelectPaymentMethod("SPEI")

	tx, err := inline.Payment(context.Background(), &sdk.PaymentRequest{
		Customer: *customer(),
		Cart:     domain.Cart{Total: domain.NewAmount(50), Items: []domain.Item{{Name: "Pen", Quantity: 1}}},
		Card:     "ignored",
	})

	require.NoError(t, err)
	assert.True(t, tx.IsApproved())
	assert.Equal(t, "SPEI", routed["payment_method"])
	assert.NotContains(t, routed, "card")
}

func TestInline_PaymentUsesCreatePaymentData(t *testing.T) {
	inline, mt := newInline(t, sdk.CreateOptions{
		PaymentData: &sdk.PaymentRequest{
			Customer: *customer(),
			Cart:     domain.Cart{Total: domain.NewAmount(50), Items: []domain.Item{{Name: "Pen", Quantity: 1}}},
		},
	})
	registerCheckout(mt)
	inline.SelectPaymentMethod("sk_2")

	tx, err := inline.Payment(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, domain.ID("77"), tx.ID)
	assert.Equal(t, 1, mt.GetCallCountInfo()["POST "+api+"/api/v1/checkout-router/"])
}

func TestInline_RemoveCustomerCard(t *testing.T) {
	var before, after int
	var result domain.RemoveCardResult
	inline, mt := newInline(t, sdk.CreateOptions{
		Callbacks: sdk.Callbacks{
			BeforeDeleteCard:   func(context.Context) error { before++; return nil },
			OnFinishDeleteCard: func(_ context.Context, res domain.RemoveCardResult) { after++; result = res },
		},
	})
	mt.RegisterResponder(http.MethodDelete, api+"/api/v1/business/10/cards/sk_1/",
		httpmock.NewStringResponder(204, ``))
	inline.SelectPaymentMethod("sk_1")
	mt.RegisterResponder(http.MethodGet, api+"/api/v1/business/10/cards/",
		httpmock.NewStringResponder(200, `{"user_id": 5, "cards": [{"fields": {"skyflow_id": "sk_2"}}]}`))

	msg, err := inline.RemoveCustomerCard(context.Background(), "sk_1")

	require.NoError(t, err)
	assert.Equal(t, "Card deleted successfully.", msg)
	assert.Equal(t, 1, before)
	assert.Equal(t, 1, after)
	assert.Equal(t, msg, result.Message)
	ui := inline.State().UIData
	assert.Equal(t, domain.SelectedMethodNew, ui.SelectedMethod)
	assert.Empty(t, ui.Card)
	require.Len(t, ui.Cards, 1)
	assert.Equal(t, "sk_2", ui.Cards[0].Fields.SkyflowID)
}

func TestInline_OnShow3DS(t *testing.T) {
	inline, mt := newInline(t, sdk.CreateOptions{ReturnURL: "app://back"})
	registerCheckout(mt)
	mt.RegisterResponder(http.MethodPost, api+"/api/v1/checkout-router/",
		httpmock.NewStringResponder(200, `{
			"checkout_id": "chk_1",
			"transaction_status": "Pending",
			"next_action": {"redirect_to_url": {"url": "https://acs", "verify_transaction_status_url": "https://x/verify"}}
		}`))
	mt.RegisterResponder(http.MethodGet, "https://x/verify",
		httpmock.NewStringResponder(200, `{"id": 9, "transaction_status": "Authorized"}`))

	var events []sdk.EventName
	inline.On(sdk.EventShow3DS, func(e sdk.Event) {
		events = append(events, e.Name())
		e.(sdk.Show3DS).Challenge.Complete()
	})
	inline.On(sdk.EventHide3DS, func(e sdk.Event) { events = append(events, e.Name()) })
	inline.SelectPaymentMethod("sk_1")

	tx, err := inline.Payment(context.Background(), &sdk.PaymentRequest{
		Customer: *customer(),
		Cart:     domain.Cart{Total: domain.NewAmount(50), Items: []domain.Item{{Name: "Pen", Quantity: 1}}},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ID("9"), tx.ID)
	assert.Equal(t, []sdk.EventName{sdk.EventShow3DS, sdk.EventHide3DS}, events)
	assert.Empty(t, inline.VerifyURL())
}
