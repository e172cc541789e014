package sdk_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/DanielPopoola/checkout-sdk/internal/config"
	"github.com/DanielPopoola/checkout-sdk/sdk"
	"github.com/jarcoal/httpmock"
)

const api = "https://sandbox.tonder.io"

func testConfig() *sdk.Config {
	return &config.Config{
		SDK:         config.SDKConfig{APIKey: "pk_test", Mode: "sandbox", Language: "es"},
		HTTP:        config.HTTPConfig{Timeout: 5 * time.Second},
		Retry:       config.RetryConfig{MaxRetries: 1},
		ThreeDS:     config.ThreeDSConfig{MaxAttempts: 3, ChallengeTimeout: time.Second},
		Fingerprint: config.FingerprintConfig{Policy: config.FingerprintContinue},
	}
}

func newMock(t *testing.T) (*httpmock.MockTransport, sdk.Option) {
	t.Helper()
	mt := httpmock.NewMockTransport()
	return mt, sdk.WithHTTPClient(&http.Client{Transport: mt})
}

func registerSession(mt *httpmock.MockTransport) {
	mt.RegisterResponder(http.MethodGet, api+"/api/v1/payments/business/pk_test",
		httpmock.NewStringResponder(200, `{
			"business": {"pk": 10, "name": "Acme"},
			"vault_id": "v1",
			"vault_url": "https://vault.example",
			"reference": "ref-1"
		}`))
	mt.RegisterResponder(http.MethodPost, api+"/api/v1/customer/",
		httpmock.NewStringResponder(200, `{"id": 5, "email": "ana@example.com", "auth_token": "cust"}`))
	mt.RegisterResponder(http.MethodGet, api+"/api/v1/business/10/cards/",
		httpmock.NewStringResponder(200, `{"user_id": 5, "cards": [
			{"fields": {"skyflow_id": "sk_1", "card_scheme": "visa"}},
			{"fields": {"skyflow_id": "sk_2", "card_scheme": "mastercard"}}
		]}`))
	mt.RegisterResponder(http.MethodGet, api+"/api/v1/payment_methods",
		httpmock.NewStringResponder(200, `{"results": [{"pk": 1, "payment_method": "SPEI", "priority": 1, "category": "transfer"}]}`))
}

func registerCheckout(mt *httpmock.MockTransport) {
	mt.RegisterResponder(http.MethodPost, api+"/api/v1/orders/",
		httpmock.NewStringResponder(201, `{"id": 991}`))
	mt.RegisterResponder(http.MethodPost, api+"/api/v1/business/10/payments/",
		httpmock.NewStringResponder(201, `{"pk": 300}`))
	mt.RegisterResponder(http.MethodPost, api+"/api/v1/checkout-router/",
		httpmock.NewStringResponder(200, `{"checkout_id": "chk_1", "transaction_status": "Success", "transaction_id": 77}`))
}

func customer() *sdk.Customer {
	return &sdk.Customer{Email: "ana@example.com", FirstName: "Ana"}
}
