package transport_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/DanielPopoola/checkout-sdk/internal/config"
	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/transport"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sandbox = "https://sandbox.tonder.io"

type ping struct {
	OK bool `json:"ok"`
}

func newTestClient(t *testing.T) (*transport.Client, *httpmock.MockTransport) {
	t.Helper()
	mt := httpmock.NewMockTransport()
	client, err := transport.NewClient(
		config.SDKConfig{APIKey: "pk_test", Mode: "sandbox"},
		transport.WithHTTPClient(&http.Client{Transport: mt}),
	)
	require.NoError(t, err)
	return client, mt
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := transport.NewClient(config.SDKConfig{Mode: "sandbox"})

	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeMerchantCredentialRequired))
}

func TestNewClient_RejectsUnknownMode(t *testing.T) {
	_, err := transport.NewClient(config.SDKConfig{APIKey: "pk", Mode: "qa"})

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidConfig))
}

func TestNewClient_DevelopmentUsesConfiguredURL(t *testing.T) {
	client, err := transport.NewClient(config.SDKConfig{APIKey: "pk", Mode: "development", DevelopmentURL: "http://localhost:9000/"})

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", client.BaseURL())
}

func TestClient_Get_SendsHeadersAndDecodes(t *testing.T) {
	client, mt := newTestClient(t)

	mt.RegisterResponder(http.MethodGet, sandbox+"/api/v1/ping",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Token pk_test", req.Header.Get("Authorization"))
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			assert.NotEmpty(t, req.Header.Get("X-Request-Id"))
			return httpmock.NewJsonResponse(200, ping{OK: true})
		})

	resp, err := transport.Get[ping](context.Background(), client, "/api/v1/ping")

	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, 1, mt.GetTotalCallCount())
}

func TestClient_HeaderOverride(t *testing.T) {
	client, mt := newTestClient(t)

	mt.RegisterResponder(http.MethodGet, sandbox+"/api/v1/business/1/cards/",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer secure", req.Header.Get("Authorization"))
			assert.Equal(t, "cust-token", req.Header.Get("User-token"))
			return httpmock.NewJsonResponse(200, map[string]any{"cards": []any{}})
		})

	_, err := transport.Get[map[string]any](context.Background(), client, "/api/v1/business/1/cards/",
		transport.WithHeader("Authorization", "Bearer secure"),
		transport.WithHeader("User-token", "cust-token"),
	)

	require.NoError(t, err)
}

func TestClient_AbsoluteURLBypassesBase(t *testing.T) {
	client, mt := newTestClient(t)

	mt.RegisterResponder(http.MethodGet, "https://verify.example.com/tx/1",
		httpmock.NewStringResponder(200, `{"ok":true}`))

	resp, err := transport.Get[ping](context.Background(), client, "https://verify.example.com/tx/1")

	require.NoError(t, err)
	assert.True(t, resp.OK)
}

func TestClient_QueryParameters(t *testing.T) {
	client, mt := newTestClient(t)

	mt.RegisterResponder(http.MethodGet, sandbox+"/api/v1/payment_methods",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "active", req.URL.Query().Get("status"))
			assert.Equal(t, "10000", req.URL.Query().Get("pagesize"))
			return httpmock.NewJsonResponse(200, ping{OK: true})
		})

	_, err := transport.Get[ping](context.Background(), client, "/api/v1/payment_methods",
		transport.WithQuery(url.Values{"status": {"active"}, "pagesize": {"10000"}}))

	require.NoError(t, err)
}

func TestClient_Non2xxBecomesHTTPError(t *testing.T) {
	client, mt := newTestClient(t)

	mt.RegisterResponder(http.MethodPost, sandbox+"/api/v1/orders/",
		httpmock.NewStringResponder(400, `{"detail":"Amount must be positive"}`))

	_, err := transport.Post[ping](context.Background(), client, "/api/v1/orders/", map[string]any{"amount": 0})

	reqErr, ok := transport.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, "HTTP_400", reqErr.Code)
	assert.Equal(t, "Amount must be positive", reqErr.Message)
	assert.Equal(t, 400, reqErr.StatusCode)
	assert.Equal(t, "Amount must be positive", reqErr.Body["detail"])
}

func TestClient_Non2xxWithoutJSONBody(t *testing.T) {
	client, mt := newTestClient(t)

	mt.RegisterResponder(http.MethodGet, sandbox+"/api/v1/ping",
		httpmock.NewStringResponder(502, `<html>bad gateway</html>`))

	_, err := transport.Get[ping](context.Background(), client, "/api/v1/ping")

	reqErr, ok := transport.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, "HTTP_502", reqErr.Code)
	assert.Equal(t, "Request failed", reqErr.Message)
	assert.True(t, reqErr.IsRetryable())
}

func TestClient_NoContentYieldsZeroValue(t *testing.T) {
	client, mt := newTestClient(t)

	mt.RegisterResponder(http.MethodDelete, sandbox+"/api/v1/business/1/cards/sk_1/",
		httpmock.NewStringResponder(204, ""))

	resp, err := transport.Delete[ping](context.Background(), client, "/api/v1/business/1/cards/sk_1/")

	require.NoError(t, err)
	assert.False(t, resp.OK)
}

func TestClient_NetworkErrorIsRequestFailed(t *testing.T) {
	client, mt := newTestClient(t)

	mt.RegisterResponder(http.MethodGet, sandbox+"/api/v1/ping",
		httpmock.NewErrorResponder(errors.New("connection refused")))

	_, err := transport.Get[ping](context.Background(), client, "/api/v1/ping")

	reqErr, ok := transport.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeRequestFailed, reqErr.Code)
}

func TestClient_MalformedBodyIsUnknown(t *testing.T) {
	client, mt := newTestClient(t)

	mt.RegisterResponder(http.MethodGet, sandbox+"/api/v1/ping",
		httpmock.NewStringResponder(200, `{"ok": tru`))

	_, err := transport.Get[ping](context.Background(), client, "/api/v1/ping")

	reqErr, ok := transport.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeUnknown, reqErr.Code)
}

func TestClient_CleanupAbortsInFlightRequests(t *testing.T) {
	client, mt := newTestClient(t)

	started := make(chan struct{})
	mt.RegisterResponder(http.MethodGet, sandbox+"/api/v1/slow",
		func(req *http.Request) (*http.Response, error) {
			close(started)
			<-req.Context().Done()
			return nil, req.Context().Err()
		})

	errCh := make(chan error, 1)
	go func() {
		_, err := transport.Get[ping](context.Background(), client, "/api/v1/slow")
		errCh <- err
	}()

	<-started
	client.Cleanup()

	err := <-errCh
	reqErr, ok := transport.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeRequestAborted, reqErr.Code)

	_, err = transport.Get[ping](context.Background(), client, "/api/v1/slow")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClient_CallerCancellationIsAborted(t *testing.T) {
	client, _ := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := transport.Get[ping](ctx, client, "/api/v1/ping")

	reqErr, ok := transport.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeRequestAborted, reqErr.Code)
}
