package session_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DanielPopoola/checkout-sdk/internal/config"
	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/services"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/transport"
	"github.com/DanielPopoola/checkout-sdk/internal/session"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		SDK:   config.SDKConfig{APIKey: "pk_test", Mode: "sandbox", Language: "es"},
		HTTP:  config.HTTPConfig{Timeout: 5 * time.Second},
		Retry: config.RetryConfig{MaxRetries: 1},
	}
}

func newTestStore(t *testing.T) (*session.Store, *httpmock.MockTransport, *int32) {
	t.Helper()
	mt := httpmock.NewMockTransport()
	cfg := testConfig()
	var builds int32
	factory := func() (*services.Manager, error) {
		atomic.AddInt32(&builds, 1)
		return services.NewManager(cfg, nil, transport.WithHTTPClient(&http.Client{Transport: mt}))
	}
	store, err := session.NewStore(cfg, factory, nil)
	require.NoError(t, err)
	return store, mt, &builds
}

func TestNewStore_PropagatesFactoryError(t *testing.T) {
	cfg := testConfig()
	cfg.SDK.APIKey = ""

	_, err := session.NewStore(cfg, func() (*services.Manager, error) {
		return services.NewManager(cfg, nil)
	}, nil)

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeMerchantCredentialRequired))
}

func TestSetState_MergesUnrelatedFields(t *testing.T) {
	store, _, _ := newTestStore(t)

	store.SetState(func(s *session.State) { s.SecureToken = "secure" })
	store.SetState(func(s *session.State) { s.ReturnURL = "app://return" })

	st := store.GetState()
	assert.Equal(t, "secure", st.SecureToken)
	assert.Equal(t, "app://return", st.ReturnURL)
	assert.NotEmpty(t, st.SessionID)
}

func TestGetState_ReturnsCopy(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.UpdateUI(session.UIUpdate{Cards: []domain.Card{{Fields: domain.CardFields{SkyflowID: "sk_1"}}}})

	st := store.GetState()
	st.UIData.Cards[0].Fields.SkyflowID = "mutated"
	st.SecureToken = "mutated"

	fresh := store.GetState()
	assert.Equal(t, "sk_1", fresh.UIData.Cards[0].Fields.SkyflowID)
	assert.Empty(t, fresh.SecureToken)
}

func TestSubscribe_NotifiedWithNewState(t *testing.T) {
	store, _, _ := newTestStore(t)
	var seen []string
	unsubscribe := store.Subscribe(func(s session.State) { seen = append(seen, s.Message) })

	store.SetState(func(s *session.State) { s.Message = "one" })
	unsubscribe()
	store.SetState(func(s *session.State) { s.Message = "two" })

	assert.Equal(t, []string{"one"}, seen)
}

func TestSubscriber_CanReadStore(t *testing.T) {
	store, _, _ := newTestStore(t)
	var token string
	store.Subscribe(func(session.State) { token = store.SecureToken() })

	store.SetState(func(s *session.State) { s.SecureToken = "secure" })

	assert.Equal(t, "secure", token)
}

func TestSetStateIf_DropsStaleWrites(t *testing.T) {
	store, _, _ := newTestStore(t)
	gen := store.Generation()

	require.NoError(t, store.Reset())
	applied := store.SetStateIf(gen, func(s *session.State) { s.Message = "late" })

	assert.False(t, applied)
	assert.Empty(t, store.GetState().Message)
	assert.True(t, store.SetStateIf(store.Generation(), func(s *session.State) { s.Message = "fresh" }))
	assert.Equal(t, "fresh", store.GetState().Message)
}

func TestReset_ClearsSessionAndRebuildsServices(t *testing.T) {
	store, _, builds := newTestStore(t)
	before := store.GetState().SessionID
	oldServices := store.Services()
	store.SetState(func(s *session.State) {
		s.MerchantData = &domain.Business{Business: domain.BusinessProfile{PK: "1"}}
		s.CustomerData = &domain.CustomerRecord{ID: "5", AuthToken: "cust"}
		s.SecureToken = "secure"
		s.UIData = domain.UIData{Card: "sk_1", SelectedMethod: "sk_1"}
		s.IsCreated = true
	})
	var notified session.State
	store.Subscribe(func(s session.State) { notified = s })

	require.NoError(t, store.Reset())

	st := store.GetState()
	assert.Nil(t, st.MerchantData)
	assert.Nil(t, st.CustomerData)
	assert.Empty(t, st.SecureToken)
	assert.Equal(t, domain.UIData{}, st.UIData)
	assert.False(t, st.IsCreated)
	assert.NotEqual(t, before, st.SessionID)
	assert.Equal(t, st.SessionID, notified.SessionID)
	assert.EqualValues(t, 2, atomic.LoadInt32(builds))
	assert.NotSame(t, oldServices, store.Services())
	assert.Equal(t, "pk_test", store.Config().SDK.APIKey)
}

func TestReset_AbortsOldServiceLayer(t *testing.T) {
	store, mt, _ := newTestStore(t)
	mt.RegisterResponder(http.MethodGet, "https://sandbox.tonder.io/api/v1/payments/business/pk_test",
		httpmock.NewStringResponder(200, `{"business": {"pk": 1}}`))
	old := store.Services()

	require.NoError(t, store.Reset())

	_, err := old.Business.FetchBusiness(context.Background())
	reqErr, ok := transport.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeRequestAborted, reqErr.Code)

	_, err = store.Services().Business.FetchBusiness(context.Background())
	assert.NoError(t, err)
}

func TestBind_CancelledByReset(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx, gen, cancel := store.Bind(context.Background())
	defer cancel()
	assert.Equal(t, store.Generation(), gen)

	require.NoError(t, store.Reset())

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("bound context still open after reset")
	}
	assert.ErrorIs(t, context.Cause(ctx), session.ErrSessionReset)
	assert.NotEqual(t, gen, store.Generation())
}

func TestBind_CancelDoesNotTouchSession(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx, gen, cancel := store.Bind(context.Background())

	cancel()

	<-ctx.Done()
	assert.ErrorIs(t, context.Cause(ctx), context.Canceled)
	assert.Equal(t, gen, store.Generation())

	next, _, cancelNext := store.Bind(context.Background())
	defer cancelNext()
	assert.NoError(t, next.Err())
}

func TestReset_ClearsListeners(t *testing.T) {
	store, _, _ := newTestStore(t)
	calls := 0
	store.On(session.EventHide3DS, func(session.Event) { calls++ })

	require.NoError(t, store.Reset())
	store.Emit(session.Hide3DS{})

	assert.Zero(t, calls)
}

func TestEmit_TypedPayloadAndUnsubscribe(t *testing.T) {
	store, _, _ := newTestStore(t)
	var got *session.Challenge
	off := store.On(session.EventShow3DS, func(e session.Event) {
		got = e.(session.Show3DS).Challenge
	})
	hides := 0
	store.On(session.EventHide3DS, func(session.Event) { hides++ })

	ch := session.NewChallenge("https://3ds", "app://return")
	store.Emit(session.Show3DS{Challenge: ch})
	off()
	store.Emit(session.Show3DS{Challenge: session.NewChallenge("https://other", "")})

	require.NotNil(t, got)
	assert.Equal(t, "https://3ds", got.RedirectURL)
	assert.Equal(t, "app://return", got.ReturnURL)
	assert.Zero(t, hides)
}

func TestEmit_PanickingListenerDoesNotStopOthers(t *testing.T) {
	store, _, _ := newTestStore(t)
	delivered := false
	store.On(session.EventHide3DS, func(session.Event) { panic("boom") })
	store.On(session.EventHide3DS, func(session.Event) { delivered = true })

	assert.NotPanics(t, func() { store.Emit(session.Hide3DS{}) })
	assert.True(t, delivered)
}

func TestChallenge_CompleteIsIdempotent(t *testing.T) {
	ch := session.NewChallenge("https://3ds", "")

	ch.Complete()
	ch.Complete()

	select {
	case <-ch.Done():
	default:
		t.Fatal("challenge not completed")
	}
}

func TestCustomerAuthToken(t *testing.T) {
	store, _, _ := newTestStore(t)

	_, err := store.CustomerAuthToken()
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeCustomerAuthTokenNotValid))

	store.SetState(func(s *session.State) { s.CustomerData = &domain.CustomerRecord{ID: "5", AuthToken: "cust"} })
	token, err := store.CustomerAuthToken()
	require.NoError(t, err)
	assert.Equal(t, "cust", token)
}

func TestCardCredentials(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.SetState(func(s *session.State) {
		s.SecureToken = "secure"
		s.CustomerData = &domain.CustomerRecord{ID: "5", AuthToken: "cust"}
		s.MerchantData = &domain.Business{Business: domain.BusinessProfile{PK: "10"}}
	})

	creds := store.CardCredentials()

	assert.Equal(t, services.CardCredentials{SecureToken: "secure", CustomerToken: "cust", BusinessID: "10"}, creds)
	assert.Equal(t, domain.ID("10"), store.BusinessPK())
}

func TestUpdateUI(t *testing.T) {
	tests := []struct {
		name  string
		start domain.UIData
		in    session.UIUpdate
		want  domain.UIData
	}{
		{
			name:  "card selection clears payment method",
			start: domain.UIData{PaymentMethod: "SPEI"},
			in:    session.UIUpdate{SelectedMethod: "sk_1", Card: "sk_1"},
			want:  domain.UIData{Card: "sk_1", SelectedMethod: "sk_1"},
		},
		{
			name:  "payment method selection clears card",
			start: domain.UIData{Card: "sk_1"},
			in:    session.UIUpdate{SelectedMethod: "SPEI", PaymentMethod: "SPEI"},
			want:  domain.UIData{PaymentMethod: "SPEI", SelectedMethod: "SPEI"},
		},
		{
			name:  "new card clears both",
			start: domain.UIData{Card: "sk_1", PaymentMethod: "SPEI"},
			in:    session.UIUpdate{SelectedMethod: domain.SelectedMethodNew},
			want:  domain.UIData{SelectedMethod: domain.SelectedMethodNew},
		},
		{
			name:  "card and payment method together keeps card",
			in:    session.UIUpdate{SelectedMethod: "sk_1", Card: "sk_1", PaymentMethod: "SPEI"},
			want:  domain.UIData{Card: "sk_1", SelectedMethod: "sk_1"},
		},
		{
			name:  "no selection leaves card untouched",
			start: domain.UIData{Card: "sk_1", SelectedMethod: "sk_1"},
			in:    session.UIUpdate{PaymentMethod: "SPEI", SaveCard: domain.Bool(true)},
			want:  domain.UIData{Card: "sk_1", SelectedMethod: "sk_1", SaveCard: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _, _ := newTestStore(t)
			store.SetState(func(s *session.State) { s.UIData = tt.start })

			store.UpdateUI(tt.in)

			assert.Equal(t, tt.want, store.GetState().UIData)
		})
	}
}
