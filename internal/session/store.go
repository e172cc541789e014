// Package session holds the mutable state of one checkout session and the
// event bus the UI layer listens on.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DanielPopoola/checkout-sdk/internal/config"
	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/services"
	"github.com/google/uuid"
)

// ServicesFactory builds a fresh service layer. It is called once on
// construction and again on every Reset.
type ServicesFactory func() (*services.Manager, error)

// ErrSessionReset is the cancellation cause of contexts bound to a generation
// that Reset has ended.
var ErrSessionReset = errors.New("session reset")

// Store is safe for concurrent use. Subscribers and listeners run outside
// the lock, so they may read or write the store themselves.
type Store struct {
	mu         sync.RWMutex
	state      State
	generation uint64
	done       chan struct{}

	subscribers map[int]func(State)
	listeners   map[EventName]map[int]Listener
	nextID      int

	cfg         config.Config
	newServices ServicesFactory
	services    *services.Manager
	logger      *slog.Logger
}

func NewStore(cfg *config.Config, newServices ServicesFactory, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	svc, err := newServices()
	if err != nil {
		return nil, err
	}

	return &Store{
		state:       State{SessionID: uuid.NewString()},
		done:        make(chan struct{}),
		subscribers: make(map[int]func(State)),
		listeners:   make(map[EventName]map[int]Listener),
		cfg:         *cfg,
		newServices: newServices,
		services:    svc,
		logger:      logger,
	}, nil
}

func (s *Store) Config() config.Config {
	return s.cfg
}

func (s *Store) Services() *services.Manager {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.services
}

func (s *Store) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Generation identifies the current session. It changes on every Reset.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Bind derives a context that is cancelled with ErrSessionReset once the
// current generation ends, and returns that generation. Callers must call
// the returned cancel func.
func (s *Store) Bind(ctx context.Context) (context.Context, uint64, context.CancelFunc) {
	s.mu.RLock()
	gen, done := s.generation, s.done
	s.mu.RUnlock()

	ctx, cancel := context.WithCancelCause(ctx)
	go func() {
		select {
		case <-done:
			cancel(ErrSessionReset)
		case <-ctx.Done():
		}
	}()
	return ctx, gen, func() { cancel(context.Canceled) }
}

// SetState applies fn to a copy of the state and publishes the result. Fields
// fn does not touch keep their values. fn must not call back into the store.
func (s *Store) SetState(fn func(*State)) {
	s.mu.Lock()
	s.apply(fn)
	s.mu.Unlock()
	s.notify()
}

// SetStateIf behaves like SetState but drops the write when gen is no longer
// the current generation. It reports whether the write was applied.
func (s *Store) SetStateIf(gen uint64, fn func(*State)) bool {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		s.logger.Debug("dropping stale session write", "generation", gen)
		return false
	}
	s.apply(fn)
	s.mu.Unlock()
	s.notify()
	return true
}

func (s *Store) apply(fn func(*State)) {
	next := s.state.clone()
	fn(&next)
	s.state = next
}

func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store) notify() {
	s.mu.RLock()
	snapshot := s.state.clone()
	subs := make([]func(State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

func (s *Store) On(name EventName, l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listeners[name] == nil {
		s.listeners[name] = make(map[int]Listener)
	}
	id := s.nextID
	s.nextID++
	s.listeners[name][id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners[name], id)
	}
}

// Emit delivers e to every listener registered for its name. A panicking
// listener is logged and does not stop delivery to the others.
func (s *Store) Emit(e Event) {
	s.mu.RLock()
	ls := make([]Listener, 0, len(s.listeners[e.Name()]))
	for _, l := range s.listeners[e.Name()] {
		ls = append(ls, l)
	}
	s.mu.RUnlock()

	for _, l := range ls {
		s.deliver(l, e)
	}
}

func (s *Store) deliver(l Listener, e Event) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("event listener panicked", "event", e.Name(), "panic", fmt.Sprint(r))
		}
	}()
	l(e)
}

// Reset aborts the old service layer's requests, cancels contexts bound to
// the old generation, forgets all listeners and state, and starts a new generation with services rebuilt from the
// original config. Subscribers are kept and notified with the empty state.
func (s *Store) Reset() error {
	s.mu.Lock()
	if s.services != nil {
		s.services.Cleanup()
	}

	svc, err := s.newServices()
	s.services = svc
	s.listeners = make(map[EventName]map[int]Listener)
	s.state = State{SessionID: uuid.NewString()}
	s.generation++
	close(s.done)
	s.done = make(chan struct{})
	s.mu.Unlock()

	s.notify()

	if err != nil {
		s.logger.Error("failed to rebuild services on reset", "error", err)
		return domain.WrapError(domain.ErrCodeStateError, err)
	}
	return nil
}

func (s *Store) SecureToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SecureToken
}

func (s *Store) BusinessPK() domain.ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.MerchantData == nil {
		return ""
	}
	return s.state.MerchantData.Business.PK
}

func (s *Store) CustomerAuthToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.CustomerData == nil || s.state.CustomerData.AuthToken == "" {
		return "", domain.NewError(domain.ErrCodeCustomerAuthTokenNotValid)
	}
	return s.state.CustomerData.AuthToken, nil
}

// CardCredentials gathers what every card endpoint needs from the session.
func (s *Store) CardCredentials() services.CardCredentials {
	s.mu.RLock()
	defer s.mu.RUnlock()

	creds := services.CardCredentials{SecureToken: s.state.SecureToken}
	if s.state.CustomerData != nil {
		creds.CustomerToken = s.state.CustomerData.AuthToken
	}
	if s.state.MerchantData != nil {
		creds.BusinessID = s.state.MerchantData.Business.PK
	}
	return creds
}
