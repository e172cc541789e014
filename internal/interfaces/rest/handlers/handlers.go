package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/interfaces/rest"
	"github.com/gorilla/mux"
)

// TokenIssuer mints secure tokens from the merchant secret key.
type TokenIssuer interface {
	GetSecureToken(ctx context.Context, secretAPIKey string) (*domain.SecureToken, error)
}

type Handlers struct {
	tokens    TokenIssuer
	secretKey string
	logger    *slog.Logger
}

func NewHandlers(tokens TokenIssuer, secretKey string, logger *slog.Logger) *Handlers {
	return &Handlers{
		tokens:    tokens,
		secretKey: secretKey,
		logger:    logger,
	}
}

func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/secure-token", h.SecureToken).Methods(http.MethodPost)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// SecureToken exchanges the server's secret key for a secure token the
// client session can use. The secret never leaves this process.
func (h *Handlers) SecureToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.tokens.GetSecureToken(r.Context(), h.secretKey)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusOK, token, h.logger)
}
