package services

import (
	"context"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/transport"
)

const (
	vaultTokenPath  = "/api/v1/vault-token"
	secureTokenPath = "/api/secure-token/"
)

type VaultTokenService struct {
	http transport.Doer
}

func NewVaultTokenService(http transport.Doer) *VaultTokenService {
	return &VaultTokenService{http: http}
}

// GetVaultToken exchanges the session's secure token for a short-lived vault
// bearer token.
func (s *VaultTokenService) GetVaultToken(ctx context.Context, secureToken string) (string, error) {
	if secureToken == "" {
		return "", domain.NewError(domain.ErrCodeSecureTokenInvalid)
	}

	resp, err := transport.Get[domain.VaultToken](ctx, s.http, vaultTokenPath,
		transport.WithHeader("Authorization", "Bearer "+secureToken))
	if err != nil {
		return "", wrap(domain.ErrCodeVaultToken, err)
	}
	if resp.Token == "" {
		return "", domain.NewError(domain.ErrCodeInvalidVaultToken)
	}
	return resp.Token, nil
}

type SecureTokenService struct {
	http transport.Doer
}

func NewSecureTokenService(http transport.Doer) *SecureTokenService {
	return &SecureTokenService{http: http}
}

// GetSecureToken mints a secure token from the merchant secret key. It must
// only run on the merchant backend.
func (s *SecureTokenService) GetSecureToken(ctx context.Context, secretAPIKey string) (*domain.SecureToken, error) {
	if secretAPIKey == "" {
		return nil, domain.NewError(domain.ErrCodeInvalidSecretAPIKey)
	}

	token, err := transport.Post[domain.SecureToken](ctx, s.http, secureTokenPath, map[string]any{},
		transport.WithHeader("Authorization", "Token "+secretAPIKey))
	if err != nil {
		return nil, wrap(domain.ErrCodeSecureToken, err)
	}
	if err := checkResponse(token, domain.ErrCodeSecureToken); err != nil {
		return nil, err
	}
	return token, nil
}
