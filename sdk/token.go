package sdk

import "context"

// SecureToken mints a secure token from the merchant secret key. Call it on
// the merchant backend only; the secret must never ship to a client.
func SecureToken(ctx context.Context, cfg *Config, secretAPIKey string, opts ...Option) (string, error) {
	svc, err := newManager(cfg, newOptions(opts))
	if err != nil {
		return "", err
	}
	defer svc.Cleanup()

	token, err := svc.SecureToken.GetSecureToken(ctx, secretAPIKey)
	if err != nil {
		return "", err
	}
	return token.Access, nil
}
