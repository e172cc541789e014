// Package fingerprint collects the device session id some processors require
// on the router request.
package fingerprint

import (
	"context"
	"log/slog"
)

// Provider returns a device session id for the processor identified by
// merchantID and publicKey.
type Provider interface {
	DeviceSessionID(ctx context.Context, merchantID, publicKey string, sandbox bool) (string, error)
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(ctx context.Context, merchantID, publicKey string, sandbox bool) (string, error)

func (f ProviderFunc) DeviceSessionID(ctx context.Context, merchantID, publicKey string, sandbox bool) (string, error) {
	return f(ctx, merchantID, publicKey, sandbox)
}

// Noop is used when no native fingerprinting is linked. It always yields an
// empty session id.
type Noop struct {
	logger *slog.Logger
}

func NewNoop(logger *slog.Logger) *Noop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Noop{logger: logger}
}

func (n *Noop) DeviceSessionID(ctx context.Context, merchantID, _ string, sandbox bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	n.logger.Debug("no fingerprint provider linked", "merchant_id", merchantID, "sandbox", sandbox)
	return "", nil
}
