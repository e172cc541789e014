// Package vault describes the card vault collaborator. Raw card data is
// tokenized by the vault container and only tokens reach this module.
package vault

import (
	"context"
	"errors"
	"strings"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
)

const logLevelError = "ERROR"

// ErrIncompleteInputs is what a Collector returns when the card form is not
// fully filled in.
var ErrIncompleteInputs = errors.New("incomplete inputs")

type Record struct {
	Fields domain.CardFields `json:"fields"`
}

type CollectResult struct {
	Records []Record `json:"records"`
}

// Card returns the first tokenized card, or nil when nothing was collected.
func (r *CollectResult) Card() *domain.CardFields {
	if r == nil || len(r.Records) == 0 {
		return nil
	}
	card := r.Records[0].Fields
	return &card
}

// Collector tokenizes whatever the card form currently holds.
type Collector interface {
	Collect(ctx context.Context) (*CollectResult, error)
}

// IsIncompleteInputs reports whether err signals a partially filled card
// form. Collectors that cannot wrap ErrIncompleteInputs are matched on text.
func IsIncompleteInputs(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrIncompleteInputs) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "incomplete inputs")
}

// BuildProviderConfig returns the vault configuration for business, or nil
// when the merchant has no vault.
func BuildProviderConfig(business *domain.Business, env domain.Environment, token func(ctx context.Context) (string, error)) *domain.VaultProviderConfig {
	if !business.HasVault() {
		return nil
	}

	vaultEnv := "DEV"
	if env.IsProduction() {
		vaultEnv = "PROD"
	}

	return &domain.VaultProviderConfig{
		VaultID:     business.VaultID,
		VaultURL:    business.VaultURL,
		Env:         vaultEnv,
		LogLevel:    logLevelError,
		BearerToken: token,
	}
}
