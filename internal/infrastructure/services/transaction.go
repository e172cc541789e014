package services

import (
	"context"
	"strings"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/transport"
)

type TransactionService struct {
	http transport.Doer
}

func NewTransactionService(http transport.Doer) *TransactionService {
	return &TransactionService{http: http}
}

// VerifyTransactionStatus polls the status URL handed out by the router.
// The URL is absolute and may live outside the API host.
func (s *TransactionService) VerifyTransactionStatus(ctx context.Context, verifyURL string) (*domain.Transaction, error) {
	if strings.TrimSpace(verifyURL) == "" {
		return nil, domain.NewError(domain.ErrCodeVerifyURLRequired)
	}

	tx, err := transport.Get[domain.Transaction](ctx, s.http, verifyURL)
	if err != nil {
		return nil, wrap(domain.ErrCodeFetchTransaction, err)
	}
	return tx, nil
}
