package services

import (
	"context"
	"net/url"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/transport"
)

const (
	paymentMethodsPath = "/api/v1/payment_methods"
	defaultPageSize    = "10000"
)

type PaymentMethodService struct {
	http transport.Doer
}

func NewPaymentMethodService(http transport.Doer) *PaymentMethodService {
	return &PaymentMethodService{http: http}
}

// FetchPaymentMethods lists the active alternative payment methods, already
// decorated and ordered for display.
func (s *PaymentMethodService) FetchPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	query := url.Values{}
	query.Set("status", "active")
	query.Set("pagesize", defaultPageSize)

	page, err := transport.Get[domain.PaymentMethodsPage](ctx, s.http, paymentMethodsPath, transport.WithQuery(query))
	if err != nil {
		return nil, wrap(domain.ErrCodeFetchPaymentMethods, err)
	}
	return domain.PaymentMethodsWithDetails(page), nil
}
