package services

import (
	"context"
	"net/url"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/transport"
)

const businessPath = "/api/v1/payments/business/"

type BusinessService struct {
	http   transport.Doer
	apiKey string
}

func NewBusinessService(http transport.Doer, apiKey string) *BusinessService {
	return &BusinessService{http: http, apiKey: apiKey}
}

// FetchBusiness loads the merchant profile bound to the public API key.
func (s *BusinessService) FetchBusiness(ctx context.Context) (*domain.Business, error) {
	business, err := transport.Get[domain.Business](ctx, s.http, businessPath+url.PathEscape(s.apiKey))
	if err != nil {
		return nil, wrap(domain.ErrCodeFetchBusiness, err)
	}
	if err := checkResponse(business, domain.ErrCodeFetchBusiness); err != nil {
		return nil, err
	}
	return business, nil
}
