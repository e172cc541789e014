package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/transport"
)

const customerPath = "/api/v1/customer/"

type CustomerService struct {
	http   transport.Doer
	logger *slog.Logger
}

func NewCustomerService(http transport.Doer, logger *slog.Logger) *CustomerService {
	return &CustomerService{http: http, logger: logger}
}

// RegisterOrFetch returns the backend record for customer, creating it on
// first sight. The email is the natural key.
func (s *CustomerService) RegisterOrFetch(ctx context.Context, customer domain.Customer) (*domain.CustomerRecord, error) {
	if err := validate.Var(customer.Email, "required,email"); err != nil {
		return nil, domain.NewError(domain.ErrCodeInvalidEmail)
	}

	record, err := transport.Post[domain.CustomerRecord](ctx, s.http, customerPath, customer)
	if err != nil {
		s.logger.Error("customer register or fetch failed", "error", err)
		return nil, wrap(domain.ErrCodeCustomerOperation, err)
	}
	if err := checkResponse(record, domain.ErrCodeCustomerOperation); err != nil {
		return nil, err
	}
	return record, nil
}
