package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/transport"
)

const (
	ordersPath   = "/api/v1/orders/"
	paymentsPath = "/api/v1/business/%s/payments/"
	routerPath   = "/api/v1/checkout-router/"
)

var (
	orderRequestCodes = map[string]string{
		"Business": domain.ErrCodeBusinessIDRequired,
		"Amount":   domain.ErrCodeInvalidAmount,
		"Items":    domain.ErrCodeInvalidItems,
	}
	paymentRequestCodes = map[string]string{
		"BusinessPK": domain.ErrCodeBusinessIDRequired,
		"ClientID":   domain.ErrCodeClientIDRequired,
		"Amount":     domain.ErrCodeInvalidAmount,
	}
)

// CheckoutService owns the three writes of a payment: order, payment and
// router. None of them is retried.
type CheckoutService struct {
	http transport.Doer
}

func NewCheckoutService(http transport.Doer) *CheckoutService {
	return &CheckoutService{http: http}
}

func (s *CheckoutService) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	if err := checkRequest(req, orderRequestCodes, domain.ErrCodeCreateOrder); err != nil {
		return nil, err
	}

	order, err := transport.Post[domain.Order](ctx, s.http, ordersPath, req)
	if err != nil {
		return nil, wrap(domain.ErrCodeCreateOrder, err)
	}
	if err := checkResponse(order, domain.ErrCodeCreateOrder); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *CheckoutService) CreatePayment(ctx context.Context, req domain.CreatePaymentRequest) (*domain.Payment, error) {
	if err := checkRequest(req, paymentRequestCodes, domain.ErrCodeCreatePayment); err != nil {
		return nil, err
	}

	path := fmt.Sprintf(paymentsPath, url.PathEscape(req.BusinessPK.String()))
	payment, err := transport.Post[domain.Payment](ctx, s.http, path, req)
	if err != nil {
		return nil, wrap(domain.ErrCodeCreatePayment, err)
	}
	if err := checkResponse(payment, domain.ErrCodeCreatePayment); err != nil {
		return nil, err
	}
	return payment, nil
}

// StartCheckoutRouter hands a prepared payment to the router, which picks a
// provider and either settles it or asks for a challenge.
func (s *CheckoutService) StartCheckoutRouter(ctx context.Context, req domain.RouterRequest) (*domain.CheckoutResponse, error) {
	resp, err := transport.Post[domain.CheckoutResponse](ctx, s.http, routerPath, req)
	if err != nil {
		return nil, wrap(domain.ErrCodeStartCheckout, err)
	}
	return resp, nil
}

// ResumeCheckout asks the router to continue an existing checkout with the
// next provider on its route.
func (s *CheckoutService) ResumeCheckout(ctx context.Context, checkoutID string) (*domain.CheckoutResponse, error) {
	if strings.TrimSpace(checkoutID) == "" {
		return nil, domain.NewError(domain.ErrCodeCheckoutIDRequired)
	}

	resp, err := transport.Post[domain.CheckoutResponse](ctx, s.http, routerPath, domain.ResumeRequest{CheckoutID: checkoutID})
	if err != nil {
		return nil, wrap(domain.ErrCodeStartCheckout, err)
	}
	return resp, nil
}
