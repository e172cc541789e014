package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/transport"
)

const (
	cardsPath       = "/api/v1/business/%s/cards/"
	cardPath        = "/api/v1/business/%s/cards/%s/"
	cardSummaryPath = "/api/v1/business/%s/cards/%s/summary"
)

// CardCredentials are the three values every card operation needs.
type CardCredentials struct {
	SecureToken   string
	CustomerToken string
	BusinessID    domain.ID
}

// check runs before any request: a missing secure token must never reach
// the network.
func (c CardCredentials) check() error {
	if c.SecureToken == "" {
		return domain.NewError(domain.ErrCodeSecureTokenInvalid)
	}
	if c.CustomerToken == "" {
		return domain.NewError(domain.ErrCodeCustomerAuthTokenNotValid)
	}
	if c.BusinessID.IsZero() {
		return domain.NewError(domain.ErrCodeBusinessIDRequired)
	}
	return nil
}

func (c CardCredentials) headers() []transport.Option {
	return []transport.Option{
		transport.WithHeader("Authorization", "Bearer "+c.SecureToken),
		transport.WithHeader("User-token", c.CustomerToken),
	}
}

func (c CardCredentials) business() string {
	return url.PathEscape(c.BusinessID.String())
}

type CardService struct {
	http transport.Doer
}

func NewCardService(http transport.Doer) *CardService {
	return &CardService{http: http}
}

func (s *CardService) FetchCustomerCards(ctx context.Context, creds CardCredentials) (*domain.CustomerCards, error) {
	if err := creds.check(); err != nil {
		return nil, err
	}

	cards, err := transport.Get[domain.CustomerCards](ctx, s.http, fmt.Sprintf(cardsPath, creds.business()), creds.headers()...)
	if err != nil {
		return nil, wrap(domain.ErrCodeFetchCards, err)
	}
	if cards.Cards == nil {
		cards.Cards = []domain.Card{}
	}
	return cards, nil
}

func (s *CardService) SaveCustomerCard(ctx context.Context, creds CardCredentials, req domain.SaveCardRequest) (*domain.SavedCard, error) {
	if err := creds.check(); err != nil {
		return nil, err
	}
	if err := checkRequest(req, map[string]string{"SkyflowID": domain.ErrCodeInvalidCardData}, domain.ErrCodeSaveCard); err != nil {
		return nil, err
	}

	saved, err := transport.Post[domain.SavedCard](ctx, s.http, fmt.Sprintf(cardsPath, creds.business()), req, creds.headers()...)
	if err != nil {
		return nil, wrap(domain.ErrCodeSaveCard, err)
	}
	if err := checkResponse(saved, domain.ErrCodeSaveCard); err != nil {
		return nil, err
	}
	return saved, nil
}

// RemoveCustomerCard deletes a stored card and returns the confirmation text.
func (s *CardService) RemoveCustomerCard(ctx context.Context, creds CardCredentials, skyflowID string) (string, error) {
	if err := creds.check(); err != nil {
		return "", err
	}
	if skyflowID == "" {
		return "", domain.NewError(domain.ErrCodeInvalidCardData)
	}

	path := fmt.Sprintf(cardPath, creds.business(), url.PathEscape(skyflowID))
	if _, err := transport.Delete[map[string]any](ctx, s.http, path, creds.headers()...); err != nil {
		return "", wrap(domain.ErrCodeRemoveCard, err)
	}
	return domain.Message(domain.MsgCardRemoved, domain.LanguageEN), nil
}

func (s *CardService) GetCardSummary(ctx context.Context, creds CardCredentials, skyflowID string) (*domain.CardSummary, error) {
	if err := creds.check(); err != nil {
		return nil, err
	}
	if skyflowID == "" {
		return nil, domain.NewError(domain.ErrCodeInvalidCardData)
	}

	path := fmt.Sprintf(cardSummaryPath, creds.business(), url.PathEscape(skyflowID))
	summary, err := transport.Get[domain.CardSummary](ctx, s.http, path, creds.headers()...)
	if err != nil {
		return nil, wrap(domain.ErrCodeCardSummary, err)
	}
	return summary, nil
}
