package domain

import (
	"sort"
	"strings"
)

const cardsCategory = "cards"

// RawPaymentMethod is one entry of the backend's payment method listing.
type RawPaymentMethod struct {
	PK                   ID       `json:"pk"`
	PaymentMethod        string   `json:"payment_method"`
	Priority             int      `json:"priority"`
	Category             string   `json:"category"`
	UnavailableCountries []string `json:"unavailable_countries"`
	Status               string   `json:"status"`
}

type PaymentMethodsPage struct {
	Count    int                `json:"count"`
	Next     *string            `json:"next"`
	Previous *string            `json:"previous"`
	Results  []RawPaymentMethod `json:"results"`
}

// PaymentMethod is an alternative payment method ready to render.
type PaymentMethod struct {
	ID            ID     `json:"id"`
	PaymentMethod string `json:"payment_method"`
	Priority      int    `json:"priority"`
	Category      string `json:"category"`
	Icon          string `json:"icon"`
	Label         string `json:"label"`
}

// PaymentMethodsWithDetails drops card entries, decorates the rest from the
// catalog and orders them by priority.
func PaymentMethodsWithDetails(page *PaymentMethodsPage) []PaymentMethod {
	if page == nil {
		return []PaymentMethod{}
	}

	methods := make([]PaymentMethod, 0, len(page.Results))
	for _, pm := range page.Results {
		if strings.EqualFold(pm.Category, cardsCategory) {
			continue
		}
		details := PaymentMethodDetails(pm.PaymentMethod)
		methods = append(methods, PaymentMethod{
			ID:            pm.PK,
			PaymentMethod: pm.PaymentMethod,
			Priority:      pm.Priority,
			Category:      pm.Category,
			Icon:          details.Icon,
			Label:         details.Label,
		})
	}

	sort.SliceStable(methods, func(i, j int) bool {
		return methods[i].Priority < methods[j].Priority
	})
	return methods
}
