package domain

const (
	DefaultCurrency = "mxn"
	RouterSource    = "rn-sdk"
)

type Item struct {
	Description      string `json:"description"`
	Quantity         int    `json:"quantity"`
	PriceUnit        Amount `json:"price_unit"`
	Discount         Amount `json:"discount"`
	Taxes            Amount `json:"taxes"`
	ProductReference ID     `json:"product_reference"`
	Name             string `json:"name"`
	AmountTotal      Amount `json:"amount_total"`
}

type Cart struct {
	Total Amount `json:"total"`
	Items []Item `json:"items"`
}

// PaymentRequest is what a merchant hands to Payment. Card is a stored card
// reference, PaymentMethod an alternative payment method code.
type PaymentRequest struct {
	Customer      Customer       `json:"customer"`
	Cart          Cart           `json:"cart"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	Currency      string         `json:"currency,omitempty"`
	Card          string         `json:"card,omitempty"`
	PaymentMethod string         `json:"payment_method,omitempty"`
}

func (r *PaymentRequest) IsEmpty() bool {
	return r == nil ||
		(r.Customer.IsEmpty() && len(r.Cart.Items) == 0 && r.Cart.Total.IsZero() &&
			len(r.Metadata) == 0 && r.Currency == "" && r.Card == "" && r.PaymentMethod == "")
}

// CardFields is the tokenized card as the vault returns it. Only SkyflowID is
// guaranteed.
type CardFields struct {
	CardNumber      string `json:"card_number,omitempty"`
	ExpirationMonth string `json:"expiration_month,omitempty"`
	ExpirationYear  string `json:"expiration_year,omitempty"`
	SkyflowID       string `json:"skyflow_id"`
	CardScheme      string `json:"card_scheme,omitempty"`
	CardholderName  string `json:"cardholder_name,omitempty"`
}

// PreparedPayment is a PaymentRequest normalized for the router: exactly one
// of Card and PaymentMethod is set and Currency is never empty.
type PreparedPayment struct {
	Customer      Customer
	Cart          Cart
	Metadata      map[string]any
	Currency      string
	Card          *CardFields
	PaymentMethod string
}

func (p *PreparedPayment) CardID() string {
	if p == nil || p.Card == nil {
		return ""
	}
	return p.Card.SkyflowID
}
