package domain

const (
	StatusSuccess    = "Success"
	StatusAuthorized = "Authorized"
	StatusPending    = "Pending"
	StatusDeclined   = "Declined"

	DeclineHard = "Hard"
	DeclineSoft = "Soft"
)

type TransactionCheckout struct {
	ID                      string   `json:"id"`
	Created                 string   `json:"created,omitempty"`
	Modified                string   `json:"modified,omitempty"`
	NumberOfPaymentAttempts int      `json:"number_of_payment_attempts"`
	TriedPSPs               []string `json:"tried_psps,omitempty"`
	RejectedTransactions    []string `json:"rejected_transactions,omitempty"`
	RoutingStep             int      `json:"routing_step"`
	RouteLength             int      `json:"route_length"`
	LastStatus              string   `json:"last_status,omitempty"`
	IsDynamicRouting        bool     `json:"is_dynamic_routing"`
	IsRouteFinished         bool     `json:"is_route_finished"`
	Business                ID       `json:"business,omitempty"`
	Payment                 ID       `json:"payment,omitempty"`
}

type TransactionPayment struct {
	ID                     ID      `json:"id"`
	Amount                 Amount  `json:"amount"`
	Status                 string  `json:"status"`
	Date                   string  `json:"date"`
	PaidDate               *string `json:"paid_date"`
	Source                 *string `json:"source"`
	CustomerOrderReference *string `json:"customer_order_reference"`
	Client                 ID      `json:"client"`
	Business               ID      `json:"business"`
	Order                  ID      `json:"order"`
}

type TransactionCurrency struct {
	ID      ID      `json:"id"`
	Name    string  `json:"name"`
	Code    string  `json:"code"`
	Symbol  string  `json:"symbol"`
	Country *string `json:"country"`
}

type TransactionPaymentMethod struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
	IsAPM       bool   `json:"is_apm"`
}

type Decline struct {
	ErrorType string `json:"error_type,omitempty"`
}

// Transaction is the verified state of a payment attempt.
type Transaction struct {
	ID                      ID                        `json:"id"`
	Provider                string                    `json:"provider"`
	Country                 string                    `json:"country,omitempty"`
	CurrencyCode            string                    `json:"currency_code,omitempty"`
	TransactionStatus       string                    `json:"transaction_status"`
	Created                 string                    `json:"created,omitempty"`
	Modified                string                    `json:"modified,omitempty"`
	OperationDate           string                    `json:"operation_date,omitempty"`
	TransactionReference    string                    `json:"transaction_reference,omitempty"`
	TransactionType         string                    `json:"transaction_type,omitempty"`
	Status                  string                    `json:"status,omitempty"`
	Amount                  Amount                    `json:"amount"`
	Reason                  *string                   `json:"reason,omitempty"`
	IsRefunded              *bool                     `json:"is_refunded,omitempty"`
	IsDisputed              *bool                     `json:"is_disputed,omitempty"`
	NumberOfPaymentAttempts int                       `json:"number_of_payment_attempts"`
	CardBrand               *string                   `json:"card_brand,omitempty"`
	IsRouteFinished         bool                      `json:"is_route_finished"`
	NumberOfInstallments    int                       `json:"number_of_installments"`
	Payment                 *TransactionPayment       `json:"payment,omitempty"`
	Checkout                TransactionCheckout       `json:"checkout"`
	Currency                *TransactionCurrency      `json:"currency,omitempty"`
	PaymentMethod           *TransactionPaymentMethod `json:"payment_method,omitempty"`
	IssuingCountry          *string                   `json:"issuing_country,omitempty"`
	IsAPM                   bool                      `json:"is_apm"`
	Decline                 *Decline                  `json:"decline,omitempty"`
}

func (t *Transaction) IsHardDecline() bool {
	return t.Decline != nil && t.Decline.ErrorType == DeclineHard
}

// RouteFinished reports whether the backend has no other provider left to try.
func (t *Transaction) RouteFinished() bool {
	return t.Checkout.IsRouteFinished || t.IsRouteFinished
}

func (t *Transaction) IsApproved() bool {
	return t.TransactionStatus == StatusSuccess || t.TransactionStatus == StatusAuthorized
}

func (t *Transaction) IsPendingAPM() bool {
	return t.TransactionStatus == StatusPending && t.PaymentMethod != nil && t.PaymentMethod.IsAPM
}

// IsTerminal decides whether a challenge round ends the attempt. The checks
// run in priority order: a finished route still reporting Pending must not be
// retried.
func (t *Transaction) IsTerminal() bool {
	switch {
	case t.IsHardDecline():
		return true
	case t.RouteFinished():
		return true
	case t.IsApproved():
		return true
	case t.IsPendingAPM():
		return true
	default:
		return false
	}
}
