package domain

const ActionVerifyTransactionStatus = "verify_transaction_status"

type OrderRequest struct {
	Business          string `json:"business" validate:"required"`
	Client            string `json:"client"`
	BillingAddressID  *int   `json:"billing_address_id"`
	ShippingAddressID *int   `json:"shipping_address_id"`
	Amount            Amount `json:"amount" validate:"gt=0"`
	Status            string `json:"status,omitempty"`
	Reference         string `json:"reference"`
	IsOneclick        bool   `json:"is_oneclick"`
	Items             []Item `json:"items" validate:"required,min=1"`
}

type Order struct {
	ID         ID     `json:"id" validate:"required"`
	Created    string `json:"created"`
	Amount     Amount `json:"amount"`
	Status     string `json:"status"`
	Reference  string `json:"reference,omitempty"`
	IsOneclick bool   `json:"is_oneclick"`
	Items      []Item `json:"items"`
}

// CreatePaymentRequest field order matches the order checks are reported in.
type CreatePaymentRequest struct {
	BusinessPK ID     `json:"business_pk" validate:"required"`
	ClientID   ID     `json:"client_id" validate:"required"`
	Amount     Amount `json:"amount" validate:"gt=0"`
	Date       string `json:"date"`
	OrderID    ID     `json:"order_id"`
}

type Payment struct {
	PK                     ID     `json:"pk" validate:"required"`
	Order                  string `json:"order,omitempty"`
	Amount                 Amount `json:"amount"`
	Status                 string `json:"status"`
	Date                   string `json:"date"`
	PaidDate               string `json:"paid_date,omitempty"`
	Client                 string `json:"client,omitempty"`
	CustomerOrderReference string `json:"customer_order_reference,omitempty"`
}

type BrowserInfo struct {
	Language          string `json:"language,omitempty"`
	TimeZone          int    `json:"time_zone,omitempty"`
	UserAgent         string `json:"user_agent,omitempty"`
	ColorDepth        *int   `json:"color_depth,omitempty"`
	ScreenWidth       *int   `json:"screen_width,omitempty"`
	ScreenHeight      *int   `json:"screen_height,omitempty"`
	JavascriptEnabled bool   `json:"javascript_enabled,omitempty"`
}

// RouterRequest starts a checkout. Exactly one of Card and PaymentMethod is set.
type RouterRequest struct {
	Name              string         `json:"name"`
	LastName          string         `json:"last_name"`
	EmailClient       string         `json:"email_client"`
	PhoneNumber       string         `json:"phone_number"`
	ReturnURL         string         `json:"return_url"`
	IDProduct         string         `json:"id_product"`
	QuantityProduct   int            `json:"quantity_product"`
	IDShip            string         `json:"id_ship"`
	InstanceIDShip    string         `json:"instance_id_ship"`
	Amount            Amount         `json:"amount"`
	TitleShip         string         `json:"title_ship"`
	Description       string         `json:"description"`
	DeviceSessionID   string         `json:"device_session_id"`
	TokenID           string         `json:"token_id"`
	OrderID           ID             `json:"order_id"`
	BusinessID        ID             `json:"business_id"`
	PaymentID         ID             `json:"payment_id"`
	Source            string         `json:"source"`
	Metadata          map[string]any `json:"metadata"`
	BrowserInfo       BrowserInfo    `json:"browser_info"`
	Currency          string         `json:"currency"`
	Card              *CardFields    `json:"card,omitempty"`
	PaymentMethod     string         `json:"payment_method,omitempty"`
	MPDeviceSessionID string         `json:"mp_device_session_id,omitempty"`
}

// ResumeRequest continues an existing checkout on the next provider.
type ResumeRequest struct {
	CheckoutID string `json:"checkout_id"`
}

type RedirectToURL struct {
	URL                        string `json:"url"`
	ReturnURL                  string `json:"return_url"`
	VerifyTransactionStatusURL string `json:"verify_transaction_status_url"`
}

type IframeResources struct {
	Iframe                     string `json:"iframe"`
	VerifyTransactionStatusURL string `json:"verify_transaction_status_url"`
}

type NextAction struct {
	RedirectToURL    *RedirectToURL   `json:"redirect_to_url,omitempty"`
	IframeResources  *IframeResources `json:"iframe_resources,omitempty"`
	ThreeDSChallenge string           `json:"three_ds_challenge,omitempty"`
}

type CheckoutAction struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Method string `json:"method"`
}

// CheckoutResponse is what the router returns on start or resume.
type CheckoutResponse struct {
	Status            string           `json:"status"`
	Message           string           `json:"message"`
	PSPResponse       map[string]any   `json:"psp_response,omitempty"`
	CheckoutID        string           `json:"checkout_id"`
	IsRouteFinished   bool             `json:"is_route_finished"`
	TransactionStatus string           `json:"transaction_status"`
	TransactionID     ID               `json:"transaction_id"`
	PaymentID         ID               `json:"payment_id"`
	Provider          string           `json:"provider"`
	NextAction        *NextAction      `json:"next_action,omitempty"`
	Actions           []CheckoutAction `json:"actions"`
}

// RedirectURL is the challenge page, empty when no challenge is needed.
func (r *CheckoutResponse) RedirectURL() string {
	if r == nil || r.NextAction == nil || r.NextAction.RedirectToURL == nil {
		return ""
	}
	return r.NextAction.RedirectToURL.URL
}

// VerifyURL resolves where to poll the transaction status. Without a redirect
// the URL comes from the named action, otherwise from next_action metadata.
func (r *CheckoutResponse) VerifyURL() string {
	if r == nil {
		return ""
	}
	if r.RedirectURL() == "" {
		for _, a := range r.Actions {
			if a.Name == ActionVerifyTransactionStatus && a.URL != "" {
				return a.URL
			}
		}
	}
	if r.NextAction == nil {
		return ""
	}
	if r.NextAction.RedirectToURL != nil && r.NextAction.RedirectToURL.VerifyTransactionStatusURL != "" {
		return r.NextAction.RedirectToURL.VerifyTransactionStatusURL
	}
	if r.NextAction.IframeResources != nil {
		return r.NextAction.IframeResources.VerifyTransactionStatusURL
	}
	return ""
}

// AsTransaction projects the router response onto a Transaction for the
// cases where it is itself the final word.
func (r *CheckoutResponse) AsTransaction() *Transaction {
	return &Transaction{
		ID:                r.TransactionID,
		Provider:          r.Provider,
		TransactionStatus: r.TransactionStatus,
		Status:            r.Status,
		IsRouteFinished:   r.IsRouteFinished,
		Checkout: TransactionCheckout{
			ID:              r.CheckoutID,
			IsRouteFinished: r.IsRouteFinished,
		},
	}
}
