package domain

type BusinessCategory struct {
	PK   ID     `json:"pk"`
	Name string `json:"name"`
}

type BusinessProfile struct {
	PK                ID                 `json:"pk" validate:"required"`
	Name              string             `json:"name"`
	Categories        []BusinessCategory `json:"categories"`
	Web               string             `json:"web"`
	Logo              string             `json:"logo"`
	FullLogoURL       string             `json:"full_logo_url"`
	BackgroundColor   string             `json:"background_color"`
	PrimaryColor      string             `json:"primary_color"`
	CheckoutMode      bool               `json:"checkout_mode"`
	TextCheckoutColor string             `json:"textCheckoutColor"`
	TextDetailsColor  string             `json:"textDetailsColor"`
	CheckoutLogo      string             `json:"checkout_logo"`
}

// ProcessorKeys is the key pair of the secondary processor used for device
// fingerprinting.
type ProcessorKeys struct {
	MerchantID string `json:"merchant_id"`
	PublicKey  string `json:"public_key"`
}

func (k ProcessorKeys) Configured() bool {
	return k.MerchantID != "" && k.PublicKey != ""
}

type PublicKey struct {
	PublicKey string `json:"public_key"`
}

type ProviderToggle struct {
	Active bool `json:"active"`
}

// Business is the merchant profile returned by the backend for an API key.
type Business struct {
	Business                BusinessProfile `json:"business" validate:"required"`
	OpenpayKeys             ProcessorKeys   `json:"openpay_keys"`
	FintocKeys              PublicKey       `json:"fintoc_keys"`
	MercadoPago             ProviderToggle  `json:"mercado_pago"`
	VaultID                 string          `json:"vault_id"`
	VaultURL                string          `json:"vault_url"`
	Reference               string          `json:"reference"`
	IsInstallmentsAvailable bool            `json:"is_installments_available"`
}

func (b *Business) HasVault() bool {
	return b != nil && b.VaultID != "" && b.VaultURL != ""
}
