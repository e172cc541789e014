package domain

import "context"

type SaveCardsOptions struct {
	ShowSaveCardOption bool
	ShowSaved          bool
	AutoSave           bool
	ShowDeleteOption   bool
}

type PaymentButtonOptions struct {
	Show       bool
	Text       string
	ShowAmount bool
}

type SaveButtonOptions struct {
	Show bool
	Text string
}

// Customization is the resolved presentation config of a session.
type Customization struct {
	SaveCards          SaveCardsOptions
	PaymentButton      PaymentButtonOptions
	ShowPaymentMethods bool
	ShowCardForm       bool
	SaveButton         SaveButtonOptions
	ShowMessages       bool
}

// CustomizationOverrides carries caller choices. A nil field keeps the mode
// default.
type CustomizationOverrides struct {
	ShowSaveCardOption *bool
	ShowSaved          *bool
	AutoSave           *bool
	ShowDeleteOption   *bool
	ShowPaymentButton  *bool
	PaymentButtonText  *string
	ShowAmount         *bool
	ShowPaymentMethods *bool
	ShowCardForm       *bool
	ShowSaveButton     *bool
	SaveButtonText     *string
	ShowMessages       *bool
}

// Merge applies o on top of c field by field.
func (c Customization) Merge(o *CustomizationOverrides) Customization {
	if o == nil {
		return c
	}
	setBool(&c.SaveCards.ShowSaveCardOption, o.ShowSaveCardOption)
	setBool(&c.SaveCards.ShowSaved, o.ShowSaved)
	setBool(&c.SaveCards.AutoSave, o.AutoSave)
	setBool(&c.SaveCards.ShowDeleteOption, o.ShowDeleteOption)
	setBool(&c.PaymentButton.Show, o.ShowPaymentButton)
	setString(&c.PaymentButton.Text, o.PaymentButtonText)
	setBool(&c.PaymentButton.ShowAmount, o.ShowAmount)
	setBool(&c.ShowPaymentMethods, o.ShowPaymentMethods)
	setBool(&c.ShowCardForm, o.ShowCardForm)
	setBool(&c.SaveButton.Show, o.ShowSaveButton)
	setString(&c.SaveButton.Text, o.SaveButtonText)
	setBool(&c.ShowMessages, o.ShowMessages)
	return c
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func Bool(b bool) *bool { return &b }

func String(s string) *string { return &s }

type PaymentResult struct {
	Transaction *Transaction
	Err         error
}

type SaveCardResult struct {
	Card *SavedCard
	Err  error
}

type RemoveCardResult struct {
	Message string
	Err     error
}

// Callbacks are merchant hooks. Before* hooks abort the operation when they
// return an error; OnFinish* hooks only observe.
type Callbacks struct {
	BeforePayment      func(ctx context.Context) error
	OnFinishPayment    func(ctx context.Context, res PaymentResult)
	BeforeSave         func(ctx context.Context) error
	OnFinishSave       func(ctx context.Context, res SaveCardResult)
	BeforeDeleteCard   func(ctx context.Context) error
	OnFinishDeleteCard func(ctx context.Context, res RemoveCardResult)
}

const (
	SelectedMethodNew = "new"
)

// UIData is the transient selection state behind a prebuilt payment form.
type UIData struct {
	Card           string
	PaymentMethod  string
	SelectedMethod string
	SaveCard       bool
	Cards          []Card
	PaymentMethods []PaymentMethod
}

// VaultProviderConfig configures the card vault for the current merchant.
type VaultProviderConfig struct {
	VaultID     string
	VaultURL    string
	Env         string
	LogLevel    string
	BearerToken func(ctx context.Context) (string, error)
}
