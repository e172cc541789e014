package domain

import (
	"errors"
	"fmt"
)

// CheckoutError is the error type every public operation returns.
type CheckoutError struct {
	Code    string
	Message string
	Details any
	Err     error
}

func (e *CheckoutError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %v", e.Message, e.Code, e.Err)
	}
	return fmt.Sprintf("%s [%s]", e.Message, e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *CheckoutError) Unwrap() error {
	return e.Err
}

// Transport-level codes.
const (
	ErrCodeRequestAborted = "REQUEST_ABORTED"
	ErrCodeRequestFailed  = "REQUEST_FAILED"
	ErrCodeUnknown        = "UNKNOWN_ERROR"
	ErrCodeInternal       = "INTERNAL_ERROR"
)

// Validation codes, raised before any network call.
const (
	ErrCodeMerchantCredentialRequired  = "MERCHANT_CREDENTIAL_REQUIRED"
	ErrCodeBusinessIDRequired          = "BUSINESS_ID_REQUIRED"
	ErrCodeClientIDRequired            = "CLIENT_ID_REQUIRED"
	ErrCodeCheckoutIDRequired          = "CHECKOUT_ID_REQUIRED"
	ErrCodeInvalidAmount               = "INVALID_AMOUNT"
	ErrCodeInvalidItems                = "INVALID_ITEMS"
	ErrCodeInvalidEmail                = "INVALID_EMAIL"
	ErrCodeSecureTokenInvalid          = "SECURE_TOKEN_INVALID"
	ErrCodeInvalidSecretAPIKey         = "INVALID_SECRET_API_KEY"
	ErrCodeInvalidPaymentRequest       = "INVALID_PAYMENT_REQUEST"
	ErrCodeInvalidPaymentRequestCardPM = "INVALID_PAYMENT_REQUEST_CARD_PM"
	ErrCodeVerifyURLRequired           = "VERIFY_URL_REQUIRED"
	ErrCodeInvalidConfig               = "INVALID_CONFIG"
)

// Business-logic codes.
const (
	ErrCodeCustomerAuthTokenNotValid = "CUSTOMER_AUTH_TOKEN_NOT_VALID"
	ErrCodeCustomerOperation         = "CUSTOMER_OPERATION_ERROR"
	ErrCodeFetchBusiness             = "FETCH_BUSINESS_ERROR"
	ErrCodeFetchCards                = "FETCH_CARDS_ERROR"
	ErrCodeSaveCard                  = "SAVE_CARD_ERROR"
	ErrCodeRemoveCard                = "REMOVE_CARD_ERROR"
	ErrCodeCardSummary               = "CARD_SUMMARY_ERROR"
	ErrCodeSaveCardProcess           = "SAVE_CARD_PROCESS_ERROR"
	ErrCodeCreateOrder               = "CREATE_ORDER_ERROR"
	ErrCodeCreatePayment             = "CREATE_PAYMENT_ERROR"
	ErrCodeStartCheckout             = "START_CHECKOUT_ERROR"
	ErrCodePaymentProcess            = "PAYMENT_PROCESS_ERROR"
	ErrCodePaymentInProgress         = "PAYMENT_IN_PROGRESS"
	ErrCodeFetchPaymentMethods       = "FETCH_PAYMENT_METHODS_ERROR"
	ErrCodeInvalidVaultToken         = "INVALID_VAULT_TOKEN"
	ErrCodeVaultToken                = "VAULT_TOKEN_ERROR"
	ErrCodeSecureToken               = "SECURE_TOKEN_ERROR"
	ErrCodeFetchTransaction          = "FETCH_TRANSACTION_ERROR"
	ErrCodeThreeDSRedirection        = "THREEDS_REDIRECTION_ERROR"
	ErrCodeInvalidCardData           = "INVALID_CARD_DATA"
	ErrCodeVaultNotInitialized       = "VAULT_NOT_INITIALIZED"
	ErrCodeStateError                = "STATE_ERROR"
	ErrCodeCreate                    = "CREATE_ERROR"
	ErrCodeLoadPaymentForm           = "ERROR_LOAD_PAYMENT_FORM"
	ErrCodeLoadEnrollmentForm        = "ERROR_LOAD_ENROLLMENT_FORM"
)

// Status codes that only ever appear as state messages.
const (
	MsgCardSaved   = "CARD_SAVED_SUCCESSFULLY"
	MsgCardRemoved = "CARD_REMOVED_SUCCESSFULLY"
)

// NewError builds a CheckoutError whose message comes from the English table.
func NewError(code string) *CheckoutError {
	return &CheckoutError{
		Code:    code,
		Message: Message(code, LanguageEN),
	}
}

// WrapError builds a CheckoutError around a lower level cause.
func WrapError(code string, err error) *CheckoutError {
	return &CheckoutError{
		Code:    code,
		Message: Message(code, LanguageEN),
		Err:     err,
	}
}

// WrapErrorWithDetails attaches a structured payload, usually a parsed
// response body.
func WrapErrorWithDetails(code string, err error, details any) *CheckoutError {
	e := WrapError(code, err)
	e.Details = details
	return e
}

// IsCheckoutError reports whether err wraps a CheckoutError and returns it.
func IsCheckoutError(err error) (*CheckoutError, bool) {
	var ce *CheckoutError
	ok := errors.As(err, &ce)
	return ce, ok
}

// IsErrorCode checks if an error is a CheckoutError with a specific code
func IsErrorCode(err error, code string) bool {
	var ce *CheckoutError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}

// ErrorCode returns the outermost code in err's chain, or ErrCodeUnknown.
func ErrorCode(err error) string {
	if ce, ok := IsCheckoutError(err); ok {
		return ce.Code
	}
	return ErrCodeUnknown
}
