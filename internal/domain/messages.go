package domain

type Language string

const (
	LanguageEN Language = "en"
	LanguageES Language = "es"
)

var messagesEN = map[string]string{
	ErrCodeRequestAborted:              "Requests canceled.",
	ErrCodeRequestFailed:               "Request failed.",
	ErrCodeUnknown:                     "An unexpected error occurred.",
	ErrCodeInternal:                    "Internal server error.",
	ErrCodeMerchantCredentialRequired:  "Merchant credential required.",
	ErrCodeBusinessIDRequired:          "Business ID is required.",
	ErrCodeClientIDRequired:            "Client ID is required.",
	ErrCodeCheckoutIDRequired:          "Checkout ID is required.",
	ErrCodeInvalidAmount:               "Invalid amount.",
	ErrCodeInvalidItems:                "Invalid items.",
	ErrCodeInvalidEmail:                "Invalid email.",
	ErrCodeSecureTokenInvalid:          "Invalid secure token.",
	ErrCodeInvalidSecretAPIKey:         "SECRET API KEY is required.",
	ErrCodeInvalidPaymentRequest:       "The payment data is empty or malformed.",
	ErrCodeInvalidPaymentRequestCardPM: "The fields card and payment_method cannot be provided together.",
	ErrCodeVerifyURLRequired:           "Verify transaction status URL is required.",
	ErrCodeInvalidConfig:               "Required configuration options.",
	ErrCodeCustomerAuthTokenNotValid:   "The customer's auth token is invalid. Please verify that the customer's data was provided when creating the checkout and try again.",
	ErrCodeCustomerOperation:           "Error registering or fetching customer.",
	ErrCodeFetchBusiness:               "Error retrieving merchant information.",
	ErrCodeFetchCards:                  "Error retrieving cards.",
	ErrCodeSaveCard:                    "Error saving the card.",
	ErrCodeRemoveCard:                  "Error deleting the card.",
	ErrCodeCardSummary:                 "Error retrieving the card summary.",
	ErrCodeSaveCardProcess:             "Error processing card data.",
	ErrCodeCreateOrder:                 "Error creating the order.",
	ErrCodeCreatePayment:               "Error creating the payment.",
	ErrCodeStartCheckout:               "Error processing the payment.",
	ErrCodePaymentProcess:              "There was an issue processing the payment.",
	ErrCodePaymentInProgress:           "A payment is already being processed.",
	ErrCodeFetchPaymentMethods:         "Error retrieving active payment methods.",
	ErrCodeInvalidVaultToken:           "An invalid vault token response was received.",
	ErrCodeVaultToken:                  "Error retrieving the vault token.",
	ErrCodeSecureToken:                 "Error getting secure token.",
	ErrCodeFetchTransaction:            "Error retrieving the transaction.",
	ErrCodeThreeDSRedirection:          "An error occurred during the 3DS redirection.",
	ErrCodeInvalidCardData:             "Invalid card data.",
	ErrCodeVaultNotInitialized:         "Vault not initialized.",
	ErrCodeStateError:                  "Error updating checkout state.",
	ErrCodeCreate:                      "Error creating the checkout.",
	ErrCodeLoadPaymentForm:             "There was an issue loading the payment form.",
	ErrCodeLoadEnrollmentForm:          "There was an issue loading the card form.",
	MsgCardSaved:                       "Card saved successfully.",
	MsgCardRemoved:                     "Card deleted successfully.",
}

var messagesES = map[string]string{
	ErrCodeRequestAborted:              "Peticiones canceladas.",
	ErrCodeRequestFailed:               "Petición fallida.",
	ErrCodeUnknown:                     "Ocurrió un error inesperado.",
	ErrCodeInternal:                    "Error interno del servidor.",
	ErrCodeMerchantCredentialRequired:  "Credencial de comercio requerida.",
	ErrCodeBusinessIDRequired:          "ID de Comercio es requerido.",
	ErrCodeClientIDRequired:            "ID de Cliente es requerido.",
	ErrCodeCheckoutIDRequired:          "ID de checkout es requerido.",
	ErrCodeInvalidAmount:               "Monto no válido.",
	ErrCodeInvalidItems:                "Artículos no válidos.",
	ErrCodeInvalidEmail:                "Correo electrónico no válido.",
	ErrCodeSecureTokenInvalid:          "Token de seguridad inválido.",
	ErrCodeInvalidSecretAPIKey:         "SECRET API KEY es requerido.",
	ErrCodeInvalidPaymentRequest:       "Los datos de pago están vacíos o mal formados.",
	ErrCodeInvalidPaymentRequestCardPM: "Los datos card y payment_method no se pueden proporcionar juntos.",
	ErrCodeVerifyURLRequired:           "La URL de verificación de la transacción es requerida.",
	ErrCodeInvalidConfig:               "Opciones de configuración requeridas.",
	ErrCodeCustomerAuthTokenNotValid:   "El token del cliente no es valido, por favor verifica que se hayan proporcionado los datos del cliente al crear el checkout e intenta nuevamente.",
	ErrCodeCustomerOperation:           "Error registrando u obteniendo el cliente.",
	ErrCodeFetchBusiness:               "Error obteniendo información del comercio.",
	ErrCodeFetchCards:                  "Error obteniendo las tarjetas.",
	ErrCodeSaveCard:                    "Error guardando la tarjeta.",
	ErrCodeRemoveCard:                  "Error eliminando la tarjeta.",
	ErrCodeCardSummary:                 "Error obteniendo el resumen de la tarjeta.",
	ErrCodeSaveCardProcess:             "Error procesando los datos de la tarjeta.",
	ErrCodeCreateOrder:                 "Error creando la orden.",
	ErrCodeCreatePayment:               "Error creando el pago.",
	ErrCodeStartCheckout:               "Error al procesar el pago.",
	ErrCodePaymentProcess:              "Hubo un problema al procesar el pago.",
	ErrCodePaymentInProgress:           "Ya hay un pago en proceso.",
	ErrCodeFetchPaymentMethods:         "Error obteniendo los métodos de pago activos.",
	ErrCodeInvalidVaultToken:           "Se recibió una respuesta de token de bóveda no válida.",
	ErrCodeVaultToken:                  "Error al obtener el token de la bóveda.",
	ErrCodeSecureToken:                 "Error obteniendo el token seguro.",
	ErrCodeFetchTransaction:            "Error obteniendo la transacción.",
	ErrCodeThreeDSRedirection:          "Ocurrió un error durante la redirección de 3DS.",
	ErrCodeInvalidCardData:             "Datos de tarjeta no válidos.",
	ErrCodeVaultNotInitialized:         "Bóveda no inicializada.",
	ErrCodeStateError:                  "Error actualizando el estado del checkout.",
	ErrCodeCreate:                      "Error creando el checkout.",
	ErrCodeLoadPaymentForm:             "Hubo un problema cargando el formulario de pago.",
	ErrCodeLoadEnrollmentForm:          "Hubo un problema cargando el formulario de tarjeta.",
	MsgCardSaved:                       "Tarjeta registrada con éxito.",
	MsgCardRemoved:                     "Tarjeta eliminada con éxito.",
}

// Message resolves a code to a user-facing string. Unknown languages fall back
// to English, unknown codes to the generic unknown-error text.
func Message(code string, lang Language) string {
	table := messagesEN
	if lang == LanguageES {
		table = messagesES
	}
	if msg, ok := table[code]; ok {
		return msg
	}
	if msg, ok := messagesEN[code]; ok {
		return msg
	}
	return table[ErrCodeUnknown]
}
