package domain

import "strings"

const (
	cdnBase  = "https://d35a75syrgujp0.cloudfront.net"
	iconBase = cdnBase + "/payment_methods/"
)

var cardBrandIcons = map[string]string{
	"visa":            cdnBase + "/cards/visa.png",
	"mastercard":      cdnBase + "/cards/mastercard.png",
	"americanexpress": cdnBase + "/cards/american_express.png",
}

const defaultCardIcon = cdnBase + "/cards/default_card.png"

// CardBrandIcon maps a card scheme such as "American Express" to its icon.
func CardBrandIcon(scheme string) string {
	if icon, ok := cardBrandIcons[strings.ToLower(clearSpace(scheme))]; ok {
		return icon
	}
	return defaultCardIcon
}

type PaymentMethodDetail struct {
	Label string
	Icon  string
}

var defaultPaymentMethodDetail = PaymentMethodDetail{Icon: iconBase + "store.png"}

var paymentMethodCatalog = map[string]PaymentMethodDetail{
	"SORIANA":           {Label: "Soriana", Icon: iconBase + "soriana.png"},
	"OXXO":              {Label: "Oxxo", Icon: iconBase + "oxxo.png"},
	"CODI":              {Label: "CoDi", Icon: iconBase + "codi.png"},
	"MERCADOPAGO":       {Label: "Mercado Pago", Icon: iconBase + "mercadopago.png"},
	"OXXOPAY":           {Label: "Oxxo Pay", Icon: iconBase + "oxxopay.png"},
	"SPEI":              {Label: "SPEI", Icon: iconBase + "spei.png"},
	"PAYPAL":            {Label: "Paypal", Icon: iconBase + "paypal.png"},
	"COMERCIALMEXICANA": {Label: "Comercial Mexicana", Icon: iconBase + "comercial_exicana.png"},
	"BANCOMER":          {Label: "Bancomer", Icon: iconBase + "bancomer.png"},
	"WALMART":           {Label: "Walmart", Icon: iconBase + "walmart.png"},
	"BODEGA":            {Label: "Bodega Aurrera", Icon: iconBase + "bodega_aurrera.png"},
	"SAMSCLUB":          {Label: "Sam´s Club", Icon: iconBase + "sams_club.png"},
	"SUPERAMA":          {Label: "Superama", Icon: iconBase + "superama.png"},
	"CALIMAX":           {Label: "Calimax", Icon: iconBase + "calimax.png"},
	"EXTRA":             {Label: "Tiendas Extra", Icon: iconBase + "tiendas_extra.png"},
	"CIRCULOK":          {Label: "Círculo K", Icon: iconBase + "circulo_k.png"},
	"7ELEVEN":           {Label: "7 Eleven", Icon: iconBase + "7_eleven.png"},
	"TELECOMM":          {Label: "Telecomm", Icon: iconBase + "telecomm.png"},
	"BANORTE":           {Label: "Banorte", Icon: iconBase + "banorte.png"},
	"BENAVIDES":         {Label: "Farmacias Benavides", Icon: iconBase + "farmacias_benavides.png"},
	"DELAHORRO":         {Label: "Farmacias del Ahorro", Icon: iconBase + "farmacias_ahorro.png"},
	"ELASTURIANO":       {Label: "El Asturiano", Icon: iconBase + "asturiano.png"},
	"WALDOS":            {Label: "Waldos", Icon: iconBase + "waldos.png"},
	"ALSUPER":           {Label: "Alsuper", Icon: iconBase + "al_super.png"},
	"KIOSKO":            {Label: "Kiosko", Icon: iconBase + "kiosko.png"},
	"STAMARIA":          {Label: "Farmacias Santa María", Icon: iconBase + "farmacias_santa_maria.png"},
	"LAMASBARATA":       {Label: "Farmacias la más barata", Icon: iconBase + "farmacias_barata.png"},
	"FARMROMA":          {Label: "Farmacias Roma", Icon: iconBase + "farmacias_roma.png"},
	"FARMUNION":         {Label: "Pago en Farmacias Unión", Icon: iconBase + "farmacias_union.png"},
	"FARMATODO":         {Label: "Pago en Farmacias Farmatodo", Icon: iconBase + "farmacias_farmatodo.png"},
	"SFDEASIS":          {Label: "Pago en Farmacias San Francisco de Asís", Icon: iconBase + "farmacias_san_francisco.png"},
	"FARM911":           {Label: "Farmacias 911", Icon: iconBase + "store.png"},
	"FARMECONOMICAS":    {Label: "Farmacias Economicas", Icon: iconBase + "store.png"},
	"FARMMEDICITY":      {Label: "Farmacias Medicity", Icon: iconBase + "store.png"},
	"RIANXEIRA":         {Label: "Rianxeira", Icon: iconBase + "store.png"},
	"WESTERNUNION":      {Label: "Western Union", Icon: iconBase + "store.png"},
	"ZONAPAGO":          {Label: "Zona Pago", Icon: iconBase + "store.png"},
	"CAJALOSANDES":      {Label: "Caja Los Andes", Icon: iconBase + "store.png"},
	"CAJAPAITA":         {Label: "Caja Paita", Icon: iconBase + "store.png"},
	"CAJASANTA":         {Label: "Caja Santa", Icon: iconBase + "store.png"},
	"CAJASULLANA":       {Label: "Caja Sullana", Icon: iconBase + "store.png"},
	"CAJATRUJILLO":      {Label: "Caja Trujillo", Icon: iconBase + "store.png"},
	"EDPYME":            {Label: "Edpyme", Icon: iconBase + "store.png"},
	"KASNET":            {Label: "KasNet", Icon: iconBase + "store.png"},
	"NORANDINO":         {Label: "Norandino", Icon: iconBase + "store.png"},
	"QAPAQ":             {Label: "Qapaq", Icon: iconBase + "store.png"},
	"RAIZ":              {Label: "Raiz", Icon: iconBase + "store.png"},
	"PAYSER":            {Label: "Paysera", Icon: iconBase + "store.png"},
	"WUNION":            {Label: "Western Union", Icon: iconBase + "store.png"},
	"BANCOCONTINENTAL":  {Label: "Banco Continental", Icon: iconBase + "store.png"},
	"GMONEY":            {Label: "Go money", Icon: iconBase + "store.png"},
	"GOPAY":             {Label: "Go pay", Icon: iconBase + "store.png"},
	"WU":                {Label: "Western Union", Icon: iconBase + "store.png"},
	"PUNTOSHEY":         {Label: "Puntoshey", Icon: iconBase + "store.png"},
	"AMPM":              {Label: "Ampm", Icon: iconBase + "store.png"},
	"JUMBOMARKET":       {Label: "Jumbomarket", Icon: iconBase + "store.png"},
	"SMELPUEBLO":        {Label: "Smelpueblo", Icon: iconBase + "store.png"},
	"BAM":               {Label: "Bam", Icon: iconBase + "store.png"},
	"REFACIL":           {Label: "Refacil", Icon: iconBase + "store.png"},
	"ACYVALORES":        {Label: "Acyvalores", Icon: iconBase + "store.png"},
	"SAFETYPAYCASH":     {Label: "Paga en Efectivo", Icon: iconBase + "cash_apm_sp.png"},
	"SAFETYPAYTRANSFER": {Label: "Paga por Transferencia", Icon: iconBase + "transfer_apm_sp.png"},
}

// PaymentMethodDetails looks a method code up case- and space-insensitively.
func PaymentMethodDetails(code string) PaymentMethodDetail {
	if d, ok := paymentMethodCatalog[strings.ToUpper(clearSpace(code))]; ok {
		return d
	}
	return defaultPaymentMethodDetail
}

func clearSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
