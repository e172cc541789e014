package domain

// SecureToken is the short-lived bearer credential for card operations. It
// is minted server-side from the merchant secret key.
type SecureToken struct {
	Access string `json:"access" validate:"required"`
}

type VaultToken struct {
	Token string `json:"token"`
}
