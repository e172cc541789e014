package domain

type Card struct {
	Fields CardFields `json:"fields"`
	Icon   string     `json:"icon,omitempty"`
}

type CustomerCards struct {
	UserID ID     `json:"user_id"`
	Cards  []Card `json:"cards"`
}

// WithIcons returns a copy whose cards carry their brand icon.
func (c *CustomerCards) WithIcons() *CustomerCards {
	out := &CustomerCards{UserID: c.UserID, Cards: make([]Card, len(c.Cards))}
	for i, card := range c.Cards {
		card.Icon = CardBrandIcon(card.Fields.CardScheme)
		out.Cards[i] = card
	}
	return out
}

type SaveCardRequest struct {
	SkyflowID string `json:"skyflow_id" validate:"required"`
}

type SavedCard struct {
	SkyflowID string `json:"skyflow_id" validate:"required"`
	UserID    ID     `json:"user_id"`
}

type CardSummary struct {
	UserID ID         `json:"user_id"`
	Card   CardFields `json:"card"`
}
