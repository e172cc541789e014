package session

import "github.com/DanielPopoola/checkout-sdk/internal/domain"

// UIUpdate is a partial UIData change. Zero values mean "not provided",
// except SaveCard which uses a pointer so false can be set.
type UIUpdate struct {
	Card           string
	PaymentMethod  string
	SelectedMethod string
	SaveCard       *bool
	Cards          []domain.Card
	PaymentMethods []domain.PaymentMethod
}

// UpdateUI merges u into the UI selection. When a method is selected, at
// most one of card and payment method stays set, card winning.
func (s *Store) UpdateUI(u UIUpdate) {
	s.SetState(func(st *State) {
		applyUI(&st.UIData, u)
	})
}

// UpdateUIIf is UpdateUI guarded by a session generation.
func (s *Store) UpdateUIIf(gen uint64, u UIUpdate) bool {
	return s.SetStateIf(gen, func(st *State) {
		applyUI(&st.UIData, u)
	})
}

func applyUI(ui *domain.UIData, u UIUpdate) {
	if u.SelectedMethod != "" {
		switch {
		case u.Card != "":
			ui.Card, ui.PaymentMethod = u.Card, ""
		case u.PaymentMethod != "":
			ui.Card, ui.PaymentMethod = "", u.PaymentMethod
		default:
			ui.Card, ui.PaymentMethod = "", ""
		}
		ui.SelectedMethod = u.SelectedMethod
	}
	if u.SaveCard != nil {
		ui.SaveCard = *u.SaveCard
	}
	if u.Cards != nil {
		ui.Cards = u.Cards
	}
	if u.PaymentMethods != nil {
		ui.PaymentMethods = u.PaymentMethods
	}
}
