package domain

// Customer is the shopper as the merchant describes them.
type Customer struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Country   string `json:"country,omitempty"`
	Street    string `json:"street,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	PostCode  string `json:"postCode,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

func (c *Customer) IsEmpty() bool {
	return c == nil || *c == Customer{}
}

type CustomerProfile struct {
	Gender    string `json:"gender,omitempty"`
	DateBirth string `json:"date_birth,omitempty"`
	Terms     bool   `json:"terms"`
	Phone     string `json:"phone"`
}

// CustomerRecord is the backend's view of a customer. AuthToken is required
// for every card operation.
type CustomerRecord struct {
	ID            ID               `json:"id" validate:"required"`
	Email         string           `json:"email"`
	AuthToken     string           `json:"auth_token,omitempty"`
	Name          string           `json:"name,omitempty"`
	FirstName     string           `json:"first_name,omitempty"`
	LastName      string           `json:"last_name,omitempty"`
	ClientProfile *CustomerProfile `json:"client_profile,omitempty"`
}
