package models

// Card is a tokenized card record. Once created it is never mutated;
// profiles embed copies, not references.
type Card struct {
	Token       string `json:"token,omitempty"`
	Name        string `json:"name"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVC         string `json:"cvc,omitempty"`
	CardType    string `json:"card_type"`
	// CardID is the 1-based position of the card within a profile's card
	// list. Zero outside of a profile.
	CardID int `json:"card_id,omitempty"`
}

// WithoutCVC returns a copy safe for card-listing responses.
func (c Card) WithoutCVC() Card {
	c.CVC = ""
	return c
}

// BillingAddress is embedded in a profile, never stored on its own.
type BillingAddress struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	Province     string `json:"province"`
	Country      string `json:"country"`
	PostalCode   string `json:"postal_code"`
	PhoneNumber  string `json:"phone_number"`
	EmailAddress string `json:"email_address"`
}
