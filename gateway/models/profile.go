package models

// Profile is a customer profile record. The card list always holds at
// least one entry, real or fabricated, and owns its cards by value.
type Profile struct {
	CustomerCode    string         `json:"customer_code"`
	Cards           []Card         `json:"card"`
	Billing         BillingAddress `json:"billing"`
	Status          string         `json:"status"`
	LastTransaction string         `json:"last_transaction"`
	ModifiedDate    string         `json:"modified_date"`
	Language        string         `json:"language"`
	VelocityGroup   string         `json:"velocity_group"`
	ProfileGroup    string         `json:"profile_group"`
	AccountRef      string         `json:"account_ref"`
}

// CardAt returns the card at the given 1-based position.
func (p *Profile) CardAt(id int) (Card, bool) {
	if id < 1 || id > len(p.Cards) {
		return Card{}, false
	}
	return p.Cards[id-1], true
}
