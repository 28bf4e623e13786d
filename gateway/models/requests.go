package models

// TokenizeRequest is the body of POST /scripts/tokenization/tokens.
type TokenizeRequest struct {
	Number      string `json:"number" validate:"required"`
	ExpiryMonth string `json:"expiry_month" validate:"required"`
	ExpiryYear  string `json:"expiry_year" validate:"required"`
	CVD         string `json:"cvd" validate:"required"`
}

// CreateProfileRequest is the body of POST /v1/profiles. Exactly one of
// Card (raw card fields) or Token (a previously issued single-use token)
// carries the card; the service rejects requests with neither.
type CreateProfileRequest struct {
	Card     *ProfileCard    `json:"card,omitempty"`
	Token    *ProfileToken   `json:"token,omitempty"`
	Billing  *BillingAddress `json:"billing,omitempty"`
	Language string          `json:"language,omitempty"`
}

// ProfileCard is the raw-card variant of profile creation.
type ProfileCard struct {
	Name        string `json:"name"`
	Number      string `json:"number" validate:"required"`
	ExpiryMonth string `json:"expiry_month" validate:"required"`
	ExpiryYear  string `json:"expiry_year" validate:"required"`
	CVD         string `json:"cvd,omitempty"`
}

// ProfileToken references a card token issued by tokenization.
type ProfileToken struct {
	Name string `json:"name,omitempty"`
	Code string `json:"code" validate:"required"`
}

// PaymentRequest is the body of POST /v1/payments. Only payment_profile
// payments are simulated.
type PaymentRequest struct {
	PaymentMethod  string          `json:"payment_method" validate:"required"`
	PaymentProfile *PaymentProfile `json:"payment_profile,omitempty"`
	Amount         float64         `json:"amount"`
	OrderNumber    string          `json:"order_number,omitempty"`
}

// PaymentProfile selects the paying profile and one of its cards by
// 1-based position.
type PaymentProfile struct {
	CustomerCode string `json:"customer_code" validate:"required"`
	CardID       int    `json:"card_id"`
	Complete     bool   `json:"complete,omitempty"`
}
