package models

// Response shapes mirror the real processor's REST API so that clients
// integrating against the double parse exactly what production returns.
// All approval and risk figures are fixed placeholders.

type TokenizeResponse struct {
	Token   string `json:"token"`
	Code    int    `json:"code"`
	Version int    `json:"version"`
	Message string `json:"message"`
}

type CreateProfileResponse struct {
	Code         int            `json:"code"`
	Message      string         `json:"message"`
	CustomerCode string         `json:"customer_code"`
	Validation   CardValidation `json:"validation"`
}

// CardValidation is the canned pre-auth block returned on profile
// creation. Every field is a placeholder.
type CardValidation struct {
	ID          string  `json:"id"`
	Approved    int     `json:"approved"`
	MessageID   int     `json:"message_id"`
	Message     string  `json:"message"`
	AuthCode    string  `json:"auth_code"`
	TransDate   string  `json:"trans_date"`
	OrderNumber string  `json:"order_number"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	CVDID       int     `json:"cvd_id"`
}

// ProfileResponse is the body of GET /v1/profiles/{id}: the profile's
// top-level fields plus its first card, in full.
type ProfileResponse struct {
	Code            int            `json:"code"`
	Message         string         `json:"message"`
	CustomerCode    string         `json:"customer_code"`
	Status          string         `json:"status"`
	LastTransaction string         `json:"last_transaction"`
	ModifiedDate    string         `json:"modified_date"`
	Language        string         `json:"language"`
	VelocityGroup   string         `json:"velocity_group"`
	ProfileGroup    string         `json:"profile_group"`
	AccountRef      string         `json:"account_ref"`
	Card            Card           `json:"card"`
	Billing         BillingAddress `json:"billing"`
}

// ProfileCardsResponse is the body of GET /v1/profiles/{id}/cards.
// Cards are listed without their cvc.
type ProfileCardsResponse struct {
	Code         int    `json:"code"`
	Message      string `json:"message"`
	CustomerCode string `json:"customer_code"`
	Cards        []Card `json:"card"`
}

type PaymentResponse struct {
	ID                    int64        `json:"id"`
	AuthorizingMerchantID int          `json:"authorizing_merchant_id"`
	Approved              string       `json:"approved"`
	MessageID             string       `json:"message_id"`
	Message               string       `json:"message"`
	AuthCode              string       `json:"auth_code"`
	Created               string       `json:"created"`
	OrderNumber           string       `json:"order_number"`
	Type                  string       `json:"type"`
	PaymentMethod         string       `json:"payment_method"`
	RiskScore             int          `json:"risk_score"`
	Amount                float64      `json:"amount"`
	Custom                CustomFields `json:"custom"`
	Card                  PaymentCard  `json:"card"`
	Links                 []Link       `json:"links"`
}

type CustomFields struct {
	Ref1 string `json:"ref1"`
	Ref2 string `json:"ref2"`
	Ref3 string `json:"ref3"`
	Ref4 string `json:"ref4"`
	Ref5 string `json:"ref5"`
}

// PaymentCard summarizes the charged card. LastFour is the literal
// trailing four digits of the number.
type PaymentCard struct {
	CardType     string    `json:"card_type"`
	LastFour     string    `json:"last_four"`
	AddressMatch int       `json:"address_match"`
	PostalResult int       `json:"postal_result"`
	AVSResult    string    `json:"avs_result"`
	CVDResult    string    `json:"cvd_result"`
	AVS          AVSResult `json:"avs"`
}

type AVSResult struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Processed bool   `json:"processed"`
}

// Link is a void/return hyperlink stub on a payment response.
type Link struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Method string `json:"method"`
}

// PaymentRecord pairs an accepted payment request with the canned
// response issued for it, keyed by the response id.
type PaymentRecord struct {
	Request  PaymentRequest  `json:"request"`
	Response PaymentResponse `json:"response"`
}

// ErrorResponse is the uniform error body for 4xx results.
type ErrorResponse struct {
	Message string `json:"message"`
}
