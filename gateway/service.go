package gateway

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jonanatree/bambora-sim/gateway/models"
	"github.com/jonanatree/bambora-sim/internal/cardgen"
	"github.com/jonanatree/bambora-sim/internal/fabricate"
	"github.com/jonanatree/bambora-sim/internal/recordstore"
	"github.com/jonanatree/bambora-sim/internal/token"
)

// authorizingMerchantID and friends are the fixed placeholder figures
// echoed on every simulated payment.
const (
	authorizingMerchantID = 367410000
	cannedAuthCode        = "TEST"
	cannedOrderNumber     = "1521750069"
	paymentLinkBase       = "https://api.na.bambora.com/v1/payments"
)

// Policy is the process-wide mode, set once at construction and consulted
// uniformly by every operation.
type Policy struct {
	// Strict turns unresolved references into errors instead of
	// fabricated fallbacks.
	Strict bool
	// CacheEnabled persists created records into the stores. When off,
	// saves are no-ops and every lookup misses.
	CacheEnabled bool
}

// Service simulates the processor's gateway: it accepts parsed request
// bodies and returns response bodies shaped like the real API, backed by
// nothing but the bounded in-memory stores.
type Service struct {
	policy Policy
	tokens *token.Generator
	fab    *fabricate.Fabricator

	cards    *recordstore.Store[string, models.Card]
	profiles *recordstore.Store[string, models.Profile]
	payments *recordstore.Store[int64, models.PaymentRecord]
}

// NewService wires the simulator core. capacity bounds each of the three
// record stores independently.
func NewService(tokens *token.Generator, fab *fabricate.Fabricator, policy Policy, capacity int) *Service {
	return &Service{
		policy:   policy,
		tokens:   tokens,
		fab:      fab,
		cards:    recordstore.New[string, models.Card](capacity),
		profiles: recordstore.New[string, models.Profile](capacity),
		payments: recordstore.New[int64, models.PaymentRecord](capacity),
	}
}

// TokenizeCard mints a single-use card token. It never fails: any
// well-formed card data tokenizes.
func (s *Service) TokenizeCard(req models.TokenizeRequest) (*models.TokenizeResponse, error) {
	card := models.Card{
		Token:       s.tokens.Token("C", req.Number),
		Number:      req.Number,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		CVC:         req.CVD,
		CardType:    cardTypeFor(req.Number),
	}
	s.saveCard(card)

	return &models.TokenizeResponse{
		Token:   card.Token,
		Code:    1,
		Version: 1,
		Message: "",
	}, nil
}

// CreateProfile builds a multi-use customer profile from raw card fields
// or a previously issued card token.
func (s *Service) CreateProfile(req models.CreateProfileRequest) (*models.CreateProfileResponse, error) {
	var card models.Card
	switch {
	case req.Card != nil:
		// raw card data: build the card directly, no store lookup
		card = models.Card{
			Token:       s.tokens.Token("C", req.Card.Number),
			Name:        req.Card.Name,
			Number:      req.Card.Number,
			ExpiryMonth: req.Card.ExpiryMonth,
			ExpiryYear:  req.Card.ExpiryYear,
			CVC:         req.Card.CVD,
			CardType:    cardTypeFor(req.Card.Number),
		}
	case req.Token != nil:
		stored, ok := s.cards.Get(req.Token.Code)
		if !ok {
			if s.policy.Strict {
				return nil, &ReferenceError{Kind: "card token", Ref: req.Token.Code}
			}
			stored = s.fab.EmptyCard(req.Token.Code)
		}
		card = stored
		if req.Token.Name != "" {
			card.Name = req.Token.Name
		}
	default:
		return nil, &RequestError{Reason: "a card or a card token is required"}
	}
	card.CardID = 1

	billing := s.fab.EmptyBillingAddress(&card)
	if req.Billing != nil {
		billing = *req.Billing
	}
	language := req.Language
	if language == "" {
		language = s.fab.Language()
	}

	profile := models.Profile{
		CustomerCode: s.tokens.Token("P", card.Token),
		Cards:        []models.Card{card},
		Billing:      billing,
		Status:       "A",
		ModifiedDate: time.Now().UTC().Format(time.RFC3339),
		Language:     language,
		AccountRef:   uuid.New().String(),
	}
	s.saveProfile(profile)

	return &models.CreateProfileResponse{
		Code:         1,
		Message:      "",
		CustomerCode: profile.CustomerCode,
		Validation: models.CardValidation{
			Approved: 1,
			AuthCode: cannedAuthCode,
			CVDID:    1,
		},
	}, nil
}

// GetProfile returns a profile's top-level fields together with its first
// card, in full.
func (s *Service) GetProfile(profileID string) (*models.ProfileResponse, error) {
	profile, err := s.resolveProfile(profileID)
	if err != nil {
		return nil, err
	}

	return &models.ProfileResponse{
		Code:            1,
		Message:         "Operation Successful",
		CustomerCode:    profile.CustomerCode,
		Status:          profile.Status,
		LastTransaction: profile.LastTransaction,
		ModifiedDate:    profile.ModifiedDate,
		Language:        profile.Language,
		VelocityGroup:   profile.VelocityGroup,
		ProfileGroup:    profile.ProfileGroup,
		AccountRef:      profile.AccountRef,
		Card:            profile.Cards[0],
		Billing:         profile.Billing,
	}, nil
}

// GetProfileCards lists a profile's cards with the cvc stripped from
// every entry.
func (s *Service) GetProfileCards(profileID string) (*models.ProfileCardsResponse, error) {
	profile, err := s.resolveProfile(profileID)
	if err != nil {
		return nil, err
	}

	cards := make([]models.Card, len(profile.Cards))
	for i, c := range profile.Cards {
		cards[i] = c.WithoutCVC()
	}

	return &models.ProfileCardsResponse{
		Code:         1,
		Message:      "Operation Successful",
		CustomerCode: profile.CustomerCode,
		Cards:        cards,
	}, nil
}

// CreatePayment simulates a payment against a stored profile's card and
// returns the canned approval response.
func (s *Service) CreatePayment(req models.PaymentRequest) (*models.PaymentResponse, error) {
	if req.PaymentMethod != "payment_profile" {
		return nil, &RequestError{Reason: "can only simulate payment_profile payments"}
	}
	if req.PaymentProfile == nil {
		return nil, &RequestError{Reason: "payment_profile is required"}
	}

	var card models.Card
	profile, ok := s.profiles.Get(req.PaymentProfile.CustomerCode)
	if !ok {
		if s.policy.Strict {
			return nil, &ReferenceError{Kind: "customer code", Ref: req.PaymentProfile.CustomerCode}
		}
		profile = s.fab.Profile(req.PaymentProfile.CustomerCode, nil)
		s.saveProfile(profile)
		card = profile.Cards[0]
	} else {
		card, ok = profile.CardAt(req.PaymentProfile.CardID)
		if !ok {
			if s.policy.Strict {
				return nil, &ReferenceError{Kind: "card id", Ref: strconv.Itoa(req.PaymentProfile.CardID)}
			}
			card = s.fab.EmptyCard("")
		}
	}

	id := s.tokens.PaymentID()
	orderNumber := req.OrderNumber
	if orderNumber == "" {
		orderNumber = cannedOrderNumber
	}

	resp := models.PaymentResponse{
		ID:                    id,
		AuthorizingMerchantID: authorizingMerchantID,
		Approved:              "1",
		MessageID:             "1",
		Message:               "Approved",
		AuthCode:              cannedAuthCode,
		Created:               time.Now().UTC().Format("2006-01-02T15:04:05"),
		OrderNumber:           orderNumber,
		Type:                  "P",
		PaymentMethod:         "CC",
		RiskScore:             0,
		Amount:                req.Amount,
		Custom:                models.CustomFields{},
		Card: models.PaymentCard{
			CardType:     "VI",
			LastFour:     cardgen.LastN(card.Number, 4),
			AddressMatch: 0,
			PostalResult: 0,
			AVSResult:    "0",
			CVDResult:    "5",
			AVS: models.AVSResult{
				ID:        "U",
				Message:   "Address information is unavailable.",
				Processed: false,
			},
		},
		Links: []models.Link{
			{Rel: "void", Href: paymentLink(id, "void"), Method: "POST"},
			{Rel: "return", Href: paymentLink(id, "returns"), Method: "POST"},
		},
	}
	s.savePayment(id, models.PaymentRecord{Request: req, Response: resp})

	return &resp, nil
}

// resolveProfile looks a profile up and applies the strict/lenient
// fallback. Lenient fabrications are saved like any created record, so
// with caching on a re-fetch sees the same profile and with caching off
// each fetch fabricates afresh.
func (s *Service) resolveProfile(profileID string) (models.Profile, error) {
	profile, ok := s.profiles.Get(profileID)
	if ok {
		return profile, nil
	}
	if s.policy.Strict {
		return models.Profile{}, &ReferenceError{Kind: "customer code", Ref: profileID}
	}
	profile = s.fab.Profile(profileID, nil)
	s.saveProfile(profile)
	return profile, nil
}

func (s *Service) saveCard(card models.Card) {
	if !s.policy.CacheEnabled {
		return
	}
	s.cards.Put(card.Token, card)
}

func (s *Service) saveProfile(profile models.Profile) {
	if !s.policy.CacheEnabled {
		return
	}
	s.profiles.Put(profile.CustomerCode, profile)
}

func (s *Service) savePayment(id int64, record models.PaymentRecord) {
	if !s.policy.CacheEnabled {
		return
	}
	s.payments.Put(id, record)
}

// Payment returns a stored payment record by id.
func (s *Service) Payment(id int64) (models.PaymentRecord, bool) {
	return s.payments.Get(id)
}

func paymentLink(id int64, action string) string {
	return paymentLinkBase + "/" + strconv.FormatInt(id, 10) + "/" + action
}

// cardTypeFor guesses a brand code from the leading digit, the way the
// simulated responses present it. Unrecognized ranges report "NN".
func cardTypeFor(number string) string {
	if number == "" {
		return "NN"
	}
	switch number[0] {
	case '4':
		return "VI"
	case '5':
		return "MC"
	case '3':
		return "AM"
	default:
		return "NN"
	}
}
