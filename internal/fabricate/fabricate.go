// Package fabricate produces plausible placeholder records for the
// lenient-mode fallbacks. Two registers exist on purpose: realistic
// records for fresh throwaway data (flow testing against ids the caller
// made up), and inert all-blank records for references the caller
// supplied but the system never issued, which should not be dressed up
// as a convincing card.
package fabricate

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonanatree/bambora-sim/gateway/models"
	"github.com/jonanatree/bambora-sim/internal/cardgen"
	"github.com/jonanatree/bambora-sim/internal/expiry"
	"github.com/jonanatree/bambora-sim/internal/token"
)

// emptyCardNumber marks a card slot the system could not resolve.
const emptyCardNumber = "0000000000000000"

var (
	firstNames = []string{"John", "Mary", "Peter", "Lucille", "Marcel", "Ingrid", "Tom", "Sandra", "Raj", "Wei", "Olga", "Diego"}
	lastNames  = []string{"Doe", "Smith", "Tremblay", "Nguyen", "Garcia", "Kowalski", "Chen", "MacDonald", "Singh", "Brown", "Leblanc", "Ivanov"}
	streets    = []string{"Main St", "Granville St", "Rue Sainte-Catherine", "King St W", "Portage Ave", "Jasper Ave", "Water St", "Broadway"}
	cities     = []string{"Vancouver", "Toronto", "Montreal", "Calgary", "Winnipeg", "Halifax", "Victoria", "Ottawa"}
	provinces  = []string{"BC", "ON", "QC", "AB", "MB", "NS"}
	languages  = []string{"en", "fr"}
)

// card brands with reserved test prefixes; AM numbers are 15 digits.
var brands = []struct {
	code   string
	prefix string
	length int
}{
	{"VI", "403000", 16},
	{"MC", "510000", 16},
	{"AM", "371100", 15},
}

// Fabricator mints synthetic records. It owns its randomness so tests
// can seed it; token identifiers come from the shared generator.
type Fabricator struct {
	tokens *token.Generator

	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Fabricator drawing randomness from the given seed.
func New(tokens *token.Generator, seed int64) *Fabricator {
	return &Fabricator{
		tokens: tokens,
		rnd:    rand.New(rand.NewSource(seed)),
	}
}

// Card fabricates a realistic card: random cardholder, a Luhn-valid
// number on a reserved test prefix, a future expiry and a random cvc.
// A supplied token is reused instead of minting one.
func (f *Fabricator) Card(tok string) models.Card {
	f.mu.Lock()
	brand := brands[f.rnd.Intn(len(brands))]
	number, err := cardgen.GeneratePAN(f.rnd, brand.prefix, brand.length)
	if err != nil {
		// reserved prefixes are static, generation cannot fail on them
		panic(fmt.Sprintf("fabricate card number: %v", err))
	}
	name := firstNames[f.rnd.Intn(len(firstNames))] + " " + lastNames[f.rnd.Intn(len(lastNames))]
	month, year := expiry.MonthYear(time.Now().AddDate(0, f.rnd.Intn(12), 0), 1+f.rnd.Intn(5))
	cvc := fmt.Sprintf("%03d", f.rnd.Intn(1000))
	f.mu.Unlock()

	if tok == "" {
		tok = f.tokens.Token("C", number)
	}
	return models.Card{
		Token:       tok,
		Name:        name,
		Number:      number,
		ExpiryMonth: month,
		ExpiryYear:  year,
		CVC:         cvc,
		CardType:    brand.code,
	}
}

// EmptyCard fabricates the inert placeholder card: all-zero number,
// blank name and type. A supplied token is carried through so the
// response still echoes the reference the caller used.
func (f *Fabricator) EmptyCard(tok string) models.Card {
	if tok == "" {
		tok = f.tokens.Token("C", emptyCardNumber)
	}
	return models.Card{
		Token:       tok,
		Number:      emptyCardNumber,
		ExpiryMonth: "00",
		ExpiryYear:  "00",
	}
}

// BillingAddress fabricates a realistic address, reusing the card's
// name when one is given.
func (f *Fabricator) BillingAddress(card *models.Card) models.BillingAddress {
	f.mu.Lock()
	defer f.mu.Unlock()

	name := firstNames[f.rnd.Intn(len(firstNames))] + " " + lastNames[f.rnd.Intn(len(lastNames))]
	if card != nil && card.Name != "" {
		name = card.Name
	}
	return models.BillingAddress{
		Name:         name,
		AddressLine1: fmt.Sprintf("%d %s", 1+f.rnd.Intn(9999), streets[f.rnd.Intn(len(streets))]),
		City:         cities[f.rnd.Intn(len(cities))],
		Province:     provinces[f.rnd.Intn(len(provinces))],
		Country:      "CA",
		PostalCode:   f.postalCode(),
		PhoneNumber:  fmt.Sprintf("604555%04d", f.rnd.Intn(10000)),
		EmailAddress: fmt.Sprintf("test%d@example.com", f.rnd.Intn(100000)),
	}
}

// EmptyBillingAddress returns an all-blank address, name taken from the
// card when present.
func (f *Fabricator) EmptyBillingAddress(card *models.Card) models.BillingAddress {
	addr := models.BillingAddress{}
	if card != nil {
		addr.Name = card.Name
	}
	return addr
}

// Profile composes a full profile from a supplied or fabricated card
// and a fabricated billing address. A supplied customerCode is reused
// as the profile identifier, which is how lenient mode answers for
// customer codes the store never saw.
func (f *Fabricator) Profile(customerCode string, card *models.Card) models.Profile {
	var c models.Card
	if card != nil {
		c = *card
	} else {
		c = f.Card("")
	}
	c.CardID = 1

	if customerCode == "" {
		customerCode = f.tokens.Token("P", c.Token)
	}
	return models.Profile{
		CustomerCode: customerCode,
		Cards:        []models.Card{c},
		Billing:      f.BillingAddress(&c),
		Status:       "A",
		ModifiedDate: time.Now().UTC().Format(time.RFC3339),
		Language:     f.Language(),
		AccountRef:   uuid.New().String(),
	}
}

// Language picks a random profile language.
func (f *Fabricator) Language() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return languages[f.rnd.Intn(len(languages))]
}

func (f *Fabricator) postalCode() string {
	const letters = "ABCEGHJKLMNPRSTVXY" // letters valid in Canadian postal codes
	b := []byte{
		letters[f.rnd.Intn(len(letters))],
		'0' + byte(f.rnd.Intn(10)),
		letters[f.rnd.Intn(len(letters))],
		' ',
		'0' + byte(f.rnd.Intn(10)),
		letters[f.rnd.Intn(len(letters))],
		'0' + byte(f.rnd.Intn(10)),
	}
	return string(b)
}
