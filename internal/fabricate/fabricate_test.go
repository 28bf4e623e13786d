package fabricate

import (
	"strings"
	"testing"
	"time"

	"github.com/jonanatree/bambora-sim/gateway/models"
	"github.com/jonanatree/bambora-sim/internal/cardgen"
	"github.com/jonanatree/bambora-sim/internal/expiry"
	"github.com/jonanatree/bambora-sim/internal/token"
)

func newFabricator() *Fabricator {
	return New(token.NewGenerator(time.Now()), 1)
}

func TestCard_Realistic(t *testing.T) {
	f := newFabricator()
	c := f.Card("")
	if c.Token == "" || !strings.HasPrefix(c.Token, "C-") {
		t.Fatalf("card token %q should be minted with C prefix", c.Token)
	}
	if !cardgen.Valid(c.Number) {
		t.Fatalf("card number %s should be luhn-valid", c.Number)
	}
	if c.Name == "" || c.CardType == "" {
		t.Fatalf("realistic card should carry name and type: %+v", c)
	}
	if !expiry.ValidMonth(c.ExpiryMonth) {
		t.Fatalf("expiry month %s out of range", c.ExpiryMonth)
	}
	if len(c.CVC) != 3 {
		t.Fatalf("cvc %q should be 3 digits", c.CVC)
	}
}

func TestCard_ReusesToken(t *testing.T) {
	f := newFabricator()
	c := f.Card("C-abc-0001-xyz-1234")
	if c.Token != "C-abc-0001-xyz-1234" {
		t.Fatalf("supplied token should be reused, got %q", c.Token)
	}
}

func TestEmptyCard(t *testing.T) {
	f := newFabricator()
	c := f.EmptyCard("C-never-issued")
	if c.Token != "C-never-issued" {
		t.Fatalf("empty card should carry supplied token, got %q", c.Token)
	}
	if c.Number != "0000000000000000" {
		t.Fatalf("empty card number got %q", c.Number)
	}
	if c.Name != "" || c.CardType != "" || c.CVC != "" {
		t.Fatalf("empty card should be blank: %+v", c)
	}
}

func TestBillingAddress_ReusesCardName(t *testing.T) {
	f := newFabricator()
	card := &models.Card{Name: "Lucille Tremblay"}
	addr := f.BillingAddress(card)
	if addr.Name != "Lucille Tremblay" {
		t.Fatalf("address name got %q want card name", addr.Name)
	}
	if addr.AddressLine1 == "" || addr.City == "" || addr.PostalCode == "" {
		t.Fatalf("realistic address should be populated: %+v", addr)
	}
}

func TestEmptyBillingAddress(t *testing.T) {
	f := newFabricator()
	addr := f.EmptyBillingAddress(&models.Card{Name: "John Doe"})
	if addr.Name != "John Doe" {
		t.Fatalf("empty address should keep card name, got %q", addr.Name)
	}
	if addr.City != "" || addr.AddressLine1 != "" || addr.Country != "" {
		t.Fatalf("empty address should be blank: %+v", addr)
	}
}

func TestProfile_SuppliedCodeAndCard(t *testing.T) {
	f := newFabricator()
	card := f.Card("")
	p := f.Profile("P-supplied-code", &card)
	if p.CustomerCode != "P-supplied-code" {
		t.Fatalf("customer code got %q", p.CustomerCode)
	}
	if len(p.Cards) != 1 || p.Cards[0].Number != card.Number {
		t.Fatalf("profile should embed the supplied card")
	}
	if p.Cards[0].CardID != 1 {
		t.Fatalf("first card position got %d want 1", p.Cards[0].CardID)
	}
	if p.Status != "A" || p.ModifiedDate == "" || p.AccountRef == "" {
		t.Fatalf("profile fields incomplete: %+v", p)
	}
}

func TestProfile_MintsWhenUnspecified(t *testing.T) {
	f := newFabricator()
	p := f.Profile("", nil)
	if !strings.HasPrefix(p.CustomerCode, "P-") {
		t.Fatalf("minted customer code got %q", p.CustomerCode)
	}
	if len(p.Cards) != 1 {
		t.Fatalf("profile card list must never be empty")
	}
	if p.Language != "en" && p.Language != "fr" {
		t.Fatalf("language got %q", p.Language)
	}
}
