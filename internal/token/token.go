// Package token mints the opaque identifiers handed out by the simulated
// gateway. Tokens look like real processor tokens but carry no secret: a
// kind prefix, a per-process serial, a monotonic counter, a timestamp and
// the trailing four characters of the seed they were minted from,
// e.g. "C-3xQeTAb-0001-15062019-1042-33000123-1234".
package token

import (
	"fmt"
	"sync"
	"time"
)

// paymentIDBase keeps numeric payment ids visibly apart from the counter
// values embedded in string tokens.
const paymentIDBase = 10000000

// Generator issues process-unique identifiers. Uniqueness comes from the
// shared counter, never from the embedded timestamp, so two calls within
// the same microsecond still differ.
type Generator struct {
	serial string
	now    func() time.Time

	mu      sync.Mutex
	counter uint64
}

// NewGenerator builds a Generator whose serial is the base-58 encoding of
// the given start time (epoch seconds). All tokens minted by one process
// share the serial, which tells instances apart in captured traffic.
func NewGenerator(start time.Time) *Generator {
	return &Generator{
		serial: EncodeBase58(uint64(start.Unix())),
		now:    time.Now,
	}
}

// SetClock overrides the wall clock embedded in tokens. Intended for tests;
// the counter still guarantees uniqueness under a frozen clock.
func (g *Generator) SetClock(now func() time.Time) {
	g.now = now
}

// Serial returns the per-process serial component.
func (g *Generator) Serial() string {
	return g.serial
}

// Token mints a string token. prefix discriminates the entity kind
// ("C" card, "P" profile); only the trailing four characters of seed are
// embedded so tokens hint at their source without leaking it.
func (g *Generator) Token(prefix, seed string) string {
	t := g.now().UTC()
	return fmt.Sprintf("%s-%s-%04d-%s%06d-%s",
		prefix, g.serial, g.next(),
		t.Format("02012006-1504-05"), t.Nanosecond()/1000,
		last4(seed))
}

// PaymentID mints a numeric payment id, disjoint from token-string space
// and strictly increasing within the process.
func (g *Generator) PaymentID() int64 {
	return paymentIDBase + int64(g.next())
}

func (g *Generator) next() uint64 {
	g.mu.Lock()
	g.counter++
	n := g.counter
	g.mu.Unlock()
	return n
}

func last4(s string) string {
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}
