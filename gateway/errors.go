package gateway

import "fmt"

// RequestError is a malformed request: a missing required field or an
// invalid enumerated value. It is surfaced to the caller in every mode.
type RequestError struct {
	Reason string
}

func (e *RequestError) Error() string {
	return e.Reason
}

// ReferenceError is a reference to state the stores do not hold: an
// unknown card token or customer code, or an out-of-range card position.
// Strict mode surfaces it; lenient mode masks it with fabricated data.
// A record evicted for capacity is indistinguishable from one that
// never existed.
type ReferenceError struct {
	Kind string
	Ref  string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("unknown %s '%s'", e.Kind, e.Ref)
}
