package raffle

import "errors"

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind/RuleID rather than matching error strings.
// Error() strings are kept human-readable and may evolve.
type Kind string

const (
	KindParse Kind = "Parse"
)

// Error is the library's structured error type for recoverable failures.
//
// RuleID is a stable identifier (e.g., RAFFLE-STR-001) that names the
// violated structural rule. Message is intended for humans; do not match
// on it.
//
// Internal invariant violations are deliberately not represented as
// errors: they panic. See Vouch and DeriveParameters.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
