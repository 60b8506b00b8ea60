package parser

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyIdentifier      = errors.New("parser: empty identifier")
	ErrUnterminatedString   = errors.New("parser: unterminated string literal")
	ErrInvalidEscape        = errors.New("parser: invalid escape sequence")
	ErrInvalidUnicodeEscape = errors.New("parser: invalid unicode escape")
	ErrGrammarMismatch      = errors.New("parser: grammar mismatch")
)

// SyntaxError reports the rule that failed and the input it could not
// consume. Err is one of the Err* sentinels above.
type SyntaxError struct {
	Rule      string
	Remaining string
	Offset    int
	Err       error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s at offset %d near %q", e.Err, e.Rule, e.Offset, excerpt(e.Remaining))
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// committed reports whether err must abort an alternation instead of
// letting the next branch try. Only string literal errors commit: once an
// opening quote is seen, no other rule can match that input.
func committed(err error) bool {
	return errors.Is(err, ErrUnterminatedString) ||
		errors.Is(err, ErrInvalidEscape) ||
		errors.Is(err, ErrInvalidUnicodeEscape)
}

func mismatch(rule, rest string) error {
	return &SyntaxError{Rule: rule, Remaining: rest, Err: ErrGrammarMismatch}
}

func fail(rule, rest string, kind error) error {
	return &SyntaxError{Rule: rule, Remaining: rest, Err: kind}
}

// withOffset fills Offset relative to the full statement text.
func withOffset(err error, full string) error {
	var se *SyntaxError
	if errors.As(err, &se) {
		se.Offset = len(full) - len(se.Remaining)
	}
	return err
}

func excerpt(s string) string {
	const limit = 24
	r := []rune(s)
	if len(r) > limit {
		return string(r[:limit]) + "..."
	}
	return s
}
