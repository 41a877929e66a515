package regex

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedGroup is returned for a '(' without a matching ')'.
	ErrUnterminatedGroup = errors.New("unterminated group")
	// ErrUnterminatedRange is returned for a '[' without a matching ']'.
	ErrUnterminatedRange = errors.New("unterminated range")
	// ErrInvalidValue is returned when a literal or range was expected but
	// something else (or the end of the pattern) was found.
	ErrInvalidValue = errors.New("invalid value")
	// ErrTooDeep is returned when groups are nested deeper than the configured
	// maximum.
	ErrTooDeep = errors.New("pattern nested too deeply")
)

// ParseError describes why and where a pattern failed to compile.
// Kind is one of the Err* sentinels and is what errors.Is matches against.
type ParseError struct {
	Kind    error
	Pos     int
	Pattern string
	reason  string
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("parser error at %d: %s", p.Pos, p.reason)
}

func (p *ParseError) Unwrap() error {
	return p.Kind
}

func newParserError(kind error, re string, i int, str string) *ParseError {
	return &ParseError{
		Kind:    kind,
		Pos:     i,
		Pattern: re,
		reason:  str,
	}
}
