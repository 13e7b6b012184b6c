package errors

import "fmt"

// Kind classifies a scan failure.
type Kind int

const (
	// InvalidIdentifier reports a digit run immediately followed by a letter.
	InvalidIdentifier Kind = iota + 1
	// UnrecognizedSymbol reports a character that matches no token rule.
	UnrecognizedSymbol
	// NumeralOverflow reports a digit run outside the signed 32-bit range.
	NumeralOverflow
	// TokenLimit reports a stream longer than the configured maximum.
	TokenLimit
)

func (k Kind) String() string {
	switch k {
	case InvalidIdentifier:
		return "invalid identifier"
	case UnrecognizedSymbol:
		return "unrecognized symbol"
	case NumeralOverflow:
		return "numeral overflow"
	case TokenLimit:
		return "token limit"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ScanError describes the first failure of a scan and where it happened.
// Text is the offending source text: the malformed word, the symbol, the
// digit run, or the configured limit for TokenLimit.
type ScanError struct {
	Kind   Kind
	Text   string
	Line   int
	Column int
}

// Message returns the description of the failure without position.
func (e *ScanError) Message() string {
	switch e.Kind {
	case InvalidIdentifier:
		return "invalid variable name starting with a number at: " + e.Text
	case UnrecognizedSymbol:
		return fmt.Sprintf("unrecognized symbol '%s'", e.Text)
	case NumeralOverflow:
		return fmt.Sprintf("numeral %s out of 32-bit signed range", e.Text)
	case TokenLimit:
		return fmt.Sprintf("token limit of %s exceeded", e.Text)
	}
	return e.Kind.String()
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("minilex: line %d, column %d: %s", e.Line, e.Column, e.Message())
}

// Is matches any *ScanError of the same Kind, so the sentinels below can be
// used with errors.Is.
func (e *ScanError) Is(target error) bool {
	t, ok := target.(*ScanError)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidIdentifier  = &ScanError{Kind: InvalidIdentifier}
	ErrUnrecognizedSymbol = &ScanError{Kind: UnrecognizedSymbol}
	ErrNumeralOverflow    = &ScanError{Kind: NumeralOverflow}
	ErrTokenLimit         = &ScanError{Kind: TokenLimit}
)
