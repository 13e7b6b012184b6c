package minilex

import "github.com/KimNorgaard/minilex/errors"

// A ScanError describes the failure that stopped a scan and where in the
// source it happened.
type ScanError = errors.ScanError

// Sentinel errors for use with errors.Is. Each matches any ScanError of the
// same kind.
var (
	ErrInvalidIdentifier  = errors.ErrInvalidIdentifier
	ErrUnrecognizedSymbol = errors.ErrUnrecognizedSymbol
	ErrNumeralOverflow    = errors.ErrNumeralOverflow
	ErrTokenLimit         = errors.ErrTokenLimit
)
