package minilex

import (
	"fmt"
	"io"
	"strconv"

	"github.com/KimNorgaard/minilex/errors"
	"github.com/KimNorgaard/minilex/internal/lexer"
	"github.com/KimNorgaard/minilex/token"
)

// Lex scans src and returns its tokens in source order, terminated by
// exactly one END token.
//
// Scanning stops at the first malformed token. In that case Lex returns a
// nil slice and a *ScanError describing the failure; tokens scanned before
// the failure are discarded.
func Lex(src []byte, opts ...Option) ([]token.Token, error) {
	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	l := lexer.New(src, o.lexerOptions()...)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			return nil, l.Err()
		}
		if o.maxTokens > 0 && len(tokens) == o.maxTokens {
			return nil, &errors.ScanError{
				Kind:   errors.TokenLimit,
				Text:   strconv.Itoa(o.maxTokens),
				Line:   tok.Line,
				Column: tok.Column,
			}
		}
		tokens = append(tokens, tok)
		if tok.Type == token.END {
			return tokens, nil
		}
	}
}

// LexString is like Lex but scans a string.
func LexString(src string, opts ...Option) ([]token.Token, error) {
	return Lex([]byte(src), opts...)
}

// LexReader reads r to completion and scans the result. Read failures are
// returned before any scanning happens.
func LexReader(r io.Reader, opts ...Option) ([]token.Token, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("minilex: reading input: %w", err)
	}
	return Lex(src, opts...)
}
