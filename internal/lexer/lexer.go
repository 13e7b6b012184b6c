package lexer

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/KimNorgaard/minilex/errors"
	"github.com/KimNorgaard/minilex/token"
)

// Lexer holds the state for tokenizing source text.
type Lexer struct {
	input        []byte
	position     int // current position in input (points to current char)
	readPosition int // current reading position in input (after current char)
	ch           byte
	line         int
	column       int

	extendedWhitespace bool

	err     *errors.ScanError
	illegal token.Token
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithExtendedWhitespace makes the lexer skip tabs and carriage returns in
// addition to spaces and newlines.
func WithExtendedWhitespace() Option {
	return func(l *Lexer) {
		l.extendedWhitespace = true
	}
}

// New creates and returns a new Lexer.
func New(input []byte, opts ...Option) *Lexer {
	l := &Lexer{input: input, line: 1}
	for _, opt := range opts {
		opt(l)
	}
	l.readChar()
	return l
}

// NextToken scans the input and returns the next token.
//
// At end of input it returns END, and keeps returning END on further calls.
// On malformed input it returns an ILLEGAL token and the failure is reported
// by Err; the lexer does not resynchronize, so every further call returns
// the same ILLEGAL token.
func (l *Lexer) NextToken() token.Token {
	if l.err != nil {
		return l.illegal
	}
	l.skipIgnored()
	tok := token.Token{Line: l.line, Column: l.column}
	if l.atEnd() {
		tok.Type = token.END
		return tok
	}

	switch {
	case isLetter(l.ch):
		tok.Literal = l.readIdentifier()
		tok.Type = token.LookupIdent(tok.Literal)
		return tok
	case isDigit(l.ch):
		return l.readNumber(tok)
	case token.IsOperatorLead(l.ch):
		typ, width, ok := token.LookupOperator(l.ch, l.peekChar())
		if !ok {
			return l.fail(tok, errors.UnrecognizedSymbol, string(l.ch))
		}
		tok.Type = typ
		tok.Literal = string(l.input[l.position : l.position+width])
		for range width {
			l.advance()
		}
		return tok
	}

	typ, ok := token.LookupSymbol(l.ch)
	if !ok {
		return l.fail(tok, errors.UnrecognizedSymbol, l.currentSymbol())
	}
	tok.Type = typ
	tok.Literal = string(l.ch)
	l.advance()
	return tok
}

// Err returns the error that stopped the lexer, or nil.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition // Important for correct slicing at the end
	l.readPosition++
	l.column++
}

func (l *Lexer) advance() {
	if l.ch == '\n' && !l.atEnd() {
		l.line++
		l.column = 0
	}
	l.readChar()
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) skipIgnored() {
	for !l.atEnd() {
		switch {
		case l.isWhitespace(l.ch):
			l.advance()
		case l.ch == '#':
			l.skipComment()
		default:
			return
		}
	}
}

// skipComment discards everything from '#' up to and including the next
// newline. A comment on the last line may end at end of input.
func (l *Lexer) skipComment() {
	for !l.atEnd() && l.ch != '\n' {
		l.advance()
	}
	if !l.atEnd() {
		l.advance() // consume '\n'
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for !l.atEnd() && (isLetter(l.ch) || isDigit(l.ch)) {
		l.advance()
	}
	return string(l.input[position:l.position])
}

func (l *Lexer) readNumber(tok token.Token) token.Token {
	position := l.position
	for !l.atEnd() && isDigit(l.ch) {
		l.advance()
	}
	digits := string(l.input[position:l.position])

	if r, _ := utf8.DecodeRune(l.input[l.position:]); !l.atEnd() && unicode.IsLetter(r) {
		return l.fail(tok, errors.InvalidIdentifier, string(l.input[position:l.wordEnd(l.position)]))
	}

	n, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		return l.fail(tok, errors.NumeralOverflow, digits)
	}
	tok.Type = token.NUM
	tok.Literal = digits
	tok.Value = int32(n)
	return tok
}

// wordEnd returns the end of the run of letters and digits starting at i.
// Letters outside ASCII count, so the whole malformed word is reported.
func (l *Lexer) wordEnd(i int) int {
	for i < len(l.input) {
		r, size := utf8.DecodeRune(l.input[i:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		i += size
	}
	return i
}

// currentSymbol returns the character under the cursor for error reporting,
// decoding a whole UTF-8 sequence where there is one.
func (l *Lexer) currentSymbol() string {
	r, _ := utf8.DecodeRune(l.input[l.position:])
	if r == utf8.RuneError {
		return fmt.Sprintf("\\x%02X", l.ch)
	}
	return string(r)
}

func (l *Lexer) fail(tok token.Token, kind errors.Kind, text string) token.Token {
	l.err = &errors.ScanError{Kind: kind, Text: text, Line: tok.Line, Column: tok.Column}
	tok.Type = token.ILLEGAL
	tok.Literal = text
	l.illegal = tok
	return tok
}

func (l *Lexer) isWhitespace(ch byte) bool {
	if ch == ' ' || ch == '\n' {
		return true
	}
	return l.extendedWhitespace && (ch == '\t' || ch == '\r')
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
