package token

import (
	"slices"
	"strconv"
)

// Type is the type of a token.
type Type string

// Token represents a lexical token.
//
// Value carries the payload of NUM tokens. Literal is the source text of the
// token and is the payload of IDENT tokens.
type Token struct {
	Type    Type
	Literal string
	Value   int32
	Line    int
	Column  int
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // Never part of a successful stream
	END     Type = "END"     // Marks the end of the token stream

	// Literals
	NUM   Type = "NUM"   // 10311517
	IDENT Type = "IDENT" // variable_name

	// Operators
	PLUS     Type = "+"
	MINUS    Type = "-"
	ASTERISK Type = "*"
	SLASH    Type = "/"
	PERCENT  Type = "%"
	ASSIGN   Type = "="
	LT       Type = "<"
	LTE      Type = "<="
	GT       Type = ">"
	GTE      Type = ">="
	EQ       Type = "=="
	NOT_EQ   Type = "!="

	// Delimiters
	LPAREN    Type = "("
	RPAREN    Type = ")"
	LBRACE    Type = "{"
	RBRACE    Type = "}"
	LBRACK    Type = "["
	RBRACK    Type = "]"
	COMMA     Type = ","
	SEMICOLON Type = ";"

	// Keywords
	IF       Type = "IF"
	WHILE    Type = "WHILE"
	READ     Type = "READ"
	FUNC     Type = "FUNC"
	RETURN   Type = "RETURN"
	INT      Type = "INT"
	PRINT    Type = "PRINT"
	ELSE     Type = "ELSE"
	BREAK    Type = "BREAK"
	CONTINUE Type = "CONTINUE"
)

var keywords = map[string]Type{
	"func":     FUNC,
	"return":   RETURN,
	"int":      INT,
	"print":    PRINT,
	"else":     ELSE,
	"break":    BREAK,
	"continue": CONTINUE,
	"while":    WHILE,
	"if":       IF,
	"read":     READ,
}

// LookupIdent checks the keywords table for an identifier.
// If the identifier is a keyword, it returns the keyword's token type.
// Otherwise, it returns IDENT.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Keywords returns the reserved words in sorted order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

// IsKeyword reports whether t is the type of a reserved word.
func (t Type) IsKeyword() bool {
	for _, k := range keywords {
		if k == t {
			return true
		}
	}
	return false
}

// String renders the token the way the CLI prints it: payload tokens show
// their payload, all other tokens show their type.
func (t Token) String() string {
	switch t.Type {
	case NUM:
		return "NUM(" + strconv.FormatInt(int64(t.Value), 10) + ")"
	case IDENT:
		return "IDENT(" + strconv.Quote(t.Literal) + ")"
	}
	return string(t.Type)
}

// Equal reports whether two tokens have the same type and payload.
// Source positions are ignored.
func (t Token) Equal(o Token) bool {
	if t.Type != o.Type {
		return false
	}
	switch t.Type {
	case NUM:
		return t.Value == o.Value
	case IDENT:
		return t.Literal == o.Literal
	}
	return true
}
