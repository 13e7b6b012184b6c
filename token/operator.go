package token

// operator is one row of the lookahead table. A lead character produces
// double when the next character is follow, and single otherwise. An empty
// single means the lead character is not a token on its own.
type operator struct {
	lead   byte
	single Type
	follow byte
	double Type
}

var operators = [...]operator{
	{'<', LT, '=', LTE},
	{'>', GT, '=', GTE},
	{'=', ASSIGN, '=', EQ},
	{'!', "", '=', NOT_EQ},
}

var symbols = map[byte]Type{
	'+': PLUS,
	'-': MINUS,
	'*': ASTERISK,
	'/': SLASH,
	'%': PERCENT,
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
	'[': LBRACK,
	']': RBRACK,
	',': COMMA,
	';': SEMICOLON,
}

// IsOperatorLead reports whether ch starts an operator that needs one
// character of lookahead.
func IsOperatorLead(ch byte) bool {
	for _, op := range operators {
		if op.lead == ch {
			return true
		}
	}
	return false
}

// LookupOperator resolves a lookahead operator. next is the character after
// lead, or 0 at end of input. The longer match wins. It returns the token
// type and how many characters it spans; ok is false when lead is not an
// operator lead or when lead has no single-character form and next does not
// complete it.
func LookupOperator(lead, next byte) (typ Type, width int, ok bool) {
	for _, op := range operators {
		if op.lead != lead {
			continue
		}
		if next == op.follow {
			return op.double, 2, true
		}
		if op.single == "" {
			return ILLEGAL, 0, false
		}
		return op.single, 1, true
	}
	return ILLEGAL, 0, false
}

// LookupSymbol resolves a single-character operator or punctuation mark.
func LookupSymbol(ch byte) (Type, bool) {
	typ, ok := symbols[ch]
	return typ, ok
}
