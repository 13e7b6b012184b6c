package minilex

import (
	"fmt"

	"github.com/KimNorgaard/minilex/internal/lexer"
)

// Option configures a call to Lex.
type Option func(*options) error

type options struct {
	maxTokens          int // 0 means unlimited
	extendedWhitespace bool
}

// MaxTokens returns an Option that bounds the number of tokens a scan may
// produce, counting the final END token. Scanning input that would produce
// more tokens fails with ErrTokenLimit.
//
// The limit n must be a positive integer.
func MaxTokens(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("minilex: max tokens must be a positive integer")
		}
		o.maxTokens = n
		return nil
	}
}

// ExtendedWhitespace returns an Option that makes the scanner skip tabs and
// carriage returns as well as spaces and newlines. Without it, a tab or a
// carriage return is an unrecognized symbol.
func ExtendedWhitespace() Option {
	return func(o *options) error {
		o.extendedWhitespace = true
		return nil
	}
}

func (o *options) lexerOptions() []lexer.Option {
	var opts []lexer.Option
	if o.extendedWhitespace {
		opts = append(opts, lexer.WithExtendedWhitespace())
	}
	return opts
}
