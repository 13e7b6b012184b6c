package minilex

import (
	"bufio"
	"io"

	"github.com/KimNorgaard/minilex/token"
)

// Print writes tokens to w, one per line, in the form produced by
// token.Token.String.
func Print(w io.Writer, tokens []token.Token) error {
	bw := bufio.NewWriter(w)
	for _, tok := range tokens {
		if _, err := bw.WriteString(tok.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
