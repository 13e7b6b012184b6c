/*
Package minilex converts the source text of a small imperative language into
a stream of classified tokens for a downstream parser.

The language has integer numerals, identifiers, the reserved words

	if while read func return int print else break continue

the operators

	+ - * / % = < <= > >= == !=

the punctuation marks

	( ) { } [ ] , ;

and line comments starting with '#'. Spaces and newlines separate tokens.

Lex scans a whole buffer in one pass and returns either the complete stream,
terminated by a single token.END, or the first error:

	toks, err := minilex.LexString("int x = 10; # counter\nprint(x);")
	if err != nil {
		// handle error
	}
	for _, tok := range toks {
		fmt.Println(tok)
	}

Scanning always takes the longest match: "<=" is one token, "whilex" is an
identifier rather than the keyword "while" followed by "x". A digit run
glued to letters, such as "1abc", is rejected with ErrInvalidIdentifier
instead of being split in two. Numerals must fit in a signed 32-bit integer,
otherwise the scan fails with ErrNumeralOverflow. Any character outside the
grammar, including a '!' not followed by '=', fails with
ErrUnrecognizedSymbol. All failures are reported as a *ScanError carrying
the line and column of the offending text, and no partial stream is ever
returned.

Lex is a pure function of its input and is safe for concurrent use.
*/
package minilex
