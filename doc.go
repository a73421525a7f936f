/*
Package sqlscan tokenizes SQL text.

The lexer understands the usual SQL vocabulary plus the PostgreSQL-flavoured
operators: the :: type cast, the ->, ->>, #> and #>> JSON accessors, the
~, ~*, !~ and !~* regular-expression matches, and $1-style positional
parameters. Keywords are matched case-insensitively against a fixed table of
157 words; every other name becomes an IDENT token.

Whitespace, -- line comments and block comments never produce tokens.
Every token records the line, column and byte offset where it starts, and its
Literal is always the exact source text it was scanned from. INT, FLOAT,
STRING and PARAM tokens also carry a decoded Value.

The simplest entry point is Tokenize:

	tokens, err := sqlscan.Tokenize([]byte("SELECT id FROM users WHERE id = $1"))
	if err != nil {
		// err is an *errors.ScanError naming the kind of failure and where it
		// happened.
	}

With SkipInvalid, Tokenize steps over bad input and reports every failure
at once as an errors.ScanErrors:

	tokens, err := sqlscan.Tokenize(src, sqlscan.SkipInvalid())

Callers that want to pull tokens one at a time, for example a parser, can use
the lexer package directly or wrap it in a Stream for lookahead:

	s := sqlscan.NewStream(lexer.New(src))
	if tok, _ := s.Peek(1); tok.Type == token.TYPECAST {
		// ...
	}
*/
package sqlscan
