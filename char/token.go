package char

import (
	"strconv"

	"github.com/xiam/parsec"
)

// Token wraps p so that whitespace around it is consumed and discarded,
// keeping only p's value. It is the building block for lexical-level
// parsers inside a larger grammar.
func Token[T any](p parsec.Parser[T]) parsec.Parser[T] {
	return parsec.Between(Whitespace, p, Whitespace)
}

// Symbol is a whitespace-tolerant exact-text match, the usual parser for
// keywords and punctuation.
func Symbol(s string) parsec.Parser[string] {
	return Token(String(s))
}

// Int64 matches a natural numeral and yields its value. A numeral too
// large for int64 does not match.
var Int64 parsec.Parser[int64] = func(in parsec.Input) parsec.Result[int64] {
	r := Natural(in)
	if !r.Ok() {
		return parsec.Failure[int64]()
	}
	n, err := strconv.ParseInt(r.Value(), 10, 64)
	if err != nil {
		return parsec.Failure[int64]()
	}
	return parsec.Success(n, r.Remaining())
}
