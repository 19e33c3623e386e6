// Package parsec provides parser combinators: small parsers over an input
// symbol sequence that compose into recursive-descent parsers without a
// separate grammar compiler.
//
// A Parser is a pure function from an Input to a Result. Primitive parsers
// (Item, Satisfy, Literal) consume at most one symbol; combinators (Alt,
// Then, Map, Many, Some) build larger parsers out of smaller ones. Choice
// is ordered and deterministic: the first alternative that matches wins,
// and a failed alternative leaves the input untouched.
package parsec

// Parser consumes a prefix of the input and produces a value of type T, or
// fails without consuming anything. Parsers are stateless once constructed;
// the same parser value may be invoked concurrently against different
// inputs.
type Parser[T any] func(Input) Result[T]

// ParseString applies p to the runes of s.
func ParseString[T any](p Parser[T], s string) Result[T] {
	return p(NewInput(s))
}

// Succeed returns a parser that always succeeds with v, consuming nothing.
func Succeed[T any](v T) Parser[T] {
	return func(in Input) Result[T] {
		return Success(v, in)
	}
}

// Fail returns a parser that never matches.
func Fail[T any]() Parser[T] {
	return func(Input) Result[T] {
		return Failure[T]()
	}
}

// Item consumes and returns the next symbol. It fails on empty input.
func Item() Parser[rune] {
	return func(in Input) Result[rune] {
		if in.Empty() {
			return Failure[rune]()
		}
		return Success(in.First(), in.Rest())
	}
}

// Satisfy consumes the next symbol when pred accepts it. On empty input, or
// when pred rejects the symbol, it fails without consuming.
func Satisfy(pred func(rune) bool) Parser[rune] {
	if pred == nil {
		panic("parsec: nil predicate")
	}
	return func(in Input) Result[rune] {
		if in.Empty() {
			return Failure[rune]()
		}
		if r := in.First(); pred(r) {
			return Success(r, in.Rest())
		}
		return Failure[rune]()
	}
}

// Literal matches exactly the symbol r.
func Literal(r rune) Parser[rune] {
	return Satisfy(func(c rune) bool {
		return c == r
	})
}
