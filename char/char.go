// Package char provides rune-level parsers derived from the parsec core:
// character classes, exact strings, identifiers, numerals and
// whitespace-tolerant tokens.
package char

import (
	"github.com/xiam/parsec"
)

// Character-class parsers. Membership is an exact set test; there is no
// case folding.
var (
	Digit    = parsec.Satisfy(isDigit)
	Lower    = parsec.Satisfy(isLower)
	Upper    = parsec.Satisfy(isUpper)
	Alpha    = parsec.Satisfy(isAlpha)
	AlphaNum = parsec.Satisfy(isAlphaNum)
	Space    = parsec.Satisfy(isSpace)
)

// Identifier matches zero or more alphanumeric symbols and yields them as
// one string. It always succeeds; the matched text may be empty.
var Identifier = parsec.Map(parsec.Many(AlphaNum), joinRunes)

// Natural matches one or more digits and yields the numeral text. Use
// Int64 for the numeric value.
var Natural = parsec.Map(parsec.Some(Digit), joinRunes)

// Whitespace consumes any run of whitespace, including none, and discards
// it.
var Whitespace = parsec.Map(parsec.Many(Space), discardRunes)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isAlpha(r rune) bool {
	return isLower(r) || isUpper(r)
}

func isAlphaNum(r rune) bool {
	return isAlpha(r) || isDigit(r)
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func joinRunes(rs []rune) string {
	return string(rs)
}

func discardRunes([]rune) string {
	return ""
}

// Rune matches exactly the symbol r.
func Rune(r rune) parsec.Parser[rune] {
	return parsec.Literal(r)
}

// String matches the runes of s in order and yields s. The match is
// atomic: a mismatch anywhere fails without consuming input. The empty
// string always matches and consumes nothing.
func String(s string) parsec.Parser[string] {
	target := []rune(s)
	return func(in parsec.Input) parsec.Result[string] {
		cur := in
		for _, want := range target {
			if cur.Empty() || cur.First() != want {
				return parsec.Failure[string]()
			}
			cur = cur.Rest()
		}
		return parsec.Success(s, cur)
	}
}
