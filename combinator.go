package parsec

import (
	"sync"
)

// Pair holds the two values produced by Then, in parse order.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// Alt tries each parser in order against the same input and returns the
// first successful result. Once an alternative matches, later ones are
// never invoked; when every alternative fails, Alt fails. Argument order is
// the precedence order.
func Alt[T any](parsers ...Parser[T]) Parser[T] {
	requireParsers(parsers)
	return func(in Input) Result[T] {
		for _, p := range parsers {
			if r := p(in); r.Ok() {
				return r
			}
		}
		return Failure[T]()
	}
}

// Then runs p1, then p2 on what p1 left behind, pairing both values. When
// either side fails the sequence fails as a whole: no consumption by p1
// leaks out through a failed sequence.
func Then[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Pair[A, B]] {
	requireParser(p1)
	requireParser(p2)
	return func(in Input) Result[Pair[A, B]] {
		r1 := p1(in)
		if !r1.Ok() {
			return Failure[Pair[A, B]]()
		}
		r2 := p2(r1.Remaining())
		if !r2.Ok() {
			return Failure[Pair[A, B]]()
		}
		return Success(Pair[A, B]{r1.Value(), r2.Value()}, r2.Remaining())
	}
}

// Map transforms the value of a successful parse with f; failure passes
// through untouched. f is called at most once per invocation and never on
// failure; it must be pure.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	requireParser(p)
	if f == nil {
		panic("parsec: nil function")
	}
	return func(in Input) Result[U] {
		r := p(in)
		if !r.Ok() {
			return Failure[U]()
		}
		return Success(f(r.Value()), r.Remaining())
	}
}

// Many applies p repeatedly until it fails, collecting the results in
// order. Many always succeeds: zero repetitions yield an empty slice with
// the input untouched, and the attempt that fails consumes nothing. A
// repetition that succeeds without consuming input ends the loop, so Many
// terminates for every parser.
func Many[T any](p Parser[T]) Parser[[]T] {
	requireParser(p)
	return func(in Input) Result[[]T] {
		var values []T
		cur := in
		for {
			r := p(cur)
			if !r.Ok() || r.Remaining().Len() >= cur.Len() {
				return Success(values, cur)
			}
			values = append(values, r.Value())
			cur = r.Remaining()
		}
	}
}

// Some applies p at least once, then as many more times as it keeps
// matching. It fails exactly when p fails immediately.
func Some[T any](p Parser[T]) Parser[[]T] {
	return Map(Then(p, Many(p)), func(pr Pair[T, []T]) []T {
		return append([]T{pr.Left}, pr.Right...)
	})
}

// Optional parses what p parses, or nothing, succeeding either way.
func Optional[T any](p Parser[T]) Parser[T] {
	var zero T
	return Alt(p, Succeed(zero))
}

// Between runs open, body and close in sequence and keeps only the body's
// value.
func Between[L, T, R any](open Parser[L], body Parser[T], close Parser[R]) Parser[T] {
	return Map(Then(Then(open, body), close), func(pr Pair[Pair[L, T], R]) T {
		return pr.Left.Right
	})
}

// SepBy parses zero or more items separated by sep, keeping the item
// values. A trailing separator is not consumed.
func SepBy[T, S any](item Parser[T], sep Parser[S]) Parser[[]T] {
	tail := Many(Map(Then(sep, item), func(pr Pair[S, T]) T {
		return pr.Right
	}))
	some := Map(Then(item, tail), func(pr Pair[T, []T]) []T {
		return append([]T{pr.Left}, pr.Right...)
	})
	return Alt(some, Succeed[[]T](nil))
}

// Lazy defers the construction of a parser until its first invocation,
// allowing a grammar rule to refer to itself:
//
//	var digits parsec.Parser[[]rune]
//	digits = parsec.Lazy(func() parsec.Parser[[]rune] { ... digits ... })
//
// build runs exactly once, even under concurrent first use, and must be
// pure.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	if build == nil {
		panic("parsec: nil function")
	}
	var once sync.Once
	var p Parser[T]
	return func(in Input) Result[T] {
		once.Do(func() {
			p = build()
			requireParser(p)
		})
		return p(in)
	}
}

// Ref is a forward reference to a parser, for rules that are mutually
// recursive: declare the Ref, compose Ref.Parser into other rules, then Set
// the rule body once it exists. A Ref is set once during grammar
// construction and never mutated afterwards.
type Ref[T any] struct {
	p Parser[T]
}

// Set installs the referenced parser. It must be called exactly once,
// before the first invocation.
func (r *Ref[T]) Set(p Parser[T]) {
	requireParser(p)
	if r.p != nil {
		panic("parsec: Ref already set")
	}
	r.p = p
}

// Parser returns a parser that calls through to the referenced rule at
// invocation time.
func (r *Ref[T]) Parser() Parser[T] {
	return func(in Input) Result[T] {
		if r.p == nil {
			panic("parsec: Ref invoked before Set")
		}
		return r.p(in)
	}
}

func requireParser[T any](p Parser[T]) {
	if p == nil {
		panic("parsec: nil parser")
	}
}

func requireParsers[T any](parsers []Parser[T]) {
	for _, p := range parsers {
		requireParser(p)
	}
}
