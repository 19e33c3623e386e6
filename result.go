package parsec

// Result is the outcome of applying a parser to an input: either a success
// carrying a value and the unconsumed remainder, or a failure carrying
// neither. Failure is the only error kind a parser can report; it never
// exposes partially consumed input.
type Result[T any] struct {
	value T
	rest  Input
	ok    bool
}

// Success creates a successful result with the given value and remaining
// input.
func Success[T any](v T, rest Input) Result[T] {
	return Result[T]{
		value: v,
		rest:  rest,
		ok:    true,
	}
}

// Failure creates a failed result.
func Failure[T any]() Result[T] {
	return Result[T]{}
}

// Ok reports whether the parser matched.
func (r Result[T]) Ok() bool {
	return r.ok
}

// Value returns the parsed value. It is meaningful only when Ok reports
// true.
func (r Result[T]) Value() T {
	return r.value
}

// Remaining returns the unconsumed suffix of the input after a successful
// parse.
func (r Result[T]) Remaining() Input {
	return r.rest
}
