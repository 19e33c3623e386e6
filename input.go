package parsec

// Input is an immutable view into a sequence of input symbols. Consuming a
// symbol yields a new view over the same backing storage; no view is ever
// mutated, so all suffixes of an input can be held at once and a parser may
// safely re-read an input it already handed to another parser.
type Input struct {
	src []rune
	pos int
}

// NewInput creates an input view over the runes of s.
func NewInput(s string) Input {
	return Input{src: []rune(s)}
}

// Len returns the number of unconsumed symbols.
func (in Input) Len() int {
	return len(in.src) - in.pos
}

// Empty reports whether every symbol has been consumed.
func (in Input) Empty() bool {
	return in.pos >= len(in.src)
}

// First returns the next unconsumed symbol. It panics on empty input; check
// Empty first.
func (in Input) First() rune {
	return in.src[in.pos]
}

// Rest returns the view that remains after consuming one symbol. On empty
// input it returns the input unchanged.
func (in Input) Rest() Input {
	if in.Empty() {
		return in
	}
	return Input{src: in.src, pos: in.pos + 1}
}

func (in Input) String() string {
	return string(in.src[in.pos:])
}
