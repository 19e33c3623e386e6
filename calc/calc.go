// Package calc evaluates integer arithmetic expressions. It is built
// entirely out of parsec and char combinators and serves as the reference
// grammar for the library:
//
//	expr   = term (("+" | "-") term)*
//	term   = factor (("*" | "/") factor)*
//	factor = natural | "(" expr ")"
//
// "*" and "/" bind tighter than "+" and "-"; operators of equal precedence
// associate to the left; parentheses override.
package calc

import (
	"errors"
	"fmt"

	"github.com/xiam/parsec"
	"github.com/xiam/parsec/char"
)

var (
	ErrSyntax         = errors.New("syntax error")
	ErrDivisionByZero = errors.New("division by zero")
)

// node is a parsed expression: a literal, or a binary operation over two
// subexpressions.
type node struct {
	op    rune // 0 for literals
	lit   int64
	left  *node
	right *node
}

func literal(n int64) *node {
	return &node{lit: n}
}

func binary(op rune, left, right *node) *node {
	return &node{
		op:    op,
		left:  left,
		right: right,
	}
}

func (n *node) eval() (int64, error) {
	if n.op == 0 {
		return n.lit, nil
	}

	left, err := n.left.eval()
	if err != nil {
		return 0, err
	}
	right, err := n.right.eval()
	if err != nil {
		return 0, err
	}

	switch n.op {
	case '+':
		return left + right, nil
	case '-':
		return left - right, nil
	case '*':
		return left * right, nil
	case '/':
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	}

	return 0, fmt.Errorf("unknown operator %q", n.op)
}

var expr = newGrammar()

func newGrammar() parsec.Parser[*node] {
	var ref parsec.Ref[*node]

	number := parsec.Map(char.Token(char.Int64), literal)
	factor := parsec.Alt(
		number,
		parsec.Between(char.Symbol("("), ref.Parser(), char.Symbol(")")),
	)
	term := infixLevel(factor, '*', '/')
	sum := infixLevel(term, '+', '-')

	ref.Set(sum)
	return sum
}

// infixLevel builds one precedence level: an operand followed by any number
// of (operator, operand) tails, folded left to right.
func infixLevel(operand parsec.Parser[*node], ops ...rune) parsec.Parser[*node] {
	tail := parsec.Many(parsec.Then(anyOf(ops), operand))

	return parsec.Map(parsec.Then(operand, tail), func(pr parsec.Pair[*node, []parsec.Pair[rune, *node]]) *node {
		n := pr.Left
		for _, t := range pr.Right {
			n = binary(t.Left, n, t.Right)
		}
		return n
	})
}

func anyOf(ops []rune) parsec.Parser[rune] {
	alternatives := make([]parsec.Parser[rune], len(ops))
	for i, op := range ops {
		op := op
		alternatives[i] = parsec.Map(char.Symbol(string(op)), func(string) rune {
			return op
		})
	}
	return parsec.Alt(alternatives...)
}

// Eval parses and evaluates an arithmetic expression. The whole input must
// be consumed; anything left over is a syntax error.
func Eval(s string) (int64, error) {
	r := parsec.ParseString(expr, s)
	if !r.Ok() {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if !r.Remaining().Empty() {
		return 0, fmt.Errorf("%w: unexpected %q", ErrSyntax, r.Remaining().String())
	}
	return r.Value().eval()
}
