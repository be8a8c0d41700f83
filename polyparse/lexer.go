package polyparse

import (
	"strconv"
	"strings"

	"github.com/imath-go/imath/algebra"
)

type tokenType int

const (
	tokInteger tokenType = iota
	tokIndeterminate
	tokOperator
	tokExponent
	tokSubexpr
	tokEOF
)

type token struct {
	typ   tokenType
	text  string
	value int64
	pos   int
}

// lex splits the expression into tokens. A parenthesized run is emitted as a
// single subexpression token with the parentheses stripped; subexpressions do
// not nest. The terminating token is always tokEOF.
func lex(expression, indeterminate, rootSymbol string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(expression) {
		c := expression[i]
		switch {
		case c == ' ' || c == '\t':
			i++

		case c == '+' || c == '-':
			tokens = append(tokens, token{typ: tokOperator, text: string(c), pos: i})
			i++

		case c == '^':
			tokens = append(tokens, token{typ: tokExponent, text: "^", pos: i})
			i++

		case c == '(':
			end := strings.IndexByte(expression[i:], ')')
			if end <= 1 {
				return nil, algebra.Errorf("unterminated subexpression at offset %d", i)
			}
			if rootSymbol == "" {
				return nil, algebra.Errorf("unexpected subexpression at offset %d", i)
			}
			tokens = append(tokens, token{typ: tokSubexpr, text: expression[i+1 : i+end], pos: i})
			i += end + 1

		case c >= '0' && c <= '9':
			j := i + 1
			for j < len(expression) && expression[j] >= '0' && expression[j] <= '9' {
				j++
			}
			// a leading zero is only valid as the literal zero
			if c == '0' && j > i+1 {
				return nil, algebra.Errorf("invalid integer at offset %d: leading zero", i)
			}
			n, err := strconv.ParseInt(expression[i:j], 10, 64)
			if err != nil {
				return nil, algebra.Errorf("invalid integer at offset %d: %s", i, err)
			}
			tokens = append(tokens, token{typ: tokInteger, text: expression[i:j], value: n, pos: i})
			i = j

		case indeterminate != "" && strings.HasPrefix(expression[i:], indeterminate):
			tokens = append(tokens, token{typ: tokIndeterminate, text: indeterminate, pos: i})
			i += len(indeterminate)

		default:
			return nil, algebra.Errorf("unexpected character %q at offset %d", string(c), i)
		}
	}
	tokens = append(tokens, token{typ: tokEOF, text: "", pos: len(expression)})
	return tokens, nil
}
