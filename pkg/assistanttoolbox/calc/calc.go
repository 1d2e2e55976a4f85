// Package calc provides a sandboxed calculator tool. It evaluates arithmetic
// expressions built from numeric literals, the four basic operators, unary
// minus, and parentheses — nothing else. The evaluator is a small dedicated
// parser; expression input is untrusted and must never reach a general
// execution facility.
package calc

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hearthlab/hearth/pkg/tools/toolbox"
)

// ErrDivisionByZero is returned when an expression divides by zero.
var ErrDivisionByZero = errors.New("calc: division by zero")

// Tools returns a ToolBox containing the calculator tool.
func Tools() *toolbox.ToolBox {
	tb := toolbox.New()
	tb.Register(toolbox.Tool{
		Name:        "calculate",
		Description: "Evaluate a mathematical expression",
		Handler:     calculate,
	})

	return tb
}

func calculate(_ context.Context, expression string) (string, error) {
	result, err := Eval(expression)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Result: %s", strconv.FormatFloat(result, 'f', -1, 64)), nil
}

// Eval evaluates a restricted arithmetic expression and returns its value.
// Any character outside digits, '.', the four operators, parentheses, and
// whitespace is a syntax error.
func Eval(expression string) (float64, error) {
	p := &parser{input: expression}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}

	p.skipSpace()
	if p.pos < len(p.input) {
		return 0, fmt.Errorf("calc: unexpected character %q at position %d", p.input[p.pos], p.pos)
	}

	return v, nil
}

// parser is a recursive-descent evaluator with the usual precedence:
// expr := term (('+'|'-') term)*
// term := factor (('*'|'/') factor)*
// factor := number | '-' factor | '(' expr ')'
type parser struct {
	input string
	pos   int
}

func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for {
		p.skipSpace()
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += rhs
		case '-':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseFactor()
	if err != nil {
		return 0, err
	}

	for {
		p.skipSpace()
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case '/':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, ErrDivisionByZero
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseFactor() (float64, error) {
	p.skipSpace()

	switch c := p.peek(); {
	case c == '-':
		p.pos++
		v, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return -v, nil

	case c == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return 0, errors.New("calc: missing closing parenthesis")
		}
		p.pos++
		return v, nil

	case c >= '0' && c <= '9', c == '.':
		return p.parseNumber()

	case c == 0:
		return 0, errors.New("calc: unexpected end of expression")

	default:
		return 0, fmt.Errorf("calc: unexpected character %q at position %d", c, p.pos)
	}
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		p.pos++
	}

	lit := p.input[start:p.pos]
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, fmt.Errorf("calc: invalid number %q", lit)
	}

	return v, nil
}

func (p *parser) skipSpace() {
	p.pos += len(p.input[p.pos:]) - len(strings.TrimLeft(p.input[p.pos:], " \t"))
}

// peek returns the next byte without consuming it, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}
