// Package dice parses and rolls tabletop dice expressions such as "d20+4"
// or "2d6+1d4-1".
package dice

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

const (
	maxCount = 100
	maxSides = 1000
)

var ErrInvalid = errors.New("invalid dice expression")

// Term is one signed component of an expression: NdS dice, or a constant
// when Sides is zero.
type Term struct {
	Negative bool
	Count    int
	Sides    int
}

// Expression is a parsed dice expression with at least one dice term.
type Expression struct {
	Terms []Term
}

// Parse accepts terms joined by + or -, eg. "d20+4". Whitespace is not
// allowed inside the expression.
func Parse(input string) (Expression, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return Expression{}, fmt.Errorf("%w: empty", ErrInvalid)
	}

	var (
		expr     Expression
		hasDice  bool
		negative bool
		start    int
	)
	if s[0] == '-' || s[0] == '+' {
		negative = s[0] == '-'
		start = 1
	}
	for i := start; i <= len(s); i++ {
		if i < len(s) && s[i] != '+' && s[i] != '-' {
			continue
		}

		term, err := parseTerm(s[start:i])
		if err != nil {
			return Expression{}, fmt.Errorf("%w %q: %v", ErrInvalid, input, err)
		}
		term.Negative = negative
		hasDice = hasDice || term.Sides > 0
		expr.Terms = append(expr.Terms, term)

		if i < len(s) {
			negative = s[i] == '-'
		}
		start = i + 1
	}

	if !hasDice {
		return Expression{}, fmt.Errorf("%w %q: no dice", ErrInvalid, input)
	}
	return expr, nil
}

func parseTerm(s string) (Term, error) {
	if s == "" {
		return Term{}, errors.New("empty term")
	}

	countStr, sidesStr, isDice := strings.Cut(s, "d")
	if !isDice {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Term{}, fmt.Errorf("bad constant %q", s)
		}
		return Term{Count: n}, nil
	}

	count := 1
	if countStr != "" {
		n, err := strconv.Atoi(countStr)
		if err != nil || n < 1 || n > maxCount {
			return Term{}, fmt.Errorf("bad dice count %q", countStr)
		}
		count = n
	}
	sides, err := strconv.Atoi(sidesStr)
	if err != nil || sides < 1 || sides > maxSides {
		return Term{}, fmt.Errorf("bad die size %q", sidesStr)
	}
	return Term{Count: count, Sides: sides}, nil
}

// String is the canonical form: lower case, with a count of one omitted.
func (e Expression) String() string {
	var b strings.Builder
	for i, t := range e.Terms {
		writeSign(&b, i, t.Negative)
		switch {
		case t.Sides == 0:
			b.WriteString(strconv.Itoa(t.Count))
		case t.Count == 1:
			fmt.Fprintf(&b, "d%d", t.Sides)
		default:
			fmt.Fprintf(&b, "%dd%d", t.Count, t.Sides)
		}
	}
	return b.String()
}

// Result is a rolled expression.
type Result struct {
	Expression Expression
	Rolls      [][]int // one slice per term; nil for constants
	Total      int
}

func (e Expression) Roll(rng *rand.Rand) Result {
	res := Result{Expression: e, Rolls: make([][]int, len(e.Terms))}
	for i, t := range e.Terms {
		subtotal := t.Count
		if t.Sides > 0 {
			subtotal = 0
			rolls := make([]int, t.Count)
			for j := range rolls {
				rolls[j] = rng.IntN(t.Sides) + 1
				subtotal += rolls[j]
			}
			res.Rolls[i] = rolls
		}
		if t.Negative {
			subtotal = -subtotal
		}
		res.Total += subtotal
	}
	return res
}

// String renders the roll as markdown, eg. "d20+4 = [13]+4 = **17**".
func (r Result) String() string {
	var b strings.Builder
	b.WriteString(r.Expression.String())
	b.WriteString(" = ")
	for i, t := range r.Expression.Terms {
		writeSign(&b, i, t.Negative)
		if r.Rolls[i] == nil {
			b.WriteString(strconv.Itoa(t.Count))
			continue
		}
		parts := make([]string, len(r.Rolls[i]))
		for j, roll := range r.Rolls[i] {
			parts[j] = strconv.Itoa(roll)
		}
		fmt.Fprintf(&b, "[%s]", strings.Join(parts, ", "))
	}
	fmt.Fprintf(&b, " = **%d**", r.Total)
	return b.String()
}

func writeSign(b *strings.Builder, i int, negative bool) {
	switch {
	case negative:
		b.WriteByte('-')
	case i > 0:
		b.WriteByte('+')
	}
}
