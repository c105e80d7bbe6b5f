// Package rule parses and represents DNA rule strings of the form
// B<digits>/S<digits>|M<float>, the textual encoding of a Life-like
// transition rule plus a per-tick mutation probability.
package rule

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// NeighborSet is a set of neighbor counts encoded as a bitmask. Values are
// plain data: copying a NeighborSet yields an independent set.
type NeighborSet uint16

// NewNeighborSet builds a set from the provided counts.
func NewNeighborSet(counts ...int) NeighborSet {
	var s NeighborSet
	for _, n := range counts {
		s = s.With(n)
	}
	return s
}

// Contains reports whether count n is in the set.
func (s NeighborSet) Contains(n int) bool {
	if n < 0 || n > 9 {
		return false
	}
	return s&(1<<uint(n)) != 0
}

// With returns a copy of the set including n.
func (s NeighborSet) With(n int) NeighborSet {
	if n < 0 || n > 9 {
		return s
	}
	return s | 1<<uint(n)
}

// Without returns a copy of the set excluding n.
func (s NeighborSet) Without(n int) NeighborSet {
	if n < 0 || n > 9 {
		return s
	}
	return s &^ (1 << uint(n))
}

// String renders the set as a run of digits in ascending order.
func (s NeighborSet) String() string {
	var b strings.Builder
	for n := 0; n <= 9; n++ {
		if s.Contains(n) {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// Rule is a parsed DNA string: birth and survival neighbor-count sets plus a
// mutation probability. A Rule is immutable; Mutate returns derived copies
// and never modifies the receiver.
type Rule struct {
	Birth    NeighborSet
	Survive  NeighborSet
	Mutation float64
}

// ParseError reports a DNA string that does not match the grammar.
type ParseError struct {
	Input string
	err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid DNA %q: %v", e.Input, e.err)
}

func (e *ParseError) Unwrap() error { return e.err }

type dnaAST struct {
	Birth    string `parser:"'B' @Digits? '/'"`
	Survive  string `parser:"'S' @Digits? '|'"`
	Mutation string `parser:"'M' @(Float | Digits)"`
}

var dnaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Float", Pattern: `[0-9]*\.[0-9]+`},
	{Name: "Digits", Pattern: `[0-9]+`},
	{Name: "Tag", Pattern: `[BSM]`},
	{Name: "Sep", Pattern: `[/|]`},
})

var dnaParser = participle.MustBuild[dnaAST](participle.Lexer(dnaLexer))

// Parse decodes a DNA string. Failures are reported as *ParseError and leave
// nothing modified; the zero Rule is returned alongside the error.
func Parse(text string) (Rule, error) {
	ast, err := dnaParser.ParseString("", text)
	if err != nil {
		return Rule{}, &ParseError{Input: text, err: err}
	}
	mutation, err := strconv.ParseFloat(ast.Mutation, 64)
	if err != nil {
		return Rule{}, &ParseError{Input: text, err: err}
	}
	return Rule{
		Birth:    digitsToSet(ast.Birth),
		Survive:  digitsToSet(ast.Survive),
		Mutation: mutation,
	}, nil
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(text string) Rule {
	r, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return r
}

func digitsToSet(digits string) NeighborSet {
	var s NeighborSet
	for i := 0; i < len(digits); i++ {
		s = s.With(int(digits[i] - '0'))
	}
	return s
}

// String renders the canonical DNA text for the rule.
func (r Rule) String() string {
	return "B" + r.Birth.String() + "/S" + r.Survive.String() + "|M" +
		strconv.FormatFloat(r.Mutation, 'g', -1, 64)
}

// Mutate derives this tick's rule variant. Each set independently has
// probability Mutation of one change: add or remove (chosen uniformly) a
// neighbor count drawn uniformly from [0,8]. Adding a present value and
// removing an absent one are no-ops. Rates above 1 always mutate.
func (r Rule) Mutate(rng *rand.Rand) (birth, survive NeighborSet) {
	return mutateSet(r.Birth, r.Mutation, rng), mutateSet(r.Survive, r.Mutation, rng)
}

func mutateSet(s NeighborSet, rate float64, rng *rand.Rand) NeighborSet {
	if rng.Float64() >= rate {
		return s
	}
	add := rng.IntN(2) == 0
	n := rng.IntN(9)
	if add {
		return s.With(n)
	}
	return s.Without(n)
}
