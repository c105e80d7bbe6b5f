package rule

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"lifecode/internal/core"
)

var parseTests = []struct {
	testName    string
	dna         string
	birth       NeighborSet
	survive     NeighborSet
	mutation    float64
	expectError bool
}{{
	testName: "conway-with-mutation",
	dna:      "B3/S23|M0.01",
	birth:    NewNeighborSet(3),
	survive:  NewNeighborSet(2, 3),
	mutation: 0.01,
}, {
	testName: "empty-sets",
	dna:      "B/S|M0",
	mutation: 0,
}, {
	testName: "integer-mutation-above-one",
	dna:      "B36/S23|M2",
	birth:    NewNeighborSet(3, 6),
	survive:  NewNeighborSet(2, 3),
	mutation: 2,
}, {
	testName: "leading-dot-mutation",
	dna:      "B3/S23|M.5",
	birth:    NewNeighborSet(3),
	survive:  NewNeighborSet(2, 3),
	mutation: 0.5,
}, {
	testName:    "missing-separators",
	dna:         "B3S23M0.01",
	expectError: true,
}, {
	testName:    "non-digit-birth",
	dna:         "Bx/S23|M0.01",
	expectError: true,
}, {
	testName:    "non-numeric-mutation",
	dna:         "B3/S23|Mx",
	expectError: true,
}, {
	testName:    "missing-mutation-term",
	dna:         "B3/S23",
	expectError: true,
}, {
	testName:    "empty-input",
	dna:         "",
	expectError: true,
}}

func TestParse(t *testing.T) {
	c := qt.New(t)
	for _, test := range parseTests {
		c.Run(test.testName, func(c *qt.C) {
			r, err := Parse(test.dna)
			if test.expectError {
				c.Assert(err, qt.ErrorMatches, `invalid DNA .*`)
				c.Assert(err, qt.ErrorAs, new(*ParseError))
				return
			}
			c.Assert(err, qt.IsNil)
			c.Assert(r.Birth, qt.Equals, test.birth)
			c.Assert(r.Survive, qt.Equals, test.survive)
			c.Assert(r.Mutation, qt.Equals, test.mutation)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	c := qt.New(t)
	for _, dna := range []string{"B3/S23|M0.01", "B/S|M0", "B012345678/S8|M1"} {
		r, err := Parse(dna)
		c.Assert(err, qt.IsNil)
		again, err := Parse(r.String())
		c.Assert(err, qt.IsNil)
		c.Assert(again, qt.Equals, r)
	}
}

func TestMutateZeroRateIsIdentity(t *testing.T) {
	c := qt.New(t)
	r := MustParse("B3/S23|M0")
	rng := core.NewRand(1)
	for i := 0; i < 100; i++ {
		birth, survive := r.Mutate(rng)
		c.Assert(birth, qt.Equals, r.Birth)
		c.Assert(survive, qt.Equals, r.Survive)
	}
}

func TestMutateNeverModifiesReceiver(t *testing.T) {
	c := qt.New(t)
	r := MustParse("B3/S23|M1")
	rng := core.NewRand(7)
	for i := 0; i < 200; i++ {
		r.Mutate(rng)
	}
	c.Assert(r.String(), qt.Equals, "B3/S23|M1")
}

func TestMutateChangesAtMostOneValuePerSet(t *testing.T) {
	c := qt.New(t)
	r := MustParse("B3/S23|M1")
	rng := core.NewRand(11)
	for i := 0; i < 200; i++ {
		birth, survive := r.Mutate(rng)
		c.Assert(countDiff(birth, r.Birth) <= 1, qt.IsTrue)
		c.Assert(countDiff(survive, r.Survive) <= 1, qt.IsTrue)
		for n := 0; n <= 9; n++ {
			if birth.Contains(n) || survive.Contains(n) {
				c.Assert(n <= 8, qt.IsTrue)
			}
		}
	}
}

func countDiff(a, b NeighborSet) int {
	diff := 0
	for n := 0; n <= 9; n++ {
		if a.Contains(n) != b.Contains(n) {
			diff++
		}
	}
	return diff
}
