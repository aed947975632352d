// Package probability holds Lumina's fixed table of probability names.
// Each name evaluates to a fresh random boolean at use time, drawn against
// the name's fixed percentage: TRUE is 1.00, FALSE is 0.00, MAYBE is 0.50.
package probability

import (
	"math/rand"

	"github.com/lumina-lang/lumina/pkg/ident"
)

// Entry is one row of the probability table: a name and the percentage (as
// a fraction in [0,1]) it draws true with.
type Entry struct {
	Name string
	P    float64
}

// band names a contiguous run of percentages with one adjective; the exact
// percentage within the band is appended to keep every one of the 101
// entries unique, the way the reference table disambiguates by number.
type band struct {
	lo, hi int
	name   string
}

var bands = []band{
	{96, 99, "NEARCERTAIN"},
	{86, 95, "VERYLIKELY"},
	{76, 85, "HIGHLYLIKELY"},
	{66, 75, "QUITELIKELY"},
	{56, 65, "LIKELY"},
	{51, 55, "SLIGHTLYLIKELY"},
	{45, 49, "SLIGHTLYUNLIKELY"},
	{35, 44, "UNLIKELY"},
	{25, 34, "QUITEUNLIKELY"},
	{15, 24, "HIGHLYUNLIKELY"},
	{5, 14, "VERYUNLIKELY"},
	{1, 4, "NEARIMPOSSIBLE"},
}

// overrides gives a small set of round or notable percentages a clean,
// memorable name instead of the banded fallback. BARELYLIKELY and
// PROBABLYNOT are, per the Lumina reference, each attested at two distinct
// percentages in the source table; here each is pinned to one canonical
// percentage (documented in DESIGN.md) since a name must resolve to exactly
// one probability.
var overrides = map[int]string{
	100: "TRUE",
	99:  "ALMOSTCERTAIN",
	90:  "PROBABLY",
	75:  "FAIRLYLIKELY",
	60:  "SOMEWHATLIKELY",
	50:  "MAYBE",
	40:  "SOMEWHATUNLIKELY",
	25:  "PROBABLYNOT",
	10:  "FAIRLYUNLIKELY",
	5:   "BARELYLIKELY",
	1:   "ALMOSTNEVER",
	0:   "FALSE",
}

func nameFor(p int) string {
	if name, ok := overrides[p]; ok {
		return name
	}
	for _, b := range bands {
		if p >= b.lo && p <= b.hi {
			return percentSuffixed(b.name, p)
		}
	}
	// Every integer 0..100 is covered by overrides or a band; this is
	// unreachable but kept for completeness.
	return percentSuffixed("UNNAMED", p)
}

func percentSuffixed(base string, p int) string {
	return base + itoa(p)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := [3]byte{}
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits[i:])
}

// Table is the fixed 101-entry probability table, ordered from TRUE (1.00)
// down to FALSE (0.00).
var Table []Entry

func init() {
	Table = make([]Entry, 0, 101)
	for p := 100; p >= 0; p-- {
		Table = append(Table, Entry{Name: nameFor(p), P: float64(p) / 100.0})
	}
}

// Lookup resolves name against the table case-insensitively, returning its
// probability and whether it matched.
func Lookup(name string) (float64, bool) {
	for _, e := range Table {
		if ident.Equal(e.Name, name) {
			return e.P, true
		}
	}
	return 0, false
}

// Draw evaluates a probability-name use: a fresh uniform draw compared
// against p. Called once per reference, never cached.
func Draw(p float64, rng *rand.Rand) bool {
	if rng != nil {
		return rng.Float64() < p
	}
	return rand.Float64() < p
}
