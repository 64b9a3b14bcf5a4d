package simlog

import (
	"math"
	"regexp"
	"strconv"
)

// occurrence selects which match of a rule's pattern is authoritative when
// the pattern appears more than once in a log.
type occurrence int

const (
	// firstMatch takes the first occurrence in the text.
	firstMatch occurrence = iota
	// lastMatch takes the last occurrence. ChampSim logs contain periodic
	// progress snapshots followed by a final summary, so for cumulative
	// counters only the last record is the finished-run value.
	lastMatch
)

// Rule is a single named extraction: it binds a metric identifier to one or
// more patterns tried in order, each with a capture group holding the
// numeric field. The first pattern that matches anywhere in the text wins.
type Rule struct {
	Metric   string
	patterns []*regexp.Regexp
	mode     occurrence
}

// floatField is the numeric capture shared by all patterns.
const floatField = `([0-9]*\.?[0-9]+)`

// mpkiPattern matches a cache-level label followed by an MPKI field within
// a bounded window of intervening report text. The window keeps a label
// from pairing with some other level's MPKI half a page later.
func mpkiPattern(level string) *regexp.Regexp {
	return regexp.MustCompile(level + `(?:\s+TOTAL)?[\s\S]{0,200}?MPKI:\s*` + floatField)
}

// DefaultRules extracts the standard ChampSim metric set. The IPC rule
// prefers the "CPU 0" qualified record and falls back to the bare form;
// the L2 rule prefers the "L2C" spelling and falls back to a line-anchored
// "L2".
var DefaultRules = []Rule{
	{
		Metric: MetricIPC,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`CPU\s*0\s+cumulative\s+IPC:\s*` + floatField),
			regexp.MustCompile(`cumulative\s+IPC:\s*` + floatField),
		},
		mode: lastMatch,
	},
	{
		Metric:   MetricL1DMPKI,
		patterns: []*regexp.Regexp{mpkiPattern(`L1D`)},
		mode:     firstMatch,
	},
	{
		Metric: MetricL2MPKI,
		patterns: []*regexp.Regexp{
			mpkiPattern(`L2C`),
			mpkiPattern(`\nL2`),
		},
		mode: firstMatch,
	},
	{
		Metric:   MetricLLCMPKI,
		patterns: []*regexp.Regexp{mpkiPattern(`LLC`)},
		mode:     firstMatch,
	},
}

// Apply runs the rule against raw log text and returns the extracted value,
// or NaN when no pattern matches.
func (r Rule) Apply(text string) float64 {
	for _, p := range r.patterns {
		var m []string
		switch r.mode {
		case lastMatch:
			if all := p.FindAllStringSubmatch(text, -1); len(all) > 0 {
				m = all[len(all)-1]
			}
		default:
			m = p.FindStringSubmatch(text)
		}
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return v
	}
	return math.NaN()
}
