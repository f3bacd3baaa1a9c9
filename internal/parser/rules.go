package parser

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// DistancePattern maps a regular expression over event names to a normalized
// distance token. Patterns are tried in declaration order and the first match
// wins, so more specific patterns (Half Marathon) must be declared before the
// generic ones (Marathon) they would otherwise shadow.
type DistancePattern struct {
	re       *regexp.Regexp
	Distance string
}

// NewDistancePattern compiles a case-insensitive distance pattern.
func NewDistancePattern(expr, distance string) (DistancePattern, error) {
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return DistancePattern{}, fmt.Errorf("compiling distance pattern %q: %w", expr, err)
	}
	return DistancePattern{re: re, Distance: distance}, nil
}

// Rules holds the immutable reference data the parser extracts against: the
// month table for header/date resolution, the state set for location
// derivation, and the ordered distance-pattern table. Each parser instance
// owns its own Rules so concurrent extraction passes (e.g. in tests) cannot
// interfere.
type Rules struct {
	Months    map[string]string
	States    map[string]bool
	Distances []DistancePattern
}

// defaultStates lists the Malaysian states and federal territories recognized
// in location strings.
var defaultStates = []string{
	"Johor", "Kedah", "Kelantan", "Melaka", "Negeri Sembilan",
	"Pahang", "Penang", "Perak", "Perlis", "Sabah", "Sarawak",
	"Selangor", "Terengganu", "Kuala Lumpur", "Labuan", "Putrajaya",
}

// defaultDistances is the ordered distance-pattern table. Order is a
// correctness contract: the 21km entry must precede the 42km entry so that
// "Half Marathon" is never claimed by the bare "Marathon" alternative.
var defaultDistances = []struct {
	expr     string
	distance string
}{
	{`\b(5K|5KM)\b`, "5km"},
	{`\b(10K|10KM)\b`, "10km"},
	{`\b(21K|21KM|Half Marathon|HM)\b`, "21km"},
	{`\b(42K|42KM|42\.195KM|Marathon)\b`, "42km"},
	{`\bUltra\b`, "50km+"},
	{`\b(50K|50KM)\b`, "50km"},
	{`\b(100K|100KM)\b`, "100km"},
}

// DefaultRules returns the built-in extraction rules for the Malaysian
// running-event listing.
func DefaultRules() *Rules {
	rules := &Rules{
		Months: map[string]string{
			"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04",
			"May": "05", "Jun": "06", "Jul": "07", "Aug": "08",
			"Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
		},
		States:    make(map[string]bool, len(defaultStates)),
		Distances: make([]DistancePattern, 0, len(defaultDistances)),
	}

	for _, s := range defaultStates {
		rules.States[s] = true
	}
	for _, d := range defaultDistances {
		// Built-in patterns are known-good
		p, _ := NewDistancePattern(d.expr, d.distance)
		rules.Distances = append(rules.Distances, p)
	}

	return rules
}

// rulesFile is the YAML schema for rule overrides. Omitted sections keep
// their defaults. The month table is not overridable.
type rulesFile struct {
	States    []string `yaml:"states"`
	Distances []struct {
		Pattern  string `yaml:"pattern"`
		Distance string `yaml:"distance"`
	} `yaml:"distances"`
}

// LoadRules reads rule overrides from a YAML file and merges them over the
// defaults. Distance patterns in the file replace the whole default table,
// preserving file order.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}

	rules := DefaultRules()

	if len(rf.States) > 0 {
		rules.States = make(map[string]bool, len(rf.States))
		for _, s := range rf.States {
			rules.States[s] = true
		}
	}

	if len(rf.Distances) > 0 {
		rules.Distances = make([]DistancePattern, 0, len(rf.Distances))
		for _, d := range rf.Distances {
			p, err := NewDistancePattern(d.Pattern, d.Distance)
			if err != nil {
				return nil, err
			}
			rules.Distances = append(rules.Distances, p)
		}
	}

	return rules, nil
}
