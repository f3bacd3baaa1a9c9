package parser

import (
	"regexp"
	"strings"
)

// Entry text ends with "(Location)" optionally followed by a decorative star.
// Both patterns anchor to the end of the string so a parenthesis earlier in
// the name cannot match.
var (
	locationPattern   = regexp.MustCompile(`\(([^)]+)\)\s*(?:⭐)?$`)
	nameSuffixPattern = regexp.MustCompile(`\s*\([^)]+\)\s*(?:⭐)?$`)
)

// ExtractLocation returns the contents of the trailing parenthesized group in
// text, or an empty string if there is none.
func ExtractLocation(text string) string {
	if m := locationPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtractEventName returns text with the trailing "(Location)" group and any
// decorative star removed. It is the exact complement of ExtractLocation:
// the removed suffix is the same span ExtractLocation matches.
func ExtractEventName(text string) string {
	return strings.TrimSpace(nameSuffixPattern.ReplaceAllString(text, ""))
}

// ExtractState derives a state from a comma-separated location string.
// "City, State" and "Venue, City, State" both resolve to the last part that
// is a known state; a bare single-token location never yields a state.
func (r *Rules) ExtractState(location string) string {
	if location == "" {
		return ""
	}

	parts := strings.Split(location, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) < 2 {
		return ""
	}
	if r.States[parts[len(parts)-1]] {
		return parts[len(parts)-1]
	}
	// "Venue, Kuala Lumpur, Malaysia" style: state sits second-to-last
	if r.States[parts[len(parts)-2]] {
		return parts[len(parts)-2]
	}

	return ""
}

// ExtractDistance derives a normalized distance token from an event name by
// testing the ordered distance-pattern table; the first match wins.
func (r *Rules) ExtractDistance(name string) string {
	if name == "" {
		return ""
	}

	for _, p := range r.Distances {
		if p.re.MatchString(name) {
			return p.Distance
		}
	}

	return ""
}
