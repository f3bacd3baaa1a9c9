// Package parser extracts running-event records from the listing page HTML.
//
// The page is hand-authored: month headers (<b><u><span>NOV 2026</span></u></b>)
// establish a month/year context, and the event entries that follow
// (<div>08 Nov - <a href="...">Name (Location)</a></div>) are resolved against
// the most recent header. The parser walks the document in a single pass,
// classifies each node once, and emits immutable Event records. Free-text
// normalization (location, name, state, distance) and date resolution live in
// this package alongside the extraction rules they depend on.
package parser
