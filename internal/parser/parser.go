package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/aniqaqill/runners-list-scraper/internal/event"
	"github.com/aniqaqill/runners-list-scraper/internal/logger"
)

// Entry lines look like "08 Nov - <event text>" after whitespace flattening.
var entryPattern = regexp.MustCompile(`^(\d{1,2})\s+(\w{3})\s*-\s*(.+)$`)

// nodeKind classifies a document node once, before dispatch.
type nodeKind int

const (
	nodeOther nodeKind = iota
	nodeHeaderCandidate
	nodeEntryCandidate
)

// headerContext is the (month, year) pair currently in effect during one
// extraction pass. It is unset until the first valid month header is seen;
// entries encountered before that are ignored.
type headerContext struct {
	month string
	year  int
}

func (h *headerContext) set() bool {
	return h.month != ""
}

// Parser extracts event records from a parsed listing page. Each Parser owns
// its extraction rules, so separate passes never share mutable state.
type Parser struct {
	rules *Rules
}

// New creates a Parser. A nil rules argument selects the built-in defaults.
func New(rules *Rules) *Parser {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Parser{rules: rules}
}

// Result holds the outcome of one extraction pass: the emitted events plus
// the count of matched entries dropped for missing a resolvable date or name.
type Result struct {
	Events  []*event.Event
	Skipped int
}

// Extract walks the document in order, tracking the current month/year header
// context and emitting an Event for every entry that yields a name and a
// resolvable date. A malformed header or entry never aborts the pass; bad
// entries are skipped and counted.
func (p *Parser) Extract(doc *goquery.Document) *Result {
	result := &Result{Events: make([]*event.Event, 0)}
	var ctx headerContext

	logger.Info("Starting event extraction", nil)

	doc.Find("b, div").Each(func(i int, sel *goquery.Selection) {
		switch classify(sel) {
		case nodeHeaderCandidate:
			if month, year, ok := p.parseHeader(sel); ok {
				ctx.month = month
				ctx.year = year
				logger.Info("Found month header", logger.Fields{
					"month": month,
					"year":  year,
				})
			}
		case nodeEntryCandidate:
			if !ctx.set() {
				return
			}
			p.parseEntry(sel, &ctx, result)
		}
	})

	logger.Info("Extraction complete", logger.Fields{
		"events":  len(result.Events),
		"skipped": result.Skipped,
	})

	return result
}

// classify tags a node by the structure it exposes: <b> elements are month
// header candidates, <div> elements are entry candidates.
func classify(sel *goquery.Selection) nodeKind {
	switch goquery.NodeName(sel) {
	case "b":
		return nodeHeaderCandidate
	case "div":
		return nodeEntryCandidate
	default:
		return nodeOther
	}
}

// parseHeader recognizes month headers of the form <b><u><span>NOV 2026</span></u></b>.
// Anything else leaves the current context untouched.
func (p *Parser) parseHeader(sel *goquery.Selection) (month string, year int, ok bool) {
	span := sel.Find("u span").First()
	if span.Length() == 0 {
		return "", 0, false
	}

	parts := strings.Fields(span.Text())
	if len(parts) != 2 {
		return "", 0, false
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil {
		logger.Warn("Failed to parse month header", logger.Fields{"text": span.Text()})
		return "", 0, false
	}

	abbrev := normalizeMonthAbbrev(parts[0])
	if _, known := p.rules.Months[abbrev]; !known {
		return "", 0, false
	}

	return abbrev, year, true
}

// parseEntry handles one entry-candidate node under an established header
// context, appending to result on success.
func (p *Parser) parseEntry(sel *goquery.Selection, ctx *headerContext, result *Result) {
	text := flatten(sel.Text())

	m := entryPattern.FindStringSubmatch(text)
	if m == nil {
		return
	}
	day, monthAbbrev := m[1], m[2]

	// The hyperlink is mandatory: it carries both the display text to
	// normalize and the registration URL.
	link := sel.Find("a").First()
	if link.Length() == 0 {
		return
	}

	entryText := flatten(link.Text())
	registrationURL, _ := link.Attr("href")

	name := ExtractEventName(entryText)
	location := ExtractLocation(entryText)
	state := p.rules.ExtractState(location)
	distance := p.rules.ExtractDistance(name)

	date, err := p.rules.ResolveDate(day, monthAbbrev, ctx.year)
	if err != nil || name == "" {
		result.Skipped++
		logger.Warn("Skipped entry due to missing data", logger.Fields{
			"text": truncate(text, 50),
		})
		return
	}

	evt := event.New(name, location, state, distance, date, registrationURL)
	result.Events = append(result.Events, evt)
	logger.Debug("Extracted event", logger.Fields{
		"name": name,
		"date": date,
	})
}

// flatten collapses runs of whitespace into single spaces and trims the ends.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
