package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aniqaqill/runners-list-scraper/internal/event"
	"github.com/aniqaqill/runners-list-scraper/internal/logger"
)

// Count is one entry of a frequency distribution.
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Stats holds per-field presence counts and derived dataset figures.
type Stats struct {
	Error                  string  `json:"error,omitempty"`
	WithNames              int     `json:"with_names"`
	WithLocations          int     `json:"with_locations"`
	WithStates             int     `json:"with_states"`
	WithDistances          int     `json:"with_distances"`
	WithURLs               int     `json:"with_urls"`
	StateExtractionRate    float64 `json:"state_extraction_rate"`
	DistanceExtractionRate float64 `json:"distance_extraction_rate"`
	DateRange              string  `json:"date_range,omitempty"`
	MonthsCovered          int     `json:"months_covered,omitempty"`
}

// Distributions holds the state and distance frequency tables, ordered by
// descending count with ties broken by first-encountered order.
type Distributions struct {
	States    []Count `json:"states"`
	Distances []Count `json:"distances"`
}

// Report is the dataset validation report. It is recomputed in full from a
// given record set on every ValidateDataset call, never merged.
type Report struct {
	TotalEvents   int           `json:"total_events"`
	ValidEvents   int           `json:"valid_events"`
	InvalidEvents int           `json:"invalid_events"`
	Duplicates    int           `json:"duplicates"`
	Stats         Stats         `json:"stats"`
	Distributions Distributions `json:"distributions"`
}

// ValidateDataset computes the full report for a record set: presence counts,
// extraction rates, date range, duplicate count, frequency distributions, and
// a per-record validity tally. An empty input yields an error marker instead
// of computing rates.
func (v *Validator) ValidateDataset(events []*event.Event) *Report {
	report := &Report{TotalEvents: len(events)}

	if len(events) == 0 {
		report.Stats.Error = "No events found"
		return report
	}

	var dates []string
	for _, e := range events {
		if e.Name != "" {
			report.Stats.WithNames++
		}
		if e.Location != "" {
			report.Stats.WithLocations++
		}
		if e.State != "" {
			report.Stats.WithStates++
		}
		if e.Distance != "" {
			report.Stats.WithDistances++
		}
		if e.RegistrationURL != "" {
			report.Stats.WithURLs++
		}
		if e.Date != "" {
			dates = append(dates, e.Date)
		}
	}

	total := float64(len(events))
	report.Stats.StateExtractionRate = float64(report.Stats.WithStates) / total * 100
	report.Stats.DistanceExtractionRate = float64(report.Stats.WithDistances) / total * 100

	if len(dates) > 0 {
		minDate, maxDate := dates[0], dates[0]
		months := make(map[string]bool)
		for _, d := range dates {
			if d < minDate {
				minDate = d
			}
			if d > maxDate {
				maxDate = d
			}
			if len(d) >= 7 {
				months[d[:7]] = true
			}
		}
		report.Stats.DateRange = fmt.Sprintf("%s to %s", minDate, maxDate)
		report.Stats.MonthsCovered = len(months)
	}

	// Duplicates: distinct (name, date) keys seen more than once, not the
	// number of duplicate rows.
	keyCounts := make(map[string]int)
	for _, e := range events {
		keyCounts[e.Key()]++
	}
	for _, n := range keyCounts {
		if n > 1 {
			report.Duplicates++
		}
	}

	report.Distributions.States = topCounts(fieldValues(events, func(e *event.Event) string { return e.State }), 10)
	report.Distributions.Distances = topCounts(fieldValues(events, func(e *event.Event) string { return e.Distance }), 0)

	for _, e := range events {
		ok, errs := v.ValidateEvent(e)
		if ok {
			report.ValidEvents++
		} else {
			report.InvalidEvents++
			logger.Warn("Invalid event", logger.Fields{
				"name":   e.Name,
				"errors": strings.Join(errs, ", "),
			})
		}
	}

	return report
}

// fieldValues collects the non-empty values of one field in document order.
func fieldValues(events []*event.Event, get func(*event.Event) string) []string {
	var values []string
	for _, e := range events {
		if val := get(e); val != "" {
			values = append(values, val)
		}
	}
	return values
}

// topCounts builds a frequency distribution ordered by descending count,
// ties broken by first-encountered order. A limit of 0 returns all entries.
func topCounts(values []string, limit int) []Count {
	counts := make(map[string]int)
	var order []string
	for _, val := range values {
		if _, seen := counts[val]; !seen {
			order = append(order, val)
		}
		counts[val]++
	}

	result := make([]Count, 0, len(order))
	for _, val := range order {
		result = append(result, Count{Value: val, Count: counts[val]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}
