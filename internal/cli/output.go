package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aniqaqill/runners-list-scraper/internal/api"
	"github.com/aniqaqill/runners-list-scraper/internal/validate"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output after a run
type OutputResult struct {
	ScrapedAt   time.Time        `json:"scraped_at"`
	SourceURL   string           `json:"source_url"`
	TotalEvents int              `json:"total_events"`
	Skipped     int              `json:"skipped"`
	JSONPath    string           `json:"json_path"`
	CSVPath     string           `json:"csv_path"`
	Report      *validate.Report `json:"report"`
	Sync        *api.SyncResult  `json:"sync,omitempty"`
	SyncSkipped string           `json:"sync_skipped,omitempty"`
	SyncError   string           `json:"sync_error,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	fmt.Fprintln(w, "Scraping completed")
	fmt.Fprintf(w, "Total events extracted: %d", result.TotalEvents)
	if result.Skipped > 0 {
		fmt.Fprintf(w, " (%d entries skipped)", result.Skipped)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Data saved to %s and %s\n", result.JSONPath, result.CSVPath)

	if result.Report != nil {
		writeReport(w, result.Report)
	}

	switch {
	case result.Sync != nil:
		fmt.Fprintf(w, "\nSynced %d events to API (inserted: %d, updated: %d)\n",
			result.Sync.Total, result.Sync.Inserted, result.Sync.Updated)
	case result.SyncError != "":
		fmt.Fprintf(w, "\nFailed to sync to API: %s\n", result.SyncError)
		fmt.Fprintln(w, "Data was saved locally.")
	case result.SyncSkipped != "":
		fmt.Fprintf(w, "\nAPI sync skipped (%s)\n", result.SyncSkipped)
	}

	return nil
}

// writeReport renders the dataset validation report
func writeReport(w io.Writer, report *validate.Report) {
	divider := strings.Repeat("=", 50)
	fmt.Fprintf(w, "\n%s\n Dataset Validation Report\n%s\n", divider, divider)

	fmt.Fprintf(w, "Total events: %d\n", report.TotalEvents)
	if report.Stats.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", report.Stats.Error)
		return
	}

	if report.Stats.DateRange != "" {
		fmt.Fprintf(w, "Date range: %s\n", report.Stats.DateRange)
		fmt.Fprintf(w, "Months covered: %d\n", report.Stats.MonthsCovered)
	}

	total := report.TotalEvents
	fmt.Fprintf(w, "Events with locations: %d (%.1f%%)\n",
		report.Stats.WithLocations, percent(report.Stats.WithLocations, total))
	fmt.Fprintf(w, "Events with states: %d (%.1f%%)\n",
		report.Stats.WithStates, report.Stats.StateExtractionRate)
	fmt.Fprintf(w, "Events with distances: %d (%.1f%%)\n",
		report.Stats.WithDistances, report.Stats.DistanceExtractionRate)
	fmt.Fprintf(w, "Events with URLs: %d (%.1f%%)\n",
		report.Stats.WithURLs, percent(report.Stats.WithURLs, total))

	if report.Duplicates > 0 {
		fmt.Fprintf(w, "Duplicates found: %d\n", report.Duplicates)
	} else {
		fmt.Fprintln(w, "No duplicates found")
	}

	fmt.Fprintf(w, "\nValid events: %d\n", report.ValidEvents)
	if report.InvalidEvents > 0 {
		fmt.Fprintf(w, "Invalid events: %d\n", report.InvalidEvents)
	}

	if len(report.Distributions.States) > 0 {
		fmt.Fprintln(w, "\n=== State Distribution (Top 10) ===")
		for _, c := range report.Distributions.States {
			fmt.Fprintf(w, "%s: %d events\n", c.Value, c.Count)
		}
	}

	if len(report.Distributions.Distances) > 0 {
		fmt.Fprintln(w, "\n=== Distance Distribution ===")
		for _, c := range report.Distributions.Distances {
			fmt.Fprintf(w, "%s: %d events\n", c.Value, c.Count)
		}
	}

	fmt.Fprintf(w, "\n%s\n", divider)
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
