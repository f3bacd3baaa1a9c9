package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aniqaqill/runners-list-scraper/internal/event"
	"github.com/aniqaqill/runners-list-scraper/internal/logger"
)

// Default output filenames
const (
	DefaultJSONFile = "events.json"
	DefaultCSVFile  = "events.csv"
)

// csvColumns is the fixed CSV column order. The header row is always
// written, even for zero records.
var csvColumns = []string{"name", "location", "state", "distance", "date", "description", "registration_url"}

// Exporter writes event records to local files under a single output
// directory, created on construction if needed.
type Exporter struct {
	outputDir string
}

// New creates an Exporter rooted at outputDir.
func New(outputDir string) (*Exporter, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Exporter{outputDir: outputDir}, nil
}

// WriteJSON saves events as a pretty-printed UTF-8 JSON array. Non-ASCII
// characters are preserved literally.
func (x *Exporter) WriteJSON(events []*event.Event, filename string) (string, error) {
	if filename == "" {
		filename = DefaultJSONFile
	}
	path := filepath.Join(x.outputDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating JSON file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(events); err != nil {
		return "", fmt.Errorf("encoding events: %w", err)
	}

	logger.Info("Saved events to JSON", logger.Fields{
		"count": len(events),
		"path":  path,
	})
	return path, nil
}

// WriteCSV saves events with the fixed column order, header row first.
func (x *Exporter) WriteCSV(events []*event.Event, filename string) (string, error) {
	if filename == "" {
		filename = DefaultCSVFile
	}
	path := filepath.Join(x.outputDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvColumns); err != nil {
		return "", fmt.Errorf("writing CSV header: %w", err)
	}
	for _, e := range events {
		record := []string{e.Name, e.Location, e.State, e.Distance, e.Date, e.Description, e.RegistrationURL}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("writing CSV record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing CSV: %w", err)
	}

	logger.Info("Saved events to CSV", logger.Fields{
		"count": len(events),
		"path":  path,
	})
	return path, nil
}
