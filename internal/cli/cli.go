package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"github.com/aniqaqill/runners-list-scraper/internal/api"
	"github.com/aniqaqill/runners-list-scraper/internal/browser"
	"github.com/aniqaqill/runners-list-scraper/internal/config"
	"github.com/aniqaqill/runners-list-scraper/internal/export"
	"github.com/aniqaqill/runners-list-scraper/internal/logger"
	"github.com/aniqaqill/runners-list-scraper/internal/parser"
	"github.com/aniqaqill/runners-list-scraper/internal/validate"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagURL     string
	flagInput   string
	flagOutput  string
	flagRules   string
	flagFormat  string
	flagSettle  int
	flagNoAPI   bool
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runners-list-scraper",
		Short: "Scrape Malaysian running events and sync them to the API",
		Long: `Scrapes the running-event listing page, extracts and validates event
records, exports them to JSON/CSV, and optionally syncs them to the backend API.`,
		RunE: runScrape,
	}

	cmd.Flags().StringVar(&flagURL, "url", "", "Override the SCRAPE_URL environment variable")
	cmd.Flags().StringVar(&flagInput, "input", "", "Parse a saved HTML file instead of fetching")
	cmd.Flags().StringVar(&flagOutput, "output", ".", "Output directory for JSON/CSV files")
	cmd.Flags().StringVar(&flagRules, "rules", "", "YAML file overriding the extraction rules")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Report format: text or json")
	cmd.Flags().IntVar(&flagSettle, "settle", 5, "Seconds to wait for JavaScript rendering")
	cmd.Flags().BoolVar(&flagNoAPI, "no-api", false, "Skip API sync even if credentials are set")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg := config.Load()

	rules, err := loadRules()
	if err != nil {
		return err
	}

	doc, sourceURL, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	p := parser.New(rules)
	result := p.Extract(doc)

	if len(result.Events) == 0 {
		return fmt.Errorf("no events were extracted from %s; check the HTML structure", sourceURL)
	}

	report := validate.New().ValidateDataset(result.Events)

	exporter, err := export.New(flagOutput)
	if err != nil {
		return fmt.Errorf("initializing exporter: %w", err)
	}
	jsonPath, err := exporter.WriteJSON(result.Events, "")
	if err != nil {
		return fmt.Errorf("saving JSON: %w", err)
	}
	csvPath, err := exporter.WriteCSV(result.Events, "")
	if err != nil {
		return fmt.Errorf("saving CSV: %w", err)
	}

	out := &OutputResult{
		ScrapedAt:   time.Now().UTC(),
		SourceURL:   sourceURL,
		TotalEvents: len(result.Events),
		Skipped:     result.Skipped,
		JSONPath:    jsonPath,
		CSVPath:     csvPath,
		Report:      report,
	}

	out.Sync, err = syncEvents(cmd.Context(), cfg, result, out)
	if err != nil {
		// Authentication failures are fatal; the local export already
		// happened, so everything else degrades to local-only.
		var authErr *api.AuthError
		if errors.As(err, &authErr) {
			if writeErr := WriteOutput(cmd.OutOrStdout(), out, format); writeErr != nil {
				return writeErr
			}
			return err
		}
		logger.Error("Failed to sync to API", nil, err)
		out.SyncError = err.Error()
	}

	return WriteOutput(cmd.OutOrStdout(), out, format)
}

func loadRules() (*parser.Rules, error) {
	if flagRules == "" {
		return nil, nil
	}
	rules, err := parser.LoadRules(flagRules)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	return rules, nil
}

// loadDocument returns the parsed listing page, either from a saved HTML file
// (--input) or by rendering the live page in headless Chrome.
func loadDocument(cfg *config.Config) (*goquery.Document, string, error) {
	if flagInput != "" {
		f, err := os.Open(flagInput)
		if err != nil {
			return nil, "", fmt.Errorf("opening input file: %w", err)
		}
		defer f.Close()

		doc, err := goquery.NewDocumentFromReader(f)
		if err != nil {
			return nil, "", fmt.Errorf("parsing input file: %w", err)
		}
		return doc, flagInput, nil
	}

	url := flagURL
	if url == "" {
		url = cfg.ScrapeURL
	}
	if url == "" {
		return nil, "", fmt.Errorf("no URL to scrape: set SCRAPE_URL or use --url")
	}

	fetcher := browser.NewWithDelay(time.Duration(flagSettle) * time.Second)
	doc, err := fetcher.FetchDocument(context.Background(), url)
	if err != nil {
		return nil, "", fmt.Errorf("fetching page: %w", err)
	}
	return doc, url, nil
}

// syncEvents pushes the extracted events to the backend API when credentials
// are configured and --no-api is not set.
func syncEvents(ctx context.Context, cfg *config.Config, result *parser.Result, out *OutputResult) (*api.SyncResult, error) {
	if flagNoAPI {
		out.SyncSkipped = "--no-api flag"
		return nil, nil
	}
	if !cfg.IsAPIConfigured() {
		logger.Info("API_URL or API_KEY not set, skipping API sync", nil)
		out.SyncSkipped = "API_URL and API_KEY not set"
		return nil, nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	client := api.New(cfg.APIURL, cfg.APIKey)
	return client.Sync(ctx, result.Events)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
