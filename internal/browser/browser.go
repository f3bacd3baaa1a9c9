package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"github.com/aniqaqill/runners-list-scraper/internal/logger"
)

const (
	// DefaultSettleDelay is how long to wait after navigation for the
	// page's JavaScript to build the listing.
	DefaultSettleDelay = 5 * time.Second
	DefaultTimeout     = 60 * time.Second
)

// Fetcher renders a page in headless Chrome and returns the settled DOM.
type Fetcher struct {
	settleDelay time.Duration
	timeout     time.Duration
}

// New creates a Fetcher with the default settle delay and timeout.
func New() *Fetcher {
	return &Fetcher{
		settleDelay: DefaultSettleDelay,
		timeout:     DefaultTimeout,
	}
}

// NewWithDelay creates a Fetcher with a custom settle delay. A zero delay
// disables the settle wait entirely; a negative delay keeps the default.
func NewWithDelay(settleDelay time.Duration) *Fetcher {
	f := New()
	if settleDelay >= 0 {
		f.settleDelay = settleDelay
	}
	return f
}

// FetchDocument navigates to url, waits for the settle delay, and returns the
// rendered HTML as a parsed document.
func (f *Fetcher) FetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.WindowSize(1920, 1080),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	logger.Info("Fetching URL", logger.Fields{"url": url})

	var html string
	actions := []chromedp.Action{chromedp.Navigate(url)}
	if f.settleDelay > 0 {
		actions = append(actions, chromedp.Sleep(f.settleDelay))
	}
	actions = append(actions, chromedp.OuterHTML("html", &html))

	err := chromedp.Run(browserCtx, actions...)
	if err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing rendered HTML: %w", err)
	}

	logger.Info("Page fetched and parsed successfully", nil)
	return doc, nil
}
