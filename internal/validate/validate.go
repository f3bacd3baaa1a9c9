package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aniqaqill/runners-list-scraper/internal/event"
	"github.com/aniqaqill/runners-list-scraper/internal/logger"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validator applies field rules to extracted events. Date validity is
// measured against a fixed current year so results are deterministic for a
// given Validator; New pins it to the wall clock, NewAt injects it for tests.
type Validator struct {
	currentYear int
}

// New creates a Validator pinned to the current calendar year.
func New() *Validator {
	return NewAt(time.Now().Year())
}

// NewAt creates a Validator that treats year as the current calendar year.
func NewAt(year int) *Validator {
	return &Validator{currentYear: year}
}

// IsValidURL reports whether url is a non-empty http:// or https:// URL.
// No further well-formedness checking is done.
func (v *Validator) IsValidURL(url string) bool {
	if url == "" {
		return false
	}
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// IsValidDate reports whether s is a real YYYY-MM-DD calendar date whose year
// is not in the past. Validity is therefore time-dependent: events must be
// upcoming, so re-validating an old dataset in a later year can flip records
// to invalid.
func (v *Validator) IsValidDate(s string) bool {
	if s == "" {
		return false
	}
	if !datePattern.MatchString(s) {
		return false
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return false
	}

	return t.Year() >= v.currentYear
}

// ValidateEvent checks a single event against the field rules. A missing
// location is informational only and never affects validity.
func (v *Validator) ValidateEvent(e *event.Event) (bool, []string) {
	var errors []string

	if utf8.RuneCountInString(e.Name) < 3 {
		errors = append(errors, "Name is missing or too short")
	}

	if e.Date == "" {
		errors = append(errors, "Date is missing")
	} else if !v.IsValidDate(e.Date) {
		errors = append(errors, fmt.Sprintf("Invalid date format or past date: %s", e.Date))
	}

	if e.RegistrationURL == "" {
		errors = append(errors, "Registration URL is missing")
	} else if !v.IsValidURL(e.RegistrationURL) {
		errors = append(errors, fmt.Sprintf("Invalid URL format: %s", e.RegistrationURL))
	}

	if e.Location == "" {
		logger.Info("Event has no location", logger.Fields{"name": e.Name})
	}

	return len(errors) == 0, errors
}
