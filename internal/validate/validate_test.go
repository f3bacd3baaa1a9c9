package validate

import (
	"testing"

	"github.com/aniqaqill/runners-list-scraper/internal/event"
)

// Tests pin the current year via NewAt: IsValidDate compares against the
// validator's year, so using the wall clock would make these flip over time.
const testYear = 2026

func TestIsValidURL(t *testing.T) {
	v := NewAt(testYear)

	tests := []struct {
		url      string
		expected bool
	}{
		{"https://x.com", true},
		{"http://example.com/path", true},
		{"not-a-url", false},
		{"ftp://example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := v.IsValidURL(tt.url); got != tt.expected {
				t.Errorf("IsValidURL(%q) = %v, expected %v", tt.url, got, tt.expected)
			}
		})
	}
}

func TestIsValidDate(t *testing.T) {
	v := NewAt(testYear)

	tests := []struct {
		date     string
		expected bool
	}{
		{"2026-06-15", true},
		{"2027-01-01", true},  // future year
		{"2025-06-15", false}, // past year
		{"2026-13-15", false}, // invalid calendar month
		{"2026-02-30", false}, // invalid calendar day
		{"2026-6-15", false},  // not zero-padded
		{"15-06-2026", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			if got := v.IsValidDate(tt.date); got != tt.expected {
				t.Errorf("IsValidDate(%q) = %v, expected %v", tt.date, got, tt.expected)
			}
		})
	}
}

func TestValidateEvent(t *testing.T) {
	v := NewAt(testYear)

	tests := []struct {
		name       string
		event      *event.Event
		wantOK     bool
		wantErrors int
	}{
		{
			name: "fully valid event",
			event: event.New("Kota Belud Half Marathon", "Kota Belud, Sabah",
				"Sabah", "21km", "2026-11-08", "https://example.com/register"),
			wantOK: true,
		},
		{
			name: "missing location is informational only",
			event: event.New("Putrajaya Night 5K", "", "", "5km",
				"2026-10-12", "https://example.com/register"),
			wantOK: true,
		},
		{
			name:       "name too short",
			event:      event.New("KL", "", "", "", "2026-10-12", "https://example.com"),
			wantOK:     false,
			wantErrors: 1,
		},
		{
			// Two runes, six bytes: the minimum counts characters
			name:       "two-rune name too short",
			event:      event.New("马拉", "", "", "", "2026-10-12", "https://example.com"),
			wantOK:     false,
			wantErrors: 1,
		},
		{
			name: "three-rune name passes",
			event: event.New("马拉松", "", "", "",
				"2026-10-12", "https://example.com"),
			wantOK: true,
		},
		{
			name:       "missing date and URL",
			event:      event.New("Penang Bridge Marathon", "Penang", "Penang", "42km", "", ""),
			wantOK:     false,
			wantErrors: 2,
		},
		{
			name: "past date and bad URL",
			event: event.New("Old Race", "Ipoh, Perak", "Perak", "",
				"2020-01-01", "not-a-url"),
			wantOK:     false,
			wantErrors: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, errs := v.ValidateEvent(tt.event)
			if ok != tt.wantOK {
				t.Errorf("ValidateEvent() ok = %v, expected %v (errors: %v)", ok, tt.wantOK, errs)
			}
			if !tt.wantOK && len(errs) != tt.wantErrors {
				t.Errorf("expected %d errors, got %d: %v", tt.wantErrors, len(errs), errs)
			}
		})
	}
}
