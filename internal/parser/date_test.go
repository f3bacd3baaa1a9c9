package parser

import "testing"

func TestResolveDate(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name      string
		day       string
		month     string
		year      int
		expected  string
		wantError bool
	}{
		{
			name:     "single digit day is zero-padded",
			day:      "5",
			month:    "Jan",
			year:     2026,
			expected: "2026-01-05",
		},
		{
			name:     "two digit day",
			day:      "15",
			month:    "Nov",
			year:     2026,
			expected: "2026-11-15",
		},
		{
			name:     "uppercase month abbreviation",
			day:      "8",
			month:    "NOV",
			year:     2026,
			expected: "2026-11-08",
		},
		{
			name:     "full month name uses first three characters",
			day:      "1",
			month:    "December",
			year:     2027,
			expected: "2027-12-01",
		},
		{
			name:      "invalid day",
			day:       "invalid",
			month:     "Nov",
			year:      2026,
			wantError: true,
		},
		{
			name:      "unknown month abbreviation fails instead of emitting month 00",
			day:       "10",
			month:     "Xyz",
			year:      2026,
			wantError: true,
		},
		{
			name:      "month token too short",
			day:       "10",
			month:     "No",
			year:      2026,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := rules.ResolveDate(tt.day, tt.month, tt.year)
			if tt.wantError {
				if err == nil {
					t.Errorf("ResolveDate(%q, %q, %d) expected error, got %q",
						tt.day, tt.month, tt.year, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDate(%q, %q, %d) unexpected error: %v",
					tt.day, tt.month, tt.year, err)
			}
			if result != tt.expected {
				t.Errorf("ResolveDate(%q, %q, %d) = %q, expected %q",
					tt.day, tt.month, tt.year, result, tt.expected)
			}
		})
	}
}
