package browser

import (
	"testing"
	"time"
)

func TestNewWithDelay(t *testing.T) {
	tests := []struct {
		name     string
		delay    time.Duration
		expected time.Duration
	}{
		{"custom delay", 2 * time.Second, 2 * time.Second},
		{"zero disables the settle wait", 0, 0},
		{"negative keeps the default", -1 * time.Second, DefaultSettleDelay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewWithDelay(tt.delay)
			if f.settleDelay != tt.expected {
				t.Errorf("NewWithDelay(%v) settle delay = %v, expected %v",
					tt.delay, f.settleDelay, tt.expected)
			}
		})
	}
}
