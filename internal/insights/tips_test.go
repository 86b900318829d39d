package insights

import (
	"strings"
	"testing"
)

func TestTip(t *testing.T) {
	tests := []struct {
		name     string
		category string
		metrics  TipMetrics
		fires    bool
	}{
		{"food over threshold", "Food", TipMetrics{Spend: 5001}, true},
		{"food under threshold", "Food", TipMetrics{Spend: 5000}, false},
		{"shopping over threshold", "Shopping", TipMetrics{Spend: 12000}, true},
		{"shopping under threshold", "Shopping", TipMetrics{Spend: 9999}, false},
		{"entertainment increasing", "Entertainment", TipMetrics{Trend: TrendIncreasing}, true},
		{"entertainment decreasing", "Entertainment", TipMetrics{Trend: TrendDecreasing}, false},
		{"utilities spike", "Utilities", TipMetrics{Spike: true}, true},
		{"utilities no spike", "Utilities", TipMetrics{Spike: false}, false},
		{"savings below threshold", "Savings", TipMetrics{SavingsRate: 10}, true},
		{"savings healthy", "Savings", TipMetrics{SavingsRate: 35}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tip(tt.category, tt.metrics)
			if tt.fires {
				if got == TipOnTrack || got == TipUnavailable {
					t.Errorf("Tip(%q) = %q, want a rule message", tt.category, got)
				}
			} else if got != TipOnTrack {
				t.Errorf("Tip(%q) = %q, want %q", tt.category, got, TipOnTrack)
			}
		})
	}
}

// Category lookup is case-insensitive: input normalizes to capitalized form.
func TestTip_CaseInsensitive(t *testing.T) {
	want := Tip("Food", TipMetrics{Spend: 9999})
	for _, variant := range []string{"food", "FOOD", "fOoD", "  food  "} {
		if got := Tip(variant, TipMetrics{Spend: 9999}); got != want {
			t.Errorf("Tip(%q) = %q, want %q", variant, got, want)
		}
	}
}

func TestTip_UnknownCategory(t *testing.T) {
	got := Tip("Cryptocurrency", TipMetrics{Spend: 1e9})
	if got != TipUnavailable {
		t.Errorf("Tip(unknown) = %q, want %q", got, TipUnavailable)
	}
	if !strings.Contains(got, "No tips") {
		t.Errorf("unavailable message %q lost its wording", got)
	}
}
