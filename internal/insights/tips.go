package insights

import (
	"strings"
)

// Canned fallback messages returned when no rule fires.
const (
	TipOnTrack     = "You're on track! No specific tips for this category right now."
	TipUnavailable = "No tips available for this category."
)

// TipMetrics carries the per-category signals the tip rules test against.
// Each rule reads exactly one field.
type TipMetrics struct {
	Spend       float64
	Trend       Trend
	Spike       bool
	SavingsRate float64
}

// tipRule is one advisory rule. Rules are discriminated variants rather than
// closures so the table stays plain data: a threshold on a scalar, an
// equality on an enum, or a boolean flag.
type tipRule interface {
	matches(m TipMetrics) bool
	message() string
}

type spendAboveRule struct {
	limit float64
	msg   string
}

func (r spendAboveRule) matches(m TipMetrics) bool { return m.Spend > r.limit }
func (r spendAboveRule) message() string           { return r.msg }

type trendEqualsRule struct {
	trend Trend
	msg   string
}

func (r trendEqualsRule) matches(m TipMetrics) bool { return m.Trend == r.trend }
func (r trendEqualsRule) message() string           { return r.msg }

type spikeRule struct {
	msg string
}

func (r spikeRule) matches(m TipMetrics) bool { return m.Spike }
func (r spikeRule) message() string           { return r.msg }

type savingsBelowRule struct {
	limit float64
	msg   string
}

func (r savingsBelowRule) matches(m TipMetrics) bool { return m.SavingsRate < r.limit }
func (r savingsBelowRule) message() string           { return r.msg }

// tipRules maps each advised category to its single rule. Loaded once at
// process start and read-only thereafter.
var tipRules = map[string]tipRule{
	"Food":          spendAboveRule{limit: 5000, msg: "Food delivery spend is high this period. Cooking at home a few nights a week usually trims 15-20%."},
	"Shopping":      spendAboveRule{limit: 10000, msg: "Shopping spend is running hot. A 24-hour wishlist rule is a simple brake on impulse buys."},
	"Entertainment": trendEqualsRule{trend: TrendIncreasing, msg: "Entertainment spending is trending up. Rotating subscriptions instead of stacking them keeps it flat."},
	"Utilities":     spikeRule{msg: "Utility charges spiked this cycle. Check for duplicate recharges or a revised tariff."},
	"Savings":       savingsBelowRule{limit: 20, msg: "Your savings rate is under 20%. An automatic transfer on salary day makes saving the default."},
}

// Tip returns the advisory message for a category given its metrics. Category
// matching is case-insensitive; a category without a rule table entry yields
// TipUnavailable, and a rule that does not fire yields TipOnTrack.
func Tip(category string, m TipMetrics) string {
	rule, ok := tipRules[normalizeCategory(category)]
	if !ok {
		return TipUnavailable
	}
	if rule.matches(m) {
		return rule.message()
	}
	return TipOnTrack
}

// normalizeCategory normalizes a category name to its capitalized form for
// case-insensitive lookup.
func normalizeCategory(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
