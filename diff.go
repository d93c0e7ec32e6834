package main

import (
	"fmt"
	"strings"
)

// RateSpec names a derived completion rate and the metric keys it is
// computed from.
type RateSpec struct {
	Name        string
	CompleteKey string
	EligibleKey string
}

var paraRate = RateSpec{
	Name:        "spa_completion_rate",
	CompleteKey: "total_complete",
	EligibleKey: "total_eligible",
}

var teacherRate = RateSpec{
	Name:        "ste_completion_rate",
	CompleteKey: "total_prc_pru_complete",
	EligibleKey: "total_prc_pru_eligible",
}

// SafeRate is the completion percentage with the denominator floored
// at 1. An empty population reads as 0%, never as an error.
func (r RateSpec) SafeRate(m Metrics) float64 {
	eligible := m[r.EligibleKey]
	if eligible < 1 {
		eligible = 1
	}
	return float64(m[r.CompleteKey]) / float64(eligible) * 100
}

// DiffMetrics computes current minus prior for every key of the
// current snapshot, formatted with an explicit sign for non-zero
// deltas and "0" otherwise.
func DiffMetrics(current, prior Metrics) map[string]string {
	diffs := make(map[string]string, len(current))
	for key, value := range current {
		diffs[key] = formatSigned(value - prior[key])
	}
	return diffs
}

// DiffRate computes the percentage-point delta of a completion rate
// between two snapshots, one decimal place with explicit sign, "0%"
// when unchanged.
func DiffRate(current, prior Metrics, spec RateSpec) string {
	delta := spec.SafeRate(current) - spec.SafeRate(prior)
	switch {
	case delta > 0:
		return fmt.Sprintf("+%.1f%%", delta)
	case delta < 0:
		return fmt.Sprintf("%.1f%%", delta)
	}
	return "0%"
}

func formatSigned(delta int) string {
	switch {
	case delta > 0:
		return "+" + formatCount(delta)
	case delta < 0:
		return "-" + formatCount(-delta)
	}
	return "0"
}

// formatCount renders a count with thousands separators.
func formatCount(value int) string {
	negative := value < 0
	if negative {
		value = -value
	}
	digits := fmt.Sprintf("%d", value)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	result := strings.Join(groups, ",")
	if negative {
		return "-" + result
	}
	return result
}

func formatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
