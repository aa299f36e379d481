// Package fitness holds small presentation helpers shared by the dashboard
// and goal screens: date formatting, calorie totals and goal validation.
package fitness

import (
	"encoding/json"
	"strings"
	"time"
)

// InvalidDate is returned by FormatDate for unparsable input.
const InvalidDate = "Invalid Date"

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatDate renders an ISO 8601 date or timestamp as "January 2, 2006".
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return InvalidDate
}

// TotalCalories sums the numeric caloriesBurned fields of a decoded exercise
// list. Non-list input yields 0; entries without a numeric value count as 0.
func TotalCalories(exercises any) float64 {
	var items []map[string]any

	switch t := exercises.(type) {
	case []map[string]any:
		items = t
	case []any:
		for _, e := range t {
			if m, ok := e.(map[string]any); ok {
				items = append(items, m)
			}
		}
	default:
		return 0
	}

	var total float64
	for _, item := range items {
		if v, ok := number(item["caloriesBurned"]); ok {
			total += v
		}
	}
	return total
}

// IsValidGoal reports whether goal has a non-blank name, a positive
// targetValue and a non-blank unit.
func IsValidGoal(goal any) bool {
	m, ok := goal.(map[string]any)
	if !ok || m == nil {
		return false
	}

	name, ok := m["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return false
	}

	target, ok := number(m["targetValue"])
	if !ok || target <= 0 {
		return false
	}

	unit, ok := m["unit"].(string)
	if !ok || strings.TrimSpace(unit) == "" {
		return false
	}

	return true
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
