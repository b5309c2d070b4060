package stats

import (
	"strconv"
	"strings"
)

const unsatToken = "UNSATISFIABLE"

// Extract parses solver diagnostic text into a metric map and a
// satisfiability verdict. It never fails: unrecognized lines are skipped
// and an empty map is a valid result.
func Extract(text string) (satisfiable bool, metrics map[string]float64) {
	metrics = make(map[string]float64)
	for _, line := range strings.Split(text, "\n") {
		label, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if v, ok := firstNumber(rest); ok {
			metrics[strings.TrimSpace(label)] = v
		}
	}
	return !strings.Contains(text, unsatToken), metrics
}

// firstNumber returns the first contiguous run of digits and/or a decimal
// point in s, parsed as a float.
func firstNumber(s string) (float64, bool) {
	start := -1
	for i := 0; i <= len(s); i++ {
		if i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
			if start < 0 {
				start = i
			}
			continue
		}
		if start < 0 {
			continue
		}
		if v, err := strconv.ParseFloat(s[start:i], 64); err == nil {
			return v, true
		}
		// A bare "." run does not parse; keep scanning past it.
		start = -1
	}
	return 0, false
}
