package utils

import (
	"strconv"
	"strings"
)

// ParseQuantity coerces a free-text quantity field. Non-numeric entry
// deliberately falls back to 0 rather than failing the submission.
func ParseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// SplitCSVLine is the naive comma split the bulk importer uses. Quoting and
// escaping are unsupported on purpose; the template never produces them.
func SplitCSVLine(line string) []string {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
