// pkg/record/parse.go

package record

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts a form-submitted numeric string for a write
// payload. The store rejects NaN/Inf silently, so they are errors here.
func ParseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}

// ParseNumberOr is for optional amounts: empty or unparsable input
// falls back to def instead of failing the whole write.
func ParseNumberOr(s string, def float64) float64 {
	f, err := ParseNumber(s)
	if err != nil {
		return def
	}
	return f
}

// ParseID coerces a view-model id (string or numeric form) to the
// integer the store's filters and write payloads expect.
func ParseID(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return n, nil
}
