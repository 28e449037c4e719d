package csvfile

import (
	"math"
	"strconv"
	"strings"

	"adkpi/internal/core/domain"
)

var numberCleaner = strings.NewReplacer("$", "", ",", "", "%", "", " ", "", "\u00a0", "")

// ParseAmount reads a decimal cell. Currency signs, thousands separators
// and percent signs are ignored. Empty, unparseable, negative and
// non-finite cells read as 0.
func ParseAmount(s string) float64 {
	s = numberCleaner.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return domain.NonNegative(v)
}

// ParseCount reads an integer cell with the rules of ParseAmount and
// truncates any fraction. Values beyond the int64 range read as 0.
func ParseCount(s string) int64 {
	v := ParseAmount(s)
	if v >= math.MaxInt64 {
		return 0
	}
	return int64(v)
}
