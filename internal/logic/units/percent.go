package units

import (
	"fmt"
	"math"
)

// Percent returns value as a share of quota, rounded to one decimal and clamped to [0, 100].
func Percent(value, quota int64) (float64, error) {
	if quota <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidQuota, quota)
	}

	pct := math.Round(float64(value)/float64(quota)*1000) / 10

	return math.Max(0, math.Min(100, pct)), nil
}
