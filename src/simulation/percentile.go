package simulation

import (
	"fmt"
	"math"
	"slices"
)

// Percentile returns the q-th percentile (0 <= q <= 100) of data using linear
// interpolation between the two closest ranks.
func Percentile(data []float64, q float64) (float64, error) {
	if len(data) == 0 {
		return math.NaN(), fmt.Errorf("Percentile: empty input")
	}

	if q < 0 || q > 100 {
		return math.NaN(), fmt.Errorf("Percentile: q=%v out of range", q)
	}

	sorted := slices.Clone(data)
	slices.Sort(sorted)

	rank := q / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo], nil
	}

	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo]), nil
}
