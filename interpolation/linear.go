// Package interpolation provides the two resampling strategies used to
// move tabulated data (cross-sections, quantum yields, albedo, flux) onto
// the model's wavelength/altitude grids: point-to-point linear
// interpolation and area-conserving bin-to-bin rebinning.
package interpolation

import "sort"

// Linear interpolates (sourceX, sourceY) onto targetX. Values at or below
// sourceX[0] take sourceY[0]; values at or above the last sourceX take the
// last sourceY; no extrapolation occurs. If the source arrays are empty or
// mismatched in length, a zero vector sized to targetX is returned.
func Linear(targetX, sourceX, sourceY []float64) []float64 {
	result := make([]float64, len(targetX))
	if len(sourceX) == 0 || len(sourceX) != len(sourceY) {
		return result
	}
	n := len(sourceX)
	for i, x := range targetX {
		switch {
		case x <= sourceX[0]:
			result[i] = sourceY[0]
		case x >= sourceX[n-1]:
			result[i] = sourceY[n-1]
		default:
			// first index j such that sourceX[j] >= x
			j := sort.Search(n, func(j int) bool { return sourceX[j] >= x })
			lo, hi := j-1, j
			x0, x1 := sourceX[lo], sourceX[hi]
			y0, y1 := sourceY[lo], sourceY[hi]
			if x1 == x0 {
				result[i] = y0
			} else {
				t := (x - x0) / (x1 - x0)
				result[i] = y0 + t*(y1-y0)
			}
		}
	}
	return result
}
