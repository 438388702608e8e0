package interpolation

// Conserving resamples a source histogram (n_src+1 sorted edges, n_src
// values) onto a target histogram (n_tgt+1 sorted edges) preserving total
// area: sum(result[i]*targetWidth[i]) equals sum(sourceValue[j]*sourceWidth[j])
// over the intersection of the two ranges. Target bins with zero width, or
// lying entirely outside the source range, are zero. No extrapolation.
func Conserving(targetEdges, sourceEdges, sourceValues []float64) []float64 {
	nTgt := len(targetEdges) - 1
	if nTgt < 0 {
		nTgt = 0
	}
	result := make([]float64, nTgt)
	nSrc := len(sourceEdges) - 1
	if nSrc <= 0 || len(sourceValues) != nSrc {
		return result
	}
	for i := 0; i < nTgt; i++ {
		lo, hi := targetEdges[i], targetEdges[i+1]
		if lo > hi {
			lo, hi = hi, lo
		}
		width := hi - lo
		if width <= 0 {
			continue
		}
		var area float64
		for j := 0; j < nSrc; j++ {
			srcLo, srcHi := sourceEdges[j], sourceEdges[j+1]
			if srcLo > srcHi {
				srcLo, srcHi = srcHi, srcLo
			}
			overlap := min(hi, srcHi) - max(lo, srcLo)
			if overlap > 0 {
				area += sourceValues[j] * overlap
			}
		}
		result[i] = area / width
	}
	return result
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
