package scoring

// Benchmark positions
const (
	BenchmarkTopQuartile    = "Top Quartile"
	BenchmarkAboveAverage   = "Above Average"
	BenchmarkBelowAverage   = "Below Average"
	BenchmarkBottomQuartile = "Bottom Quartile"
)

// CompareToBenchmark buckets an actual value against the industry references.
// For lower-is-better metrics the top quartile is the lowest band.
func CompareToBenchmark(actual, average, top, bottom float64, higherIsBetter bool) string {
	if higherIsBetter {
		switch {
		case actual >= top:
			return BenchmarkTopQuartile
		case actual >= average:
			return BenchmarkAboveAverage
		case actual >= bottom:
			return BenchmarkBelowAverage
		default:
			return BenchmarkBottomQuartile
		}
	}

	switch {
	case actual <= top:
		return BenchmarkTopQuartile
	case actual <= average:
		return BenchmarkAboveAverage
	case actual <= bottom:
		return BenchmarkBelowAverage
	default:
		return BenchmarkBottomQuartile
	}
}
