package scoring

// Trend labels
const (
	TrendImproving = "Improving"
	TrendStable    = "Stable"
	TrendDeclining = "Declining"
)

var trendIcons = map[string]string{
	TrendImproving: "📈",
	TrendStable:    "➡️",
	TrendDeclining: "📉",
}

// Trend labels the direction of a month-ordered series. The label describes
// the slope of the raw values, so a falling AHT reads Declining even though
// the colleague got faster. Slopes within 2% of the series mean count as
// stable.
func Trend(values []float64) string {
	if len(values) < 2 {
		return TrendStable
	}

	slope := leastSquaresSlope(values)
	threshold := 0.02 * mean(values)

	switch {
	case slope > threshold:
		return TrendImproving
	case slope < -threshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// TrendIcon returns the dashboard icon of a trend label
func TrendIcon(trend string) string {
	if icon, ok := trendIcons[trend]; ok {
		return icon
	}
	return trendIcons[TrendStable]
}

func leastSquaresSlope(values []float64) float64 {
	n := float64(len(values))

	var sumX, sumY float64
	for i, v := range values {
		sumX += float64(i)
		sumY += v
	}
	meanX := sumX / n
	meanY := sumY / n

	var num, den float64
	for i, v := range values {
		dx := float64(i) - meanX
		num += dx * (v - meanY)
		den += dx * dx
	}
	if den == 0 {
		return 0
	}

	return num / den
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
