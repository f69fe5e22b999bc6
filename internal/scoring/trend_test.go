package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrend(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected string
	}{
		{name: "empty series is stable", values: nil, expected: TrendStable},
		{name: "single point is stable", values: []float64{72}, expected: TrendStable},
		{name: "rising series improves", values: []float64{70, 75, 80}, expected: TrendImproving},
		{name: "falling series declines", values: []float64{80, 75, 70}, expected: TrendDeclining},
		{name: "flat series is stable", values: []float64{75, 75, 75}, expected: TrendStable},
		{name: "noise within 2% of mean is stable", values: []float64{75, 75.5, 75.2}, expected: TrendStable},
		{name: "two rising points improve", values: []float64{70, 80}, expected: TrendImproving},
		{name: "dip then recovery is stable", values: []float64{75, 70, 75}, expected: TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Trend(tt.values))
		})
	}
}

func TestTrend_LabelsFollowRawSlope(t *testing.T) {
	// A falling AHT series reads Declining even though faster handling is
	// an improvement for the colleague
	assert.Equal(t, TrendDeclining, Trend([]float64{6.5, 6.0, 5.5}))
}

func TestTrendIcon(t *testing.T) {
	assert.Equal(t, "📈", TrendIcon(TrendImproving))
	assert.Equal(t, "➡️", TrendIcon(TrendStable))
	assert.Equal(t, "📉", TrendIcon(TrendDeclining))
	assert.Equal(t, "➡️", TrendIcon("Sideways"))
}

func TestLeastSquaresSlope(t *testing.T) {
	assert.InDelta(t, 5.0, leastSquaresSlope([]float64{70, 75, 80}), 0.001)
	assert.InDelta(t, -5.0, leastSquaresSlope([]float64{80, 75, 70}), 0.001)
	assert.InDelta(t, 0.0, leastSquaresSlope([]float64{75, 75, 75}), 0.001)
	assert.InDelta(t, 0.0, leastSquaresSlope([]float64{42}), 0.001)
}
