package scoring

import (
	"math"

	"github.com/opsvue/performance-coach-api/internal/domain"
	"github.com/opsvue/performance-coach-api/pkg/utils"
)

// Weights of the overall performance score. They sum to 1.0.
const (
	weightQuality    = 0.25
	weightFCR        = 0.20
	weightCSAT       = 0.20
	weightAHT        = 0.15
	weightAdherence  = 0.10
	weightCompliance = 0.10
)

// MetricScore converts an actual/target pair into a 0-100 component score.
// Hitting the target exactly scores 80; the scale saturates at 100 from 10%
// above target and decays linearly below 80% of target.
func MetricScore(actual, target float64, higherIsBetter bool) float64 {
	var ratio float64
	if higherIsBetter {
		if target == 0 {
			return 0
		}
		ratio = actual / target
	} else {
		if actual == 0 {
			return 100
		}
		ratio = target / actual
	}

	switch {
	case ratio >= 1.10:
		return math.Min(100, 95+(ratio-1.10)*50)
	case ratio >= 1.0:
		return 80 + (ratio-1.0)*140
	case ratio >= 0.90:
		return 65 + (ratio-0.90)*140
	case ratio >= 0.80:
		return 50 + (ratio-0.80)*140
	default:
		return math.Max(0, ratio*62.5)
	}
}

// ComplianceScore starts at 100 and deducts 40 points per critical error
func ComplianceScore(criticalErrors int) float64 {
	return math.Max(0, 100-float64(criticalErrors)*40)
}

// OverallScore weighs the six component scores into the colleague's overall
// performance score. AHT is scored lower-is-better, the rest higher-is-better.
func OverallScore(m domain.MonthlyMetric, t domain.Target) domain.ScoreBreakdown {
	quality := MetricScore(m.QualityPct, t.QualityTarget, true)
	fcr := MetricScore(m.FCRPct, t.FCRTarget, true)
	csat := MetricScore(m.CSATPct, t.CSATTarget, true)
	aht := MetricScore(m.AHTMin, t.AHTTarget, false)
	adherence := MetricScore(m.AdherencePct, t.AdherenceTarget, true)
	compliance := ComplianceScore(m.CriticalErrors)

	overall := quality*weightQuality +
		fcr*weightFCR +
		csat*weightCSAT +
		aht*weightAHT +
		adherence*weightAdherence +
		compliance*weightCompliance

	return domain.ScoreBreakdown{
		Overall:    utils.RoundWithOneDecimalPlace(overall),
		Quality:    utils.RoundWithOneDecimalPlace(quality),
		FCR:        utils.RoundWithOneDecimalPlace(fcr),
		CSAT:       utils.RoundWithOneDecimalPlace(csat),
		AHT:        utils.RoundWithOneDecimalPlace(aht),
		Adherence:  utils.RoundWithOneDecimalPlace(adherence),
		Compliance: utils.RoundWithOneDecimalPlace(compliance),
	}
}
