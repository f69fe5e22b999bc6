package scoring

import (
	"strings"

	"github.com/opsvue/performance-coach-api/internal/domain"
)

// Metric keys accepted by the trends and movers endpoints
const (
	MetricQuality        = "quality_pct"
	MetricFCR            = "fcr_pct"
	MetricCSAT           = "csat_pct"
	MetricAHT            = "aht_min"
	MetricAdherence      = "adherence_pct"
	MetricHold           = "hold_min"
	MetricACW            = "acw_min"
	MetricNPS            = "nps"
	MetricCriticalErrors = "critical_errors"
	MetricComplaintRate  = "complaint_rate"
	MetricTransfer       = "transfer_pct"
	MetricRepeatCall     = "repeat_call_pct"
	MetricSentiment      = "sentiment_score"
	MetricCallVolume     = "call_volume"
	MetricTrainingHours  = "training_hours"
	MetricCoachingOpen   = "coaching_open"
	MetricCoachingClosed = "coaching_closed"
)

// Metric describes one numeric column of the monthly dataset: how to read it
// from a row, its target when the band sheet carries one, and its direction.
type Metric struct {
	Key           string
	Column        string
	Label         string
	Unit          string
	LowerIsBetter bool
	Value         func(domain.MonthlyMetric) float64
	Target        func(domain.Target) float64
}

// HigherIsBetter is the direction most derivations take as a parameter
func (m Metric) HigherIsBetter() bool {
	return !m.LowerIsBetter
}

// Catalog lists every chartable metric in display order
var Catalog = []Metric{
	{
		Key: MetricQuality, Column: "Quality_Pct", Label: "Quality Score", Unit: "%",
		Value:  func(m domain.MonthlyMetric) float64 { return m.QualityPct },
		Target: func(t domain.Target) float64 { return t.QualityTarget },
	},
	{
		Key: MetricFCR, Column: "FCR_Pct", Label: "FCR", Unit: "%",
		Value:  func(m domain.MonthlyMetric) float64 { return m.FCRPct },
		Target: func(t domain.Target) float64 { return t.FCRTarget },
	},
	{
		Key: MetricCSAT, Column: "CSAT_Pct", Label: "CSAT", Unit: "%",
		Value:  func(m domain.MonthlyMetric) float64 { return m.CSATPct },
		Target: func(t domain.Target) float64 { return t.CSATTarget },
	},
	{
		Key: MetricAHT, Column: "AHT_Min", Label: "AHT", Unit: "min", LowerIsBetter: true,
		Value:  func(m domain.MonthlyMetric) float64 { return m.AHTMin },
		Target: func(t domain.Target) float64 { return t.AHTTarget },
	},
	{
		Key: MetricAdherence, Column: "Adherence_Pct", Label: "Adherence", Unit: "%",
		Value:  func(m domain.MonthlyMetric) float64 { return m.AdherencePct },
		Target: func(t domain.Target) float64 { return t.AdherenceTarget },
	},
	{
		Key: MetricHold, Column: "Hold_Min", Label: "Hold Time", Unit: "min", LowerIsBetter: true,
		Value:  func(m domain.MonthlyMetric) float64 { return m.HoldMin },
		Target: func(t domain.Target) float64 { return t.HoldTarget },
	},
	{
		Key: MetricACW, Column: "ACW_Min", Label: "ACW", Unit: "min", LowerIsBetter: true,
		Value:  func(m domain.MonthlyMetric) float64 { return m.ACWMin },
		Target: func(t domain.Target) float64 { return t.ACWTarget },
	},
	{
		Key: MetricNPS, Column: "NPS", Label: "NPS",
		Value:  func(m domain.MonthlyMetric) float64 { return m.NPS },
		Target: func(t domain.Target) float64 { return t.NPSTarget },
	},
	{
		Key: MetricCriticalErrors, Column: "Critical_Errors", Label: "Critical Errors", LowerIsBetter: true,
		Value: func(m domain.MonthlyMetric) float64 { return float64(m.CriticalErrors) },
	},
	{
		Key: MetricComplaintRate, Column: "Complaint_Rate", Label: "Complaint Rate", LowerIsBetter: true,
		Value: func(m domain.MonthlyMetric) float64 { return m.ComplaintRate },
	},
	{
		Key: MetricTransfer, Column: "Transfer_Pct", Label: "Transfer Rate", Unit: "%", LowerIsBetter: true,
		Value: func(m domain.MonthlyMetric) float64 { return m.TransferPct },
	},
	{
		Key: MetricRepeatCall, Column: "Repeat_Call_Pct", Label: "Repeat Call Rate", Unit: "%", LowerIsBetter: true,
		Value: func(m domain.MonthlyMetric) float64 { return m.RepeatCallPct },
	},
	{
		Key: MetricSentiment, Column: "Sentiment_Score", Label: "Sentiment",
		Value: func(m domain.MonthlyMetric) float64 { return m.SentimentScore },
	},
	{
		Key: MetricCallVolume, Column: "Call_Volume", Label: "Call Volume",
		Value: func(m domain.MonthlyMetric) float64 { return float64(m.CallVolume) },
	},
	{
		Key: MetricTrainingHours, Column: "Training_Hours", Label: "Training Hours", Unit: "hrs",
		Value: func(m domain.MonthlyMetric) float64 { return m.TrainingHours },
	},
	{
		Key: MetricCoachingOpen, Column: "Coaching_Open", Label: "Open Coaching Actions", LowerIsBetter: true,
		Value: func(m domain.MonthlyMetric) float64 { return float64(m.CoachingOpen) },
	},
	{
		Key: MetricCoachingClosed, Column: "Coaching_Closed", Label: "Closed Coaching Actions",
		Value: func(m domain.MonthlyMetric) float64 { return float64(m.CoachingClosed) },
	},
}

// ScorecardKeys are the eight targeted metrics of the individual scorecard,
// in tile order
var ScorecardKeys = []string{
	MetricQuality,
	MetricFCR,
	MetricCSAT,
	MetricAHT,
	MetricAdherence,
	MetricHold,
	MetricACW,
	MetricNPS,
}

// MetricByKey resolves a catalog entry from its API key
func MetricByKey(key string) (Metric, bool) {
	for _, m := range Catalog {
		if m.Key == key {
			return m, true
		}
	}
	return Metric{}, false
}

// MetricByColumn resolves a catalog entry from its dataset column name,
// as the benchmark sheet references metrics by column
func MetricByColumn(column string) (Metric, bool) {
	for _, m := range Catalog {
		if strings.EqualFold(m.Column, column) {
			return m, true
		}
	}
	return Metric{}, false
}
