package domain

import "time"

// Tenure bands in career order. The band decides which target row applies.
const (
	BandAttainingFoundation   = "Attaining Foundation"
	BandAttainingCompetence   = "Attaining Competence"
	BandMaintainingCompetence = "Maintaining Competence"
	BandMaintainingExcellence = "Maintaining Excellence"
)

// TenureBandOrder is the display and aggregation order of the bands
var TenureBandOrder = []string{
	BandAttainingFoundation,
	BandAttainingCompetence,
	BandMaintainingCompetence,
	BandMaintainingExcellence,
}

// Colleague is the immutable reference record of an advisor
type Colleague struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Team         string    `json:"team"`
	TenureBand   string    `json:"tenure_band"`
	TenureMonths int       `json:"tenure_months"`
	StartDate    time.Time `json:"start_date"`
}

// MonthlyMetric is one reporting row per (colleague, month)
type MonthlyMetric struct {
	ColleagueID    string    `json:"colleague_id"`
	Month          time.Time `json:"-"`
	MonthLabel     string    `json:"month"`
	QualityPct     float64   `json:"quality_pct"`
	FCRPct         float64   `json:"fcr_pct"`
	CSATPct        float64   `json:"csat_pct"`
	AHTMin         float64   `json:"aht_min"`
	AdherencePct   float64   `json:"adherence_pct"`
	HoldMin        float64   `json:"hold_min"`
	ACWMin         float64   `json:"acw_min"`
	NPS            float64   `json:"nps"`
	CriticalErrors int       `json:"critical_errors"`
	ComplaintRate  float64   `json:"complaint_rate"`
	TransferPct    float64   `json:"transfer_pct"`
	RepeatCallPct  float64   `json:"repeat_call_pct"`
	SentimentScore float64   `json:"sentiment_score"`
	CallVolume     int       `json:"call_volume"`
	TrainingHours  float64   `json:"training_hours"`
	CoachingOpen   int       `json:"coaching_open"`
	CoachingClosed int       `json:"coaching_closed"`
}

// Target holds the expected values for one tenure band
type Target struct {
	TenureBand      string  `json:"tenure_band"`
	QualityTarget   float64 `json:"quality_target"`
	FCRTarget       float64 `json:"fcr_target"`
	CSATTarget      float64 `json:"csat_target"`
	AHTTarget       float64 `json:"aht_target"`
	AdherenceTarget float64 `json:"adherence_target"`
	NPSTarget       float64 `json:"nps_target"`
	HoldTarget      float64 `json:"hold_target"`
	ACWTarget       float64 `json:"acw_target"`
}

// Objective statuses
const (
	ObjectiveAchieved = "Achieved"
	ObjectiveOnTrack  = "On Track"
	ObjectiveAtRisk   = "At Risk"
	ObjectiveBehind   = "Behind"
)

// Objective is one development goal of a colleague
type Objective struct {
	ColleagueID string    `json:"colleague_id"`
	Text        string    `json:"text"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	ProgressPct float64   `json:"progress_pct"`
	TargetDate  time.Time `json:"target_date"`
}

// Benchmark is one industry reference row per metric
type Benchmark struct {
	Metric          string  `json:"metric"`
	IndustryAverage float64 `json:"industry_average"`
	TopQuartile     float64 `json:"top_quartile"`
	BottomQuartile  float64 `json:"bottom_quartile"`
}
