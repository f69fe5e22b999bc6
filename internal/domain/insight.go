package domain

// ScoreBreakdown carries the overall performance score and its six weighted
// components, all on the 0-100 scale.
type ScoreBreakdown struct {
	Overall    float64 `json:"overall"`
	Quality    float64 `json:"quality"`
	FCR        float64 `json:"fcr"`
	CSAT       float64 `json:"csat"`
	AHT        float64 `json:"aht"`
	Adherence  float64 `json:"adherence"`
	Compliance float64 `json:"compliance"`
}

// ColleagueSummary is the explorer card of one colleague for the latest month
type ColleagueSummary struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Team              string   `json:"team"`
	TenureBand        string   `json:"tenure_band"`
	TenureMonths      int      `json:"tenure_months"`
	Month             string   `json:"month"`
	PerformanceScore  float64  `json:"performance_score"`
	PerformanceStatus string   `json:"performance_status"`
	StatusColor       string   `json:"status_color"`
	CoachingPriority  string   `json:"coaching_priority"`
	RiskFlags         []string `json:"risk_flags,omitempty"`
}

// ColleagueFilters narrows and orders the colleague explorer listing.
// Empty fields match everything; Sort accepts "score", "name" or "tenure".
type ColleagueFilters struct {
	Team       string
	TenureBand string
	Status     string
	Sort       string
}

// ScorecardEntry is one metric tile of the individual scorecard
type ScorecardEntry struct {
	Metric   string  `json:"metric"`
	Label    string  `json:"label"`
	Actual   float64 `json:"actual"`
	Target   float64 `json:"target"`
	Unit     string  `json:"unit"`
	RAG      string  `json:"rag"`
	RAGColor string  `json:"rag_color"`
}

// MetricTrend is the labelled trend of one metric over the recent months
type MetricTrend struct {
	Metric string `json:"metric"`
	Trend  string `json:"trend"`
	Icon   string `json:"icon"`
}

// GoalSummary counts a colleague's objectives by status
type GoalSummary struct {
	Total    int `json:"total"`
	Achieved int `json:"achieved"`
	OnTrack  int `json:"on_track"`
	AtRisk   int `json:"at_risk"`
	Behind   int `json:"behind"`
}

// ColleagueDetail is the full individual view of one colleague
type ColleagueDetail struct {
	Colleague         Colleague        `json:"colleague"`
	Month             string           `json:"month"`
	Score             ScoreBreakdown   `json:"score"`
	PerformanceStatus string           `json:"performance_status"`
	StatusColor       string           `json:"status_color"`
	CoachingPriority  string           `json:"coaching_priority"`
	RiskFlags         []string         `json:"risk_flags,omitempty"`
	Scorecard         []ScorecardEntry `json:"scorecard"`
	Trends            []MetricTrend    `json:"trends"`
	History           []MonthlyMetric  `json:"history"`
	Objectives        []Objective      `json:"objectives"`
	GoalSummary       GoalSummary      `json:"goal_summary"`
	PeerQuartile      string           `json:"peer_quartile"`
}

// StatusCount is one slice of the status distribution donut
type StatusCount struct {
	Status string `json:"status"`
	Color  string `json:"color"`
	Count  int    `json:"count"`
}

// BenchmarkComparison positions a team average against the industry references
type BenchmarkComparison struct {
	Metric          string  `json:"metric"`
	TeamAverage     float64 `json:"team_average"`
	IndustryAverage float64 `json:"industry_average"`
	TopQuartile     float64 `json:"top_quartile"`
	BottomQuartile  float64 `json:"bottom_quartile"`
	Position        string  `json:"position"`
}

// RiskAlert is one entry of the overview risk list
type RiskAlert struct {
	ColleagueID       string   `json:"colleague_id"`
	Name              string   `json:"name"`
	Team              string   `json:"team"`
	TenureBand        string   `json:"tenure_band"`
	TenureMonths      int      `json:"tenure_months"`
	PerformanceStatus string   `json:"performance_status"`
	PerformanceScore  float64  `json:"performance_score"`
	CoachingPriority  string   `json:"coaching_priority"`
	RiskFlags         []string `json:"risk_flags"`
}

// TenureBandSummary aggregates the latest month per tenure band
type TenureBandSummary struct {
	TenureBand    string  `json:"tenure_band"`
	Headcount     int     `json:"headcount"`
	AvgScore      float64 `json:"avg_score"`
	AvgQualityPct float64 `json:"avg_quality_pct"`
	AvgFCRPct     float64 `json:"avg_fcr_pct"`
	AvgCSATPct    float64 `json:"avg_csat_pct"`
}

// TeamOverview is the landing dashboard payload
type TeamOverview struct {
	Month              string                `json:"month"`
	Headcount          int                   `json:"headcount"`
	AvgQualityPct      float64               `json:"avg_quality_pct"`
	AvgFCRPct          float64               `json:"avg_fcr_pct"`
	AvgCSATPct         float64               `json:"avg_csat_pct"`
	AvgAHTMin          float64               `json:"avg_aht_min"`
	TotalCallVolume    int                   `json:"total_call_volume"`
	StatusDistribution []StatusCount         `json:"status_distribution"`
	IndustryComparison []BenchmarkComparison `json:"industry_comparison"`
	RiskAlerts         []RiskAlert           `json:"risk_alerts"`
	TenureBands        []TenureBandSummary   `json:"tenure_bands"`
}

// TrendPoint is one month of an aggregated series
type TrendPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// TrendSeriesGroup is a named line of the trends chart
type TrendSeriesGroup struct {
	Name   string       `json:"name"`
	Points []TrendPoint `json:"points"`
}

// TrendReport is the trends endpoint payload
type TrendReport struct {
	Metric string             `json:"metric"`
	Group  string             `json:"group"`
	Series []TrendSeriesGroup `json:"series"`
}

// Mover is one colleague's month-over-month change of a metric
type Mover struct {
	ColleagueID string  `json:"colleague_id"`
	Name        string  `json:"name"`
	Team        string  `json:"team"`
	Previous    float64 `json:"previous"`
	Current     float64 `json:"current"`
	Change      float64 `json:"change"`
}

// MoversReport lists the best and worst month-over-month moves of a metric
type MoversReport struct {
	Metric        string  `json:"metric"`
	LatestMonth   string  `json:"latest_month"`
	PreviousMonth string  `json:"previous_month"`
	MostImproved  []Mover `json:"most_improved"`
	NeedsSupport  []Mover `json:"needs_support"`
}
