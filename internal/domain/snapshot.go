package domain

import "time"

// TeamSnapshotMetrics is the aggregated payload persisted for one team and month
type TeamSnapshotMetrics struct {
	Headcount     int            `json:"headcount"`
	AvgScore      float64        `json:"avg_score"`
	AvgQualityPct float64        `json:"avg_quality_pct"`
	AvgFCRPct     float64        `json:"avg_fcr_pct"`
	AvgCSATPct    float64        `json:"avg_csat_pct"`
	AvgAHTMin     float64        `json:"avg_aht_min"`
	CallVolume    int            `json:"call_volume"`
	StatusCounts  map[string]int `json:"status_counts"`
}

// TeamSnapshot is one persisted monthly aggregate of a team
type TeamSnapshot struct {
	ID        int                 `json:"id"`
	Month     string              `json:"month"`
	Team      string              `json:"team"`
	Metrics   TeamSnapshotMetrics `json:"metrics"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// DatasetStatus reports the health of the in-memory dataset
type DatasetStatus struct {
	Loaded      bool           `json:"loaded"`
	LoadedAt    time.Time      `json:"loaded_at"`
	SourceDir   string         `json:"source_dir"`
	Months      []string       `json:"months"`
	LatestMonth string         `json:"latest_month"`
	Rows        map[string]int `json:"rows"`
	FailedLoads int            `json:"failed_loads"`
	LastError   string         `json:"last_error,omitempty"`
}
