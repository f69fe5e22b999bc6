package scoring

import "github.com/opsvue/performance-coach-api/internal/domain"

// Performance status labels, best first
const (
	StatusRoleModel = "Role Model"
	StatusStrong    = "Strong"
	StatusOnTrack   = "On Track"
	StatusFocus     = "Focus"
	StatusBelow     = "Below"
)

// StatusOrder is the display order of the status distribution
var StatusOrder = []string{
	StatusRoleModel,
	StatusStrong,
	StatusOnTrack,
	StatusFocus,
	StatusBelow,
}

// RAG labels
const (
	RAGGreen = "Green"
	RAGAmber = "Amber"
	RAGRed   = "Red"
)

// PriorityMaintain is returned when no coached metric misses its target
const PriorityMaintain = "Maintain Performance"

var statusColors = map[string]string{
	StatusRoleModel: "#10B981",
	StatusStrong:    "#3B82F6",
	StatusOnTrack:   "#6366F1",
	StatusFocus:     "#F59E0B",
	StatusBelow:     "#EF4444",
}

var ragColors = map[string]string{
	RAGGreen: "#10B981",
	RAGAmber: "#F59E0B",
	RAGRed:   "#EF4444",
}

// PerformanceStatus maps an overall score to its status label
func PerformanceStatus(score float64) string {
	switch {
	case score >= 90:
		return StatusRoleModel
	case score >= 80:
		return StatusStrong
	case score >= 65:
		return StatusOnTrack
	case score >= 50:
		return StatusFocus
	default:
		return StatusBelow
	}
}

// StatusColor returns the dashboard colour of a status label
func StatusColor(status string) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return "#6B7280"
}

// MetricRAG rates a single metric against its target
func MetricRAG(actual, target float64, higherIsBetter bool) string {
	var ratio float64
	if higherIsBetter {
		if target > 0 {
			ratio = actual / target
		}
	} else {
		if actual > 0 {
			ratio = target / actual
		}
	}

	switch {
	case ratio >= 1.0:
		return RAGGreen
	case ratio >= 0.9:
		return RAGAmber
	default:
		return RAGRed
	}
}

// RAGColor returns the dashboard colour of a RAG label
func RAGColor(rag string) string {
	if c, ok := ragColors[rag]; ok {
		return c
	}
	return "#6B7280"
}

type priorityMetric struct {
	name         string
	actual       float64
	target       float64
	higherBetter bool
}

// CoachingPriority names the coached metric with the largest relative gap to
// target. Ties keep the earlier metric; no gap means the colleague should
// maintain performance.
func CoachingPriority(m domain.MonthlyMetric, t domain.Target) string {
	metrics := []priorityMetric{
		{"Quality", m.QualityPct, t.QualityTarget, true},
		{"FCR", m.FCRPct, t.FCRTarget, true},
		{"CSAT", m.CSATPct, t.CSATTarget, true},
		{"AHT", m.AHTMin, t.AHTTarget, false},
		{"Adherence", m.AdherencePct, t.AdherenceTarget, true},
	}

	maxGap := 0.0
	priority := ""

	for _, pm := range metrics {
		var gap float64
		if pm.target > 0 {
			if pm.higherBetter {
				gap = (pm.target - pm.actual) / pm.target
			} else {
				gap = (pm.actual - pm.target) / pm.target
			}
		}

		if gap > maxGap {
			maxGap = gap
			priority = pm.name
		}
	}

	if priority == "" {
		return PriorityMaintain
	}
	return priority
}

// Risk flag labels
const (
	RiskCompliance = "Compliance Risk"
	RiskQuality    = "Quality Risk"
	RiskCX         = "CX Risk"
	RiskComplaint  = "Complaint Risk"
)

// RiskFlags collects the risk conditions a month's figures trigger.
// Returns nil when none apply.
func RiskFlags(m domain.MonthlyMetric) []string {
	var risks []string

	if m.CriticalErrors > 0 {
		risks = append(risks, RiskCompliance)
	}
	if m.QualityPct < 75 {
		risks = append(risks, RiskQuality)
	}
	if m.CSATPct < 75 {
		risks = append(risks, RiskCX)
	}
	if m.ComplaintRate > 7 {
		risks = append(risks, RiskComplaint)
	}

	return risks
}

// PeerQuartile places a score within its peer group by percentile rank.
// Fewer than four peers is not a meaningful comparison.
func PeerQuartile(score float64, peerScores []float64) string {
	if len(peerScores) < 4 {
		return "N/A"
	}

	below := 0
	for _, s := range peerScores {
		if s < score {
			below++
		}
	}
	percentile := float64(below) / float64(len(peerScores)) * 100

	switch {
	case percentile >= 75:
		return "Q1 (Top 25%)"
	case percentile >= 50:
		return "Q2"
	case percentile >= 25:
		return "Q3"
	default:
		return "Q4 (Bottom 25%)"
	}
}

// SummariseGoals counts a colleague's objectives by status
func SummariseGoals(objectives []domain.Objective) domain.GoalSummary {
	summary := domain.GoalSummary{Total: len(objectives)}

	for _, o := range objectives {
		switch o.Status {
		case domain.ObjectiveAchieved:
			summary.Achieved++
		case domain.ObjectiveOnTrack:
			summary.OnTrack++
		case domain.ObjectiveAtRisk:
			summary.AtRisk++
		case domain.ObjectiveBehind:
			summary.Behind++
		}
	}

	return summary
}
