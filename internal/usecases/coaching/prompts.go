package coaching

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opsvue/performance-coach-api/internal/domain"
)

// systemPrompt frames every generation request. It encodes the house rules
// of the coaching features: targets are tenure-adjusted and only metrics
// below their target may be raised as development areas.
const systemPrompt = `You are an expert AI Performance Coach for a UK banking contact centre. Your role is to help managers understand colleague performance, identify areas for improvement, and provide actionable coaching suggestions.

You have access to performance data including:
- Productivity metrics (Call Volume, AHT, Hold Time, ACW, Shrinkage, Adherence)
- Quality metrics (Quality Score, Critical Errors, Complaint Rate, Transfer Rate, Repeat Calls, FCR)
- Customer Experience metrics (CSAT, NPS, Sentiment Score)
- Learning metrics (Training Hours, Coaching Actions)
- Yearly objectives and development goals

IMPORTANT - TENURE-ADJUSTED TARGETS:
Targets are adjusted based on colleague tenure. You will be provided with both the colleague's actual performance AND their tenure-specific targets.

CRITICAL: Only flag a metric as an area for improvement if the actual value is BELOW the target for that colleague's tenure band. If a metric is AT or ABOVE target, it should be considered a strength or neutral - never a development area.

Tenure Bands:
- Attaining Foundation (0-3 months): New starters, learning basics - LOWER targets
- Attaining Competence (4-12 months): Building skills, increasing independence - MODERATE targets
- Maintaining Competence (13-24 months): Consistent performer, reliable - HIGHER targets
- Maintaining Excellence (25+ months): Expert, role model potential - HIGHEST targets

When providing coaching advice:
1. ALWAYS compare actuals to the provided tenure-adjusted targets
2. Be specific and actionable
3. Consider tenure - new starters need different support than experienced colleagues
4. Focus on 1-2 priority areas (ONLY metrics below target) rather than overwhelming with feedback
5. Suggest concrete next steps
6. Be encouraging while being honest about areas needing improvement
7. Reference UK banking context and compliance requirements where relevant

Always maintain a professional, supportive tone appropriate for manager-to-colleague coaching conversations.`

// Reference for complaint rate rows, aligned with the complaint risk flag
// threshold of complaints per thousand calls
const complaintRateReference = 7.0

const (
	aboveTarget = "ABOVE TARGET"
	belowTarget = "BELOW TARGET"
)

func targetStatus(actual, target float64, higherIsBetter bool) string {
	if higherIsBetter {
		if actual >= target {
			return aboveTarget
		}
		return belowTarget
	}
	if actual <= target {
		return aboveTarget
	}
	return belowTarget
}

// formatNumber renders a value the short way, without trailing zeros
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func writeLine(b *strings.Builder, format string, args ...any) {
	fmt.Fprintf(b, format+"\n", args...)
}

func trimLines(b *strings.Builder) string {
	return strings.TrimRight(b.String(), "\n")
}

func formatObjectives(objectives []domain.Objective) string {
	if len(objectives) == 0 {
		return "No objectives recorded."
	}

	var b strings.Builder
	for _, objective := range objectives {
		writeLine(&b, "- %s: %s (%s%% complete)", objective.Text, objective.Status, formatNumber(objective.ProgressPct))
	}

	return trimLines(&b)
}

func metricTrendLine(row domain.MonthlyMetric) string {
	return fmt.Sprintf("%s: Quality=%s%%, FCR=%s%%, CSAT=%s%%, AHT=%smin, NPS=%s, Errors=%d",
		row.MonthLabel,
		formatNumber(row.QualityPct), formatNumber(row.FCRPct), formatNumber(row.CSATPct),
		formatNumber(row.AHTMin), formatNumber(row.NPS), row.CriticalErrors)
}

// formatHistory prints the newest months of a colleague oldest first, so the
// model reads the trend in chronological order
func formatHistory(history []domain.MonthlyMetric) string {
	if len(history) == 0 {
		return "No metric history recorded."
	}

	rows := history
	if len(rows) > promptHistoryMonths {
		rows = rows[:promptHistoryMonths]
	}

	var b strings.Builder
	for i := len(rows) - 1; i >= 0; i-- {
		writeLine(&b, "%s", metricTrendLine(rows[i]))
	}

	return trimLines(&b)
}

func writeProfile(b *strings.Builder, colleague domain.Colleague) {
	b.WriteString("COLLEAGUE PROFILE:\n")
	fmt.Fprintf(b, "- Name: %s\n", colleague.Name)
	fmt.Fprintf(b, "- Team: %s\n", colleague.Team)
	fmt.Fprintf(b, "- Tenure: %d months (%s)\n", colleague.TenureMonths, colleague.TenureBand)
}

type statusRow struct {
	label          string
	actual, target float64
	unit           string
	higherIsBetter bool
}

func (r statusRow) status() string {
	return targetStatus(r.actual, r.target, r.higherIsBetter)
}

// statusRows lists the coached metrics of one month against their targets,
// in the order the prompts present them
func statusRows(row domain.MonthlyMetric, target domain.Target) []statusRow {
	return []statusRow{
		{"Quality Score", row.QualityPct, target.QualityTarget, "%", true},
		{"FCR", row.FCRPct, target.FCRTarget, "%", true},
		{"CSAT", row.CSATPct, target.CSATTarget, "%", true},
		{"NPS", row.NPS, target.NPSTarget, "", true},
		{"AHT", row.AHTMin, target.AHTTarget, " min", false},
		{"Adherence", row.AdherencePct, target.AdherenceTarget, "%", true},
		{"Hold Time", row.HoldMin, target.HoldTarget, " min", false},
		{"ACW", row.ACWMin, target.ACWTarget, " min", false},
		{"Critical Errors", float64(row.CriticalErrors), 0, "", false},
		{"Complaint Rate", row.ComplaintRate, complaintRateReference, "", false},
	}
}

func writeTargetTable(b *strings.Builder, row domain.MonthlyMetric, target domain.Target) {
	b.WriteString("| Metric | Actual | Target | Status |\n")
	b.WriteString("|--------|--------|--------|--------|\n")

	for _, r := range statusRows(row, target) {
		fmt.Fprintf(b, "| %s | %s%s | %s%s | %s |\n",
			r.label,
			formatNumber(r.actual), r.unit,
			formatNumber(r.target), r.unit,
			r.status(),
		)
	}
}

func buildSummaryPrompt(colleague domain.Colleague, row domain.MonthlyMetric, target domain.Target, objectives string) string {
	var b strings.Builder

	b.WriteString("Based on the following colleague data, provide a concise performance summary with strengths, areas for improvement, coaching recommendations, AND a tailored support plan.\n\n")
	writeProfile(&b, colleague)
	b.WriteString("\nIMPORTANT: This colleague's targets are adjusted for their tenure band. Only flag metrics BELOW TARGET as improvement areas.\n\n")
	b.WriteString("PERFORMANCE vs TENURE-ADJUSTED TARGETS:\n")
	writeTargetTable(&b, row, target)
	b.WriteString("\nOBJECTIVES STATUS:\n")
	b.WriteString(objectives)
	b.WriteString("\n\nProvide a comprehensive support plan with the following sections:\n\n")
	b.WriteString("## Performance Summary\nA 2-3 sentence overall summary of this colleague's performance.\n\n")
	b.WriteString("## Strengths\nTop 2 strengths (metrics that are ABOVE TARGET).\n\n")
	b.WriteString("## Areas for Support\nTop 2 areas needing support (ONLY metrics that are BELOW TARGET - if none, say \"Meeting all targets\").\n\n")
	b.WriteString("## Coaching Recommendations\n2-3 specific coaching actions for the manager to take in the next 1:1.\n\n")
	b.WriteString("## Recommended Support & Learning Journey\nSuggest a sequenced learning journey linked to this colleague's specific metrics (what to do first, second, etc.) with a suggested timeline.\n\n")
	b.WriteString("## Manager Actions Required\nList any specific actions the manager must take to support this colleague's development (e.g., completing their own training, scheduling specific conversations, setting up shadowing).")

	return b.String()
}

func buildAnalysisPrompt(colleague domain.Colleague, target domain.Target, history, peers string) string {
	var b strings.Builder

	b.WriteString("Analyze why this colleague may be struggling and suggest interventions.\n\n")
	writeProfile(&b, colleague)
	b.WriteString("\nTENURE-ADJUSTED TARGETS FOR THIS COLLEAGUE:\n")
	fmt.Fprintf(&b, "- Quality: %s%%\n", formatNumber(target.QualityTarget))
	fmt.Fprintf(&b, "- FCR: %s%%\n", formatNumber(target.FCRTarget))
	fmt.Fprintf(&b, "- CSAT: %s%%\n", formatNumber(target.CSATTarget))
	fmt.Fprintf(&b, "- NPS: %s\n", formatNumber(target.NPSTarget))
	fmt.Fprintf(&b, "- AHT: %s min\n", formatNumber(target.AHTTarget))
	fmt.Fprintf(&b, "- Adherence: %s%%\n", formatNumber(target.AdherenceTarget))
	fmt.Fprintf(&b, "- Hold Time: %s min\n", formatNumber(target.HoldTarget))
	fmt.Fprintf(&b, "- Complaint Rate: %s\n", formatNumber(complaintRateReference))
	b.WriteString("\n3-MONTH PERFORMANCE TREND:\n")
	b.WriteString(history)
	b.WriteString("\n\nCOMPARISON TO PEERS (same tenure band):\n")
	b.WriteString(peers)
	b.WriteString("\n\nIMPORTANT: When analyzing, compare performance to the TENURE-ADJUSTED TARGETS above, not absolute values.\n\n")
	b.WriteString("Provide:\n")
	b.WriteString("1. Root cause analysis - what appears to be driving the performance issues?\n")
	b.WriteString("2. Is this a skills gap, motivation issue, process issue, or something else?\n")
	b.WriteString("3. Specific intervention recommendations\n")
	b.WriteString("4. Suggested timeline for improvement\n")
	b.WriteString("5. Warning signs to monitor")

	return b.String()
}

func buildPlanPrompt(colleague domain.Colleague, focusArea, currentState, targetState string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a detailed coaching plan for improving %s.\n\n", focusArea)
	b.WriteString("COLLEAGUE PROFILE:\n")
	fmt.Fprintf(&b, "- Name: %s\n", colleague.Name)
	fmt.Fprintf(&b, "- Tenure: %d months (%s)\n", colleague.TenureMonths, colleague.TenureBand)
	b.WriteString("\nCURRENT STATE:\n")
	b.WriteString(currentState)
	b.WriteString("\n\nTARGET STATE:\n")
	b.WriteString(targetState)
	b.WriteString("\n\nCreate a coaching plan including:\n")
	b.WriteString("1. Specific, measurable goal\n")
	b.WriteString("2. Week-by-week action items (4-week plan)\n")
	b.WriteString("3. Resources or training needed\n")
	b.WriteString("4. How to measure progress\n")
	b.WriteString("5. Conversation starters for the manager\n")
	b.WriteString("6. Potential barriers and how to overcome them")

	return b.String()
}

func buildTeamPrompt(team, teamMetrics, benchmarks string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze the performance of %s team and identify improvement opportunities.\n\n", team)
	b.WriteString("TEAM METRICS (averages):\n")
	b.WriteString(teamMetrics)
	b.WriteString("\n\nINDUSTRY BENCHMARKS:\n")
	b.WriteString(benchmarks)
	b.WriteString("\n\nProvide:\n")
	b.WriteString("1. Overall team health assessment\n")
	b.WriteString("2. Top performing areas\n")
	b.WriteString("3. Areas needing focus\n")
	b.WriteString("4. Recommendations for team-level interventions\n")
	b.WriteString("5. Patterns or trends to watch")

	return b.String()
}

func buildChatPrompt(question, dataContext string, history []domain.ChatMessage) string {
	var b strings.Builder

	b.WriteString("Answer the following question about contact centre performance data.\n\n")
	b.WriteString("AVAILABLE DATA CONTEXT:\n")
	b.WriteString(dataContext)
	if len(history) > 0 {
		b.WriteString("\n\nCONVERSATION SO FAR:")
		for _, message := range history {
			speaker := "Manager"
			if message.Role == domain.ChatRoleAssistant {
				speaker = "Coach"
			}
			fmt.Fprintf(&b, "\n%s: %s", speaker, message.Content)
		}
	}
	b.WriteString("\n\nQUESTION: ")
	b.WriteString(question)
	b.WriteString("\n\nProvide a helpful, accurate response based on the data. If you need to make assumptions, state them clearly. If the question cannot be answered with the available data, explain what additional information would be needed.")

	return b.String()
}
