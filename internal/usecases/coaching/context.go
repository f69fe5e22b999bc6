package coaching

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/opsvue/performance-coach-api/internal/domain"
	"github.com/opsvue/performance-coach-api/internal/scoring"
)

// chatContext assembles the dataset context for a chat question. Colleagues
// whose first or full name appears in the question get a detailed block;
// everyone else only shows up in the compact key metrics table.
func (s *Service) chatContext(question string) string {
	colleagues := s.dataset.Colleagues()
	if len(colleagues) == 0 {
		return "No dataset loaded."
	}

	var b strings.Builder

	b.WriteString("TEAM SUMMARY:\n")
	writeLine(&b, "- Total colleagues: %d", len(colleagues))
	writeLine(&b, "- Teams: %s", strings.Join(teamNames(colleagues), ", "))

	var total float64
	scored, support := 0, 0
	latest := s.dataset.LatestMetrics()
	for _, row := range latest {
		colleague, ok := s.dataset.ColleagueByID(row.ColleagueID)
		if !ok {
			continue
		}
		target, _ := s.dataset.TargetFor(colleague.TenureBand)
		score := scoring.OverallScore(row, target)
		total += score.Overall
		scored++

		status := scoring.PerformanceStatus(score.Overall)
		if status == scoring.StatusFocus || status == scoring.StatusBelow {
			support++
		}
	}
	if scored > 0 {
		writeLine(&b, "- Average performance score: %.1f", total/float64(scored))
	}
	writeLine(&b, "- Colleagues needing support: %d", support)

	if mentioned := mentionedColleagues(question, colleagues); len(mentioned) > 0 {
		b.WriteString("\n=== DETAILED DATA FOR MENTIONED COLLEAGUES ===\n")
		for _, colleague := range mentioned {
			s.writeColleagueBlock(&b, colleague)
		}
	}

	b.WriteString("\n=== ALL COLLEAGUES - KEY METRICS (Latest Month) ===\n")
	b.WriteString("Name | Team | Band | Score | Status | Quality | FCR | CSAT | NPS | AHT | Errors | Priority\n")
	for _, row := range latest {
		colleague, ok := s.dataset.ColleagueByID(row.ColleagueID)
		if !ok {
			continue
		}
		target, _ := s.dataset.TargetFor(colleague.TenureBand)
		score := scoring.OverallScore(row, target)
		writeLine(&b, "%s | %s | %s | %.1f | %s | %s%% | %s%% | %s%% | %s | %smin | %d | %s",
			colleague.Name, colleague.Team, colleague.TenureBand,
			score.Overall, scoring.PerformanceStatus(score.Overall),
			formatNumber(row.QualityPct), formatNumber(row.FCRPct), formatNumber(row.CSATPct),
			formatNumber(row.NPS), formatNumber(row.AHTMin), row.CriticalErrors,
			scoring.CoachingPriority(row, target))
	}

	b.WriteString("\n=== INDUSTRY BENCHMARKS (UK Banking) ===\n")
	b.WriteString(s.benchmarkLines())
	b.WriteString("\n")

	b.WriteString("\n=== TENURE BAND TARGETS ===\n")
	for _, target := range s.dataset.Targets() {
		writeLine(&b, "- %s: Quality %s%%, FCR %s%%, CSAT %s%%, NPS %s, AHT %s min, Adherence %s%%, Hold %s min, ACW %s min",
			target.TenureBand,
			formatNumber(target.QualityTarget), formatNumber(target.FCRTarget), formatNumber(target.CSATTarget),
			formatNumber(target.NPSTarget), formatNumber(target.AHTTarget), formatNumber(target.AdherenceTarget),
			formatNumber(target.HoldTarget), formatNumber(target.ACWTarget))
	}

	return trimLines(&b)
}

// mentionedColleagues matches on the lowercased first or full name anywhere
// in the question
func mentionedColleagues(question string, colleagues []domain.Colleague) []domain.Colleague {
	lowered := strings.ToLower(question)

	var mentioned []domain.Colleague
	for _, colleague := range colleagues {
		fullName := strings.ToLower(colleague.Name)
		firstName, _, _ := strings.Cut(fullName, " ")
		if strings.Contains(lowered, fullName) || (firstName != "" && strings.Contains(lowered, firstName)) {
			mentioned = append(mentioned, colleague)
		}
	}

	return mentioned
}

func (s *Service) writeColleagueBlock(b *strings.Builder, colleague domain.Colleague) {
	fmt.Fprintf(b, "\n--- %s (%s) ---\n", colleague.Name, colleague.ID)
	writeLine(b, "Team: %s | Tenure: %d months (%s) | Start Date: %s",
		colleague.Team, colleague.TenureMonths, colleague.TenureBand, colleague.StartDate.Format(time.DateOnly))

	history := s.dataset.MetricsFor(colleague.ID)
	if len(history) == 0 {
		b.WriteString("No metric rows recorded.\n")
		return
	}

	row := history[0]
	target, _ := s.dataset.TargetFor(colleague.TenureBand)
	score := scoring.OverallScore(row, target)
	writeLine(b, "Performance Score: %.1f | Status: %s | Coaching Priority: %s",
		score.Overall, scoring.PerformanceStatus(score.Overall), scoring.CoachingPriority(row, target))

	b.WriteString("Latest Month Metrics:\n")
	writeLine(b, "- Quality Score: %s%% (Target: %s%%)", formatNumber(row.QualityPct), formatNumber(target.QualityTarget))
	writeLine(b, "- FCR: %s%% (Target: %s%%)", formatNumber(row.FCRPct), formatNumber(target.FCRTarget))
	writeLine(b, "- CSAT: %s%% (Target: %s%%)", formatNumber(row.CSATPct), formatNumber(target.CSATTarget))
	writeLine(b, "- NPS: %s (Target: %s)", formatNumber(row.NPS), formatNumber(target.NPSTarget))
	writeLine(b, "- AHT: %s min (Target: %s min)", formatNumber(row.AHTMin), formatNumber(target.AHTTarget))
	writeLine(b, "- Adherence: %s%% (Target: %s%%)", formatNumber(row.AdherencePct), formatNumber(target.AdherenceTarget))
	writeLine(b, "- Hold Time: %s min (Target: %s min)", formatNumber(row.HoldMin), formatNumber(target.HoldTarget))
	writeLine(b, "- ACW: %s min (Target: %s min)", formatNumber(row.ACWMin), formatNumber(target.ACWTarget))
	writeLine(b, "- Critical Errors: %d", row.CriticalErrors)
	writeLine(b, "- Complaint Rate: %s per 1000 calls", formatNumber(row.ComplaintRate))
	writeLine(b, "- Transfer Rate: %s%%", formatNumber(row.TransferPct))
	writeLine(b, "- Repeat Calls: %s%%", formatNumber(row.RepeatCallPct))
	writeLine(b, "- Sentiment Score: %s", formatNumber(row.SentimentScore))
	writeLine(b, "- Training Hours: %s", formatNumber(row.TrainingHours))
	writeLine(b, "- Coaching Actions: %d open, %d closed", row.CoachingOpen, row.CoachingClosed)

	b.WriteString("3-Month Trend Data:\n")
	b.WriteString(formatHistory(history))
	b.WriteString("\n")

	b.WriteString("Yearly Objectives:\n")
	b.WriteString(formatObjectives(s.dataset.ObjectivesFor(colleague.ID)))
	b.WriteString("\n")
}

func teamNames(colleagues []domain.Colleague) []string {
	seen := make(map[string]struct{})
	var teams []string
	for _, colleague := range colleagues {
		if _, ok := seen[colleague.Team]; ok {
			continue
		}
		seen[colleague.Team] = struct{}{}
		teams = append(teams, colleague.Team)
	}
	sort.Strings(teams)

	return teams
}
