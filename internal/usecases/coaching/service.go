package coaching

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/opsvue/performance-coach-api/infrastructure/dataset"
	"github.com/opsvue/performance-coach-api/infrastructure/integrator/anthropic"
	"github.com/opsvue/performance-coach-api/internal/config"
	"github.com/opsvue/performance-coach-api/internal/domain"
	"github.com/opsvue/performance-coach-api/internal/scoring"
)

var (
	ErrColleagueNotFound = errors.New("colleague not found")
	ErrTeamNotFound      = errors.New("team not found")
	ErrSessionNotFound   = errors.New("chat session not found")
	ErrEmptyQuestion     = errors.New("question must not be empty")
	ErrNoData            = errors.New("no dataset loaded")
)

// History window fed into the analysis and chat prompts
const promptHistoryMonths = 3

type Service struct {
	cfg       *config.Config
	dataset   dataset.Repository
	generator *anthropic.Generator
	sessions  *sessionStore
}

func NewService(cfg *config.Config, data dataset.Repository, generator *anthropic.Generator) Coach {
	return &Service{
		cfg:       cfg,
		dataset:   data,
		generator: generator,
		sessions:  newSessionStore(cfg.AICoach.MaxChatTurns),
	}
}

// Enabled reports whether live generation is configured
func (s *Service) Enabled() bool {
	return s.generator.Enabled()
}

// ColleagueSummary writes a performance summary with strengths, support
// areas and recommended actions for one colleague
func (s *Service) ColleagueSummary(ctx context.Context, colleagueID string) (string, error) {
	colleague, history, target, err := s.colleagueSnapshot(colleagueID)
	if err != nil {
		return "", err
	}

	prompt := buildSummaryPrompt(colleague, history[0], target, formatObjectives(s.dataset.ObjectivesFor(colleagueID)))

	return s.generator.Generate(ctx, "summary", systemPrompt, prompt), nil
}

// StrugglingAnalysis investigates why a colleague is behind, using their
// recent months and tenure band peers
func (s *Service) StrugglingAnalysis(ctx context.Context, colleagueID string) (string, error) {
	colleague, history, target, err := s.colleagueSnapshot(colleagueID)
	if err != nil {
		return "", err
	}

	prompt := buildAnalysisPrompt(colleague, target, formatHistory(history), s.peerComparison(colleague))

	return s.generator.Generate(ctx, "analysis", systemPrompt, prompt), nil
}

// CoachingPlan writes a four week plan for a focus area. An empty focus
// area falls back to the colleague's coaching priority.
func (s *Service) CoachingPlan(ctx context.Context, colleagueID, focusArea string) (string, error) {
	colleague, history, target, err := s.colleagueSnapshot(colleagueID)
	if err != nil {
		return "", err
	}
	latest := history[0]

	focusArea = strings.TrimSpace(focusArea)
	if focusArea == "" {
		focusArea = scoring.CoachingPriority(latest, target)
		if focusArea == scoring.PriorityMaintain {
			focusArea = "sustained performance"
		}
	}

	score := scoring.OverallScore(latest, target)

	var current strings.Builder
	writeLine(&current, "- Performance Score: %s/100 (%s)", formatNumber(score.Overall), scoring.PerformanceStatus(score.Overall))
	for _, r := range statusRows(latest, target) {
		writeLine(&current, "- %s: %s%s (target %s%s, %s)", r.label, formatNumber(r.actual), r.unit, formatNumber(r.target), r.unit, r.status())
	}

	var expected strings.Builder
	writeLine(&expected, "Meet the tenure-adjusted targets for the %s band:", colleague.TenureBand)
	for _, r := range statusRows(latest, target) {
		writeLine(&expected, "- %s: %s%s", r.label, formatNumber(r.target), r.unit)
	}

	prompt := buildPlanPrompt(colleague, focusArea, trimLines(&current), trimLines(&expected))

	return s.generator.Generate(ctx, "plan", systemPrompt, prompt), nil
}

// TeamAnalysis reviews one team against the industry benchmarks
func (s *Service) TeamAnalysis(ctx context.Context, team string) (string, error) {
	month, ok := s.dataset.LatestMonth()
	if !ok {
		return "", ErrNoData
	}

	rows := s.dataset.TeamMetrics(team, month)
	if len(rows) == 0 {
		return "", ErrTeamNotFound
	}

	var quality, fcr, csat, aht, adherence, nps, complaints float64
	var volume, criticalErrors int
	for _, row := range rows {
		quality += row.QualityPct
		fcr += row.FCRPct
		csat += row.CSATPct
		aht += row.AHTMin
		adherence += row.AdherencePct
		nps += row.NPS
		complaints += row.ComplaintRate
		volume += row.CallVolume
		criticalErrors += row.CriticalErrors
	}
	n := float64(len(rows))

	var teamMetrics strings.Builder
	writeLine(&teamMetrics, "- Headcount: %d", len(rows))
	writeLine(&teamMetrics, "- Quality Score: %.1f%%", quality/n)
	writeLine(&teamMetrics, "- FCR: %.1f%%", fcr/n)
	writeLine(&teamMetrics, "- CSAT: %.1f%%", csat/n)
	writeLine(&teamMetrics, "- NPS: %.1f", nps/n)
	writeLine(&teamMetrics, "- AHT: %.1f min", aht/n)
	writeLine(&teamMetrics, "- Adherence: %.1f%%", adherence/n)
	writeLine(&teamMetrics, "- Complaint Rate: %.1f per 1000 calls", complaints/n)
	writeLine(&teamMetrics, "- Critical Errors (total): %d", criticalErrors)
	writeLine(&teamMetrics, "- Call Volume (total): %d", volume)

	prompt := buildTeamPrompt(team, trimLines(&teamMetrics), s.benchmarkLines())

	return s.generator.Generate(ctx, "team", systemPrompt, prompt), nil
}

// Chat answers a free-form question with the dataset as context and returns
// the session including the new answer
func (s *Service) Chat(ctx context.Context, sessionID, question string) (*domain.ChatSession, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	var session *domain.ChatSession
	if sessionID == "" {
		created, err := s.sessions.create()
		if err != nil {
			return nil, errors.Wrap(err, "failed to create chat session")
		}
		session = created
	} else {
		existing, ok := s.sessions.get(sessionID)
		if !ok {
			return nil, ErrSessionNotFound
		}
		session = existing
	}

	prompt := buildChatPrompt(question, s.chatContext(question), session.Messages)
	answer := s.generator.Generate(ctx, "chat", systemPrompt, prompt)

	now := time.Now().UTC()
	updated, ok := s.sessions.append(session.ID,
		domain.ChatMessage{Role: domain.ChatRoleUser, Content: question, CreatedAt: now},
		domain.ChatMessage{Role: domain.ChatRoleAssistant, Content: answer, CreatedAt: now},
	)
	if !ok {
		// Session was cleared while the model was answering
		logrus.WithField("session_id", session.ID).Warn("coach: chat session vanished during generation")
		return nil, ErrSessionNotFound
	}

	return updated, nil
}

// ChatTranscript returns a session's messages
func (s *Service) ChatTranscript(sessionID string) (*domain.ChatSession, error) {
	session, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// ClearChat removes a session
func (s *Service) ClearChat(sessionID string) error {
	if !s.sessions.delete(sessionID) {
		return ErrSessionNotFound
	}

	return nil
}

// colleagueSnapshot resolves a colleague with their metric history, newest
// month first, and the targets of their band
func (s *Service) colleagueSnapshot(colleagueID string) (domain.Colleague, []domain.MonthlyMetric, domain.Target, error) {
	colleague, ok := s.dataset.ColleagueByID(colleagueID)
	if !ok {
		return domain.Colleague{}, nil, domain.Target{}, ErrColleagueNotFound
	}

	history := s.dataset.MetricsFor(colleagueID)
	if len(history) == 0 {
		return domain.Colleague{}, nil, domain.Target{}, ErrColleagueNotFound
	}

	target, _ := s.dataset.TargetFor(colleague.TenureBand)

	return colleague, history, target, nil
}

// peerComparison averages the latest month of the colleague's tenure band
func (s *Service) peerComparison(colleague domain.Colleague) string {
	var quality, fcr, csat, aht, nps float64
	peers := 0

	for _, row := range s.dataset.LatestMetrics() {
		peer, ok := s.dataset.ColleagueByID(row.ColleagueID)
		if !ok || peer.TenureBand != colleague.TenureBand {
			continue
		}
		quality += row.QualityPct
		fcr += row.FCRPct
		csat += row.CSATPct
		aht += row.AHTMin
		nps += row.NPS
		peers++
	}

	if peers == 0 {
		return "No peers in the same tenure band."
	}

	n := float64(peers)
	return fmt.Sprintf("Tenure band average across %d colleagues: Quality=%.1f%%, FCR=%.1f%%, CSAT=%.1f%%, AHT=%.1fmin, NPS=%.1f",
		peers, quality/n, fcr/n, csat/n, aht/n, nps/n)
}

func (s *Service) benchmarkLines() string {
	var b strings.Builder

	for _, benchmark := range s.dataset.Benchmarks() {
		label := benchmark.Metric
		if metric, ok := scoring.MetricByColumn(benchmark.Metric); ok {
			label = metric.Label
		}
		writeLine(&b, "- %s: industry average %s, top quartile %s, bottom quartile %s",
			label, formatNumber(benchmark.IndustryAverage), formatNumber(benchmark.TopQuartile), formatNumber(benchmark.BottomQuartile))
	}

	if b.Len() == 0 {
		return "No industry benchmarks loaded."
	}

	return trimLines(&b)
}
