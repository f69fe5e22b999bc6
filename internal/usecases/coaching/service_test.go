package coaching

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	datasetmocks "github.com/opsvue/performance-coach-api/infrastructure/dataset/mocks"
	"github.com/opsvue/performance-coach-api/infrastructure/integrator/anthropic"
	clientmocks "github.com/opsvue/performance-coach-api/infrastructure/integrator/anthropic/anthropicclient/mocks"
	"github.com/opsvue/performance-coach-api/internal/config"
	"github.com/opsvue/performance-coach-api/internal/domain"
)

var coachMonth = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func coachTarget() domain.Target {
	return domain.Target{
		TenureBand:      domain.BandMaintainingCompetence,
		QualityTarget:   90,
		FCRTarget:       78,
		CSATTarget:      85,
		AHTTarget:       5.5,
		AdherenceTarget: 92,
		NPSTarget:       40,
		HoldTarget:      1.0,
		ACWTarget:       2.0,
	}
}

func coachColleagues() map[string]domain.Colleague {
	return map[string]domain.Colleague{
		"C001": {
			ID: "C001", Name: "Amira Shah", Team: "Billing",
			TenureBand: domain.BandMaintainingCompetence, TenureMonths: 18,
			StartDate: time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC),
		},
		"C002": {
			ID: "C002", Name: "Dan Okafor", Team: "Billing",
			TenureBand: domain.BandMaintainingCompetence, TenureMonths: 16,
			StartDate: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		},
	}
}

func amiraJune() domain.MonthlyMetric {
	return domain.MonthlyMetric{
		ColleagueID: "C001", Month: coachMonth, MonthLabel: "2025-06",
		QualityPct: 94.5, FCRPct: 80, CSATPct: 88, AHTMin: 5.2, AdherencePct: 93,
		HoldMin: 0.8, ACWMin: 1.8, NPS: 46, CriticalErrors: 0, ComplaintRate: 2.1,
		TransferPct: 4, RepeatCallPct: 6, SentimentScore: 82, CallVolume: 420,
		TrainingHours: 3.5, CoachingOpen: 1, CoachingClosed: 2,
	}
}

func amiraMay() domain.MonthlyMetric {
	return domain.MonthlyMetric{
		ColleagueID: "C001", MonthLabel: "2025-05",
		QualityPct: 92, FCRPct: 78, CSATPct: 86, AHTMin: 5.4, AdherencePct: 92,
		HoldMin: 0.9, ACWMin: 1.9, NPS: 42, CriticalErrors: 0, ComplaintRate: 2.4,
		CallVolume: 405,
	}
}

func danJune() domain.MonthlyMetric {
	return domain.MonthlyMetric{
		ColleagueID: "C002", Month: coachMonth, MonthLabel: "2025-06",
		QualityPct: 82.1, FCRPct: 70, CSATPct: 78, AHTMin: 7.6, AdherencePct: 88,
		HoldMin: 1.4, ACWMin: 2.6, NPS: 28, CriticalErrors: 1, ComplaintRate: 4,
		TransferPct: 9, RepeatCallPct: 12, SentimentScore: 64, CallVolume: 380,
		TrainingHours: 1.5, CoachingOpen: 3, CoachingClosed: 0,
	}
}

func danMay() domain.MonthlyMetric {
	return domain.MonthlyMetric{
		ColleagueID: "C002", MonthLabel: "2025-05",
		QualityPct: 84, FCRPct: 72, CSATPct: 80, AHTMin: 7.2, AdherencePct: 89,
		HoldMin: 1.3, ACWMin: 2.5, NPS: 31, CriticalErrors: 0, ComplaintRate: 3.5,
		CallVolume: 360,
	}
}

func newCoachService(ctrl *gomock.Controller) (*Service, *datasetmocks.MockRepository, *clientmocks.MockClient) {
	cfg := &config.Config{AICoach: config.AICoach{APIKey: "test-key", MaxChatTurns: 8}}
	repo := datasetmocks.NewMockRepository(ctrl)
	client := clientmocks.NewMockClient(ctrl)
	svc := NewService(cfg, repo, anthropic.New(cfg, client)).(*Service)

	return svc, repo, client
}

func stubColleagueLookups(repo *datasetmocks.MockRepository) {
	colleagues := coachColleagues()
	repo.EXPECT().ColleagueByID(gomock.Any()).DoAndReturn(func(id string) (domain.Colleague, bool) {
		colleague, ok := colleagues[id]
		return colleague, ok
	}).AnyTimes()
	repo.EXPECT().TargetFor(domain.BandMaintainingCompetence).Return(coachTarget(), true).AnyTimes()
}

// expectGeneration arms the client for one request and captures its prompt
func expectGeneration(client *clientmocks.MockClient, reply string) *string {
	var captured string

	client.EXPECT().Configured().Return(true)
	client.EXPECT().CreateMessage(gomock.Any(), systemPrompt, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, prompt string) (string, error) {
			captured = prompt
			return reply, nil
		})

	return &captured
}

func TestColleagueSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, client := newCoachService(ctrl)
	stubColleagueLookups(repo)
	repo.EXPECT().MetricsFor("C001").Return([]domain.MonthlyMetric{amiraJune(), amiraMay()})
	repo.EXPECT().ObjectivesFor("C001").Return([]domain.Objective{
		{Text: "Complete mortgage accreditation", Status: domain.ObjectiveOnTrack, ProgressPct: 60},
	})
	captured := expectGeneration(client, "Monthly summary.")

	text, err := svc.ColleagueSummary(context.Background(), "C001")

	require.NoError(t, err)
	assert.Equal(t, "Monthly summary.", text)
	assert.Contains(t, *captured, "- Name: Amira Shah")
	assert.Contains(t, *captured, "| Quality Score | 94.5% | 90% | ABOVE TARGET |")
	assert.Contains(t, *captured, "| AHT | 5.2 min | 5.5 min | ABOVE TARGET |")
	assert.Contains(t, *captured, "- Complete mortgage accreditation: On Track (60% complete)")
	assert.Contains(t, *captured, "## Recommended Support & Learning Journey")
}

func TestColleagueSummaryUnknownColleague(t *testing.T) {
	tests := []struct {
		name  string
		setup func(repo *datasetmocks.MockRepository)
	}{
		{
			name: "unknown id",
			setup: func(repo *datasetmocks.MockRepository) {
				repo.EXPECT().ColleagueByID("C999").Return(domain.Colleague{}, false)
			},
		},
		{
			name: "no metric rows",
			setup: func(repo *datasetmocks.MockRepository) {
				repo.EXPECT().ColleagueByID("C999").Return(domain.Colleague{ID: "C999", TenureBand: domain.BandMaintainingCompetence}, true)
				repo.EXPECT().MetricsFor("C999").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, _ := newCoachService(ctrl)
			tt.setup(repo)

			_, err := svc.ColleagueSummary(context.Background(), "C999")
			assert.ErrorIs(t, err, ErrColleagueNotFound)
		})
	}
}

func TestColleagueSummaryNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, client := newCoachService(ctrl)
	stubColleagueLookups(repo)
	repo.EXPECT().MetricsFor("C001").Return([]domain.MonthlyMetric{amiraJune()})
	repo.EXPECT().ObjectivesFor("C001").Return(nil)
	client.EXPECT().Configured().Return(false)

	text, err := svc.ColleagueSummary(context.Background(), "C001")

	require.NoError(t, err)
	assert.Equal(t, anthropic.FallbackNotConfigured, text)
}

func TestStrugglingAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, client := newCoachService(ctrl)
	stubColleagueLookups(repo)
	repo.EXPECT().MetricsFor("C002").Return([]domain.MonthlyMetric{danJune(), danMay()})
	repo.EXPECT().LatestMetrics().Return([]domain.MonthlyMetric{amiraJune(), danJune()})
	captured := expectGeneration(client, "Root cause analysis.")

	text, err := svc.StrugglingAnalysis(context.Background(), "C002")

	require.NoError(t, err)
	assert.Equal(t, "Root cause analysis.", text)
	assert.Contains(t, *captured, "- Name: Dan Okafor")
	assert.Contains(t, *captured, "TENURE-ADJUSTED TARGETS FOR THIS COLLEAGUE:")
	assert.Contains(t, *captured, "- Quality: 90%")
	assert.Contains(t, *captured,
		"2025-05: Quality=84%, FCR=72%, CSAT=80%, AHT=7.2min, NPS=31, Errors=0\n"+
			"2025-06: Quality=82.1%, FCR=70%, CSAT=78%, AHT=7.6min, NPS=28, Errors=1",
		"history reads oldest first")
	assert.Contains(t, *captured,
		"Tenure band average across 2 colleagues: Quality=88.3%, FCR=75.0%, CSAT=83.0%, AHT=6.4min, NPS=37.0")
}

func TestCoachingPlan(t *testing.T) {
	tests := []struct {
		name        string
		colleagueID string
		focusArea   string
		history     []domain.MonthlyMetric
		validate    func(t *testing.T, prompt string)
	}{
		{
			name:        "empty focus falls back to coaching priority",
			colleagueID: "C002",
			focusArea:   "",
			history:     []domain.MonthlyMetric{danJune()},
			validate: func(t *testing.T, prompt string) {
				assert.Contains(t, prompt, "Create a detailed coaching plan for improving AHT.")
				assert.Contains(t, prompt, "- Performance Score: ")
				assert.Contains(t, prompt, "- AHT: 7.6 min (target 5.5 min, BELOW TARGET)")
				assert.Contains(t, prompt, "Meet the tenure-adjusted targets for the Maintaining Competence band:")
				assert.Contains(t, prompt, "TARGET STATE:")
			},
		},
		{
			name:        "explicit focus area wins",
			colleagueID: "C002",
			focusArea:   "call control",
			history:     []domain.MonthlyMetric{danJune()},
			validate: func(t *testing.T, prompt string) {
				assert.Contains(t, prompt, "Create a detailed coaching plan for improving call control.")
			},
		},
		{
			name:        "meeting every target plans for sustained performance",
			colleagueID: "C001",
			focusArea:   "",
			history:     []domain.MonthlyMetric{amiraJune()},
			validate: func(t *testing.T, prompt string) {
				assert.Contains(t, prompt, "Create a detailed coaching plan for improving sustained performance.")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, client := newCoachService(ctrl)
			stubColleagueLookups(repo)
			repo.EXPECT().MetricsFor(tt.colleagueID).Return(tt.history)
			captured := expectGeneration(client, "Four week plan.")

			text, err := svc.CoachingPlan(context.Background(), tt.colleagueID, tt.focusArea)

			require.NoError(t, err)
			assert.Equal(t, "Four week plan.", text)
			tt.validate(t, *captured)
		})
	}
}

func TestTeamAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, client := newCoachService(ctrl)
	repo.EXPECT().LatestMonth().Return(coachMonth, true)
	repo.EXPECT().TeamMetrics("Billing", coachMonth).Return([]domain.MonthlyMetric{amiraJune(), danJune()})
	repo.EXPECT().Benchmarks().Return([]domain.Benchmark{
		{Metric: "Quality_Pct", IndustryAverage: 88, TopQuartile: 93, BottomQuartile: 82},
	})
	captured := expectGeneration(client, "Team review.")

	text, err := svc.TeamAnalysis(context.Background(), "Billing")

	require.NoError(t, err)
	assert.Equal(t, "Team review.", text)
	assert.Contains(t, *captured, "Analyze the performance of Billing team")
	assert.Contains(t, *captured, "- Headcount: 2")
	assert.Contains(t, *captured, "- Quality Score: 88.3%")
	assert.Contains(t, *captured, "- AHT: 6.4 min")
	assert.Contains(t, *captured, "- Critical Errors (total): 1")
	assert.Contains(t, *captured, "- Call Volume (total): 800")
	assert.Contains(t, *captured, "- Quality Score: industry average 88, top quartile 93, bottom quartile 82")
}

func TestTeamAnalysisErrors(t *testing.T) {
	t.Run("no dataset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _ := newCoachService(ctrl)
		repo.EXPECT().LatestMonth().Return(time.Time{}, false)

		_, err := svc.TeamAnalysis(context.Background(), "Billing")
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("unknown team", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _ := newCoachService(ctrl)
		repo.EXPECT().LatestMonth().Return(coachMonth, true)
		repo.EXPECT().TeamMetrics("Fraud", coachMonth).Return(nil)

		_, err := svc.TeamAnalysis(context.Background(), "Fraud")
		assert.ErrorIs(t, err, ErrTeamNotFound)
	})
}

func stubChatDataset(repo *datasetmocks.MockRepository) {
	colleagues := coachColleagues()
	repo.EXPECT().Colleagues().Return([]domain.Colleague{colleagues["C001"], colleagues["C002"]}).AnyTimes()
	repo.EXPECT().LatestMetrics().Return([]domain.MonthlyMetric{amiraJune(), danJune()}).AnyTimes()
	repo.EXPECT().MetricsFor("C001").Return([]domain.MonthlyMetric{amiraJune(), amiraMay()}).AnyTimes()
	repo.EXPECT().MetricsFor("C002").Return([]domain.MonthlyMetric{danJune(), danMay()}).AnyTimes()
	repo.EXPECT().ObjectivesFor(gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().Targets().Return([]domain.Target{coachTarget()}).AnyTimes()
	repo.EXPECT().Benchmarks().Return([]domain.Benchmark{
		{Metric: "Quality_Pct", IndustryAverage: 88, TopQuartile: 93, BottomQuartile: 82},
	}).AnyTimes()
}

func TestChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, client := newCoachService(ctrl)
	stubColleagueLookups(repo)
	stubChatDataset(repo)

	first := expectGeneration(client, "Amira is ahead of every target.")

	session, err := svc.Chat(context.Background(), "", "How is Amira tracking this month?")
	require.NoError(t, err)
	require.Len(t, session.ID, 6)
	require.Len(t, session.Messages, 2)
	assert.Equal(t, domain.ChatRoleUser, session.Messages[0].Role)
	assert.Equal(t, "How is Amira tracking this month?", session.Messages[0].Content)
	assert.Equal(t, domain.ChatRoleAssistant, session.Messages[1].Role)
	assert.Equal(t, "Amira is ahead of every target.", session.Messages[1].Content)

	assert.Contains(t, *first, "TEAM SUMMARY:")
	assert.Contains(t, *first, "- Total colleagues: 2")
	assert.Contains(t, *first, "- Teams: Billing")
	assert.Contains(t, *first, "=== DETAILED DATA FOR MENTIONED COLLEAGUES ===")
	assert.Contains(t, *first, "--- Amira Shah (C001) ---")
	assert.Contains(t, *first, "- Quality Score: 94.5% (Target: 90%)")
	assert.Contains(t, *first, "- Complaint Rate: 2.1 per 1000 calls")
	assert.Contains(t, *first, "Yearly Objectives:\nNo objectives recorded.")
	assert.NotContains(t, *first, "--- Dan Okafor", "unmentioned colleagues stay in the compact table")
	assert.Contains(t, *first, "=== ALL COLLEAGUES - KEY METRICS (Latest Month) ===")
	assert.Contains(t, *first, "=== INDUSTRY BENCHMARKS (UK Banking) ===")
	assert.Contains(t, *first, "=== TENURE BAND TARGETS ===")
	assert.Contains(t, *first, "QUESTION: How is Amira tracking this month?")
	assert.NotContains(t, *first, "CONVERSATION SO FAR")

	second := expectGeneration(client, "Two colleagues are on track overall.")

	session, err = svc.Chat(context.Background(), session.ID, "What about everyone else?")
	require.NoError(t, err)
	require.Len(t, session.Messages, 4)
	assert.Contains(t, *second, "CONVERSATION SO FAR:\nManager: How is Amira tracking this month?\nCoach: Amira is ahead of every target.")
	assert.Contains(t, *second, "QUESTION: What about everyone else?")
}

func TestChatErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newCoachService(ctrl)

	_, err := svc.Chat(context.Background(), "", "   ")
	assert.ErrorIs(t, err, ErrEmptyQuestion)

	_, err = svc.Chat(context.Background(), "Z9xQ2p", "Who needs support?")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestChatTranscriptAndClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newCoachService(ctrl)

	session, err := svc.sessions.create()
	require.NoError(t, err)
	_, ok := svc.sessions.append(session.ID, domain.ChatMessage{Role: domain.ChatRoleUser, Content: "hello"})
	require.True(t, ok)

	transcript, err := svc.ChatTranscript(session.ID)
	require.NoError(t, err)
	assert.Len(t, transcript.Messages, 1)

	require.NoError(t, svc.ClearChat(session.ID))

	_, err = svc.ChatTranscript(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, svc.ClearChat(session.ID), ErrSessionNotFound)
}

func TestEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, client := newCoachService(ctrl)

	client.EXPECT().Configured().Return(true)
	assert.True(t, svc.Enabled())

	client.EXPECT().Configured().Return(false)
	assert.False(t, svc.Enabled())
}
