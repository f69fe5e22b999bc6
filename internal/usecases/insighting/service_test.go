package insighting

import (
	"errors"
	"testing"
	"time"

	datasetmocks "github.com/opsvue/performance-coach-api/infrastructure/dataset/mocks"
	repomocks "github.com/opsvue/performance-coach-api/infrastructure/repository/mocks"
	"github.com/opsvue/performance-coach-api/internal/config"
	"github.com/opsvue/performance-coach-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	mayMonth  = time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	juneMonth = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
)

func fixtureColleagues() []domain.Colleague {
	return []domain.Colleague{
		{ID: "C001", Name: "Amira Shah", Team: "Billing", TenureBand: domain.BandMaintainingCompetence, TenureMonths: 18},
		{ID: "C002", Name: "Dan Okafor", Team: "Billing", TenureBand: domain.BandAttainingCompetence, TenureMonths: 8},
		{ID: "C003", Name: "Priya Nair", Team: "Collections", TenureBand: domain.BandMaintainingExcellence, TenureMonths: 30},
	}
}

func fixtureTargets() map[string]domain.Target {
	return map[string]domain.Target{
		domain.BandAttainingCompetence: {
			TenureBand: domain.BandAttainingCompetence, QualityTarget: 85, FCRTarget: 72,
			CSATTarget: 80, AHTTarget: 6.5, AdherenceTarget: 88, NPSTarget: 30, HoldTarget: 1.3, ACWTarget: 2.5,
		},
		domain.BandMaintainingCompetence: {
			TenureBand: domain.BandMaintainingCompetence, QualityTarget: 90, FCRTarget: 78,
			CSATTarget: 85, AHTTarget: 5.5, AdherenceTarget: 92, NPSTarget: 40, HoldTarget: 1.0, ACWTarget: 2.0,
		},
		domain.BandMaintainingExcellence: {
			TenureBand: domain.BandMaintainingExcellence, QualityTarget: 93, FCRTarget: 82,
			CSATTarget: 88, AHTTarget: 5.0, AdherenceTarget: 94, NPSTarget: 50, HoldTarget: 0.8, ACWTarget: 1.8,
		},
	}
}

func juneRows() []domain.MonthlyMetric {
	return []domain.MonthlyMetric{
		{
			ColleagueID: "C001", Month: juneMonth, MonthLabel: "2025-06",
			QualityPct: 94.5, FCRPct: 80.0, CSATPct: 88.0, AHTMin: 5.5, AdherencePct: 96.0,
			HoldMin: 0.8, ACWMin: 1.8, NPS: 45, CriticalErrors: 0, ComplaintRate: 2.1,
			TransferPct: 12.0, RepeatCallPct: 9.5, SentimentScore: 78.0, CallVolume: 420,
			TrainingHours: 4.0, CoachingOpen: 1, CoachingClosed: 2,
		},
		{
			ColleagueID: "C002", Month: juneMonth, MonthLabel: "2025-06",
			QualityPct: 70.0, FCRPct: 58.0, CSATPct: 65.0, AHTMin: 8.5, AdherencePct: 80.0,
			HoldMin: 1.5, ACWMin: 2.8, NPS: 18, CriticalErrors: 2, ComplaintRate: 9.1,
			TransferPct: 22.0, RepeatCallPct: 18.0, SentimentScore: 55.0, CallVolume: 350,
			TrainingHours: 2.5, CoachingOpen: 3, CoachingClosed: 1,
		},
		{
			ColleagueID: "C003", Month: juneMonth, MonthLabel: "2025-06",
			QualityPct: 95.0, FCRPct: 90.0, CSATPct: 93.0, AHTMin: 4.0, AdherencePct: 97.0,
			HoldMin: 0.6, ACWMin: 1.6, NPS: 55, CriticalErrors: 0, ComplaintRate: 1.0,
			TransferPct: 8.0, RepeatCallPct: 6.0, SentimentScore: 85.0, CallVolume: 390,
			TrainingHours: 5.0, CoachingOpen: 0, CoachingClosed: 3,
		},
	}
}

func mayRows() []domain.MonthlyMetric {
	return []domain.MonthlyMetric{
		{
			ColleagueID: "C001", Month: mayMonth, MonthLabel: "2025-05",
			QualityPct: 92.0, FCRPct: 78.5, CSATPct: 87.0, AHTMin: 5.9, AdherencePct: 95.0,
			HoldMin: 0.9, ACWMin: 1.9, NPS: 42, CriticalErrors: 0, ComplaintRate: 2.5, CallVolume: 410,
		},
		{
			ColleagueID: "C002", Month: mayMonth, MonthLabel: "2025-05",
			QualityPct: 74.0, FCRPct: 61.0, CSATPct: 69.0, AHTMin: 8.0, AdherencePct: 82.0,
			HoldMin: 1.4, ACWMin: 2.7, NPS: 20, CriticalErrors: 1, ComplaintRate: 8.2, CallVolume: 360,
		},
		{
			ColleagueID: "C003", Month: mayMonth, MonthLabel: "2025-05",
			QualityPct: 94.0, FCRPct: 88.0, CSATPct: 92.0, AHTMin: 4.3, AdherencePct: 96.5,
			HoldMin: 0.7, ACWMin: 1.7, NPS: 52, CriticalErrors: 0, ComplaintRate: 1.1, CallVolume: 380,
		},
	}
}

func metricsByID(rows []domain.MonthlyMetric) map[string]domain.MonthlyMetric {
	byID := make(map[string]domain.MonthlyMetric, len(rows))
	for _, row := range rows {
		byID[row.ColleagueID] = row
	}
	return byID
}

func newFixture(t *testing.T) (*Service, *datasetmocks.MockRepository, *repomocks.MockTeamSnapshotRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := datasetmocks.NewMockRepository(ctrl)
	snapshots := repomocks.NewMockTeamSnapshotRepository(ctrl)

	svc := NewService(&config.Config{}, repo, snapshots).(*Service)
	return svc, repo, snapshots
}

// stubLookups answers the reference lookups every derivation needs
func stubLookups(repo *datasetmocks.MockRepository) {
	colleagues := fixtureColleagues()
	repo.EXPECT().ColleagueByID(gomock.Any()).DoAndReturn(func(id string) (domain.Colleague, bool) {
		for _, c := range colleagues {
			if c.ID == id {
				return c, true
			}
		}
		return domain.Colleague{}, false
	}).AnyTimes()

	targets := fixtureTargets()
	repo.EXPECT().TargetFor(gomock.Any()).DoAndReturn(func(band string) (domain.Target, bool) {
		target, ok := targets[band]
		return target, ok
	}).AnyTimes()
}

func TestOverview(t *testing.T) {
	svc, repo, _ := newFixture(t)
	stubLookups(repo)

	june := juneRows()
	byID := metricsByID(june)

	repo.EXPECT().LatestMonth().Return(juneMonth, true)
	repo.EXPECT().MetricsForMonth(juneMonth).Return(june)

	repo.EXPECT().BenchmarkFor("FCR_Pct").
		Return(domain.Benchmark{Metric: "FCR_Pct", IndustryAverage: 74, TopQuartile: 82, BottomQuartile: 68}, true)
	repo.EXPECT().BenchmarkFor("Quality_Pct").
		Return(domain.Benchmark{Metric: "Quality_Pct", IndustryAverage: 88, TopQuartile: 93, BottomQuartile: 82}, true)
	repo.EXPECT().BenchmarkFor("CSAT_Pct").Return(domain.Benchmark{}, false)
	repo.EXPECT().BenchmarkFor("NPS").Return(domain.Benchmark{}, false)

	repo.EXPECT().TenureBandMetrics(domain.BandAttainingFoundation, juneMonth).Return(nil)
	repo.EXPECT().TenureBandMetrics(domain.BandAttainingCompetence, juneMonth).
		Return([]domain.MonthlyMetric{byID["C002"]})
	repo.EXPECT().TenureBandMetrics(domain.BandMaintainingCompetence, juneMonth).
		Return([]domain.MonthlyMetric{byID["C001"]})
	repo.EXPECT().TenureBandMetrics(domain.BandMaintainingExcellence, juneMonth).
		Return([]domain.MonthlyMetric{byID["C003"]})

	overview, err := svc.Overview()
	require.NoError(t, err)

	assert.Equal(t, "2025-06", overview.Month)
	assert.Equal(t, 3, overview.Headcount)
	assert.Equal(t, 1160, overview.TotalCallVolume)
	assert.InDelta(t, 86.5, overview.AvgQualityPct, 0.01)
	assert.InDelta(t, 76.0, overview.AvgFCRPct, 0.01)
	assert.InDelta(t, 82.0, overview.AvgCSATPct, 0.01)
	assert.InDelta(t, 6.0, overview.AvgAHTMin, 0.01)

	require.Len(t, overview.StatusDistribution, 5)
	counts := make(map[string]int)
	for _, entry := range overview.StatusDistribution {
		counts[entry.Status] = entry.Count
	}
	assert.Equal(t, map[string]int{"Role Model": 1, "Strong": 1, "On Track": 0, "Focus": 0, "Below": 1}, counts)
	assert.Equal(t, "Role Model", overview.StatusDistribution[0].Status)
	assert.Equal(t, "#10B981", overview.StatusDistribution[0].Color)

	require.Len(t, overview.RiskAlerts, 1)
	alert := overview.RiskAlerts[0]
	assert.Equal(t, "C002", alert.ColleagueID)
	assert.Equal(t, "Below", alert.PerformanceStatus)
	assert.InDelta(t, 49.6, alert.PerformanceScore, 0.05)
	assert.Len(t, alert.RiskFlags, 4)

	require.Len(t, overview.IndustryComparison, 2)
	assert.Equal(t, "FCR", overview.IndustryComparison[0].Metric)
	assert.Equal(t, "Above Average", overview.IndustryComparison[0].Position)
	assert.Equal(t, "Quality Score", overview.IndustryComparison[1].Metric)
	assert.Equal(t, "Below Average", overview.IndustryComparison[1].Position)

	require.Len(t, overview.TenureBands, 3)
	assert.Equal(t, domain.BandAttainingCompetence, overview.TenureBands[0].TenureBand)
	assert.InDelta(t, 49.6, overview.TenureBands[0].AvgScore, 0.05)
	assert.Equal(t, domain.BandMaintainingExcellence, overview.TenureBands[2].TenureBand)
	assert.InDelta(t, 90.5, overview.TenureBands[2].AvgScore, 0.05)
}

func TestOverview_NoData(t *testing.T) {
	svc, repo, _ := newFixture(t)

	repo.EXPECT().LatestMonth().Return(time.Time{}, false)

	_, err := svc.Overview()
	assert.ErrorIs(t, err, ErrNoData)
}

func TestListColleagues(t *testing.T) {
	tests := []struct {
		name        string
		filters     *domain.ColleagueFilters
		expectedIDs []string
	}{
		{
			name:        "default sorts by score descending",
			filters:     nil,
			expectedIDs: []string{"C003", "C001", "C002"},
		},
		{
			name:        "filters by team",
			filters:     &domain.ColleagueFilters{Team: "Billing"},
			expectedIDs: []string{"C001", "C002"},
		},
		{
			name:        "filters by status case-insensitively",
			filters:     &domain.ColleagueFilters{Status: "below"},
			expectedIDs: []string{"C002"},
		},
		{
			name:        "filters by tenure band",
			filters:     &domain.ColleagueFilters{TenureBand: "Attaining Competence"},
			expectedIDs: []string{"C002"},
		},
		{
			name:        "sorts by name",
			filters:     &domain.ColleagueFilters{Sort: SortByName},
			expectedIDs: []string{"C001", "C002", "C003"},
		},
		{
			name:        "sorts by tenure descending",
			filters:     &domain.ColleagueFilters{Sort: SortByTenure},
			expectedIDs: []string{"C003", "C001", "C002"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newFixture(t)
			stubLookups(repo)
			repo.EXPECT().LatestMetrics().Return(juneRows())

			summaries, err := svc.ListColleagues(tt.filters)
			require.NoError(t, err)

			ids := make([]string, 0, len(summaries))
			for _, summary := range summaries {
				ids = append(ids, summary.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestListColleagues_SummaryFields(t *testing.T) {
	svc, repo, _ := newFixture(t)
	stubLookups(repo)
	repo.EXPECT().LatestMetrics().Return(juneRows())

	summaries, err := svc.ListColleagues(&domain.ColleagueFilters{Status: "Below"})
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	card := summaries[0]
	assert.Equal(t, "Dan Okafor", card.Name)
	assert.Equal(t, "2025-06", card.Month)
	assert.InDelta(t, 49.6, card.PerformanceScore, 0.05)
	assert.Equal(t, "#EF4444", card.StatusColor)
	assert.Equal(t, "AHT", card.CoachingPriority)
	assert.Contains(t, card.RiskFlags, "Compliance Risk")
	assert.Contains(t, card.RiskFlags, "Complaint Risk")
}

func TestColleagueByID(t *testing.T) {
	svc, repo, _ := newFixture(t)
	stubLookups(repo)

	history := []domain.MonthlyMetric{metricsByID(juneRows())["C002"], metricsByID(mayRows())["C002"]}
	repo.EXPECT().MetricsFor("C002").Return(history)
	repo.EXPECT().ObjectivesFor("C002").Return([]domain.Objective{
		{ColleagueID: "C002", Text: "Pass complaints refresher", Status: domain.ObjectiveAchieved, ProgressPct: 100},
		{ColleagueID: "C002", Text: "Reach 72% FCR", Status: domain.ObjectiveAtRisk, ProgressPct: 40},
	})
	repo.EXPECT().LatestMetrics().Return(juneRows())

	detail, err := svc.ColleagueByID("C002")
	require.NoError(t, err)

	assert.Equal(t, "Dan Okafor", detail.Colleague.Name)
	assert.Equal(t, "2025-06", detail.Month)
	assert.InDelta(t, 49.6, detail.Score.Overall, 0.05)
	assert.InDelta(t, 20.0, detail.Score.Compliance, 0.01)
	assert.Equal(t, "Below", detail.PerformanceStatus)
	assert.Equal(t, "AHT", detail.CoachingPriority)
	assert.Len(t, detail.RiskFlags, 4)

	require.Len(t, detail.Scorecard, 8)
	quality := detail.Scorecard[0]
	assert.Equal(t, "quality_pct", quality.Metric)
	assert.Equal(t, "Quality Score", quality.Label)
	assert.InDelta(t, 70.0, quality.Actual, 0.01)
	assert.InDelta(t, 85.0, quality.Target, 0.01)
	assert.Equal(t, "Red", quality.RAG)
	assert.Equal(t, "#EF4444", quality.RAGColor)

	aht := detail.Scorecard[3]
	assert.Equal(t, "aht_min", aht.Metric)
	assert.Equal(t, "Red", aht.RAG)

	adherence := detail.Scorecard[4]
	assert.Equal(t, "adherence_pct", adherence.Metric)
	assert.Equal(t, "Amber", adherence.RAG)

	assert.Equal(t, "nps", detail.Scorecard[7].Metric)

	require.Len(t, detail.Trends, 4)
	byMetric := make(map[string]domain.MetricTrend)
	for _, trend := range detail.Trends {
		byMetric[trend.Metric] = trend
	}
	assert.Equal(t, "Declining", byMetric["Quality Score"].Trend)
	assert.Equal(t, "📉", byMetric["Quality Score"].Icon)
	assert.Equal(t, "Declining", byMetric["FCR"].Trend)
	// Trend direction follows the raw slope, so a rising AHT reads Improving
	assert.Equal(t, "Improving", byMetric["AHT"].Trend)

	assert.Equal(t, history, detail.History)
	assert.Equal(t, domain.GoalSummary{Total: 2, Achieved: 1, AtRisk: 1}, detail.GoalSummary)

	// Only one scored colleague in the band, so no quartile
	assert.Equal(t, "N/A", detail.PeerQuartile)
}

func TestColleagueByID_NotFound(t *testing.T) {
	svc, repo, _ := newFixture(t)
	stubLookups(repo)

	_, err := svc.ColleagueByID("C999")
	assert.ErrorIs(t, err, ErrColleagueNotFound)
}

func TestColleagueByID_NoMetrics(t *testing.T) {
	svc, repo, _ := newFixture(t)
	stubLookups(repo)

	repo.EXPECT().MetricsFor("C001").Return(nil)

	_, err := svc.ColleagueByID("C001")
	assert.ErrorIs(t, err, ErrColleagueNotFound)
}

func TestMetricHistory(t *testing.T) {
	svc, repo, _ := newFixture(t)
	stubLookups(repo)

	history := []domain.MonthlyMetric{metricsByID(juneRows())["C001"], metricsByID(mayRows())["C001"]}
	repo.EXPECT().MetricsFor("C001").Return(history).Times(2)

	full, err := svc.MetricHistory("C001", 0)
	require.NoError(t, err)
	assert.Len(t, full, 2)

	capped, err := svc.MetricHistory("C001", 1)
	require.NoError(t, err)
	require.Len(t, capped, 1)
	assert.Equal(t, "2025-06", capped[0].MonthLabel)

	_, err = svc.MetricHistory("C999", 0)
	assert.ErrorIs(t, err, ErrColleagueNotFound)
}

func TestTrends_Overall(t *testing.T) {
	svc, repo, _ := newFixture(t)

	repo.EXPECT().Months().Return([]time.Time{mayMonth, juneMonth})
	repo.EXPECT().MetricsForMonth(mayMonth).Return(mayRows())
	repo.EXPECT().MetricsForMonth(juneMonth).Return(juneRows())

	report, err := svc.Trends("Quality_Pct", "", 0)
	require.NoError(t, err)

	assert.Equal(t, "quality_pct", report.Metric)
	assert.Equal(t, GroupOverall, report.Group)
	require.Len(t, report.Series, 1)
	assert.Equal(t, "Overall", report.Series[0].Name)

	points := report.Series[0].Points
	require.Len(t, points, 2)
	assert.Equal(t, "2025-05", points[0].Month)
	assert.InDelta(t, 86.7, points[0].Value, 0.01)
	assert.Equal(t, "2025-06", points[1].Month)
	assert.InDelta(t, 86.5, points[1].Value, 0.01)
}

func TestTrends_ByTeam(t *testing.T) {
	svc, repo, _ := newFixture(t)

	may := metricsByID(mayRows())
	june := metricsByID(juneRows())

	repo.EXPECT().Months().Return([]time.Time{mayMonth, juneMonth})
	repo.EXPECT().Colleagues().Return(fixtureColleagues())
	repo.EXPECT().TeamMetrics("Billing", mayMonth).Return([]domain.MonthlyMetric{may["C001"], may["C002"]})
	repo.EXPECT().TeamMetrics("Billing", juneMonth).Return([]domain.MonthlyMetric{june["C001"], june["C002"]})
	repo.EXPECT().TeamMetrics("Collections", mayMonth).Return([]domain.MonthlyMetric{may["C003"]})
	repo.EXPECT().TeamMetrics("Collections", juneMonth).Return([]domain.MonthlyMetric{june["C003"]})

	report, err := svc.Trends("quality_pct", GroupTeam, 0)
	require.NoError(t, err)

	require.Len(t, report.Series, 2)
	assert.Equal(t, "Billing", report.Series[0].Name)
	assert.InDelta(t, 83.0, report.Series[0].Points[0].Value, 0.01)
	assert.InDelta(t, 82.3, report.Series[0].Points[1].Value, 0.01)
	assert.Equal(t, "Collections", report.Series[1].Name)
	assert.InDelta(t, 94.0, report.Series[1].Points[0].Value, 0.01)
}

func TestTrends_MonthWindow(t *testing.T) {
	svc, repo, _ := newFixture(t)

	repo.EXPECT().Months().Return([]time.Time{mayMonth, juneMonth})
	repo.EXPECT().MetricsForMonth(juneMonth).Return(juneRows())

	report, err := svc.Trends("csat_pct", GroupOverall, 1)
	require.NoError(t, err)

	require.Len(t, report.Series, 1)
	require.Len(t, report.Series[0].Points, 1)
	assert.Equal(t, "2025-06", report.Series[0].Points[0].Month)
}

func TestTrends_Errors(t *testing.T) {
	svc, repo, _ := newFixture(t)

	_, err := svc.Trends("talk_time", GroupOverall, 0)
	assert.ErrorIs(t, err, ErrUnknownMetric)

	repo.EXPECT().Months().Return([]time.Time{mayMonth, juneMonth})
	_, err = svc.Trends("quality_pct", "region", 0)
	assert.ErrorIs(t, err, ErrUnknownGroup)

	repo.EXPECT().Months().Return(nil)
	_, err = svc.Trends("quality_pct", GroupOverall, 0)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestMovers(t *testing.T) {
	svc, repo, _ := newFixture(t)
	stubLookups(repo)

	repo.EXPECT().Months().Return([]time.Time{mayMonth, juneMonth}).AnyTimes()
	repo.EXPECT().MetricsForMonth(mayMonth).Return(mayRows()).AnyTimes()
	repo.EXPECT().MetricsForMonth(juneMonth).Return(juneRows()).AnyTimes()

	report, err := svc.Movers("quality_pct")
	require.NoError(t, err)

	assert.Equal(t, "2025-06", report.LatestMonth)
	assert.Equal(t, "2025-05", report.PreviousMonth)

	require.Len(t, report.MostImproved, 3)
	assert.Equal(t, "C001", report.MostImproved[0].ColleagueID)
	assert.InDelta(t, 2.5, report.MostImproved[0].Change, 0.01)
	assert.Equal(t, "C003", report.MostImproved[1].ColleagueID)

	require.Len(t, report.NeedsSupport, 3)
	assert.Equal(t, "C002", report.NeedsSupport[0].ColleagueID)
	assert.InDelta(t, -4.0, report.NeedsSupport[0].Change, 0.01)

	// For lower-is-better metrics the sign flips so positive stays good
	report, err = svc.Movers("aht_min")
	require.NoError(t, err)

	assert.Equal(t, "C001", report.MostImproved[0].ColleagueID)
	assert.InDelta(t, 0.4, report.MostImproved[0].Change, 0.01)
	assert.Equal(t, "C002", report.NeedsSupport[0].ColleagueID)
	assert.InDelta(t, -0.5, report.NeedsSupport[0].Change, 0.01)
}

func TestMovers_NotEnoughMonths(t *testing.T) {
	svc, repo, _ := newFixture(t)

	repo.EXPECT().Months().Return([]time.Time{juneMonth})

	_, err := svc.Movers("quality_pct")
	assert.ErrorIs(t, err, ErrNotEnoughMonths)
}

func TestStruggling(t *testing.T) {
	svc, repo, _ := newFixture(t)
	stubLookups(repo)
	repo.EXPECT().LatestMetrics().Return(juneRows())

	struggling, err := svc.Struggling()
	require.NoError(t, err)

	require.Len(t, struggling, 1)
	assert.Equal(t, "C002", struggling[0].ID)
	assert.Equal(t, "Below", struggling[0].PerformanceStatus)
}

func TestBenchmarks(t *testing.T) {
	svc, repo, _ := newFixture(t)

	repo.EXPECT().LatestMonth().Return(juneMonth, true)
	repo.EXPECT().MetricsForMonth(juneMonth).Return(juneRows())
	repo.EXPECT().Benchmarks().Return([]domain.Benchmark{
		{Metric: "FCR_Pct", IndustryAverage: 74, TopQuartile: 82, BottomQuartile: 68},
		{Metric: "AHT_Min", IndustryAverage: 6.2, TopQuartile: 5.1, BottomQuartile: 7.4},
		{Metric: "Mystery_Pct", IndustryAverage: 50, TopQuartile: 60, BottomQuartile: 40},
	})

	comparisons, err := svc.Benchmarks()
	require.NoError(t, err)

	require.Len(t, comparisons, 2)

	assert.Equal(t, "FCR", comparisons[0].Metric)
	assert.InDelta(t, 76.0, comparisons[0].TeamAverage, 0.01)
	assert.Equal(t, "Above Average", comparisons[0].Position)

	assert.Equal(t, "AHT", comparisons[1].Metric)
	assert.InDelta(t, 6.0, comparisons[1].TeamAverage, 0.01)
	assert.Equal(t, "Above Average", comparisons[1].Position)
}

func TestOverviewHistory(t *testing.T) {
	svc, _, snapshots := newFixture(t)

	stored := []*domain.TeamSnapshot{
		{ID: 1, Month: "2025-05", Team: "All", Metrics: domain.TeamSnapshotMetrics{Headcount: 3}},
	}
	snapshots.EXPECT().History(6).Return(stored, nil)

	result, err := svc.OverviewHistory(6)
	require.NoError(t, err)
	assert.Equal(t, stored, result)

	snapshots.EXPECT().History(6).Return(nil, errors.New("connection refused"))

	_, err = svc.OverviewHistory(6)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load overview history")
}

func TestDatasetStatus(t *testing.T) {
	svc, repo, _ := newFixture(t)

	status := domain.DatasetStatus{Loaded: true, LatestMonth: "2025-06", Rows: map[string]int{"colleagues": 3}}
	repo.EXPECT().Status().Return(status)

	assert.Equal(t, status, svc.DatasetStatus())
}
