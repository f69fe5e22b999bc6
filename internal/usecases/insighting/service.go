package insighting

import (
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/opsvue/performance-coach-api/infrastructure/dataset"
	"github.com/opsvue/performance-coach-api/infrastructure/repository"
	"github.com/opsvue/performance-coach-api/internal/config"
	"github.com/opsvue/performance-coach-api/internal/domain"
	"github.com/opsvue/performance-coach-api/internal/scoring"
	"github.com/opsvue/performance-coach-api/pkg/metrics"
	"github.com/opsvue/performance-coach-api/pkg/utils"
)

// Sort orders accepted by ListColleagues
const (
	SortByScore  = "score"
	SortByName   = "name"
	SortByTenure = "tenure"
)

// Trend groupings accepted by Trends
const (
	GroupOverall    = "overall"
	GroupTeam       = "team"
	GroupTenureBand = "tenure_band"
)

var (
	ErrColleagueNotFound = errors.New("colleague not found")
	ErrUnknownMetric     = errors.New("unknown metric")
	ErrUnknownGroup      = errors.New("unknown trend grouping")
	ErrNoData            = errors.New("no dataset loaded")
	ErrNotEnoughMonths   = errors.New("at least two months of data are required")
)

const (
	riskAlertLimit  = 5
	moversLimit     = 5
	trendWindowSize = 3
)

// Columns compared against the industry benchmarks on the overview page
var overviewBenchmarkColumns = []string{"FCR_Pct", "Quality_Pct", "CSAT_Pct", "NPS"}

// Metrics that get a trend label on the individual view
var trendMetricKeys = []string{
	scoring.MetricQuality,
	scoring.MetricFCR,
	scoring.MetricCSAT,
	scoring.MetricAHT,
}

type Service struct {
	cfg       *config.Config
	dataset   dataset.Repository
	snapshots repository.TeamSnapshotRepository
}

func NewService(
	cfg *config.Config,
	data dataset.Repository,
	snapshotRepo repository.TeamSnapshotRepository,
) Insighter {
	return &Service{
		cfg:       cfg,
		dataset:   data,
		snapshots: snapshotRepo,
	}
}

// Overview aggregates the latest month into the landing dashboard payload
func (s *Service) Overview() (*domain.TeamOverview, error) {
	month, ok := s.dataset.LatestMonth()
	if !ok {
		return nil, ErrNoData
	}

	rows := s.dataset.MetricsForMonth(month)
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	overview := &domain.TeamOverview{
		Month:     utils.FormatMonth(month),
		Headcount: len(rows),
	}

	var quality, fcr, csat, aht float64
	statusCounts := make(map[string]int)
	alerts := make([]domain.RiskAlert, 0)

	for _, row := range rows {
		quality += row.QualityPct
		fcr += row.FCRPct
		csat += row.CSATPct
		aht += row.AHTMin
		overview.TotalCallVolume += row.CallVolume

		colleague, ok := s.dataset.ColleagueByID(row.ColleagueID)
		if !ok {
			continue
		}
		target, _ := s.dataset.TargetFor(colleague.TenureBand)

		score := scoring.OverallScore(row, target)
		status := scoring.PerformanceStatus(score.Overall)
		statusCounts[status]++

		flags := scoring.RiskFlags(row)
		if len(flags) > 0 {
			alerts = append(alerts, domain.RiskAlert{
				ColleagueID:       colleague.ID,
				Name:              colleague.Name,
				Team:              colleague.Team,
				TenureBand:        colleague.TenureBand,
				TenureMonths:      colleague.TenureMonths,
				PerformanceStatus: status,
				PerformanceScore:  score.Overall,
				CoachingPriority:  scoring.CoachingPriority(row, target),
				RiskFlags:         flags,
			})
		}
	}

	n := float64(len(rows))
	overview.AvgQualityPct = utils.RoundWithOneDecimalPlace(quality / n)
	overview.AvgFCRPct = utils.RoundWithOneDecimalPlace(fcr / n)
	overview.AvgCSATPct = utils.RoundWithOneDecimalPlace(csat / n)
	overview.AvgAHTMin = utils.RoundWithOneDecimalPlace(aht / n)

	for _, status := range scoring.StatusOrder {
		overview.StatusDistribution = append(overview.StatusDistribution, domain.StatusCount{
			Status: status,
			Color:  scoring.StatusColor(status),
			Count:  statusCounts[status],
		})
	}

	// Most flags first, then the weakest scores
	sort.SliceStable(alerts, func(i, j int) bool {
		if len(alerts[i].RiskFlags) != len(alerts[j].RiskFlags) {
			return len(alerts[i].RiskFlags) > len(alerts[j].RiskFlags)
		}
		return alerts[i].PerformanceScore < alerts[j].PerformanceScore
	})
	if len(alerts) > riskAlertLimit {
		alerts = alerts[:riskAlertLimit]
	}
	overview.RiskAlerts = alerts

	overview.IndustryComparison = s.industryComparison(rows)
	overview.TenureBands = s.tenureBandSummaries(month)

	return overview, nil
}

// OverviewHistory returns the persisted team snapshots of past months
func (s *Service) OverviewHistory(months int) ([]*domain.TeamSnapshot, error) {
	snapshots, err := s.snapshots.History(months)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load overview history")
	}

	return snapshots, nil
}

func (s *Service) industryComparison(rows []domain.MonthlyMetric) []domain.BenchmarkComparison {
	comparisons := make([]domain.BenchmarkComparison, 0, len(overviewBenchmarkColumns))

	for _, column := range overviewBenchmarkColumns {
		benchmark, ok := s.dataset.BenchmarkFor(column)
		if !ok {
			continue
		}

		metric, ok := scoring.MetricByColumn(column)
		if !ok {
			continue
		}

		var sum float64
		for _, row := range rows {
			sum += metric.Value(row)
		}
		avg := utils.RoundWithOneDecimalPlace(sum / float64(len(rows)))

		comparisons = append(comparisons, domain.BenchmarkComparison{
			Metric:          metric.Label,
			TeamAverage:     avg,
			IndustryAverage: benchmark.IndustryAverage,
			TopQuartile:     benchmark.TopQuartile,
			BottomQuartile:  benchmark.BottomQuartile,
			Position:        scoring.CompareToBenchmark(avg, benchmark.IndustryAverage, benchmark.TopQuartile, benchmark.BottomQuartile, metric.HigherIsBetter()),
		})
	}

	return comparisons
}

func (s *Service) tenureBandSummaries(month time.Time) []domain.TenureBandSummary {
	summaries := make([]domain.TenureBandSummary, 0, len(domain.TenureBandOrder))

	for _, band := range domain.TenureBandOrder {
		rows := s.dataset.TenureBandMetrics(band, month)
		if len(rows) == 0 {
			continue
		}

		target, _ := s.dataset.TargetFor(band)

		var score, quality, fcr, csat float64
		for _, row := range rows {
			score += scoring.OverallScore(row, target).Overall
			quality += row.QualityPct
			fcr += row.FCRPct
			csat += row.CSATPct
		}

		n := float64(len(rows))
		summaries = append(summaries, domain.TenureBandSummary{
			TenureBand:    band,
			Headcount:     len(rows),
			AvgScore:      utils.RoundWithOneDecimalPlace(score / n),
			AvgQualityPct: utils.RoundWithOneDecimalPlace(quality / n),
			AvgFCRPct:     utils.RoundWithOneDecimalPlace(fcr / n),
			AvgCSATPct:    utils.RoundWithOneDecimalPlace(csat / n),
		})
	}

	return summaries
}

// ListColleagues returns the explorer cards, filtered and sorted
func (s *Service) ListColleagues(filters *domain.ColleagueFilters) ([]*domain.ColleagueSummary, error) {
	if filters == nil {
		filters = &domain.ColleagueFilters{}
	}

	summaries := s.summaries()
	if len(summaries) == 0 {
		return nil, ErrNoData
	}

	filtered := make([]*domain.ColleagueSummary, 0, len(summaries))
	for _, summary := range summaries {
		if filters.Team != "" && !strings.EqualFold(summary.Team, filters.Team) {
			continue
		}
		if filters.TenureBand != "" && !strings.EqualFold(summary.TenureBand, filters.TenureBand) {
			continue
		}
		if filters.Status != "" && !strings.EqualFold(summary.PerformanceStatus, filters.Status) {
			continue
		}
		filtered = append(filtered, summary)
	}

	sortSummaries(filtered, filters.Sort)

	return filtered, nil
}

// Struggling lists colleagues with status Focus or Below, lowest first
func (s *Service) Struggling() ([]*domain.ColleagueSummary, error) {
	summaries := s.summaries()
	if len(summaries) == 0 {
		return nil, ErrNoData
	}

	struggling := make([]*domain.ColleagueSummary, 0)
	for _, summary := range summaries {
		if summary.PerformanceStatus == scoring.StatusFocus || summary.PerformanceStatus == scoring.StatusBelow {
			struggling = append(struggling, summary)
		}
	}

	sort.SliceStable(struggling, func(i, j int) bool {
		return struggling[i].PerformanceScore < struggling[j].PerformanceScore
	})

	return struggling, nil
}

// summaries builds one card per colleague from their most recent month
func (s *Service) summaries() []*domain.ColleagueSummary {
	latest := s.dataset.LatestMetrics()

	summaries := make([]*domain.ColleagueSummary, 0, len(latest))
	for _, row := range latest {
		colleague, ok := s.dataset.ColleagueByID(row.ColleagueID)
		if !ok {
			continue
		}
		summaries = append(summaries, s.summarise(colleague, row))
	}

	return summaries
}

func (s *Service) summarise(colleague domain.Colleague, row domain.MonthlyMetric) *domain.ColleagueSummary {
	target, _ := s.dataset.TargetFor(colleague.TenureBand)

	score := scoring.OverallScore(row, target)
	status := scoring.PerformanceStatus(score.Overall)

	return &domain.ColleagueSummary{
		ID:                colleague.ID,
		Name:              colleague.Name,
		Team:              colleague.Team,
		TenureBand:        colleague.TenureBand,
		TenureMonths:      colleague.TenureMonths,
		Month:             row.MonthLabel,
		PerformanceScore:  score.Overall,
		PerformanceStatus: status,
		StatusColor:       scoring.StatusColor(status),
		CoachingPriority:  scoring.CoachingPriority(row, target),
		RiskFlags:         scoring.RiskFlags(row),
	}
}

func sortSummaries(summaries []*domain.ColleagueSummary, order string) {
	switch order {
	case SortByName:
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].Name < summaries[j].Name
		})
	case SortByTenure:
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].TenureMonths > summaries[j].TenureMonths
		})
	default:
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].PerformanceScore > summaries[j].PerformanceScore
		})
	}
}

// ColleagueByID builds the full individual view of one colleague
func (s *Service) ColleagueByID(id string) (*domain.ColleagueDetail, error) {
	colleague, ok := s.dataset.ColleagueByID(id)
	if !ok {
		return nil, ErrColleagueNotFound
	}

	history := s.dataset.MetricsFor(id)
	if len(history) == 0 {
		logrus.WithField("colleague_id", id).Warn("insights: colleague has no metric rows")
		return nil, ErrColleagueNotFound
	}

	latest := history[0]
	target, _ := s.dataset.TargetFor(colleague.TenureBand)

	score := scoring.OverallScore(latest, target)
	status := scoring.PerformanceStatus(score.Overall)

	detail := &domain.ColleagueDetail{
		Colleague:         colleague,
		Month:             latest.MonthLabel,
		Score:             score,
		PerformanceStatus: status,
		StatusColor:       scoring.StatusColor(status),
		CoachingPriority:  scoring.CoachingPriority(latest, target),
		RiskFlags:         scoring.RiskFlags(latest),
		Scorecard:         buildScorecard(latest, target),
		Trends:            buildTrends(history),
		History:           history,
		Objectives:        s.dataset.ObjectivesFor(id),
		PeerQuartile:      s.peerQuartile(colleague, score.Overall),
	}
	detail.GoalSummary = scoring.SummariseGoals(detail.Objectives)

	metrics.ScorecardsBuiltTotal.Inc()

	return detail, nil
}

func buildScorecard(row domain.MonthlyMetric, target domain.Target) []domain.ScorecardEntry {
	entries := make([]domain.ScorecardEntry, 0, len(scoring.ScorecardKeys))

	for _, key := range scoring.ScorecardKeys {
		metric, ok := scoring.MetricByKey(key)
		if !ok {
			continue
		}

		actual := metric.Value(row)
		expected := metric.Target(target)
		rag := scoring.MetricRAG(actual, expected, metric.HigherIsBetter())

		entries = append(entries, domain.ScorecardEntry{
			Metric:   metric.Key,
			Label:    metric.Label,
			Actual:   actual,
			Target:   expected,
			Unit:     metric.Unit,
			RAG:      rag,
			RAGColor: scoring.RAGColor(rag),
		})
	}

	return entries
}

// buildTrends labels the direction of the core metrics over the last months.
// History arrives newest first; the trend wants chronological order.
func buildTrends(history []domain.MonthlyMetric) []domain.MetricTrend {
	window := history
	if len(window) > trendWindowSize {
		window = window[:trendWindowSize]
	}

	trends := make([]domain.MetricTrend, 0, len(trendMetricKeys))
	for _, key := range trendMetricKeys {
		metric, ok := scoring.MetricByKey(key)
		if !ok {
			continue
		}

		values := make([]float64, 0, len(window))
		for i := len(window) - 1; i >= 0; i-- {
			values = append(values, metric.Value(window[i]))
		}

		trend := scoring.Trend(values)
		trends = append(trends, domain.MetricTrend{
			Metric: metric.Label,
			Trend:  trend,
			Icon:   scoring.TrendIcon(trend),
		})
	}

	return trends
}

// peerQuartile ranks the colleague inside their tenure band using each band
// member's most recent month
func (s *Service) peerQuartile(colleague domain.Colleague, score float64) string {
	band := make([]float64, 0)

	for _, row := range s.dataset.LatestMetrics() {
		peer, ok := s.dataset.ColleagueByID(row.ColleagueID)
		if !ok || peer.TenureBand != colleague.TenureBand {
			continue
		}
		target, _ := s.dataset.TargetFor(peer.TenureBand)
		band = append(band, scoring.OverallScore(row, target).Overall)
	}

	return scoring.PeerQuartile(score, band)
}

// MetricHistory returns a colleague's monthly rows, newest first
func (s *Service) MetricHistory(id string, months int) ([]domain.MonthlyMetric, error) {
	if _, ok := s.dataset.ColleagueByID(id); !ok {
		return nil, ErrColleagueNotFound
	}

	history := s.dataset.MetricsFor(id)
	if months > 0 && len(history) > months {
		history = history[:months]
	}

	return history, nil
}

// Trends returns the monthly mean of a metric, grouped overall, by team or
// by tenure band
func (s *Service) Trends(metricName, group string, months int) (*domain.TrendReport, error) {
	metric, ok := lookupMetric(metricName)
	if !ok {
		return nil, ErrUnknownMetric
	}

	allMonths := s.dataset.Months()
	if len(allMonths) == 0 {
		return nil, ErrNoData
	}
	if months > 0 && len(allMonths) > months {
		allMonths = allMonths[len(allMonths)-months:]
	}

	report := &domain.TrendReport{
		Metric: metric.Key,
		Group:  group,
	}

	switch group {
	case GroupOverall, "":
		report.Group = GroupOverall
		series := s.seriesFor(metric, allMonths, func(month time.Time) []domain.MonthlyMetric {
			return s.dataset.MetricsForMonth(month)
		})
		if len(series) > 0 {
			report.Series = []domain.TrendSeriesGroup{{Name: "Overall", Points: series}}
		}
	case GroupTeam:
		for _, team := range s.teams() {
			series := s.seriesFor(metric, allMonths, func(month time.Time) []domain.MonthlyMetric {
				return s.dataset.TeamMetrics(team, month)
			})
			if len(series) > 0 {
				report.Series = append(report.Series, domain.TrendSeriesGroup{Name: team, Points: series})
			}
		}
	case GroupTenureBand:
		for _, band := range domain.TenureBandOrder {
			series := s.seriesFor(metric, allMonths, func(month time.Time) []domain.MonthlyMetric {
				return s.dataset.TenureBandMetrics(band, month)
			})
			if len(series) > 0 {
				report.Series = append(report.Series, domain.TrendSeriesGroup{Name: band, Points: series})
			}
		}
	default:
		return nil, ErrUnknownGroup
	}

	return report, nil
}

func (s *Service) seriesFor(metric scoring.Metric, months []time.Time, rowsFor func(time.Time) []domain.MonthlyMetric) []domain.TrendPoint {
	points := make([]domain.TrendPoint, 0, len(months))

	for _, month := range months {
		rows := rowsFor(month)
		if len(rows) == 0 {
			continue
		}

		var sum float64
		for _, row := range rows {
			sum += metric.Value(row)
		}

		points = append(points, domain.TrendPoint{
			Month: utils.FormatMonth(month),
			Value: utils.RoundWithOneDecimalPlace(sum / float64(len(rows))),
		})
	}

	return points
}

func (s *Service) teams() []string {
	seen := make(map[string]bool)
	teams := make([]string, 0)

	for _, colleague := range s.dataset.Colleagues() {
		if !seen[colleague.Team] {
			seen[colleague.Team] = true
			teams = append(teams, colleague.Team)
		}
	}
	sort.Strings(teams)

	return teams
}

// Movers compares the two most recent months of a metric. Change is
// reported so that positive always means the colleague improved, also for
// metrics where lower is better.
func (s *Service) Movers(metricName string) (*domain.MoversReport, error) {
	metric, ok := lookupMetric(metricName)
	if !ok {
		return nil, ErrUnknownMetric
	}

	months := s.dataset.Months()
	if len(months) < 2 {
		return nil, ErrNotEnoughMonths
	}

	latestMonth := months[len(months)-1]
	previousMonth := months[len(months)-2]

	previous := make(map[string]domain.MonthlyMetric)
	for _, row := range s.dataset.MetricsForMonth(previousMonth) {
		previous[row.ColleagueID] = row
	}

	movers := make([]domain.Mover, 0)
	for _, row := range s.dataset.MetricsForMonth(latestMonth) {
		before, ok := previous[row.ColleagueID]
		if !ok {
			continue
		}
		colleague, ok := s.dataset.ColleagueByID(row.ColleagueID)
		if !ok {
			continue
		}

		current := metric.Value(row)
		change := current - metric.Value(before)
		if metric.LowerIsBetter {
			change = -change
		}

		movers = append(movers, domain.Mover{
			ColleagueID: colleague.ID,
			Name:        colleague.Name,
			Team:        colleague.Team,
			Previous:    metric.Value(before),
			Current:     current,
			Change:      utils.RoundWithOneDecimalPlace(change),
		})
	}

	sort.SliceStable(movers, func(i, j int) bool {
		return movers[i].Change > movers[j].Change
	})

	report := &domain.MoversReport{
		Metric:        metric.Key,
		LatestMonth:   utils.FormatMonth(latestMonth),
		PreviousMonth: utils.FormatMonth(previousMonth),
	}

	improved := movers
	if len(improved) > moversLimit {
		improved = improved[:moversLimit]
	}
	report.MostImproved = append(report.MostImproved, improved...)

	// Worst movement first
	support := make([]domain.Mover, 0, moversLimit)
	for i := len(movers) - 1; i >= 0 && len(support) < moversLimit; i-- {
		support = append(support, movers[i])
	}
	report.NeedsSupport = support

	return report, nil
}

// Benchmarks positions the team averages against the industry references
func (s *Service) Benchmarks() ([]*domain.BenchmarkComparison, error) {
	month, ok := s.dataset.LatestMonth()
	if !ok {
		return nil, ErrNoData
	}

	rows := s.dataset.MetricsForMonth(month)
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	comparisons := make([]*domain.BenchmarkComparison, 0)
	for _, benchmark := range s.dataset.Benchmarks() {
		metric, ok := scoring.MetricByColumn(benchmark.Metric)
		if !ok {
			logrus.WithField("metric", benchmark.Metric).Warn("insights: benchmark references an unknown metric")
			continue
		}

		var sum float64
		for _, row := range rows {
			sum += metric.Value(row)
		}
		avg := utils.RoundWithOneDecimalPlace(sum / float64(len(rows)))

		comparisons = append(comparisons, &domain.BenchmarkComparison{
			Metric:          metric.Label,
			TeamAverage:     avg,
			IndustryAverage: benchmark.IndustryAverage,
			TopQuartile:     benchmark.TopQuartile,
			BottomQuartile:  benchmark.BottomQuartile,
			Position:        scoring.CompareToBenchmark(avg, benchmark.IndustryAverage, benchmark.TopQuartile, benchmark.BottomQuartile, metric.HigherIsBetter()),
		})
	}

	return comparisons, nil
}

// DatasetStatus reports what is currently loaded
func (s *Service) DatasetStatus() domain.DatasetStatus {
	return s.dataset.Status()
}

// lookupMetric accepts both the API key ("quality_pct") and the CSV column
// spelling ("Quality_Pct")
func lookupMetric(name string) (scoring.Metric, bool) {
	if metric, ok := scoring.MetricByKey(strings.ToLower(name)); ok {
		return metric, true
	}

	return scoring.MetricByColumn(name)
}
