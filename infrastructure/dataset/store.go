package dataset

import (
	"strings"
	"sync"
	"time"

	"github.com/opsvue/performance-coach-api/internal/domain"
	"github.com/opsvue/performance-coach-api/internal/scoring"
	"github.com/opsvue/performance-coach-api/pkg/log"
	"github.com/opsvue/performance-coach-api/pkg/metrics"
	"github.com/opsvue/performance-coach-api/pkg/utils"
)

// Repository is the read side of the in-memory dataset
type Repository interface {
	Colleagues() []domain.Colleague
	ColleagueByID(id string) (domain.Colleague, bool)
	MetricsFor(colleagueID string) []domain.MonthlyMetric
	LatestMetrics() []domain.MonthlyMetric
	MetricsForMonth(month time.Time) []domain.MonthlyMetric
	TeamMetrics(team string, month time.Time) []domain.MonthlyMetric
	TenureBandMetrics(band string, month time.Time) []domain.MonthlyMetric
	Months() []time.Time
	LatestMonth() (time.Time, bool)
	TargetFor(band string) (domain.Target, bool)
	Targets() []domain.Target
	ObjectivesFor(colleagueID string) []domain.Objective
	Benchmarks() []domain.Benchmark
	BenchmarkFor(metric string) (domain.Benchmark, bool)
	Reload() error
	Status() domain.DatasetStatus
}

// Store keeps the parsed dataset in memory behind a read-write lock.
// Reload parses into a fresh snapshot and swaps it in only on success, so
// readers always see a complete dataset.
type Store struct {
	dir string

	mu          sync.RWMutex
	data        *tables
	failedLoads int
	lastError   string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load parses the data directory and swaps the dataset on success. On
// failure the previous dataset, if any, stays live.
func (s *Store) Load() error {
	start := time.Now()

	tbl, err := loadDir(s.dir)
	metrics.DatasetLoadDurationSeconds.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.DatasetLoadsTotal.WithLabelValues("error").Inc()
		if parseErr, ok := err.(*ParseError); ok {
			metrics.DatasetParseErrorsTotal.WithLabelValues(parseErr.File).Inc()
		}

		s.mu.Lock()
		s.failedLoads++
		s.lastError = err.Error()
		s.mu.Unlock()

		log.L.WithError(err).Error("dataset: load failed")
		return err
	}

	atRisk := 0
	for _, c := range tbl.colleagues {
		series := tbl.metrics[c.ID]
		if len(series) == 0 {
			continue
		}
		if len(scoring.RiskFlags(series[len(series)-1])) > 0 {
			atRisk++
		}
	}

	s.mu.Lock()
	s.data = tbl
	s.lastError = ""
	s.mu.Unlock()

	metrics.DatasetLoadsTotal.WithLabelValues("success").Inc()
	for table, count := range tbl.rows {
		metrics.DatasetRows.WithLabelValues(table).Set(float64(count))
	}
	metrics.ColleaguesAtRisk.Set(float64(atRisk))

	log.L.WithFields(log.Fields{
		"colleagues": tbl.rows["colleagues"],
		"metrics":    tbl.rows["monthly_metrics"],
		"months":     len(tbl.months),
		"duration":   time.Since(start).String(),
	}).Info("dataset: loaded")

	return nil
}

// Reload re-reads the data directory, keeping the previous dataset on failure
func (s *Store) Reload() error {
	return s.Load()
}

func (s *Store) snapshot() *tables {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

func (s *Store) Colleagues() []domain.Colleague {
	tbl := s.snapshot()
	if tbl == nil {
		return nil
	}

	out := make([]domain.Colleague, len(tbl.colleagues))
	copy(out, tbl.colleagues)
	return out
}

func (s *Store) ColleagueByID(id string) (domain.Colleague, bool) {
	tbl := s.snapshot()
	if tbl == nil {
		return domain.Colleague{}, false
	}

	for _, c := range tbl.colleagues {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Colleague{}, false
}

// MetricsFor returns a colleague's history, newest month first
func (s *Store) MetricsFor(colleagueID string) []domain.MonthlyMetric {
	tbl := s.snapshot()
	if tbl == nil {
		return nil
	}

	series := tbl.metrics[colleagueID]
	out := make([]domain.MonthlyMetric, 0, len(series))
	for i := len(series) - 1; i >= 0; i-- {
		out = append(out, series[i])
	}
	return out
}

// LatestMetrics returns each colleague's most recent row, in roster order
func (s *Store) LatestMetrics() []domain.MonthlyMetric {
	tbl := s.snapshot()
	if tbl == nil {
		return nil
	}

	out := make([]domain.MonthlyMetric, 0, len(tbl.colleagues))
	for _, c := range tbl.colleagues {
		series := tbl.metrics[c.ID]
		if len(series) == 0 {
			continue
		}
		out = append(out, series[len(series)-1])
	}
	return out
}

func (s *Store) MetricsForMonth(month time.Time) []domain.MonthlyMetric {
	tbl := s.snapshot()
	if tbl == nil {
		return nil
	}

	var out []domain.MonthlyMetric
	for _, c := range tbl.colleagues {
		for _, m := range tbl.metrics[c.ID] {
			if m.Month.Equal(month) {
				out = append(out, m)
			}
		}
	}
	return out
}

// TeamMetrics returns the rows of one team. A zero month means all months.
func (s *Store) TeamMetrics(team string, month time.Time) []domain.MonthlyMetric {
	return s.filteredMetrics(func(c domain.Colleague) bool { return c.Team == team }, month)
}

// TenureBandMetrics returns the rows of one band. A zero month means all months.
func (s *Store) TenureBandMetrics(band string, month time.Time) []domain.MonthlyMetric {
	return s.filteredMetrics(func(c domain.Colleague) bool { return c.TenureBand == band }, month)
}

func (s *Store) filteredMetrics(match func(domain.Colleague) bool, month time.Time) []domain.MonthlyMetric {
	tbl := s.snapshot()
	if tbl == nil {
		return nil
	}

	var out []domain.MonthlyMetric
	for _, c := range tbl.colleagues {
		if !match(c) {
			continue
		}
		for _, m := range tbl.metrics[c.ID] {
			if month.IsZero() || m.Month.Equal(month) {
				out = append(out, m)
			}
		}
	}
	return out
}

// Months returns the distinct reporting months, oldest first
func (s *Store) Months() []time.Time {
	tbl := s.snapshot()
	if tbl == nil {
		return nil
	}

	out := make([]time.Time, len(tbl.months))
	copy(out, tbl.months)
	return out
}

func (s *Store) LatestMonth() (time.Time, bool) {
	tbl := s.snapshot()
	if tbl == nil || len(tbl.months) == 0 {
		return time.Time{}, false
	}
	return tbl.months[len(tbl.months)-1], true
}

func (s *Store) TargetFor(band string) (domain.Target, bool) {
	tbl := s.snapshot()
	if tbl == nil {
		return domain.Target{}, false
	}

	t, ok := tbl.targets[band]
	return t, ok
}

// Targets returns the target rows in band order
func (s *Store) Targets() []domain.Target {
	tbl := s.snapshot()
	if tbl == nil {
		return nil
	}

	out := make([]domain.Target, 0, len(tbl.targets))
	for _, band := range domain.TenureBandOrder {
		if t, ok := tbl.targets[band]; ok {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) ObjectivesFor(colleagueID string) []domain.Objective {
	tbl := s.snapshot()
	if tbl == nil {
		return nil
	}

	series := tbl.objectives[colleagueID]
	out := make([]domain.Objective, len(series))
	copy(out, series)
	return out
}

func (s *Store) Benchmarks() []domain.Benchmark {
	tbl := s.snapshot()
	if tbl == nil {
		return nil
	}

	out := make([]domain.Benchmark, len(tbl.benchmarks))
	copy(out, tbl.benchmarks)
	return out
}

// BenchmarkFor matches a benchmark row by its dataset column name
func (s *Store) BenchmarkFor(metric string) (domain.Benchmark, bool) {
	tbl := s.snapshot()
	if tbl == nil {
		return domain.Benchmark{}, false
	}

	for _, b := range tbl.benchmarks {
		if strings.EqualFold(b.Metric, metric) {
			return b, true
		}
	}
	return domain.Benchmark{}, false
}

func (s *Store) Status() domain.DatasetStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := domain.DatasetStatus{
		SourceDir:   s.dir,
		FailedLoads: s.failedLoads,
		LastError:   s.lastError,
	}

	if s.data == nil {
		return status
	}

	status.Loaded = true
	status.LoadedAt = s.data.loadedAt
	status.Rows = make(map[string]int, len(s.data.rows))
	for table, count := range s.data.rows {
		status.Rows[table] = count
	}
	for _, m := range s.data.months {
		status.Months = append(status.Months, utils.FormatMonth(m))
	}
	if len(s.data.months) > 0 {
		status.LatestMonth = utils.FormatMonth(s.data.months[len(s.data.months)-1])
	}

	return status
}
