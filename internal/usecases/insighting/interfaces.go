package insighting

import (
	"github.com/opsvue/performance-coach-api/internal/domain"
)

// Insighter derives the dashboard views from the loaded dataset
type Insighter interface {
	// Overview aggregates the latest month into the landing dashboard payload
	Overview() (*domain.TeamOverview, error)

	// OverviewHistory returns the persisted team snapshots of past months
	OverviewHistory(months int) ([]*domain.TeamSnapshot, error)

	// ListColleagues returns the explorer cards, filtered and sorted
	ListColleagues(filters *domain.ColleagueFilters) ([]*domain.ColleagueSummary, error)

	// ColleagueByID builds the full individual view of one colleague
	ColleagueByID(id string) (*domain.ColleagueDetail, error)

	// MetricHistory returns a colleague's monthly rows, newest first
	MetricHistory(id string, months int) ([]domain.MonthlyMetric, error)

	// Trends returns the monthly mean of a metric, grouped overall, by team
	// or by tenure band
	Trends(metric, group string, months int) (*domain.TrendReport, error)

	// Movers compares the two most recent months and lists the biggest
	// movements of a metric in both directions
	Movers(metric string) (*domain.MoversReport, error)

	// Struggling lists colleagues with status Focus or Below, lowest first
	Struggling() ([]*domain.ColleagueSummary, error)

	// Benchmarks positions the team averages against the industry references
	Benchmarks() ([]*domain.BenchmarkComparison, error)

	// DatasetStatus reports what is currently loaded
	DatasetStatus() domain.DatasetStatus
}
