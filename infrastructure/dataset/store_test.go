package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/opsvue/performance-coach-api/internal/domain"
	"github.com/opsvue/performance-coach-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fixtureTargets = "Tenure_Band,Quality_Target,FCR_Target,CSAT_Target,AHT_Target,Adherence_Target,NPS_Target,Hold_Target,ACW_Target\n" +
		"Attaining Foundation,80,70,78,7.5,88,20,1.8,3.0\n" +
		"Attaining Competence,85,75,82,6.5,90,30,1.5,2.5\n" +
		"Maintaining Competence,90,80,85,5.8,92,40,1.2,2.0\n" +
		"Maintaining Excellence,92,82,88,5.5,93,45,1.0,1.8\n"

	fixtureColleagues = "Colleague_ID,Name,Team,Tenure_Band,Tenure_Months,Start_Date\n" +
		"C001,Amira Shah,Billing,Maintaining Competence,18,2024-02-12\n" +
		"C002,Dan Okafor,Billing,Attaining Competence,8,2025-01-06\n" +
		"C003,Priya Nair,Collections,Maintaining Excellence,30,2023-02-20\n"

	fixtureMetrics = "Colleague_ID,Month,Quality_Pct,FCR_Pct,CSAT_Pct,AHT_Min,Adherence_Pct,Hold_Min,ACW_Min,NPS,Critical_Errors,Complaint_Rate,Transfer_Pct,Repeat_Call_Pct,Sentiment_Score,Call_Volume,Training_Hours,Coaching_Open,Coaching_Closed\n" +
		"C001,2025-04,88.5,78,84,6.1,91,1.3,2.2,38,0,3.2,12,9.5,0.35,842,3.5,1,2\n" +
		"C001,2025-05,90.2,79.5,85.5,5.9,92.5,1.2,2.1,41,0,2.8,11,9.0,0.41,861,2.0,1,3\n" +
		"C001,2025-06,91.0,80.5,86.0,5.7,93.0,1.1,2.0,43,0,2.5,10.5,8.8,0.44,875,1.5,0,3\n" +
		"C002,2025-04,72.0,66,72,7.8,86,1.9,3.1,12,1,8.2,18,14,-0.1,610,6.0,3,1\n" +
		"C002,2025-05,74.5,68,74,7.5,87,1.8,3.0,15,0,7.4,17,13,0.02,655,5.5,3,2\n" +
		"C003,2025-04,93.0,84,89,5.2,94,0.9,1.7,52,0,1.8,8,7,0.55,910,1.0,0,1\n" +
		"C003,2025-05,93.5,84.5,89.5,5.1,94.5,0.9,1.6,53,0,1.6,8,7,0.58,915,1.0,0,2\n" +
		"C003,2025-06,94.0,85.0,90.0,5.0,95.0,0.8,1.5,55,0,1.5,7.5,6.8,0.60,920,0.5,0,2\n"

	fixtureObjectives = "Colleague_ID,Objective_Text,Objective_Type,Category,Status,Progress_Pct,Target_Date\n" +
		"C001,Improve FCR to 82%,Performance,Quality,On Track,65,2025-09-30\n" +
		"C001,Complete coaching skills module,Development,Training,Achieved,100,2025-06-30\n" +
		"C002,Reduce AHT below 7 minutes,Performance,Efficiency,At Risk,40,2025-08-31\n"

	fixtureBenchmarks = "Metric,Industry_Average,Top_Quartile,Bottom_Quartile\n" +
		"Quality_Pct,86.0,92.0,80.0\n" +
		"FCR_Pct,74.0,82.0,68.0\n" +
		"CSAT_Pct,81.0,88.0,74.0\n" +
		"AHT_Min,6.2,5.2,7.4\n" +
		"NPS,32.0,48.0,18.0\n"
)

func writeFixtureDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		TargetsFile:    fixtureTargets,
		ColleaguesFile: fixtureColleagues,
		MetricsFile:    fixtureMetrics,
		ObjectivesFile: fixtureObjectives,
		BenchmarksFile: fixtureBenchmarks,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	return dir
}

func TestStoreLoad(t *testing.T) {
	dir := writeFixtureDataset(t)

	store := NewStore(dir)
	require.NoError(t, store.Load())

	colleagues := store.Colleagues()
	assert.Len(t, colleagues, 3)

	c, ok := store.ColleagueByID("C002")
	assert.True(t, ok)
	assert.Equal(t, "Dan Okafor", c.Name)

	_, ok = store.ColleagueByID("C999")
	assert.False(t, ok)
}

func TestStoreMetricsAccessors(t *testing.T) {
	store := NewStore(writeFixtureDataset(t))
	require.NoError(t, store.Load())

	history := store.MetricsFor("C001")
	require.Len(t, history, 3)
	assert.Equal(t, "2025-06", history[0].MonthLabel)
	assert.Equal(t, "2025-04", history[2].MonthLabel)

	latest := store.LatestMetrics()
	require.Len(t, latest, 3)
	byID := make(map[string]domain.MonthlyMetric)
	for _, m := range latest {
		byID[m.ColleagueID] = m
	}
	assert.Equal(t, "2025-06", byID["C001"].MonthLabel)
	// C002 has no June row, so their personal latest is May
	assert.Equal(t, "2025-05", byID["C002"].MonthLabel)

	june, err := utils.ParseMonth("2025-06")
	require.NoError(t, err)
	inJune := store.MetricsForMonth(june)
	assert.Len(t, inJune, 2)

	months := store.Months()
	require.Len(t, months, 3)
	assert.Equal(t, "2025-04", utils.FormatMonth(months[0]))
	assert.Equal(t, "2025-06", utils.FormatMonth(months[2]))

	latestMonth, ok := store.LatestMonth()
	assert.True(t, ok)
	assert.Equal(t, "2025-06", utils.FormatMonth(latestMonth))
}

func TestStoreFilteredMetrics(t *testing.T) {
	store := NewStore(writeFixtureDataset(t))
	require.NoError(t, store.Load())

	june, err := utils.ParseMonth("2025-06")
	require.NoError(t, err)

	all := store.TeamMetrics("Billing", time.Time{})
	assert.Len(t, all, 5)

	billingJune := store.TeamMetrics("Billing", june)
	require.Len(t, billingJune, 1)
	assert.Equal(t, "C001", billingJune[0].ColleagueID)

	may, err := utils.ParseMonth("2025-05")
	require.NoError(t, err)
	excellence := store.TenureBandMetrics("Maintaining Excellence", may)
	require.Len(t, excellence, 1)
	assert.Equal(t, "C003", excellence[0].ColleagueID)
}

func TestStoreReferenceAccessors(t *testing.T) {
	store := NewStore(writeFixtureDataset(t))
	require.NoError(t, store.Load())

	target, ok := store.TargetFor(domain.BandMaintainingCompetence)
	assert.True(t, ok)
	assert.Equal(t, 90.0, target.QualityTarget)

	targets := store.Targets()
	require.Len(t, targets, 4)
	assert.Equal(t, domain.BandAttainingFoundation, targets[0].TenureBand)
	assert.Equal(t, domain.BandMaintainingExcellence, targets[3].TenureBand)

	objectives := store.ObjectivesFor("C001")
	assert.Len(t, objectives, 2)
	assert.Empty(t, store.ObjectivesFor("C003"))

	assert.Len(t, store.Benchmarks(), 5)

	b, ok := store.BenchmarkFor("quality_pct")
	assert.True(t, ok)
	assert.Equal(t, 86.0, b.IndustryAverage)

	_, ok = store.BenchmarkFor("Shrinkage_Pct")
	assert.False(t, ok)
}

func TestStoreStatus(t *testing.T) {
	store := NewStore(writeFixtureDataset(t))
	require.NoError(t, store.Load())

	status := store.Status()
	assert.True(t, status.Loaded)
	assert.False(t, status.LoadedAt.IsZero())
	assert.Equal(t, "2025-06", status.LatestMonth)
	assert.Equal(t, []string{"2025-04", "2025-05", "2025-06"}, status.Months)
	assert.Equal(t, 3, status.Rows["colleagues"])
	assert.Equal(t, 8, status.Rows["monthly_metrics"])
	assert.Equal(t, 0, status.FailedLoads)
	assert.Empty(t, status.LastError)
}

func TestStoreReloadKeepsPreviousDatasetOnFailure(t *testing.T) {
	dir := writeFixtureDataset(t)
	store := NewStore(dir)
	require.NoError(t, store.Load())

	broken := "Colleague_ID,Month,Quality_Pct\nC001,2025-06,not-a-number\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, MetricsFile), []byte(broken), 0o600))

	err := store.Reload()
	assert.Error(t, err)

	// The previous dataset is still served
	assert.Len(t, store.Colleagues(), 3)
	assert.Len(t, store.MetricsFor("C001"), 3)

	status := store.Status()
	assert.True(t, status.Loaded)
	assert.Equal(t, 1, status.FailedLoads)
	assert.NotEmpty(t, status.LastError)

	// A corrected file clears the error on the next reload
	require.NoError(t, os.WriteFile(filepath.Join(dir, MetricsFile), []byte(fixtureMetrics), 0o600))
	require.NoError(t, store.Reload())
	assert.Empty(t, store.Status().LastError)
}

func TestStoreBeforeFirstLoad(t *testing.T) {
	store := NewStore("/nonexistent")

	assert.Nil(t, store.Colleagues())
	assert.Nil(t, store.MetricsFor("C001"))

	_, ok := store.LatestMonth()
	assert.False(t, ok)

	status := store.Status()
	assert.False(t, status.Loaded)

	assert.Error(t, store.Load())
	assert.Equal(t, 1, store.Status().FailedLoads)
}
