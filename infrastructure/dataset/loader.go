package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/opsvue/performance-coach-api/internal/domain"
	"github.com/opsvue/performance-coach-api/pkg/utils"
)

// Dataset file names expected inside the data directory
const (
	ColleaguesFile = "colleagues.csv"
	MetricsFile    = "monthly_metrics.csv"
	TargetsFile    = "targets.csv"
	ObjectivesFile = "objectives.csv"
	BenchmarksFile = "industry_benchmarks.csv"
)

// tables is one immutable, fully validated parse of the data directory
type tables struct {
	colleagues []domain.Colleague
	metrics    map[string][]domain.MonthlyMetric
	targets    map[string]domain.Target
	objectives map[string][]domain.Objective
	benchmarks []domain.Benchmark
	months     []time.Time
	loadedAt   time.Time
	rows       map[string]int
}

// loadDir parses the five dataset files. Any malformed value fails the whole
// load so callers can keep serving the previous dataset.
func loadDir(dir string) (*tables, error) {
	targets, err := parseFile(dir, TargetsFile, parseTargets)
	if err != nil {
		return nil, err
	}

	colleagues, err := parseFile(dir, ColleaguesFile, func(file string, r io.Reader) ([]domain.Colleague, error) {
		return parseColleagues(file, r, targets)
	})
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(colleagues))
	for _, c := range colleagues {
		known[c.ID] = true
	}

	metricRows, err := parseFile(dir, MetricsFile, func(file string, r io.Reader) ([]domain.MonthlyMetric, error) {
		return parseMetrics(file, r, known)
	})
	if err != nil {
		return nil, err
	}

	objectiveRows, err := parseFile(dir, ObjectivesFile, func(file string, r io.Reader) ([]domain.Objective, error) {
		return parseObjectives(file, r, known)
	})
	if err != nil {
		return nil, err
	}

	benchmarks, err := parseFile(dir, BenchmarksFile, parseBenchmarks)
	if err != nil {
		return nil, err
	}

	tbl := &tables{
		colleagues: colleagues,
		metrics:    make(map[string][]domain.MonthlyMetric, len(colleagues)),
		targets:    targets,
		objectives: make(map[string][]domain.Objective),
		benchmarks: benchmarks,
		loadedAt:   time.Now(),
		rows: map[string]int{
			"colleagues":      len(colleagues),
			"monthly_metrics": len(metricRows),
			"targets":         len(targets),
			"objectives":      len(objectiveRows),
			"benchmarks":      len(benchmarks),
		},
	}

	monthSet := make(map[time.Time]bool)
	for _, m := range metricRows {
		tbl.metrics[m.ColleagueID] = append(tbl.metrics[m.ColleagueID], m)
		monthSet[m.Month] = true
	}
	for id := range tbl.metrics {
		series := tbl.metrics[id]
		sort.Slice(series, func(i, j int) bool { return series[i].Month.Before(series[j].Month) })
	}

	for month := range monthSet {
		tbl.months = append(tbl.months, month)
	}
	sort.Slice(tbl.months, func(i, j int) bool { return tbl.months[i].Before(tbl.months[j]) })

	for _, o := range objectiveRows {
		tbl.objectives[o.ColleagueID] = append(tbl.objectives[o.ColleagueID], o)
	}

	return tbl, nil
}

func parseFile[T any](dir, file string, parse func(string, io.Reader) (T, error)) (T, error) {
	var zero T

	f, err := os.Open(filepath.Join(dir, file))
	if err != nil {
		return zero, fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	return parse(file, f)
}

// fieldReader gives typed access to one CSV record. The first failed
// conversion sticks so a parse function can read every column and check the
// error once.
type fieldReader struct {
	file   string
	line   int
	cols   map[string]int
	record []string
	err    error
}

func (f *fieldReader) fail(err error) {
	if f.err == nil {
		f.err = &ParseError{File: f.file, Line: f.line, Record: f.record, Err: err}
	}
}

func (f *fieldReader) str(col string) string {
	if f.err != nil {
		return ""
	}
	idx, ok := f.cols[col]
	if !ok || idx >= len(f.record) {
		f.fail(fmt.Errorf("%w: %s", ErrMissingColumn, col))
		return ""
	}
	return strings.TrimSpace(f.record[idx])
}

func (f *fieldReader) float(col string) float64 {
	v := f.str(col)
	if f.err != nil {
		return 0
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		f.fail(fmt.Errorf("%w: %s=%q", ErrInvalidNumber, col, v))
		return 0
	}
	return parsed
}

func (f *fieldReader) int(col string) int {
	v := f.str(col)
	if f.err != nil {
		return 0
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		f.fail(fmt.Errorf("%w: %s=%q", ErrInvalidNumber, col, v))
		return 0
	}
	return parsed
}

func (f *fieldReader) date(col string) time.Time {
	v := f.str(col)
	if f.err != nil {
		return time.Time{}
	}
	parsed, err := utils.ParseDate(v)
	if err != nil {
		f.fail(fmt.Errorf("%w: %s=%q", ErrInvalidDate, col, v))
		return time.Time{}
	}
	return *parsed
}

func (f *fieldReader) month(col string) time.Time {
	v := f.str(col)
	if f.err != nil {
		return time.Time{}
	}
	parsed, err := utils.ParseMonth(v)
	if err != nil {
		f.fail(fmt.Errorf("%w: %s=%q", ErrInvalidMonth, col, v))
		return time.Time{}
	}
	return parsed
}

// forEachRecord reads the header row, checks the required columns and calls
// fn once per data row with a positioned fieldReader.
func forEachRecord(file string, r io.Reader, required []string, fn func(*fieldReader) error) error {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return &ParseError{File: file, Line: 1, Err: fmt.Errorf("%w: empty file", ErrMissingColumn)}
	}
	if err != nil {
		return fmt.Errorf("%s: read header: %w", file, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, col := range required {
		if _, ok := cols[col]; !ok {
			return &ParseError{File: file, Line: 1, Record: header, Err: fmt.Errorf("%w: %s", ErrMissingColumn, col)}
		}
	}

	line := 1
	for {
		record, err := reader.Read()
		line++
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: read line %d: %w", file, line, err)
		}
		if len(record) == 0 || (len(record) == 1 && strings.TrimSpace(record[0]) == "") {
			continue
		}

		fr := &fieldReader{file: file, line: line, cols: cols, record: record}
		if err := fn(fr); err != nil {
			return err
		}
	}
}

func parseColleagues(file string, r io.Reader, targets map[string]domain.Target) ([]domain.Colleague, error) {
	required := []string{"Colleague_ID", "Name", "Team", "Tenure_Band", "Tenure_Months", "Start_Date"}

	var colleagues []domain.Colleague
	seen := make(map[string]bool)

	err := forEachRecord(file, r, required, func(fr *fieldReader) error {
		c := domain.Colleague{
			ID:           fr.str("Colleague_ID"),
			Name:         fr.str("Name"),
			Team:         fr.str("Team"),
			TenureBand:   fr.str("Tenure_Band"),
			TenureMonths: fr.int("Tenure_Months"),
			StartDate:    fr.date("Start_Date"),
		}
		if fr.err != nil {
			return fr.err
		}

		if seen[c.ID] {
			fr.fail(fmt.Errorf("%w: colleague %s", ErrDuplicateRow, c.ID))
			return fr.err
		}
		seen[c.ID] = true

		// Every colleague must resolve to a target row through their band
		if _, ok := targets[c.TenureBand]; !ok {
			fr.fail(fmt.Errorf("%w: %q has no target row", ErrUnknownTenureBand, c.TenureBand))
			return fr.err
		}

		colleagues = append(colleagues, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return colleagues, nil
}

func parseMetrics(file string, r io.Reader, known map[string]bool) ([]domain.MonthlyMetric, error) {
	required := []string{
		"Colleague_ID", "Month", "Quality_Pct", "FCR_Pct", "CSAT_Pct", "AHT_Min",
		"Adherence_Pct", "Hold_Min", "ACW_Min", "NPS", "Critical_Errors",
		"Complaint_Rate", "Transfer_Pct", "Repeat_Call_Pct", "Sentiment_Score",
		"Call_Volume", "Training_Hours", "Coaching_Open", "Coaching_Closed",
	}

	var rows []domain.MonthlyMetric
	type rowKey struct {
		id    string
		month time.Time
	}
	seen := make(map[rowKey]bool)

	err := forEachRecord(file, r, required, func(fr *fieldReader) error {
		m := domain.MonthlyMetric{
			ColleagueID:    fr.str("Colleague_ID"),
			Month:          fr.month("Month"),
			QualityPct:     fr.float("Quality_Pct"),
			FCRPct:         fr.float("FCR_Pct"),
			CSATPct:        fr.float("CSAT_Pct"),
			AHTMin:         fr.float("AHT_Min"),
			AdherencePct:   fr.float("Adherence_Pct"),
			HoldMin:        fr.float("Hold_Min"),
			ACWMin:         fr.float("ACW_Min"),
			NPS:            fr.float("NPS"),
			CriticalErrors: fr.int("Critical_Errors"),
			ComplaintRate:  fr.float("Complaint_Rate"),
			TransferPct:    fr.float("Transfer_Pct"),
			RepeatCallPct:  fr.float("Repeat_Call_Pct"),
			SentimentScore: fr.float("Sentiment_Score"),
			CallVolume:     fr.int("Call_Volume"),
			TrainingHours:  fr.float("Training_Hours"),
			CoachingOpen:   fr.int("Coaching_Open"),
			CoachingClosed: fr.int("Coaching_Closed"),
		}
		if fr.err != nil {
			return fr.err
		}
		m.MonthLabel = utils.FormatMonth(m.Month)

		if !known[m.ColleagueID] {
			fr.fail(fmt.Errorf("%w: %s", ErrUnknownColleague, m.ColleagueID))
			return fr.err
		}

		key := rowKey{id: m.ColleagueID, month: m.Month}
		if seen[key] {
			fr.fail(fmt.Errorf("%w: %s %s", ErrDuplicateRow, m.ColleagueID, m.MonthLabel))
			return fr.err
		}
		seen[key] = true

		rows = append(rows, m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func parseTargets(file string, r io.Reader) (map[string]domain.Target, error) {
	required := []string{
		"Tenure_Band", "Quality_Target", "FCR_Target", "CSAT_Target", "AHT_Target",
		"Adherence_Target", "NPS_Target", "Hold_Target", "ACW_Target",
	}

	targets := make(map[string]domain.Target)

	err := forEachRecord(file, r, required, func(fr *fieldReader) error {
		t := domain.Target{
			TenureBand:      fr.str("Tenure_Band"),
			QualityTarget:   fr.float("Quality_Target"),
			FCRTarget:       fr.float("FCR_Target"),
			CSATTarget:      fr.float("CSAT_Target"),
			AHTTarget:       fr.float("AHT_Target"),
			AdherenceTarget: fr.float("Adherence_Target"),
			NPSTarget:       fr.float("NPS_Target"),
			HoldTarget:      fr.float("Hold_Target"),
			ACWTarget:       fr.float("ACW_Target"),
		}
		if fr.err != nil {
			return fr.err
		}

		if _, ok := targets[t.TenureBand]; ok {
			fr.fail(fmt.Errorf("%w: band %s", ErrDuplicateRow, t.TenureBand))
			return fr.err
		}
		targets[t.TenureBand] = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	return targets, nil
}

func parseObjectives(file string, r io.Reader, known map[string]bool) ([]domain.Objective, error) {
	required := []string{
		"Colleague_ID", "Objective_Text", "Objective_Type", "Category",
		"Status", "Progress_Pct", "Target_Date",
	}

	var rows []domain.Objective

	err := forEachRecord(file, r, required, func(fr *fieldReader) error {
		o := domain.Objective{
			ColleagueID: fr.str("Colleague_ID"),
			Text:        fr.str("Objective_Text"),
			Type:        fr.str("Objective_Type"),
			Category:    fr.str("Category"),
			Status:      fr.str("Status"),
			ProgressPct: fr.float("Progress_Pct"),
			TargetDate:  fr.date("Target_Date"),
		}
		if fr.err != nil {
			return fr.err
		}

		if !known[o.ColleagueID] {
			fr.fail(fmt.Errorf("%w: %s", ErrUnknownColleague, o.ColleagueID))
			return fr.err
		}

		rows = append(rows, o)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func parseBenchmarks(file string, r io.Reader) ([]domain.Benchmark, error) {
	required := []string{"Metric", "Industry_Average", "Top_Quartile", "Bottom_Quartile"}

	var rows []domain.Benchmark
	seen := make(map[string]bool)

	err := forEachRecord(file, r, required, func(fr *fieldReader) error {
		b := domain.Benchmark{
			Metric:          fr.str("Metric"),
			IndustryAverage: fr.float("Industry_Average"),
			TopQuartile:     fr.float("Top_Quartile"),
			BottomQuartile:  fr.float("Bottom_Quartile"),
		}
		if fr.err != nil {
			return fr.err
		}

		if seen[b.Metric] {
			fr.fail(fmt.Errorf("%w: metric %s", ErrDuplicateRow, b.Metric))
			return fr.err
		}
		seen[b.Metric] = true

		rows = append(rows, b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}
