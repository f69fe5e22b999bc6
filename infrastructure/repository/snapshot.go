package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/opsvue/performance-coach-api/infrastructure/database/postgres"
	"github.com/opsvue/performance-coach-api/internal/domain"
	"github.com/opsvue/performance-coach-api/pkg/utils"
)

const (
	teamSnapshotsTable = "team_snapshots ts"
)

type TeamSnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.TeamSnapshot) error
	GetByMonth(month string) ([]*domain.TeamSnapshot, error)
	GetByTeam(team string, months int) ([]*domain.TeamSnapshot, error)
	History(months int) ([]*domain.TeamSnapshot, error)
	DeleteOlderThan(months int) (int64, error)
}

type teamSnapshotRepository struct {
	conn *postgres.Connection
}

func NewTeamSnapshotRepository(conn *postgres.Connection) TeamSnapshotRepository {
	return &teamSnapshotRepository{
		conn: conn,
	}
}

// SaveOrUpdate upserts the aggregate of one (month, team) pair. The metrics
// payload is stored as JSONB.
func (r *teamSnapshotRepository) SaveOrUpdate(snapshot *domain.TeamSnapshot) error {
	metricsJSON, err := json.Marshal(snapshot.Metrics)
	if err != nil {
		return fmt.Errorf("failed to serialise snapshot metrics: %w", err)
	}

	monthDate, err := utils.ParseMonth(snapshot.Month)
	if err != nil {
		return fmt.Errorf("invalid snapshot month %q: %w", snapshot.Month, err)
	}

	query := squirrel.StatementBuilder.
		Insert("team_snapshots").
		Columns("month", "team", "metrics").
		Values(
			monthDate.Format("2006-01-02"),
			snapshot.Team,
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (month, team) DO UPDATE SET
				metrics = EXCLUDED.metrics,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetByMonth returns every team aggregate of one reporting month
func (r *teamSnapshotRepository) GetByMonth(month string) ([]*domain.TeamSnapshot, error) {
	monthDate, err := utils.ParseMonth(month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}

	query, args, err := squirrel.
		Select("ts.id, ts.month, ts.team, ts.metrics, ts.created_at, ts.updated_at").
		From(teamSnapshotsTable).
		Where(squirrel.Eq{"ts.month": monthDate.Format("2006-01-02")}).
		OrderBy("ts.team ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return r.querySnapshots(query, args...)
}

// GetByTeam returns one team's aggregates, newest first, covering the last
// N months. Zero months means the full history.
func (r *teamSnapshotRepository) GetByTeam(team string, months int) ([]*domain.TeamSnapshot, error) {
	builder := squirrel.
		Select("ts.id, ts.month, ts.team, ts.metrics, ts.created_at, ts.updated_at").
		From(teamSnapshotsTable).
		Where(squirrel.Eq{"ts.team": team}).
		OrderBy("ts.month DESC").
		PlaceholderFormat(squirrel.Dollar)

	if months > 0 {
		builder = builder.Where(squirrel.GtOrEq{"ts.month": monthsAgo(months)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return r.querySnapshots(query, args...)
}

// History returns the aggregates of every team, newest month first, covering
// the last N months. Zero months means the full history.
func (r *teamSnapshotRepository) History(months int) ([]*domain.TeamSnapshot, error) {
	builder := squirrel.
		Select("ts.id, ts.month, ts.team, ts.metrics, ts.created_at, ts.updated_at").
		From(teamSnapshotsTable).
		OrderBy("ts.month DESC", "ts.team ASC").
		PlaceholderFormat(squirrel.Dollar)

	if months > 0 {
		builder = builder.Where(squirrel.GtOrEq{"ts.month": monthsAgo(months)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return r.querySnapshots(query, args...)
}

func (r *teamSnapshotRepository) DeleteOlderThan(months int) (int64, error) {
	query, args, err := squirrel.
		Delete("team_snapshots").
		Where(squirrel.Lt{"month": monthsAgo(months)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rowsAffected, nil
}

func (r *teamSnapshotRepository) querySnapshots(query string, args ...interface{}) ([]*domain.TeamSnapshot, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.TeamSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	return snapshots, nil
}

func (r *teamSnapshotRepository) scanSnapshot(rows *sql.Rows) (*domain.TeamSnapshot, error) {
	snapshot := &domain.TeamSnapshot{}
	var month time.Time
	var metricsJSON []byte

	err := rows.Scan(
		&snapshot.ID,
		&month,
		&snapshot.Team,
		&metricsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.Month = utils.FormatMonth(month)

	if metricsJSON != nil {
		if err := json.Unmarshal(metricsJSON, &snapshot.Metrics); err != nil {
			return nil, fmt.Errorf("failed to deserialise snapshot metrics: %w", err)
		}
	}

	return snapshot, nil
}

// monthsAgo returns the first day of the month N months back, as a SQL date
func monthsAgo(months int) string {
	now := time.Now()
	cutoff := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -months, 0)
	return cutoff.Format("2006-01-02")
}
