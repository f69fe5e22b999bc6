package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/opsvue/performance-coach-api/infrastructure/dataset"
	"github.com/opsvue/performance-coach-api/infrastructure/repository"
	"github.com/opsvue/performance-coach-api/internal/config"
	"github.com/opsvue/performance-coach-api/internal/domain"
	"github.com/opsvue/performance-coach-api/internal/scoring"
	"github.com/opsvue/performance-coach-api/pkg/metrics"
	"github.com/opsvue/performance-coach-api/pkg/utils"
)

// SnapshotSyncConfig holds the schedule and retention of the snapshot job
type SnapshotSyncConfig struct {
	CronSchedule    string
	SyncEnabled     bool
	RetentionMonths int
}

// SnapshotSyncService persists per-team aggregates of the latest reporting
// month, building the history the overview trend endpoints read after the
// CSV files have rotated away
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	dataset             dataset.Repository
	snapshotRepo        repository.TeamSnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewSnapshotSyncService(
	data dataset.Repository,
	snapshotRepo repository.TeamSnapshotRepository,
	appConfig *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule:    appConfig.SnapshotSync.CronSchedule,
		SyncEnabled:     appConfig.SnapshotSync.Enabled,
		RetentionMonths: appConfig.SnapshotSync.RetentionMonths,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    syncConfig.CronSchedule,
		"sync_enabled":     syncConfig.SyncEnabled,
		"retention_months": syncConfig.RetentionMonths,
	}).Info("Snapshot sync scheduler configured")

	return &SnapshotSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		dataset:      data,
		snapshotRepo: snapshotRepo,
	}
}

// Start schedules the snapshot job and runs the scheduler until the context
// is cancelled
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Snapshot sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting snapshot sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshots()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule snapshot sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping snapshot sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSnapshots aggregates the latest month per team and upserts one
// snapshot row each. Overlapping runs are skipped.
func (s *SnapshotSyncService) syncSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot sync already in progress, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	month, ok := s.dataset.LatestMonth()
	if !ok {
		logrus.Warn("Snapshot sync skipped, no dataset loaded")
		s.recordOutcome("skipped", "no dataset loaded")
		return
	}

	monthLabel := utils.FormatMonth(month)
	teams := s.teams()
	if len(teams) == 0 {
		logrus.WithField("month", monthLabel).Warn("Snapshot sync skipped, no teams in dataset")
		s.recordOutcome("skipped", "no teams in dataset")
		return
	}

	logrus.WithFields(logrus.Fields{
		"month": monthLabel,
		"teams": len(teams),
	}).Info("Starting snapshot sync")

	saved, failed := 0, 0
	for _, team := range teams {
		snapshot := s.buildSnapshot(team, month, monthLabel)
		if snapshot == nil {
			continue
		}

		if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
			logrus.WithFields(logrus.Fields{
				"team":  team,
				"month": monthLabel,
				"error": err.Error(),
			}).Error("Failed to persist team snapshot")
			failed++
			continue
		}
		saved++
	}

	if s.config.RetentionMonths > 0 {
		deleted, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionMonths)
		if err != nil {
			logrus.WithError(err).Error("Failed to prune old team snapshots")
		} else if deleted > 0 {
			logrus.WithFields(logrus.Fields{
				"deleted":          deleted,
				"retention_months": s.config.RetentionMonths,
			}).Info("Pruned old team snapshots")
		}
	}

	if failed > 0 {
		s.recordOutcome("error", fmt.Sprintf("%d of %d snapshots failed", failed, saved+failed))
	} else {
		s.recordOutcome("success", "")
	}

	logrus.WithFields(logrus.Fields{
		"month":  monthLabel,
		"saved":  saved,
		"failed": failed,
	}).Info("Snapshot sync completed")
}

// buildSnapshot aggregates one team's rows of the reporting month. Returns
// nil when the team has no rows for that month.
func (s *SnapshotSyncService) buildSnapshot(team string, month time.Time, monthLabel string) *domain.TeamSnapshot {
	rows := s.dataset.TeamMetrics(team, month)
	if len(rows) == 0 {
		return nil
	}

	var score, quality, fcr, csat, aht float64
	volume := 0
	statusCounts := make(map[string]int)

	for _, row := range rows {
		colleague, ok := s.dataset.ColleagueByID(row.ColleagueID)
		if !ok {
			continue
		}
		target, _ := s.dataset.TargetFor(colleague.TenureBand)

		breakdown := scoring.OverallScore(row, target)
		score += breakdown.Overall
		statusCounts[scoring.PerformanceStatus(breakdown.Overall)]++

		quality += row.QualityPct
		fcr += row.FCRPct
		csat += row.CSATPct
		aht += row.AHTMin
		volume += row.CallVolume
	}

	n := float64(len(rows))

	return &domain.TeamSnapshot{
		Month: monthLabel,
		Team:  team,
		Metrics: domain.TeamSnapshotMetrics{
			Headcount:     len(rows),
			AvgScore:      utils.RoundWithOneDecimalPlace(score / n),
			AvgQualityPct: utils.RoundWithOneDecimalPlace(quality / n),
			AvgFCRPct:     utils.RoundWithOneDecimalPlace(fcr / n),
			AvgCSATPct:    utils.RoundWithOneDecimalPlace(csat / n),
			AvgAHTMin:     utils.RoundWithOneDecimalPlace(aht / n),
			CallVolume:    volume,
			StatusCounts:  statusCounts,
		},
	}
}

func (s *SnapshotSyncService) teams() []string {
	seen := make(map[string]struct{})
	var teams []string
	for _, colleague := range s.dataset.Colleagues() {
		if _, ok := seen[colleague.Team]; ok {
			continue
		}
		seen[colleague.Team] = struct{}{}
		teams = append(teams, colleague.Team)
	}
	sort.Strings(teams)

	return teams
}

func (s *SnapshotSyncService) recordOutcome(outcome, syncError string) {
	metrics.SnapshotSyncsTotal.WithLabelValues(outcome).Inc()

	s.syncMutex.Lock()
	s.lastSyncError = syncError
	s.syncMutex.Unlock()
}

// TriggerManualSync starts a snapshot run outside the schedule
func (s *SnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot sync already in progress, ignoring manual request")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual snapshot sync")
	go s.syncSnapshots()
}

// GetStatus reports the scheduler state
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"retention_months":       s.config.RetentionMonths,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
