package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/opsvue/performance-coach-api/infrastructure/dataset"
	"github.com/opsvue/performance-coach-api/internal/config"
)

// DatasetRefreshConfig holds the schedule of the CSV reload job
type DatasetRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DatasetRefreshService re-reads the data directory on a schedule, so a
// dropped-in set of fresh exports becomes live without a restart
type DatasetRefreshService struct {
	scheduler           *gocron.Scheduler
	config              DatasetRefreshConfig
	dataset             dataset.Repository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewDatasetRefreshService(data dataset.Repository, appConfig *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: appConfig.DatasetSync.CronSchedule,
		SyncEnabled:  appConfig.DatasetSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Dataset refresh scheduler configured")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		dataset:   data,
	}
}

// Start schedules the reload job and runs the scheduler until the context is
// cancelled
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Dataset refresh disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting dataset refresh scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDataset()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule dataset refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping dataset refresh scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshDataset reloads the CSV directory. Overlapping runs are skipped;
// a failed parse keeps the previous in-memory dataset live.
func (s *DatasetRefreshService) refreshDataset() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Dataset refresh already in progress, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Starting dataset refresh")

	err := s.dataset.Reload()

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastSyncError = err.Error()
	} else {
		s.lastSyncError = ""
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Dataset refresh failed, previous dataset stays live")
		return
	}

	status := s.dataset.Status()
	logrus.WithFields(logrus.Fields{
		"latest_month": status.LatestMonth,
		"months":       len(status.Months),
		"rows":         status.Rows,
	}).Info("Dataset refresh completed")
}

// TriggerManualSync starts a reload outside the schedule
func (s *DatasetRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Dataset refresh already in progress, ignoring manual request")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual dataset refresh")
	go s.refreshDataset()
}

// GetStatus reports the scheduler state together with the dataset health
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	lastError := s.lastSyncError
	s.syncMutex.Unlock()

	status := s.dataset.Status()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
		"last_sync_error":        lastError,
		"dataset_loaded":         status.Loaded,
		"dataset_latest_month":   status.LatestMonth,
		"dataset_rows":           status.Rows,
	}
}
