package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/opsvue/performance-coach-api/infrastructure/database/postgres"
	"github.com/opsvue/performance-coach-api/infrastructure/dataset"
	"github.com/opsvue/performance-coach-api/infrastructure/integrator/anthropic"
	"github.com/opsvue/performance-coach-api/infrastructure/integrator/anthropic/anthropicclient"
	"github.com/opsvue/performance-coach-api/infrastructure/repository"
	"github.com/opsvue/performance-coach-api/internal/api"
	"github.com/opsvue/performance-coach-api/internal/config"
	"github.com/opsvue/performance-coach-api/internal/scheduler"
	"github.com/opsvue/performance-coach-api/internal/usecases/authenticating"
	"github.com/opsvue/performance-coach-api/internal/usecases/coaching"
	"github.com/opsvue/performance-coach-api/internal/usecases/insighting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	snapshotRepo := repository.NewTeamSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	datasetStore := dataset.NewStore(cfg.Dataset.Dir)
	if err := datasetStore.Load(); err != nil {
		// Dashboards answer 503 until the scheduler manages a successful load
		logrus.WithError(err).Error("Initial dataset load failed")
	}

	insightService := insighting.NewService(cfg, datasetStore, snapshotRepo)

	anthropicClient := anthropicclient.NewClient(cfg)
	coachGenerator := anthropic.New(cfg, anthropicClient)
	coachService := coaching.NewService(cfg, datasetStore, coachGenerator)

	datasetRefreshService := scheduler.NewDatasetRefreshService(datasetStore, cfg)
	snapshotSyncService := scheduler.NewSnapshotSyncService(datasetStore, snapshotRepo, cfg)

	if err := datasetRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start the dataset refresh scheduler")
	} else {
		logrus.Info("Dataset refresh scheduler started")
	}

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start the snapshot sync scheduler")
	} else {
		logrus.Info("Snapshot sync scheduler started")
	}

	server, err := api.New(
		cfg,
		insightService,
		coachService,
		authenticator,
		datasetRefreshService,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and anchors the working directory at
// the binary's source location so relative paths in .env keep working
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
