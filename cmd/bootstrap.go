package cmd

import (
	"context"
	"fmt"

	"workforce-manager/core/cache"
	"workforce-manager/core/config"
	"workforce-manager/core/database"
	"workforce-manager/core/events"
	"workforce-manager/core/logger"
	"workforce-manager/core/storage"
	"workforce-manager/feature/timesheet"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// services bundles the dependencies shared by the commands.
type services struct {
	cfg        *config.Config
	logger     *zap.Logger
	db         *gorm.DB
	cache      *cache.Cache
	storage    storage.Client
	dispatcher *events.Dispatcher
}

// bootstrap loads configuration, builds the logger and connects to the database.
func bootstrap() (*services, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logg = logg.With(zap.String("driver", cfg.Database.Driver))

	return &services{
		cfg:        cfg,
		logger:     logg,
		db:         db,
		dispatcher: events.NewDispatcher(logg),
	}, nil
}

// withCache connects the read cache. A cache that cannot be built is
// logged and left disabled.
func (r *services) withCache() *services {
	c, err := cache.NewFromConfig(r.cfg.Cache)
	if err != nil {
		r.logger.Warn("Cache disabled", zap.Error(err))
		return r
	}
	r.cache = c
	return r
}

// withStorage connects the archive storage when enabled and makes sure the bucket exists.
func (r *services) withStorage(ctx context.Context) (*services, error) {
	if !r.cfg.Storage.Enabled {
		return r, nil
	}
	client, err := storage.NewClient(r.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	if err := storage.EnsureBucket(ctx, client, r.cfg.Storage.Bucket, r.cfg.Storage.Region); err != nil {
		return nil, err
	}
	r.storage = client
	return r, nil
}

// timesheetService builds the service with every optional collaborator that is configured.
func (r *services) timesheetService() *timesheet.Service {
	opts := []timesheet.Option{timesheet.WithDispatcher(r.dispatcher)}
	if r.cache != nil {
		opts = append(opts, timesheet.WithCache(r.cache))
	}
	if r.storage != nil {
		opts = append(opts, timesheet.WithArchiver(
			timesheet.NewArchiver(r.storage, r.cfg.Storage.Bucket, r.cfg.Storage.ArchivePrefix)))
	}
	return timesheet.NewService(r.db, r.cfg.Timesheet, r.logger, opts...)
}
