package integrity

import (
	"context"

	"workforce-manager/core/database"
	"workforce-manager/core/storage"
	"workforce-manager/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	models []any
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
}

// NewService creates a new integrity service. The models are the source of
// truth for the schema check; client may be nil when archiving is disabled.
func NewService(db *gorm.DB, models []any, client storage.Client, bucket, region string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		db:     db,
		models: models,
		client: client,
		bucket: bucket,
		region: region,
		logger: logger,
	}
}

// CheckSchema compares the live database with the models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, s.models...)
}

// FixSchema migrates the models so missing tables and columns are created.
func (s *Service) FixSchema() error {
	s.logger.Info("Migrating schema", zap.Int("models", len(s.models)))
	return database.Migrate(s.db, s.models...)
}

// CheckStorage reports whether the archive bucket exists.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	return checks.CheckStorage(ctx, s.client, s.bucket)
}

// FixStorage creates the archive bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	return checks.FixStorage(ctx, s.client, s.bucket, s.region, s.logger)
}
