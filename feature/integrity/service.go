package integrity

import (
	"context"

	"asset-audit/core/storage"
	"asset-audit/feature/assets"
	"asset-audit/feature/conference"
	"asset-audit/feature/integrity/checks"
	"asset-audit/feature/users"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket, prefix string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		db:     db,
		logger: logger,
	}
}

// Models returns every model whose table the service expects.
func Models() []any {
	return append([]any{&assets.Asset{}, &users.User{}}, conference.Models()...)
}

// CheckSchema compares the database with the models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, Models()...)
}

// CheckOutbox returns what is missing from the report outbox.
func (s *Service) CheckOutbox(ctx context.Context) (*checks.OutboxReport, error) {
	return checks.CheckOutbox(ctx, s.client, s.bucket, s.prefix)
}

// FixOutbox creates the missing parts of the outbox.
func (s *Service) FixOutbox(ctx context.Context, report *checks.OutboxReport) error {
	return checks.FixOutbox(ctx, s.client, report, s.logger)
}
