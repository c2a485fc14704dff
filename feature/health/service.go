package health

import (
	"context"

	"gamestats/core/cache"
	"gamestats/core/provider"
	"gamestats/core/storage"
	"gamestats/feature/health/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Report is the combined result of all checks.
type Report struct {
	Status string                   `json:"status"`
	Checks map[string]checks.Result `json:"checks"`
}

// Service runs health checks. Every dependency is optional.
type Service struct {
	client    storage.Client
	bucket    string
	db        *gorm.DB
	cache     cache.Cache
	providers *provider.Registry
	logger    *zap.Logger
}

// NewService creates a new health service.
func NewService(client storage.Client, bucket string, db *gorm.DB, c cache.Cache, providers *provider.Registry, logger *zap.Logger) *Service {
	return &Service{
		client:    client,
		bucket:    bucket,
		db:        db,
		cache:     c,
		providers: providers,
		logger:    logger,
	}
}

// Run runs every check. The report status is "error" when any check failed.
func (s *Service) Run(ctx context.Context) *Report {
	report := &Report{
		Status: checks.StatusOK,
		Checks: map[string]checks.Result{
			"storage":  checks.CheckStorage(ctx, s.client, s.bucket),
			"database": checks.CheckDatabase(ctx, s.db),
			"cache":    checks.CheckCache(ctx, s.cache),
			"provider": checks.CheckProviders(s.providers),
		},
	}

	for name, r := range report.Checks {
		if r.Failed() {
			report.Status = checks.StatusError
			s.logger.Warn("Health check failed", zap.String("check", name), zap.String("error", r.Error))
		}
	}
	return report
}
