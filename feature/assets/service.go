package assets

import (
	"context"

	"asset-audit/core/reconcile"

	"go.uber.org/zap"
)

// Service runs ad-hoc verifications that are not tied to a conference.
type Service struct {
	registry reconcile.Registry
	logger   *zap.Logger
}

// NewService creates a new assets service.
func NewService(registry reconcile.Registry, logger *zap.Logger) *Service {
	return &Service{
		registry: registry,
		logger:   logger,
	}
}

// Lookup returns the registry entry of code.
func (s *Service) Lookup(ctx context.Context, code string) (*reconcile.Asset, error) {
	return reconcile.Lookup(ctx, s.registry, code)
}

// Verify checks code against the location declared by the scanner.
func (s *Service) Verify(ctx context.Context, code, declaredLocation string) (*reconcile.Verification, error) {
	return reconcile.VerifyOne(ctx, s.registry, code, declaredLocation)
}

// Reconcile classifies codes against the assets registered at location.
func (s *Service) Reconcile(ctx context.Context, location string, codes []string) (*reconcile.Result, error) {
	return reconcile.Reconcile(ctx, s.registry, location, codes)
}
