package conference

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates a new conference feature. It is disabled without a repository.
func NewFeature(deps Dependencies) *Feature {
	svc := NewService(deps)
	return &Feature{
		service: svc,
		handler: NewHandler(svc),
		enabled: deps.Repository != nil,
	}
}

// Service returns the lifecycle service.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "conference"
}

// IsEnabled returns true if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
