package users

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	directory *Directory
	handler   *Handler
}

// NewFeature creates a new users feature.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	dir := NewDirectory(db)
	return &Feature{
		directory: dir,
		handler:   NewHandler(dir, logger),
	}
}

// Directory returns the feature's directory so other features can resolve users.
func (f *Feature) Directory() *Directory {
	return f.directory
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "users"
}

// IsEnabled returns true if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.directory.db != nil
}

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
