package content

import (
	"content-sync/core/server"
	contentsync "content-sync/feature/content/sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the content trigger feature. history may be nil.
func NewFeature(runner Runner, history contentsync.Recorder, cfg server.Config, logger *zap.Logger) *Feature {
	svc := NewService(runner, history, cfg.DeployHook, logger)
	h := NewHandler(svc, cfg)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "content"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
