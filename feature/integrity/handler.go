package integrity

import (
	"errors"

	"content-sync/core/logger"
	"content-sync/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.FileReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/snapshot", h.HandleSnapshotCheck)
	group.Get("/published", h.HandlePublishedCheck)
}

// HandleIntegrityCheck runs every check.
// @Summary Run All Integrity Checks
// @Description Checks the local snapshot documents and, when publishing is on, the bucket copies.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if files, err := h.service.CheckSnapshot(); err != nil {
		report["snapshot"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["snapshot"] = map[string]interface{}{"status": status(Healthy(files)), "files": files}
	}

	objects, err := h.service.CheckPublished(c.UserContext())
	switch {
	case errors.Is(err, ErrPublishingDisabled):
		report["published"] = map[string]interface{}{"status": "disabled"}
	case err != nil:
		report["published"] = map[string]interface{}{"status": "error", "error": err.Error()}
	default:
		report["published"] = map[string]interface{}{"status": "checked", "objects": objects}
	}

	return c.JSON(report)
}

// HandleSnapshotCheck checks the local snapshot documents.
// @Summary Check Snapshot
// @Description Verifies that every snapshot document exists and is a JSON array.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Snapshot Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/snapshot [get]
func (h *Handler) HandleSnapshotCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	files, err := h.service.CheckSnapshot()
	if err != nil {
		l.Error("Snapshot check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	healthy := Healthy(files)
	if !healthy {
		l.Warn("Snapshot incomplete")
	}

	return c.JSON(fiber.Map{
		"status": status(healthy),
		"files":  files,
	})
}

// HandlePublishedCheck checks the published snapshot objects.
// @Summary Check Published Snapshot
// @Description Lists the snapshot objects in the storage bucket.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Published Report"
// @Failure 503 {object} map[string]string "Publishing not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/published [get]
func (h *Handler) HandlePublishedCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	objects, err := h.service.CheckPublished(c.UserContext())
	if errors.Is(err, ErrPublishingDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Published snapshot check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"objects": objects,
	})
}

func status(healthy bool) string {
	if healthy {
		return "ok"
	}
	return "incomplete"
}
