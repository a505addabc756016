package content

import (
	"errors"

	"content-sync/core/logger"
	"content-sync/core/server"
	contentsync "content-sync/feature/content/sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Routes that authenticate with their own credentials instead of the API key.
const (
	RevalidatePath = "/api/revalidate"
	WebhookPath    = "/api/contentful/webhook"
)

// Headers read by the webhook route.
const (
	TopicHeader         = "X-Contentful-Topic"
	WebhookSecretHeader = "X-Webhook-Secret"
)

// Handler handles HTTP requests that trigger content rebuilds.
type Handler struct {
	service *Service
	cfg     server.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, cfg server.Config) *Handler {
	// Force import for Swagger
	var _ = contentsync.Run{}
	return &Handler{service: service, cfg: cfg}
}

// RegisterRoutes registers the content routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Post("/build-data", h.HandleBuildData)
	group.Get("/revalidate", h.HandleRevalidate)
	group.Post("/contentful/webhook", h.HandleWebhook)
	group.Get("/sync/runs", h.HandleListRuns)
}

// IsPublicRoute reports whether a request targets a route that bypasses the API key.
func IsPublicRoute(c *fiber.Ctx) bool {
	switch c.Path() {
	case RevalidatePath, WebhookPath:
		return true
	default:
		return false
	}
}

// HandleBuildData runs a full content sync.
// @Summary Build Data
// @Description Fetches every content category and rewrites the snapshot files.
// @Tags content
// @Produce json
// @Success 200 {object} map[string]interface{} "Run summary"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/build-data [post]
func (h *Handler) HandleBuildData(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Rebuild requested")

	result, err := h.service.Rebuild(c.UserContext())
	if err != nil {
		l.Error("Rebuild failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"ok":     true,
		"counts": result.Counts,
		"runId":  result.RunID,
	})
}

// HandleRevalidate rebuilds the snapshot when the shared secret matches.
// @Summary Revalidate
// @Description Rebuilds the snapshot files. Requires the revalidate secret.
// @Tags content
// @Produce json
// @Param secret query string true "Revalidate secret"
// @Success 200 {object} map[string]interface{} "Revalidated"
// @Failure 401 {object} map[string]string "Invalid secret"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/revalidate [get]
func (h *Handler) HandleRevalidate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if !h.cfg.CanRevalidate(c.Query("secret")) {
		l.Warn("Revalidate rejected")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid secret"})
	}

	result, err := h.service.Rebuild(c.UserContext())
	if err != nil {
		l.Error("Revalidate failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"revalidated": true,
		"counts":      result.Counts,
	})
}

// HandleWebhook reacts to upstream publish events by calling the deploy hook.
// It never runs a sync itself; the deployed build does that.
// @Summary Publish Webhook
// @Description Triggers the deploy hook. Requires the X-Contentful-Topic header and, when configured, the webhook secret.
// @Tags content
// @Produce json
// @Param X-Contentful-Topic header string true "Event topic"
// @Param X-Webhook-Secret header string false "Webhook secret"
// @Success 200 {object} map[string]interface{} "Accepted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Deploy hook failed"
// @Router /api/contentful/webhook [post]
func (h *Handler) HandleWebhook(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	topic := c.Get(TopicHeader)
	if topic == "" || !h.cfg.AcceptsWebhook(c.Get(WebhookSecretHeader)) {
		l.Warn("Webhook rejected", zap.String("topic", topic))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	l = l.With(zap.String("topic", topic))
	l.Info("Webhook received")

	triggered, err := h.service.TriggerDeploy(c.UserContext())
	if err != nil {
		l.Error("Deploy hook failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"rebuilt":         true,
		"deployTriggered": triggered,
	})
}

// HandleListRuns returns the recent sync history.
// @Summary List Sync Runs
// @Description Returns the most recent sync runs, newest first.
// @Tags content
// @Produce json
// @Param limit query int false "Maximum number of runs" default(20)
// @Success 200 {array} sync.Run "Runs"
// @Failure 503 {object} map[string]string "History not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/sync/runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runs, err := h.service.RecentRuns(c.UserContext(), c.QueryInt("limit", 20))
	if errors.Is(err, ErrHistoryDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Listing sync runs failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(runs)
}
