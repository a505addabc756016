package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"content-sync/core/config"
	"content-sync/core/loader"
	"content-sync/core/logger"
	"content-sync/core/middleware/auth"
	"content-sync/core/middleware/rayid"
	"content-sync/feature/content"
	"content-sync/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "content-sync/docs/swagger"
)

// @title Content Sync API
// @version 1.0
// @description Triggers and inspects content snapshot rebuilds.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the content sync server",
	Long:  `Starts the HTTP server exposing the rebuild triggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		p, err := newPipeline(cmd.Context(), cfg, logg)
		if err != nil {
			logg.Fatal("Failed to initialize sync pipeline", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(content.NewFeature(p.syncer, p.history, cfg.Server, logg))
		mgr.Register(integrity.NewFeature(cfg.Snapshot.Dir, p.store, cfg.Storage.Bucket, cfg.Snapshot.Prefix, logg))

		// RayID first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		// Revalidate and webhook routes carry their own credentials.
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Next: content.IsPublicRoute}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
