package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"asset-audit/core/clock"
	"asset-audit/core/config"
	"asset-audit/core/database"
	"asset-audit/core/loader"
	"asset-audit/core/logger"
	"asset-audit/core/middleware/auth"
	"asset-audit/core/middleware/rayid"
	"asset-audit/core/notify"
	"asset-audit/core/reconcile"
	"asset-audit/core/storage"

	"asset-audit/feature/assets"
	"asset-audit/feature/conference"
	"asset-audit/feature/integrity"
	"asset-audit/feature/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "asset-audit/docs/swagger"
)

// @title Asset Audit API
// @version 1.0
// @description API for physical asset audits: reconciliation, conferences and reports.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the asset audit server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Required)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", db.Dialector.Name()))

		// 4. Initialize Storage and the report sink
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		sink, err := notify.NewSink(cfg.Notify, store, cfg.Storage.Bucket, logg)
		if err != nil {
			logg.Fatal("Failed to create notification sink", zap.Error(err))
		}

		// 5. Wire collaborators
		registry := reconcile.NewCachedRegistry(assets.NewRepository(db), cfg.Reconcile.CacheTTL())
		userFeature := users.NewFeature(db, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		mgr := loader.NewManager(logg)
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, cfg.Notify.Prefix, db, logg))
		mgr.Register(assets.NewFeature(registry, logg))
		mgr.Register(userFeature)
		mgr.Register(conference.NewFeature(conference.Dependencies{
			Repository:    conference.NewGormRepository(db),
			Registry:      registry,
			Identity:      userFeature.Directory(),
			Sink:          sink,
			Clock:         clock.NewSystem(),
			NotifyTimeout: cfg.Notify.Timeout(),
			Logger:        logg,
		}))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
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

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			logg.Warn("Shutdown did not complete", zap.Error(err))
		}
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
