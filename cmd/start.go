package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamestats/core/config"
	"gamestats/core/loader"
	"gamestats/core/logger"
	"gamestats/core/middleware/auth"
	"gamestats/core/middleware/rayid"

	"gamestats/feature/health"
	"gamestats/feature/playerstats"
	"gamestats/feature/snapshots"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "gamestats/docs/swagger"
)

// @title Game Stats API
// @version 1.0
// @description Normalized player statistics from third-party game stats providers.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the game stats server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if err := cfg.Server.Validate(); err != nil {
			log.Fatalf("Invalid server configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Wire components
		a, err := bootstrap(cmd.Context(), cfg, logg)
		if err != nil {
			logg.Fatal("Failed to initialize components", zap.Error(err))
		}
		defer a.close()

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		features := []loader.Feature{
			health.NewFeature(health.NewService(a.storage, cfg.Storage.Bucket, a.db, a.cache, a.providers, logg)),
			playerstats.NewFeature(a.stats),
			snapshots.NewFeature(a.snapshots, cfg.Storage.Enabled),
		}
		for _, f := range features {
			if err := mgr.Register(f); err != nil {
				logg.Fatal("Failed to register feature", zap.Error(err))
			}
		}

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with ray id
		app.Use(logger.Middleware(logg))

		// 3. Public routes
		if cfg.Server.Swagger {
			app.Get("/swagger/*", swagger.HandlerDefault)
		}
		app.Get("/metrics", a.metrics.Handler())

		// 4. Auth (health stays public for probes)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/health"}}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.Bool("auth", cfg.Server.AuthEnabled()),
				zap.Strings("providers", a.providers.Names()),
			)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
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
