package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"place-manager/core/loader"
	"place-manager/core/logger"
	"place-manager/core/metrics"
	"place-manager/core/middleware/auth"
	"place-manager/core/middleware/rayid"
	"place-manager/feature/integrity"
	"place-manager/feature/places"
	placeSync "place-manager/feature/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "place-manager/docs/swagger"
)

// @title Place Manager API
// @version 1.0
// @description Read API over the places synchronized from OpenStreetMap.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the place manager server",
	Long: `Starts the HTTP read API and initializes all enabled features.
When sync.interval_minutes is positive a sync runs at startup and then on every interval.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg, err := loadRuntime()
		if err != nil {
			log.Fatal(err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		db, err := openPlaces(cfg)
		if err != nil {
			logg.Fatal("Failed to open place database", zap.Error(err))
		}
		logg.Info("Connected to place database",
			zap.String("driver", cfg.Database.Driver),
			zap.String("name", cfg.Database.Name),
		)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Optional scheduler
		if interval := cfg.Sync.Interval(); interval > 0 {
			svc, closeLock, err := newSyncService(cfg, db, logg)
			if err != nil {
				logg.Fatal("Failed to create sync service", zap.Error(err))
			}
			defer closeLock()
			go placeSync.NewScheduler(svc, interval, logg).Start(ctx)
		} else {
			logg.Info("Sync scheduler disabled, run the sync command to refresh places")
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		cache, err := newCache(cfg)
		if err != nil {
			logg.Warn("Snapshot cache unavailable, integrity cache check will fail", zap.Error(err))
		}

		mgr := loader.NewManager()
		mgr.Register(places.NewFeature(db, logg))
		mgr.Register(integrity.NewFeature(db, cache, logg))

		// RayID must be first to trace everything
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

		// Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		if !cfg.Server.AuthEnabled() {
			logg.Warn("API key is empty, the read API is unauthenticated")
		}

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
