package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"requirement-monitor/core/loader"
	"requirement-monitor/core/logger"
	"requirement-monitor/core/metrics"
	"requirement-monitor/core/middleware/auth"
	"requirement-monitor/core/middleware/rayid"
	"requirement-monitor/core/reconcile"

	"requirement-monitor/feature/integrity"
	"requirement-monitor/feature/monitor"
	"requirement-monitor/feature/requirements"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "requirement-monitor/docs/swagger"
)

// @title Requirement Monitor API
// @version 1.0
// @description API for reconciling requirement file records with the storage tree.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the requirement monitor server",
	Long: `Starts the HTTP server and initializes all enabled features.
When monitor.interval_seconds is positive, file reconciliation also runs on that interval.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 1. Load Configuration and Logger
		cfg, logg, err := loadEnvironment()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Connect to Database (Optional)
		// Without it the monitor and requirement routes stay disabled.
		var db *gorm.DB
		if conn, err := connectDatabase(cfg); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		}

		// 3. Initialize Snapshot Store
		snaps, client, err := openSnapshots(cfg)
		if err != nil {
			return err
		}

		var runner *reconcile.Runner
		if db != nil {
			runner = reconcile.NewRunner(newReconciler(cfg, db, snaps, logg), logg)
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(monitor.NewFeature(runner, cfg.Monitor.BaseDir, logg))
		mgr.Register(requirements.NewFeature(db, logg))
		mgr.Register(integrity.NewFeature(cfg.Monitor, snaps, client, cfg.Storage, db, logg))

		// Middleware Registration
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
		if cfg.Server.Metrics {
			app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
		}

		// Everything below requires the API key
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}
		for _, f := range mgr.Features() {
			logg.Info("Feature registered", zap.String("feature", f.Name()), zap.Bool("enabled", f.IsEnabled()))
		}

		// 6. Scheduled reconciliation
		if runner != nil && cfg.Monitor.Interval() > 0 {
			go func() {
				logg.Info("Scheduled reconciliation enabled", zap.Duration("every", cfg.Monitor.Interval()))
				_ = runner.Loop(ctx, cfg.Monitor.Interval(), reconcile.ApplyOptions{})
			}()
		}

		// 7. Start Server
		listenErr := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
			listenErr <- app.Listen(cfg.Server.Addr())
		}()

		// 8. Graceful Shutdown
		select {
		case err := <-listenErr:
			if err != nil {
				return err
			}
			return errors.New("server stopped unexpectedly")
		case <-ctx.Done():
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
