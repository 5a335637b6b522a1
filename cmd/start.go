package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"finledger/core/loader"
	"finledger/core/logger"
	"finledger/core/middleware/auth"
	"finledger/core/middleware/rayid"
	"finledger/feature/golden"
	"finledger/feature/integrity"
	"finledger/feature/reconciliation"
	"finledger/feature/suspense"
	"finledger/feature/truth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "finledger/docs/swagger"
)

// @title Finledger Reconciliation API
// @version 1.0
// @description Reconciles ledger holdings against golden reference statements and manages suspense.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciliation server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger, database, storage
		a, err := bootstrap(true)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := a.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Features
		truthFeature := truth.NewFeature(a.db, logg)
		if n, err := truthFeature.Service().SeedDefaults(context.Background()); err != nil {
			logg.Fatal("Failed to seed truth-source defaults", zap.Error(err))
		} else {
			logg.Info("Truth-source defaults seeded", zap.Int("entries", n))
		}

		goldenFeature := golden.NewFeature(a.db, a.store, a.goldenOptions(), logg)
		reconSvc, err := a.reconciliationService(goldenFeature.Service(), truthFeature.Service())
		if err != nil {
			logg.Fatal("Failed to create reconciliation service", zap.Error(err))
		}

		mgr := loader.NewManager()
		mgr.Register(truthFeature)
		mgr.Register(goldenFeature)
		mgr.Register(reconciliation.NewFeature(reconSvc))
		mgr.Register(suspense.NewFeature(a.db, logg))
		mgr.Register(integrity.NewFeature(a.store, a.cfg.Storage.Bucket, logg, a.db, schemaModels()))

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 3. Middleware. RayID first so everything after it is traceable.
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

		// Swagger documentation is public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		// 4. Routes
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 5. Serve
		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			if err := app.Listen(a.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(a.cfg.Server.ShutdownTimeout()); err != nil {
			logg.Error("Server shutdown failed", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
