package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fxconvert/internal/adapters"
	"fxconvert/internal/adapters/cache"
	"fxconvert/internal/adapters/httpclient"
	"fxconvert/internal/adapters/postgres"
	"fxconvert/internal/api"
	"fxconvert/internal/config"
	"fxconvert/internal/domain"
	"fxconvert/internal/flag"
	"fxconvert/internal/platform/db"
	httpserver "fxconvert/internal/platform/http"
	"fxconvert/internal/platform/logging"
	"fxconvert/internal/rate"
	ratehandler "fxconvert/internal/rate/handler"
	"fxconvert/internal/ui"
	pagehandler "fxconvert/internal/ui/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logCloser := logging.Setup(appCfg.Logging.Level, appCfg.Logging.File)
	defer func() { _ = logCloser.Close() }()
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Conversion history: in-process cache always, postgres when configured
	conversionCache, err := cache.NewConversionCache(appCfg.Cache.MaxItems)
	if err != nil {
		logrus.WithError(err).Error("Failed to create conversion cache")
		return err
	}
	defer conversionCache.Close()

	var conversionRepo adapters.ConversionRepository
	if appCfg.DbServer.Enabled() {
		// Bounded context for startup operations (DB connect, migrations)
		startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		pool, poolErr := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
		if poolErr != nil {
			logrus.WithError(poolErr).Error("Error connecting to db")
			return poolErr
		}
		defer pool.Close()
		logrus.Info("✅ Postgres connection successful")

		if migrateErr := db.Migrate(startupCtx, pool); migrateErr != nil {
			logrus.WithError(migrateErr).Error("Failed to apply migrations")
			return migrateErr
		}
		conversionRepo = postgres.NewConversionRepository(pool)

		scheduler := rate.NewScheduler(
			conversionRepo,
			time.Duration(appCfg.History.RetentionHours)*time.Hour,
			time.Duration(appCfg.Scheduler.JobDurationSec)*time.Second,
		)
		// Ensure scheduler stops before DB pool closes
		defer func() {
			if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
			}
		}()
		if startErr := scheduler.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start scheduler")
			return startErr
		}
		logrus.Info("✅ Scheduler activation successful")
	} else {
		logrus.Warn("No database configured, conversion history is kept in memory only")
	}

	// External clients
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	rateClient := httpclient.NewLoggingClient(
		logrus.StandardLogger(),
		httpclient.NewExchangeRateClient(appCfg.ExchangeRateAPI.BaseURL, httpTimeout),
	)

	// Services
	catalog := rate.NewCatalog()
	loader := rate.NewLoader(rateClient, catalog, appCfg.Converter.BaseCurrency)
	rateService := rate.NewService(rate.NewConverter(rateClient, catalog), conversionRepo, conversionCache)
	flagResolver := flag.NewResolver(appCfg.Flags.Host)

	page := ui.NewMemoryPage()
	controller := ui.NewController(
		loader,
		flagResolver,
		rateService,
		page.Page(),
		domain.CurrencySelection{Source: appCfg.Converter.DefaultSource, Target: appCfg.Converter.DefaultTarget},
		logrus.StandardLogger(),
	)
	// A failed load is reported on the page and retried through a reload
	controller.LoadCurrencies(ctx)

	// Handlers and router
	rateHandler := ratehandler.NewRateHandler(rateService, catalog, flagResolver)
	pageHandler := pagehandler.NewPageHandler(controller, page)
	router := api.NewRouter(rateHandler, pageHandler)

	logrus.WithField("port", appCfg.HTTPServer.Port).Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return fmt.Errorf("http server: %w", serverErr)
	}
	return nil
}
