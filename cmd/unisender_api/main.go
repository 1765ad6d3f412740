package main

import (
	"context"
	"encoding/json" // For health check JSON
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/aradsms/unisender_services/internal/platform/config"
	"github.com/aradsms/unisender_services/internal/platform/logger"
	"github.com/aradsms/unisender_services/internal/public_api_service/middleware"
	httptransport "github.com/aradsms/unisender_services/internal/public_api_service/transport/http"
	"github.com/aradsms/unisender_services/internal/unisender_service/app"
)

const serviceName = "unisender_api"

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		slog.Error("Failed to load configuration", "service", serviceName, "error", err)
		os.Exit(1)
	}

	appLogger := logger.Configure(cfg.EnableLogging, cfg.LogLevel)
	appLogger.Info("Unisender API service starting...", "port", cfg.ServerPort, "transport", cfg.Transport, "lang", cfg.Lang)

	if cfg.APIKey == "" && cfg.Transport == "http" {
		appLogger.Warn("UNISENDER_API_KEY is empty; every Unisender call will be rejected")
	}

	gateway, err := app.NewGatewayClientFromConfig(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create Unisender gateway client", "error", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           newRouter(cfg, gateway, appLogger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	mainCtx, mainCancel := context.WithCancel(context.Background())
	defer mainCancel()
	g, groupCtx := errgroup.WithContext(mainCtx)

	g.Go(func() error {
		appLogger.Info(fmt.Sprintf("Unisender API server listening on port %d", cfg.ServerPort))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("HTTP server failed to serve", "error", err)
			return err
		}
		return nil
	})

	// Goroutine for handling termination signals
	g.Go(func() error {
		stopSignal := make(chan os.Signal, 1)
		signal.Notify(stopSignal, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-stopSignal:
			appLogger.Info("Received termination signal", "signal", sig.String())
			mainCancel()
			return nil
		case <-groupCtx.Done():
			return nil
		}
	})

	g.Go(func() error {
		<-groupCtx.Done()
		appLogger.Info("Shutting down HTTP server...")
		ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancelShutdown()
		if err := httpServer.Shutdown(ctxShutdown); err != nil {
			appLogger.Error("HTTP server shutdown failed", "error", err)
			return err
		}
		appLogger.Info("HTTP server shut down gracefully.")
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Service group encountered an error", "error", err)
		os.Exit(1)
	}
	appLogger.Info("Unisender API service shut down.")
}

func newRouter(cfg *config.Config, gateway httptransport.UnisenderGateway, appLogger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(httptransport.PrometheusMetricsMiddleware)

	unisenderHandler := httptransport.NewUnisenderHandler(gateway, httptransport.SenderDefaults{
		SMSSender:   cfg.DefaultSMSSender,
		EmailSender: cfg.DefaultEmailSender,
	}, appLogger, httptransport.NewValidator())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "Unisender API service is healthy"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/unisender", func(ur chi.Router) {
		if cfg.APIJWTSecret != "" {
			ur.Use(middleware.JWTAuthMiddleware(cfg.APIJWTSecret, appLogger))
		}
		unisenderHandler.RegisterRoutes(ur)
	})

	return r
}
