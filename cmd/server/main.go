package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mgiwa78/hr-intern-macro-app/internal/adapters/grpc/handler"
	"github.com/mgiwa78/hr-intern-macro-app/internal/adapters/storage"
	"github.com/mgiwa78/hr-intern-macro-app/internal/core/onboarding"
	"github.com/mgiwa78/hr-intern-macro-app/internal/platform/config"
	"github.com/mgiwa78/hr-intern-macro-app/internal/platform/logger"
	"github.com/mgiwa78/hr-intern-macro-app/internal/platform/logger/sl"
	"github.com/mgiwa78/hr-intern-macro-app/internal/platform/metrics"
	"github.com/mgiwa78/hr-intern-macro-app/internal/platform/otel"
	"github.com/mgiwa78/hr-intern-macro-app/internal/platform/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to CONFIG_PATH env)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("server exited with error", sl.Err(err))
		os.Exit(1)
	}
}

// run はサーバーを起動し、シグナル受信まで待ちます。defer による後始末は戻る前に必ず実行されます。
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.PathFromEnv(configPath))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	appLogger := logger.New(cfg.Env)

	shutdownTracing, err := otel.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("set up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			appLogger.WarnContext(shutdownCtx, "failed to flush traces", sl.Err(err))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	backend, err := storage.Open(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.Storage.Driver, err)
	}
	defer backend.Close()

	store := metrics.NewInstrumentedStore(backend.Store, appMetrics)
	svc := onboarding.NewService(store, nil, backend.Tx,
		onboarding.WithLogger(appLogger),
		onboarding.WithRecorder(appMetrics),
	)

	grpcServer := server.New(cfg.Server.ListenAddr, handler.NewOnboardingGrpcHandler(svc))
	monitoring := server.NewMonitoringServer(
		cfg.Server.MetricsAddr,
		reg,
		server.NewHealthChecker(server.StorePinger(backend.Store), appLogger),
		cfg.Server.ShutdownTimeout,
		appLogger,
	)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := monitoring.Run(ctx); err != nil {
			errs <- fmt.Errorf("monitoring server: %w", err)
			stop()
		}
	}()

	go func() {
		defer wg.Done()
		appLogger.InfoContext(ctx, "gRPC server listening",
			slog.String("addr", cfg.Server.ListenAddr),
			slog.String("storage", cfg.Storage.Driver),
		)
		if err := grpcServer.Run(ctx); err != nil {
			errs <- fmt.Errorf("gRPC server: %w", err)
			stop()
		}
	}()

	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return err
	}

	appLogger.InfoContext(context.Background(), "server stopped gracefully")
	return nil
}
