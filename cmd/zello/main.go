// Command zello runs a hello-world sequence against the null driver with the
// validation layer installed in front of it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"

	"levelzero/internal/driver/null"
	"levelzero/internal/loader"
	"levelzero/internal/platform/config"
	"levelzero/internal/platform/httpserver"
	"levelzero/internal/platform/logger"
	platformmetrics "levelzero/internal/platform/metrics"
	platformotel "levelzero/internal/platform/otel"
	httptransport "levelzero/internal/transport/http"
	"levelzero/internal/validation"
	"levelzero/internal/validation/bootstrap"
	validationmetrics "levelzero/internal/validation/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	devices := flag.Int("devices", 1, "number of devices the null driver reports")
	leak := flag.Bool("leak", false, "skip one free to exercise the leak checker")
	serve := flag.String("serve", "", "serve diagnostics on this address until interrupted")
	flag.Parse()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := platformotel.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			log.Warn("otel shutdown", "error", err)
		}
	}()

	registry, err := bootstrap.Setup(cfg.Validation, bootstrap.Deps{
		Logger:     log,
		LeakReport: os.Stdout,
		Registry:   validation.Default(),
	})
	if err != nil {
		return err
	}

	promRegistry := prometheus.NewRegistry()
	driver := null.New(null.WithDevices(*devices), null.WithLogger(log))

	var opts []loader.Option
	if bootstrap.Enabled(cfg.Validation) {
		layer, err := validation.New(registry,
			validation.WithLogger(log),
			validation.WithMetrics(validationmetrics.New(promRegistry)),
			validation.WithTracer(otel.Tracer("levelzero/validation")),
		)
		if err != nil {
			return err
		}
		opts = append(opts, loader.WithLayer(layer))
	}
	ld, err := loader.New(driver, append(opts, loader.WithLogger(log))...)
	if err != nil {
		return err
	}
	tables, err := ld.Load()
	if err != nil {
		return err
	}

	runErr := newWorld(tables, os.Stdout, *leak).run(ctx)

	if *serve != "" {
		err := serveDiagnostics(ctx, *serve, registry, promRegistry, log)
		runErr = errors.Join(runErr, err)
	}

	return errors.Join(runErr, registry.Close())
}

func serveDiagnostics(ctx context.Context, addr string, registry *validation.Registry, reg *prometheus.Registry, log *slog.Logger) error {
	handler := httptransport.NewHandler(registry, log, platformmetrics.New(reg))
	srv := httpserver.New(addr, httptransport.NewRouter(handler, reg))
	log.Info("serving diagnostics", "addr", addr)
	return httpserver.Run(ctx, srv)
}
