package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/clambin/go-common/http/metrics"
	"github.com/clambin/go-common/http/middleware"
	"github.com/clambin/go-common/taskmanager"
	"github.com/clambin/go-common/taskmanager/httpserver"
	promserver "github.com/clambin/go-common/taskmanager/prometheus"
	"github.com/clambin/ledpanel/internal/configuration"
	"github.com/clambin/ledpanel/internal/ledpanel"
	"github.com/clambin/ledpanel/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

var version = "change-me"

func main() {
	cfg := configuration.GetConfiguration()
	logger := logging.New(cfg.Debug, cfg.Logging.Format, cfg.Logging.Journal)

	logger.Info("starting ledpanel", "version", version)

	panel, err := ledpanel.New(cfg, prometheus.DefaultRegisterer, logger.With("component", "panel"))
	if err != nil {
		logger.Error("failed to start", "err", err)
		os.Exit(1)
	}

	serverMetrics := metrics.NewRequestSummaryMetrics("ledpanel", "server", nil)
	prometheus.MustRegister(serverMetrics)
	mw := middleware.WithRequestMetrics(serverMetrics)

	tm := taskmanager.New(
		promserver.New(promserver.WithAddr(cfg.PrometheusAddr)),
		httpserver.New(cfg.Addr, mw(panel)),
		panel,
	)

	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer done()

	if err = tm.Run(ctx); err != nil {
		slog.Error("failed to run ledpanel", "err", err)
		os.Exit(1)
	}
}
