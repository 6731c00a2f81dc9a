package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"bloodnet/internal/directory"
	"bloodnet/internal/directory/catalog"
	dirmetrics "bloodnet/internal/directory/metrics"
	"bloodnet/internal/forms"
	formmetrics "bloodnet/internal/forms/metrics"
	"bloodnet/internal/i18n"
	i18nhandler "bloodnet/internal/i18n/handler"
	"bloodnet/internal/platform/config"
	"bloodnet/internal/platform/httpserver"
	"bloodnet/internal/platform/logger"
	"bloodnet/internal/platform/metrics"
	"bloodnet/internal/ratelimit"
	rlmetrics "bloodnet/internal/ratelimit/metrics"
	httptransport "bloodnet/internal/transport/http"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: "Run the HTTP API. Settings come from BLOODNET_* environment variables,\n" +
			"the YAML file named by BLOODNET_CONFIG, then built-in defaults.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if opts.seed != "" {
				cfg.SeedFile = opts.seed
			}

			log, syncLog := logger.New(cfg.LogLevel, cfg.LogFormat)
			defer func() { _ = syncLog() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log, nil)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides BLOODNET_ADDR)")
	return cmd
}

// serve runs the API until ctx is cancelled, then drains in-flight requests
// within cfg.ShutdownTimeout. ready, when set, receives the bound address.
func serve(ctx context.Context, cfg config.Server, log *slog.Logger, ready func(addr string)) error {
	router, err := buildRouter(cfg, log)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Addr, err)
	}
	srv := httpserver.New(cfg, router)
	log.Info("starting bloodnet", "addr", ln.Addr().String())
	if ready != nil {
		ready(ln.Addr().String())
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		log.Info("server stopped")
		return nil
	})
	return g.Wait()
}

func buildRouter(cfg config.Server, log *slog.Logger) (http.Handler, error) {
	defaultLocale, err := i18n.ParseLocale(cfg.DefaultLocale)
	if err != nil {
		return nil, err
	}

	c, err := catalog.Load(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	for _, issue := range catalog.Lint(c) {
		log.Warn("catalog issue",
			"kind", issue.Kind,
			"id", issue.ID,
			"field", issue.Field,
			"value", issue.Value,
			"message", issue.Message,
		)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	dm := dirmetrics.NewWithRegisterer(reg)

	svc, err := directory.NewService(c, log, dm)
	if err != nil {
		return nil, err
	}
	tr, err := i18n.New()
	if err != nil {
		return nil, err
	}

	return httptransport.NewRouter(httptransport.Dependencies{
		Logger:         log,
		Metrics:        metrics.NewWithRegisterer(reg),
		Gatherer:       reg,
		RequestTimeout: cfg.RequestTimeout,
		Clock:          time.Now,
		RateLimit:      ratelimit.New(cfg.RateLimit, cfg.RateLimitWindow, log, rlmetrics.NewWithRegisterer(reg)).RateLimit,
		Handlers: []httptransport.Registrar{
			directory.NewHandler(svc, log, dm),
			forms.NewHandler(log, formmetrics.NewWithRegisterer(reg)),
			i18nhandler.New(tr, defaultLocale, log),
		},
	}), nil
}
