package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diwise/schema-markup/internal/pkg/application/markup"
	"github.com/diwise/schema-markup/internal/pkg/application/subscriptions"
	"github.com/diwise/schema-markup/internal/pkg/infrastructure/metrics"
	"github.com/diwise/schema-markup/internal/pkg/infrastructure/router"
	"github.com/diwise/schema-markup/internal/pkg/infrastructure/storage"
	"github.com/diwise/schema-markup/internal/pkg/presentation/api"
	"github.com/diwise/schema-markup/pkg/schema"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const serviceName string = "schema-markup"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, flags[logFormat])
	defer cleanup()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderConfig, err := os.Open(flags[configPath])
	if err != nil {
		logger.Warn("no render profile found, using defaults", "path", flags[configPath], "err", err.Error())
	}

	policies, err := os.Open(flags[opaPath])
	if err != nil {
		logger.Error("unable to open opa policy file", "path", flags[opaPath], "err", err.Error())
		os.Exit(1)
	}

	store, err := newStore(ctx)
	if err != nil {
		logger.Error("failed to connect to database", "err", err.Error())
		os.Exit(1)
	}

	cfg := &AppConfig{
		opaConfig: policies,
		store:     store,
	}

	if renderConfig != nil {
		cfg.renderConfig = renderConfig
	}

	handler, app, err := initialize(ctx, flags, cfg)
	if err != nil {
		logger.Error("failed to initialize service", "err", err.Error())
		os.Exit(1)
	}

	err = app.Start()
	if err != nil {
		logger.Error("failed to start application", "err", err.Error())
		os.Exit(1)
	}

	err = serve(ctx, net.JoinHostPort(flags[listenAddress], flags[servicePort]), handler)
	if err != nil {
		logger.Error("failed to listen for connections", "err", err.Error())
	}

	if err = app.Stop(); err != nil {
		logger.Error("failed to stop application", "err", err.Error())
	}

	logger.Info("shutting down")
}

func newStore(ctx context.Context) (storage.Store, error) {
	cfg := storage.LoadConfiguration(ctx)

	if !cfg.Enabled() {
		logging.GetFromContext(ctx).Info("no database configured, entities will be kept in memory")
		return storage.NewMemoryStore(), nil
	}

	return storage.NewPostgresStore(ctx, cfg)
}

func initialize(ctx context.Context, flags FlagMap, cfg *AppConfig) (http.Handler, markup.Manager, error) {
	defer func() {
		if cfg.renderConfig != nil {
			cfg.renderConfig.Close()
		}
		if cfg.opaConfig != nil {
			cfg.opaConfig.Close()
		}
	}()

	renderConfig := markup.DefaultConfiguration()

	if cfg.renderConfig != nil {
		var err error
		renderConfig, err = markup.LoadConfiguration(cfg.renderConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load render profile: %w", err)
		}
	}

	var notifier subscriptions.Notifier

	if flags[notifierEndpoint] != "" {
		var err error
		notifier, err = subscriptions.NewNotifier(ctx, flags[notifierEndpoint])
		if err != nil {
			return nil, nil, err
		}
	}

	m := metrics.New()

	app, err := markup.New(ctx, renderConfig, cfg.store, notifier, m)
	if err != nil {
		return nil, nil, err
	}

	r := router.New(serviceName)
	r.Handle("/metrics", m.Handler())

	err = api.RegisterHandlers(ctx, r, cfg.opaConfig, app, schema.WithMaxDepth(renderConfig.MaxDepth))
	if err != nil {
		return nil, nil, err
	}

	return r, app, nil
}

func serve(ctx context.Context, addr string, handler http.Handler) error {
	log := logging.GetFromContext(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		log.Info("starting to listen for connections", "addr", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
