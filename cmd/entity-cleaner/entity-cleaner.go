package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/diwise/schema-markup/internal/pkg/infrastructure/storage"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const (
	appName string = "entity-cleaner"
)

func main() {
	appVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), appName, appVersion, "json")
	defer cleanup()

	retention, err := retentionPeriod(env.GetVariableOrDefault(ctx, "RETENTION_DAYS", "90"))
	if err != nil {
		log.Error("invalid retention period", "err", err.Error())
		os.Exit(1)
	}

	cfg := storage.LoadConfiguration(ctx)
	if !cfg.Enabled() {
		log.Error("no database configured")
		os.Exit(1)
	}

	store, err := storage.NewPostgresStore(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "err", err.Error())
		os.Exit(1)
	}
	defer store.Close()

	total, err := clean(ctx, store, time.Now().UTC(), retention)
	if err != nil {
		log.Error("failed to purge entities", "err", err.Error())
		os.Exit(1)
	}

	log.Info("done cleaning", slog.Int64("total", total))
}

func clean(ctx context.Context, store storage.Store, now time.Time, retention time.Duration) (int64, error) {
	before := now.Add(-retention)

	logging.GetFromContext(ctx).Debug("begin purge of stale entities", slog.Time("before", before))

	return store.Purge(ctx, before)
}

func retentionPeriod(days string) (time.Duration, error) {
	d, err := strconv.Atoi(days)
	if err != nil || d < 1 {
		return 0, fmt.Errorf("retention must be a positive number of days, not %q", days)
	}

	return time.Duration(d) * 24 * time.Hour, nil
}
