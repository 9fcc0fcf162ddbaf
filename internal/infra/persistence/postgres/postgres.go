package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"mandoob/config"
	"mandoob/internal/domain/lifecycle"
	"mandoob/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
	poolStatsDBName    = "mandoob"
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary connection (plus any replicas) and ties ping,
// optional migration and pool sampling to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres config is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	// Multi-statement work goes through the transaction manager explicitly.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB handle")
	}
	registerPoolCollector(sqlDB)

	sampler := &poolSampler{db: sqlDB, logger: params.Logger, interval: poolSampleInterval}
	samplerCtx, stopSampler := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}
			if params.Config.AutoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
				params.Logger.Info("Database schema migrated", slog.Int("tables", len(model.AllModels())))
			}

			go sampler.run(samplerCtx)

			return nil
		},
		OnStop: func(context.Context) error {
			stopSampler()

			return errors.Wrap(sqlDB.Close(), "close postgres")
		},
	})

	return db, nil
}

// Migrate creates or alters the tables of every persisted model.
func Migrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(model.AllModels()...), "migrate schema")
}

// registerPoolCollector exports sql.DBStats on /metrics. The API and the
// notifier each open one pool, so a duplicate registration is ignored.
func registerPoolCollector(sqlDB *sql.DB) {
	err := prometheus.Register(collectors.NewDBStatsCollector(sqlDB, poolStatsDBName))

	var already prometheus.AlreadyRegisteredError
	if err != nil && !errors.As(err, &already) {
		slog.Warn("Postgres pool collector not registered", slog.Any("error", err))
	}
}

// poolSampler logs whenever callers had to wait for a free connection
// since the previous sample.
type poolSampler struct {
	db       *sql.DB
	logger   *slog.Logger
	interval time.Duration
}

func (s *poolSampler) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	last := s.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			last = s.sample(ctx, last)
		}
	}
}

func (s *poolSampler) sample(ctx context.Context, last sql.DBStats) sql.DBStats {
	now := s.db.Stats()
	waits := now.WaitCount - last.WaitCount
	if waits <= 0 {
		return now
	}

	waited := now.WaitDuration - last.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	s.logger.LogAttrs(ctx, level, "Postgres pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("in_use", now.InUse),
		slog.Int("idle", now.Idle),
		slog.Int("max_open", now.MaxOpenConnections),
	)

	return now
}
