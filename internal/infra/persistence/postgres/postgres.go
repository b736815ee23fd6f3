package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"pawtrack/config"
	"pawtrack/internal/domain/lifecycle"
	"pawtrack/internal/errors"
	"pawtrack/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const poolSampleInterval = 5 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Recorder `optional:"true"`
}

// New opens the primary and replica pools through go-lib. On start it
// pings the primary, applies the schema when auto-migrate is on, and
// begins sampling pool waits.
func New(params Params) (*gorm.DB, error) {
	dbCfg := params.Config.Database
	if dbCfg == nil {
		dbCfg = &config.DatabaseConfig{}
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes use TransactionManager explicitly.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config.Env.Debug, dbCfg.SlowQueryThreshold),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Metrics != nil {
		if err := params.Metrics.Register(collectors.NewDBStatsCollector(sqlDB, "primary")); err != nil {
			return nil, errors.Wrap(err, "failed to register pool metrics")
		}
	}

	monitor := &poolMonitor{
		logger:    params.Logger,
		stats:     sqlDB.Stats,
		threshold: dbCfg.PoolWaitWarning,
	}
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if dbCfg.AutoMigrate {
				params.Logger.Info("Applying database schema")
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
			}

			go monitor.run(monitorCtx, poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolMonitor reports connection pool contention between samples. The
// engine holds a pooled connection per device lane transaction, so waits
// show lanes outnumbering connections.
type poolMonitor struct {
	logger    *slog.Logger
	stats     func() sql.DBStats
	threshold time.Duration
	prev      sql.DBStats
}

func (m *poolMonitor) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.prev = m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sample(ctx)
		}
	}
}

func (m *poolMonitor) sample(ctx context.Context) {
	cur := m.stats()
	waits := cur.WaitCount - m.prev.WaitCount
	waited := cur.WaitDuration - m.prev.WaitDuration
	m.prev = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if m.threshold > 0 && waited >= m.threshold {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open_conns", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("max_open_conns", cur.MaxOpenConnections),
	)
}
