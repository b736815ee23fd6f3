// Package scheduler runs the periodic device health sweep.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pawtrack/config"
	"pawtrack/internal/delivery"
	"pawtrack/internal/usecase"

	"go.uber.org/fx"
)

// Sweeper runs battery, offline and inactivity checks over every active
// device on a fixed interval. Disabled sweepers serve nothing.
type Sweeper struct {
	alertUC  usecase.AlertUsecase
	interval time.Duration
	enabled  bool
	logger   *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// SweeperParams holds dependencies for the Sweeper, injected by Fx.
type SweeperParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// NewSweeper creates the sweeper delivery
func NewSweeper(params SweeperParams) delivery.Delivery {
	s := newSweeper(params.Config.Sweeper, params.AlertUC, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

func newSweeper(cfg *config.SweeperConfig, alertUC usecase.AlertUsecase, logger *slog.Logger) *Sweeper {
	s := &Sweeper{
		alertUC:  alertUC,
		interval: config.DefaultSweepInterval,
		logger:   logger,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
	if cfg != nil {
		s.enabled = cfg.Enabled
		if cfg.Interval > 0 {
			s.interval = cfg.Interval
		}
	}

	return s
}

// Serve blocks until the sweeper is stopped or ctx ends.
func (s *Sweeper) Serve(ctx context.Context) error {
	defer close(s.done)

	if !s.enabled {
		s.logger.Info("Health sweeper disabled")

		return nil
	}

	s.logger.Info("Starting health sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			if s.stopping() {
				return nil
			}
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	// A sweep in flight at shutdown is abandoned, not awaited.
	sweepCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.stopCh:
			cancel()
		case <-sweepCtx.Done():
		}
	}()

	start := time.Now()
	result, err := s.alertUC.SweepAll(sweepCtx)
	if err != nil {
		s.logger.Error("Health sweep failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Health sweep completed",
		slog.Int("devices_checked", result.DevicesChecked),
		slog.Int("alerts_created", result.AlertsCreated),
		slog.Int("failures", result.Failures),
		slog.Duration("elapsed", time.Since(start)),
	)
}

// stopping gives a pending stop priority over a tick that raced with it.
func (s *Sweeper) stopping() bool {
	select {
	case <-s.stopCh:
		return true
	default:
		return false
	}
}

func (s *Sweeper) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
