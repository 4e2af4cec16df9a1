package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reconcileRunner interface {
	ReconcileNow(ctx context.Context) (*domain.ReconcileResult, error)
}

// Scheduler drives periodic reconciliation. Ticks run in their own goroutine
// with a timeout, so a slow cycle never blocks the ticker; the reconciler's
// single-flight guard makes the overlapping tick a no-op.
type Scheduler struct {
	reconciler  reconcileRunner
	interval    time.Duration
	tickTimeout time.Duration
	logger      logger.Logger
}

func New(
	reconciler reconcileRunner,
	interval time.Duration,
	tickTimeout time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reconciler:  reconciler,
		interval:    interval,
		tickTimeout: tickTimeout,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reconciliation scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reconciliation scheduler stopped")
			return
		case <-ticker.C:
			go s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	tickCtx, cancel := context.WithTimeout(ctx, s.tickTimeout)
	defer cancel()

	result, err := s.reconciler.ReconcileNow(tickCtx)
	if err != nil {
		if errors.Is(err, domain.ErrReconcileInProgress) {
			s.logger.Warn("previous reconciliation still running, skipping tick")
			return
		}
		s.logger.Error("reconciliation failed",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("reconciliation finished",
		logger.Int("processed", result.Processed),
		logger.Int("transitioned", result.Transitioned),
		logger.Int("failures", len(result.Failures)),
	)

	for _, f := range result.Failures {
		s.logger.Error("reconciliation failure",
			logger.String("booking_id", f.BookingID),
			logger.String("unit_id", f.UnitID),
			logger.String("error", f.Err.Error()),
		)
	}
}
