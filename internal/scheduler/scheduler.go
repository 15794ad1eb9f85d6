// Package scheduler runs the recurring background jobs.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/rividoceria/doceria-api/internal/domain"
	"github.com/rividoceria/doceria-api/internal/service"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron   *cron.Cron
	svc    *service.BusinessService
	logger *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(svc *service.BusinessService, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:   cron.New(),
		svc:    svc,
		logger: logger,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	// Roll recurring bills forward every day at 03:00.
	_, err := s.cron.AddFunc("0 3 * * *", s.rollForwardBills)
	if err != nil {
		s.logger.Error("failed to schedule bill roll-forward", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) rollForwardBills() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	rolled, err := s.svc.RollForwardRecurringBills(ctx, domain.Today())
	if err != nil {
		s.logger.Error("bill roll-forward failed", zap.Error(err))
		return
	}
	if rolled > 0 {
		s.logger.Info("recurring bills rolled forward", zap.Int("count", rolled))
	}
}
