package scheduler

import (
	"context"
	"time"

	"amlak/internal/application/permit/usecases"
	"amlak/internal/shared/logger"
)

// DeadlineSweeper defines the interface for running a deadline sweep
type DeadlineSweeper interface {
	Execute(ctx context.Context) (*usecases.CheckDeadlinesResult, error)
}

// ApprovalScheduler runs periodic deadline sweeps over open approvals
type ApprovalScheduler struct {
	sweeper  DeadlineSweeper
	logger   logger.Interface
	stopChan chan struct{}
	interval time.Duration
}

// NewApprovalScheduler creates a new approval deadline scheduler
func NewApprovalScheduler(
	sweeper DeadlineSweeper,
	interval time.Duration,
	logger logger.Interface,
) *ApprovalScheduler {
	return &ApprovalScheduler{
		sweeper:  sweeper,
		logger:   logger,
		stopChan: make(chan struct{}),
		interval: interval,
	}
}

// Start starts the scheduler
func (s *ApprovalScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting approval deadline scheduler", "interval", s.interval)

	// Run immediately on start
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("approval deadline scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			s.logger.Infow("approval deadline scheduler stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// Stop stops the scheduler
func (s *ApprovalScheduler) Stop() {
	close(s.stopChan)
}

func (s *ApprovalScheduler) sweep(ctx context.Context) {
	s.logger.Debugw("deadline sweep task started")

	result, err := s.sweeper.Execute(ctx)
	if err != nil {
		s.logger.Errorw("deadline sweep failed", "error", err)
		return
	}

	if result.Redirected > 0 {
		s.logger.Infow("deadline sweep redirected approvals",
			"examined", result.Examined,
			"redirected", result.Redirected)
	}
}
