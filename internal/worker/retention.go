package worker

import (
	"context"

	"github.com/robfig/cron/v3"

	"sueahahn/internal/usecase"
	"sueahahn/pkg/logger"
)

// RetentionSweeper drops expired notifications on a cron schedule.
type RetentionSweeper struct {
	cron          *cron.Cron
	notifications *usecase.NotificationUseCase
}

func NewRetentionSweeper(notifications *usecase.NotificationUseCase, schedule string) (*RetentionSweeper, error) {
	s := &RetentionSweeper{
		cron:          cron.New(),
		notifications: notifications,
	}
	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return nil, err
	}
	return s, nil
}

// Start runs one sweep immediately, then follows the schedule.
func (s *RetentionSweeper) Start() {
	s.sweep()
	s.cron.Start()
}

func (s *RetentionSweeper) Stop() {
	s.cron.Stop()
}

func (s *RetentionSweeper) sweep() {
	removed, err := s.notifications.PruneExpired(context.Background())
	if err != nil {
		logger.Error("retention sweep failed: %v", err)
		return
	}
	if removed > 0 {
		logger.Info("retention sweep removed %d expired notifications", removed)
	}
}
