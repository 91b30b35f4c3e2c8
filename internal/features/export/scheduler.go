package export

import (
	"context"

	"go-temple/internal/config"
	"go-temple/internal/features/temple"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Scheduler runs the warehouse export for every temple on a cron spec.
type Scheduler struct {
	scheduler  *cron.Cron
	service    ExportService
	warehouse  *Warehouse
	templeRepo temple.TempleRepository
	schedule   string
	logger     *zap.Logger
}

func NewScheduler(
	lc fx.Lifecycle,
	service ExportService,
	warehouse *Warehouse,
	templeRepo temple.TempleRepository,
	cfg *config.Config,
	logger *zap.Logger,
) (*Scheduler, error) {
	s := &Scheduler{
		scheduler:  cron.New(),
		service:    service,
		warehouse:  warehouse,
		templeRepo: templeRepo,
		schedule:   cfg.ExportSchedule,
		logger:     logger,
	}

	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !warehouse.Enabled() {
				logger.Info("export scheduler idle, warehouse disabled")
				return nil
			}
			if _, err := s.scheduler.AddFunc(s.schedule, s.runAll); err != nil {
				return err
			}
			s.scheduler.Start()
			logger.Info("export scheduler started", zap.String("schedule", s.schedule))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx := s.scheduler.Stop()
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})

	return s, nil
}

// runAll exports every temple; one failing temple does not stop the rest.
func (s *Scheduler) runAll() {
	ctx := context.Background()

	temples, err := s.templeRepo.List(ctx)
	if err != nil {
		s.logger.Error("scheduled export: list temples", zap.Error(err))
		return
	}

	for _, t := range temples {
		if _, err := s.service.Run(ctx, t.ID); err != nil {
			s.logger.Error("scheduled export failed",
				zap.String("templeId", t.ID.Hex()), zap.Error(err))
		}
	}
}
