package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Job периодическая задача
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler запускает задачи по интервалу поверх gocron
type Scheduler struct {
	inner  gocron.Scheduler
	logger Logger
}

// NewScheduler создает планировщик
func NewScheduler(logger Logger) (*Scheduler, error) {
	inner, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("jobs: failed to create scheduler: %w", err)
	}
	return &Scheduler{inner: inner, logger: logger}, nil
}

// Every регистрирует задачу с интервалом. Параллельные запуски одной задачи не допускаются
func (s *Scheduler) Every(ctx context.Context, interval time.Duration, job Job) error {
	j, err := s.inner.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if err := job.Run(ctx); err != nil {
				s.logger.Warn("Scheduler: job %s failed: %v", job.Name(), err)
			}
		}),
		gocron.WithName(job.Name()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("jobs: failed to register %s: %w", job.Name(), err)
	}

	s.logger.Info("Scheduler: job %s (%s) every %s", job.Name(), j.ID().String(), interval)
	return nil
}

// Start запускает планировщик
func (s *Scheduler) Start() {
	s.inner.Start()
}

// Shutdown останавливает планировщик и ждет завершения текущих задач
func (s *Scheduler) Shutdown() error {
	if err := s.inner.Shutdown(); err != nil {
		return fmt.Errorf("jobs: failed to shutdown scheduler: %w", err)
	}
	return nil
}
