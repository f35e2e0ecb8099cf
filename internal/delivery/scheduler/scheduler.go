// Package scheduler runs the periodic maintenance jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"blip/config"
	"blip/internal/delivery"
	deliverycontext "blip/internal/delivery/context"
	"blip/internal/domain/service"
	"blip/internal/usecase"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the job scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Links    usecase.LinkUsecase
	Sessions service.SessionStore
}

type jobScheduler struct {
	cfg       *config.Config
	logger    *slog.Logger
	links     usecase.LinkUsecase
	sessions  service.SessionStore
	scheduler gocron.Scheduler
	done      chan struct{}
	now       func() time.Time
}

// NewScheduler registers the link-token purge and the idle-session sweep.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s, err := newJobScheduler(params)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newJobScheduler(params SchedulerParams) (*jobScheduler, error) {
	sched, err := gocron.NewScheduler(gocron.WithLogger(params.Logger))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scheduler")
	}

	s := &jobScheduler{
		cfg:       params.Config,
		logger:    params.Logger,
		links:     params.Links,
		sessions:  params.Sessions,
		scheduler: sched,
		done:      make(chan struct{}),
		now:       time.Now,
	}

	jobs := []struct {
		name     string
		interval time.Duration
		task     func(ctx context.Context)
	}{
		{name: "purge-link-tokens", interval: params.Config.Link.PurgeInterval, task: s.purgeLinkTokens},
		{name: "sweep-sessions", interval: params.Config.Session.SweepInterval, task: s.sweepSessions},
	}
	for _, job := range jobs {
		if _, err := sched.NewJob(
			gocron.DurationJob(job.interval),
			gocron.NewTask(s.run(job.name, job.task)),
			gocron.WithName(job.name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		); err != nil {
			return nil, errors.Wrapf(err, "failed to register job %s", job.name)
		}
	}

	return s, nil
}

// run gives every execution its own id and logger.
func (s *jobScheduler) run(name string, task func(ctx context.Context)) func() {
	return func() {
		runID := uuid.New().String()
		ctx := deliverycontext.WithRequestID(context.Background(), runID)
		ctx = deliverycontext.WithLogger(ctx, s.logger.With(slog.String("job", name), slog.String("request_id", runID)))

		task(ctx)
	}
}

func (s *jobScheduler) purgeLinkTokens(ctx context.Context) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	purged, err := s.links.PurgeExpired(ctx, s.now().Add(-s.cfg.Link.Retention))
	if err != nil {
		logger.Error("Failed to purge link tokens", slog.Any("error", err))

		return
	}
	if purged > 0 {
		logger.Info("Purged link tokens", slog.Int64("count", purged))
	}
}

func (s *jobScheduler) sweepSessions(ctx context.Context) {
	if evicted := s.sessions.Sweep(s.now()); evicted > 0 {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Evicted idle sessions", slog.Int("count", evicted))
	}
}

// Serve starts the jobs and blocks until the scheduler is stopped.
func (s *jobScheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting job scheduler", slog.Int("jobs", len(s.scheduler.Jobs())))
	s.scheduler.Start()

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}

func (s *jobScheduler) stop(ctx context.Context) error {
	s.logger.Info("Shutting down job scheduler")
	defer close(s.done)

	return errors.Wrap(s.scheduler.Shutdown(), "failed to stop scheduler")
}
