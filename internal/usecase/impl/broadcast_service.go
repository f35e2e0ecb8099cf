package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"blip/config"
	deliverycontext "blip/internal/delivery/context"
	"blip/internal/domain/constants"
	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/lifecycle"
	"blip/internal/domain/repository"
	"blip/internal/domain/service"
	"blip/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type broadcastService struct {
	identityRepo repository.IdentityRepository
	messenger    service.Messenger
	publisher    service.EventPublisher
	moderation   usecase.ModerationUsecase
	config       *config.Config
	logger       *slog.Logger

	// baseCtx outlives requests; cancel stops runs still going at shutdown.
	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// BroadcastServiceParams holds dependencies for BroadcastService, injected by Fx.
type BroadcastServiceParams struct {
	fx.In

	Lc           fx.Lifecycle `optional:"true"`
	IdentityRepo repository.IdentityRepository
	Messenger    service.Messenger
	Publisher    service.EventPublisher
	Moderation   usecase.ModerationUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewBroadcastService creates the broadcast dispatcher and drains it on stop.
func NewBroadcastService(params BroadcastServiceParams) usecase.BroadcastUsecase {
	baseCtx, cancel := context.WithCancel(context.Background())
	s := &broadcastService{
		identityRepo: params.IdentityRepo,
		messenger:    params.Messenger,
		publisher:    params.Publisher,
		moderation:   params.Moderation,
		config:       params.Config,
		logger:       params.Logger,
		baseCtx:      baseCtx,
		cancel:       cancel,
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				drainCtx, done := context.WithTimeout(ctx, lifecycle.DrainTimeout)
				defer done()

				return s.Wait(drainCtx)
			},
		})
	}

	return s
}

// Dispatch starts a detached run and returns its job id immediately.
func (s *broadcastService) Dispatch(ctx context.Context, input usecase.DispatchInput) (uuid.UUID, error) {
	if !s.moderation.IsReviewer(input.InitiatorID) {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return uuid.Nil, domainerrors.ErrInvalidInput.WithDetails("broadcast message is empty")
	}

	jobID := uuid.New()
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("job_id", jobID.String()))
	runCtx := deliverycontext.WithLogger(deliverycontext.Carry(s.baseCtx, ctx), logger)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		summary, err := s.Run(runCtx, input.Initiator.Bot, input.Filter, message)
		if err != nil {
			logger.Error("Broadcast aborted", slog.Any("error", err))
		}
		summary.JobID = jobID
		s.report(runCtx, input.Initiator, summary, err)
	}()

	logger.Info("Broadcast dispatched", slog.String("initiator_id", input.InitiatorID))

	return jobID, nil
}

// Run sends message to every matching identity through bot, one send per
// limiter tick. A failed recipient is counted and skipped. The summary is
// valid even when an error is returned.
func (s *broadcastService) Run(ctx context.Context, bot entity.FlowKind, filter repository.IdentityFilter, message string) (*usecase.BroadcastSummary, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	limiter := rate.NewLimiter(rate.Every(s.config.Broadcast.Interval), 1)
	summary := &usecase.BroadcastSummary{}
	view := service.View{Text: message}

	err := s.identityRepo.ForEachBatch(ctx, filter, s.config.Broadcast.BatchSize, func(batch []*entity.Identity) error {
		for _, identity := range batch {
			if identity.ChatID == "" {
				summary.Failed++

				continue
			}
			if err := limiter.Wait(ctx); err != nil {
				return errors.WithStack(err)
			}

			if _, err := s.messenger.Send(ctx, entity.ChatRef{Bot: bot, ChatID: identity.ChatID}, view); err != nil {
				summary.Failed++
				logger.Debug("Broadcast recipient failed",
					slog.String("identity_id", identity.ID),
					slog.Any("error", err),
				)

				continue
			}
			summary.Sent++
		}

		return nil
	})

	logger.Info("Broadcast run finished",
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
	)

	if err != nil {
		return summary, errors.Wrap(err, "broadcast interrupted")
	}

	return summary, nil
}

func (s *broadcastService) report(ctx context.Context, to entity.ChatRef, summary *usecase.BroadcastSummary, runErr error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	text := fmt.Sprintf("Broadcast finished: %d sent, %d failed.", summary.Sent, summary.Failed)
	if runErr != nil {
		text = fmt.Sprintf("Broadcast stopped early: %d sent, %d failed.", summary.Sent, summary.Failed)
	}

	// The request that dispatched the run is long gone; report on a fresh context.
	reportCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if to.ChatID != "" {
		if _, err := s.messenger.Send(reportCtx, to, service.View{Text: text}); err != nil {
			logger.Warn("Failed to report broadcast summary", slog.Any("error", err))
		}
	}

	event := &service.DomainEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      constants.EventBroadcastCompleted,
		SubjectID: summary.JobID.String(),
		Attributes: map[string]string{
			"sent":   fmt.Sprint(summary.Sent),
			"failed": fmt.Sprint(summary.Failed),
		},
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(reportCtx, event); err != nil {
		logger.Warn("Failed to publish broadcast event", slog.Any("error", err))
	}
}

// Wait drains running broadcasts; when ctx ends first they are cancelled.
func (s *broadcastService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.cancel()
		<-done

		return errors.WithStack(ctx.Err())
	}
}
