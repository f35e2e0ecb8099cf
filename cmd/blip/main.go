package main

import (
	"context"
	"log/slog"
	"os"

	"blip/config"
	"blip/internal/delivery"
	"blip/internal/delivery/bot"
	"blip/internal/delivery/http"
	"blip/internal/delivery/http/middleware"
	"blip/internal/delivery/http/router/handler"
	"blip/internal/delivery/scheduler"
	"blip/internal/domain/flow"
	"blip/internal/infra/auth"
	logs "blip/internal/infra/log"
	"blip/internal/infra/messenger"
	"blip/internal/infra/persistence/postgres"
	"blip/internal/infra/pubsub"
	"blip/internal/infra/qrcode"
	"blip/internal/infra/session"
	"blip/internal/infra/verifier"
	"blip/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewIdentityRepository,
			postgres.NewLedgerRepository,
			postgres.NewReferralRepository,
			postgres.NewLinkTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewSecretGenerator,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			messenger.NewMessenger,
			verifier.NewTaskVerifier,
			session.NewMemoryStore,
			flow.DefaultRegistry,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewAccountService,
			impl.NewLedgerService,
			impl.NewModerationService,
			impl.NewOnboardingService,
			impl.NewSessionEngine,
			impl.NewLinkService,
			impl.NewBroadcastService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			bot.NewRouter,
			handler.NewBotHandler,
			handler.NewLinkHandler,
			handler.NewAccountHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
