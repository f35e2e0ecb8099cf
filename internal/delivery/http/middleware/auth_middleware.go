package middleware

import (
	"crypto/subtle"
	"log/slog"
	"strings"

	"blip/config"
	deliverycontext "blip/internal/delivery/context"
	"blip/internal/domain/constants"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/service"
	"blip/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	keyAccountID = "accountID"
	keyEmail     = "email"
)

// AuthMiddleware authenticates web account tokens and bot gateway calls.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	accounts usecase.AccountUsecase
	cfg      *config.Config
	logger   *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService
	Accounts usecase.AccountUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenSvc,
		accounts: params.Accounts,
		cfg:      params.Config,
		logger:   params.Logger,
	}
}

// Authenticate validates the bearer token and records the account it names.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			return domainerrors.ErrAuthTokenInvalid.WithDetails("authorization header must carry a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrAuthTokenInvalid.WrapMessage(err.Error())
		}

		accountID, err := claims.AccountID()
		if err != nil {
			return domainerrors.ErrAuthTokenInvalid.WithDetails("subject is not an account id")
		}

		ctx := c.Request().Context()
		if _, err := m.accounts.Ensure(ctx, accountID, claims.Email); err != nil {
			return errors.Wrap(err, "failed to ensure account")
		}

		c.Set(keyAccountID, accountID)
		c.Set(keyEmail, claims.Email)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx,
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("account_id", accountID.String())),
		)))

		return next(c)
	}
}

// VerifyBotSecret rejects gateway calls without the shared secret. An unset secret rejects everything.
func (m *AuthMiddleware) VerifyBotSecret(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		expected := m.cfg.Bot.Secret
		got := c.Request().Header.Get(constants.HeaderBotSecret)
		if expected == "" || subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Rejected bot update",
				slog.String("remote_ip", c.RealIP()),
			)

			return domainerrors.ErrBotSecretInvalid
		}

		return next(c)
	}
}

// AccountID returns the account set by Authenticate.
func AccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyAccountID).(uuid.UUID)

	return id, ok
}
