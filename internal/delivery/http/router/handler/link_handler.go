package handler

import (
	"log/slog"
	"net/http"

	"blip/internal/delivery/http/middleware"
	"blip/internal/delivery/http/response"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LinkHandlerParams holds dependencies for LinkHandler, injected by Fx.
type LinkHandlerParams struct {
	fx.In

	LinkUC usecase.LinkUsecase
	Logger *slog.Logger
}

// LinkHandler redeems link grants for the authenticated account
type LinkHandler struct {
	linkUC usecase.LinkUsecase
	logger *slog.Logger
}

// NewLinkHandler is the constructor for LinkHandler
func NewLinkHandler(params LinkHandlerParams) *LinkHandler {
	return &LinkHandler{
		linkUC: params.LinkUC,
		logger: params.Logger,
	}
}

// RedeemRequest carries either the opaque token from the link URL or the chat identity plus its one-time code
type RedeemRequest struct {
	Token      string `json:"token" validate:"required_without=OTP,excluded_with=OTP"`
	IdentityID string `json:"identity_id" validate:"required_with=OTP"`
	OTP        string `json:"otp" validate:"omitempty,len=6,numeric"`
}

// LinkResponse is the account state after linking
type LinkResponse struct {
	AccountID       string `json:"account_id"`
	IdentityID      string `json:"identity_id"`
	Role            string `json:"role"`
	AccountBalance  int64  `json:"account_balance"`
	IdentityBalance int64  `json:"identity_balance"`
	CombinedBalance int64  `json:"combined_balance"`
}

// Redeem binds the chat identity of a grant to the caller's account
func (h *LinkHandler) Redeem(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthTokenInvalid)
	}

	var req RedeemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid redeem request")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	var (
		result *usecase.LinkResult
		err    error
	)
	ctx := c.Request().Context()
	if req.Token != "" {
		result, err = h.linkUC.RedeemByToken(ctx, req.Token, accountID)
	} else {
		result, err = h.linkUC.RedeemByOTP(ctx, req.IdentityID, req.OTP, accountID)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LinkResponse{
		AccountID:       result.AccountID.String(),
		IdentityID:      result.IdentityID,
		Role:            result.Role.String(),
		AccountBalance:  result.AccountBalance,
		IdentityBalance: result.IdentityBalance,
		CombinedBalance: result.CombinedBalance,
	})
}
