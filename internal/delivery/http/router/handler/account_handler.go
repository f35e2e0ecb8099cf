package handler

import (
	"log/slog"
	"net/http"
	"time"

	"blip/internal/delivery/http/middleware"
	"blip/internal/delivery/http/response"
	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	LedgerUC  usecase.LedgerUsecase
	Logger    *slog.Logger
}

// AccountHandler serves the authenticated account's progress
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	ledgerUC  usecase.LedgerUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		ledgerUC:  params.LedgerUC,
		logger:    params.Logger,
	}
}

// LedgerEntryResponse is one ledger entry
type LedgerEntryResponse struct {
	Kind      string    `json:"kind"`
	Amount    int64     `json:"amount"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IdentityProgressResponse is the linked chat identity's standing
type IdentityProgressResponse struct {
	IdentityID   string                `json:"identity_id"`
	Handle       string                `json:"handle,omitempty"`
	Status       string                `json:"status,omitempty"`
	ReferralCode string                `json:"referral_code"`
	Balance      int64                 `json:"balance"`
	Referrals    int64                 `json:"referrals"`
	Tier         string                `json:"tier,omitempty"`
	Entries      []LedgerEntryResponse `json:"entries"`
}

// ProgressResponse is the account's points overview
type ProgressResponse struct {
	AccountID       string                    `json:"account_id"`
	Email           string                    `json:"email"`
	AccountBalance  int64                     `json:"account_balance"`
	CombinedBalance int64                     `json:"combined_balance"`
	Identity        *IdentityProgressResponse `json:"identity"`
}

// TaskResponse reports a task claim
type TaskResponse struct {
	TaskID   string `json:"task_id"`
	Points   int64  `json:"points"`
	Credited bool   `json:"credited"`
}

// GetProgress returns balances of the account and its linked identity
func (h *AccountHandler) GetProgress(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthTokenInvalid)
	}

	progress, err := h.accountUC.Progress(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := ProgressResponse{
		AccountID:       progress.Account.ID.String(),
		Email:           progress.Account.Email,
		AccountBalance:  progress.AccountBalance,
		CombinedBalance: progress.CombinedBalance,
	}
	if identity := progress.Identity; identity != nil {
		resp.Identity = &IdentityProgressResponse{
			IdentityID:   identity.Identity.ID,
			Handle:       identity.Identity.Handle,
			Status:       string(identity.Identity.Status),
			ReferralCode: identity.Identity.ReferralCode,
			Balance:      identity.Balance,
			Referrals:    identity.Referrals,
			Entries:      make([]LedgerEntryResponse, 0, len(identity.Entries)),
		}
		if identity.Tier != nil {
			resp.Identity.Tier = identity.Tier.Name
		}
		for _, entry := range identity.Entries {
			resp.Identity.Entries = append(resp.Identity.Entries, LedgerEntryResponse{
				Kind:      string(entry.Kind),
				Amount:    entry.Amount,
				Reference: entry.Reference,
				CreatedAt: entry.CreatedAt,
			})
		}
	}

	return response.Success(c, http.StatusOK, resp)
}

// CompleteTask credits a configured task to the account
func (h *AccountHandler) CompleteTask(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthTokenInvalid)
	}

	outcome, err := h.ledgerUC.CompleteTask(c.Request().Context(), entity.AccountOwner(accountID), c.Param("taskID"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TaskResponse{
		TaskID:   outcome.TaskID,
		Points:   outcome.Points,
		Credited: outcome.Credited,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
