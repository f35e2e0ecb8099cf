// Package verifier asks an external provider whether a task was really completed.
package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"blip/config"
	deliverycontext "blip/internal/delivery/context"
	"blip/internal/domain/entity"
	"blip/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type verifyRequest struct {
	OwnerKind entity.OwnerKind `json:"owner_kind"`
	OwnerID   string           `json:"owner_id"`
	TaskID    string           `json:"task_id"`
}

type verifyResponse struct {
	Completed bool `json:"completed"`
}

type httpVerifier struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds dependencies for the TaskVerifier, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewTaskVerifier returns nil when no provider endpoint is configured; the
// ledger then applies the configured verification policy.
func NewTaskVerifier(params Params) service.TaskVerifier {
	cfg := params.Config.Verification
	if cfg == nil || cfg.Endpoint == "" {
		params.Logger.Info("Task verifier not configured")

		return nil
	}

	return &httpVerifier{
		endpoint:   cfg.Endpoint,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     params.Logger,
	}
}

func (v *httpVerifier) Verify(ctx context.Context, owner entity.Owner, taskID string) (bool, error) {
	body, err := json.Marshal(verifyRequest{OwnerKind: owner.Kind, OwnerID: owner.ID, TaskID: taskID})
	if err != nil {
		return false, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, errors.Wrap(err, "verification request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, errors.Errorf("verifier returned status %d", resp.StatusCode)
	}

	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, errors.Wrap(err, "decode verifier response")
	}

	deliverycontext.GetLoggerOrDefault(ctx, v.logger).Debug("Task verified",
		slog.String("owner", owner.String()),
		slog.String("task_id", taskID),
		slog.Bool("completed", out.Completed),
	)

	return out.Completed, nil
}
