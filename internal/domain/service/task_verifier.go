package service

import (
	"context"

	"blip/internal/domain/entity"
)

// TaskVerifier confirms with an external provider that an owner completed a task.
type TaskVerifier interface {
	Verify(ctx context.Context, owner entity.Owner, taskID string) (bool, error)
}
