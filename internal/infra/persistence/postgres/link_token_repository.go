package postgres

import (
	"context"
	"time"

	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/repository"
	"blip/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// linkTokenRepository implements the repository.LinkTokenRepository interface.
type linkTokenRepository struct {
	db *gorm.DB
}

// NewLinkTokenRepository is the constructor for linkTokenRepository.
func NewLinkTokenRepository(db *gorm.DB) repository.LinkTokenRepository {
	return &linkTokenRepository{
		db: db,
	}
}

// Create persists a new grant.
func (repo *linkTokenRepository) Create(ctx context.Context, token *entity.LinkToken) error {
	tokenM := fromLinkTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrActiveLinkTokenExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create link token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByTokenHash looks a grant up by the digest of its opaque token.
func (repo *linkTokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.LinkToken, error) {
	var tokenM model.LinkTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find link token")
	}

	return toLinkTokenDomain(&tokenM), nil
}

// ListByIdentity returns the latest grants of an identity.
func (repo *linkTokenRepository) ListByIdentity(ctx context.Context, identityID string, limit int) ([]*entity.LinkToken, error) {
	var tokenModels []*model.LinkTokenModel

	if err := repo.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		Order("created_at DESC").
		Limit(limit).
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list link tokens")
	}

	tokens := make([]*entity.LinkToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toLinkTokenDomain(tokenM))
	}

	return tokens, nil
}

// SupersedeActive consumes every unconsumed grant of the identity.
func (repo *linkTokenRepository) SupersedeActive(ctx context.Context, identityID string, at time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.LinkTokenModel{}).
		Where("identity_id = ? AND consumed_at IS NULL", identityID).
		Updates(map[string]any{
			"consumed_at":     at,
			"consumed_reason": string(entity.ConsumeSuperseded),
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to supersede link tokens")
	}

	return result.RowsAffected, nil
}

// IncrementAttempts records a failed OTP comparison.
func (repo *linkTokenRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LinkTokenModel{}).
		Where("id = ?", id).
		Update("attempts", gorm.Expr("attempts + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to count link attempt")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLinkTokenNotFound
	}

	return nil
}

// Consume marks an unconsumed grant consumed.
func (repo *linkTokenRepository) Consume(ctx context.Context, id uuid.UUID, reason entity.ConsumeReason, by *uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.LinkTokenModel{}).
		Where("id = ? AND consumed_at IS NULL", id).
		Updates(map[string]any{
			"consumed_at":     at,
			"consumed_reason": string(reason),
			"consumed_by":     by,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume link token")
	}

	return result.RowsAffected == 1, nil
}

// PurgeBefore deletes grants that stopped being useful before cutoff.
func (repo *linkTokenRepository) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ? OR consumed_at < ?", cutoff, cutoff).
		Delete(&model.LinkTokenModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge link tokens")
	}

	return result.RowsAffected, nil
}

func toLinkTokenDomain(tokenM *model.LinkTokenModel) *entity.LinkToken {
	return &entity.LinkToken{
		ID:             tokenM.ID,
		IdentityID:     tokenM.IdentityID,
		Role:           entity.Role(tokenM.Role),
		OTPHash:        tokenM.OTPHash,
		TokenHash:      tokenM.TokenHash,
		Attempts:       tokenM.Attempts,
		ExpiresAt:      tokenM.ExpiresAt,
		ConsumedAt:     tokenM.ConsumedAt,
		ConsumedReason: entity.ConsumeReason(tokenM.ConsumedReason),
		ConsumedBy:     tokenM.ConsumedBy,
		CreatedAt:      tokenM.CreatedAt,
	}
}

func fromLinkTokenDomain(token *entity.LinkToken) *model.LinkTokenModel {
	return &model.LinkTokenModel{
		ID:             token.ID,
		IdentityID:     token.IdentityID,
		Role:           string(token.Role),
		OTPHash:        token.OTPHash,
		TokenHash:      token.TokenHash,
		Attempts:       token.Attempts,
		ExpiresAt:      token.ExpiresAt,
		ConsumedAt:     token.ConsumedAt,
		ConsumedReason: string(token.ConsumedReason),
		ConsumedBy:     token.ConsumedBy,
		CreatedAt:      token.CreatedAt,
	}
}
