package postgres

import (
	"context"
	"time"

	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/repository"
	"blip/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// identityRepository implements the repository.IdentityRepository interface.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{
		db: db,
	}
}

// Ensure upserts the identity keyed by its platform id.
func (repo *identityRepository) Ensure(ctx context.Context, identity *entity.Identity) (*entity.Identity, error) {
	identityM := fromIdentityDomain(identity)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"handle", "chat_id", "updated_at"}),
		}).
		Create(identityM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDuplicateReferralCode
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure identity")
	}

	return repo.FindByID(ctx, identity.ID)
}

// FindByID retrieves an identity by its platform id.
func (repo *identityRepository) FindByID(ctx context.Context, id string) (*entity.Identity, error) {
	return repo.first(ctx, repo.db.WithContext(ctx).Where("id = ?", id), "failed to find identity by id")
}

// FindByIDForUpdate retrieves an identity and holds a row lock for the rest of the transaction.
func (repo *identityRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.Identity, error) {
	query := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id)

	return repo.first(ctx, query, "failed to lock identity")
}

// FindByReferralCode resolves a referral code to its owner.
func (repo *identityRepository) FindByReferralCode(ctx context.Context, code string) (*entity.Identity, error) {
	return repo.first(ctx, repo.db.WithContext(ctx).Where("referral_code = ?", code), "failed to find identity by referral code")
}

func (repo *identityRepository) first(_ context.Context, query *gorm.DB, msg string) (*entity.Identity, error) {
	var identityM model.IdentityModel

	if err := query.First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toIdentityDomain(&identityM), nil
}

// MarkSubmitted moves an identity without an application to pending.
func (repo *identityRepository) MarkSubmitted(ctx context.Context, id string, profile map[string]string, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusNone)).
		Updates(map[string]any{
			"profile":      toJSONMap(profile),
			"status":       string(entity.StatusPending),
			"submitted_at": at,
			"updated_at":   at,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to submit application")
	}

	return result.RowsAffected == 1, nil
}

// MarkRegistered sets the airdrop registration time once.
func (repo *identityRepository) MarkRegistered(ctx context.Context, id string, profile map[string]string, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ? AND registered_at IS NULL", id).
		Updates(map[string]any{
			"profile":       toJSONMap(profile),
			"registered_at": at,
			"updated_at":    at,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to register identity")
	}

	return result.RowsAffected == 1, nil
}

// Decide applies a terminal moderation status to a pending application.
func (repo *identityRepository) Decide(ctx context.Context, id string, status entity.ApplicationStatus, reviewer string, at time.Time) (bool, error) {
	if !status.IsDecided() {
		return false, errors.Errorf("status %q is not a decision", status)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusPending)).
		Updates(map[string]any{
			"status":     string(status),
			"decided_at": at,
			"decided_by": reviewer,
			"updated_at": at,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to decide application")
	}

	return result.RowsAffected == 1, nil
}

// SetFlagged marks an identity for follow-up without changing its status.
func (repo *identityRepository) SetFlagged(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ?", id).
		Update("flagged", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to flag identity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

// ForEachBatch walks matching identities in primary key order.
func (repo *identityRepository) ForEachBatch(ctx context.Context, filter repository.IdentityFilter, batchSize int, fn func([]*entity.Identity) error) error {
	query := repo.db.WithContext(ctx).Model(&model.IdentityModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.RegisteredOnly {
		query = query.Where("registered_at IS NOT NULL")
	}
	if filter.FlaggedOnly {
		query = query.Where("flagged = ?", true)
	}
	if filter.LinkedOnly {
		query = query.Where("EXISTS (SELECT 1 FROM accounts WHERE accounts.identity_id = identities.id)")
	}

	var batch []*model.IdentityModel
	result := query.FindInBatches(&batch, batchSize, func(_ *gorm.DB, _ int) error {
		identities := make([]*entity.Identity, 0, len(batch))
		for _, identityM := range batch {
			identities = append(identities, toIdentityDomain(identityM))
		}

		return fn(identities)
	})

	return result.Error
}

func toJSONMap(profile map[string]string) datatypes.JSONMap {
	jsonMap := make(datatypes.JSONMap, len(profile))
	for k, v := range profile {
		jsonMap[k] = v
	}

	return jsonMap
}

func fromJSONMap(jsonMap datatypes.JSONMap) map[string]string {
	profile := make(map[string]string, len(jsonMap))
	for k, v := range jsonMap {
		if s, ok := v.(string); ok {
			profile[k] = s
		}
	}

	return profile
}

func toIdentityDomain(identityM *model.IdentityModel) *entity.Identity {
	return &entity.Identity{
		ID:           identityM.ID,
		Handle:       identityM.Handle,
		ChatID:       identityM.ChatID,
		Profile:      fromJSONMap(identityM.Profile),
		Status:       entity.ApplicationStatus(identityM.Status),
		Flagged:      identityM.Flagged,
		ReferralCode: identityM.ReferralCode,
		RegisteredAt: identityM.RegisteredAt,
		SubmittedAt:  identityM.SubmittedAt,
		DecidedAt:    identityM.DecidedAt,
		DecidedBy:    identityM.DecidedBy,
		CreatedAt:    identityM.CreatedAt,
		UpdatedAt:    identityM.UpdatedAt,
	}
}

func fromIdentityDomain(identity *entity.Identity) *model.IdentityModel {
	return &model.IdentityModel{
		ID:           identity.ID,
		Handle:       identity.Handle,
		ChatID:       identity.ChatID,
		Profile:      toJSONMap(identity.Profile),
		Status:       string(identity.Status),
		Flagged:      identity.Flagged,
		ReferralCode: identity.ReferralCode,
		RegisteredAt: identity.RegisteredAt,
		SubmittedAt:  identity.SubmittedAt,
		DecidedAt:    identity.DecidedAt,
		DecidedBy:    identity.DecidedBy,
		CreatedAt:    identity.CreatedAt,
		UpdatedAt:    identity.UpdatedAt,
	}
}
