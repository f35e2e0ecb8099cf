package postgres

import (
	"context"

	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/repository"
	"blip/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// referralRepository implements the repository.ReferralRepository interface.
type referralRepository struct {
	db *gorm.DB
}

// NewReferralRepository is the constructor for referralRepository.
func NewReferralRepository(db *gorm.DB) repository.ReferralRepository {
	return &referralRepository{
		db: db,
	}
}

// Create stores a referral edge.
func (repo *referralRepository) Create(ctx context.Context, edge *entity.ReferralEdge) error {
	edgeM := &model.ReferralEdgeModel{
		ID:         edge.ID,
		ReferrerID: edge.ReferrerID,
		ReferredID: edge.ReferredID,
		Code:       edge.Code,
		Amount:     edge.Amount,
		CreatedAt:  edge.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(edgeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrReferralExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create referral")
	}

	edge.CreatedAt = edgeM.CreatedAt

	return nil
}

// FindByReferred returns the edge that referred an identity.
func (repo *referralRepository) FindByReferred(ctx context.Context, referredID string) (*entity.ReferralEdge, error) {
	var edgeM model.ReferralEdgeModel

	if err := repo.db.WithContext(ctx).
		Where("referred_id = ?", referredID).
		First(&edgeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReferralNotFound
		}

		return nil, errors.Wrap(err, "failed to find referral")
	}

	return &entity.ReferralEdge{
		ID:         edgeM.ID,
		ReferrerID: edgeM.ReferrerID,
		ReferredID: edgeM.ReferredID,
		Code:       edgeM.Code,
		Amount:     edgeM.Amount,
		CreatedAt:  edgeM.CreatedAt,
	}, nil
}

// CountByReferrer counts identities referred by referrerID.
func (repo *referralRepository) CountByReferrer(ctx context.Context, referrerID string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReferralEdgeModel{}).
		Where("referrer_id = ?", referrerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count referrals")
	}

	return count, nil
}
