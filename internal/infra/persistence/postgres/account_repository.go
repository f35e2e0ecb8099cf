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
	"gorm.io/gorm/clause"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Ensure upserts the account keyed by the session subject.
func (repo *accountRepository) Ensure(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	accountM := fromAccountDomain(account)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "updated_at"}),
		}).
		Create(accountM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDuplicateEmail
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure account")
	}

	return repo.FindByID(ctx, account.ID)
}

// FindByID retrieves an account by its id.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByIdentityID retrieves the account an identity is linked to.
func (repo *accountRepository) FindByIdentityID(ctx context.Context, identityID string) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by identity")
	}

	return toAccountDomain(&accountM), nil
}

// LinkIdentity binds the identity to an account that has none yet.
func (repo *accountRepository) LinkIdentity(ctx context.Context, accountID uuid.UUID, identityID string, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND identity_id IS NULL", accountID).
		Updates(map[string]any{
			"identity_id": identityID,
			"linked_at":   at,
			"updated_at":  at,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return false, repository.ErrIdentityLinkedElsewhere
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to link identity")
	}

	return result.RowsAffected == 1, nil
}

func toAccountDomain(accountM *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:         accountM.ID,
		Email:      accountM.Email,
		IdentityID: accountM.IdentityID,
		LinkedAt:   accountM.LinkedAt,
		CreatedAt:  accountM.CreatedAt,
		UpdatedAt:  accountM.UpdatedAt,
	}
}

func fromAccountDomain(account *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:         account.ID,
		Email:      account.Email,
		IdentityID: account.IdentityID,
		LinkedAt:   account.LinkedAt,
		CreatedAt:  account.CreatedAt,
		UpdatedAt:  account.UpdatedAt,
	}
}
