package postgres

import (
	"context"

	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/repository"
	"blip/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ledgerDedupeColumns = []clause.Column{
	{Name: "owner_kind"},
	{Name: "owner_id"},
	{Name: "kind"},
	{Name: "dedupe_key"},
}

// ledgerRepository implements the repository.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// Append inserts the entry, skipping duplicates of a one-time credit.
func (repo *ledgerRepository) Append(ctx context.Context, entry *entity.LedgerEntry) (bool, error) {
	entryM := fromLedgerEntryDomain(entry)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: ledgerDedupeColumns, DoNothing: true}).
		Create(entryM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to append ledger entry")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}
	entry.CreatedAt = entryM.CreatedAt

	return true, nil
}

// Balance sums all entries of an owner.
func (repo *ledgerRepository) Balance(ctx context.Context, owner entity.Owner) (int64, error) {
	var total int64

	row := repo.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("owner_kind = ? AND owner_id = ?", string(owner.Kind), owner.ID).
		Row()
	if err := row.Scan(&total); err != nil {
		return 0, errors.Wrap(err, "failed to sum ledger entries")
	}

	return total, nil
}

// ListByOwner returns the latest entries of an owner.
func (repo *ledgerRepository) ListByOwner(ctx context.Context, owner entity.Owner, limit int) ([]*entity.LedgerEntry, error) {
	var entryModels []*model.LedgerEntryModel

	if err := repo.db.WithContext(ctx).
		Where("owner_kind = ? AND owner_id = ?", string(owner.Kind), owner.ID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ledger entries")
	}

	entries := make([]*entity.LedgerEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toLedgerEntryDomain(entryM))
	}

	return entries, nil
}

func toLedgerEntryDomain(entryM *model.LedgerEntryModel) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:        entryM.ID,
		Owner:     entity.Owner{Kind: entity.OwnerKind(entryM.OwnerKind), ID: entryM.OwnerID},
		Kind:      entity.EventKind(entryM.Kind),
		Amount:    entryM.Amount,
		DedupeKey: entryM.DedupeKey,
		Reference: entryM.Reference,
		CreatedAt: entryM.CreatedAt,
	}
}

func fromLedgerEntryDomain(entry *entity.LedgerEntry) *model.LedgerEntryModel {
	return &model.LedgerEntryModel{
		ID:        entry.ID,
		OwnerKind: string(entry.Owner.Kind),
		OwnerID:   entry.Owner.ID,
		Kind:      string(entry.Kind),
		DedupeKey: entry.DedupeKey,
		Amount:    entry.Amount,
		Reference: entry.Reference,
		CreatedAt: entry.CreatedAt,
	}
}
