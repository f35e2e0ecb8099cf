package model

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEntryModel is the GORM-specific struct for the append-only 'ledger_entries' table.
// One-time credits are deduplicated by the composite unique index.
type LedgerEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerKind string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_ledger_dedupe,priority:1;index:idx_ledger_owner,priority:1"`
	OwnerID   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_ledger_dedupe,priority:2;index:idx_ledger_owner,priority:2"`
	Kind      string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_ledger_dedupe,priority:3"`
	DedupeKey string    `gorm:"type:varchar(128);not null;default:'';uniqueIndex:idx_ledger_dedupe,priority:4"`
	Amount    int64     `gorm:"not null"`
	Reference string    `gorm:"type:varchar(128);not null;default:''"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ReferralEdgeModel is the GORM-specific struct for the 'referral_edges' table.
type ReferralEdgeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReferrerID string    `gorm:"type:varchar(64);not null;index"`
	ReferredID string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Code       string    `gorm:"type:varchar(64);not null"`
	Amount     int64     `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReferralEdgeModel) TableName() string {
	return "referral_edges"
}
