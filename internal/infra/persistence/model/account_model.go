package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel is the GORM-specific struct for the 'accounts' table.
// The unique identity_id column keeps the account to identity binding one-to-one.
type AccountModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	IdentityID *string   `gorm:"type:varchar(64);uniqueIndex"`
	LinkedAt   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
