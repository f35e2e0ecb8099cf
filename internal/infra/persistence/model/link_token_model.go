package model

import (
	"time"

	"github.com/google/uuid"
)

// LinkTokenModel is the GORM-specific struct for the 'link_tokens' table.
// The partial unique index allows at most one unconsumed grant per identity.
type LinkTokenModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	IdentityID     string     `gorm:"type:varchar(64);not null;index;uniqueIndex:idx_link_tokens_active,where:consumed_at IS NULL"`
	Role           string     `gorm:"type:varchar(16);not null"`
	OTPHash        string     `gorm:"column:otp_hash;type:varchar(255);not null"`
	TokenHash      string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	Attempts       int        `gorm:"not null;default:0"`
	ExpiresAt      time.Time  `gorm:"not null;index"`
	ConsumedAt     *time.Time `gorm:"index"`
	ConsumedReason string     `gorm:"type:varchar(16);not null;default:''"`
	ConsumedBy     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (LinkTokenModel) TableName() string {
	return "link_tokens"
}
