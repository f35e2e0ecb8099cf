package model

import (
	"time"

	"gorm.io/datatypes"
)

// IdentityModel is the GORM-specific struct for the 'identities' table.
// The primary key is the platform-scoped chat id.
type IdentityModel struct {
	ID           string            `gorm:"type:varchar(64);primaryKey"`
	Handle       string            `gorm:"type:varchar(64);not null;default:''"`
	ChatID       string            `gorm:"type:varchar(64);not null;default:''"`
	Profile      datatypes.JSONMap
	Status       string            `gorm:"type:varchar(16);not null;default:'';index"`
	Flagged      bool              `gorm:"not null;default:false"`
	ReferralCode string            `gorm:"type:varchar(64);not null;uniqueIndex"`
	RegisteredAt *time.Time        `gorm:"index"`
	SubmittedAt  *time.Time
	DecidedAt    *time.Time
	DecidedBy    string `gorm:"type:varchar(64);not null;default:''"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}
