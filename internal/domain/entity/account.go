package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a web account. Its id is the subject of the web session token.
type Account struct {
	ID         uuid.UUID
	Email      string
	IdentityID *string
	LinkedAt   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsLinked reports whether the account is already bound to a chat identity.
func (a *Account) IsLinked() bool {
	return a.IdentityID != nil && *a.IdentityID != ""
}
