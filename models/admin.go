package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminCredential is a stored administrator login. Password holds either the
// plaintext secret or a bcrypt hash, depending on deployment configuration.
type AdminCredential struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username  string    `gorm:"uniqueIndex;not null"`
	Password  string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName keeps the table name used by the storefront database.
func (AdminCredential) TableName() string {
	return "admins"
}

// BuyerForm is the identity form of a shopper.
type BuyerForm struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// AdminForm is the identity form of an administrator.
type AdminForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
