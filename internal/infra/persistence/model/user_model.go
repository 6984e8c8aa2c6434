package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The points CHECK constraint enforces the non-negative balance invariant at
// the storage layer, independent of application logic.
type UserModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email             string    `gorm:"type:varchar(255);unique;not null"`
	Name              string    `gorm:"type:varchar(100)"`
	Role              string    `gorm:"type:varchar(20);not null"`
	Points            int       `gorm:"not null;default:0;check:points >= 0"`
	WalletAddress     string    `gorm:"type:varchar(255)"`
	BankAccountNumber string    `gorm:"type:varchar(64)"`
	BankName          string    `gorm:"type:varchar(100)"`
	BankAccountName   string    `gorm:"type:varchar(100)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time `gorm:"index"`

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
