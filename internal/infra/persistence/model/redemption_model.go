package model

import (
	"time"

	"github.com/google/uuid"
)

// RedemptionModel mirrors the 'redemptions' table.
type RedemptionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Points      int       `gorm:"not null;check:points > 0"`
	Method      string    `gorm:"type:varchar(20);not null"`
	Destination string    `gorm:"type:varchar(255);not null"`
	Amount      float64   `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RedemptionModel) TableName() string {
	return "redemptions"
}
