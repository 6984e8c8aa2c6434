package model

import (
	"time"

	"github.com/google/uuid"
)

// CollectionEventModel mirrors the append-only 'collection_events' table.
// Exactly one of material_type_id and weight_kg is non-null per row.
type CollectionEventModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MaterialTypeID *uuid.UUID `gorm:"type:uuid;index"`
	WeightKg       *float64
	AccountID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CollectorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PointsEarned   int       `gorm:"not null;check:points_earned >= 0"`
	OccurredAt     time.Time `gorm:"not null"`

	MaterialType *MaterialTypeModel `gorm:"foreignKey:MaterialTypeID"`
}

// TableName explicitly sets the table name for GORM.
func (CollectionEventModel) TableName() string {
	return "collection_events"
}
