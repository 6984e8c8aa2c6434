package model

import (
	"time"

	"github.com/google/uuid"
)

// MaterialTypeModel mirrors the 'material_types' table. The code column
// carries the catalog-wide uniqueness constraint.
type MaterialTypeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	PointValue  int       `gorm:"not null;check:point_value > 0"`
	Code        string    `gorm:"type:varchar(128);unique;not null"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MaterialTypeModel) TableName() string {
	return "material_types"
}
