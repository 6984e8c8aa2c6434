package postgres

import (
	"ecopoint/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// autoMigrate keeps the schema in step with the persistence models.
// Tables are ordered so foreign key targets exist before their referrers.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserModel{},
		&model.AuthenticationModel{},
		&model.RefreshTokenModel{},
		&model.MaterialTypeModel{},
		&model.CollectionEventModel{},
		&model.RedemptionModel{},
		&model.UserDeviceModel{},
	)
}
