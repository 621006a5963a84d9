package database

import (
	"github.com/cmcummings/warechat/internal/models"

	"gorm.io/gorm"
)

// RegisteredModels lists every entity AutoMigrate manages, in dependency
// order: referenced tables before referencing ones.
func RegisteredModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Forum{},
		&models.Topic{},
		&models.Thread{},
		&models.Post{},
		&models.UserInForum{},
	}
}

// Migrate applies the schema for all registered models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(RegisteredModels()...)
}
