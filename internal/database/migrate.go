package database

import (
	"petsit_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate applies the schema for every model. Order matters: referenced
// tables first.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Pet{},
		&models.Certificate{},
		&models.WorkExperience{},
		&models.AvailabilitySlot{},
		&models.SittingRequest{},
		&models.SittingAssignment{},
	)
}
