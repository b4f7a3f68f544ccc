package database

import (
	"fmt"

	"gorm.io/gorm"

	"tally-service/internal/models"
)

// Migrate runs database migrations for all models.
func Migrate(db *gorm.DB) error {
	modelsToMigrate := []interface{}{
		&models.Credential{},
		&models.User{},
		&models.Candidate{},
		&models.Submission{},
		&models.Incident{},
		&models.District{},
		&models.Position{},
	}

	for _, model := range modelsToMigrate {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model: %w", err)
		}
	}
	return nil
}
