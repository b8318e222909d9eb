package db

import (
	"fmt"
	"os"

	"github.com/atropass/ai-caption-saas/models"
	"github.com/atropass/ai-caption-saas/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect ouvre la connexion Postgres et migre le schéma.
// La variable DB_URL doit être définie (via .env ou l'environnement système).
func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		utils.LogError(nil, "Variable DB_URL non définie")
		return nil, fmt.Errorf("database URL is not configured")
	}

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		return nil, fmt.Errorf("could not connect to the database: %w", err)
	}

	if err := database.AutoMigrate(
		&models.License{},
		&models.CaptionRecord{},
	); err != nil {
		utils.LogError(err, "Error migrating database")
		return nil, fmt.Errorf("could not migrate database: %w", err)
	}

	utils.LogSuccess("Database connection successful")
	return database, nil
}
