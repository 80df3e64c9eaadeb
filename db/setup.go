package db

import (
	"github.com/trellium-dev/trellium/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.Card{},
		&models.Comment{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	// At most one card may hold the "Ongoing" status. Enforcing it with a
	// partial unique index makes concurrent writes serialize on the store
	// instead of racing a count query.
	return DB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS ` + OngoingIndexName + ` ON cards (status) WHERE status = 'Ongoing'`,
	).Error
}
