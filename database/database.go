package database

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cadefab1n/appsevenmenu/models"
)

// Open connects to the store and runs migrations. The returned handle is
// injected into every handler; there is no package-level DB.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.AnalyticsEvent{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
