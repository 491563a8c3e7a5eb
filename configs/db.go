package configs

import (
	"github.com/HuyNLy/Little-Lemon-App/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

// SetupDatabase creates the two tables if absent. Safe to call on every
// start.
func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.MenuItem{},
		&entity.Profile{},
	)
}
