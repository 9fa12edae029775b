package persistence

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenGorm opens the catalog database for the given driver ("postgres" or "sqlite").
func OpenGorm(driver, postgresURI, sqliteDSN string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(postgresURI), cfg)
	case "sqlite", "":
		return gorm.Open(sqlite.Open(sqliteDSN), cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
