package db

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	gormModels "skylogger/dronelog/internal/models/gorm"
)

var ORM *gorm.DB

// InitORM opens the relational side (user accounts) with GORM, against the
// same backend the document store uses.
func InitORM() (*gorm.DB, error) {
	var (
		database *gorm.DB
		err      error
	)

	if host := os.Getenv("PG_HOST"); host != "" {
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			os.Getenv("PG_USER"), os.Getenv("PG_PASSWORD"), host, os.Getenv("PG_PORT"), os.Getenv("PG_DB"))
		database, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "dronelog.db"
		}
		database, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect relational store: %w", err)
	}

	if err := database.AutoMigrate(&gormModels.User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate users table: %w", err)
	}

	ORM = database
	return database, nil
}
