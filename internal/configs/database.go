package config

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "todo-hub.com/todo-hub/internal/models"
)

// NewDatabaseClient opens the relational store. A postgres:// DSN selects
// the postgres driver; anything else is treated as a sqlite file path.
func NewDatabaseClient(dsn string) *gorm.DB {
	db, err := gorm.Open(openDialector(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	return db
}

func openDialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

// AutoMigrate applies the schema for every entity, parents before children.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Category{},
		&model.Tag{},
		&model.Todo{},
		&model.Subtask{},
		&model.Attachment{},
	)
}
