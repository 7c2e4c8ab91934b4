package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const SQLiteInMemory = ":memory:"

// NewSQLiteConnection opens a gorm handle on a SQLite file or SQLiteInMemory.
// TranslateError turns unique constraint failures into gorm.ErrDuplicatedKey.
func NewSQLiteConnection(path string) (*gorm.DB, error) {
	// Foreign keys are off by default in SQLite.
	dsn := "file:" + path + "?_foreign_keys=on"
	if path == SQLiteInMemory {
		dsn = "file::memory:?_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	// One connection: an in-memory database lives and dies with its connection,
	// and SQLite serializes writers anyway.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
