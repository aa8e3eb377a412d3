package db

import (
	"log"

	"Gin_sqlite_redis_archive_tool/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ConnectDB(path string) *gorm.DB {
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := Migrate(conn); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return conn
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.BoxType{},
		&models.Warehouse{},
		&models.Location{},
		&models.Box{},
		&models.Loan{},
	); err != nil {
		return err
	}

	// Numeric ordering over the zero-padded display id; backs the QR range
	// listing and the allocator's MAX scan.
	if err := db.Exec(`
	  CREATE INDEX IF NOT EXISTS ` + models.BoxTable + `_display_numeric
	  ON ` + models.BoxTable + ` (CAST(display_id AS INTEGER));
	`).Error; err != nil {
		return err
	}

	// Open loans by due date, for the overdue scan.
	return db.Exec(`
	  CREATE INDEX IF NOT EXISTS ` + models.LoanTable + `_open_due
	  ON ` + models.LoanTable + ` (due_date)
	  WHERE returned = FALSE;
	`).Error
}
