package main

import (
	"fmt"
	"log"
	"os"

	"platewatch/models"
	"platewatch/pkg/records"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// initDB connects to the reporting database named by DB_DSN and migrates
// the mirror table. Permission errors during migration are logged and
// ignored.
func initDB() (*gorm.DB, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("DB_DSN is not set; the export command requires a Postgres DSN")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := db.AutoMigrate(&models.PlateRecord{}); err != nil {
		log.Printf("migration warning (plate_records): %v", err)
	}
	return db, nil
}

// exportRecords mirrors every CSV row into Postgres, skipping rows that
// are already present so repeated exports stay idempotent. The CSV file
// remains the source of truth.
func exportRecords(db *gorm.DB, store *records.Store) (int, error) {
	rows, err := store.All()
	if err != nil {
		return 0, err
	}
	inserted := 0
	for _, r := range rows {
		var cnt int64
		db.Model(&models.PlateRecord{}).
			Where("date = ? AND time = ? AND plate = ?", r.Date, r.Time, r.Plate).
			Count(&cnt)
		if cnt > 0 {
			continue
		}
		rec := models.PlateRecord{Date: r.Date, Time: r.Time, Plate: r.Plate}
		if err := db.Create(&rec).Error; err != nil {
			return inserted, fmt.Errorf("insert record %s %s: %w", r.Date, r.Time, err)
		}
		inserted++
	}
	return inserted, nil
}
