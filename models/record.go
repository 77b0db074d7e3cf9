package models

import "time"

// PlateRecord mirrors one row of the CSV record log in Postgres for
// reporting queries. The date/time/plate triple identifies a row.
type PlateRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"size:10;index:idx_plate_records_row,unique" json:"date"`
	Time      string    `gorm:"size:8;index:idx_plate_records_row,unique" json:"time"`
	Plate     string    `gorm:"size:16;index:idx_plate_records_row,unique" json:"plate"`
	CreatedAt time.Time `json:"created_at"`
}
