package models

import "time"

// Appointment is the postgres row of a booked appointment. Position records
// insertion order and is never reused.
type Appointment struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	Position int    `gorm:"not null;uniqueIndex" json:"position"`

	Date        string `gorm:"size:10;not null;index" json:"date"`
	StartTime   string `gorm:"size:5;not null" json:"start_time"`
	EndTime     string `gorm:"size:5;not null" json:"end_time"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
