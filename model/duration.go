package model

import (
	"time"
)

// Duration represents a fixed teaching slot within the day, e.g. 09:00-10:20.
// Start and end times are each globally unique: two slots may not begin or
// end at the same minute.
type Duration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	StartTime string    `gorm:"type:varchar(5);uniqueIndex;not null" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);uniqueIndex;not null" json:"end_time"`

	// Relationships
	Lectures []Lecture `gorm:"foreignKey:DurationID" json:"lectures,omitempty"`
}
