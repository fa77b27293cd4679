package model

import (
	"time"
)

// LectureRoom represents a physical room lectures are booked into
type LectureRoom struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Number    string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"number"`

	// Relationships
	Lectures []Lecture `gorm:"foreignKey:RoomID" json:"lectures,omitempty"`
}
