package model

import (
	"time"
)

// Faculty represents a top-level academic division of the university
type Faculty struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`

	// Relationships
	Departments []Department `gorm:"foreignKey:FacultyID" json:"departments,omitempty"`
}
