package model

import (
	"time"
)

// Student represents an enrolled student. Person fields are embedded; the
// group link is nullable so a student survives the deletion of their group.
type Student struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Person Person `gorm:"embedded" json:"person"`

	GroupID *uint `gorm:"index" json:"group_id"`

	// Relationships
	Group *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	Marks []Mark `gorm:"foreignKey:StudentID" json:"marks,omitempty"`
}
