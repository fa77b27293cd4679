package model

import (
	"time"

	"gorm.io/datatypes"
)

// Subject represents a taught discipline. Its identity is the name plus the
// start/end dates of the term it runs over, so the same name may recur across
// terms.
type Subject struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Name      string         `gorm:"type:varchar(255);not null;index" json:"name"`
	StartDate datatypes.Date `gorm:"not null" json:"start_date"`
	EndDate   datatypes.Date `gorm:"not null" json:"end_date"`

	// Relationships
	Groups   []Group   `gorm:"many2many:group_subjects" json:"groups,omitempty"`
	Teachers []Teacher `gorm:"many2many:teacher_subjects" json:"teachers,omitempty"`
	Lectures []Lecture `gorm:"foreignKey:SubjectID" json:"lectures,omitempty"`
	Marks    []Mark    `gorm:"foreignKey:SubjectID" json:"marks,omitempty"`
}
