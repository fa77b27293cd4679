package model

import (
	"time"
)

// Mark represents one grade entry. Its identity is the (value, student,
// subject) tuple; re-recording the same grade for the same student and
// subject is a duplicate.
type Mark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Value     MarkValue `gorm:"type:mark_value;not null" json:"value"`

	StudentID *uint `gorm:"index" json:"student_id"`
	SubjectID *uint `gorm:"index" json:"subject_id"`

	// Relationships
	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Subject *Subject `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
}
