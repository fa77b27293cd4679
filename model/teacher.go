package model

import (
	"time"
)

// Teacher wraps exactly one employee and carries the teaching-specific state.
// The employee link is nullable: deleting the employee leaves the teacher row
// behind with a cleared reference.
type Teacher struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	EmployeeID *uint     `gorm:"uniqueIndex" json:"employee_id"`
	Degree     Degree    `gorm:"type:degree;not null" json:"degree"`

	// Relationships
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Subjects []Subject `gorm:"many2many:teacher_subjects" json:"subjects,omitempty"`
	Lectures []Lecture `gorm:"foreignKey:TeacherID" json:"lectures,omitempty"`
}

// TeacherSubject is one row of the Teacher-Subject association.
type TeacherSubject struct {
	TeacherID uint `gorm:"primaryKey" json:"teacher_id"`
	SubjectID uint `gorm:"primaryKey" json:"subject_id"`

	Teacher Teacher `gorm:"foreignKey:TeacherID" json:"-"`
	Subject Subject `gorm:"foreignKey:SubjectID" json:"-"`
}
