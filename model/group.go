package model

import (
	"time"
)

// Group represents a student group (e.g., "Se_cs-21") within a department.
// Its subject and lecture links are kept as explicit join rows (GroupSubject,
// GroupLecture) so both sides of each association always agree.
type Group struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	DepartmentID *uint     `gorm:"index" json:"department_id"`

	// Relationships
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Students   []Student   `gorm:"foreignKey:GroupID" json:"students,omitempty"`
	Subjects   []Subject   `gorm:"many2many:group_subjects" json:"subjects,omitempty"`
	Lectures   []Lecture   `gorm:"many2many:group_lectures" json:"lectures,omitempty"`
}

// GroupSubject is one row of the Group-Subject association.
type GroupSubject struct {
	GroupID   uint `gorm:"primaryKey" json:"group_id"`
	SubjectID uint `gorm:"primaryKey" json:"subject_id"`

	Group   Group   `gorm:"foreignKey:GroupID" json:"-"`
	Subject Subject `gorm:"foreignKey:SubjectID" json:"-"`
}

// GroupLecture is one row of the Group-Lecture association.
type GroupLecture struct {
	GroupID   uint `gorm:"primaryKey" json:"group_id"`
	LectureID uint `gorm:"primaryKey" json:"lecture_id"`

	Group   Group   `gorm:"foreignKey:GroupID" json:"-"`
	Lecture Lecture `gorm:"foreignKey:LectureID" json:"-"`
}
