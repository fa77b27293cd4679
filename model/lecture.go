package model

import (
	"time"

	"gorm.io/datatypes"
)

// Lecture represents a single scheduled teaching slot. Its identity is the
// (date, subject, teacher, room, duration) tuple; no two lectures may share
// all five values. Every reference is nullable because deleting any of the
// referenced parents clears it rather than removing the lecture.
type Lecture struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Date      datatypes.Date `gorm:"not null;index" json:"date"`

	SubjectID  *uint `gorm:"index" json:"subject_id"`
	TeacherID  *uint `gorm:"index" json:"teacher_id"`
	RoomID     *uint `gorm:"index" json:"room_id"`
	DurationID *uint `gorm:"index" json:"duration_id"`

	// Relationships
	Subject  *Subject     `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Teacher  *Teacher     `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	Room     *LectureRoom `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Duration *Duration    `gorm:"foreignKey:DurationID" json:"duration,omitempty"`
	Groups   []Group      `gorm:"many2many:group_lectures" json:"groups,omitempty"`
}
