package model

import (
	"time"

	"gorm.io/datatypes"
)

// Employee represents a member of staff attached to a department. Person
// fields are embedded; employees and students share one person namespace.
type Employee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Person Person `gorm:"embedded" json:"person"`

	DepartmentID   *uint          `gorm:"index" json:"department_id"`
	JobTitle       JobTitle       `gorm:"type:job_title;not null" json:"job_title"`
	EmploymentType EmploymentType `gorm:"type:employment_type;not null" json:"employment_type"`
	EmploymentDate datatypes.Date `json:"employment_date"`

	// Relationships
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Teacher    *Teacher    `gorm:"foreignKey:EmployeeID" json:"teacher,omitempty"`
}
