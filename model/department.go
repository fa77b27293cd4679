package model

import (
	"time"
)

// Department represents an academic department within a faculty
type Department struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	FacultyID *uint     `gorm:"index" json:"faculty_id"`

	// Relationships
	Faculty   *Faculty   `gorm:"foreignKey:FacultyID" json:"faculty,omitempty"`
	Groups    []Group    `gorm:"foreignKey:DepartmentID" json:"groups,omitempty"`
	Employees []Employee `gorm:"foreignKey:DepartmentID" json:"employees,omitempty"`
}
