package model

import (
	"time"
)

// IntegrityCheckLog records one run of the scheduled referential integrity
// audit. A healthy system always reports zero dangling references.
type IntegrityCheckLog struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	RunID       string     `gorm:"type:varchar(36);not null;index" json:"run_id"`
	Status      string     `gorm:"type:varchar(20);not null" json:"status"` // started, completed, failed
	Dangling    int        `json:"dangling"`
	Details     string     `gorm:"type:text" json:"details"`
	StartedAt   time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName specifies the table name for IntegrityCheckLog
func (IntegrityCheckLog) TableName() string {
	return "integrity_check_logs"
}
