package cron

import (
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/volodymyr-curly/university-sub001/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&model.Faculty{},
		&model.Department{},
		&model.Group{},
		&model.Subject{},
		&model.GroupSubject{},
		&model.Employee{},
		&model.Teacher{},
		&model.TeacherSubject{},
		&model.Student{},
		&model.LectureRoom{},
		&model.Duration{},
		&model.Lecture{},
		&model.GroupLecture{},
		&model.Mark{},
		&model.IntegrityCheckLog{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func lastAudit(t *testing.T, db *gorm.DB) model.IntegrityCheckLog {
	t.Helper()
	var audit model.IntegrityCheckLog
	if err := db.Order("id DESC").First(&audit).Error; err != nil {
		t.Fatalf("Audit run should have been recorded: %v", err)
	}
	return audit
}

func TestIntegrityAuditCleanDatabase(t *testing.T) {
	db := openTestDB(t)
	m := NewCronManager(db)

	m.RunIntegrityAudit()

	audit := lastAudit(t, db)
	if audit.Status != "completed" {
		t.Fatalf("Audit status should be completed, got %q", audit.Status)
	}
	if audit.Dangling != 0 {
		t.Fatalf("Empty database should audit clean, got %d dangling", audit.Dangling)
	}
	if audit.Details != "clean" {
		t.Fatalf("Clean audit should record %q, got %q", "clean", audit.Details)
	}
	if audit.RunID == "" {
		t.Fatal("Audit should carry a run id")
	}
	if audit.CompletedAt == nil {
		t.Fatal("Completed audit should carry a completion time")
	}
}

func TestIntegrityAuditFindsDanglingReferences(t *testing.T) {
	db := openTestDB(t)
	m := NewCronManager(db)

	// A lecture pointing at a room that was never created.
	missingRoom := uint(999)
	lecture := model.Lecture{
		Date:   datatypes.Date(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)),
		RoomID: &missingRoom,
	}
	if err := db.Create(&lecture).Error; err != nil {
		t.Fatal(err)
	}

	m.RunIntegrityAudit()

	audit := lastAudit(t, db)
	if audit.Status != "completed" {
		t.Fatalf("Audit status should be completed, got %q", audit.Status)
	}
	if audit.Dangling != 1 {
		t.Fatalf("Audit should count 1 dangling reference, got %d", audit.Dangling)
	}
	if !strings.Contains(audit.Details, "lecture->room") {
		t.Fatalf("Details should name the failing check, got %q", audit.Details)
	}
}
