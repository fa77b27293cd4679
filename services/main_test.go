package services

import (
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

func testDate(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func testPerson(first, last, email string) model.Person {
	return model.Person{
		FirstName: first,
		LastName:  last,
		Gender:    model.GenderFemale,
		BirthDate: testDate(1990, 5, 14),
		Email:     email,
		Phone:     "+380501234567",
	}
}

// seedSubject inserts a subject directly, bypassing the service gate.
func seedSubject(t *testing.T, db *gorm.DB, name string) *model.Subject {
	t.Helper()
	s := &model.Subject{
		Name:      name,
		StartDate: testDate(2026, 9, 1),
		EndDate:   testDate(2026, 12, 20),
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("Failed to seed subject %q: %v", name, err)
	}
	return s
}

func seedTeacher(t *testing.T, db *gorm.DB) *model.Teacher {
	t.Helper()
	teacher := &model.Teacher{Degree: model.DegreeMaster}
	if err := db.Create(teacher).Error; err != nil {
		t.Fatalf("Failed to seed teacher: %v", err)
	}
	return teacher
}
