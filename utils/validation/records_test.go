package validation

import (
	"testing"

	"github.com/glebarez/sqlite"
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
		&model.Subject{},
		&model.Group{},
		&model.Employee{},
		&model.Teacher{},
		&model.Student{},
		&model.LectureRoom{},
		&model.Duration{},
		&model.Lecture{},
		&model.Mark{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func TestDepartmentValidator(t *testing.T) {
	db := openTestDB(t)
	v := &DepartmentValidator{DB: db}

	existing := model.Department{Name: "Applied Mathematics"}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatal(err)
	}

	t.Run("new name passes", func(t *testing.T) {
		errs := Errors{}
		v.Validate(DepartmentForm{Name: "Software Engineering"}, errs)
		if !errs.Empty() {
			t.Fatalf("Fresh name should pass, got %v", errs)
		}
	})

	t.Run("taken name rejected on create", func(t *testing.T) {
		errs := Errors{}
		v.Validate(DepartmentForm{Name: "Applied Mathematics"}, errs)
		if errs.Empty() {
			t.Fatal("Taken name should be rejected")
		}
	})

	t.Run("update keeping own name passes", func(t *testing.T) {
		errs := Errors{}
		v.Validate(DepartmentForm{ID: existing.ID, Name: "Applied Mathematics"}, errs)
		if !errs.Empty() {
			t.Fatalf("Own name should pass on update, got %v", errs)
		}
	})

	t.Run("update onto another row's name rejected", func(t *testing.T) {
		other := model.Department{Name: "Physics"}
		if err := db.Create(&other).Error; err != nil {
			t.Fatal(err)
		}
		errs := Errors{}
		v.Validate(DepartmentForm{ID: other.ID, Name: "Applied Mathematics"}, errs)
		if errs.Empty() {
			t.Fatal("Stealing another department's name should be rejected")
		}
	})
}

func TestGroupValidatorLectureRule(t *testing.T) {
	db := openTestDB(t)
	v := &GroupValidator{DB: db}

	group := model.Group{Name: "Se_cs-21"}
	if err := db.Create(&group).Error; err != nil {
		t.Fatal(err)
	}

	// Creates carry no lecture requirement.
	errs := Errors{}
	v.Validate(GroupForm{Name: "Se_cs-22"}, errs)
	if !errs.Empty() {
		t.Fatalf("Create without lectures should pass, got %v", errs)
	}

	// Updates must carry at least one lecture.
	errs = Errors{}
	v.Validate(GroupForm{ID: group.ID, Name: "Se_cs-21"}, errs)
	if errs["lectures"] == "" {
		t.Fatal("Update without lectures should be rejected")
	}

	errs = Errors{}
	v.Validate(GroupForm{ID: group.ID, Name: "Se_cs-21", LectureIDs: []uint{1}}, errs)
	if !errs.Empty() {
		t.Fatalf("Update with lectures and own name should pass, got %v", errs)
	}
}

func TestDurationValidatorBoundaries(t *testing.T) {
	db := openTestDB(t)
	v := &DurationValidator{DB: db}

	slot := model.Duration{StartTime: "09:00", EndTime: "10:20"}
	if err := db.Create(&slot).Error; err != nil {
		t.Fatal(err)
	}

	errs := Errors{}
	v.Validate(DurationForm{StartTime: "09:00", EndTime: "11:00"}, errs)
	if errs["start_time"] == "" {
		t.Fatal("Shared start boundary should be rejected")
	}
	if errs["end_time"] != "" {
		t.Fatal("Fresh end boundary should pass")
	}

	errs = Errors{}
	v.Validate(DurationForm{ID: slot.ID, StartTime: "09:00", EndTime: "10:20"}, errs)
	if !errs.Empty() {
		t.Fatalf("Update keeping own boundaries should pass, got %v", errs)
	}
}

func TestPersonEmailValidators(t *testing.T) {
	db := openTestDB(t)

	student := model.Student{Person: model.Person{
		FirstName: "Taras", LastName: "Bondar",
		Gender: model.GenderMale, Email: "taras@example.com",
	}}
	if err := db.Create(&student).Error; err != nil {
		t.Fatal(err)
	}

	studentV := &StudentValidator{DB: db}
	employeeV := &EmployeeValidator{DB: db}

	// An employee may not take a student's email.
	errs := Errors{}
	employeeV.Validate(PersonForm{Email: "taras@example.com"}, errs)
	if errs["email"] == "" {
		t.Fatal("Email held by a student should be rejected for an employee")
	}

	// The student keeps their own email on update.
	errs = Errors{}
	studentV.Validate(PersonForm{ID: student.ID, Email: "taras@example.com"}, errs)
	if !errs.Empty() {
		t.Fatalf("Own email should pass on update, got %v", errs)
	}

	// Malformed addresses are rejected before any lookup.
	errs = Errors{}
	studentV.Validate(PersonForm{Email: "not-an-email"}, errs)
	if errs["email"] == "" {
		t.Fatal("Malformed email should be rejected")
	}
}

func TestCheckKeyTaken(t *testing.T) {
	tests := []struct {
		name    string
		formID  uint
		foundID uint
		want    bool
	}{
		{"create always conflicts", 0, 7, true},
		{"update of self passes", 7, 7, false},
		{"update onto other row conflicts", 3, 7, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Errors{}
			checkKeyTaken(tt.formID, tt.foundID, errs, "taken")
			if got := !errs.Empty(); got != tt.want {
				t.Fatalf("checkKeyTaken(%d, %d) conflict = %v, want %v", tt.formID, tt.foundID, got, tt.want)
			}
		})
	}
}
