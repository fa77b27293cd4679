package validation

import (
	"errors"

	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
)

// Record validators are the form-facing duplicate checks. They look up the
// submitted natural key, distinguish "new record" from "update of self", and
// write their findings into an Errors sink instead of failing the request;
// the transactional gate in the services stays as the last line of defense
// behind them.

// Errors collects field- and record-level validation messages keyed by field
// name. Record-level messages use the "record" key.
type Errors map[string]string

// Add records a field-level message.
func (e Errors) Add(field, message string) {
	e[field] = message
}

// AddRecord records a record-level message.
func (e Errors) AddRecord(message string) {
	e["record"] = message
}

// Empty reports whether no messages were recorded.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// checkKeyTaken implements the shared create/update-of-self split: formID is
// the id carried by the form (zero for create), foundID is the id of the row
// already holding the submitted key.
func checkKeyTaken(formID, foundID uint, errs Errors, message string) {
	if formID == 0 || formID != foundID {
		errs.AddRecord(message)
	}
}

// DepartmentForm carries the fields the department validator inspects.
type DepartmentForm struct {
	ID   uint
	Name string
}

// DepartmentValidator rejects department names already held by another row.
type DepartmentValidator struct {
	DB *gorm.DB
}

func (v *DepartmentValidator) Validate(form DepartmentForm, errs Errors) {
	var existing model.Department
	err := v.DB.Where("name = ?", form.Name).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if err != nil {
		errs.AddRecord("failed to check department name")
		return
	}
	if form.ID != 0 {
		var target model.Department
		if err := v.DB.First(&target, form.ID).Error; err != nil {
			errs.AddRecord("department not found")
			return
		}
		if target.Name == form.Name {
			return
		}
	}
	checkKeyTaken(form.ID, existing.ID, errs, "Department already exists")
}

// FacultyForm carries the fields the faculty validator inspects.
type FacultyForm struct {
	ID   uint
	Name string
}

// FacultyValidator rejects faculty names already held by another row.
type FacultyValidator struct {
	DB *gorm.DB
}

func (v *FacultyValidator) Validate(form FacultyForm, errs Errors) {
	var existing model.Faculty
	err := v.DB.Where("name = ?", form.Name).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if err != nil {
		errs.AddRecord("failed to check faculty name")
		return
	}
	if form.ID != 0 {
		var target model.Faculty
		if err := v.DB.First(&target, form.ID).Error; err != nil {
			errs.AddRecord("faculty not found")
			return
		}
		if target.Name == form.Name {
			return
		}
	}
	checkKeyTaken(form.ID, existing.ID, errs, "Faculty already exists")
}

// GroupForm carries the fields the group validator inspects. LectureIDs is
// the association list submitted with the form.
type GroupForm struct {
	ID         uint
	Name       string
	LectureIDs []uint
}

// GroupValidator rejects group names already held by another row. Updates
// must additionally carry a non-empty lecture list; the rule predates this
// service and is kept as observed.
type GroupValidator struct {
	DB *gorm.DB
}

func (v *GroupValidator) Validate(form GroupForm, errs Errors) {
	if form.ID != 0 && len(form.LectureIDs) == 0 {
		errs.Add("lectures", "Lectures must not be empty")
	}

	var existing model.Group
	err := v.DB.Where("name = ?", form.Name).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if err != nil {
		errs.AddRecord("failed to check group name")
		return
	}
	if form.ID != 0 {
		var target model.Group
		if err := v.DB.First(&target, form.ID).Error; err != nil {
			errs.AddRecord("group not found")
			return
		}
		if target.Name == form.Name {
			return
		}
	}
	checkKeyTaken(form.ID, existing.ID, errs, "Group already exists")
}

// RoomForm carries the fields the lecture room validator inspects.
type RoomForm struct {
	ID     uint
	Number string
}

// RoomValidator rejects room numbers already held by another row.
type RoomValidator struct {
	DB *gorm.DB
}

func (v *RoomValidator) Validate(form RoomForm, errs Errors) {
	var existing model.LectureRoom
	err := v.DB.Where("number = ?", form.Number).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if err != nil {
		errs.AddRecord("failed to check room number")
		return
	}
	if form.ID != 0 {
		var target model.LectureRoom
		if err := v.DB.First(&target, form.ID).Error; err != nil {
			errs.AddRecord("lecture room not found")
			return
		}
		if target.Number == form.Number {
			return
		}
	}
	checkKeyTaken(form.ID, existing.ID, errs, "Lecture room already exists")
}

// DurationForm carries the fields the duration validator inspects.
type DurationForm struct {
	ID        uint
	StartTime string
	EndTime   string
}

// DurationValidator rejects slot boundaries already held by another row.
// Start and end times are each checked on their own: sharing either boundary
// with another slot is a collision.
type DurationValidator struct {
	DB *gorm.DB
}

func (v *DurationValidator) Validate(form DurationForm, errs Errors) {
	v.checkBoundary(form.ID, "start_time", form.StartTime, "Start time already exists", errs)
	v.checkBoundary(form.ID, "end_time", form.EndTime, "End time already exists", errs)
}

func (v *DurationValidator) checkBoundary(formID uint, column, value, message string, errs Errors) {
	var existing model.Duration
	err := v.DB.Where(column+" = ?", value).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if err != nil {
		errs.AddRecord("failed to check duration")
		return
	}
	if formID != 0 && existing.ID == formID {
		return
	}
	errs.Add(column, message)
}

// PersonForm carries the fields the person validators inspect. Email is
// unique across students and employees together.
type PersonForm struct {
	ID    uint
	Email string
}

// StudentValidator rejects emails already held by another person.
type StudentValidator struct {
	DB *gorm.DB
}

func (v *StudentValidator) Validate(form PersonForm, errs Errors) {
	validatePersonEmail(v.DB, form, true, errs)
}

// EmployeeValidator rejects emails already held by another person.
type EmployeeValidator struct {
	DB *gorm.DB
}

func (v *EmployeeValidator) Validate(form PersonForm, errs Errors) {
	validatePersonEmail(v.DB, form, false, errs)
}

func validatePersonEmail(db *gorm.DB, form PersonForm, isStudent bool, errs Errors) {
	if !ValidateEmail(form.Email) {
		errs.Add("email", "Invalid email format")
		return
	}

	var student model.Student
	err := db.Where("email = ?", form.Email).First(&student).Error
	if err == nil {
		if !(isStudent && form.ID != 0 && student.ID == form.ID) {
			errs.Add("email", "Email already exists")
			return
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		errs.AddRecord("failed to check email")
		return
	}

	var employee model.Employee
	err = db.Where("email = ?", form.Email).First(&employee).Error
	if err == nil {
		if !(!isStudent && form.ID != 0 && employee.ID == form.ID) {
			errs.Add("email", "Email already exists")
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		errs.AddRecord("failed to check email")
	}
}
