package services

import (
	"testing"

	"github.com/volodymyr-curly/university-sub001/model"
)

func TestLectureAddRejectsDuplicateTuple(t *testing.T) {
	db := openTestDB(t)
	svc := NewLectureService(db)

	subject := seedSubject(t, db, "Linear Algebra")
	room := &model.LectureRoom{Number: "101"}
	duration := &model.Duration{StartTime: "09:00", EndTime: "10:20"}
	if err := db.Create(room).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(duration).Error; err != nil {
		t.Fatal(err)
	}

	first := &model.Lecture{
		Date:       testDate(2026, 9, 7),
		SubjectID:  &subject.ID,
		RoomID:     &room.ID,
		DurationID: &duration.ID,
	}
	if err := svc.Add(first, nil); err != nil {
		t.Fatalf("First lecture should be accepted: %v", err)
	}

	duplicate := &model.Lecture{
		Date:       testDate(2026, 9, 7),
		SubjectID:  &subject.ID,
		RoomID:     &room.ID,
		DurationID: &duration.ID,
	}
	err := svc.Add(duplicate, nil)
	if !IsAlreadyExists(err) {
		t.Fatalf("Duplicate booking tuple should be rejected, got %v", err)
	}

	// Changing one element of the tuple is enough to make it a new booking.
	otherDay := &model.Lecture{
		Date:       testDate(2026, 9, 8),
		SubjectID:  &subject.ID,
		RoomID:     &room.ID,
		DurationID: &duration.ID,
	}
	if err := svc.Add(otherDay, nil); err != nil {
		t.Fatalf("Different date should be accepted: %v", err)
	}
}

func TestLectureNilReferencesMatchNil(t *testing.T) {
	db := openTestDB(t)
	svc := NewLectureService(db)

	if err := svc.Add(&model.Lecture{Date: testDate(2026, 9, 7)}, nil); err != nil {
		t.Fatalf("First unassigned lecture should be accepted: %v", err)
	}

	// A cleared reference matches another cleared reference, it is not a
	// wildcard that skips the check.
	err := svc.Add(&model.Lecture{Date: testDate(2026, 9, 7)}, nil)
	if !IsAlreadyExists(err) {
		t.Fatalf("Two fully unassigned lectures on one date should collide, got %v", err)
	}
}

func TestLectureUpdateExcludesSelf(t *testing.T) {
	db := openTestDB(t)
	svc := NewLectureService(db)

	subject := seedSubject(t, db, "Systems Programming")

	first := &model.Lecture{Date: testDate(2026, 9, 7), SubjectID: &subject.ID}
	second := &model.Lecture{Date: testDate(2026, 9, 8), SubjectID: &subject.ID}
	if err := svc.Add(first, nil); err != nil {
		t.Fatal(err)
	}
	if err := svc.Add(second, nil); err != nil {
		t.Fatal(err)
	}

	// Saving a lecture with its own unchanged tuple must not conflict with
	// itself.
	same := &model.Lecture{Date: testDate(2026, 9, 7), SubjectID: &subject.ID}
	if err := svc.Update(first.ID, same, nil); err != nil {
		t.Fatalf("Update with own tuple should succeed: %v", err)
	}

	// Moving the second lecture onto the first's tuple must fail.
	collide := &model.Lecture{Date: testDate(2026, 9, 7), SubjectID: &subject.ID}
	err := svc.Update(second.ID, collide, nil)
	if !IsAlreadyExists(err) {
		t.Fatalf("Update onto another lecture's tuple should be rejected, got %v", err)
	}
}

func TestMarkDuplicateTuple(t *testing.T) {
	db := openTestDB(t)
	svc := NewMarkService(db)

	student := &model.Student{Person: testPerson("Iryna", "Shevchenko", "iryna@example.com")}
	if err := db.Create(student).Error; err != nil {
		t.Fatal(err)
	}
	subject := seedSubject(t, db, "Chemistry")

	if err := svc.Add(&model.Mark{Value: model.MarkA, StudentID: &student.ID, SubjectID: &subject.ID}); err != nil {
		t.Fatalf("First mark should be accepted: %v", err)
	}

	err := svc.Add(&model.Mark{Value: model.MarkA, StudentID: &student.ID, SubjectID: &subject.ID})
	if !IsAlreadyExists(err) {
		t.Fatalf("Same grade for same student and subject should be rejected, got %v", err)
	}

	// A different value is a different grade entry.
	if err := svc.Add(&model.Mark{Value: model.MarkB, StudentID: &student.ID, SubjectID: &subject.ID}); err != nil {
		t.Fatalf("Different value should be accepted: %v", err)
	}
}

func TestSubjectIdentityIsNamePlusTerm(t *testing.T) {
	db := openTestDB(t)
	svc := NewSubjectService(db)

	autumn := &model.Subject{Name: "Algebra", StartDate: testDate(2026, 9, 1), EndDate: testDate(2026, 12, 20)}
	if err := svc.Add(autumn); err != nil {
		t.Fatal(err)
	}

	err := svc.Add(&model.Subject{Name: "Algebra", StartDate: testDate(2026, 9, 1), EndDate: testDate(2026, 12, 20)})
	if !IsAlreadyExists(err) {
		t.Fatalf("Same name and term should be rejected, got %v", err)
	}

	// Same name may recur in another term.
	spring := &model.Subject{Name: "Algebra", StartDate: testDate(2027, 2, 1), EndDate: testDate(2027, 5, 30)}
	if err := svc.Add(spring); err != nil {
		t.Fatalf("Same name in a different term should be accepted: %v", err)
	}
}

func TestDurationBoundariesCollideSeparately(t *testing.T) {
	db := openTestDB(t)
	svc := NewDurationService(db)

	if err := svc.Add(&model.Duration{StartTime: "09:00", EndTime: "10:20"}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		duration model.Duration
		wantDup  bool
	}{
		{"same start", model.Duration{StartTime: "09:00", EndTime: "11:00"}, true},
		{"same end", model.Duration{StartTime: "08:00", EndTime: "10:20"}, true},
		{"both new", model.Duration{StartTime: "10:40", EndTime: "12:00"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Add(&tt.duration)
			if tt.wantDup && !IsAlreadyExists(err) {
				t.Fatalf("Expected boundary collision, got %v", err)
			}
			if !tt.wantDup && err != nil {
				t.Fatalf("Expected slot to be accepted, got %v", err)
			}
		})
	}
}

func TestDurationUpdateKeepsOwnBoundaries(t *testing.T) {
	db := openTestDB(t)
	svc := NewDurationService(db)

	slot := &model.Duration{StartTime: "09:00", EndTime: "10:20"}
	if err := svc.Add(slot); err != nil {
		t.Fatal(err)
	}

	if err := svc.Update(slot.ID, &model.Duration{StartTime: "09:00", EndTime: "10:30"}); err != nil {
		t.Fatalf("Update keeping own start time should succeed: %v", err)
	}
}

func TestPersonTupleSharedAcrossStudentsAndEmployees(t *testing.T) {
	db := openTestDB(t)
	studentSvc := NewStudentService(db)
	employeeSvc := NewEmployeeService(db)

	student := &model.Student{Person: testPerson("Olena", "Kovalenko", "olena.s@example.com")}
	if err := studentSvc.Add(student); err != nil {
		t.Fatal(err)
	}

	// Same biographical tuple under a different email is still the same
	// person, even in the other table.
	clone := &model.Employee{
		Person:         testPerson("Olena", "Kovalenko", "olena.e@example.com"),
		JobTitle:       model.JobTitleLecturer,
		EmploymentType: model.EmploymentFullTime,
	}
	err := employeeSvc.Add(clone)
	if !IsAlreadyExists(err) {
		t.Fatalf("Matching biographical tuple in employee table should be rejected, got %v", err)
	}

	// A different phone breaks the tuple.
	other := &model.Employee{
		Person:         testPerson("Olena", "Kovalenko", "olena.e@example.com"),
		JobTitle:       model.JobTitleLecturer,
		EmploymentType: model.EmploymentFullTime,
	}
	other.Person.Phone = "+380671111111"
	if err := employeeSvc.Add(other); err != nil {
		t.Fatalf("Different phone should be a different person: %v", err)
	}
}

func TestEmailUniqueAcrossPersonTables(t *testing.T) {
	db := openTestDB(t)
	studentSvc := NewStudentService(db)
	employeeSvc := NewEmployeeService(db)

	student := &model.Student{Person: testPerson("Taras", "Bondar", "shared@example.com")}
	if err := studentSvc.Add(student); err != nil {
		t.Fatal(err)
	}

	employee := &model.Employee{
		Person:         testPerson("Petro", "Melnyk", "shared@example.com"),
		JobTitle:       model.JobTitleAssistant,
		EmploymentType: model.EmploymentPartTime,
	}
	employee.Person.BirthDate = testDate(1975, 1, 2)
	err := employeeSvc.Add(employee)
	if !IsAlreadyExists(err) {
		t.Fatalf("Email reuse across person tables should be rejected, got %v", err)
	}
}

func TestStudentUpdateKeepsOwnIdentity(t *testing.T) {
	db := openTestDB(t)
	svc := NewStudentService(db)

	student := &model.Student{Person: testPerson("Iryna", "Tkachenko", "iryna.t@example.com")}
	if err := svc.Add(student); err != nil {
		t.Fatal(err)
	}

	// Re-saving the student with the same tuple and email must not collide
	// with its own row.
	updated := &model.Student{Person: testPerson("Iryna", "Tkachenko", "iryna.t@example.com")}
	if err := svc.Update(student.ID, updated); err != nil {
		t.Fatalf("Update with own identity should succeed: %v", err)
	}
}

func TestGroupNameUnique(t *testing.T) {
	db := openTestDB(t)
	svc := NewGroupService(db)

	if err := svc.Add(&model.Group{Name: "Se_cs-21"}, nil, nil); err != nil {
		t.Fatal(err)
	}
	err := svc.Add(&model.Group{Name: "Se_cs-21"}, nil, nil)
	if !IsAlreadyExists(err) {
		t.Fatalf("Duplicate group name should be rejected, got %v", err)
	}
}

func TestRoomNumberUnique(t *testing.T) {
	db := openTestDB(t)
	svc := NewRoomService(db)

	if err := svc.Add(&model.LectureRoom{Number: "204A"}); err != nil {
		t.Fatal(err)
	}
	err := svc.Add(&model.LectureRoom{Number: "204A"})
	if !IsAlreadyExists(err) {
		t.Fatalf("Duplicate room number should be rejected, got %v", err)
	}
}
