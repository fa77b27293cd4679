package services

import (
	"testing"

	"github.com/volodymyr-curly/university-sub001/model"
)

func TestDepartmentDeleteClearsEmployeeAndGroupRefs(t *testing.T) {
	db := openTestDB(t)
	svc := NewDepartmentService(db)

	department := &model.Department{Name: "Applied Mathematics"}
	if err := db.Create(department).Error; err != nil {
		t.Fatal(err)
	}

	employees := []model.Employee{
		{Person: testPerson("Olena", "Kovalenko", "a@example.com"), DepartmentID: &department.ID, JobTitle: model.JobTitleProfessor, EmploymentType: model.EmploymentFullTime},
		{Person: testPerson("Petro", "Melnyk", "b@example.com"), DepartmentID: &department.ID, JobTitle: model.JobTitleDocent, EmploymentType: model.EmploymentPartTime},
	}
	if err := db.Create(&employees).Error; err != nil {
		t.Fatal(err)
	}
	groups := []model.Group{
		{Name: "Se_cs-21", DepartmentID: &department.ID},
		{Name: "Se_cs-22", DepartmentID: &department.ID},
		{Name: "Se_cs-23", DepartmentID: &department.ID},
	}
	if err := db.Create(&groups).Error; err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(department.ID); err != nil {
		t.Fatal(err)
	}

	var remaining []model.Employee
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 2 {
		t.Fatalf("Employees should survive the department delete, got %d", len(remaining))
	}
	for _, e := range remaining {
		if e.DepartmentID != nil {
			t.Fatalf("Employee %d should have a cleared department reference", e.ID)
		}
	}

	var orphanGroups int64
	if err := db.Model(&model.Group{}).Where("department_id IS NULL").Count(&orphanGroups).Error; err != nil {
		t.Fatal(err)
	}
	if orphanGroups != 3 {
		t.Fatalf("All 3 groups should survive with cleared references, got %d", orphanGroups)
	}
}

func TestFacultyDeleteClearsDepartmentRefs(t *testing.T) {
	db := openTestDB(t)
	svc := NewFacultyService(db)

	faculty := &model.Faculty{Name: "Computer Science"}
	if err := db.Create(faculty).Error; err != nil {
		t.Fatal(err)
	}
	department := &model.Department{Name: "Software Engineering", FacultyID: &faculty.ID}
	if err := db.Create(department).Error; err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(faculty.ID); err != nil {
		t.Fatal(err)
	}

	var found model.Department
	if err := db.First(&found, department.ID).Error; err != nil {
		t.Fatalf("Department should survive the faculty delete: %v", err)
	}
	if found.FacultyID != nil {
		t.Fatal("Department faculty reference should be cleared")
	}
}

func TestRoomDeleteClearsLectureRefs(t *testing.T) {
	db := openTestDB(t)
	roomSvc := NewRoomService(db)
	lectureSvc := NewLectureService(db)

	room := &model.LectureRoom{Number: "101"}
	if err := db.Create(room).Error; err != nil {
		t.Fatal(err)
	}
	lectures := []model.Lecture{
		{Date: testDate(2026, 9, 7), RoomID: &room.ID},
		{Date: testDate(2026, 9, 8), RoomID: &room.ID},
	}
	if err := db.Create(&lectures).Error; err != nil {
		t.Fatal(err)
	}

	if err := roomSvc.Delete(room.ID); err != nil {
		t.Fatal(err)
	}

	var unassigned int64
	if err := db.Model(&model.Lecture{}).Where("room_id IS NULL").Count(&unassigned).Error; err != nil {
		t.Fatal(err)
	}
	if unassigned != 2 {
		t.Fatalf("Both lectures should survive with cleared room references, got %d", unassigned)
	}

	byRoom, err := lectureSvc.FindByRoom(room.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(byRoom) != 0 {
		t.Fatalf("No lecture should still reference the deleted room, got %d", len(byRoom))
	}
}

func TestGroupDeleteClearsStudentsAndDetaches(t *testing.T) {
	db := openTestDB(t)
	groupSvc := NewGroupService(db)
	subjectSvc := NewSubjectService(db)

	subject := seedSubject(t, db, "Algebra")
	group := &model.Group{Name: "Se_cs-21"}
	if err := groupSvc.Add(group, []uint{subject.ID}, nil); err != nil {
		t.Fatal(err)
	}
	student := &model.Student{Person: testPerson("Taras", "Bondar", "taras@example.com"), GroupID: &group.ID}
	if err := db.Create(student).Error; err != nil {
		t.Fatal(err)
	}

	if err := groupSvc.Delete(group.ID); err != nil {
		t.Fatal(err)
	}

	var found model.Student
	if err := db.First(&found, student.ID).Error; err != nil {
		t.Fatalf("Student should survive the group delete: %v", err)
	}
	if found.GroupID != nil {
		t.Fatal("Student group reference should be cleared")
	}

	survivor, err := subjectSvc.Find(subject.ID)
	if err != nil {
		t.Fatalf("Subject should survive the group delete: %v", err)
	}
	if len(survivor.Groups) != 0 {
		t.Fatalf("Subject should no longer list the deleted group, got %d", len(survivor.Groups))
	}
}

func TestSubjectDeleteDetachesAndClearsRefs(t *testing.T) {
	db := openTestDB(t)
	subjectSvc := NewSubjectService(db)
	groupSvc := NewGroupService(db)
	teacherSvc := NewTeacherService(db)

	subject := seedSubject(t, db, "Chemistry")
	group := &model.Group{Name: "Se_cs-21"}
	if err := groupSvc.Add(group, []uint{subject.ID}, nil); err != nil {
		t.Fatal(err)
	}
	teacher := &model.Teacher{Degree: model.DegreeMaster}
	if err := teacherSvc.Add(teacher, []uint{subject.ID}); err != nil {
		t.Fatal(err)
	}
	lecture := &model.Lecture{Date: testDate(2026, 9, 7), SubjectID: &subject.ID}
	mark := &model.Mark{Value: model.MarkC, SubjectID: &subject.ID}
	if err := db.Create(lecture).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(mark).Error; err != nil {
		t.Fatal(err)
	}

	if err := subjectSvc.Delete(subject.ID); err != nil {
		t.Fatal(err)
	}

	foundGroup, err := groupSvc.Find(group.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(foundGroup.Subjects) != 0 {
		t.Fatalf("Group should no longer list the deleted subject, got %d", len(foundGroup.Subjects))
	}
	foundTeacher, err := teacherSvc.Find(teacher.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(foundTeacher.Subjects) != 0 {
		t.Fatalf("Teacher should no longer list the deleted subject, got %d", len(foundTeacher.Subjects))
	}

	var foundLecture model.Lecture
	if err := db.First(&foundLecture, lecture.ID).Error; err != nil {
		t.Fatal(err)
	}
	if foundLecture.SubjectID != nil {
		t.Fatal("Lecture subject reference should be cleared")
	}
	var foundMark model.Mark
	if err := db.First(&foundMark, mark.ID).Error; err != nil {
		t.Fatal(err)
	}
	if foundMark.SubjectID != nil {
		t.Fatal("Mark subject reference should be cleared")
	}
}

func TestTeacherDeleteClearsLecturesAndDetaches(t *testing.T) {
	db := openTestDB(t)
	teacherSvc := NewTeacherService(db)

	subject := seedSubject(t, db, "Geometry")
	teacher := &model.Teacher{Degree: model.DegreeBachelor}
	if err := teacherSvc.Add(teacher, []uint{subject.ID}); err != nil {
		t.Fatal(err)
	}
	lecture := &model.Lecture{Date: testDate(2026, 9, 7), TeacherID: &teacher.ID}
	if err := db.Create(lecture).Error; err != nil {
		t.Fatal(err)
	}

	if err := teacherSvc.Delete(teacher.ID); err != nil {
		t.Fatal(err)
	}

	var foundLecture model.Lecture
	if err := db.First(&foundLecture, lecture.ID).Error; err != nil {
		t.Fatal(err)
	}
	if foundLecture.TeacherID != nil {
		t.Fatal("Lecture teacher reference should be cleared")
	}

	var joins int64
	if err := db.Model(&model.TeacherSubject{}).Where("teacher_id = ?", teacher.ID).Count(&joins).Error; err != nil {
		t.Fatal(err)
	}
	if joins != 0 {
		t.Fatalf("Teacher-subject rows should be gone, got %d", joins)
	}
}

// Deleting an employee clears the teacher's employee reference but leaves the
// teacher row in place.
func TestEmployeeDeleteLeavesTeacherBehind(t *testing.T) {
	db := openTestDB(t)
	employeeSvc := NewEmployeeService(db)

	employee := &model.Employee{
		Person:         testPerson("Olena", "Kovalenko", "olena@example.com"),
		JobTitle:       model.JobTitleProfessor,
		EmploymentType: model.EmploymentFullTime,
	}
	if err := db.Create(employee).Error; err != nil {
		t.Fatal(err)
	}
	teacher := &model.Teacher{EmployeeID: &employee.ID, Degree: model.DegreeDoctoral}
	if err := db.Create(teacher).Error; err != nil {
		t.Fatal(err)
	}

	if err := employeeSvc.Delete(employee.ID); err != nil {
		t.Fatal(err)
	}

	var found model.Teacher
	if err := db.First(&found, teacher.ID).Error; err != nil {
		t.Fatalf("Teacher row should survive the employee delete: %v", err)
	}
	if found.EmployeeID != nil {
		t.Fatal("Teacher employee reference should be cleared")
	}
}

func TestStudentDeleteClearsMarkRefs(t *testing.T) {
	db := openTestDB(t)
	studentSvc := NewStudentService(db)

	student := &model.Student{Person: testPerson("Iryna", "Shevchenko", "iryna@example.com")}
	if err := db.Create(student).Error; err != nil {
		t.Fatal(err)
	}
	mark := &model.Mark{Value: model.MarkA, StudentID: &student.ID}
	if err := db.Create(mark).Error; err != nil {
		t.Fatal(err)
	}

	if err := studentSvc.Delete(student.ID); err != nil {
		t.Fatal(err)
	}

	var found model.Mark
	if err := db.First(&found, mark.ID).Error; err != nil {
		t.Fatalf("Mark should survive the student delete: %v", err)
	}
	if found.StudentID != nil {
		t.Fatal("Mark student reference should be cleared")
	}
}

func TestDurationDeleteClearsLectureRefs(t *testing.T) {
	db := openTestDB(t)
	durationSvc := NewDurationService(db)

	duration := &model.Duration{StartTime: "09:00", EndTime: "10:20"}
	if err := db.Create(duration).Error; err != nil {
		t.Fatal(err)
	}
	lecture := &model.Lecture{Date: testDate(2026, 9, 7), DurationID: &duration.ID}
	if err := db.Create(lecture).Error; err != nil {
		t.Fatal(err)
	}

	if err := durationSvc.Delete(duration.ID); err != nil {
		t.Fatal(err)
	}

	var found model.Lecture
	if err := db.First(&found, lecture.ID).Error; err != nil {
		t.Fatal(err)
	}
	if found.DurationID != nil {
		t.Fatal("Lecture duration reference should be cleared")
	}
}

// Deleting an entity with nothing attached runs the same cascade and must
// still succeed.
func TestDeleteWithEmptyCollections(t *testing.T) {
	db := openTestDB(t)

	department := &model.Department{Name: "Empty Department"}
	if err := db.Create(department).Error; err != nil {
		t.Fatal(err)
	}
	if err := NewDepartmentService(db).Delete(department.ID); err != nil {
		t.Fatalf("Deleting a department with no members should succeed: %v", err)
	}

	group := &model.Group{Name: "Se_cs-99"}
	if err := db.Create(group).Error; err != nil {
		t.Fatal(err)
	}
	if err := NewGroupService(db).Delete(group.ID); err != nil {
		t.Fatalf("Deleting a group with no links should succeed: %v", err)
	}
}

func TestDeleteMissingReturnsNotFound(t *testing.T) {
	db := openTestDB(t)

	if err := NewFacultyService(db).Delete(42); !IsNotFound(err) {
		t.Fatalf("Deleting a missing faculty should report not found, got %v", err)
	}
	if err := NewLectureService(db).Delete(42); !IsNotFound(err) {
		t.Fatalf("Deleting a missing lecture should report not found, got %v", err)
	}
}

func TestFindAllEmptyReportsNotFound(t *testing.T) {
	db := openTestDB(t)

	if _, err := NewGroupService(db).FindAll(); !IsNotFound(err) {
		t.Fatalf("Listing an empty table should report not found, got %v", err)
	}
	if _, err := NewMarkService(db).FindAll(); !IsNotFound(err) {
		t.Fatalf("Listing an empty table should report not found, got %v", err)
	}
}
