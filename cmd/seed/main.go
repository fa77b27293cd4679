package main

import (
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/config"
	"github.com/volodymyr-curly/university-sub001/database"
	"github.com/volodymyr-curly/university-sub001/model"
	"github.com/volodymyr-curly/university-sub001/services"
)

// Seeds a development database with a small but fully linked data set:
// one faculty, two departments, groups with subjects and lectures, and
// students with marks. Does nothing if faculties already exist.
func main() {
	if err := config.LoadENV(); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	pqStore, err := database.StartPostgreSQL()
	if err != nil {
		log.Fatal(err)
	}
	if err := pqStore.InitEnums(); err != nil {
		log.Fatal(err)
	}
	pqStore.Close()

	store, err := database.StartGORM()
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatal(err)
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	if err := seed(db); err != nil {
		log.Fatal(err)
	}
	log.Println("Seeding complete")
}

func date(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func seed(db *gorm.DB) error {
	facultySvc := services.NewFacultyService(db)
	departmentSvc := services.NewDepartmentService(db)
	groupSvc := services.NewGroupService(db)
	subjectSvc := services.NewSubjectService(db)
	employeeSvc := services.NewEmployeeService(db)
	teacherSvc := services.NewTeacherService(db)
	studentSvc := services.NewStudentService(db)
	roomSvc := services.NewRoomService(db)
	durationSvc := services.NewDurationService(db)
	lectureSvc := services.NewLectureService(db)
	markSvc := services.NewMarkService(db)

	if _, err := facultySvc.FindAll(); !services.IsNotFound(err) {
		if err != nil {
			return err
		}
		log.Println("Database already seeded, nothing to do")
		return nil
	}

	faculty := &model.Faculty{Name: "Faculty of Computer Science"}
	if err := facultySvc.Add(faculty); err != nil {
		return err
	}

	depSoftware := &model.Department{Name: "Software Engineering", FacultyID: &faculty.ID}
	depMath := &model.Department{Name: "Applied Mathematics", FacultyID: &faculty.ID}
	for _, d := range []*model.Department{depSoftware, depMath} {
		if err := departmentSvc.Add(d); err != nil {
			return err
		}
	}

	algebra := &model.Subject{Name: "Linear Algebra", StartDate: date(2026, 9, 1), EndDate: date(2026, 12, 20)}
	golang := &model.Subject{Name: "Systems Programming", StartDate: date(2026, 9, 1), EndDate: date(2026, 12, 20)}
	for _, s := range []*model.Subject{algebra, golang} {
		if err := subjectSvc.Add(s); err != nil {
			return err
		}
	}

	employee := &model.Employee{
		Person: model.Person{
			FirstName: "Olena",
			LastName:  "Kovalenko",
			Gender:    model.GenderFemale,
			BirthDate: date(1980, 4, 12),
			Email:     "olena.kovalenko@university.edu",
			Phone:     "+380501112233",
			Role:      model.RoleEmployee,
			Address: model.Address{
				Country: "Ukraine", City: "Kyiv", Street: "Khreshchatyk",
				House: "12", Flat: "4", PostCode: "01001",
			},
		},
		DepartmentID:   &depMath.ID,
		JobTitle:       model.JobTitleProfessor,
		EmploymentType: model.EmploymentFullTime,
		EmploymentDate: date(2010, 9, 1),
	}
	if err := employeeSvc.Add(employee); err != nil {
		return err
	}

	teacher := &model.Teacher{EmployeeID: &employee.ID, Degree: model.DegreeDoctoral}
	if err := teacherSvc.Add(teacher, []uint{algebra.ID, golang.ID}); err != nil {
		return err
	}

	room := &model.LectureRoom{Number: "204A"}
	if err := roomSvc.Add(room); err != nil {
		return err
	}

	morning := &model.Duration{StartTime: "09:00", EndTime: "10:20"}
	midday := &model.Duration{StartTime: "10:40", EndTime: "12:00"}
	for _, d := range []*model.Duration{morning, midday} {
		if err := durationSvc.Add(d); err != nil {
			return err
		}
	}

	lecture := &model.Lecture{
		Date:       date(2026, 9, 7),
		SubjectID:  &algebra.ID,
		TeacherID:  &teacher.ID,
		RoomID:     &room.ID,
		DurationID: &morning.ID,
	}
	if err := lectureSvc.Add(lecture, nil); err != nil {
		return err
	}

	group := &model.Group{Name: "Se_cs-21", DepartmentID: &depSoftware.ID}
	if err := groupSvc.Add(group, []uint{algebra.ID, golang.ID}, []uint{lecture.ID}); err != nil {
		return err
	}

	student := &model.Student{
		Person: model.Person{
			FirstName: "Taras",
			LastName:  "Bondar",
			Gender:    model.GenderMale,
			BirthDate: date(2004, 11, 3),
			Email:     "taras.bondar@student.university.edu",
			Phone:     "+380671234567",
			Role:      model.RoleStudent,
			Address: model.Address{
				Country: "Ukraine", City: "Lviv", Street: "Svobody",
				House: "7", PostCode: "79000",
			},
		},
		GroupID: &group.ID,
	}
	if err := studentSvc.Add(student); err != nil {
		return err
	}

	mark := &model.Mark{Value: model.MarkB, StudentID: &student.ID, SubjectID: &algebra.ID}
	return markSvc.Add(mark)
}

