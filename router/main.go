package router

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/database"
	"github.com/volodymyr-curly/university-sub001/handlers"
	department_handlers "github.com/volodymyr-curly/university-sub001/handlers/department"
	duration_handlers "github.com/volodymyr-curly/university-sub001/handlers/duration"
	employee_handlers "github.com/volodymyr-curly/university-sub001/handlers/employee"
	faculty_handlers "github.com/volodymyr-curly/university-sub001/handlers/faculty"
	group_handlers "github.com/volodymyr-curly/university-sub001/handlers/group"
	lecture_handlers "github.com/volodymyr-curly/university-sub001/handlers/lecture"
	mark_handlers "github.com/volodymyr-curly/university-sub001/handlers/mark"
	room_handlers "github.com/volodymyr-curly/university-sub001/handlers/room"
	student_handlers "github.com/volodymyr-curly/university-sub001/handlers/student"
	subject_handlers "github.com/volodymyr-curly/university-sub001/handlers/subject"
	teacher_handlers "github.com/volodymyr-curly/university-sub001/handlers/teacher"
	"github.com/volodymyr-curly/university-sub001/utils/cache"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Initialize Redis cache for hot list endpoints
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. List caching will be disabled.", err)
	}

	// Initialize handlers
	facultyHandler := faculty_handlers.NewFacultyHandler(db)
	departmentHandler := department_handlers.NewDepartmentHandler(db)
	groupHandler := group_handlers.NewGroupHandler(db, redisCache)
	subjectHandler := subject_handlers.NewSubjectHandler(db)
	teacherHandler := teacher_handlers.NewTeacherHandler(db)
	employeeHandler := employee_handlers.NewEmployeeHandler(db)
	studentHandler := student_handlers.NewStudentHandler(db)
	lectureHandler := lecture_handlers.NewLectureHandler(db, redisCache)
	markHandler := mark_handlers.NewMarkHandler(db)
	roomHandler := room_handlers.NewRoomHandler(db)
	durationHandler := duration_handlers.NewDurationHandler(db)

	// Health check
	app.Get("/health", handlers.HealthCheck(store))

	v1 := app.Group("/api/v1")

	faculties := v1.Group("/faculties")
	faculties.Get("/", facultyHandler.ListFaculties)
	faculties.Get("/:id", facultyHandler.GetFaculty)
	faculties.Post("/", facultyHandler.CreateFaculty)
	faculties.Put("/:id", facultyHandler.UpdateFaculty)
	faculties.Delete("/:id", facultyHandler.DeleteFaculty)

	departments := v1.Group("/departments")
	departments.Get("/", departmentHandler.ListDepartments)
	departments.Get("/:id", departmentHandler.GetDepartment)
	departments.Post("/", departmentHandler.CreateDepartment)
	departments.Put("/:id", departmentHandler.UpdateDepartment)
	departments.Delete("/:id", departmentHandler.DeleteDepartment)

	groups := v1.Group("/groups")
	groups.Get("/", groupHandler.ListGroups)
	groups.Get("/:id", groupHandler.GetGroup)
	groups.Post("/", groupHandler.CreateGroup)
	groups.Put("/:id", groupHandler.UpdateGroup)
	groups.Delete("/:id", groupHandler.DeleteGroup)

	subjects := v1.Group("/subjects")
	subjects.Get("/", subjectHandler.ListSubjects)
	subjects.Get("/:id", subjectHandler.GetSubject)
	subjects.Post("/", subjectHandler.CreateSubject)
	subjects.Put("/:id", subjectHandler.UpdateSubject)
	subjects.Delete("/:id", subjectHandler.DeleteSubject)

	teachers := v1.Group("/teachers")
	teachers.Get("/", teacherHandler.ListTeachers)
	teachers.Get("/:id", teacherHandler.GetTeacher)
	teachers.Post("/", teacherHandler.CreateTeacher)
	teachers.Put("/:id", teacherHandler.UpdateTeacher)
	teachers.Delete("/:id", teacherHandler.DeleteTeacher)

	employees := v1.Group("/employees")
	employees.Get("/", employeeHandler.ListEmployees)
	employees.Get("/:id", employeeHandler.GetEmployee)
	employees.Post("/", employeeHandler.CreateEmployee)
	employees.Put("/:id", employeeHandler.UpdateEmployee)
	employees.Delete("/:id", employeeHandler.DeleteEmployee)

	students := v1.Group("/students")
	students.Get("/", studentHandler.ListStudents)
	students.Get("/:id", studentHandler.GetStudent)
	students.Post("/", studentHandler.CreateStudent)
	students.Put("/:id", studentHandler.UpdateStudent)
	students.Delete("/:id", studentHandler.DeleteStudent)

	lectures := v1.Group("/lectures")
	lectures.Get("/", lectureHandler.ListLectures)
	lectures.Get("/:id", lectureHandler.GetLecture)
	lectures.Post("/", lectureHandler.CreateLecture)
	lectures.Put("/:id", lectureHandler.UpdateLecture)
	lectures.Delete("/:id", lectureHandler.DeleteLecture)

	marks := v1.Group("/marks")
	marks.Get("/", markHandler.ListMarks)
	marks.Get("/:id", markHandler.GetMark)
	marks.Post("/", markHandler.CreateMark)
	marks.Put("/:id", markHandler.UpdateMark)
	marks.Delete("/:id", markHandler.DeleteMark)

	rooms := v1.Group("/rooms")
	rooms.Get("/", roomHandler.ListRooms)
	rooms.Get("/:id", roomHandler.GetRoom)
	rooms.Post("/", roomHandler.CreateRoom)
	rooms.Put("/:id", roomHandler.UpdateRoom)
	rooms.Delete("/:id", roomHandler.DeleteRoom)

	durations := v1.Group("/durations")
	durations.Get("/", durationHandler.ListDurations)
	durations.Get("/:id", durationHandler.GetDuration)
	durations.Post("/", durationHandler.CreateDuration)
	durations.Put("/:id", durationHandler.UpdateDuration)
	durations.Delete("/:id", durationHandler.DeleteDuration)
}
