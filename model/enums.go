package model

// Gender defines the possible gender values for a person.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Degree defines the academic degree held by a teacher.
type Degree string

const (
	DegreeBachelor Degree = "bachelor"
	DegreeMaster   Degree = "master"
	DegreeDoctoral Degree = "doctoral"
)

// JobTitle defines the position an employee holds in a department.
type JobTitle string

const (
	JobTitleAssistant      JobTitle = "assistant"
	JobTitleLecturer       JobTitle = "lecturer"
	JobTitleSeniorLecturer JobTitle = "senior_lecturer"
	JobTitleDocent         JobTitle = "docent"
	JobTitleProfessor      JobTitle = "professor"
)

// EmploymentType defines the employment arrangement of an employee.
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full_time"
	EmploymentPartTime EmploymentType = "part_time"
	EmploymentContract EmploymentType = "contract"
)

// MarkValue defines the letter grade recorded for a student in a subject.
type MarkValue string

const (
	MarkA MarkValue = "A"
	MarkB MarkValue = "B"
	MarkC MarkValue = "C"
	MarkD MarkValue = "D"
	MarkE MarkValue = "E"
	MarkF MarkValue = "F"
)

// Role defines the access role attached to a person record.
type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)
