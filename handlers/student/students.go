package student

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
	"github.com/volodymyr-curly/university-sub001/services"
	"github.com/volodymyr-curly/university-sub001/utils/response"
	"github.com/volodymyr-curly/university-sub001/utils/validation"
)

// StudentHandler handles student-related requests
type StudentHandler struct {
	service   *services.StudentService
	validator *validation.Validator
	records   *validation.StudentValidator
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(db *gorm.DB) *StudentHandler {
	return &StudentHandler{
		service:   services.NewStudentService(db),
		validator: validation.NewValidator(),
		records:   &validation.StudentValidator{DB: db},
	}
}

// AddressRequest carries the postal address fields of a person request
type AddressRequest struct {
	Country  string `json:"country" validate:"omitempty,max=100"`
	City     string `json:"city" validate:"omitempty,max=100"`
	Street   string `json:"street" validate:"omitempty,max=255"`
	House    string `json:"house" validate:"omitempty,max=20"`
	Flat     string `json:"flat" validate:"omitempty,max=20"`
	PostCode string `json:"post_code" validate:"omitempty,max=20"`
}

// StudentRequest represents the request body for creating or updating a
// student
type StudentRequest struct {
	FirstName string         `json:"first_name" validate:"required,min=2,max=100"`
	LastName  string         `json:"last_name" validate:"required,min=2,max=100"`
	Gender    string         `json:"gender" validate:"required,oneof=male female"`
	BirthDate string         `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Email     string         `json:"email" validate:"required,email"`
	Phone     string         `json:"phone" validate:"omitempty,max=30"`
	Address   AddressRequest `json:"address"`
	GroupID   *uint          `json:"group_id" validate:"omitempty,gt=0"`
}

func (r StudentRequest) toModel() model.Student {
	birth, _ := time.Parse("2006-01-02", r.BirthDate)
	return model.Student{
		Person: model.Person{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Gender:    model.Gender(r.Gender),
			BirthDate: datatypes.Date(birth),
			Email:     r.Email,
			Phone:     r.Phone,
			Role:      model.RoleStudent,
			Address: model.Address{
				Country:  r.Address.Country,
				City:     r.Address.City,
				Street:   r.Address.Street,
				House:    r.Address.House,
				Flat:     r.Address.Flat,
				PostCode: r.Address.PostCode,
			},
		},
		GroupID: r.GroupID,
	}
}

// ListStudents handles GET /api/v1/students
func (h *StudentHandler) ListStudents(c *fiber.Ctx) error {
	if groupID, err := strconv.ParseUint(c.Query("group_id"), 10, 32); err == nil {
		students, err := h.service.FindByGroup(uint(groupID))
		if err != nil {
			return response.ServiceError(c, err)
		}
		return response.Success(c, students)
	}

	students, err := h.service.FindAll()
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, students)
}

// GetStudent handles GET /api/v1/students/:id
func (h *StudentHandler) GetStudent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}

	student, err := h.service.Find(uint(id))
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, student)
}

// CreateStudent handles POST /api/v1/students
func (h *StudentHandler) CreateStudent(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Email = validation.SanitizeString(req.Email)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	errs := validation.Errors{}
	h.records.Validate(validation.PersonForm{Email: req.Email}, errs)
	if !errs.Empty() {
		return response.ValidationError(c, errs)
	}

	student := req.toModel()
	if err := h.service.Add(&student); err != nil {
		return response.ServiceError(c, err)
	}
	return response.Created(c, student)
}

// UpdateStudent handles PUT /api/v1/students/:id
func (h *StudentHandler) UpdateStudent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Email = validation.SanitizeString(req.Email)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	errs := validation.Errors{}
	h.records.Validate(validation.PersonForm{ID: uint(id), Email: req.Email}, errs)
	if !errs.Empty() {
		return response.ValidationError(c, errs)
	}

	student := req.toModel()
	if err := h.service.Update(uint(id), &student); err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, student)
}

// DeleteStudent handles DELETE /api/v1/students/:id
func (h *StudentHandler) DeleteStudent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}

	if err := h.service.Delete(uint(id)); err != nil {
		return response.ServiceError(c, err)
	}
	return response.NoContent(c)
}
