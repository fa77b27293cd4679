package employee

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

// EmployeeHandler handles employee-related requests
type EmployeeHandler struct {
	service   *services.EmployeeService
	validator *validation.Validator
	records   *validation.EmployeeValidator
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{
		service:   services.NewEmployeeService(db),
		validator: validation.NewValidator(),
		records:   &validation.EmployeeValidator{DB: db},
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

// EmployeeRequest represents the request body for creating or updating an
// employee
type EmployeeRequest struct {
	FirstName      string         `json:"first_name" validate:"required,min=2,max=100"`
	LastName       string         `json:"last_name" validate:"required,min=2,max=100"`
	Gender         string         `json:"gender" validate:"required,oneof=male female"`
	BirthDate      string         `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Email          string         `json:"email" validate:"required,email"`
	Phone          string         `json:"phone" validate:"omitempty,max=30"`
	Address        AddressRequest `json:"address"`
	DepartmentID   *uint          `json:"department_id" validate:"omitempty,gt=0"`
	JobTitle       string         `json:"job_title" validate:"required,oneof=assistant lecturer senior_lecturer docent professor"`
	EmploymentType string         `json:"employment_type" validate:"required,oneof=full_time part_time contract"`
	EmploymentDate string         `json:"employment_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r EmployeeRequest) toModel() model.Employee {
	birth, _ := time.Parse("2006-01-02", r.BirthDate)
	hired, _ := time.Parse("2006-01-02", r.EmploymentDate)
	return model.Employee{
		Person: model.Person{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Gender:    model.Gender(r.Gender),
			BirthDate: datatypes.Date(birth),
			Email:     r.Email,
			Phone:     r.Phone,
			Role:      model.RoleEmployee,
			Address: model.Address{
				Country:  r.Address.Country,
				City:     r.Address.City,
				Street:   r.Address.Street,
				House:    r.Address.House,
				Flat:     r.Address.Flat,
				PostCode: r.Address.PostCode,
			},
		},
		DepartmentID:   r.DepartmentID,
		JobTitle:       model.JobTitle(r.JobTitle),
		EmploymentType: model.EmploymentType(r.EmploymentType),
		EmploymentDate: datatypes.Date(hired),
	}
}

// ListEmployees handles GET /api/v1/employees
func (h *EmployeeHandler) ListEmployees(c *fiber.Ctx) error {
	if departmentID, err := strconv.ParseUint(c.Query("department_id"), 10, 32); err == nil {
		employees, err := h.service.FindByDepartment(uint(departmentID))
		if err != nil {
			return response.ServiceError(c, err)
		}
		return response.Success(c, employees)
	}

	employees, err := h.service.FindAll()
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, employees)
}

// GetEmployee handles GET /api/v1/employees/:id
func (h *EmployeeHandler) GetEmployee(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid employee id")
	}

	employee, err := h.service.Find(uint(id))
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, employee)
}

// CreateEmployee handles POST /api/v1/employees
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var req EmployeeRequest
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

	employee := req.toModel()
	if err := h.service.Add(&employee); err != nil {
		return response.ServiceError(c, err)
	}
	return response.Created(c, employee)
}

// UpdateEmployee handles PUT /api/v1/employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid employee id")
	}

	var req EmployeeRequest
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

	employee := req.toModel()
	if err := h.service.Update(uint(id), &employee); err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, employee)
}

// DeleteEmployee handles DELETE /api/v1/employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid employee id")
	}

	if err := h.service.Delete(uint(id)); err != nil {
		return response.ServiceError(c, err)
	}
	return response.NoContent(c)
}
