package department

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
	"github.com/volodymyr-curly/university-sub001/services"
	"github.com/volodymyr-curly/university-sub001/utils/response"
	"github.com/volodymyr-curly/university-sub001/utils/validation"
)

// DepartmentHandler handles department-related requests
type DepartmentHandler struct {
	service   *services.DepartmentService
	validator *validation.Validator
	records   *validation.DepartmentValidator
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(db *gorm.DB) *DepartmentHandler {
	return &DepartmentHandler{
		service:   services.NewDepartmentService(db),
		validator: validation.NewValidator(),
		records:   &validation.DepartmentValidator{DB: db},
	}
}

// DepartmentRequest represents the request body for creating or updating a
// department
type DepartmentRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=255"`
	FacultyID *uint  `json:"faculty_id" validate:"omitempty,gt=0"`
}

// ListDepartments handles GET /api/v1/departments
func (h *DepartmentHandler) ListDepartments(c *fiber.Ctx) error {
	if facultyID, err := strconv.ParseUint(c.Query("faculty_id"), 10, 32); err == nil {
		departments, err := h.service.FindByFaculty(uint(facultyID))
		if err != nil {
			return response.ServiceError(c, err)
		}
		return response.Success(c, departments)
	}

	departments, err := h.service.FindAll()
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, departments)
}

// GetDepartment handles GET /api/v1/departments/:id
func (h *DepartmentHandler) GetDepartment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid department id")
	}

	department, err := h.service.Find(uint(id))
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, department)
}

// CreateDepartment handles POST /api/v1/departments
func (h *DepartmentHandler) CreateDepartment(c *fiber.Ctx) error {
	var req DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Name = validation.SanitizeString(req.Name)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	errs := validation.Errors{}
	h.records.Validate(validation.DepartmentForm{Name: req.Name}, errs)
	if !errs.Empty() {
		return response.ValidationError(c, errs)
	}

	department := model.Department{
		Name:      req.Name,
		FacultyID: req.FacultyID,
	}
	if err := h.service.Add(&department); err != nil {
		return response.ServiceError(c, err)
	}
	return response.Created(c, department)
}

// UpdateDepartment handles PUT /api/v1/departments/:id
func (h *DepartmentHandler) UpdateDepartment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid department id")
	}

	var req DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Name = validation.SanitizeString(req.Name)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	errs := validation.Errors{}
	h.records.Validate(validation.DepartmentForm{ID: uint(id), Name: req.Name}, errs)
	if !errs.Empty() {
		return response.ValidationError(c, errs)
	}

	department := model.Department{
		Name:      req.Name,
		FacultyID: req.FacultyID,
	}
	if err := h.service.Update(uint(id), &department); err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, department)
}

// DeleteDepartment handles DELETE /api/v1/departments/:id
func (h *DepartmentHandler) DeleteDepartment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid department id")
	}

	if err := h.service.Delete(uint(id)); err != nil {
		return response.ServiceError(c, err)
	}
	return response.NoContent(c)
}
