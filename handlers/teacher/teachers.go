package teacher

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
	"github.com/volodymyr-curly/university-sub001/services"
	"github.com/volodymyr-curly/university-sub001/utils/response"
	"github.com/volodymyr-curly/university-sub001/utils/validation"
)

// TeacherHandler handles teacher-related requests
type TeacherHandler struct {
	service   *services.TeacherService
	validator *validation.Validator
}

// NewTeacherHandler creates a new teacher handler
func NewTeacherHandler(db *gorm.DB) *TeacherHandler {
	return &TeacherHandler{
		service:   services.NewTeacherService(db),
		validator: validation.NewValidator(),
	}
}

// TeacherRequest represents the request body for creating or updating a
// teacher
type TeacherRequest struct {
	EmployeeID *uint  `json:"employee_id" validate:"omitempty,gt=0"`
	Degree     string `json:"degree" validate:"required,oneof=bachelor master doctoral"`
	SubjectIDs []uint `json:"subject_ids" validate:"omitempty,dive,gt=0"`
}

// ListTeachers handles GET /api/v1/teachers
func (h *TeacherHandler) ListTeachers(c *fiber.Ctx) error {
	if subjectID, err := strconv.ParseUint(c.Query("subject_id"), 10, 32); err == nil {
		teachers, err := h.service.FindBySubject(uint(subjectID))
		if err != nil {
			return response.ServiceError(c, err)
		}
		return response.Success(c, teachers)
	}

	teachers, err := h.service.FindAll()
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, teachers)
}

// GetTeacher handles GET /api/v1/teachers/:id
func (h *TeacherHandler) GetTeacher(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid teacher id")
	}

	teacher, err := h.service.Find(uint(id))
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, teacher)
}

// CreateTeacher handles POST /api/v1/teachers
func (h *TeacherHandler) CreateTeacher(c *fiber.Ctx) error {
	var req TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	teacher := model.Teacher{
		EmployeeID: req.EmployeeID,
		Degree:     model.Degree(req.Degree),
	}
	if err := h.service.Add(&teacher, req.SubjectIDs); err != nil {
		return response.ServiceError(c, err)
	}
	return response.Created(c, teacher)
}

// UpdateTeacher handles PUT /api/v1/teachers/:id
func (h *TeacherHandler) UpdateTeacher(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid teacher id")
	}

	var req TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	teacher := model.Teacher{
		EmployeeID: req.EmployeeID,
		Degree:     model.Degree(req.Degree),
	}
	if err := h.service.Update(uint(id), &teacher, req.SubjectIDs); err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, teacher)
}

// DeleteTeacher handles DELETE /api/v1/teachers/:id
func (h *TeacherHandler) DeleteTeacher(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid teacher id")
	}

	if err := h.service.Delete(uint(id)); err != nil {
		return response.ServiceError(c, err)
	}
	return response.NoContent(c)
}
