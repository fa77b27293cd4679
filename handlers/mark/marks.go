package mark

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
	"github.com/volodymyr-curly/university-sub001/services"
	"github.com/volodymyr-curly/university-sub001/utils/response"
	"github.com/volodymyr-curly/university-sub001/utils/validation"
)

// MarkHandler handles mark-related requests
type MarkHandler struct {
	service   *services.MarkService
	validator *validation.Validator
}

// NewMarkHandler creates a new mark handler
func NewMarkHandler(db *gorm.DB) *MarkHandler {
	return &MarkHandler{
		service:   services.NewMarkService(db),
		validator: validation.NewValidator(),
	}
}

// MarkRequest represents the request body for creating or updating a mark
type MarkRequest struct {
	Value     string `json:"value" validate:"required,oneof=A B C D E F"`
	StudentID *uint  `json:"student_id" validate:"omitempty,gt=0"`
	SubjectID *uint  `json:"subject_id" validate:"omitempty,gt=0"`
}

// ListMarks handles GET /api/v1/marks
func (h *MarkHandler) ListMarks(c *fiber.Ctx) error {
	if studentID, err := strconv.ParseUint(c.Query("student_id"), 10, 32); err == nil {
		marks, err := h.service.FindByStudent(uint(studentID))
		if err != nil {
			return response.ServiceError(c, err)
		}
		return response.Success(c, marks)
	}

	marks, err := h.service.FindAll()
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, marks)
}

// GetMark handles GET /api/v1/marks/:id
func (h *MarkHandler) GetMark(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid mark id")
	}

	mark, err := h.service.Find(uint(id))
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, mark)
}

// CreateMark handles POST /api/v1/marks
func (h *MarkHandler) CreateMark(c *fiber.Ctx) error {
	var req MarkRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	mark := model.Mark{
		Value:     model.MarkValue(req.Value),
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
	}
	if err := h.service.Add(&mark); err != nil {
		return response.ServiceError(c, err)
	}
	return response.Created(c, mark)
}

// UpdateMark handles PUT /api/v1/marks/:id
func (h *MarkHandler) UpdateMark(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid mark id")
	}

	var req MarkRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	mark := model.Mark{
		Value:     model.MarkValue(req.Value),
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
	}
	if err := h.service.Update(uint(id), &mark); err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, mark)
}

// DeleteMark handles DELETE /api/v1/marks/:id
func (h *MarkHandler) DeleteMark(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid mark id")
	}

	if err := h.service.Delete(uint(id)); err != nil {
		return response.ServiceError(c, err)
	}
	return response.NoContent(c)
}
