package faculty

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
	"github.com/volodymyr-curly/university-sub001/services"
	"github.com/volodymyr-curly/university-sub001/utils/response"
	"github.com/volodymyr-curly/university-sub001/utils/validation"
)

// FacultyHandler handles faculty-related requests
type FacultyHandler struct {
	service   *services.FacultyService
	validator *validation.Validator
	records   *validation.FacultyValidator
}

// NewFacultyHandler creates a new faculty handler
func NewFacultyHandler(db *gorm.DB) *FacultyHandler {
	return &FacultyHandler{
		service:   services.NewFacultyService(db),
		validator: validation.NewValidator(),
		records:   &validation.FacultyValidator{DB: db},
	}
}

// FacultyRequest represents the request body for creating or updating a
// faculty
type FacultyRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
}

// ListFaculties handles GET /api/v1/faculties
func (h *FacultyHandler) ListFaculties(c *fiber.Ctx) error {
	faculties, err := h.service.FindAll()
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, faculties)
}

// GetFaculty handles GET /api/v1/faculties/:id
func (h *FacultyHandler) GetFaculty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid faculty id")
	}

	faculty, err := h.service.Find(uint(id))
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, faculty)
}

// CreateFaculty handles POST /api/v1/faculties
func (h *FacultyHandler) CreateFaculty(c *fiber.Ctx) error {
	var req FacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Name = validation.SanitizeString(req.Name)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	errs := validation.Errors{}
	h.records.Validate(validation.FacultyForm{Name: req.Name}, errs)
	if !errs.Empty() {
		return response.ValidationError(c, errs)
	}

	faculty := model.Faculty{Name: req.Name}
	if err := h.service.Add(&faculty); err != nil {
		return response.ServiceError(c, err)
	}
	return response.Created(c, faculty)
}

// UpdateFaculty handles PUT /api/v1/faculties/:id
func (h *FacultyHandler) UpdateFaculty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid faculty id")
	}

	var req FacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Name = validation.SanitizeString(req.Name)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	errs := validation.Errors{}
	h.records.Validate(validation.FacultyForm{ID: uint(id), Name: req.Name}, errs)
	if !errs.Empty() {
		return response.ValidationError(c, errs)
	}

	faculty := model.Faculty{Name: req.Name}
	if err := h.service.Update(uint(id), &faculty); err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, faculty)
}

// DeleteFaculty handles DELETE /api/v1/faculties/:id
func (h *FacultyHandler) DeleteFaculty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid faculty id")
	}

	if err := h.service.Delete(uint(id)); err != nil {
		return response.ServiceError(c, err)
	}
	return response.NoContent(c)
}
