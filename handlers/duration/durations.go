package duration

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
	"github.com/volodymyr-curly/university-sub001/services"
	"github.com/volodymyr-curly/university-sub001/utils/response"
	"github.com/volodymyr-curly/university-sub001/utils/validation"
)

// DurationHandler handles teaching slot-related requests
type DurationHandler struct {
	service   *services.DurationService
	validator *validation.Validator
	records   *validation.DurationValidator
}

// NewDurationHandler creates a new duration handler
func NewDurationHandler(db *gorm.DB) *DurationHandler {
	return &DurationHandler{
		service:   services.NewDurationService(db),
		validator: validation.NewValidator(),
		records:   &validation.DurationValidator{DB: db},
	}
}

// DurationRequest represents the request body for creating or updating a
// teaching slot
type DurationRequest struct {
	StartTime string `json:"start_time" validate:"required,slot_time"`
	EndTime   string `json:"end_time" validate:"required,slot_time"`
}

// ListDurations handles GET /api/v1/durations
func (h *DurationHandler) ListDurations(c *fiber.Ctx) error {
	durations, err := h.service.FindAll()
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, durations)
}

// GetDuration handles GET /api/v1/durations/:id
func (h *DurationHandler) GetDuration(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid duration id")
	}

	duration, err := h.service.Find(uint(id))
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, duration)
}

// CreateDuration handles POST /api/v1/durations
func (h *DurationHandler) CreateDuration(c *fiber.Ctx) error {
	var req DurationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	errs := validation.Errors{}
	h.records.Validate(validation.DurationForm{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, errs)
	if !errs.Empty() {
		return response.ValidationError(c, errs)
	}

	duration := model.Duration{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := h.service.Add(&duration); err != nil {
		return response.ServiceError(c, err)
	}
	return response.Created(c, duration)
}

// UpdateDuration handles PUT /api/v1/durations/:id
func (h *DurationHandler) UpdateDuration(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid duration id")
	}

	var req DurationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	errs := validation.Errors{}
	h.records.Validate(validation.DurationForm{
		ID:        uint(id),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, errs)
	if !errs.Empty() {
		return response.ValidationError(c, errs)
	}

	duration := model.Duration{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := h.service.Update(uint(id), &duration); err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, duration)
}

// DeleteDuration handles DELETE /api/v1/durations/:id
func (h *DurationHandler) DeleteDuration(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid duration id")
	}

	if err := h.service.Delete(uint(id)); err != nil {
		return response.ServiceError(c, err)
	}
	return response.NoContent(c)
}
