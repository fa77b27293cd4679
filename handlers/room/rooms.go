package room

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
	"github.com/volodymyr-curly/university-sub001/services"
	"github.com/volodymyr-curly/university-sub001/utils/response"
	"github.com/volodymyr-curly/university-sub001/utils/validation"
)

// RoomHandler handles lecture room-related requests
type RoomHandler struct {
	service   *services.RoomService
	validator *validation.Validator
	records   *validation.RoomValidator
}

// NewRoomHandler creates a new lecture room handler
func NewRoomHandler(db *gorm.DB) *RoomHandler {
	return &RoomHandler{
		service:   services.NewRoomService(db),
		validator: validation.NewValidator(),
		records:   &validation.RoomValidator{DB: db},
	}
}

// RoomRequest represents the request body for creating or updating a lecture
// room
type RoomRequest struct {
	Number string `json:"number" validate:"required,min=1,max=20"`
}

// ListRooms handles GET /api/v1/rooms
func (h *RoomHandler) ListRooms(c *fiber.Ctx) error {
	rooms, err := h.service.FindAll()
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, rooms)
}

// GetRoom handles GET /api/v1/rooms/:id
func (h *RoomHandler) GetRoom(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid room id")
	}

	room, err := h.service.Find(uint(id))
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, room)
}

// CreateRoom handles POST /api/v1/rooms
func (h *RoomHandler) CreateRoom(c *fiber.Ctx) error {
	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Number = validation.SanitizeString(req.Number)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	errs := validation.Errors{}
	h.records.Validate(validation.RoomForm{Number: req.Number}, errs)
	if !errs.Empty() {
		return response.ValidationError(c, errs)
	}

	room := model.LectureRoom{Number: req.Number}
	if err := h.service.Add(&room); err != nil {
		return response.ServiceError(c, err)
	}
	return response.Created(c, room)
}

// UpdateRoom handles PUT /api/v1/rooms/:id
func (h *RoomHandler) UpdateRoom(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid room id")
	}

	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Number = validation.SanitizeString(req.Number)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	errs := validation.Errors{}
	h.records.Validate(validation.RoomForm{ID: uint(id), Number: req.Number}, errs)
	if !errs.Empty() {
		return response.ValidationError(c, errs)
	}

	room := model.LectureRoom{Number: req.Number}
	if err := h.service.Update(uint(id), &room); err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, room)
}

// DeleteRoom handles DELETE /api/v1/rooms/:id
func (h *RoomHandler) DeleteRoom(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid room id")
	}

	if err := h.service.Delete(uint(id)); err != nil {
		return response.ServiceError(c, err)
	}
	return response.NoContent(c)
}
