package lecture

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
	"github.com/volodymyr-curly/university-sub001/services"
	"github.com/volodymyr-curly/university-sub001/utils/cache"
	"github.com/volodymyr-curly/university-sub001/utils/response"
	"github.com/volodymyr-curly/university-sub001/utils/validation"
)

const (
	listCacheKey = "lectures:all"
	listCacheTTL = 30 * time.Second
)

// LectureHandler handles lecture-related requests
type LectureHandler struct {
	service   *services.LectureService
	validator *validation.Validator
	cache     *cache.RedisCache
}

// NewLectureHandler creates a new lecture handler. cache may be nil; lists
// are then always served from the database.
func NewLectureHandler(db *gorm.DB, redisCache *cache.RedisCache) *LectureHandler {
	return &LectureHandler{
		service:   services.NewLectureService(db),
		validator: validation.NewValidator(),
		cache:     redisCache,
	}
}

// LectureRequest represents the request body for creating or updating a
// lecture
type LectureRequest struct {
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	SubjectID  *uint  `json:"subject_id" validate:"omitempty,gt=0"`
	TeacherID  *uint  `json:"teacher_id" validate:"omitempty,gt=0"`
	RoomID     *uint  `json:"room_id" validate:"omitempty,gt=0"`
	DurationID *uint  `json:"duration_id" validate:"omitempty,gt=0"`
	GroupIDs   []uint `json:"group_ids" validate:"omitempty,dive,gt=0"`
}

func (r LectureRequest) toModel() model.Lecture {
	date, _ := time.Parse("2006-01-02", r.Date)
	return model.Lecture{
		Date:       datatypes.Date(date),
		SubjectID:  r.SubjectID,
		TeacherID:  r.TeacherID,
		RoomID:     r.RoomID,
		DurationID: r.DurationID,
	}
}

// ListLectures handles GET /api/v1/lectures
func (h *LectureHandler) ListLectures(c *fiber.Ctx) error {
	if roomID, err := strconv.ParseUint(c.Query("room_id"), 10, 32); err == nil {
		lectures, err := h.service.FindByRoom(uint(roomID))
		if err != nil {
			return response.ServiceError(c, err)
		}
		return response.Success(c, lectures)
	}
	if subjectID, err := strconv.ParseUint(c.Query("subject_id"), 10, 32); err == nil {
		lectures, err := h.service.FindBySubject(uint(subjectID))
		if err != nil {
			return response.ServiceError(c, err)
		}
		return response.Success(c, lectures)
	}
	if teacherID, err := strconv.ParseUint(c.Query("teacher_id"), 10, 32); err == nil {
		lectures, err := h.service.FindByTeacher(uint(teacherID))
		if err != nil {
			return response.ServiceError(c, err)
		}
		return response.Success(c, lectures)
	}

	if h.cache != nil {
		var cached []model.Lecture
		if err := h.cache.GetJSON(c.Context(), listCacheKey, &cached); err == nil {
			return response.Success(c, cached)
		}
	}

	lectures, err := h.service.FindAll()
	if err != nil {
		return response.ServiceError(c, err)
	}
	if h.cache != nil {
		h.cache.SetJSON(c.Context(), listCacheKey, lectures, listCacheTTL)
	}
	return response.Success(c, lectures)
}

// GetLecture handles GET /api/v1/lectures/:id
func (h *LectureHandler) GetLecture(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid lecture id")
	}

	lecture, err := h.service.Find(uint(id))
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, lecture)
}

// CreateLecture handles POST /api/v1/lectures
func (h *LectureHandler) CreateLecture(c *fiber.Ctx) error {
	var req LectureRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	lecture := req.toModel()
	if err := h.service.Add(&lecture, req.GroupIDs); err != nil {
		return response.ServiceError(c, err)
	}
	h.invalidate(c)
	return response.Created(c, lecture)
}

// UpdateLecture handles PUT /api/v1/lectures/:id
func (h *LectureHandler) UpdateLecture(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid lecture id")
	}

	var req LectureRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	lecture := req.toModel()
	if err := h.service.Update(uint(id), &lecture, req.GroupIDs); err != nil {
		return response.ServiceError(c, err)
	}
	h.invalidate(c)
	return response.Success(c, lecture)
}

// DeleteLecture handles DELETE /api/v1/lectures/:id
func (h *LectureHandler) DeleteLecture(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid lecture id")
	}

	if err := h.service.Delete(uint(id)); err != nil {
		return response.ServiceError(c, err)
	}
	h.invalidate(c)
	return response.NoContent(c)
}

func (h *LectureHandler) invalidate(c *fiber.Ctx) {
	if h.cache != nil {
		h.cache.Delete(c.Context(), listCacheKey)
	}
}
