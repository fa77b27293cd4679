package group

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/model"
	"github.com/volodymyr-curly/university-sub001/services"
	"github.com/volodymyr-curly/university-sub001/utils/cache"
	"github.com/volodymyr-curly/university-sub001/utils/response"
	"github.com/volodymyr-curly/university-sub001/utils/validation"
)

const (
	listCacheKey = "groups:all"
	listCacheTTL = 30 * time.Second
)

// GroupHandler handles group-related requests
type GroupHandler struct {
	service   *services.GroupService
	validator *validation.Validator
	records   *validation.GroupValidator
	cache     *cache.RedisCache
}

// NewGroupHandler creates a new group handler. cache may be nil; lists are
// then always served from the database.
func NewGroupHandler(db *gorm.DB, redisCache *cache.RedisCache) *GroupHandler {
	return &GroupHandler{
		service:   services.NewGroupService(db),
		validator: validation.NewValidator(),
		records:   &validation.GroupValidator{DB: db},
		cache:     redisCache,
	}
}

// GroupRequest represents the request body for creating or updating a group
type GroupRequest struct {
	Name         string `json:"name" validate:"required,group_name"`
	DepartmentID *uint  `json:"department_id" validate:"omitempty,gt=0"`
	SubjectIDs   []uint `json:"subject_ids" validate:"omitempty,dive,gt=0"`
	LectureIDs   []uint `json:"lecture_ids" validate:"omitempty,dive,gt=0"`
}

// ListGroups handles GET /api/v1/groups
func (h *GroupHandler) ListGroups(c *fiber.Ctx) error {
	if departmentID, err := strconv.ParseUint(c.Query("department_id"), 10, 32); err == nil {
		groups, err := h.service.FindByDepartment(uint(departmentID))
		if err != nil {
			return response.ServiceError(c, err)
		}
		return response.Success(c, groups)
	}

	if h.cache != nil {
		var cached []model.Group
		if err := h.cache.GetJSON(c.Context(), listCacheKey, &cached); err == nil {
			return response.Success(c, cached)
		}
	}

	groups, err := h.service.FindAll()
	if err != nil {
		return response.ServiceError(c, err)
	}
	if h.cache != nil {
		h.cache.SetJSON(c.Context(), listCacheKey, groups, listCacheTTL)
	}
	return response.Success(c, groups)
}

// GetGroup handles GET /api/v1/groups/:id
func (h *GroupHandler) GetGroup(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid group id")
	}

	group, err := h.service.Find(uint(id))
	if err != nil {
		return response.ServiceError(c, err)
	}
	return response.Success(c, group)
}

// CreateGroup handles POST /api/v1/groups
func (h *GroupHandler) CreateGroup(c *fiber.Ctx) error {
	var req GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Name = validation.SanitizeString(req.Name)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	errs := validation.Errors{}
	h.records.Validate(validation.GroupForm{Name: req.Name, LectureIDs: req.LectureIDs}, errs)
	if !errs.Empty() {
		return response.ValidationError(c, errs)
	}

	group := model.Group{
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
	}
	if err := h.service.Add(&group, req.SubjectIDs, req.LectureIDs); err != nil {
		return response.ServiceError(c, err)
	}
	h.invalidate(c)
	return response.Created(c, group)
}

// UpdateGroup handles PUT /api/v1/groups/:id
func (h *GroupHandler) UpdateGroup(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid group id")
	}

	var req GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Name = validation.SanitizeString(req.Name)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	errs := validation.Errors{}
	h.records.Validate(validation.GroupForm{
		ID:         uint(id),
		Name:       req.Name,
		LectureIDs: req.LectureIDs,
	}, errs)
	if !errs.Empty() {
		return response.ValidationError(c, errs)
	}

	group := model.Group{
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
	}
	if err := h.service.Update(uint(id), &group, req.SubjectIDs, req.LectureIDs); err != nil {
		return response.ServiceError(c, err)
	}
	h.invalidate(c)
	return response.Success(c, group)
}

// DeleteGroup handles DELETE /api/v1/groups/:id
func (h *GroupHandler) DeleteGroup(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid group id")
	}

	if err := h.service.Delete(uint(id)); err != nil {
		return response.ServiceError(c, err)
	}
	h.invalidate(c)
	return response.NoContent(c)
}

func (h *GroupHandler) invalidate(c *fiber.Ctx) {
	if h.cache != nil {
		h.cache.Delete(c.Context(), listCacheKey)
	}
}
