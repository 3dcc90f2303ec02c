package university

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/uniinone/uniinone-api/model"
	"github.com/uniinone/uniinone-api/query"
	"github.com/uniinone/uniinone-api/store"
	"github.com/uniinone/uniinone-api/utils/response"
	"github.com/uniinone/uniinone-api/utils/validation"
)

// UniversityHandler handles university-related requests
type UniversityHandler struct {
	store     *store.UniversityStore
	validator *validation.Validator
}

// NewUniversityHandler creates a new university handler
func NewUniversityHandler(s *store.UniversityStore) *UniversityHandler {
	return &UniversityHandler{
		store:     s,
		validator: validation.NewValidator(),
	}
}

// UniversityRequest represents the request body for creating or replacing a
// university. Required/enum checks live here at the HTTP boundary; the store
// itself accepts any well-typed record. Any id in the payload is ignored:
// the store assigns ids on create and pins them on update.
type UniversityRequest struct {
	Name         string   `json:"name" validate:"required"`
	ArabicName   string   `json:"arabicName"`
	City         string   `json:"city" validate:"required"`
	Type         string   `json:"type" validate:"required,oneof=Public Private"`
	Founded      int      `json:"founded"`
	Students     string   `json:"students"`
	Ranking      int      `json:"ranking"`
	Image        string   `json:"image"`
	Programs     []string `json:"programs"`
	TuitionRange string   `json:"tuitionRange"`
	Rating       float64  `json:"rating"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
}

func (r *UniversityRequest) toModel() model.University {
	return model.University{
		Name:         validation.SanitizeString(r.Name),
		ArabicName:   validation.SanitizeString(r.ArabicName),
		City:         validation.SanitizeString(r.City),
		Type:         r.Type,
		Founded:      r.Founded,
		Students:     r.Students,
		Ranking:      r.Ranking,
		Image:        r.Image,
		Programs:     r.Programs,
		TuitionRange: r.TuitionRange,
		Rating:       r.Rating,
		Description:  r.Description,
		Location:     r.Location,
	}
}

// ListUniversities handles GET /api/v1/universities
//
// Query parameters: search (text search, also how the frontend seeds the
// listing from its ?search= URL), city, type, sort.
func (h *UniversityHandler) ListUniversities(c *fiber.Ctx) error {
	q := query.UniversityQuery{
		Search: c.Query("search", ""),
		City:   c.Query("city", query.FilterAll),
		Type:   c.Query("type", query.FilterAll),
		SortBy: c.Query("sort", query.SortUniversityRanking),
	}

	universities := query.FilterUniversities(h.store.List(), q)
	return response.List(c, universities, len(universities))
}

// GetUniversity handles GET /api/v1/universities/:id
func (h *UniversityHandler) GetUniversity(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid university id")
	}

	university, ok := h.store.GetByID(id)
	if !ok {
		return response.NotFound(c, "University not found")
	}

	return response.Success(c, university)
}

// CreateUniversity handles POST /api/v1/universities (admin only, enforced
// by the route guard)
func (h *UniversityHandler) CreateUniversity(c *fiber.Ctx) error {
	var req UniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	created := h.store.Add(req.toModel())
	return response.Created(c, created)
}

// UpdateUniversity handles PUT /api/v1/universities/:id (admin only)
func (h *UniversityHandler) UpdateUniversity(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid university id")
	}

	var req UniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if !h.store.Update(id, req.toModel()) {
		return response.NotFound(c, "University not found")
	}

	updated, _ := h.store.GetByID(id)
	return response.SuccessWithMessage(c, "University updated", updated)
}

// DeleteUniversity handles DELETE /api/v1/universities/:id (admin only)
func (h *UniversityHandler) DeleteUniversity(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid university id")
	}

	if !h.store.Delete(id) {
		return response.NotFound(c, "University not found")
	}

	return response.NoContent(c)
}
