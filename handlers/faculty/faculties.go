package faculty

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/uniinone/uniinone-api/query"
	"github.com/uniinone/uniinone-api/store"
	"github.com/uniinone/uniinone-api/utils/response"
)

// FacultyHandler serves the read-only faculty reference data.
type FacultyHandler struct {
	store *store.FacultyStore
}

// NewFacultyHandler creates a new faculty handler
func NewFacultyHandler(s *store.FacultyStore) *FacultyHandler {
	return &FacultyHandler{store: s}
}

// ListFaculties handles GET /api/v1/faculties
//
// Query parameters: search, category, sort.
func (h *FacultyHandler) ListFaculties(c *fiber.Ctx) error {
	q := query.FacultyQuery{
		Search:   c.Query("search", ""),
		Category: c.Query("category", query.FilterAll),
		SortBy:   c.Query("sort", query.SortFacultyPopularity),
	}

	faculties := query.FilterFaculties(h.store.List(), q)
	return response.List(c, faculties, len(faculties))
}

// GetFaculty handles GET /api/v1/faculties/:id
func (h *FacultyHandler) GetFaculty(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid faculty id")
	}

	faculty, ok := h.store.GetByID(id)
	if !ok {
		return response.NotFound(c, "Faculty not found")
	}

	return response.Success(c, faculty)
}
