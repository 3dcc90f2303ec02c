package compare

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/uniinone/uniinone-api/model"
	"github.com/uniinone/uniinone-api/store"
	"github.com/uniinone/uniinone-api/utils/response"
)

// MaxCompare caps how many universities a comparison can hold, matching the
// three-column comparison view.
const MaxCompare = 3

// CompareHandler serves the side-by-side university comparison.
type CompareHandler struct {
	store *store.UniversityStore
}

// NewCompareHandler creates a new compare handler
func NewCompareHandler(s *store.UniversityStore) *CompareHandler {
	return &CompareHandler{store: s}
}

// CompareUniversities handles GET /api/v1/compare?ids=1,2,3
//
// Unknown and malformed ids are skipped rather than failing the whole
// comparison; the client simply shows fewer columns.
func (h *CompareHandler) CompareUniversities(c *fiber.Ctx) error {
	raw := c.Query("ids", "")
	if strings.TrimSpace(raw) == "" {
		return response.BadRequest(c, "ids query parameter is required")
	}

	parts := strings.Split(raw, ",")
	if len(parts) > MaxCompare {
		parts = parts[:MaxCompare]
	}

	selected := make([]model.University, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if u, ok := h.store.GetByID(id); ok {
			selected = append(selected, u)
		}
	}

	return response.List(c, selected, len(selected))
}
