package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/uniinone/uniinone-api/model"
	"github.com/uniinone/uniinone-api/store"
	"github.com/uniinone/uniinone-api/utils/response"
)

// AdminHandler serves the dashboard summary numbers.
type AdminHandler struct {
	universities *store.UniversityStore
	faculties    *store.FacultyStore
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(universities *store.UniversityStore, faculties *store.FacultyStore) *AdminHandler {
	return &AdminHandler{
		universities: universities,
		faculties:    faculties,
	}
}

// StatsResponse represents the dashboard summary
type StatsResponse struct {
	TotalUniversities   int     `json:"total_universities"`
	PublicUniversities  int     `json:"public_universities"`
	PrivateUniversities int     `json:"private_universities"`
	TotalFaculties      int     `json:"total_faculties"`
	AverageRating       float64 `json:"average_rating"`
}

// GetStats handles GET /api/v1/admin/stats (admin only, enforced by the
// route guard)
func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	universities := h.universities.List()

	stats := StatsResponse{
		TotalUniversities: len(universities),
		TotalFaculties:    len(h.faculties.List()),
	}

	var ratingSum float64
	for _, u := range universities {
		switch u.Type {
		case model.UniversityTypePublic:
			stats.PublicUniversities++
		case model.UniversityTypePrivate:
			stats.PrivateUniversities++
		}
		ratingSum += u.Rating
	}
	if len(universities) > 0 {
		stats.AverageRating = ratingSum / float64(len(universities))
	}

	return response.Success(c, stats)
}
