package admin

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/uniinone/uniinone-api/model"
	"github.com/uniinone/uniinone-api/store"
)

func TestGetStats(t *testing.T) {
	universities := store.NewUniversityStore(store.NewMemoryBlobStore())
	h := NewAdminHandler(universities, store.NewFacultyStore())

	app := fiber.New()
	app.Get("/admin/stats", h.GetStats)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/stats", nil))
	if err != nil {
		t.Fatalf("GET /admin/stats failed: %v", err)
	}
	defer resp.Body.Close()

	var out struct {
		Data StatsResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// Seed data: 6 universities, 4 public and 2 private, 12 faculties.
	if out.Data.TotalUniversities != 6 || out.Data.PublicUniversities != 4 || out.Data.PrivateUniversities != 2 {
		t.Fatalf("unexpected university counts: %+v", out.Data)
	}
	if out.Data.TotalFaculties != 12 {
		t.Fatalf("expected 12 faculties, got %d", out.Data.TotalFaculties)
	}
	if out.Data.AverageRating <= 0 {
		t.Fatalf("expected positive average rating, got %f", out.Data.AverageRating)
	}

	// Counts follow mutations.
	universities.Add(model.University{Name: "New U", Type: model.UniversityTypePrivate})
	resp2, err := app.Test(httptest.NewRequest("GET", "/admin/stats", nil))
	if err != nil {
		t.Fatalf("GET /admin/stats failed: %v", err)
	}
	defer resp2.Body.Close()
	if err := json.NewDecoder(resp2.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if out.Data.TotalUniversities != 7 || out.Data.PrivateUniversities != 3 {
		t.Fatalf("stats did not follow the mutation: %+v", out.Data)
	}
}
