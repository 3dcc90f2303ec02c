package compare

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/uniinone/uniinone-api/model"
	"github.com/uniinone/uniinone-api/store"
)

func newCompareApp(t *testing.T) *fiber.App {
	t.Helper()

	h := NewCompareHandler(store.NewUniversityStore(store.NewMemoryBlobStore()))
	app := fiber.New()
	app.Get("/compare", h.CompareUniversities)
	return app
}

func fetch(t *testing.T, app *fiber.App, path string) (int, []model.University) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	var out struct {
		Data []model.University `json:"data"`
	}
	if resp.StatusCode == fiber.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return resp.StatusCode, out.Data
}

func TestCompareSelectsByID(t *testing.T) {
	app := newCompareApp(t)

	status, got := fetch(t, app, "/compare?ids=1,3")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected selection: %+v", got)
	}
}

func TestCompareSkipsUnknownAndMalformedIDs(t *testing.T) {
	app := newCompareApp(t)

	status, got := fetch(t, app, "/compare?ids=1,999,abc")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected selection: %+v", got)
	}
}

func TestCompareCapsSelection(t *testing.T) {
	app := newCompareApp(t)

	_, got := fetch(t, app, "/compare?ids=1,2,3,4,5")
	if len(got) != MaxCompare {
		t.Fatalf("expected selection capped at %d, got %d", MaxCompare, len(got))
	}
}

func TestCompareRequiresIDs(t *testing.T) {
	app := newCompareApp(t)

	status, _ := fetch(t, app, "/compare")
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}
