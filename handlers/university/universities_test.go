package university

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/uniinone/uniinone-api/model"
	"github.com/uniinone/uniinone-api/store"
)

func newTestApp(t *testing.T) (*fiber.App, *store.UniversityStore) {
	t.Helper()

	s := store.NewUniversityStore(store.NewMemoryBlobStore())
	h := NewUniversityHandler(s)

	app := fiber.New()
	app.Get("/universities", h.ListUniversities)
	app.Get("/universities/:id", h.GetUniversity)
	app.Post("/universities", h.CreateUniversity)
	app.Put("/universities/:id", h.UpdateUniversity)
	app.Delete("/universities/:id", h.DeleteUniversity)

	return app, s
}

type listEnvelope struct {
	Success bool               `json:"success"`
	Data    []model.University `json:"data"`
	Total   int                `json:"total"`
}

type itemEnvelope struct {
	Success bool             `json:"success"`
	Data    model.University `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, into interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func TestListUniversitiesDefaultOrder(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/universities", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out listEnvelope
	decode(t, resp, &out)
	if out.Total != 6 || len(out.Data) != 6 {
		t.Fatalf("expected all 6 seed universities, got total=%d len=%d", out.Total, len(out.Data))
	}
	for i, u := range out.Data {
		if u.Ranking != i+1 {
			t.Fatalf("default order must be ranking ascending, got %v at %d", u.Ranking, i)
		}
	}
}

func TestListUniversitiesSearchAndFilters(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/universities?search=cairo&type=Private", nil)
	var out listEnvelope
	decode(t, resp, &out)

	for _, u := range out.Data {
		if u.Type != model.UniversityTypePrivate {
			t.Fatalf("type filter leaked %+v", u)
		}
	}
	if out.Total != 2 {
		t.Fatalf("expected AUC and GUC, got %d records", out.Total)
	}
}

func TestGetUniversityNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/universities/1234", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, "GET", "/universities/abc", nil)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestCreateUniversityAssignsNextID(t *testing.T) {
	app, s := newTestApp(t)

	resp := doJSON(t, app, "POST", "/universities", UniversityRequest{
		Name: "New U",
		City: "Giza",
		Type: model.UniversityTypePublic,
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var out itemEnvelope
	decode(t, resp, &out)
	if out.Data.ID != 7 {
		t.Fatalf("expected id 7 on a collection with max id 6, got %d", out.Data.ID)
	}
	if len(s.List()) != 7 {
		t.Fatalf("expected 7 records, got %d", len(s.List()))
	}
}

func TestCreateUniversityValidatesRequiredFields(t *testing.T) {
	app, s := newTestApp(t)

	tests := []UniversityRequest{
		{City: "Giza", Type: "Public"},            // missing name
		{Name: "X U", Type: "Public"},             // missing city
		{Name: "X U", City: "Giza"},               // missing type
		{Name: "X U", City: "Giza", Type: "Coop"}, // bad enum
	}

	for _, req := range tests {
		resp := doJSON(t, app, "POST", "/universities", req)
		if resp.StatusCode != fiber.StatusUnprocessableEntity {
			t.Fatalf("payload %+v: expected 422, got %d", req, resp.StatusCode)
		}
		resp.Body.Close()
	}

	if len(s.List()) != 6 {
		t.Fatal("rejected payloads must not reach the store")
	}
}

func TestUpdateUniversityKeepsID(t *testing.T) {
	app, s := newTestApp(t)

	resp := doJSON(t, app, "PUT", "/universities/3", UniversityRequest{
		Name: "Renamed U",
		City: "Alexandria",
		Type: model.UniversityTypePublic,
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out itemEnvelope
	decode(t, resp, &out)
	if out.Data.ID != 3 || out.Data.Name != "Renamed U" {
		t.Fatalf("unexpected record: %+v", out.Data)
	}

	if _, ok := s.GetByID(3); !ok {
		t.Fatal("record lost its id")
	}
}

func TestUpdateUniversityMissingID(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "PUT", "/universities/1234", UniversityRequest{
		Name: "Ghost U",
		City: "Cairo",
		Type: model.UniversityTypePublic,
	})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestDeleteUniversity(t *testing.T) {
	app, s := newTestApp(t)

	resp := doJSON(t, app, "DELETE", "/universities/2", nil)
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	if _, ok := s.GetByID(2); ok {
		t.Fatal("record still present after delete")
	}

	resp = doJSON(t, app, "DELETE", "/universities/2", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
