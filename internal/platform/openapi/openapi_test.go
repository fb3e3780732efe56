package openapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestGenerateSpec_Structure(t *testing.T) {
	g := NewGenerator("1.0.0", "http://localhost:3000")

	spec := g.GenerateSpec()

	if spec["openapi"] != "3.0.3" {
		t.Errorf("expected openapi '3.0.3', got %v", spec["openapi"])
	}

	info, ok := spec["info"].(map[string]interface{})
	if !ok {
		t.Fatal("expected info object")
	}
	if info["title"] != "Medical Records API" {
		t.Errorf("expected title 'Medical Records API', got %v", info["title"])
	}
	if info["version"] != "1.0.0" {
		t.Errorf("expected version '1.0.0', got %v", info["version"])
	}

	servers, ok := spec["servers"].([]map[string]string)
	if !ok {
		t.Fatal("expected servers array")
	}
	if servers[0]["url"] != "http://localhost:3000" {
		t.Errorf("expected server URL 'http://localhost:3000', got %v", servers[0]["url"])
	}
}

func TestGenerateSpec_Paths(t *testing.T) {
	g := NewGenerator("1.0.0", "http://localhost:3000")

	paths, ok := g.GenerateSpec()["paths"].(map[string]interface{})
	if !ok {
		t.Fatal("expected paths object")
	}

	expected := []string{
		"/api/patients",
		"/api/patients/{id}",
		"/api/notes",
		"/api/notes/{id}",
		"/api/summaries",
		"/api/summaries/{id}",
		"/health",
	}
	for _, p := range expected {
		if _, found := paths[p]; !found {
			t.Errorf("expected path %s", p)
		}
	}

	collection, _ := paths["/api/patients"].(map[string]interface{})
	for _, method := range []string{"get", "post"} {
		if _, found := collection[method]; !found {
			t.Errorf("expected %s on /api/patients", method)
		}
	}
	item, _ := paths["/api/patients/{id}"].(map[string]interface{})
	for _, method := range []string{"get", "put", "delete"} {
		if _, found := item[method]; !found {
			t.Errorf("expected %s on /api/patients/{id}", method)
		}
	}
}

func TestGenerateSpec_SecurityScheme(t *testing.T) {
	g := NewGenerator("1.0.0", "http://localhost:3000")

	components, _ := g.GenerateSpec()["components"].(map[string]interface{})
	schemes, _ := components["securitySchemes"].(map[string]interface{})
	apiKey, ok := schemes["ApiKeyAuth"].(map[string]interface{})
	if !ok {
		t.Fatal("expected ApiKeyAuth security scheme")
	}
	if apiKey["in"] != "header" || apiKey["name"] != "X-API-Key" {
		t.Errorf("expected X-API-Key header scheme, got %v", apiKey)
	}
}

func TestGenerateSpec_Schemas(t *testing.T) {
	g := NewGenerator("1.0.0", "http://localhost:3000")

	components, _ := g.GenerateSpec()["components"].(map[string]interface{})
	schemas, _ := components["schemas"].(map[string]interface{})

	for _, name := range []string{"Patient", "PatientInput", "Note", "NoteInput", "Summary", "SummaryInput"} {
		if _, found := schemas[name]; !found {
			t.Errorf("expected schema %s", name)
		}
	}

	patient, _ := schemas["Patient"].(map[string]interface{})
	props, _ := patient["properties"].(map[string]interface{})
	for _, field := range []string{"id", "firstName", "gender", "createdAt"} {
		if _, found := props[field]; !found {
			t.Errorf("expected Patient property %s", field)
		}
	}
}

func TestGenerateSpec_SerializesToJSON(t *testing.T) {
	g := NewGenerator("1.0.0", "http://localhost:3000")

	if _, err := json.Marshal(g.GenerateSpec()); err != nil {
		t.Fatalf("spec does not serialize: %v", err)
	}
}

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	NewGenerator("1.0.0", "http://localhost:3000").RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/api-docs/openapi.json", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for openapi.json, got %d", rec.Code)
	}
	var spec map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode spec: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/api-docs", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for docs page, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "swagger-ui") {
		t.Error("expected Swagger UI page")
	}
}
