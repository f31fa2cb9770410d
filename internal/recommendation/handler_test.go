package recommendation

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/PaulElielk/Data-mining-Project/internal/catalog"
	"github.com/PaulElielk/Data-mining-Project/internal/product"
)

func newHandlerApp() (*fiber.App, *InMemoryRepository, *product.InMemoryRepository) {
	registry := catalog.Default()
	products := product.NewInMemoryRepository()
	edges := NewInMemoryRepository()
	handler := NewHandler(NewService(registry, edges, products), registry, zerolog.Nop())

	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	return app, edges, products
}

func TestGetRecommendations(t *testing.T) {
	app, edges, products := newHandlerApp()
	products.Seed("jumia",
		catalog.Row{"source_id": 2, "product_name": "Phone Y", "price": 200},
	)
	edges.Seed("1", Edge{TargetID: "2", Support: f(0.2), Confidence: f(0.8), Lift: f(1.5)})

	res, err := app.Test(httptest.NewRequest("GET", "/api/products/jumia/1/recommendations", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var results []Result
	if err := json.NewDecoder(res.Body).Decode(&results); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != "2" {
		t.Fatalf("unexpected results %+v", results)
	}
	if results[0].Meta.Confidence == nil || *results[0].Meta.Confidence != 0.8 {
		t.Fatalf("unexpected meta %+v", results[0].Meta)
	}
}

func TestGetRecommendationsEmptyIsArray(t *testing.T) {
	app, _, _ := newHandlerApp()

	res, err := app.Test(httptest.NewRequest("GET", "/api/products/jumia/1/recommendations", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if strings.TrimSpace(string(b)) != "[]" {
		t.Fatalf("expected empty JSON array, got %s", b)
	}
}

func TestGetRecommendationsUnknownCategory(t *testing.T) {
	app, _, _ := newHandlerApp()

	res, err := app.Test(httptest.NewRequest("GET", "/api/products/phones/1/recommendations", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Invalid category. Must be one of: cars, jumia") {
		t.Fatalf("missing enumerated categories in body %s", b)
	}
}
