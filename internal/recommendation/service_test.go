package recommendation

import (
	"testing"

	"github.com/PaulElielk/Data-mining-Project/internal/catalog"
	"github.com/PaulElielk/Data-mining-Project/internal/product"
)

// recordingLookup wraps a product repository and counts batched lookups so
// tests can assert the short-circuit behavior.
type recordingLookup struct {
	inner product.Repository
	calls int
}

func (r *recordingLookup) ListByIDs(desc *catalog.Descriptor, ids []string) ([]catalog.Product, error) {
	r.calls++
	return r.inner.ListByIDs(desc, ids)
}

func f(v float64) *float64 { return &v }

func newServiceFixture() (*Service, *InMemoryRepository, *recordingLookup) {
	registry := catalog.Default()
	products := product.NewInMemoryRepository()
	lookup := &recordingLookup{inner: products}
	edges := NewInMemoryRepository()
	svc := NewService(registry, edges, lookup)

	products.Seed("jumia",
		catalog.Row{"source_id": 1, "product_name": "Phone X", "price": 100},
		catalog.Row{"source_id": 2, "product_name": "Phone Y", "price": 200},
		catalog.Row{"source_id": 3, "product_name": "Phone Z", "price": 300},
	)
	return svc, edges, lookup
}

func TestListNoEdgesShortCircuits(t *testing.T) {
	svc, _, lookup := newServiceFixture()

	results, err := svc.List("jumia", "1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty result, got %d", len(results))
	}
	if lookup.calls != 0 {
		t.Fatalf("product lookup must not be issued for an empty edge set, got %d calls", lookup.calls)
	}
}

func TestListJoinsEdgesWithProducts(t *testing.T) {
	svc, edges, lookup := newServiceFixture()
	edges.Seed("1",
		Edge{TargetID: "3", Support: f(0.1), Confidence: f(0.9), Lift: f(2.5)},
		Edge{TargetID: "2", Confidence: f(0.7)},
	)

	results, err := svc.List("jumia", "1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	// edge order preserved, no re-sorting after the join
	if results[0].ID != "3" || results[1].ID != "2" {
		t.Fatalf("edge order not preserved: %s, %s", results[0].ID, results[1].ID)
	}
	if results[0].Meta.Confidence == nil || *results[0].Meta.Confidence != 0.9 {
		t.Fatalf("unexpected meta %+v", results[0].Meta)
	}
	if results[1].Meta.Support != nil || results[1].Meta.Lift != nil {
		t.Fatalf("absent scores must stay null: %+v", results[1].Meta)
	}
	if lookup.calls != 1 {
		t.Fatalf("expected exactly one batched lookup, got %d", lookup.calls)
	}
}

func TestListDropsDanglingTargets(t *testing.T) {
	svc, edges, _ := newServiceFixture()
	edges.Seed("1",
		Edge{TargetID: "2", Confidence: f(0.9)},
		Edge{TargetID: "999", Confidence: f(0.8)}, // deleted upstream
		Edge{TargetID: "3", Confidence: f(0.7)},
	)

	results, err := svc.List("jumia", "1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected dangling edge to be dropped, got %d results", len(results))
	}
	if results[0].ID != "2" || results[1].ID != "3" {
		t.Fatalf("order not preserved among remaining entries: %s, %s", results[0].ID, results[1].ID)
	}
}

func TestListNoDescriptorReturnsEmpty(t *testing.T) {
	registry := catalog.NewRegistry(&catalog.Descriptor{
		Name:   "plain",
		Table:  "plain_products",
		MapRow: func(r catalog.Row) catalog.Product { return catalog.Product{Category: "plain"} },
	})
	products := product.NewInMemoryRepository()
	svc := NewService(registry, NewInMemoryRepository(), products)

	results, err := svc.List("plain", "1")
	if err != nil {
		t.Fatalf("expected no error for a category without recommendations, got %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty result, got %d", len(results))
	}
}

func TestListUnknownCategory(t *testing.T) {
	svc, _, _ := newServiceFixture()
	if _, err := svc.List("phones", "1"); err == nil {
		t.Fatal("expected unknown category error")
	}
}

func TestDistinctTargetsPreservesOrder(t *testing.T) {
	ids := distinctTargets([]Edge{
		{TargetID: "5"}, {TargetID: "2"}, {TargetID: "5"}, {TargetID: "9"},
	})
	if len(ids) != 3 || ids[0] != "5" || ids[1] != "2" || ids[2] != "9" {
		t.Fatalf("unexpected ids %v", ids)
	}
}
