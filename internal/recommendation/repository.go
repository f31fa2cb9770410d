package recommendation

import (
	"sync"

	"github.com/PaulElielk/Data-mining-Project/internal/catalog"
)

// Repository fetches recommendation edges for a source product, ordered by
// the descriptor's order clause and capped at its limit.
type Repository interface {
	ListEdges(desc *catalog.RecommendationDescriptor, productID string) ([]Edge, error)
}

// InMemoryRepository serves seeded edges for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	edges map[string][]Edge // keyed by source product id
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{edges: make(map[string][]Edge)}
}

// Seed appends edges for a source product; seed order is the edge order.
func (r *InMemoryRepository) Seed(sourceID string, edges ...Edge) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.edges[sourceID] = append(r.edges[sourceID], edges...)
}

func (r *InMemoryRepository) ListEdges(desc *catalog.RecommendationDescriptor, productID string) ([]Edge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := desc.Limit
	if limit <= 0 {
		limit = defaultEdgeLimit
	}
	edges := r.edges[productID]
	if len(edges) > limit {
		edges = edges[:limit]
	}
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out, nil
}
