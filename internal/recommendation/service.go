package recommendation

import (
	"github.com/PaulElielk/Data-mining-Project/internal/catalog"
)

// ProductLookup is the slice of the product repository the resolver needs:
// one batched fetch of the recommended targets.
type ProductLookup interface {
	ListByIDs(desc *catalog.Descriptor, ids []string) ([]catalog.Product, error)
}

// Service resolves recommendations in two steps: fetch the ordered edge set,
// then resolve every target in a single batched product lookup and join
// in-memory. Nothing is mutated, so concurrent calls are safe.
type Service struct {
	registry *catalog.Registry
	edges    Repository
	products ProductLookup
}

func NewService(registry *catalog.Registry, edges Repository, products ProductLookup) *Service {
	return &Service{registry: registry, edges: edges, products: products}
}

// List returns the recommendations for a product in edge order. A category
// without a recommendation descriptor yields an empty slice, not an error.
// Edges pointing at since-deleted products are silently dropped.
func (s *Service) List(category, productID string) ([]Result, error) {
	desc, err := s.registry.Get(category)
	if err != nil {
		return nil, err
	}
	if desc.Recommendations == nil {
		return []Result{}, nil
	}

	edges, err := s.edges.ListEdges(desc.Recommendations, productID)
	if err != nil {
		return nil, err
	}
	// short-circuit: the product table is never queried for an empty edge set
	if len(edges) == 0 {
		return []Result{}, nil
	}

	ids := distinctTargets(edges)
	products, err := s.products.ListByIDs(desc, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := make([]Result, 0, len(edges))
	for _, e := range edges {
		p, ok := byID[e.TargetID]
		if !ok {
			// dangling reference, upstream data integrity issue
			continue
		}
		out = append(out, Result{
			Product: p,
			Meta: catalog.RecommendationMeta{
				Support:    e.Support,
				Confidence: e.Confidence,
				Lift:       e.Lift,
			},
		})
	}
	return out, nil
}

// distinctTargets collects target ids preserving first-occurrence order.
func distinctTargets(edges []Edge) []string {
	seen := make(map[string]bool, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		if seen[e.TargetID] {
			continue
		}
		seen[e.TargetID] = true
		out = append(out, e.TargetID)
	}
	return out
}
