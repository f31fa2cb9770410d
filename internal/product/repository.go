package product

import (
	"errors"
	"sync"

	"github.com/PaulElielk/Data-mining-Project/internal/catalog"
)

var ErrNotFound = errors.New("product not found")

// Repository resolves category descriptors against the product tables.
// Implementations apply the descriptor's projection, so callers only ever
// see view-models.
type Repository interface {
	List(desc *catalog.Descriptor) ([]catalog.Product, error)
	GetByID(desc *catalog.Descriptor, id string) (catalog.Product, error)
	// ListByIDs fetches all matching products in a single batched lookup.
	// Result order is unspecified; callers reorder as needed.
	ListByIDs(desc *catalog.Descriptor, ids []string) ([]catalog.Product, error)
}

// InMemoryRepository serves seeded raw rows, useful for handler tests and
// local scenarios without a database.
type InMemoryRepository struct {
	mu   sync.RWMutex
	rows map[string][]catalog.Row // keyed by category name, kept in seed order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{rows: make(map[string][]catalog.Row)}
}

// Seed appends raw rows for a category. Seed order is the listing order.
func (r *InMemoryRepository) Seed(category string, rows ...catalog.Row) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[category] = append(r.rows[category], rows...)
}

func (r *InMemoryRepository) List(desc *catalog.Descriptor) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]catalog.Product, 0, len(r.rows[desc.Name]))
	for _, row := range r.rows[desc.Name] {
		out = append(out, desc.MapRow(row))
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(desc *catalog.Descriptor, id string) (catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows[desc.Name] {
		p := desc.MapRow(row)
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Product{}, ErrNotFound
}

func (r *InMemoryRepository) ListByIDs(desc *catalog.Descriptor, ids []string) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]catalog.Product, 0, len(ids))
	for _, row := range r.rows[desc.Name] {
		p := desc.MapRow(row)
		if wanted[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}
