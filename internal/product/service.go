package product

import (
	"github.com/PaulElielk/Data-mining-Project/internal/catalog"
)

// Service validates categories against the registry and delegates to the
// repository.
type Service struct {
	registry *catalog.Registry
	repo     Repository
}

func NewService(registry *catalog.Registry, repo Repository) *Service {
	return &Service{registry: registry, repo: repo}
}

// List returns the full listing for one category in its default order.
func (s *Service) List(category string) ([]catalog.Product, error) {
	desc, err := s.registry.Get(category)
	if err != nil {
		return nil, err
	}
	return s.repo.List(desc)
}

// ListAll concatenates every category's listing in registration order.
// Ordering within each category is the category's default order.
func (s *Service) ListAll() ([]catalog.Product, error) {
	out := make([]catalog.Product, 0)
	for _, desc := range s.registry.All() {
		products, err := s.repo.List(desc)
		if err != nil {
			return nil, err
		}
		out = append(out, products...)
	}
	return out, nil
}

// Get returns a single product or ErrNotFound.
func (s *Service) Get(category, id string) (catalog.Product, error) {
	desc, err := s.registry.Get(category)
	if err != nil {
		return catalog.Product{}, err
	}
	return s.repo.GetByID(desc, id)
}
