package catalog

import (
	"errors"
	"strings"
)

// ErrUnknownCategory is returned when a category was never registered.
var ErrUnknownCategory = errors.New("unknown category")

// RecommendationDescriptor describes where a category's precomputed
// recommendation edges live. Edges are produced offline and read-only here.
type RecommendationDescriptor struct {
	Table        string
	SourceColumn string
	TargetColumn string
	OrderBy      string
	// Limit caps the number of edges fetched per source product. When zero
	// the resolver falls back to its default of 6.
	Limit int
}

// Descriptor bundles everything category-specific: table metadata, the
// projection function and the recommendation config. Handlers stay free of
// per-category branches; behavior lives in the registry.
type Descriptor struct {
	Name          string
	Table         string
	IDColumn      string
	SelectColumns []string
	OrderBy       string

	// MapRow projects a raw row into the shared view-model. It must be pure
	// and total: missing source fields degrade to defaults, never an error.
	MapRow func(Row) Product

	Recommendations *RecommendationDescriptor

	// RecommendationTitle is the section heading shown by detail views.
	RecommendationTitle string

	// DedupeRecommendations marks categories whose upstream recommendation
	// source is known to emit duplicate edges (currently jumia only); detail
	// views collapse duplicates client-side.
	DedupeRecommendations bool
}

// Registry maps category names to descriptors, preserving registration
// order. It is built once at startup and read-only afterwards.
type Registry struct {
	order  []string
	byName map[string]*Descriptor
}

func NewRegistry(descriptors ...*Descriptor) *Registry {
	r := &Registry{byName: make(map[string]*Descriptor, len(descriptors))}
	for _, d := range descriptors {
		if _, dup := r.byName[d.Name]; dup {
			continue
		}
		r.order = append(r.order, d.Name)
		r.byName[d.Name] = d
	}
	return r
}

// Get resolves a category name. Unknown names yield ErrUnknownCategory.
func (r *Registry) Get(name string) (*Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, ErrUnknownCategory
	}
	return d, nil
}

// Names returns the registered category names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns the descriptors in registration order.
func (r *Registry) All() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// InvalidCategoryMessage is the user-facing 400 message enumerating the
// valid choices.
func (r *Registry) InvalidCategoryMessage() string {
	return "Invalid category. Must be one of: " + strings.Join(r.order, ", ")
}
