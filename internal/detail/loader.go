package detail

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/PaulElielk/Data-mining-Project/internal/catalog"
	"github.com/PaulElielk/Data-mining-Project/internal/localstore"
	"github.com/PaulElielk/Data-mining-Project/internal/recommendation"
)

// View is the fully assembled product detail state: the product, its
// recommendations, the recently-viewed list (current product excluded) and
// the favorite flag. A View is only produced when every fetch succeeded;
// there is no partial state.
type View struct {
	Product             catalog.Product
	Recommendations     []recommendation.Result
	RecommendationTitle string
	RecentlyViewed      []localstore.Entry
	Favorite            bool
}

// Loader assembles detail views by fetching the product and its
// recommendations concurrently and merging client-local browsing state.
type Loader struct {
	client    *Client
	registry  *catalog.Registry
	recent    *localstore.Recent
	favorites *localstore.Favorites
}

func NewLoader(client *Client, registry *catalog.Registry, recent *localstore.Recent, favorites *localstore.Favorites) *Loader {
	return &Loader{client: client, registry: registry, recent: recent, favorites: favorites}
}

// Load fetches and assembles the detail view. Both fetches run concurrently;
// cancelling ctx abandons in-flight results. Either failure fails the load.
func (l *Loader) Load(ctx context.Context, category, id string) (*View, error) {
	desc, err := l.registry.Get(category)
	if err != nil {
		return nil, err
	}

	var (
		prod catalog.Product
		recs []recommendation.Result
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		prod, err = l.client.Product(gctx, category, id)
		return err
	})
	g.Go(func() error {
		var err error
		recs, err = l.client.Recommendations(gctx, category, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if desc.DedupeRecommendations {
		recs = dedupe(recs)
	}

	entry := localstore.Entry{
		ID:       prod.ID,
		Category: category,
		Name:     prod.Name,
		Price:    prod.Price,
		ImageURL: prod.ImageURL,
	}
	if entry.ID == "" {
		entry.ID = id
	}

	// the list shown excludes the product being viewed; the store is updated
	// afterwards so the next page sees it
	stored, err := l.recent.List()
	if err != nil {
		return nil, err
	}
	shown := make([]localstore.Entry, 0, len(stored))
	for _, e := range stored {
		if e.ID == entry.ID && e.Category == entry.Category {
			continue
		}
		shown = append(shown, e)
	}
	if _, err := l.recent.Touch(entry); err != nil {
		return nil, err
	}

	favorite, err := l.favorites.Contains(entry.ID, entry.Category)
	if err != nil {
		return nil, err
	}

	title := desc.RecommendationTitle
	if title == "" {
		title = "Recommended For You"
	}

	return &View{
		Product:             prod,
		Recommendations:     recs,
		RecommendationTitle: title,
		RecentlyViewed:      shown,
		Favorite:            favorite,
	}, nil
}

// ToggleFavorite flips the favorite state for a product snapshot and reports
// whether it is now saved.
func (l *Loader) ToggleFavorite(p catalog.Product) (bool, error) {
	added, _, err := l.favorites.Toggle(localstore.Entry{
		ID:       p.ID,
		Category: p.Category,
		Name:     p.Name,
		Price:    p.Price,
		ImageURL: p.ImageURL,
	})
	return added, err
}

// dedupe collapses duplicate recommendation rows, keeping the first
// occurrence. The key is the product id, falling back to name+price for
// rows without one. Compensates for known duplicate edges in the jumia
// recommendation source.
func dedupe(results []recommendation.Result) []recommendation.Result {
	seen := make(map[string]bool, len(results))
	out := make([]recommendation.Result, 0, len(results))
	for _, r := range results {
		key := r.ID
		if key == "" {
			key = r.Name + "-" + strconv.FormatFloat(r.Price, 'f', -1, 64)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}
