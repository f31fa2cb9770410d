package localstore

// Storage keys for the persisted browsing state.
const (
	KeyRecentlyViewed = "recentlyViewed"
	KeyFavorites      = "favoriteProducts"
)

const (
	maxRecent    = 6
	maxFavorites = 30
)

// Entry is the compact product snapshot kept in local state, keyed by
// (id, category).
type Entry struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

func sameKey(a, b Entry) bool {
	return a.ID == b.ID && a.Category == b.Category
}

// Recent maintains the recently-viewed ring: most-recent-first, capped at 6,
// deduplicated by (id, category) on insert.
type Recent struct {
	store Store
}

func NewRecent(store Store) *Recent {
	return &Recent{store: store}
}

func (r *Recent) List() ([]Entry, error) {
	var entries []Entry
	if err := r.store.Get(KeyRecentlyViewed, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Touch moves the entry to the front, dropping any previous occurrence and
// trimming to the cap. Returns the updated list.
func (r *Recent) Touch(e Entry) ([]Entry, error) {
	entries, err := r.List()
	if err != nil {
		return nil, err
	}

	updated := make([]Entry, 0, len(entries)+1)
	updated = append(updated, e)
	for _, existing := range entries {
		if sameKey(existing, e) {
			continue
		}
		updated = append(updated, existing)
	}
	if len(updated) > maxRecent {
		updated = updated[:maxRecent]
	}

	if err := r.store.Set(KeyRecentlyViewed, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Favorites maintains the favorites list: most-recent-first, capped at 30,
// toggled by (id, category).
type Favorites struct {
	store Store
}

func NewFavorites(store Store) *Favorites {
	return &Favorites{store: store}
}

func (f *Favorites) List() ([]Entry, error) {
	var entries []Entry
	if err := f.store.Get(KeyFavorites, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (f *Favorites) Contains(id, category string) (bool, error) {
	entries, err := f.List()
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.ID == id && e.Category == category {
			return true, nil
		}
	}
	return false, nil
}

// Toggle adds the entry to the front when absent and removes it when
// present. Returns whether the entry is now a favorite and the updated list.
func (f *Favorites) Toggle(e Entry) (bool, []Entry, error) {
	entries, err := f.List()
	if err != nil {
		return false, nil, err
	}

	exists := false
	for _, existing := range entries {
		if sameKey(existing, e) {
			exists = true
			break
		}
	}

	var updated []Entry
	if exists {
		updated = make([]Entry, 0, len(entries))
		for _, existing := range entries {
			if sameKey(existing, e) {
				continue
			}
			updated = append(updated, existing)
		}
	} else {
		updated = make([]Entry, 0, len(entries)+1)
		updated = append(updated, e)
		updated = append(updated, entries...)
		if len(updated) > maxFavorites {
			updated = updated[:maxFavorites]
		}
	}

	if err := f.store.Set(KeyFavorites, updated); err != nil {
		return false, nil, err
	}
	return !exists, updated, nil
}
