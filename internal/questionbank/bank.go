package questionbank

import "sync"

// Bank is the process-lifetime cache of static question pools, grouped by
// category. Construction is amortized: pools are assembled on first access
// and reused for every subsequent call. All returned slices are copies so
// callers cannot disturb the underlying pools.
type Bank struct {
	once  sync.Once
	pools map[string][]Question
}

// NewBank returns an empty Bank; pools are built lazily on first use.
func NewBank() *Bank {
	return &Bank{}
}

func (b *Bank) build() {
	b.once.Do(func() {
		b.pools = map[string][]Question{
			"numerical":     numericalPool(),
			"verbal":        verbalPool(),
			"logical":       logicalPool(),
			"abstract":      abstractPool(),
			"sjt":           sjtPool(),
			"watson_glaser": watsonGlaserPool(),
			"mechanical":    mechanicalPool(),
			"spatial":       spatialPool(),
			"iq":            iqPool(),
		}
	})
}

// Categories returns the category keys in presentation order.
func (b *Bank) Categories() []string {
	keys := make([]string, 0, len(categoryCatalog))
	for _, c := range categoryCatalog {
		keys = append(keys, c.Key)
	}
	return keys
}

// Catalog returns display metadata for every category.
func (b *Bank) Catalog() []CategoryInfo {
	out := make([]CategoryInfo, len(categoryCatalog))
	copy(out, categoryCatalog)
	return out
}

// Info returns display metadata for one category key.
// Unknown keys get a bare CategoryInfo echoing the key.
func (b *Bank) Info(category string) CategoryInfo {
	if category == CategoryBlended {
		return CategoryInfo{Key: CategoryBlended, Name: "Blended Assessment", Description: "All categories combined"}
	}
	for _, c := range categoryCatalog {
		if c.Key == category {
			return c
		}
	}
	return CategoryInfo{Key: category, Name: category}
}

// Pool returns the static questions for a category. The blended
// pseudo-category returns every question in the bank. Unknown categories
// return an empty slice, not an error.
func (b *Bank) Pool(category string) []Question {
	b.build()

	if category == CategoryBlended {
		return b.All()
	}

	pool := b.pools[category]
	out := make([]Question, len(pool))
	copy(out, pool)
	return out
}

// All returns every question across all categories, in catalog order.
func (b *Bank) All() []Question {
	b.build()

	var out []Question
	for _, c := range categoryCatalog {
		out = append(out, b.pools[c.Key]...)
	}
	return out
}

// Others returns every question NOT in the given category. Used to widen
// sampling when a single category cannot fill a test on its own.
func (b *Bank) Others(category string) []Question {
	b.build()

	var out []Question
	for _, c := range categoryCatalog {
		if c.Key == category {
			continue
		}
		out = append(out, b.pools[c.Key]...)
	}
	return out
}
