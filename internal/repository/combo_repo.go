package repository

import (
	"sort"
	"strings"
	"sync"

	"github.com/emojisense/emojisense-backend/internal/domain"
	"github.com/emojisense/emojisense-backend/pkg/logger"
)

// ComboRepository defines read access to the combo content corpus
type ComboRepository interface {
	All() []*domain.Combo
	BySlug(slug string) (*domain.Combo, bool)
	ByCategory(category domain.ComboCategory) []*domain.Combo
	Categories() []domain.ComboCategory
	Search(query string) []*domain.Combo
	Related(slug string, limit int) []*domain.Combo
	Clear()
}

type comboRepository struct {
	dir string

	mu     sync.Mutex
	loaded bool
	combos []*domain.Combo
	bySlug map[string]*domain.Combo
}

// NewComboRepository creates a ComboRepository over dir
func NewComboRepository(dir string) ComboRepository {
	return &comboRepository{dir: dir}
}

func (r *comboRepository) load() []*domain.Combo {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded {
		return r.combos
	}

	r.combos = loadRecords[domain.Combo](r.dir)
	r.bySlug = make(map[string]*domain.Combo, len(r.combos))
	for _, c := range r.combos {
		r.bySlug[c.Slug] = c
	}
	r.loaded = true
	logger.Info("content: loaded %d combo records from %s", len(r.combos), r.dir)
	return r.combos
}

// All returns every loaded combo record
func (r *comboRepository) All() []*domain.Combo {
	return r.load()
}

// BySlug fetches one record; absent is a not-found signal, not an error
func (r *comboRepository) BySlug(slug string) (*domain.Combo, bool) {
	r.load()
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.bySlug[slug]
	return c, ok
}

// ByCategory filters records by category
func (r *comboRepository) ByCategory(category domain.ComboCategory) []*domain.Combo {
	var out []*domain.Combo
	for _, c := range r.load() {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// Categories lists the distinct categories present in the loaded corpus
func (r *comboRepository) Categories() []domain.ComboCategory {
	seen := make(map[domain.ComboCategory]bool)
	for _, c := range r.load() {
		seen[c.Category] = true
	}
	cats := make([]domain.ComboCategory, 0, len(seen))
	for c := range seen {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

// Search matches case-insensitive substrings of name, slug, the combo
// string, meaning, description, and tags
func (r *comboRepository) Search(query string) []*domain.Combo {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []*domain.Combo
	for _, c := range r.load() {
		if r.matches(c, q, query) {
			out = append(out, c)
		}
	}
	return out
}

func (r *comboRepository) matches(c *domain.Combo, q, raw string) bool {
	if strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Slug), q) ||
		strings.Contains(c.Combo, raw) ||
		strings.Contains(strings.ToLower(c.Meaning), q) ||
		strings.Contains(strings.ToLower(c.Description), q) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Related returns up to limit records sharing the anchor's category,
// excluding the anchor itself. Unknown anchor yields an empty list.
func (r *comboRepository) Related(slug string, limit int) []*domain.Combo {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	anchor, ok := r.BySlug(slug)
	if !ok {
		return []*domain.Combo{}
	}

	out := make([]*domain.Combo, 0, limit)
	for _, c := range r.load() {
		if c.Slug == slug || c.Category != anchor.Category {
			continue
		}
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Clear drops the memoized corpus
func (r *comboRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = false
	r.combos = nil
	r.bySlug = nil
}
