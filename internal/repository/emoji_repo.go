package repository

import (
	"sort"
	"strings"
	"sync"

	"github.com/emojisense/emojisense-backend/internal/domain"
	"github.com/emojisense/emojisense-backend/pkg/logger"
)

// DefaultRelatedLimit caps related-record queries when the caller passes
// no explicit limit.
const DefaultRelatedLimit = 6

// EmojiRepository defines read access to the emoji content corpus
type EmojiRepository interface {
	All() []*domain.Emoji
	BySlug(slug string) (*domain.Emoji, bool)
	ByCharacter(character string) (*domain.Emoji, bool)
	ByCategory(category domain.EmojiCategory) []*domain.Emoji
	Categories() []domain.EmojiCategory
	Search(query string) []*domain.Emoji
	Related(slug string, limit int) []*domain.Emoji

	// Clear drops the in-memory corpus; the next access reloads from disk.
	// Used by tests.
	Clear()
}

// emojiRepository loads one JSON file per record from a directory, once
// per process. Concurrent first accesses load under the lock; content is
// read-only afterwards.
type emojiRepository struct {
	dir string

	mu     sync.Mutex
	loaded bool
	emojis []*domain.Emoji
	bySlug map[string]*domain.Emoji
	byChar map[string]*domain.Emoji
}

// NewEmojiRepository creates an EmojiRepository over dir
func NewEmojiRepository(dir string) EmojiRepository {
	return &emojiRepository{dir: dir}
}

// load reads the corpus on first access and memoizes it
func (r *emojiRepository) load() []*domain.Emoji {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded {
		return r.emojis
	}

	r.emojis = loadRecords[domain.Emoji](r.dir)
	r.bySlug = make(map[string]*domain.Emoji, len(r.emojis))
	r.byChar = make(map[string]*domain.Emoji, len(r.emojis))
	for _, e := range r.emojis {
		r.bySlug[e.Slug] = e
		if _, dup := r.byChar[e.Character]; !dup {
			r.byChar[e.Character] = e
		}
	}
	r.loaded = true
	logger.Info("content: loaded %d emoji records from %s", len(r.emojis), r.dir)
	return r.emojis
}

// All returns every loaded emoji record
func (r *emojiRepository) All() []*domain.Emoji {
	return r.load()
}

// BySlug fetches one record; absent is a not-found signal, not an error
func (r *emojiRepository) BySlug(slug string) (*domain.Emoji, bool) {
	r.load()
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.bySlug[slug]
	return e, ok
}

// ByCharacter resolves an emoji record by its display character
func (r *emojiRepository) ByCharacter(character string) (*domain.Emoji, bool) {
	r.load()
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byChar[character]
	return e, ok
}

// ByCategory filters records by category
func (r *emojiRepository) ByCategory(category domain.EmojiCategory) []*domain.Emoji {
	var out []*domain.Emoji
	for _, e := range r.load() {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Categories lists the distinct categories present in the loaded corpus
func (r *emojiRepository) Categories() []domain.EmojiCategory {
	seen := make(map[domain.EmojiCategory]bool)
	for _, e := range r.load() {
		seen[e.Category] = true
	}
	cats := make([]domain.EmojiCategory, 0, len(seen))
	for c := range seen {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

// Search matches case-insensitive substrings of name, short name,
// character, and slug
func (r *emojiRepository) Search(query string) []*domain.Emoji {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []*domain.Emoji
	for _, e := range r.load() {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.ShortName), q) ||
			strings.Contains(e.Character, query) ||
			strings.Contains(strings.ToLower(e.Slug), q) {
			out = append(out, e)
		}
	}
	return out
}

// Related returns up to limit records sharing the anchor's category,
// excluding the anchor itself. Unknown anchor yields an empty list.
func (r *emojiRepository) Related(slug string, limit int) []*domain.Emoji {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	anchor, ok := r.BySlug(slug)
	if !ok {
		return []*domain.Emoji{}
	}

	out := make([]*domain.Emoji, 0, limit)
	for _, e := range r.load() {
		if e.Slug == slug || e.Category != anchor.Category {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Clear drops the memoized corpus
func (r *emojiRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = false
	r.emojis = nil
	r.bySlug = nil
	r.byChar = nil
}
