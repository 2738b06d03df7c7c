package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/emojisense/emojisense-backend/internal/domain"
)

// --- Fake EmojiRepository ---

type fakeEmojiRepo struct {
	emojis []*domain.Emoji
}

func (f *fakeEmojiRepo) All() []*domain.Emoji { return f.emojis }

func (f *fakeEmojiRepo) BySlug(slug string) (*domain.Emoji, bool) {
	for _, e := range f.emojis {
		if e.Slug == slug {
			return e, true
		}
	}
	return nil, false
}

func (f *fakeEmojiRepo) ByCharacter(ch string) (*domain.Emoji, bool) {
	for _, e := range f.emojis {
		if e.Character == ch {
			return e, true
		}
	}
	return nil, false
}

func (f *fakeEmojiRepo) ByCategory(cat domain.EmojiCategory) []*domain.Emoji {
	var out []*domain.Emoji
	for _, e := range f.emojis {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeEmojiRepo) Categories() []domain.EmojiCategory {
	return []domain.EmojiCategory{domain.CategorySmileysEmotion}
}

func (f *fakeEmojiRepo) Search(query string) []*domain.Emoji {
	var out []*domain.Emoji
	for _, e := range f.emojis {
		if e.Name == query {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeEmojiRepo) Related(slug string, limit int) []*domain.Emoji { return nil }
func (f *fakeEmojiRepo) Clear()                                        {}

func emojiRouter(repo *fakeEmojiRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewEmojiHandler(repo)
	r.GET("/emojis", h.List)
	r.GET("/emojis/categories", h.Categories)
	r.GET("/emojis/:slug", h.Get)
	r.GET("/emojis/:slug/related", h.Related)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)
	return w
}

func testEmojis() []*domain.Emoji {
	return []*domain.Emoji{
		{Slug: "skull", Character: "💀", Name: "Skull", Category: domain.CategorySmileysEmotion},
		{Slug: "thumbs-up", Character: "👍", Name: "Thumbs Up", Category: domain.CategoryPeopleBody},
	}
}

// --- Tests ---

func TestEmojiList_All(t *testing.T) {
	w := get(emojiRouter(&fakeEmojiRepo{emojis: testEmojis()}), "/emojis")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"skull"`)
	assert.Contains(t, w.Body.String(), `"thumbs-up"`)
	assert.Contains(t, w.Body.String(), `"total":2`)
}

func TestEmojiList_CategoryFilter(t *testing.T) {
	w := get(emojiRouter(&fakeEmojiRepo{emojis: testEmojis()}), "/emojis?category=PEOPLE_BODY")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"thumbs-up"`)
	assert.NotContains(t, w.Body.String(), `"skull"`)
}

func TestEmojiList_UnknownCategoryIs400(t *testing.T) {
	w := get(emojiRouter(&fakeEmojiRepo{emojis: testEmojis()}), "/emojis?category=FEELINGS")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "FEELINGS")
}

func TestEmojiGet_Found(t *testing.T) {
	w := get(emojiRouter(&fakeEmojiRepo{emojis: testEmojis()}), "/emojis/skull")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "💀")
}

func TestEmojiGet_NotFoundIs404(t *testing.T) {
	w := get(emojiRouter(&fakeEmojiRepo{emojis: testEmojis()}), "/emojis/zebra")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestEmojiCategories(t *testing.T) {
	w := get(emojiRouter(&fakeEmojiRepo{emojis: testEmojis()}), "/emojis/categories")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SMILEYS_EMOTION")
}
