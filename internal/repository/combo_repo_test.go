package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emojisense/emojisense-backend/internal/domain"
)

func comboDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "skull-crying-laughing.json", `{
		"slug": "skull-crying-laughing", "combo": "💀😂",
		"emojis": ["skull", "face-with-tears-of-joy"],
		"name": "Skull + Tears of Joy", "description": "The escalated laugh.",
		"meaning": "Funny beyond a normal reaction.", "category": "HUMOR",
		"tags": ["laughter", "dead"]
	}`)
	writeFile(t, dir, "crying-thumbs-up.json", `{
		"slug": "crying-thumbs-up", "combo": "😭👍",
		"emojis": ["loudly-crying-face", "thumbs-up"],
		"name": "Crying + Thumbs Up", "description": "Devastated but carrying on.",
		"meaning": "Resigned acceptance.", "category": "INTERNET_CULTURE",
		"tags": ["resignation"]
	}`)
	writeFile(t, dir, "laughing-pointing.json", `{
		"slug": "laughing-pointing", "combo": "😂👉",
		"emojis": ["face-with-tears-of-joy", "pointing-right"],
		"name": "Laughing + Pointing", "description": "Laughing at someone, not with them.",
		"meaning": "Mockery dressed up as humor.", "category": "HUMOR"
	}`)
	return dir
}

func TestComboRepo_LoadsAndIndexes(t *testing.T) {
	repo := NewComboRepository(comboDir(t))

	assert.Len(t, repo.All(), 3)

	combo, ok := repo.BySlug("crying-thumbs-up")
	assert.True(t, ok)
	assert.Equal(t, "😭👍", combo.Combo)
	assert.Equal(t, []string{"loudly-crying-face", "thumbs-up"}, combo.Emojis)

	_, ok = repo.BySlug("missing")
	assert.False(t, ok)
}

func TestComboRepo_ByCategory(t *testing.T) {
	repo := NewComboRepository(comboDir(t))

	assert.Len(t, repo.ByCategory(domain.ComboCategoryHumor), 2)
	assert.Len(t, repo.ByCategory(domain.ComboCategoryInternetCulture), 1)
	assert.Empty(t, repo.ByCategory(domain.ComboCategoryRomance))
}

func TestComboRepo_CategoriesAreSortedAndDistinct(t *testing.T) {
	repo := NewComboRepository(comboDir(t))

	cats := repo.Categories()
	assert.Equal(t, []domain.ComboCategory{
		domain.ComboCategoryHumor,
		domain.ComboCategoryInternetCulture,
	}, cats)
}

func TestComboRepo_Search(t *testing.T) {
	repo := NewComboRepository(comboDir(t))

	assert.Len(t, repo.Search("laugh"), 2)    // name + description matches
	assert.Len(t, repo.Search("😭👍"), 1)      // the combo string itself
	assert.Len(t, repo.Search("resigned"), 1) // meaning
	assert.Len(t, repo.Search("dead"), 1)     // tag
	assert.Empty(t, repo.Search(""))
	assert.Empty(t, repo.Search("zebra"))
}

func TestComboRepo_Related(t *testing.T) {
	repo := NewComboRepository(comboDir(t))

	related := repo.Related("skull-crying-laughing", 0)
	assert.Len(t, related, 1)
	assert.Equal(t, "laughing-pointing", related[0].Slug)

	assert.Empty(t, repo.Related("missing", 5))
}

func TestComboRepo_RelatedHonorsLimit(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 10; i++ {
		writeFile(t, dir, fmt.Sprintf("combo-%02d.json", i), fmt.Sprintf(`{
			"slug": "combo-%02d", "combo": "💀😂", "emojis": ["a", "b"],
			"name": "Combo %02d", "description": "d", "meaning": "m", "category": "HUMOR"
		}`, i, i))
	}
	repo := NewComboRepository(dir)

	assert.Len(t, repo.Related("combo-00", 3), 3)
	// Default cap applies when no limit is given
	assert.Len(t, repo.Related("combo-00", 0), DefaultRelatedLimit)
}
