package emojitext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_SingleEmojiWithOffset(t *testing.T) {
	occ := Extract("Hello there friend 😀 how are you today?")

	assert.Len(t, occ, 1)
	assert.Equal(t, "😀", occ[0].Character)
	assert.Equal(t, 19, occ[0].Offset)
}

func TestExtract_MultipleEmojis(t *testing.T) {
	occ := Extract("💀😂 that was too good")

	assert.Len(t, occ, 2)
	assert.Equal(t, "💀", occ[0].Character)
	assert.Equal(t, 0, occ[0].Offset)
	assert.Equal(t, "😂", occ[1].Character)
	assert.Equal(t, 1, occ[1].Offset)
}

func TestExtract_ZWJSequenceIsOneOccurrence(t *testing.T) {
	// Family: man, woman, girl joined by ZWJ renders as one glyph
	family := "\U0001F468‍\U0001F469‍\U0001F467"
	occ := Extract("look " + family + " here")

	assert.Len(t, occ, 1)
	assert.Equal(t, family, occ[0].Character)
	assert.Equal(t, 5, occ[0].Offset)
}

func TestExtract_SkinToneModifierIsOneOccurrence(t *testing.T) {
	waving := "\U0001F44B\U0001F3FD" // waving hand + medium skin tone
	occ := Extract(waving)

	assert.Len(t, occ, 1)
	assert.Equal(t, waving, occ[0].Character)
	assert.Equal(t, 0, occ[0].Offset)
}

func TestExtract_NoEmoji(t *testing.T) {
	assert.Empty(t, Extract("just plain text, numbers 123 and symbols !?"))
}

func TestContainsEmoji(t *testing.T) {
	assert.True(t, ContainsEmoji("deploy is broken 💀"))
	assert.False(t, ContainsEmoji("deploy is broken"))
	assert.False(t, ContainsEmoji(""))
}

func TestLength_CountsGraphemeClusters(t *testing.T) {
	family := "\U0001F468‍\U0001F469‍\U0001F467"

	assert.Equal(t, 5, Length("héllo"))
	assert.Equal(t, 1, Length(family))
	assert.Equal(t, 4, Length("ab"+family+"c"))
	assert.Equal(t, 0, Length(""))
}

func TestLength_LongMessage(t *testing.T) {
	assert.Equal(t, 1000, Length(strings.Repeat("a", 1000)))
}
