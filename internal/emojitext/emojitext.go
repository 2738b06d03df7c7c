// Package emojitext extracts emoji occurrences from user text. Matching
// is grapheme-cluster based so ZWJ sequences (family emoji) and skin-tone
// modifier sequences count as single occurrences.
package emojitext

import (
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/emojisense/emojisense-backend/internal/domain"
)

// emojiRunes covers the blocks emoji presentation characters live in.
// Keycap combining mark (20E3) and regional indicators are included so
// "1️⃣" and flag pairs are detected; plain digits are not, since the bare
// digit cluster carries no rune from this table.
var emojiRunes = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x203C, Hi: 0x203C, Stride: 1}, // double exclamation
		{Lo: 0x2049, Hi: 0x2049, Stride: 1}, // exclamation question
		{Lo: 0x20E3, Hi: 0x20E3, Stride: 1}, // keycap combining mark
		{Lo: 0x2122, Hi: 0x2122, Stride: 1}, // trade mark
		{Lo: 0x2139, Hi: 0x2139, Stride: 1}, // information
		{Lo: 0x2194, Hi: 0x21AA, Stride: 1}, // arrows
		{Lo: 0x231A, Hi: 0x231B, Stride: 1}, // watch, hourglass
		{Lo: 0x2328, Hi: 0x2328, Stride: 1}, // keyboard
		{Lo: 0x23CF, Hi: 0x23FA, Stride: 1}, // media controls
		{Lo: 0x24C2, Hi: 0x24C2, Stride: 1}, // circled M
		{Lo: 0x25AA, Hi: 0x25FE, Stride: 1}, // geometric shapes
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1}, // misc symbols, dingbats
		{Lo: 0x2934, Hi: 0x2935, Stride: 1}, // arrow right curving
		{Lo: 0x2B05, Hi: 0x2B55, Stride: 1}, // arrows, stars, circles
		{Lo: 0x3030, Hi: 0x3030, Stride: 1}, // wavy dash
		{Lo: 0x303D, Hi: 0x303D, Stride: 1}, // part alternation mark
		{Lo: 0x3297, Hi: 0x3297, Stride: 1}, // circled congratulations
		{Lo: 0x3299, Hi: 0x3299, Stride: 1}, // circled secret
	},
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1F0FF, Stride: 1}, // mahjong, dominoes, cards
		{Lo: 0x1F170, Hi: 0x1F251, Stride: 1}, // enclosed characters
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // misc symbols and pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // transport and map
		{Lo: 0x1F700, Hi: 0x1F77F, Stride: 1}, // alchemical
		{Lo: 0x1F780, Hi: 0x1F7FF, Stride: 1}, // geometric extended
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // supplemental symbols
		{Lo: 0x1FA00, Hi: 0x1FAFF, Stride: 1}, // symbols extended-A
	},
}

// isEmojiCluster reports whether one grapheme cluster renders as an emoji:
// at least one of its runes belongs to an emoji block. A bare variation
// selector or ZWJ never qualifies on its own.
func isEmojiCluster(cluster string) bool {
	for _, r := range cluster {
		if unicode.Is(emojiRunes, r) {
			return true
		}
	}
	return false
}

// Extract returns every emoji grapheme cluster in text with its character
// (rune) offset in the original string. A ZWJ family sequence or a
// skin-toned emoji is one occurrence at one offset.
func Extract(text string) []domain.EmojiOccurrence {
	var occurrences []domain.EmojiOccurrence

	offset := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		if isEmojiCluster(cluster) {
			occurrences = append(occurrences, domain.EmojiOccurrence{
				Character: cluster,
				Offset:    offset,
			})
		}
		offset += len([]rune(cluster))
	}

	return occurrences
}

// ContainsEmoji reports whether text has at least one emoji occurrence.
func ContainsEmoji(text string) bool {
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		if isEmojiCluster(cluster) {
			return true
		}
	}
	return false
}

// Length counts text in grapheme clusters, so a family emoji is one
// character for length-limit purposes.
func Length(text string) int {
	return uniseg.GraphemeClusterCount(text)
}
