package domain

// Emoji is one hand-authored content record, loaded from a per-record JSON
// file. Immutable after load.
type Emoji struct {
	Slug            string           `json:"slug"`
	Codepoint       string           `json:"codepoint"`
	Character       string           `json:"character"`
	Name            string           `json:"name"`
	ShortName       string           `json:"shortName"`
	Category        EmojiCategory    `json:"category"`
	Subcategory     string           `json:"subcategory,omitempty"`
	UnicodeVersion  string           `json:"unicodeVersion"`
	LiteralMeaning  string           `json:"literalMeaning"`
	Summary         string           `json:"summary"`
	ContextMeanings []ContextMeaning `json:"contextMeanings"`
	PlatformNotes   []PlatformNote   `json:"platformNotes"`
	GenerationNotes []GenerationNote `json:"generationNotes"`
	Warnings        []Warning        `json:"warnings"`
	RelatedCombos   []string         `json:"relatedCombos"`
	SEOTitle        string           `json:"seoTitle"`
	SEODescription  string           `json:"seoDescription"`
}

// ContextMeaning is one interpretation of an emoji tied to a usage context.
type ContextMeaning struct {
	Context ContextType `json:"context"`
	Meaning string      `json:"meaning"`
	Example string      `json:"example"`
	Risk    RiskLevel   `json:"risk"`
}

// PlatformNote pairs a platform with free-text usage notes.
type PlatformNote struct {
	Platform Platform `json:"platform"`
	Note     string   `json:"note"`
}

// GenerationNote pairs a generation with free-text usage notes.
type GenerationNote struct {
	Generation Generation `json:"generation"`
	Note       string     `json:"note"`
}

// Warning flags a risky usage of an emoji.
type Warning struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    RiskLevel `json:"severity"`
}
