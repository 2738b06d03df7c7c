package domain

// Combo is a curated combination of two or more emoji treated as a single
// cultural unit with its own meaning. One JSON file per record.
type Combo struct {
	Slug           string        `json:"slug"`
	Combo          string        `json:"combo"`
	Emojis         []string      `json:"emojis"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Meaning        string        `json:"meaning"`
	Examples       []string      `json:"examples"`
	Category       ComboCategory `json:"category"`
	SEOTitle       string        `json:"seoTitle"`
	SEODescription string        `json:"seoDescription"`
	RelatedCombos  []string      `json:"relatedCombos,omitempty"`
	Tags           []string      `json:"tags,omitempty"`
	Popularity     int           `json:"popularity,omitempty"`
}
