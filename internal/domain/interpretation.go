package domain

import "time"

// InterpretRequest is one user-submitted interpretation request.
type InterpretRequest struct {
	Message  string              `json:"message" binding:"required"`
	Platform Platform            `json:"platform" binding:"required"`
	Context  RelationshipContext `json:"context" binding:"required"`
}

// EmojiOccurrence is one emoji grapheme cluster found in the message,
// with its character (rune) offset in the original string.
type EmojiOccurrence struct {
	Character string `json:"character"`
	Offset    int    `json:"offset"`
}

// DetectedEmoji is one emoji entry in an interpretation result.
type DetectedEmoji struct {
	Character string `json:"character"`
	Meaning   string `json:"meaning"`
	Slug      string `json:"slug,omitempty"`
}

// Metrics carries the model's numeric read of the message.
// All probabilities and confidence are in [0,100].
type Metrics struct {
	SarcasmProbability           int  `json:"sarcasmProbability"`
	PassiveAggressionProbability int  `json:"passiveAggressionProbability"`
	OverallTone                  Tone `json:"overallTone"`
	Confidence                   int  `json:"confidence"`
}

// RedFlag is a model-identified concerning communication pattern.
type RedFlag struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// InterpretResult is the assembled outcome of one interpretation.
// ID and Timestamp are generated at assembly time, never taken from the
// model or a cache entry.
type InterpretResult struct {
	ID             string          `json:"id"`
	Message        string          `json:"message"`
	Emojis         []DetectedEmoji `json:"emojis"`
	Interpretation string          `json:"interpretation"`
	Metrics        Metrics         `json:"metrics"`
	RedFlags       []RedFlag       `json:"redFlags"`
	Timestamp      time.Time       `json:"timestamp"`
}

// QuotaStatus reports a client's daily interpretation allowance.
type QuotaStatus struct {
	Allowed   bool `json:"allowed"`
	Used      int  `json:"used"`
	Remaining int  `json:"remaining"`
	Max       int  `json:"max"`
}
