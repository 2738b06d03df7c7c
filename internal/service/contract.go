package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/emojisense/emojisense-backend/internal/common"
	"github.com/emojisense/emojisense-backend/internal/domain"
)

// modelReply is the JSON shape the model must answer with.
type modelReply struct {
	Emojis         []modelEmoji   `json:"emojis"`
	Interpretation string         `json:"interpretation"`
	Metrics        modelMetrics   `json:"metrics"`
	RedFlags       []modelRedFlag `json:"redFlags"`
}

type modelEmoji struct {
	Character string `json:"character"`
	Meaning   string `json:"meaning"`
	Slug      string `json:"slug,omitempty"`
}

type modelMetrics struct {
	SarcasmProbability           int    `json:"sarcasmProbability"`
	PassiveAggressionProbability int    `json:"passiveAggressionProbability"`
	OverallTone                  string `json:"overallTone"`
	Confidence                   int    `json:"confidence"`
}

type modelRedFlag struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// extractJSON strips a markdown code fence if the model wrapped its reply
// in one.
func extractJSON(rawText string) string {
	if idx := strings.Index(rawText, "```"); idx >= 0 {
		start := strings.Index(rawText[idx:], "\n")
		if start >= 0 {
			end := strings.Index(rawText[idx+start+1:], "```")
			if end >= 0 {
				return strings.TrimSpace(rawText[idx+start+1 : idx+start+1+end])
			}
		}
	}
	return strings.TrimSpace(rawText)
}

// parseAndValidate decodes the model reply and enforces the response
// contract. Both syntactic and shape failures come back as KindParse,
// with the violated field path in the message.
func parseAndValidate(rawText string) (*modelReply, error) {
	jsonStr := extractJSON(rawText)

	var reply modelReply
	if err := json.Unmarshal([]byte(jsonStr), &reply); err != nil {
		return nil, common.NewAppError(common.KindParse, "model reply is not valid JSON", err)
	}

	if err := validateReply(&reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func validateReply(reply *modelReply) error {
	if strings.TrimSpace(reply.Interpretation) == "" {
		return contractError("interpretation", "must be a non-empty string")
	}

	for i, e := range reply.Emojis {
		if e.Character == "" {
			return contractError(fmt.Sprintf("emojis[%d].character", i), "must be a non-empty string")
		}
		if strings.TrimSpace(e.Meaning) == "" {
			return contractError(fmt.Sprintf("emojis[%d].meaning", i), "must be a non-empty string")
		}
	}

	if err := checkRange("metrics.sarcasmProbability", reply.Metrics.SarcasmProbability); err != nil {
		return err
	}
	if err := checkRange("metrics.passiveAggressionProbability", reply.Metrics.PassiveAggressionProbability); err != nil {
		return err
	}
	if err := checkRange("metrics.confidence", reply.Metrics.Confidence); err != nil {
		return err
	}
	if !domain.Tone(reply.Metrics.OverallTone).IsValid() {
		return contractError("metrics.overallTone",
			fmt.Sprintf("got %q, want one of positive, neutral, negative", reply.Metrics.OverallTone))
	}

	for i, f := range reply.RedFlags {
		if !domain.Severity(f.Severity).IsValid() {
			return contractError(fmt.Sprintf("redFlags[%d].severity", i),
				fmt.Sprintf("got %q, want one of low, medium, high", f.Severity))
		}
	}

	return nil
}

func checkRange(path string, v int) error {
	if v < 0 || v > 100 {
		return contractError(path, fmt.Sprintf("got %d, want 0-100", v))
	}
	return nil
}

func contractError(path, reason string) error {
	return common.NewAppError(common.KindParse,
		fmt.Sprintf("model reply violates contract at %s: %s", path, reason), nil)
}

// CacheKey derives the deterministic interpretation cache key from the
// request triple. Order-sensitive concatenation with a separator that
// cannot appear in enum values; xxh3 because this is a cache key, not a
// security boundary.
func CacheKey(message string, platform domain.Platform, context domain.RelationshipContext) string {
	var b strings.Builder
	b.WriteString(message)
	b.WriteByte(0x1f)
	b.WriteString(string(platform))
	b.WriteByte(0x1f)
	b.WriteString(string(context))
	return fmt.Sprintf("%016x", xxh3.HashString(b.String()))
}
