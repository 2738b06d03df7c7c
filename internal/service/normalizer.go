package service

import (
	"fmt"

	"github.com/emojisense/emojisense-backend/internal/common"
	"github.com/emojisense/emojisense-backend/internal/domain"
	"github.com/emojisense/emojisense-backend/internal/emojitext"
)

// Message length bounds, counted in grapheme clusters.
const (
	MinMessageLength = 10
	MaxMessageLength = 1000
)

// NormalizedRequest is a validated interpretation request with its emoji
// occurrences already extracted.
type NormalizedRequest struct {
	Message     string
	Platform    domain.Platform
	Context     domain.RelationshipContext
	Occurrences []domain.EmojiOccurrence
}

// NormalizeInterpretRequest validates a raw request and extracts emoji
// occurrences. All failures are field-scoped and reported together, and
// always before any external call is made.
func NormalizeInterpretRequest(req *domain.InterpretRequest) (*NormalizedRequest, error) {
	fields := map[string]string{}

	length := emojitext.Length(req.Message)
	if length < MinMessageLength || length > MaxMessageLength {
		fields["message"] = fmt.Sprintf("message must be between %d and %d characters (got %d)",
			MinMessageLength, MaxMessageLength, length)
	}

	occurrences := emojitext.Extract(req.Message)
	if _, bad := fields["message"]; !bad && len(occurrences) == 0 {
		fields["message"] = "message must contain at least one emoji"
	}

	if !req.Platform.IsValidRequest() {
		fields["platform"] = fmt.Sprintf("unknown platform %q", req.Platform)
	}
	if !req.Context.IsValid() {
		fields["context"] = fmt.Sprintf("unknown relationship context %q", req.Context)
	}

	if len(fields) > 0 {
		return nil, &common.ValidationError{Fields: fields}
	}

	return &NormalizedRequest{
		Message:     req.Message,
		Platform:    req.Platform,
		Context:     req.Context,
		Occurrences: occurrences,
	}, nil
}
