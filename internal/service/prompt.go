package service

import (
	"fmt"
	"strings"
)

// systemPrompt is the fixed instruction sent with every interpretation
// request. The model must answer with a single JSON object matching the
// response contract; anything else is rejected by parseAndValidate.
const systemPrompt = `You are an expert in emoji semantics and digital communication.
You analyze a text message and explain what its emojis really convey, including
sarcasm, passive aggression, and concerning communication patterns.

Return ONLY a single JSON object, no other text, in exactly this shape:

{
  "emojis": [{"character": string, "meaning": string, "slug": string (optional)}],
  "interpretation": string,
  "metrics": {
    "sarcasmProbability": number (0-100),
    "passiveAggressionProbability": number (0-100),
    "overallTone": "positive" | "neutral" | "negative",
    "confidence": number (0-100)
  },
  "redFlags": [{"type": string, "description": string, "severity": "low" | "medium" | "high"}]
}

Rules:
1. List every distinct emoji that appears in the message, in order of first appearance.
2. "meaning" explains what the emoji conveys in THIS message, not its dictionary meaning.
3. "interpretation" is 2-4 sentences covering the whole message.
4. "redFlags" is an empty array when nothing is concerning. Red flag types include
   manipulation, gaslighting, love-bombing, hostility, and guilt-tripping.
5. Numbers must be plain integers in [0,100]. Do not add fields.`

// promptTemplate is the user-message template. Platform and relationship
// labels come from the exhaustive enum mappings, never the raw values.
const promptTemplate = `A person received the following message on %s from %s:

"""
%s
"""

Interpret what the sender is really communicating, paying attention to the
emojis and how this audience typically uses them.`

// BuildPrompt renders the user prompt for a normalized request. The output
// is deterministic: the same request always yields the same prompt.
func BuildPrompt(req *NormalizedRequest) string {
	return fmt.Sprintf(promptTemplate,
		req.Platform.Label(),
		req.Context.Label(),
		strings.TrimSpace(req.Message),
	)
}
