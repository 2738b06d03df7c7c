package validation

import (
	"fmt"

	"github.com/emojisense/emojisense-backend/internal/domain"
)

var emojiRequiredFields = []string{
	"slug", "codepoint", "character", "name", "shortName", "category",
	"unicodeVersion", "literalMeaning", "summary",
	"contextMeanings", "platformNotes", "generationNotes", "warnings",
	"relatedCombos", "seoTitle", "seoDescription",
}

var emojiStringFields = []string{
	"slug", "codepoint", "character", "name", "shortName", "category",
	"subcategory", "unicodeVersion", "literalMeaning", "summary",
	"seoTitle", "seoDescription",
}

var emojiArrayFields = []string{
	"contextMeanings", "platformNotes", "generationNotes", "warnings",
	"relatedCombos",
}

// ValidateEmojiRecord checks one emoji record against its schema. An empty
// slice means the record is valid.
func ValidateEmojiRecord(r RawRecord) []Error {
	var errs []Error
	errs = append(errs, requireFields(r, emojiRequiredFields)...)
	errs = append(errs, checkStrings(r, emojiStringFields)...)
	errs = append(errs, checkArrays(r, emojiArrayFields)...)

	if cat, ok := r.Fields["category"].(string); ok {
		errs = append(errs, checkEnum(r.ID, "category", cat, enumStrings(domain.EmojiCategories))...)
	}

	for i, v := range arrayField(r, "contextMeanings") {
		errs = append(errs, validateContextMeaning(r.ID, fmt.Sprintf("contextMeanings[%d]", i), v)...)
	}
	for i, v := range arrayField(r, "platformNotes") {
		errs = append(errs, validatePlatformNote(r.ID, fmt.Sprintf("platformNotes[%d]", i), v)...)
	}
	for i, v := range arrayField(r, "generationNotes") {
		errs = append(errs, validateGenerationNote(r.ID, fmt.Sprintf("generationNotes[%d]", i), v)...)
	}
	for i, v := range arrayField(r, "warnings") {
		errs = append(errs, validateWarning(r.ID, fmt.Sprintf("warnings[%d]", i), v)...)
	}
	for i, v := range arrayField(r, "relatedCombos") {
		if _, ok := v.(string); !ok {
			errs = append(errs, Error{
				Record:  r.ID,
				Field:   fmt.Sprintf("relatedCombos[%d]", i),
				Message: fmt.Sprintf("expected a string slug, got %T", v),
			})
		}
	}

	return errs
}

func validateContextMeaning(record, field string, v interface{}) []Error {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return []Error{{Record: record, Field: field, Message: fmt.Sprintf("expected an object, got %T", v)}}
	}

	var errs []Error
	if ctx, e := stringEntry(record, field, obj, "context"); len(e) > 0 {
		errs = append(errs, e...)
	} else {
		errs = append(errs, checkEnum(record, field+".context", ctx, enumStrings(domain.ContextTypes))...)
	}
	if _, e := stringEntry(record, field, obj, "meaning"); len(e) > 0 {
		errs = append(errs, e...)
	}
	if _, e := stringEntry(record, field, obj, "example"); len(e) > 0 {
		errs = append(errs, e...)
	}
	if risk, e := stringEntry(record, field, obj, "risk"); len(e) > 0 {
		errs = append(errs, e...)
	} else {
		errs = append(errs, checkEnum(record, field+".risk", risk, enumStrings(domain.RiskLevels))...)
	}
	return errs
}

func validatePlatformNote(record, field string, v interface{}) []Error {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return []Error{{Record: record, Field: field, Message: fmt.Sprintf("expected an object, got %T", v)}}
	}

	var errs []Error
	if platform, e := stringEntry(record, field, obj, "platform"); len(e) > 0 {
		errs = append(errs, e...)
	} else {
		errs = append(errs, checkEnum(record, field+".platform", platform, enumStrings(domain.ContentPlatforms))...)
	}
	if _, e := stringEntry(record, field, obj, "note"); len(e) > 0 {
		errs = append(errs, e...)
	}
	return errs
}

func validateGenerationNote(record, field string, v interface{}) []Error {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return []Error{{Record: record, Field: field, Message: fmt.Sprintf("expected an object, got %T", v)}}
	}

	var errs []Error
	if gen, e := stringEntry(record, field, obj, "generation"); len(e) > 0 {
		errs = append(errs, e...)
	} else {
		errs = append(errs, checkEnum(record, field+".generation", gen, enumStrings(domain.Generations))...)
	}
	if _, e := stringEntry(record, field, obj, "note"); len(e) > 0 {
		errs = append(errs, e...)
	}
	return errs
}

func validateWarning(record, field string, v interface{}) []Error {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return []Error{{Record: record, Field: field, Message: fmt.Sprintf("expected an object, got %T", v)}}
	}

	var errs []Error
	if _, e := stringEntry(record, field, obj, "title"); len(e) > 0 {
		errs = append(errs, e...)
	}
	if _, e := stringEntry(record, field, obj, "description"); len(e) > 0 {
		errs = append(errs, e...)
	}
	if sev, e := stringEntry(record, field, obj, "severity"); len(e) > 0 {
		errs = append(errs, e...)
	} else {
		errs = append(errs, checkEnum(record, field+".severity", sev, enumStrings(domain.RiskLevels))...)
	}
	return errs
}

// enumStrings converts a typed enum slice to plain strings for messages.
func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
