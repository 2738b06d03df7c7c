// Package validation checks hand-authored content records against the
// emoji/combo field schemas. Records arrive as untyped JSON (maps), so
// every shape rule is enforced at runtime, not by the type system.
package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Error is one validation failure, scoped to a record and field.
type Error struct {
	Record  string `json:"record"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e Error) String() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Record, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Record, e.Field, e.Message)
}

// Result aggregates a corpus-wide validation run.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []Error  `json:"errors"`
	Warnings []string `json:"warnings"`
}

// RawRecord is one parsed-but-unvalidated content file.
type RawRecord struct {
	// ID identifies the record in error messages: the slug when present,
	// otherwise the file name.
	ID     string
	Fields map[string]interface{}
}

// ValidateAll runs per-record validation over both corpora plus the
// corpus-level duplicate-slug and cross-reference checks. One bad record
// never stops validation of the rest.
func ValidateAll(emojis, combos []RawRecord) Result {
	var errs []Error

	for _, r := range emojis {
		errs = append(errs, ValidateEmojiRecord(r)...)
	}
	for _, r := range combos {
		errs = append(errs, ValidateComboRecord(r)...)
	}

	errs = append(errs, CheckDuplicateSlugs("emoji", slugsOf(emojis))...)
	errs = append(errs, CheckDuplicateSlugs("combo", slugsOf(combos))...)
	errs = append(errs, CheckCrossReferences(emojis, combos)...)

	return Result{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: []string{}, // reserved for non-fatal advisories
	}
}

// RecordID returns the identifier to use for a record: its slug if it has
// a usable one, otherwise the fallback (typically the file name).
func RecordID(fields map[string]interface{}, fallback string) string {
	if s, ok := fields["slug"].(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// requireFields reports every field in required that is missing or null.
func requireFields(r RawRecord, required []string) []Error {
	var errs []Error
	for _, f := range required {
		v, ok := r.Fields[f]
		if !ok || v == nil {
			errs = append(errs, Error{Record: r.ID, Field: f, Message: "required field is missing"})
		}
	}
	return errs
}

// checkStrings reports every listed field that is present but not a
// non-blank string.
func checkStrings(r RawRecord, fields []string) []Error {
	var errs []Error
	for _, f := range fields {
		v, ok := r.Fields[f]
		if !ok || v == nil {
			continue // presence is requireFields' concern
		}
		s, isStr := v.(string)
		if !isStr {
			errs = append(errs, Error{Record: r.ID, Field: f, Message: fmt.Sprintf("expected a string, got %T", v)})
			continue
		}
		if strings.TrimSpace(s) == "" {
			errs = append(errs, Error{Record: r.ID, Field: f, Message: "must not be empty or whitespace-only"})
		}
	}
	return errs
}

// checkArrays reports every listed field that is present but not an array.
// A string or object here is a content error, not just a type mismatch.
func checkArrays(r RawRecord, fields []string) []Error {
	var errs []Error
	for _, f := range fields {
		v, ok := r.Fields[f]
		if !ok || v == nil {
			continue
		}
		if _, isArr := v.([]interface{}); !isArr {
			errs = append(errs, Error{Record: r.ID, Field: f, Message: fmt.Sprintf("expected an array, got %T", v)})
		}
	}
	return errs
}

// arrayField returns the field as a slice if it is one, else nil.
func arrayField(r RawRecord, field string) []interface{} {
	arr, _ := r.Fields[field].([]interface{})
	return arr
}

// checkEnum reports an enum value outside its allowed set. The message
// names the offending value and the full allowed set.
func checkEnum(record, field, value string, allowed []string) []Error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return []Error{{
		Record:  record,
		Field:   field,
		Message: fmt.Sprintf("invalid value %q (allowed: %s)", value, strings.Join(allowed, ", ")),
	}}
}

// stringEntry pulls a string out of a nested object, reporting a missing
// or blank value as an error.
func stringEntry(record, field string, obj map[string]interface{}, key string) (string, []Error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", []Error{{Record: record, Field: field + "." + key, Message: "required field is missing"}}
	}
	s, isStr := v.(string)
	if !isStr {
		return "", []Error{{Record: record, Field: field + "." + key, Message: fmt.Sprintf("expected a string, got %T", v)}}
	}
	if strings.TrimSpace(s) == "" {
		return "", []Error{{Record: record, Field: field + "." + key, Message: "must not be empty or whitespace-only"}}
	}
	return s, nil
}

func slugsOf(records []RawRecord) []string {
	slugs := make([]string, 0, len(records))
	for _, r := range records {
		if s, ok := r.Fields["slug"].(string); ok && strings.TrimSpace(s) != "" {
			slugs = append(slugs, s)
		}
	}
	return slugs
}

// CheckDuplicateSlugs reports each duplicated slug once, with its total
// occurrence count.
func CheckDuplicateSlugs(corpus string, slugs []string) []Error {
	counts := make(map[string]int, len(slugs))
	for _, s := range slugs {
		counts[s]++
	}

	var dups []string
	for s, n := range counts {
		if n > 1 {
			dups = append(dups, s)
		}
	}
	sort.Strings(dups)

	errs := make([]Error, 0, len(dups))
	for _, s := range dups {
		errs = append(errs, Error{
			Record:  s,
			Field:   "slug",
			Message: fmt.Sprintf("duplicate slug in %s corpus: %q appears %d times", corpus, s, counts[s]),
		})
	}
	return errs
}

// CheckCrossReferences reports every related-combo / component-emoji
// reference that points to a slug absent from the sibling corpus. One
// error per dangling reference.
func CheckCrossReferences(emojis, combos []RawRecord) []Error {
	emojiSlugs := toSet(slugsOf(emojis))
	comboSlugs := toSet(slugsOf(combos))

	var errs []Error

	for _, r := range emojis {
		id := RecordID(r.Fields, r.ID)
		for i, v := range arrayField(r, "relatedCombos") {
			ref, ok := v.(string)
			if !ok {
				continue // typing reported by per-record validation
			}
			if !comboSlugs[ref] {
				errs = append(errs, Error{
					Record:  id,
					Field:   fmt.Sprintf("relatedCombos[%d]", i),
					Message: fmt.Sprintf("references unknown combo %q", ref),
				})
			}
		}
	}

	for _, r := range combos {
		id := RecordID(r.Fields, r.ID)
		for i, v := range arrayField(r, "emojis") {
			ref, ok := v.(string)
			if !ok {
				continue
			}
			if !emojiSlugs[ref] {
				errs = append(errs, Error{
					Record:  id,
					Field:   fmt.Sprintf("emojis[%d]", i),
					Message: fmt.Sprintf("references unknown emoji %q", ref),
				})
			}
		}
		for i, v := range arrayField(r, "relatedCombos") {
			ref, ok := v.(string)
			if !ok {
				continue
			}
			if !comboSlugs[ref] {
				errs = append(errs, Error{
					Record:  id,
					Field:   fmt.Sprintf("relatedCombos[%d]", i),
					Message: fmt.Sprintf("references unknown combo %q", ref),
				})
			}
		}
	}

	return errs
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
