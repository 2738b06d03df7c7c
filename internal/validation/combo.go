package validation

import (
	"fmt"

	"github.com/emojisense/emojisense-backend/internal/domain"
)

var comboRequiredFields = []string{
	"slug", "combo", "emojis", "name", "description", "meaning",
	"examples", "category", "seoTitle", "seoDescription",
}

var comboStringFields = []string{
	"slug", "combo", "name", "description", "meaning", "category",
	"seoTitle", "seoDescription",
}

// relatedCombos and tags are optional on combos but must be arrays when present.
var comboArrayFields = []string{"emojis", "examples", "relatedCombos", "tags"}

// ValidateComboRecord checks one combo record against its schema. An empty
// slice means the record is valid.
func ValidateComboRecord(r RawRecord) []Error {
	var errs []Error
	errs = append(errs, requireFields(r, comboRequiredFields)...)
	errs = append(errs, checkStrings(r, comboStringFields)...)
	errs = append(errs, checkArrays(r, comboArrayFields)...)

	if cat, ok := r.Fields["category"].(string); ok {
		errs = append(errs, checkEnum(r.ID, "category", cat, enumStrings(domain.ComboCategories))...)
	}

	for _, f := range []string{"emojis", "examples", "relatedCombos", "tags"} {
		for i, v := range arrayField(r, f) {
			s, ok := v.(string)
			if !ok {
				errs = append(errs, Error{
					Record:  r.ID,
					Field:   fmt.Sprintf("%s[%d]", f, i),
					Message: fmt.Sprintf("expected a string, got %T", v),
				})
				continue
			}
			if s == "" {
				errs = append(errs, Error{
					Record:  r.ID,
					Field:   fmt.Sprintf("%s[%d]", f, i),
					Message: "must not be empty",
				})
			}
		}
	}

	if v, ok := r.Fields["popularity"]; ok && v != nil {
		if _, isNum := v.(float64); !isNum {
			errs = append(errs, Error{
				Record:  r.ID,
				Field:   "popularity",
				Message: fmt.Sprintf("expected a number, got %T", v),
			})
		}
	}

	// A combo is a combination: fewer than two components is authoring error.
	if emojis := arrayField(r, "emojis"); r.Fields["emojis"] != nil && len(emojis) < 2 {
		if _, isArr := r.Fields["emojis"].([]interface{}); isArr {
			errs = append(errs, Error{
				Record:  r.ID,
				Field:   "emojis",
				Message: "a combo needs at least two component emojis",
			})
		}
	}

	return errs
}
