package draft

import (
	"strings"
	"unicode/utf8"
)

// Field names a draft field a validation rule applies to.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldEntries     Field = "entries"
)

// ValidationError is one violated submission rule.
type ValidationError struct {
	Field   Field
	Message string
}

func (v ValidationError) Error() string {
	return string(v.Field) + ": " + v.Message
}

// ValidateForSubmit checks every submission rule and returns all violations
// in source order: title, description, minimum entries, maximum entries.
// An empty slice means the draft is ready to submit.
//
// Character limits count runes, not bytes, so multibyte titles are not
// penalized.
func (d *Draft) ValidateForSubmit() []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, ValidationError{FieldTitle, "title is required"})
	} else if utf8.RuneCountInString(d.Title) > MaxTitleLen {
		errs = append(errs, ValidationError{FieldTitle, "title cannot exceed 20 characters"})
	}

	if utf8.RuneCountInString(d.Description) > MaxDescriptionLen {
		errs = append(errs, ValidationError{FieldDescription, "description cannot exceed 200 characters"})
	}

	if len(d.entries) == 0 {
		errs = append(errs, ValidationError{FieldEntries, "add at least one work"})
	} else if len(d.entries) > MaxEntries {
		errs = append(errs, ValidationError{FieldEntries, "a collection can hold at most 10 works"})
	}

	return errs
}
