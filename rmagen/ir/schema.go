package ir

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate = newValidator()

	identPattern    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	spellingPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*( [a-z_][a-z0-9_]*)*$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("cident", func(fl validator.FieldLevel) bool {
		return identPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("cspelling", func(fl validator.FieldLevel) bool {
		return spellingPattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidationError reports an inconsistency in the axis tables or in the
// names derived from them. These are programming errors, not user input errors.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks a single type entry against its struct tags.
func (t TypeEntry) Validate() error {
	err := validate.Struct(t)
	if err == nil {
		return nil
	}
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		fe := valErrs[0]
		return &ValidationError{
			Code:    "invalid_type_entry",
			Message: fmt.Sprintf("type entry %q: field %s fails %q", t.Spelling, fe.Field(), fe.Tag()),
		}
	}
	return err
}

// Validate checks the axis tables for structural issues.
// Returns all validation errors found (not just the first).
func Validate() []error {
	return validateTables(types[:], Granularities(), Families())
}

func validateTables(entries []TypeEntry, grans []Granularity, fams []OperationFamily) []error {
	var errs []error

	if len(entries) == 0 {
		errs = append(errs, &ValidationError{Code: "empty_table", Message: "type table is empty"})
	}

	shortNames := make(map[string]bool)
	spellings := make(map[string]bool)
	for _, t := range entries {
		if err := t.Validate(); err != nil {
			errs = append(errs, err)
		}
		if shortNames[t.ShortName] {
			errs = append(errs, &ValidationError{
				Code:    "duplicate_short_name",
				Message: "duplicate type short name: " + t.ShortName,
			})
		}
		shortNames[t.ShortName] = true
		if spellings[t.Spelling] {
			errs = append(errs, &ValidationError{
				Code:    "duplicate_spelling",
				Message: "duplicate type spelling: " + t.Spelling,
			})
		}
		spellings[t.Spelling] = true
	}

	tags := make(map[string]bool)
	for _, g := range grans {
		if !g.Valid() {
			errs = append(errs, &ValidationError{
				Code:    "unknown_granularity",
				Message: fmt.Sprintf("unknown granularity %d", int(g)),
			})
			continue
		}
		if tags[g.Tag()] {
			errs = append(errs, &ValidationError{
				Code:    "duplicate_granularity",
				Message: "duplicate granularity tag: " + g.Tag(),
			})
		}
		tags[g.Tag()] = true
	}

	fragments := make(map[string]bool)
	for _, f := range fams {
		if !f.Valid() {
			errs = append(errs, &ValidationError{
				Code:    "unknown_family",
				Message: fmt.Sprintf("unknown operation family %d", int(f)),
			})
			continue
		}
		if fragments[f.Fragment()] {
			errs = append(errs, &ValidationError{
				Code:    "duplicate_family",
				Message: "duplicate family fragment: " + f.Fragment(),
			})
		}
		fragments[f.Fragment()] = true
	}

	return errs
}
