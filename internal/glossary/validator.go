// Package glossary validates untrusted glossary data into term records.
//
// Glossary files are user-supplied JSON, so every shape assumption is
// checked at runtime. Validation is partial: one bad entry never blocks
// the rest, and every dropped entry is reported with a path-like field
// identifier so the author can find it.
package glossary

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/glossa-cli/internal/core/domain"
)

// Options configures a validation run.
type Options struct {
	// FailOnError makes Validate return an *domain.InvalidGlossaryError
	// when any error was collected. When false, the result is returned
	// with Valid set accordingly and callers decide how to react.
	FailOnError bool
}

// DefaultOptions fails on error, matching the strict loader path.
func DefaultOptions() Options {
	return Options{FailOnError: true}
}

// Validate checks an arbitrary decoded value purporting to be glossary
// data and produces the largest subset of well-formed term records plus a
// complete list of field-level errors.
//
// Checks run in a fixed order: root shape, then each entry independently
// in index order, then a case-folded duplicate pass over the valid subset.
// Output term order matches input order minus excluded entries.
func Validate(data any, opts Options) (*domain.ValidationResult, error) {
	result := &domain.ValidationResult{}

	rawTerms, ok := checkRoot(data, result)
	if ok {
		inputIndexes := validateTerms(rawTerms, result)
		dedupeTerms(result, inputIndexes)
	}

	result.Valid = len(result.Errors) == 0
	if !result.Valid && opts.FailOnError {
		return result, &domain.InvalidGlossaryError{Errors: result.Errors}
	}
	return result, nil
}

// checkRoot verifies the top-level shape: a non-nil object with a "terms"
// array. On failure it records one root-level error and stops processing.
func checkRoot(data any, result *domain.ValidationResult) ([]any, bool) {
	obj, ok := data.(map[string]any)
	if !ok || obj == nil {
		result.Errors = append(result.Errors, domain.ValidationError{
			Field:   "glossary",
			Message: "glossary data must be an object",
		})
		return nil, false
	}

	rawTerms, present := obj["terms"]
	if !present {
		result.Errors = append(result.Errors, domain.ValidationError{
			Field:   "terms",
			Message: "missing required field",
		})
		return nil, false
	}

	list, ok := rawTerms.([]any)
	if !ok {
		result.Errors = append(result.Errors, domain.ValidationError{
			Field:    "terms",
			Message:  "must be an array",
			Value:    rawTerms,
			HasValue: true,
		})
		return nil, false
	}
	return list, true
}

// validateTerms checks each entry independently. An entry failing any
// required-field check is excluded from the output but does not block
// validation of subsequent entries. Returns the input index of each kept
// record so later passes can report positions in input space.
func validateTerms(rawTerms []any, result *domain.ValidationResult) []int {
	var inputIndexes []int
	for i, raw := range rawTerms {
		field := fmt.Sprintf("terms[%d]", i)

		obj, ok := raw.(map[string]any)
		if !ok || obj == nil {
			result.Errors = append(result.Errors, domain.ValidationError{
				Field:    field,
				Message:  "term entry must be an object",
				Value:    raw,
				HasValue: true,
			})
			continue
		}

		record, ok := validateTerm(field, obj, result)
		if ok {
			result.Glossary.Terms = append(result.Glossary.Terms, record)
			inputIndexes = append(inputIndexes, i)
		}
	}
	return inputIndexes
}

// validateTerm checks one entry's fields. Optional-field violations are
// reported but do not exclude the entry; required-field violations do.
func validateTerm(field string, obj map[string]any, result *domain.ValidationResult) (domain.TermRecord, bool) {
	var record domain.TermRecord
	usable := true

	term, present, ok := requireString(obj, "term")
	if !ok || strings.TrimSpace(term) == "" {
		result.Errors = append(result.Errors, domain.ValidationError{
			Field:    field + ".term",
			Message:  "term must be a non-empty string",
			Value:    obj["term"],
			HasValue: present,
		})
		usable = false
	}
	record.Term = strings.TrimSpace(term)

	definition, present, ok := requireString(obj, "definition")
	if !ok {
		result.Errors = append(result.Errors, domain.ValidationError{
			Field:    field + ".definition",
			Message:  "definition must be a string",
			Value:    obj["definition"],
			HasValue: present,
		})
		usable = false
	}
	record.Definition = definition

	if raw, present := obj["abbreviation"]; present {
		abbr, ok := raw.(string)
		if !ok {
			result.Errors = append(result.Errors, domain.ValidationError{
				Field:    field + ".abbreviation",
				Message:  "abbreviation must be a string",
				Value:    raw,
				HasValue: true,
			})
		} else {
			record.Abbreviation = abbr
		}
	}

	if raw, present := obj["relatedTerms"]; present {
		record.RelatedTerms = validateRelatedTerms(field, raw, result)
	}

	if raw, present := obj["id"]; present {
		id, ok := raw.(string)
		if !ok {
			result.Errors = append(result.Errors, domain.ValidationError{
				Field:    field + ".id",
				Message:  "id must be a string",
				Value:    raw,
				HasValue: true,
			})
		} else {
			record.ID = id
		}
	}

	return record, usable
}

// validateRelatedTerms checks the relatedTerms array element by element.
func validateRelatedTerms(field string, raw any, result *domain.ValidationResult) []string {
	list, ok := raw.([]any)
	if !ok {
		result.Errors = append(result.Errors, domain.ValidationError{
			Field:    field + ".relatedTerms",
			Message:  "relatedTerms must be an array of strings",
			Value:    raw,
			HasValue: true,
		})
		return nil
	}

	var related []string
	for j, item := range list {
		s, ok := item.(string)
		if !ok {
			result.Errors = append(result.Errors, domain.ValidationError{
				Field:    fmt.Sprintf("%s.relatedTerms[%d]", field, j),
				Message:  "related term must be a string",
				Value:    item,
				HasValue: true,
			})
			continue
		}
		related = append(related, s)
	}
	return related
}

// dedupeTerms drops case-folded duplicates from the valid subset. The
// first occurrence wins; each later duplicate is reported with the input
// index it duplicates, even when earlier entries were excluded.
func dedupeTerms(result *domain.ValidationResult, inputIndexes []int) {
	seen := make(map[string]int, len(result.Glossary.Terms))
	unique := result.Glossary.Terms[:0]

	for i, record := range result.Glossary.Terms {
		key := record.Key()
		if first, dup := seen[key]; dup {
			result.Errors = append(result.Errors, domain.ValidationError{
				Field:    fmt.Sprintf("terms[%d].term", inputIndexes[i]),
				Message:  fmt.Sprintf("Duplicate term: already defined at index %d", first),
				Value:    record.Term,
				HasValue: true,
			})
			continue
		}
		seen[key] = inputIndexes[i]
		unique = append(unique, record)
	}
	result.Glossary.Terms = unique
}

// requireString fetches a field that must be present and a string. The
// middle return reports presence so errors only preview values that were
// actually supplied.
func requireString(obj map[string]any, key string) (string, bool, bool) {
	raw, present := obj[key]
	if !present {
		return "", false, false
	}
	s, ok := raw.(string)
	return s, true, ok
}
