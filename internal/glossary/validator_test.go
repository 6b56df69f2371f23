package glossary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/glossa-cli/internal/core/domain"
)

// decode mirrors the loader path: glossary data arrives as generic JSON.
func decode(t *testing.T, raw string) any {
	t.Helper()
	var data any
	require.NoError(t, json.Unmarshal([]byte(raw), &data))
	return data
}

func TestValidate_Valid(t *testing.T) {
	data := decode(t, `{"terms": [
		{"term": "API", "definition": "Application Programming Interface"},
		{"term": "SDK", "definition": "", "abbreviation": "SDK", "relatedTerms": ["API"], "id": "sdk-1"}
	]}`)

	result, err := Validate(data, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)

	require.Len(t, result.Glossary.Terms, 2)
	assert.Equal(t, "API", result.Glossary.Terms[0].Term)
	assert.Equal(t, "SDK", result.Glossary.Terms[1].Term)
	assert.Equal(t, []string{"API"}, result.Glossary.Terms[1].RelatedTerms)
	assert.Equal(t, "sdk-1", result.Glossary.Terms[1].ID)
}

func TestValidate_RootErrors(t *testing.T) {
	t.Run("nil data", func(t *testing.T) {
		result, err := Validate(nil, Options{})
		require.NoError(t, err)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "glossary", result.Errors[0].Field)
		assert.Empty(t, result.Glossary.Terms)
	})

	t.Run("not an object", func(t *testing.T) {
		result, _ := Validate(decode(t, `[1, 2]`), Options{})
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "glossary", result.Errors[0].Field)
	})

	t.Run("missing terms", func(t *testing.T) {
		result, _ := Validate(decode(t, `{"title": "x"}`), Options{})
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "terms", result.Errors[0].Field)
		assert.Equal(t, "missing required field", result.Errors[0].Message)
	})

	t.Run("terms not an array", func(t *testing.T) {
		result, _ := Validate(decode(t, `{"terms": "nope"}`), Options{})
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "terms", result.Errors[0].Field)
		assert.Empty(t, result.Glossary.Terms)
	})
}

func TestValidate_PartialValidity(t *testing.T) {
	data := decode(t, `{"terms": [
		{"term": "API", "definition": "ok"},
		{"term": "", "definition": "bad"},
		{"term": "SDK", "definition": "ok"}
	]}`)

	result, err := Validate(data, Options{})
	require.NoError(t, err)
	assert.False(t, result.Valid)

	require.Len(t, result.Glossary.Terms, 2)
	assert.Equal(t, "API", result.Glossary.Terms[0].Term)
	assert.Equal(t, "SDK", result.Glossary.Terms[1].Term)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "terms[1].term", result.Errors[0].Field)
}

func TestValidate_FieldTypes(t *testing.T) {
	data := decode(t, `{"terms": [
		{"term": "API", "definition": 42},
		{"term": "SDK", "definition": "ok", "abbreviation": 1},
		{"term": "CLI", "definition": "ok", "relatedTerms": ["API", 7, "SDK"]},
		{"term": "TTL", "definition": "ok", "id": true},
		"not an object"
	]}`)

	result, err := Validate(data, Options{})
	require.NoError(t, err)
	assert.False(t, result.Valid)

	fields := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{
		"terms[0].definition",
		"terms[1].abbreviation",
		"terms[2].relatedTerms[1]",
		"terms[3].id",
		"terms[4]",
	}, fields)

	// Required-field failure excludes the entry; optional-field failures
	// keep it with the bad field dropped.
	require.Len(t, result.Glossary.Terms, 3)
	assert.Equal(t, "SDK", result.Glossary.Terms[0].Term)
	assert.Empty(t, result.Glossary.Terms[0].Abbreviation)
	assert.Equal(t, []string{"API", "SDK"}, result.Glossary.Terms[1].RelatedTerms)
	assert.Empty(t, result.Glossary.Terms[2].ID)
}

func TestValidate_DuplicateTerms(t *testing.T) {
	t.Run("case-folded duplicates reported, first wins", func(t *testing.T) {
		data := decode(t, `{"terms": [
			{"term": "API", "definition": "x"},
			{"term": "api", "definition": "y"}
		]}`)

		result, err := Validate(data, Options{})
		require.NoError(t, err)
		assert.False(t, result.Valid)

		require.Len(t, result.Errors, 1)
		assert.Equal(t, "terms[1].term", result.Errors[0].Field)
		assert.Contains(t, result.Errors[0].Message, "Duplicate term")
		assert.Contains(t, result.Errors[0].Message, "index 0")

		require.Len(t, result.Glossary.Terms, 1)
		assert.Equal(t, "API", result.Glossary.Terms[0].Term)
	})

	t.Run("indices stay in input space after exclusions", func(t *testing.T) {
		data := decode(t, `{"terms": [
			{"term": "", "definition": "bad"},
			{"term": "API", "definition": "x"},
			{"term": "api", "definition": "y"}
		]}`)

		result, err := Validate(data, Options{})
		require.NoError(t, err)
		assert.False(t, result.Valid)

		// The excluded entry at index 0 must not shift the duplicate
		// diagnostics: the duplicate sits at input index 2 and repeats
		// the entry at input index 1.
		require.Len(t, result.Errors, 2)
		assert.Equal(t, "terms[0].term", result.Errors[0].Field)
		assert.Equal(t, "terms[2].term", result.Errors[1].Field)
		assert.Contains(t, result.Errors[1].Message, "already defined at index 1")

		require.Len(t, result.Glossary.Terms, 1)
		assert.Equal(t, "API", result.Glossary.Terms[0].Term)
	})
}

func TestValidate_FailOnError(t *testing.T) {
	data := decode(t, `{"terms": [{"term": "", "definition": "bad"}]}`)

	result, err := Validate(data, DefaultOptions())
	require.Error(t, err)

	var agg *domain.InvalidGlossaryError
	require.ErrorAs(t, err, &agg)
	require.Len(t, agg.Errors, 1)
	assert.Contains(t, agg.Error(), "1 error(s)")
	assert.Contains(t, agg.Error(), "terms[0].term")

	// The result still carries the same error list for callers that
	// inspect it.
	assert.Equal(t, agg.Errors, result.Errors)
}

func TestValidate_TrimsTerm(t *testing.T) {
	data := decode(t, `{"terms": [{"term": "  REST  ", "definition": "x"}]}`)

	result, err := Validate(data, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "REST", result.Glossary.Terms[0].Term)
}
