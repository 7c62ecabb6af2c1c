package schema

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	schemaerrors "github.com/diwise/schema-markup/pkg/schema/errors"
	"github.com/matryer/is"
)

func TestNewFromJSON(t *testing.T) {
	is := is.New(t)

	e, err := NewFromJSON([]byte(articleJSON))
	is.NoErr(err)

	is.Equal(e.Type(), "Article")
	is.Equal(e.Context(), "https://schema.org")
	is.Equal(e.Names(), []string{"headline", "wordCount", "rating", "isAccessibleForFree", "author", "keywords", "extra"})

	wordCount, _ := e.Get("wordCount")
	is.Equal(wordCount, Integer(1200))

	rating, _ := e.Get("rating")
	is.Equal(rating, Number(4.5))

	free, _ := e.Get("isAccessibleForFree")
	is.Equal(free, Boolean(true))

	keywords, _ := e.Get("keywords")
	is.Equal(keywords, Sequence{Text("a"), Text("b")})

	extra, _ := e.Get("extra")
	is.Equal(extra, Opaque{V: json.RawMessage(`{"z":1,"y":[true]}`)})

	authors, _ := e.Get("author")
	seq, ok := authors.(Sequence)
	is.True(ok)
	is.Equal(len(seq), 2)

	second, ok := seq[1].(*Entity)
	is.True(ok)
	is.Equal(second.Type(), "Person")
	is.Equal(second.Context(), "https://example.org") // nested context should override
	first := seq[0].(*Entity)
	is.Equal(first.Context(), "https://schema.org") // nested context should be inherited
}

func TestNewFromJSONDropsNullProperties(t *testing.T) {
	is := is.New(t)

	e, err := NewFromJSON([]byte(`{"@type":"Thing","name":null,"url":"https://example.org"}`))
	is.NoErr(err)
	is.Equal(e.Names(), []string{"url"})
}

func TestNewFromJSONUnescapesStringsAndKeys(t *testing.T) {
	is := is.New(t)

	e, err := NewFromJSON([]byte(`{"@type":"Thing","name":"A & B \"quoted\""}`))
	is.NoErr(err)

	v, ok := e.Get("name")
	is.True(ok)
	is.Equal(v, Text(`A & B "quoted"`))
}

func TestNewFromJSONRequiresType(t *testing.T) {
	is := is.New(t)

	_, err := NewFromJSON([]byte(`{"name":"nameless"}`))
	is.True(errors.Is(err, schemaerrors.ErrMalformedEntity))
}

func TestNewFromJSONRequiresAnObject(t *testing.T) {
	is := is.New(t)

	_, err := NewFromJSON([]byte(`["not","an","entity"]`))
	is.True(errors.Is(err, schemaerrors.ErrBadRequest))
}

func TestNewFromJSONRejectsNonStringContext(t *testing.T) {
	is := is.New(t)

	_, err := NewFromJSON([]byte(`{"@context":{"@vocab":"https://schema.org/"},"@type":"Thing"}`))
	is.True(errors.Is(err, schemaerrors.ErrMalformedEntity))
}

func TestNewFromJSONReportsNestedPath(t *testing.T) {
	is := is.New(t)

	_, err := NewFromJSON([]byte(`{"@type":"Article","author":[{"@type":"Person"},{"@type":""}]}`))
	is.True(errors.Is(err, schemaerrors.ErrMalformedEntity))
	is.Equal(schemaerrors.PathOf(err), "Article.author[1]")
}

func TestNewFromJSONRejectsTrailingData(t *testing.T) {
	is := is.New(t)

	_, err := NewFromJSON([]byte(`{"@type":"Person","name":"Ada"} {"not":"json"`))
	is.True(errors.Is(err, schemaerrors.ErrBadRequest))

	_, err = NewFromJSON([]byte("{\"@type\":\"Person\",\"name\":\"Ada\"}\n\t "))
	is.NoErr(err) // trailing whitespace is allowed
}

func TestNewFromJSONStopsAtMaxDepth(t *testing.T) {
	is := is.New(t)

	_, err := NewFromJSON([]byte(nestedEntities(100)))
	is.True(errors.Is(err, schemaerrors.ErrDepthExceeded))
	is.True(strings.HasPrefix(schemaerrors.PathOf(err), "T.c.c.c"))

	e, err := NewFromJSON([]byte(nestedEntities(DefaultMaxDepth + 1)))
	is.NoErr(err) // the root and DefaultMaxDepth nested levels are allowed
	is.Equal(e.Type(), "T")

	_, err = NewFromJSON([]byte(nestedEntities(4)), WithMaxDepth(2))
	is.True(errors.Is(err, schemaerrors.ErrDepthExceeded))
	is.Equal(schemaerrors.PathOf(err), "T.c.c.c")

	_, err = NewFromJSON([]byte(nestedEntities(200)), WithMaxDepth(0))
	is.NoErr(err)
}

func TestNewFromJSONStopsAtMaxDepthForNestedArrays(t *testing.T) {
	is := is.New(t)

	doc := `{"@type":"T","c":` + strings.Repeat("[", 100) + "1" + strings.Repeat("]", 100) + "}"

	_, err := NewFromJSON([]byte(doc))
	is.True(errors.Is(err, schemaerrors.ErrDepthExceeded))

	_, err = NewFromJSON([]byte(doc), WithMaxDepth(100))
	is.NoErr(err)
}

func TestNewFromJSONRejectsExcessiveNesting(t *testing.T) {
	is := is.New(t)

	_, err := NewFromJSON([]byte(nestedEntities(20000)), WithMaxDepth(0))
	is.True(errors.Is(err, schemaerrors.ErrBadRequest))
}

func nestedEntities(levels int) string {
	return strings.Repeat(`{"@type":"T","c":`, levels) + "1" + strings.Repeat("}", levels)
}

const articleJSON string = `{
	"@context": "https://schema.org",
	"@type": "Article",
	"@id": "urn:article:1",
	"headline": "Structured data",
	"wordCount": 1200,
	"rating": 4.5,
	"isAccessibleForFree": true,
	"author": [
		{"@type": "Person", "name": "Ada"},
		{"@context": "https://example.org", "@type": "Person", "name": "Grace"}
	],
	"keywords": ["a", "b"],
	"extra": {"z": 1, "y": [true]}
}`
