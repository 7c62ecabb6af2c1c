package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/diwise/schema-markup/pkg/schema"
	"github.com/diwise/schema-markup/pkg/schema/decorators"
	schemaerrors "github.com/diwise/schema-markup/pkg/schema/errors"
	"github.com/matryer/is"
)

func TestParseFormat(t *testing.T) {
	is := is.New(t)

	for alias, expected := range map[string]Format{
		"json-ld":             JSONLD,
		"JSONLD":              JSONLD,
		"application/ld+json": JSONLD,
		"microdata":           Microdata,
		" html ":              Microdata,
		"RDFa":                RDFa,
		"rdf-a":               RDFa,
	} {
		f, ok := ParseFormat(alias)
		is.True(ok) // alias should be recognized
		is.Equal(f, expected)
	}

	_, ok := ParseFormat("turtle")
	is.True(!ok)
}

func TestNewReturnsMatchingRenderer(t *testing.T) {
	is := is.New(t)

	for _, info := range Formats() {
		r, err := New(info.Name)
		is.NoErr(err)
		is.Equal(r.FormatName(), string(info.Name))
		is.Equal(r.MimeType(), info.MimeType)
	}
}

func TestNewWithUnknownFormatFails(t *testing.T) {
	is := is.New(t)

	_, err := New(Format("turtle"))
	is.True(errors.Is(err, schemaerrors.ErrUnknownFormat))

	_, err = Render(Format(""), person("Ada"))
	is.True(errors.Is(err, schemaerrors.ErrUnknownFormat))
}

func TestGetFormatInfo(t *testing.T) {
	is := is.New(t)

	info, ok := GetFormatInfo(JSONLD)
	is.True(ok)
	is.Equal(info.MimeType, "application/ld+json")
	is.Equal(info.Extension, ".jsonld")

	_, ok = GetFormatInfo(Format("nquads"))
	is.True(!ok)
}

func TestRenderingIsDeterministic(t *testing.T) {
	is := is.New(t)

	e := article()

	for _, info := range Formats() {
		first, err := Render(info.Name, e)
		is.NoErr(err)

		second, err := Render(info.Name, e)
		is.NoErr(err)

		is.Equal(first, second) // rendering twice should give identical output
	}
}

func TestRenderingKeepsPropertyOrder(t *testing.T) {
	is := is.New(t)

	e := schema.Must(schema.New("Thing",
		decorators.Text("c", "first"),
		decorators.Text("a", "second"),
		decorators.Text("b", "third"),
	))

	for _, info := range Formats() {
		out, err := Render(info.Name, e)
		is.NoErr(err)

		first := strings.Index(out, "first")
		second := strings.Index(out, "second")
		third := strings.Index(out, "third")

		is.True(first >= 0)
		is.True(first < second)
		is.True(second < third)
	}
}

func TestRenderingDoesNotModifyTheEntity(t *testing.T) {
	is := is.New(t)

	e := article()
	names := e.Names()

	for _, info := range Formats() {
		_, err := Render(info.Name, e)
		is.NoErr(err)
	}

	is.Equal(e.Names(), names)
}

func TestRenderingTooDeepNestingFails(t *testing.T) {
	is := is.New(t)

	e := nested(3)

	for _, info := range Formats() {
		out, err := Render(info.Name, e, WithMaxDepth(2))
		is.True(errors.Is(err, schemaerrors.ErrDepthExceeded))
		is.Equal(schemaerrors.PathOf(err), "Thing.child.child.child")
		is.Equal(out, "") // no partial output on failure

		_, err = Render(info.Name, e, WithMaxDepth(3))
		is.NoErr(err)

		_, err = Render(info.Name, nested(200), WithMaxDepth(0))
		is.NoErr(err) // a zero depth should disable the guard
	}
}

func TestRenderingUnencodableValueReportsPath(t *testing.T) {
	is := is.New(t)

	broken := schema.Must(schema.New("Person", decorators.Opaque("name", make(chan int))))
	e := schema.Must(schema.New("Article",
		decorators.Headline("Hello"),
		decorators.Author(person("Ada"), broken),
	))

	for _, info := range Formats() {
		out, err := Render(info.Name, e)
		is.True(errors.Is(err, schemaerrors.ErrUnencodableValue))
		is.Equal(schemaerrors.PathOf(err), "Article.author[1].name")
		is.Equal(out, "")
	}
}

func TestRenderingNilEntityFails(t *testing.T) {
	is := is.New(t)

	for _, info := range Formats() {
		_, err := Render(info.Name, nil)
		is.True(errors.Is(err, schemaerrors.ErrMalformedEntity))
	}
}

func TestRenderingNilNestedEntityFails(t *testing.T) {
	is := is.New(t)

	var missing *schema.Entity
	e := schema.Must(schema.New("Article", decorators.Entity("author", missing)))

	for _, info := range Formats() {
		_, err := Render(info.Name, e)
		is.True(errors.Is(err, schemaerrors.ErrMalformedEntity))
		is.Equal(schemaerrors.PathOf(err), "Article.author")
	}
}

func TestScalarText(t *testing.T) {
	is := is.New(t)

	for _, tc := range []struct {
		value    schema.Value
		expected string
	}{
		{schema.Text("text"), "text"},
		{schema.Integer(-42), "-42"},
		{schema.Number(4.5), "4.5"},
		{schema.Number(1e21), "1000000000000000000000"},
		{schema.Boolean(false), "false"},
		{schema.Opaque{V: nil}, "null"},
		{schema.Opaque{V: "plain"}, "plain"},
		{schema.Opaque{V: stringer{}}, "stringer"},
		{schema.Opaque{V: map[string]any{"a": 1}}, `{"a":1}`},
		{schema.Opaque{V: []int{1, 2}}, `[1,2]`},
	} {
		text, err := scalarText(tc.value, "Thing.p")
		is.NoErr(err)
		is.Equal(text, tc.expected)
	}
}

type stringer struct{}

func (stringer) String() string { return "stringer" }

func person(name string) *schema.Entity {
	return schema.Must(schema.New("Person", decorators.Name(name)))
}

func article() *schema.Entity {
	return schema.Must(schema.New("Article",
		decorators.Headline("Hello"),
		decorators.Integer("wordCount", 1200),
		decorators.Number("rating", 4.5),
		decorators.Boolean("isAccessibleForFree", true),
		decorators.Author(person("Ada"), person("Grace")),
		decorators.TextList("keywords", []string{"a", "b"}),
	))
}

// nested returns a Thing with the given number of nested child levels
func nested(levels int) *schema.Entity {
	e := schema.Must(schema.New("Thing", decorators.Name("leaf")))

	for i := 0; i < levels; i++ {
		e = schema.Must(schema.New("Thing", decorators.Entity("child", e)))
	}

	return e
}
