package linkeddata

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/diwise/schema-markup/pkg/schema"
	"github.com/diwise/schema-markup/pkg/schema/decorators"
	schemaerrors "github.com/diwise/schema-markup/pkg/schema/errors"
	"github.com/matryer/is"
	"github.com/piprate/json-gold/ld"
)

const rdfType string = "<http://www.w3.org/1999/02/22-rdf-syntax-ns#type>"

func TestToNQuads(t *testing.T) {
	is := is.New(t)

	nquads, err := NewExporter().ToNQuads(person("Ada"))
	is.NoErr(err)

	is.True(strings.Contains(nquads, rdfType+" <https://schema.org/Person> ."))
	is.True(strings.Contains(nquads, `<https://schema.org/name> "Ada" .`))
}

func TestToNQuadsWithNestedEntities(t *testing.T) {
	is := is.New(t)

	e := schema.Must(schema.New("Article",
		decorators.Headline("Hello"),
		decorators.Author(person("Ada"), person("Grace")),
	))

	nquads, err := NewExporter().ToNQuads(e)
	is.NoErr(err)

	is.True(strings.Contains(nquads, rdfType+" <https://schema.org/Article> ."))
	is.Equal(strings.Count(nquads, "<https://schema.org/author>"), 2)
	is.True(strings.Contains(nquads, `<https://schema.org/name> "Grace" .`))
}

func TestCanonicalizeIsIndependentOfPropertyOrder(t *testing.T) {
	is := is.New(t)

	first := schema.Must(schema.New("Person", decorators.Name("Ada"), decorators.Email("ada@example.org")))
	second := schema.Must(schema.New("Person", decorators.Email("ada@example.org"), decorators.Name("Ada")))

	x := NewExporter()

	a, err := x.Canonicalize(first)
	is.NoErr(err)

	b, err := x.Canonicalize(second)
	is.NoErr(err)

	is.Equal(a, b)
	is.True(strings.Contains(a, "_:c14n0"))
}

func TestExpand(t *testing.T) {
	is := is.New(t)

	expanded, err := NewExporter().Expand(person("Ada"))
	is.NoErr(err)

	var nodes []map[string]any
	is.NoErr(json.Unmarshal([]byte(expanded), &nodes))
	is.Equal(len(nodes), 1)
	is.Equal(nodes[0]["@type"], []any{"https://schema.org/Person"})

	names := nodes[0]["https://schema.org/name"].([]any)
	is.Equal(names[0].(map[string]any)["@value"], "Ada")
}

func TestExporterUsesCustomDocumentLoader(t *testing.T) {
	is := is.New(t)

	loader := &countingLoader{inner: VocabularyLoader{}}

	_, err := NewExporter(WithDocumentLoader(loader)).ToNQuads(person("Ada"))
	is.NoErr(err)
	is.True(loader.calls > 0)
}

func TestExporterReportsRenderErrors(t *testing.T) {
	is := is.New(t)

	e := schema.Must(schema.New("Thing", decorators.Entity("child", person("Ada"))))

	_, err := NewExporter(WithMaxDepth(0)).ToNQuads(e)
	is.NoErr(err)

	_, err = NewExporter(WithMaxDepth(-1)).ToNQuads(e)
	is.NoErr(err) // negative limits disable the guard as well

	broken := schema.Must(schema.New("Thing", decorators.Opaque("x", make(chan int))))
	_, err = NewExporter().ToNQuads(broken)
	is.True(errors.Is(err, schemaerrors.ErrUnencodableValue))
}

func TestVocabularyLoader(t *testing.T) {
	is := is.New(t)

	doc, err := VocabularyLoader{}.LoadDocument("https://schema.org/")
	is.NoErr(err)

	ctx := doc.Document.(map[string]any)["@context"].(map[string]any)
	is.Equal(ctx["@vocab"], "https://schema.org/")

	_, err = VocabularyLoader{}.LoadDocument("")
	is.True(err != nil)
}

type countingLoader struct {
	inner ld.DocumentLoader
	calls int
}

func (l *countingLoader) LoadDocument(u string) (*ld.RemoteDocument, error) {
	l.calls++
	return l.inner.LoadDocument(u)
}

func person(name string) *schema.Entity {
	return schema.Must(schema.New("Person", decorators.Name(name)))
}
