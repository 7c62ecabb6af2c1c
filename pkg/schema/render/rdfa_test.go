package render

import (
	"strings"
	"testing"

	"github.com/diwise/schema-markup/pkg/schema"
	"github.com/diwise/schema-markup/pkg/schema/decorators"
	"github.com/matryer/is"
	"golang.org/x/net/html"
)

func TestRDFaRendersPerson(t *testing.T) {
	is := is.New(t)

	e := schema.Must(schema.New("Person", decorators.Name("Ada <Lovelace>")))

	out, err := NewRDFaRenderer().Render(e)
	is.NoErr(err)
	is.Equal(out, "<div vocab=\"https://schema.org/\" typeof=\"Person\">\n  <span property=\"name\">Ada &lt;Lovelace&gt;</span>\n</div>")
}

func TestRDFaRendersEmptyEntity(t *testing.T) {
	is := is.New(t)

	e := schema.Must(schema.New("Thing", schema.Context("https://example.org/")))

	out, err := NewRDFaRenderer().Render(e)
	is.NoErr(err)
	is.Equal(out, "<div vocab=\"https://example.org/\" typeof=\"Thing\">\n</div>")
}

func TestRDFaExpandsSequencesAndNests(t *testing.T) {
	is := is.New(t)

	e := schema.Must(schema.New("Article",
		decorators.Headline("Hello"),
		decorators.Author(person("Ada"), person("Grace")),
	))

	out, err := NewRDFaRenderer().Render(e)
	is.NoErr(err)
	is.Equal(strings.Count(out, `property="author"`), 2)
	is.Equal(out, `<div vocab="https://schema.org/" typeof="Article">
  <span property="headline">Hello</span>
  <div property="author">
    <div vocab="https://schema.org/" typeof="Person">
      <span property="name">Ada</span>
    </div>
  </div>
  <div property="author">
    <div vocab="https://schema.org/" typeof="Person">
      <span property="name">Grace</span>
    </div>
  </div>
</div>`)
}

func TestRDFaEscapingSurvivesReparsing(t *testing.T) {
	is := is.New(t)

	const tricky string = `a < b && "c" > d`

	e := schema.Must(schema.New("Thing", decorators.Description(tricky)))

	out, err := NewRDFaRenderer().Render(e)
	is.NoErr(err)

	doc, err := html.Parse(strings.NewReader(out))
	is.NoErr(err)
	is.Equal(textOf(doc, "property", "description"), tricky)
}

func TestRDFaAndMicrodataShareStructure(t *testing.T) {
	is := is.New(t)

	e := article()

	microdata, err := NewMicrodataRenderer().Render(e)
	is.NoErr(err)

	rdfa, err := NewRDFaRenderer().Render(e)
	is.NoErr(err)

	is.Equal(strings.Count(microdata, "\n"), strings.Count(rdfa, "\n"))
	is.Equal(strings.Count(microdata, "itemprop="), strings.Count(rdfa, "property="))
}
