package schemaorg

import (
	"strings"
	"testing"
	"time"

	"github.com/diwise/schema-markup/pkg/schema"
	"github.com/diwise/schema-markup/pkg/schema/decorators"
	"github.com/diwise/schema-markup/pkg/schema/render"
	"github.com/matryer/is"
)

func TestNewArticle(t *testing.T) {
	is := is.New(t)

	ada, err := NewPerson("Ada Lovelace")
	is.NoErr(err)

	published := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	a, err := NewArticle("Notes", published, []*schema.Entity{ada}, decorators.Integer("wordCount", 1200))
	is.NoErr(err)
	is.Equal(a.Type(), ArticleTypeName)
	is.Equal(a.Names(), []string{"headline", "datePublished", "author", "wordCount"})

	out, err := render.Render(render.JSONLD, a)
	is.NoErr(err)
	is.Equal(out, `{"@context":"https://schema.org","@type":"Article","headline":"Notes","datePublished":"2024-03-01T12:00:00Z",`+
		`"author":{"@type":"Person","name":"Ada Lovelace"},"wordCount":1200}`)
}

func TestNewArticleTruncatesHeadline(t *testing.T) {
	is := is.New(t)

	ada, _ := NewPerson("Ada")
	a, err := NewArticle(strings.Repeat("å", 200), time.Time{}, []*schema.Entity{ada})
	is.NoErr(err)

	headline, _ := a.Get("headline")
	is.Equal(len([]rune(string(headline.(schema.Text)))), MaxHeadlineLength)

	_, ok := a.Get("datePublished")
	is.True(!ok) // a zero publish date should be left out
}

func TestNewArticleRequiresAuthor(t *testing.T) {
	is := is.New(t)

	_, err := NewArticle("Notes", time.Now(), nil)
	is.True(err != nil)
}

func TestNewPersonRequiresName(t *testing.T) {
	is := is.New(t)

	_, err := NewPerson(" ")
	is.True(err != nil)
}

func TestNewOrganization(t *testing.T) {
	is := is.New(t)

	o, err := NewOrganization("ACME", "https://acme.example", decorators.SameAs("https://example.org/acme"))
	is.NoErr(err)
	is.Equal(o.Names(), []string{"name", "url", "sameAs"})
}

func TestNewPlace(t *testing.T) {
	is := is.New(t)

	address, err := NewPostalAddress("Storgatan 1", "85230", "Sundsvall", "SE")
	is.NoErr(err)

	geo, err := NewGeoCoordinates(62.39, 17.30)
	is.NoErr(err)

	p, err := NewPlace("Hartungviken", address, geo)
	is.NoErr(err)
	is.Equal(p.Names(), []string{"name", "address", "geo"})

	out, err := render.Render(render.Microdata, p)
	is.NoErr(err)
	is.True(strings.Contains(out, `<span itemprop="latitude">62.39</span>`))
	is.True(strings.Contains(out, `itemtype="https://schema.org/PostalAddress"`))
}

func TestNewPostalAddressRequiresAProperty(t *testing.T) {
	is := is.New(t)

	_, err := NewPostalAddress("", "", "", "")
	is.True(err != nil)
}

func TestNewGeoCoordinatesChecksRange(t *testing.T) {
	is := is.New(t)

	_, err := NewGeoCoordinates(91, 0)
	is.True(err != nil)

	_, err = NewGeoCoordinates(0, -181)
	is.True(err != nil)
}

func TestNewEvent(t *testing.T) {
	is := is.New(t)

	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	_, err := NewEvent("Midsummer", start, start.Add(-time.Hour), nil)
	is.True(err != nil)

	e, err := NewEvent("Midsummer", start, start.Add(time.Hour), nil)
	is.NoErr(err)
	is.Equal(e.Names(), []string{"name", "startDate", "endDate"})
}

func TestNewProduct(t *testing.T) {
	is := is.New(t)

	_, err := NewProduct("Kayak", 100, "kronor")
	is.True(err != nil)

	p, err := NewProduct("Kayak", 9995.5, "SEK")
	is.NoErr(err)

	out, err := render.Render(render.JSONLD, p)
	is.NoErr(err)
	is.Equal(out, `{"@context":"https://schema.org","@type":"Product","name":"Kayak","offers":{"@type":"Offer","price":9995.5,"priceCurrency":"SEK"}}`)
}
