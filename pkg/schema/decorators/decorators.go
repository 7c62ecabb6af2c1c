package decorators

import (
	"time"

	"github.com/diwise/schema-markup/pkg/schema"
)

func Text(name, value string) schema.EntityDecoratorFunc {
	return schema.P(name, schema.Text(value))
}

func Integer(name string, value int64) schema.EntityDecoratorFunc {
	return schema.P(name, schema.Integer(value))
}

func Number(name string, value float64) schema.EntityDecoratorFunc {
	return schema.P(name, schema.Number(value))
}

func Boolean(name string, value bool) schema.EntityDecoratorFunc {
	return schema.P(name, schema.Boolean(value))
}

func Entity(name string, value *schema.Entity) schema.EntityDecoratorFunc {
	return schema.P(name, value)
}

// Sequence sets a property that will be rendered once per value
func Sequence(name string, values ...schema.Value) schema.EntityDecoratorFunc {
	return schema.P(name, schema.Sequence(values))
}

func TextList(name string, values []string) schema.EntityDecoratorFunc {
	return schema.P(name, schema.ValueOf(values))
}

func Opaque(name string, value any) schema.EntityDecoratorFunc {
	return schema.P(name, schema.Opaque{V: value})
}

func DateTime(name string, value time.Time) schema.EntityDecoratorFunc {
	return Text(name, value.UTC().Format(time.RFC3339))
}

func Date(name string, value time.Time) schema.EntityDecoratorFunc {
	return Text(name, value.Format(time.DateOnly))
}

func Name(value string) schema.EntityDecoratorFunc {
	return Text("name", value)
}

func Description(value string) schema.EntityDecoratorFunc {
	return Text("description", value)
}

func Headline(value string) schema.EntityDecoratorFunc {
	return Text("headline", value)
}

func URL(value string) schema.EntityDecoratorFunc {
	return Text("url", value)
}

func Image(value string) schema.EntityDecoratorFunc {
	return Text("image", value)
}

func Identifier(value string) schema.EntityDecoratorFunc {
	return Text("identifier", value)
}

func Email(value string) schema.EntityDecoratorFunc {
	return Text("email", value)
}

func SameAs(urls ...string) schema.EntityDecoratorFunc {
	return TextList("sameAs", urls)
}

// Author sets one or more authors. A single author is stored as a plain
// entity, more than one as a sequence.
func Author(authors ...*schema.Entity) schema.EntityDecoratorFunc {
	return people("author", authors)
}

func Publisher(publisher *schema.Entity) schema.EntityDecoratorFunc {
	return Entity("publisher", publisher)
}

func Address(address *schema.Entity) schema.EntityDecoratorFunc {
	return Entity("address", address)
}

func Geo(coordinates *schema.Entity) schema.EntityDecoratorFunc {
	return Entity("geo", coordinates)
}

func DatePublished(t time.Time) schema.EntityDecoratorFunc {
	return DateTime("datePublished", t)
}

func DateModified(t time.Time) schema.EntityDecoratorFunc {
	return DateTime("dateModified", t)
}

func people(name string, entities []*schema.Entity) schema.EntityDecoratorFunc {
	if len(entities) == 1 {
		return Entity(name, entities[0])
	}
	return schema.P(name, schema.ValueOf(entities))
}
