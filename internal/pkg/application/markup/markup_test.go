package markup

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/diwise/schema-markup/internal/pkg/application/subscriptions"
	"github.com/diwise/schema-markup/internal/pkg/infrastructure/metrics"
	"github.com/diwise/schema-markup/internal/pkg/infrastructure/storage"
	"github.com/diwise/schema-markup/pkg/schema"
	"github.com/diwise/schema-markup/pkg/schema/decorators"
	schemaerrors "github.com/diwise/schema-markup/pkg/schema/errors"
	"github.com/matryer/is"
)

func TestRenderWithDefaultFormat(t *testing.T) {
	is, ctx, app, _ := setupTest(t, nil)

	result, err := app.Render(ctx, person("Ada"), "")
	is.NoErr(err)
	is.Equal(result.Format, "json-ld")
	is.Equal(result.ContentType, "application/ld+json; charset=utf-8")
	is.Equal(result.Body, `{"@context":"https://schema.org","@type":"Person","name":"Ada"}`)
}

func TestRenderWithFormatAlias(t *testing.T) {
	is, ctx, app, _ := setupTest(t, nil)

	result, err := app.Render(ctx, person("Ada"), "text/html")
	is.NoErr(err)
	is.Equal(result.Format, "microdata")
	is.True(strings.HasPrefix(result.Body, `<div itemscope itemtype="https://schema.org/Person">`))
}

func TestRenderNQuads(t *testing.T) {
	is, ctx, app, _ := setupTest(t, nil)

	result, err := app.Render(ctx, person("Ada"), "nquads")
	is.NoErr(err)
	is.Equal(result.ContentType, "application/n-quads")
	is.True(strings.Contains(result.Body, `<https://schema.org/name> "Ada" .`))
}

func TestRenderWithDisabledFormatIsNotAcceptable(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.Formats = []string{"json-ld"}

	is, ctx, app, _ := setupTest(t, cfg)

	_, err := app.Render(ctx, person("Ada"), "rdfa")
	is.True(errors.Is(err, schemaerrors.ErrNotAcceptable))

	_, err = app.Render(ctx, person("Ada"), "turtle")
	is.True(errors.Is(err, schemaerrors.ErrNotAcceptable))
}

func TestRenderUsesConfiguredDepthAndIndent(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.MaxDepth = 1
	cfg.Indent = "\t"

	is, ctx, app, _ := setupTest(t, cfg)

	result, err := app.Render(ctx, person("Ada"), "json-ld")
	is.NoErr(err)
	is.True(strings.Contains(result.Body, "\n\t\"name\": \"Ada\""))

	deep := schema.Must(schema.New("Thing", decorators.Entity("a", schema.Must(schema.New("Thing", decorators.Entity("b", person("Ada")))))))

	_, err = app.Render(ctx, deep, "microdata")
	is.True(errors.Is(err, schemaerrors.ErrDepthExceeded))
}

func TestStoreAndRetrieveEntity(t *testing.T) {
	is, ctx, app, n := setupTest(t, nil)

	e := schema.Must(schema.New("Article",
		decorators.Headline("Hello"),
		decorators.Integer("wordCount", 1200),
		decorators.Author(person("Ada")),
	))

	id, err := app.StoreEntity(ctx, "", e)
	is.NoErr(err)
	is.True(strings.HasPrefix(id, URNPrefix)) // a missing id should be generated

	is.Equal(len(n.EntityStoredCalls()), 1)
	is.Equal(n.EntityStoredCalls()[0].EntityID, id)

	stored, err := app.RetrieveEntity(ctx, id)
	is.NoErr(err)
	is.Equal(stored.Names(), e.Names())

	original, _ := app.Render(ctx, e, "microdata")
	result, err := app.RenderStored(ctx, id, "microdata")
	is.NoErr(err)
	is.Equal(result.Body, original.Body) // a stored entity should render exactly like the original
}

func TestStoredEntityWithOpaqueValuesRendersLikeTheOriginal(t *testing.T) {
	is, ctx, app, _ := setupTest(t, nil)

	e := schema.Must(schema.New("Product",
		decorators.Name("Lamp"),
		decorators.Opaque("dimensions", json.RawMessage(`{"w":2,"h":[1,2]}`)),
		decorators.Opaque("sku", "A-1"),
		decorators.Opaque("weight", 1.5),
	))

	id, err := app.StoreEntity(ctx, "urn:example:lamp", e)
	is.NoErr(err)

	for _, format := range []string{"json-ld", "microdata", "rdfa", "nquads"} {
		original, err := app.Render(ctx, e, format)
		is.NoErr(err)

		stored, err := app.RenderStored(ctx, id, format)
		is.NoErr(err)
		is.Equal(stored.Body, original.Body) // a stored entity should render exactly like the original
	}
}

func TestStoreEntityRejectsValuesLostInStorage(t *testing.T) {
	is, ctx, app, n := setupTest(t, nil)

	testCases := map[string]schema.Value{
		"null":            schema.Opaque{V: nil},
		"stringer":        schema.Opaque{V: label{Code: "A"}},
		"typed map":       schema.Opaque{V: map[string]any{"@type": "Thing", "name": "x"}},
		"opaque slice":    schema.Opaque{V: []int{1, 2}},
		"keyword":         schema.Text("kept"),
		"nested stringer": schema.Sequence{schema.Text("a"), schema.Opaque{V: label{Code: "B"}}},
	}

	for name, value := range testCases {
		property := "extra"
		if name == "keyword" {
			property = "@id"
		}

		e := schema.Must(schema.New("Thing", decorators.Name("x"), schema.P(property, value)))

		_, err := app.StoreEntity(ctx, "", e)
		is.True(errors.Is(err, schemaerrors.ErrUnencodableValue)) // value should be rejected
		is.True(strings.HasPrefix(schemaerrors.PathOf(err), "Thing."+property))
	}

	is.Equal(len(n.EntityStoredCalls()), 0)
}

type label struct {
	Code string
}

func (l label) String() string {
	return "label:" + l.Code
}

func TestStoreEntityWithID(t *testing.T) {
	is, ctx, app, _ := setupTest(t, nil)

	id, err := app.StoreEntity(ctx, " urn:example:ada ", person("Ada"))
	is.NoErr(err)
	is.Equal(id, "urn:example:ada")
}

func TestStoreInvalidEntityFails(t *testing.T) {
	is, ctx, app, n := setupTest(t, nil)

	_, err := app.StoreEntity(ctx, "", nil)
	is.True(errors.Is(err, schemaerrors.ErrMalformedEntity))
	is.Equal(len(n.EntityStoredCalls()), 0)
}

func TestRetrieveUnknownEntityIsNotFound(t *testing.T) {
	is, ctx, app, _ := setupTest(t, nil)

	_, err := app.RetrieveEntity(ctx, "urn:uuid:nope")
	is.True(errors.Is(err, schemaerrors.ErrNotFound))

	_, err = app.RenderStored(ctx, "urn:uuid:nope", "")
	is.True(errors.Is(err, schemaerrors.ErrNotFound))
}

func TestDeleteEntity(t *testing.T) {
	is, ctx, app, n := setupTest(t, nil)

	id, err := app.StoreEntity(ctx, "", person("Ada"))
	is.NoErr(err)

	is.NoErr(app.DeleteEntity(ctx, id))
	is.Equal(len(n.EntityDeletedCalls()), 1)
	is.Equal(n.EntityDeletedCalls()[0].EntityType, "Person")

	err = app.DeleteEntity(ctx, id)
	is.True(errors.Is(err, schemaerrors.ErrNotFound))
}

func TestListEntities(t *testing.T) {
	is, ctx, app, _ := setupTest(t, nil)

	_, err := app.StoreEntity(ctx, "b", person("Ada"))
	is.NoErr(err)
	_, err = app.StoreEntity(ctx, "a", schema.Must(schema.New("Organization", decorators.Name("ACME"))))
	is.NoErr(err)

	all, err := app.ListEntities(ctx, "", 0, 0)
	is.NoErr(err)
	is.Equal(len(all), 2)
	is.Equal(all[0].ID, "a")

	people, err := app.ListEntities(ctx, "Person", 0, 10)
	is.NoErr(err)
	is.Equal(len(people), 1)
	is.Equal(people[0].Type, "Person")
}

func TestFormats(t *testing.T) {
	is, _, app, _ := setupTest(t, nil)

	formats := app.Formats()
	is.Equal(len(formats), 4)
	is.Equal(string(formats[3].Name), "nquads")
	is.Equal(formats[3].MimeType, "application/n-quads")
}

func TestStartAndStopNotifier(t *testing.T) {
	is, _, app, n := setupTest(t, nil)

	is.NoErr(app.Start())
	is.NoErr(app.Stop())

	is.Equal(len(n.StartCalls()), 1)
	is.Equal(len(n.StopCalls()), 1)
}

func TestNewWithoutStoreFails(t *testing.T) {
	is := is.New(t)

	_, err := New(context.Background(), nil, nil, nil, nil)
	is.True(err != nil)
}

func setupTest(t *testing.T, cfg *Config) (*is.I, context.Context, Manager, *subscriptions.NotifierMock) {
	is := is.New(t)
	ctx := context.Background()

	n := &subscriptions.NotifierMock{
		StartFunc:         func() error { return nil },
		StopFunc:          func() error { return nil },
		EntityStoredFunc:  func(context.Context, string, string, string) {},
		EntityDeletedFunc: func(context.Context, string, string) {},
	}

	app, err := New(ctx, cfg, storage.NewMemoryStore(), n, metrics.New())
	is.NoErr(err)

	return is, ctx, app, n
}

func person(name string) *schema.Entity {
	return schema.Must(schema.New("Person", decorators.Name(name)))
}
