package schema

import (
	"errors"
	"testing"
	"time"

	schemaerrors "github.com/diwise/schema-markup/pkg/schema/errors"
	"github.com/matryer/is"
)

func TestNewEntityUsesDefaultContext(t *testing.T) {
	is := is.New(t)

	e, err := New("Person", V("name", "Ada"))
	is.NoErr(err)

	is.Equal(e.Type(), "Person")
	is.Equal(e.Context(), DefaultContext)
	is.Equal(e.TypeURI(), "https://schema.org/Person")
}

func TestTypeURIDoesNotDoubleTheSlash(t *testing.T) {
	is := is.New(t)

	e, err := New("Thing", Context("https://example.org/vocab/"))
	is.NoErr(err)

	is.Equal(e.TypeURI(), "https://example.org/vocab/Thing")
}

func TestNewEntityWithoutTypeFails(t *testing.T) {
	is := is.New(t)

	_, err := New("  ")
	is.True(errors.Is(err, schemaerrors.ErrMalformedEntity))
}

func TestPropertiesKeepInsertionOrder(t *testing.T) {
	is := is.New(t)

	e, err := New("Thing",
		V("c", 1),
		V("a", "x"),
		V("b", true),
	)
	is.NoErr(err)

	is.Equal(e.Names(), []string{"c", "a", "b"})

	visited := []string{}
	err = e.ForEachProperty(func(name string, value Value) error {
		visited = append(visited, name)
		return nil
	})
	is.NoErr(err)
	is.Equal(visited, []string{"c", "a", "b"})
}

func TestReplacingAPropertyKeepsItsPosition(t *testing.T) {
	is := is.New(t)

	e, err := New("Thing",
		V("a", "first"),
		V("b", "second"),
		V("a", "replaced"),
	)
	is.NoErr(err)

	is.Equal(e.Len(), 2)
	is.Equal(e.Names(), []string{"a", "b"})

	v, ok := e.Get("a")
	is.True(ok)
	is.Equal(v, Text("replaced"))
}

func TestForEachPropertyStopsOnError(t *testing.T) {
	is := is.New(t)

	e := Must(New("Thing", V("a", 1), V("b", 2)))

	calls := 0
	stop := errors.New("stop")
	err := e.ForEachProperty(func(string, Value) error {
		calls++
		return stop
	})

	is.Equal(err, stop)
	is.Equal(calls, 1)
}

func TestValueOfConvertsLooseValues(t *testing.T) {
	is := is.New(t)

	is.Equal(ValueOf("x"), Text("x"))
	is.Equal(ValueOf(42), Integer(42))
	is.Equal(ValueOf(uint64(7)), Integer(7))
	is.Equal(ValueOf(2.5), Number(2.5))
	is.Equal(ValueOf(false), Boolean(false))
	is.Equal(ValueOf([]string{"a", "b"}), Sequence{Text("a"), Text("b")})
	is.Equal(ValueOf([]any{"a", 1}), Sequence{Text("a"), Integer(1)})
	is.Equal(ValueOf([]int{1, 2}), Sequence{Integer(1), Integer(2)})

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	is.Equal(ValueOf(ts), Opaque{V: ts})
	is.Equal(ValueOf([]byte("raw")), Opaque{V: []byte("raw")})
}
