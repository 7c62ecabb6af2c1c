package schema

import (
	"strings"

	schemaerrors "github.com/diwise/schema-markup/pkg/schema/errors"
)

const DefaultContext string = "https://schema.org"

type EntityDecoratorFunc func(e *Entity)

// Entity is a typed thing described by a vocabulary context and an ordered
// set of named properties. Entities are built once and not modified after
// construction.
type Entity struct {
	entityType string
	context    string

	names      []string
	properties map[string]Value
}

func New(entityType string, decorators ...EntityDecoratorFunc) (*Entity, error) {
	e := &Entity{
		entityType: entityType,
		properties: map[string]Value{},
	}

	for _, decorator := range decorators {
		decorator(e)
	}

	// Set the default context if it wasnt decorated by the creator
	if e.context == "" {
		e.context = DefaultContext
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}

	return e, nil
}

// Must is a helper for constructing entities in static declarations and tests
func Must(e *Entity, err error) *Entity {
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Entity) Type() string {
	return e.entityType
}

func (e *Entity) Context() string {
	return e.context
}

// TypeURI returns the full identifier of the entity type, context + "/" + type
func (e *Entity) TypeURI() string {
	return strings.TrimSuffix(e.context, "/") + "/" + e.entityType
}

func (e *Entity) Len() int {
	return len(e.names)
}

// Names returns the property names in insertion order
func (e *Entity) Names() []string {
	names := make([]string, len(e.names))
	copy(names, e.names)
	return names
}

func (e *Entity) Get(name string) (Value, bool) {
	v, ok := e.properties[name]
	return v, ok
}

// ForEachProperty calls the callback for every property in insertion order and
// stops at the first error returned from the callback
func (e *Entity) ForEachProperty(callback func(name string, value Value) error) error {
	for _, name := range e.names {
		if err := callback(name, e.properties[name]); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the invariants that renderers rely on
func (e *Entity) Validate() error {
	if e == nil {
		return schemaerrors.NewMalformedEntityError("", "nil entity")
	}

	if strings.TrimSpace(e.entityType) == "" {
		return schemaerrors.NewMalformedEntityError("", "entity type must not be empty")
	}

	if strings.TrimSpace(e.context) == "" {
		return schemaerrors.NewMalformedEntityError(e.entityType, "entity context must not be empty")
	}

	return nil
}

func (e *Entity) set(name string, value Value) {
	if _, exists := e.properties[name]; !exists {
		e.names = append(e.names, name)
	}
	e.properties[name] = value
}

func Context(ctx string) EntityDecoratorFunc {
	return func(e *Entity) {
		e.context = ctx
	}
}

// P sets a property. Setting the same name twice replaces the value but keeps
// the position of the first occurrence.
func P(name string, value Value) EntityDecoratorFunc {
	return func(e *Entity) {
		if value == nil {
			return
		}
		e.set(name, value)
	}
}

// V sets a property from a loosely typed Go value, see ValueOf
func V(name string, value any) EntityDecoratorFunc {
	return P(name, ValueOf(value))
}
