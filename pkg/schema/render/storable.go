package render

import (
	"bytes"
	"fmt"

	"github.com/diwise/schema-markup/pkg/schema"
	schemaerrors "github.com/diwise/schema-markup/pkg/schema/errors"
)

var errLostInStorage = fmt.Errorf("value does not survive being stored as json-ld")

// Storable renders e as a compact JSON-LD document that decodes back into an
// entity rendering exactly like e in every format. Properties that would be
// lost or changed by the trip, such as opaque values whose text differs from
// their JSON form or that decode as entities, fail with an unencodable value
// error naming the property.
func Storable(e *schema.Entity, opts ...Option) (string, error) {
	o := newOptions(opts)

	document, err := NewJSONLDRenderer(WithMaxDepth(o.maxDepth)).Render(e)
	if err != nil {
		return "", err
	}

	decoded, err := schema.NewFromJSON([]byte(document), schema.WithMaxDepth(o.maxDepth))
	if err != nil {
		return "", err
	}

	if err := sameEntity(e, decoded, e.Type()); err != nil {
		return "", err
	}

	return document, nil
}

func sameEntity(original, decoded *schema.Entity, path string) error {
	if original.Type() != decoded.Type() || original.Context() != decoded.Context() {
		return schemaerrors.NewUnencodableValueError(path, errLostInStorage)
	}

	names := decoded.Names()

	for idx, name := range original.Names() {
		propPath := propertyPath(path, name)

		if idx >= len(names) || names[idx] != name {
			return schemaerrors.NewUnencodableValueError(propPath, errLostInStorage)
		}

		a, _ := original.Get(name)
		b, _ := decoded.Get(name)

		if err := sameValue(a, b, propPath); err != nil {
			return err
		}
	}

	if len(names) != original.Len() {
		return schemaerrors.NewUnencodableValueError(path, errLostInStorage)
	}

	return nil
}

func sameValue(original, decoded schema.Value, path string) error {
	switch a := original.(type) {
	case *schema.Entity:
		if b, ok := decoded.(*schema.Entity); ok {
			return sameEntity(a, b, path)
		}
		return schemaerrors.NewUnencodableValueError(path, errLostInStorage)

	case schema.Sequence:
		b, ok := decoded.(schema.Sequence)
		if !ok || len(a) != len(b) {
			return schemaerrors.NewUnencodableValueError(path, errLostInStorage)
		}
		for idx := range a {
			if err := sameValue(a[idx], b[idx], elementPath(path, idx)); err != nil {
				return err
			}
		}
		return nil
	}

	switch decoded.(type) {
	case *schema.Entity, schema.Sequence:
		return schemaerrors.NewUnencodableValueError(path, errLostInStorage)
	}

	// scalars must keep both their markup text and their json encoding
	textA, err := scalarText(original, path)
	if err != nil {
		return err
	}

	textB, err := scalarText(decoded, path)
	if err != nil {
		return err
	}

	r := NewJSONLDRenderer()
	jsonA, jsonB := &bytes.Buffer{}, &bytes.Buffer{}

	if err := r.value(jsonA, original, "", path, 0); err != nil {
		return err
	}

	if err := r.value(jsonB, decoded, "", path, 0); err != nil {
		return err
	}

	if textA != textB || !bytes.Equal(jsonA.Bytes(), jsonB.Bytes()) {
		return schemaerrors.NewUnencodableValueError(path, errLostInStorage)
	}

	return nil
}
