package render

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/diwise/schema-markup/pkg/schema"
	schemaerrors "github.com/diwise/schema-markup/pkg/schema/errors"
)

// scalarText converts a non structural value to its textual form
func scalarText(v schema.Value, path string) (string, error) {
	switch typed := v.(type) {
	case schema.Text:
		return string(typed), nil
	case schema.Integer:
		return strconv.FormatInt(int64(typed), 10), nil
	case schema.Number:
		return strconv.FormatFloat(float64(typed), 'f', -1, 64), nil
	case schema.Boolean:
		return strconv.FormatBool(bool(typed)), nil
	case schema.Opaque:
		return opaqueText(typed.V, path)
	case nil:
		return "", schemaerrors.NewMalformedEntityError(path, "missing value")
	}

	return "", schemaerrors.NewMalformedEntityError(path, fmt.Sprintf("unsupported value type %T", v))
}

func opaqueText(v any, path string) (string, error) {
	if isNilPointer(v) {
		return "null", nil
	}

	switch typed := v.(type) {
	case string:
		return typed, nil
	case encoding.TextMarshaler:
		b, err := typed.MarshalText()
		if err != nil {
			return "", schemaerrors.NewUnencodableValueError(path, err)
		}
		return string(b), nil
	case fmt.Stringer:
		return typed.String(), nil
	}

	b, err := opaqueJSON(v, false)
	if err != nil {
		return "", schemaerrors.NewUnencodableValueError(path, err)
	}

	return string(b), nil
}

// opaqueJSON encodes any value as JSON. HTML escaping is left to the caller
// when the result is embedded in markup.
func opaqueJSON(v any, escapeHTML bool) ([]byte, error) {
	buf := &bytes.Buffer{}

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(escapeHTML)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func isNilPointer(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func propertyPath(path, name string) string {
	return path + "." + name
}

func elementPath(path string, index int) string {
	return path + "[" + strconv.Itoa(index) + "]"
}

func checkEntity(e *schema.Entity, path string, depth, maxDepth int) error {
	if e == nil {
		return schemaerrors.NewMalformedEntityError(path, "nil entity")
	}

	if e.Type() == "" {
		return schemaerrors.NewMalformedEntityError(path, "entity type must not be empty")
	}

	if e.Context() == "" {
		return schemaerrors.NewMalformedEntityError(path, "entity context must not be empty")
	}

	if maxDepth > 0 && depth > maxDepth {
		return schemaerrors.NewDepthExceededError(path, maxDepth)
	}

	return nil
}
