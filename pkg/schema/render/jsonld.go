package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/diwise/schema-markup/pkg/schema"
	schemaerrors "github.com/diwise/schema-markup/pkg/schema/errors"
)

// JSONLDRenderer emits a JSON object with @context and @type keys followed by
// one key per property. Nested entities only repeat @context when it differs
// from the context of the entity that contains them.
type JSONLDRenderer struct {
	maxDepth int
	indent   string
}

func NewJSONLDRenderer(opts ...Option) *JSONLDRenderer {
	o := newOptions(opts)

	return &JSONLDRenderer{
		maxDepth: o.maxDepth,
		indent:   o.indent,
	}
}

func (r *JSONLDRenderer) Render(e *schema.Entity) (string, error) {
	path := ""
	if e != nil {
		path = e.Type()
	}

	buf := &bytes.Buffer{}

	if err := r.entity(buf, e, "", path, 0); err != nil {
		return "", err
	}

	if r.indent == "" {
		return buf.String(), nil
	}

	indented := &bytes.Buffer{}
	if err := json.Indent(indented, buf.Bytes(), "", r.indent); err != nil {
		return "", schemaerrors.NewUnencodableValueError(path, err)
	}

	return indented.String(), nil
}

func (r *JSONLDRenderer) MimeType() string {
	return MimeTypeJSONLD
}

func (r *JSONLDRenderer) FormatName() string {
	return string(JSONLD)
}

func (r *JSONLDRenderer) entity(buf *bytes.Buffer, e *schema.Entity, enclosingContext, path string, depth int) error {
	if err := checkEntity(e, path, depth, r.maxDepth); err != nil {
		return err
	}

	buf.WriteByte('{')

	if e.Context() != enclosingContext {
		writeString(buf, "@context")
		buf.WriteByte(':')
		writeString(buf, e.Context())
		buf.WriteByte(',')
	}

	writeString(buf, "@type")
	buf.WriteByte(':')
	writeString(buf, e.Type())

	err := e.ForEachProperty(func(name string, value schema.Value) error {
		propPath := propertyPath(path, name)

		if name == "@context" || name == "@type" {
			return schemaerrors.NewMalformedEntityError(propPath, "property name collides with a reserved key")
		}

		buf.WriteByte(',')
		writeString(buf, name)
		buf.WriteByte(':')

		return r.value(buf, value, e.Context(), propPath, depth)
	})

	if err != nil {
		return err
	}

	buf.WriteByte('}')

	return nil
}

func (r *JSONLDRenderer) value(buf *bytes.Buffer, value schema.Value, ctx, path string, depth int) error {
	switch typed := value.(type) {
	case *schema.Entity:
		return r.entity(buf, typed, ctx, path, depth+1)

	case schema.Sequence:
		buf.WriteByte('[')
		for idx, item := range typed {
			if idx > 0 {
				buf.WriteByte(',')
			}
			if err := r.value(buf, item, ctx, elementPath(path, idx), depth); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case schema.Text:
		writeString(buf, string(typed))
		return nil

	case schema.Integer:
		buf.WriteString(strconv.FormatInt(int64(typed), 10))
		return nil

	case schema.Number:
		f := float64(typed)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return schemaerrors.NewUnencodableValueError(path, fmt.Errorf("%v is not a valid json number", f))
		}
		b, err := json.Marshal(f)
		if err != nil {
			return schemaerrors.NewUnencodableValueError(path, err)
		}
		buf.Write(b)
		return nil

	case schema.Boolean:
		buf.WriteString(strconv.FormatBool(bool(typed)))
		return nil

	case schema.Opaque:
		b, err := opaqueJSON(typed.V, true)
		if err != nil {
			return schemaerrors.NewUnencodableValueError(path, err)
		}
		buf.Write(b)
		return nil

	case nil:
		return schemaerrors.NewMalformedEntityError(path, "missing value")
	}

	return schemaerrors.NewMalformedEntityError(path, fmt.Sprintf("unsupported value type %T", value))
}

func writeString(buf *bytes.Buffer, s string) {
	// marshalling a string can not fail
	b, _ := json.Marshal(s)
	buf.Write(b)
}
