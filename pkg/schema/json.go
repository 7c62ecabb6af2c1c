package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
	schemaerrors "github.com/diwise/schema-markup/pkg/schema/errors"
)

// DefaultMaxDepth is the default limit of nested levels below the root of a
// decoded document
const DefaultMaxDepth int = 64

type decoder struct {
	maxDepth int
}

type DecodeOption func(*decoder)

// WithMaxDepth limits how deep entities may be nested in a decoded document.
// An array directly inside another array counts as one level. Zero disables
// the limit.
func WithMaxDepth(depth int) DecodeOption {
	return func(d *decoder) {
		d.maxDepth = depth
	}
}

// NewFromJSON decodes a document such as
//
//	{"@context": "https://schema.org", "@type": "Person", "name": "Ada"}
//
// into an Entity. Key order in the document becomes property order.
func NewFromJSON(body []byte, opts ...DecodeOption) (*Entity, error) {
	d := &decoder{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(d)
	}

	// unmarshalling validates the complete body, including anything that
	// trails the root value
	var root json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, schemaerrors.NewBadRequestDataError(fmt.Sprintf("failed to parse entity: %s", err.Error()))
	}

	value, dataType, _, err := jsonparser.Get(root)
	if err != nil {
		return nil, schemaerrors.NewBadRequestDataError(fmt.Sprintf("failed to parse entity: %s", err.Error()))
	}

	if dataType != jsonparser.Object {
		return nil, schemaerrors.NewBadRequestDataError(fmt.Sprintf("entity must be a json object, not %s", dataType.String()))
	}

	members, err := objectMembers(value)
	if err != nil {
		return nil, schemaerrors.NewBadRequestDataError(fmt.Sprintf("failed to parse entity: %s", err.Error()))
	}

	return d.entity(members, DefaultContext, "", 0)
}

type member struct {
	name     string
	value    []byte
	dataType jsonparser.ValueType
}

// objectMembers splits an object into its keys and values in document order
func objectMembers(data []byte) ([]member, error) {
	members := []member{}

	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		name, err := jsonparser.ParseString(key)
		if err != nil {
			return err
		}

		members = append(members, member{name: name, value: value, dataType: dataType})
		return nil
	})

	return members, err
}

func keyword(members []member, name string) (member, bool) {
	for _, m := range members {
		if m.name == name {
			return m, true
		}
	}
	return member{}, false
}

func typeOf(members []member) (string, bool) {
	m, ok := keyword(members, "@type")
	if !ok || m.dataType != jsonparser.String {
		return "", false
	}

	entityType, err := jsonparser.ParseString(m.value)
	if err != nil {
		return "", false
	}

	return entityType, true
}

func (d *decoder) tooDeep(depth int) bool {
	return d.maxDepth > 0 && depth > d.maxDepth
}

func (d *decoder) entity(members []member, inheritedContext, path string, depth int) (*Entity, error) {
	entityType, ok := typeOf(members)
	if !ok {
		return nil, schemaerrors.NewMalformedEntityError(path, "missing or invalid @type")
	}

	if strings.TrimSpace(entityType) == "" {
		return nil, schemaerrors.NewMalformedEntityError(path, "entity type must not be empty")
	}

	if path == "" {
		path = entityType
	}

	if d.tooDeep(depth) {
		return nil, schemaerrors.NewDepthExceededError(path, d.maxDepth)
	}

	entityContext := inheritedContext
	if ctx, ok := keyword(members, "@context"); ok {
		if ctx.dataType != jsonparser.String {
			return nil, schemaerrors.NewMalformedEntityError(path, "only string contexts are supported")
		}

		var err error
		entityContext, err = jsonparser.ParseString(ctx.value)
		if err != nil {
			return nil, schemaerrors.NewMalformedEntityError(path, "invalid @context")
		}
	}

	if strings.TrimSpace(entityContext) == "" {
		return nil, schemaerrors.NewMalformedEntityError(path, "entity context must not be empty")
	}

	e := &Entity{
		entityType: entityType,
		context:    entityContext,
		properties: map[string]Value{},
	}

	for _, m := range members {
		// @context, @type and other keywords are not properties
		if len(m.name) > 0 && m.name[0] == '@' {
			continue
		}

		if m.dataType == jsonparser.Null {
			continue
		}

		v, err := d.value(m.value, m.dataType, entityContext, path+"."+m.name, depth)
		if err != nil {
			return nil, err
		}

		e.set(m.name, v)
	}

	return e, nil
}

func (d *decoder) value(value []byte, dataType jsonparser.ValueType, ctx, path string, depth int) (Value, error) {
	switch dataType {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, schemaerrors.NewBadRequestDataError(fmt.Sprintf("%s: invalid string: %s", path, err.Error()))
		}
		return Text(s), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return nil, schemaerrors.NewBadRequestDataError(fmt.Sprintf("%s: invalid boolean: %s", path, err.Error()))
		}
		return Boolean(b), nil
	case jsonparser.Number:
		return decodeNumber(value, path)
	case jsonparser.Array:
		return d.sequence(value, ctx, path, depth)
	case jsonparser.Object:
		members, err := objectMembers(value)
		if err != nil {
			return nil, schemaerrors.NewBadRequestDataError(fmt.Sprintf("%s: invalid object: %s", path, err.Error()))
		}

		if _, ok := typeOf(members); ok {
			return d.entity(members, ctx, path, depth+1)
		}

		compacted := &bytes.Buffer{}
		if err := json.Compact(compacted, value); err != nil {
			return nil, schemaerrors.NewBadRequestDataError(fmt.Sprintf("%s: invalid object: %s", path, err.Error()))
		}
		return Opaque{V: json.RawMessage(compacted.Bytes())}, nil
	case jsonparser.Null:
		return Opaque{V: nil}, nil
	}

	return nil, schemaerrors.NewBadRequestDataError(fmt.Sprintf("%s: unsupported value type %s", path, dataType.String()))
}

func decodeNumber(value []byte, path string) (Value, error) {
	if !bytes.ContainsAny(value, ".eE") {
		if i, err := strconv.ParseInt(string(value), 10, 64); err == nil {
			return Integer(i), nil
		}
	}

	f, err := strconv.ParseFloat(string(value), 64)
	if err != nil {
		return nil, schemaerrors.NewBadRequestDataError(fmt.Sprintf("%s: invalid number: %s", path, err.Error()))
	}

	return Number(f), nil
}

func (d *decoder) sequence(value []byte, ctx, path string, depth int) (Value, error) {
	var seqErr error
	seq := Sequence{}

	_, err := jsonparser.ArrayEach(value, func(item []byte, dataType jsonparser.ValueType, offset int, err error) {
		if seqErr != nil {
			return
		}

		if err != nil {
			seqErr = err
			return
		}

		itemPath := fmt.Sprintf("%s[%d]", path, len(seq))
		itemDepth := depth

		if dataType == jsonparser.Array {
			itemDepth++
			if d.tooDeep(itemDepth) {
				seqErr = schemaerrors.NewDepthExceededError(itemPath, d.maxDepth)
				return
			}
		}

		v, err := d.value(item, dataType, ctx, itemPath, itemDepth)
		if err != nil {
			seqErr = err
			return
		}

		seq = append(seq, v)
	})

	if seqErr != nil {
		return nil, seqErr
	}

	if err != nil {
		return nil, schemaerrors.NewBadRequestDataError(fmt.Sprintf("%s: invalid array: %s", path, err.Error()))
	}

	return seq, nil
}
