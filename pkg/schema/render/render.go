// Package render turns schema entities into embeddable structured data.
//
// Three formats are supported, JSON-LD, Microdata and RDFa. Every renderer is
// a pure function of the entity graph: rendering the same entity twice gives
// byte identical output, properties are emitted in insertion order and all
// scalar content is escaped for the target format so that the result can be
// embedded in a host document as is.
package render

import (
	"strings"

	"github.com/diwise/schema-markup/pkg/schema"
	schemaerrors "github.com/diwise/schema-markup/pkg/schema/errors"
)

type Renderer interface {
	Render(e *schema.Entity) (string, error)
	MimeType() string
	FormatName() string
}

// Format identifies one of the supported output formats
type Format string

const (
	JSONLD    Format = "json-ld"
	Microdata Format = "microdata"
	RDFa      Format = "rdfa"
)

// ParseFormat normalizes a format name
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "json-ld", "jsonld", "json", "ld+json", "application/ld+json":
		return JSONLD, true
	case "microdata", "html", "text/html":
		return Microdata, true
	case "rdfa", "rdf-a":
		return RDFa, true
	default:
		return "", false
	}
}

// FormatInfo provides metadata about an output format
type FormatInfo struct {
	Name        Format `json:"name"`
	MimeType    string `json:"mimeType"`
	Extension   string `json:"extension"`
	Description string `json:"description"`
}

var formats = []FormatInfo{
	{
		Name:        JSONLD,
		MimeType:    MimeTypeJSONLD,
		Extension:   ".jsonld",
		Description: "JSON-LD object with @context and @type keys",
	},
	{
		Name:        Microdata,
		MimeType:    MimeTypeHTML,
		Extension:   ".html",
		Description: "HTML fragment with itemscope, itemtype and itemprop attributes",
	},
	{
		Name:        RDFa,
		MimeType:    MimeTypeHTML,
		Extension:   ".html",
		Description: "HTML fragment with vocab, typeof and property attributes",
	},
}

// Formats returns metadata for all supported formats
func Formats() []FormatInfo {
	result := make([]FormatInfo, len(formats))
	copy(result, formats)
	return result
}

func GetFormatInfo(format Format) (FormatInfo, bool) {
	for _, info := range formats {
		if info.Name == format {
			return info, true
		}
	}
	return FormatInfo{}, false
}

const (
	MimeTypeJSONLD string = "application/ld+json"
	MimeTypeHTML   string = "text/html"
)

// DefaultMaxDepth is the default limit of nested entity levels below the root
const DefaultMaxDepth int = schema.DefaultMaxDepth

type options struct {
	maxDepth int
	indent   string
}

type Option func(*options)

// WithMaxDepth limits how deep entities may be nested. Zero disables the limit.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithIndent makes the JSON-LD renderer pretty print its output. The markup
// renderers ignore this option.
func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

func newOptions(opts []Option) options {
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns the renderer for a format
func New(format Format, opts ...Option) (Renderer, error) {
	switch format {
	case JSONLD:
		return NewJSONLDRenderer(opts...), nil
	case Microdata:
		return NewMicrodataRenderer(opts...), nil
	case RDFa:
		return NewRDFaRenderer(opts...), nil
	}

	return nil, schemaerrors.NewUnknownFormatError(string(format))
}

// Render renders an entity in the given format
func Render(format Format, e *schema.Entity, opts ...Option) (string, error) {
	r, err := New(format, opts...)
	if err != nil {
		return "", err
	}

	return r.Render(e)
}
