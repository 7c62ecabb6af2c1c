package render

import (
	"strings"

	"github.com/diwise/schema-markup/pkg/schema"
)

// RDFaRenderer emits nested HTML using vocab, typeof and property. The vocab
// attribute carries the entity context so that typeof and property resolve to
// the same IRIs as their Microdata counterparts.
type RDFaRenderer struct {
	markup markupRenderer
}

func NewRDFaRenderer(opts ...Option) *RDFaRenderer {
	o := newOptions(opts)

	return &RDFaRenderer{
		markup: markupRenderer{
			vocab: vocabulary{
				scope: func(e *schema.Entity) string {
					vocab := strings.TrimSuffix(e.Context(), "/") + "/"
					return "vocab=\"" + escapeAttribute(vocab) + "\" typeof=\"" + escapeAttribute(e.Type()) + "\""
				},
				property: "property",
			},
			maxDepth: o.maxDepth,
		},
	}
}

func (r *RDFaRenderer) Render(e *schema.Entity) (string, error) {
	return r.markup.render(e)
}

func (r *RDFaRenderer) MimeType() string {
	return MimeTypeHTML
}

func (r *RDFaRenderer) FormatName() string {
	return string(RDFa)
}
