package render

import (
	"github.com/diwise/schema-markup/pkg/schema"
)

// MicrodataRenderer emits nested HTML using itemscope, itemtype and itemprop
type MicrodataRenderer struct {
	markup markupRenderer
}

func NewMicrodataRenderer(opts ...Option) *MicrodataRenderer {
	o := newOptions(opts)

	return &MicrodataRenderer{
		markup: markupRenderer{
			vocab: vocabulary{
				scope: func(e *schema.Entity) string {
					return "itemscope itemtype=\"" + escapeAttribute(e.TypeURI()) + "\""
				},
				property: "itemprop",
			},
			maxDepth: o.maxDepth,
		},
	}
}

func (r *MicrodataRenderer) Render(e *schema.Entity) (string, error) {
	return r.markup.render(e)
}

func (r *MicrodataRenderer) MimeType() string {
	return MimeTypeHTML
}

func (r *MicrodataRenderer) FormatName() string {
	return string(Microdata)
}
