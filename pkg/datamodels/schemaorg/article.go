package schemaorg

import (
	"fmt"
	"time"

	"github.com/diwise/schema-markup/pkg/schema"
	dec "github.com/diwise/schema-markup/pkg/schema/decorators"
)

// NewArticle creates a new instance of Article. The headline is truncated to
// the 110 characters that search engines display.
func NewArticle(headline string, published time.Time, authors []*schema.Entity, decorators ...schema.EntityDecoratorFunc) (*schema.Entity, error) {
	if headline == "" {
		return nil, fmt.Errorf("an article must have a headline")
	}

	if len(authors) == 0 {
		return nil, fmt.Errorf("at least one author must be set in an article entity")
	}

	if runes := []rune(headline); len(runes) > MaxHeadlineLength {
		headline = string(runes[:MaxHeadlineLength])
	}

	first := []schema.EntityDecoratorFunc{dec.Headline(headline)}
	if !published.IsZero() {
		first = append(first, dec.DatePublished(published))
	}
	first = append(first, dec.Author(authors...))

	return schema.New(ArticleTypeName, append(first, decorators...)...)
}

const MaxHeadlineLength int = 110
