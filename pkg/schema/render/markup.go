package render

import (
	"strings"

	"github.com/diwise/schema-markup/pkg/schema"
	"golang.org/x/net/html"
)

const indentUnit string = "  "

// vocabulary holds the attribute names that differ between Microdata and RDFa
type vocabulary struct {
	scope    func(e *schema.Entity) string
	property string
}

// markupRenderer renders entities as nested HTML blocks. Each entity becomes a
// scoped container, scalar properties become inline elements and nested
// entities are wrapped in a block carrying the property name.
type markupRenderer struct {
	vocab    vocabulary
	maxDepth int
}

func (r markupRenderer) render(e *schema.Entity) (string, error) {
	path := ""
	if e != nil {
		path = e.Type()
	}

	return r.entity(e, path, 0)
}

func (r markupRenderer) entity(e *schema.Entity, path string, depth int) (string, error) {
	if err := checkEntity(e, path, depth, r.maxDepth); err != nil {
		return "", err
	}

	b := &strings.Builder{}
	b.WriteString("<div ")
	b.WriteString(r.vocab.scope(e))
	b.WriteString(">")

	err := e.ForEachProperty(func(name string, value schema.Value) error {
		block, err := r.property(name, value, propertyPath(path, name), depth)
		if err != nil {
			return err
		}

		if block != "" {
			b.WriteString("\n")
			b.WriteString(indentLines(block, indentUnit))
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	b.WriteString("\n</div>")

	return b.String(), nil
}

func (r markupRenderer) property(name string, value schema.Value, path string, depth int) (string, error) {
	switch typed := value.(type) {
	case *schema.Entity:
		nested, err := r.entity(typed, path, depth+1)
		if err != nil {
			return "", err
		}

		return "<div " + r.vocab.property + "=\"" + escapeAttribute(name) + "\">\n" +
			indentLines(nested, indentUnit) +
			"\n</div>", nil

	case schema.Sequence:
		blocks := make([]string, 0, len(typed))

		for idx, item := range typed {
			block, err := r.property(name, item, elementPath(path, idx), depth)
			if err != nil {
				return "", err
			}

			if block != "" {
				blocks = append(blocks, block)
			}
		}

		return strings.Join(blocks, "\n"), nil
	}

	text, err := scalarText(value, path)
	if err != nil {
		return "", err
	}

	return "<span " + r.vocab.property + "=\"" + escapeAttribute(name) + "\">" + escapeText(text) + "</span>", nil
}

// indentLines prefixes every non empty line
func indentLines(s, indent string) string {
	lines := strings.Split(s, "\n")

	for idx, line := range lines {
		if line != "" {
			lines[idx] = indent + line
		}
	}

	return strings.Join(lines, "\n")
}

// escapeText escapes scalar content. Line feeds are encoded as well so that
// scalar text never spans lines and is left alone by indentLines.
func escapeText(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "&#10;")
}

func escapeAttribute(s string) string {
	return escapeText(s)
}
