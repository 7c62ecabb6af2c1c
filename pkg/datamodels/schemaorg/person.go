package schemaorg

import (
	"fmt"
	"strings"

	"github.com/diwise/schema-markup/pkg/schema"
	dec "github.com/diwise/schema-markup/pkg/schema/decorators"
)

// NewPerson creates a new instance of Person
func NewPerson(name string, decorators ...schema.EntityDecoratorFunc) (*schema.Entity, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("a person must have a name")
	}

	decorators = append([]schema.EntityDecoratorFunc{dec.Name(name)}, decorators...)

	return schema.New(PersonTypeName, decorators...)
}

func NewOrganization(name, url string, decorators ...schema.EntityDecoratorFunc) (*schema.Entity, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("an organization must have a name")
	}

	first := []schema.EntityDecoratorFunc{dec.Name(name)}
	if url != "" {
		first = append(first, dec.URL(url))
	}

	return schema.New(OrganizationTypeName, append(first, decorators...)...)
}
