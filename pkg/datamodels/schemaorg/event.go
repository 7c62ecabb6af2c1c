package schemaorg

import (
	"fmt"
	"time"

	"github.com/diwise/schema-markup/pkg/schema"
	dec "github.com/diwise/schema-markup/pkg/schema/decorators"
)

func NewEvent(name string, start, end time.Time, location *schema.Entity, decorators ...schema.EntityDecoratorFunc) (*schema.Entity, error) {
	if start.IsZero() {
		return nil, fmt.Errorf("an event must have a start date")
	}

	if !end.IsZero() && end.Before(start) {
		return nil, fmt.Errorf("an event can not end before it starts")
	}

	first := []schema.EntityDecoratorFunc{
		dec.Name(name),
		dec.DateTime("startDate", start),
	}

	if !end.IsZero() {
		first = append(first, dec.DateTime("endDate", end))
	}

	if location != nil {
		first = append(first, dec.Entity("location", location))
	}

	return schema.New(EventTypeName, append(first, decorators...)...)
}

// NewProduct creates a Product with a single Offer
func NewProduct(name string, price float64, currency string, decorators ...schema.EntityDecoratorFunc) (*schema.Entity, error) {
	if len(currency) != 3 {
		return nil, fmt.Errorf("currency must be a three letter ISO 4217 code")
	}

	offer, err := schema.New(OfferTypeName,
		dec.Number("price", price),
		dec.Text("priceCurrency", currency),
	)
	if err != nil {
		return nil, err
	}

	decorators = append([]schema.EntityDecoratorFunc{dec.Name(name), dec.Entity("offers", offer)}, decorators...)

	return schema.New(ProductTypeName, decorators...)
}
