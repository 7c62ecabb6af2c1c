package schemaorg

import (
	"fmt"

	"github.com/diwise/schema-markup/pkg/schema"
	dec "github.com/diwise/schema-markup/pkg/schema/decorators"
)

func NewPostalAddress(street, postalCode, locality, country string, decorators ...schema.EntityDecoratorFunc) (*schema.Entity, error) {
	first := []schema.EntityDecoratorFunc{}

	for _, p := range []struct{ name, value string }{
		{"streetAddress", street},
		{"postalCode", postalCode},
		{"addressLocality", locality},
		{"addressCountry", country},
	} {
		if p.value != "" {
			first = append(first, dec.Text(p.name, p.value))
		}
	}

	if len(first)+len(decorators) == 0 {
		return nil, fmt.Errorf("at least one property must be set in a postal address entity")
	}

	return schema.New(PostalAddressTypeName, append(first, decorators...)...)
}

// NewGeoCoordinates creates a new instance of GeoCoordinates from a WGS84 position
func NewGeoCoordinates(latitude, longitude float64) (*schema.Entity, error) {
	if latitude < -90 || latitude > 90 {
		return nil, fmt.Errorf("latitude %f is out of range", latitude)
	}

	if longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("longitude %f is out of range", longitude)
	}

	return schema.New(GeoCoordinatesTypeName,
		dec.Number("latitude", latitude),
		dec.Number("longitude", longitude),
	)
}

func NewPlace(name string, address, geo *schema.Entity, decorators ...schema.EntityDecoratorFunc) (*schema.Entity, error) {
	first := []schema.EntityDecoratorFunc{dec.Name(name)}

	if address != nil {
		first = append(first, dec.Address(address))
	}

	if geo != nil {
		first = append(first, dec.Geo(geo))
	}

	return schema.New(PlaceTypeName, append(first, decorators...)...)
}
