package schemaorg

const (
	//ArticleTypeName is a type name constant for Article
	ArticleTypeName string = "Article"
	//EventTypeName is a type name constant for Event
	EventTypeName string = "Event"
	//GeoCoordinatesTypeName is a type name constant for GeoCoordinates
	GeoCoordinatesTypeName string = "GeoCoordinates"
	//OfferTypeName is a type name constant for Offer
	OfferTypeName string = "Offer"
	//OrganizationTypeName is a type name constant for Organization
	OrganizationTypeName string = "Organization"
	//PersonTypeName is a type name constant for Person
	PersonTypeName string = "Person"
	//PlaceTypeName is a type name constant for Place
	PlaceTypeName string = "Place"
	//PostalAddressTypeName is a type name constant for PostalAddress
	PostalAddressTypeName string = "PostalAddress"
	//ProductTypeName is a type name constant for Product
	ProductTypeName string = "Product"
)
