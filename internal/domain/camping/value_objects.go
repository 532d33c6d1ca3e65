package camping

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 5000
	MaxFieldLength       = 255
)

type Location struct {
	postcode     string
	county       string
	city         string
	street       string
	streetNumber string
}

func NewLocation(postcode, county, city, street, streetNumber string) (Location, error) {
	loc := Location{
		postcode:     strings.TrimSpace(postcode),
		county:       strings.TrimSpace(county),
		city:         strings.TrimSpace(city),
		street:       strings.TrimSpace(street),
		streetNumber: strings.TrimSpace(streetNumber),
	}
	if loc.city == "" {
		return Location{}, ErrCityRequired
	}
	for _, f := range []string{loc.postcode, loc.county, loc.city, loc.street, loc.streetNumber} {
		if utf8.RuneCountInString(f) > MaxFieldLength {
			return Location{}, ErrFieldTooLong
		}
	}
	return loc, nil
}

func (l Location) Postcode() string     { return l.postcode }
func (l Location) County() string       { return l.county }
func (l Location) City() string         { return l.city }
func (l Location) Street() string       { return l.street }
func (l Location) StreetNumber() string { return l.streetNumber }

// Label is the suggestion text, e.g. "Pine Hill - Siófok, Somogy".
func Label(name, city, county string) string {
	var b strings.Builder
	b.WriteString(name)
	if city != "" {
		b.WriteString(" - ")
		b.WriteString(city)
		if county != "" {
			b.WriteString(", ")
			b.WriteString(county)
		}
	}
	return b.String()
}

type Billing struct {
	companyName    string
	taxID          string
	billingAddress string
}

func NewBilling(companyName, taxID, billingAddress string) (Billing, error) {
	b := Billing{
		companyName:    strings.TrimSpace(companyName),
		taxID:          strings.TrimSpace(taxID),
		billingAddress: strings.TrimSpace(billingAddress),
	}
	for _, f := range []string{b.companyName, b.taxID, b.billingAddress} {
		if utf8.RuneCountInString(f) > MaxFieldLength {
			return Billing{}, ErrFieldTooLong
		}
	}
	return b, nil
}

func (b Billing) CompanyName() string    { return b.companyName }
func (b Billing) TaxID() string          { return b.taxID }
func (b Billing) BillingAddress() string { return b.billingAddress }

func ReconstructLocation(postcode, county, city, street, streetNumber string) Location {
	return Location{postcode: postcode, county: county, city: city, street: street, streetNumber: streetNumber}
}

func ReconstructBilling(companyName, taxID, billingAddress string) Billing {
	return Billing{companyName: companyName, taxID: taxID, billingAddress: billingAddress}
}
