package domain

import (
	"fmt"
	"strings"
)

// Address is a plain value object; it validates its own fields and carries no
// registry membership.
type Address struct {
	street  string
	city    string
	country string
	zipCode string
}

func NewAddress(street, city, country, zipCode string) (*Address, error) {
	a := &Address{}
	if err := a.set(street, city, country, zipCode); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Address) set(street, city, country, zipCode string) error {
	for field, val := range map[string]string{
		"street":  street,
		"city":    city,
		"country": country,
		"zipCode": zipCode,
	} {
		if strings.TrimSpace(val) == "" {
			return NewError(CodeValidation, "address", field+" cannot be empty", nil)
		}
	}
	a.street, a.city, a.country, a.zipCode = street, city, country, zipCode
	return nil
}

// Update replaces all fields at once; no partial update on validation failure.
func (a *Address) Update(street, city, country, zipCode string) error {
	return a.set(street, city, country, zipCode)
}

func (a *Address) Street() string  { return a.street }
func (a *Address) City() string    { return a.city }
func (a *Address) Country() string { return a.country }
func (a *Address) ZipCode() string { return a.zipCode }

// FormatForShipping renders the full address as a single shipping line.
func (a *Address) FormatForShipping() string {
	return fmt.Sprintf("%s, %s %s, %s", a.street, a.zipCode, a.city, a.country)
}
