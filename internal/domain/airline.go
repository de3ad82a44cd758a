package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Airline is the catalog entity. Codes are stored uppercase and never change
// after creation.
type Airline struct {
	ID        string
	Name      string
	IATACode  string
	ICAOCode  string
	Country   string
	Active    bool
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// NewAirline builds a validated airline. Name and country are trimmed, codes
// are normalized to uppercase before the length checks.
func NewAirline(id, name, iataCode, icaoCode, country string, active bool) (Airline, error) {
	name = strings.TrimSpace(name)
	country = strings.TrimSpace(country)
	iataCode = strings.ToUpper(strings.TrimSpace(iataCode))
	icaoCode = strings.ToUpper(strings.TrimSpace(icaoCode))

	if name == "" {
		return Airline{}, &ValidationError{Field: "name", Message: "airline name cannot be empty"}
	}
	if country == "" {
		return Airline{}, &ValidationError{Field: "country", Message: "country cannot be empty"}
	}
	if utf8.RuneCountInString(iataCode) != 2 {
		return Airline{}, &ValidationError{Field: "iata_code", Message: "IATA code must be exactly 2 characters"}
	}
	if n := utf8.RuneCountInString(icaoCode); n < 3 || n > 4 {
		return Airline{}, &ValidationError{Field: "icao_code", Message: "ICAO code must be 3 or 4 characters"}
	}

	return Airline{
		ID:       id,
		Name:     name,
		IATACode: iataCode,
		ICAOCode: icaoCode,
		Country:  country,
		Active:   active,
	}, nil
}

// AirlinePatch carries the updatable fields; nil means "keep current value".
type AirlinePatch struct {
	Name    *string
	Country *string
	Active  *bool
}

// WithPatch returns a new airline with the patch applied. The result goes
// back through the construction checks, so a patch can never produce an
// entity the constructor would have rejected. ID, codes and CreatedAt are
// carried over unchanged, UpdatedAt is set to now.
func (a Airline) WithPatch(p AirlinePatch, now time.Time) (Airline, error) {
	name := a.Name
	if p.Name != nil {
		name = *p.Name
	}
	country := a.Country
	if p.Country != nil {
		country = *p.Country
	}
	active := a.Active
	if p.Active != nil {
		active = *p.Active
	}

	updated, err := NewAirline(a.ID, name, a.IATACode, a.ICAOCode, country, active)
	if err != nil {
		return Airline{}, err
	}
	updated.CreatedAt = a.CreatedAt
	updated.UpdatedAt = &now
	return updated, nil
}
