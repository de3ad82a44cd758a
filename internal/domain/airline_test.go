package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAirline_NormalizesCodes(t *testing.T) {
	airline, err := NewAirline("id-1", "Delta Air Lines", "dl", "dal", "United States", true)

	require.NoError(t, err)
	assert.Equal(t, "DL", airline.IATACode)
	assert.Equal(t, "DAL", airline.ICAOCode)
}

func TestNewAirline_TrimsNameAndCountry(t *testing.T) {
	airline, err := NewAirline("id-1", "  Delta Air Lines  ", "DL", "DAL", " United States ", true)

	require.NoError(t, err)
	assert.Equal(t, "Delta Air Lines", airline.Name)
	assert.Equal(t, "United States", airline.Country)
}

func TestNewAirline_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		airline func() (Airline, error)
		field   string
	}{
		{
			name: "empty name",
			airline: func() (Airline, error) {
				return NewAirline("id-1", "   ", "DL", "DAL", "United States", true)
			},
			field: "name",
		},
		{
			name: "empty country",
			airline: func() (Airline, error) {
				return NewAirline("id-1", "Delta", "DL", "DAL", "", true)
			},
			field: "country",
		},
		{
			name: "three character IATA code",
			airline: func() (Airline, error) {
				return NewAirline("id-1", "Delta", "DLX", "DAL", "United States", true)
			},
			field: "iata_code",
		},
		{
			name: "two character ICAO code",
			airline: func() (Airline, error) {
				return NewAirline("id-1", "Delta", "DL", "DA", "United States", true)
			},
			field: "icao_code",
		},
		{
			name: "five character ICAO code",
			airline: func() (Airline, error) {
				return NewAirline("id-1", "Delta", "DL", "DALTA", "United States", true)
			},
			field: "icao_code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.airline()

			require.Error(t, err)
			assert.True(t, IsValidation(err))
			ve, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestNewAirline_AcceptsThreeAndFourCharICAO(t *testing.T) {
	_, err := NewAirline("id-1", "Delta", "DL", "DAL", "United States", true)
	assert.NoError(t, err)

	_, err = NewAirline("id-2", "Some Cargo", "SC", "CRGO", "Germany", true)
	assert.NoError(t, err)
}

func TestWithPatch_AppliesOnlyProvidedFields(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	airline, err := NewAirline("id-1", "Delta", "DL", "DAL", "United States", true)
	require.NoError(t, err)
	airline.CreatedAt = &created
	airline.UpdatedAt = &created

	now := created.Add(time.Hour)
	active := false
	updated, err := airline.WithPatch(AirlinePatch{Active: &active}, now)
	require.NoError(t, err)

	assert.Equal(t, "id-1", updated.ID)
	assert.Equal(t, "Delta", updated.Name)
	assert.Equal(t, "DL", updated.IATACode)
	assert.Equal(t, "DAL", updated.ICAOCode)
	assert.Equal(t, "United States", updated.Country)
	assert.False(t, updated.Active)
	assert.Equal(t, &created, updated.CreatedAt)
	assert.Equal(t, now, *updated.UpdatedAt)

	// the original value is untouched
	assert.True(t, airline.Active)
	assert.Equal(t, created, *airline.UpdatedAt)
}

func TestWithPatch_ReplacesNameAndCountry(t *testing.T) {
	airline, err := NewAirline("id-1", "Delta", "DL", "DAL", "United States", true)
	require.NoError(t, err)

	name := "Delta Air Lines"
	country := "USA"
	updated, err := airline.WithPatch(AirlinePatch{Name: &name, Country: &country}, time.Now())

	require.NoError(t, err)
	assert.Equal(t, "Delta Air Lines", updated.Name)
	assert.Equal(t, "USA", updated.Country)
	assert.True(t, updated.Active)
}

func TestWithPatch_RejectsBlankNameAndCountry(t *testing.T) {
	airline, err := NewAirline("id-1", "Delta", "DL", "DAL", "United States", true)
	require.NoError(t, err)

	blank := "   "
	_, err = airline.WithPatch(AirlinePatch{Name: &blank}, time.Now())
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	empty := ""
	_, err = airline.WithPatch(AirlinePatch{Country: &empty}, time.Now())
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestNewAirline_CodeLengthCountsCharactersNotBytes(t *testing.T) {
	// two characters, four bytes
	airline, err := NewAirline("id-1", "Ostfriesische Lufttransport", "öl", "olt", "Germany", true)
	require.NoError(t, err)
	assert.Equal(t, "ÖL", airline.IATACode)

	// one character, two bytes
	_, err = NewAirline("id-2", "Short", "ö", "olx", "Germany", true)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestConflictError_NamesTheCode(t *testing.T) {
	err := &ConflictError{Field: "IATA code", Value: "DL"}

	assert.True(t, IsConflict(err))
	assert.Contains(t, err.Error(), "DL")
	assert.Contains(t, err.Error(), "IATA code")
}
