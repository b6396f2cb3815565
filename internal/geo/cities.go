package geo

import (
	"strings"
	"unicode"
)

// DefaultCityName is the fallback used when a city is not in the table.
const DefaultCityName = "İstanbul"

// CityTable maps normalized city names to coordinates. Lookups never fail:
// unknown names resolve to the default city so distance computation stays
// total over free-text city fields.
type CityTable struct {
	cities      map[string]Coordinates
	defaultCity Coordinates
}

// cityCoordinates holds the known city centers.
//
//nolint:gochecknoglobals // Static lookup table for city geolocation
var cityCoordinates = map[string]Coordinates{
	"İstanbul":   {Latitude: 41.0082, Longitude: 28.9784},
	"Ankara":     {Latitude: 39.9334, Longitude: 32.8597},
	"İzmir":      {Latitude: 38.4237, Longitude: 27.1428},
	"Bursa":      {Latitude: 40.1885, Longitude: 29.0610},
	"Antalya":    {Latitude: 36.8969, Longitude: 30.7133},
	"Adana":      {Latitude: 37.0000, Longitude: 35.3213},
	"Konya":      {Latitude: 37.8667, Longitude: 32.4833},
	"Gaziantep":  {Latitude: 37.0662, Longitude: 37.3833},
	"Mersin":     {Latitude: 36.8000, Longitude: 34.6333},
	"Kayseri":    {Latitude: 38.7312, Longitude: 35.4787},
	"Eskişehir":  {Latitude: 39.7767, Longitude: 30.5206},
	"Diyarbakır": {Latitude: 37.9144, Longitude: 40.2306},
	"Samsun":     {Latitude: 41.2928, Longitude: 36.3313},
	"Denizli":    {Latitude: 37.7765, Longitude: 29.0864},
	"Trabzon":    {Latitude: 41.0015, Longitude: 39.7178},
}

// DefaultCityTable returns the built-in Turkish city table with İstanbul as
// the fallback city.
func DefaultCityTable() *CityTable {
	return NewCityTable(cityCoordinates, DefaultCityName)
}

// NewCityTable builds a table from the given city map. The default city name
// must be a key of the map; if it is not, the zero coordinate is used as the
// fallback.
func NewCityTable(cities map[string]Coordinates, defaultCity string) *CityTable {
	normalized := make(map[string]Coordinates, len(cities))
	for name, coords := range cities {
		normalized[normalizeCityName(name)] = coords
	}
	return &CityTable{
		cities:      normalized,
		defaultCity: normalized[normalizeCityName(defaultCity)],
	}
}

// Lookup resolves a city name to coordinates. Unknown or empty names resolve
// to the default city.
func (t *CityTable) Lookup(city string) Coordinates {
	if coords, ok := t.cities[normalizeCityName(city)]; ok {
		return coords
	}
	return t.defaultCity
}

// Contains reports whether the city name is in the table.
func (t *CityTable) Contains(city string) bool {
	_, ok := t.cities[normalizeCityName(city)]
	return ok
}

// normalizeCityName folds a city name for lookup using Turkish casing rules,
// so "ISPARTA" and "ısparta" resolve to the same key.
func normalizeCityName(city string) string {
	return strings.ToLowerSpecial(unicode.TurkishCase, strings.TrimSpace(city))
}
