// Package refdata holds the static reference tables the sample agents expose
// through their tools. All tables are initialized at load time and never
// mutated; lookups normalize case and surrounding whitespace.
package refdata

import (
	"sort"
	"strings"
)

// WeatherReport is the stored weather record for a supported city.
type WeatherReport struct {
	City        string
	Temperature string
	Condition   string
}

var weatherByCity = map[string]WeatherReport{
	"new york":    {City: "New York", Temperature: "45°F", Condition: "Cloudy"},
	"los angeles": {City: "Los Angeles", Temperature: "72°F", Condition: "Sunny"},
	"chicago":     {City: "Chicago", Temperature: "28°F", Condition: "Snowy"},
	"miami":       {City: "Miami", Temperature: "82°F", Condition: "Partly Cloudy"},
}

// WeatherByCity returns the weather record for a city. The city name is
// matched case-insensitively with surrounding whitespace ignored.
func WeatherByCity(city string) (WeatherReport, bool) {
	r, ok := weatherByCity[normalizeLower(city)]
	return r, ok
}

// WeatherCities returns the display names of all supported cities in
// stable order.
func WeatherCities() []string {
	names := make([]string, 0, len(weatherByCity))
	for _, r := range weatherByCity {
		names = append(names, r.City)
	}
	sort.Strings(names)
	return names
}

func normalizeLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
