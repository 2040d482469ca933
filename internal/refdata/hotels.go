package refdata

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Hotel is a stored hotel listing. PricePerNight is in whole dollars.
type Hotel struct {
	ID            string
	Name          string
	Stars         int
	PricePerNight int
	Available     bool
	Amenities     []string
}

var hotelsByCity = map[string][]Hotel{
	"paris": {
		{ID: "H001", Name: "Hotel Le Marais", Stars: 4, PricePerNight: 180, Available: true,
			Amenities: []string{"WiFi", "Breakfast", "Pool"}},
		{ID: "H002", Name: "Boutique Saint-Germain", Stars: 5, PricePerNight: 320, Available: true,
			Amenities: []string{"WiFi", "Spa", "Restaurant", "Gym"}},
		{ID: "H003", Name: "Paris Budget Inn", Stars: 2, PricePerNight: 75, Available: true,
			Amenities: []string{"WiFi"}},
	},
	"tokyo": {
		{ID: "H004", Name: "Shinjuku Grand Hotel", Stars: 4, PricePerNight: 150, Available: true,
			Amenities: []string{"WiFi", "Restaurant", "Onsen"}},
		{ID: "H005", Name: "Shibuya Capsule Hotel", Stars: 2, PricePerNight: 45, Available: true,
			Amenities: []string{"WiFi", "Locker"}},
		{ID: "H006", Name: "Imperial Tokyo", Stars: 5, PricePerNight: 450, Available: false,
			Amenities: []string{"WiFi", "Spa", "Pool", "Restaurant", "Gym"}},
	},
	"london": {
		{ID: "H007", Name: "The Westminster", Stars: 4, PricePerNight: 200, Available: true,
			Amenities: []string{"WiFi", "Breakfast", "Bar"}},
		{ID: "H008", Name: "Covent Garden Suites", Stars: 5, PricePerNight: 380, Available: true,
			Amenities: []string{"WiFi", "Spa", "Restaurant", "Theater tickets"}},
	},
}

// HotelsInCity returns every listing for a city, available or not. The city
// name is matched case-insensitively with surrounding whitespace ignored.
func HotelsInCity(city string) ([]Hotel, bool) {
	hotels, ok := hotelsByCity[normalizeLower(city)]
	return hotels, ok
}

// HotelCities returns the supported city names in stable order, title-cased
// for display.
func HotelCities() []string {
	cities := make([]string, 0, len(hotelsByCity))
	for c := range hotelsByCity {
		cities = append(cities, c)
	}
	sort.Strings(cities)
	title := cases.Title(language.English)
	for i, c := range cities {
		cities[i] = title.String(c)
	}
	return cities
}
