package refdata

import "sort"

// Flight is the stored record for a tracked flight. DelayMinutes is zero
// for flights without a reported delay.
type Flight struct {
	Number       string
	Airline      string
	Origin       string
	Destination  string
	Departure    string
	Arrival      string
	Status       string
	Gate         string
	DelayMinutes int
}

var flightByNumber = map[string]Flight{
	"AA123": {
		Number:      "AA123",
		Airline:     "American Airlines",
		Origin:      "JFK",
		Destination: "LAX",
		Departure:   "2026-03-15 08:00",
		Arrival:     "2026-03-15 11:30",
		Status:      "On Time",
		Gate:        "B22",
	},
	"UA456": {
		Number:       "UA456",
		Airline:      "United Airlines",
		Origin:       "SFO",
		Destination:  "ORD",
		Departure:    "2026-03-15 14:00",
		Arrival:      "2026-03-15 20:15",
		Status:       "Delayed",
		Gate:         "C17",
		DelayMinutes: 45,
	},
	"DL789": {
		Number:      "DL789",
		Airline:     "Delta Airlines",
		Origin:      "ATL",
		Destination: "MIA",
		Departure:   "2026-03-15 10:30",
		Arrival:     "2026-03-15 12:45",
		Status:      "Boarding",
		Gate:        "A5",
	},
}

// FlightByNumber returns the flight record for a flight number, matched
// case-insensitively with surrounding whitespace ignored.
func FlightByNumber(number string) (Flight, bool) {
	f, ok := flightByNumber[normalizeUpper(number)]
	return f, ok
}

// FlightNumbers returns all tracked flight numbers in stable order.
func FlightNumbers() []string {
	numbers := make([]string, 0, len(flightByNumber))
	for n := range flightByNumber {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers)
	return numbers
}
