package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trpc.group/trpc-go/trpc-agent-go/tool"
	"trpc.group/trpc-go/trpc-agent-go/tool/function"

	"github.com/selvam85/google-adk-samples/internal/refdata"
)

const (
	dateLayout    = "2006-01-02"
	defaultGuests = 2
)

// Date issue markers carried on hotel search responses. The night count
// falls back to 1 in both cases; the marker tells the caller which kind of
// bad input produced the fallback.
const (
	dateIssueUnparsable = "dates must be in YYYY-MM-DD format; assuming a 1-night stay"
	dateIssueNotAfter   = "check-out is not after check-in; assuming a 1-night stay"
)

type hotelSearchRequest struct {
	City     string `json:"city" jsonschema:"description=Destination city such as Paris or Tokyo"`
	CheckIn  string `json:"check_in" jsonschema:"description=Check-in date in YYYY-MM-DD format"`
	CheckOut string `json:"check_out" jsonschema:"description=Check-out date in YYYY-MM-DD format"`
	Guests   int    `json:"guests,omitempty" jsonschema:"description=Number of guests (default 2)"`
}

type hotelSummary struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Stars         string   `json:"stars"`
	PricePerNight string   `json:"price_per_night"`
	Total         string   `json:"total"`
	Amenities     []string `json:"amenities"`
}

type hotelSearchResponse struct {
	Found     int            `json:"found"`
	City      string         `json:"city,omitempty"`
	Nights    int            `json:"nights,omitempty"`
	Guests    int            `json:"guests,omitempty"`
	DateIssue string         `json:"date_issue,omitempty"`
	Hotels    []hotelSummary `json:"hotels,omitempty"`
	Message   string         `json:"message,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// NewHotelSearchTool returns the search_hotels tool backed by the static
// hotel listings.
func NewHotelSearchTool() tool.CallableTool {
	return function.NewFunctionTool(
		searchHotels,
		function.WithName("search_hotels"),
		function.WithDescription("Search for available hotels in a city with prices and amenities. "+
			"Supported cities: "+strings.Join(refdata.HotelCities(), ", ")+"."),
	)
}

func searchHotels(_ context.Context, req hotelSearchRequest) (hotelSearchResponse, error) {
	listings, ok := refdata.HotelsInCity(req.City)
	if !ok {
		return hotelSearchResponse{
			Found: 0,
			Error: fmt.Sprintf("No hotels in %q. Available: %s",
				req.City, strings.Join(refdata.HotelCities(), ", ")),
		}, nil
	}

	var available []refdata.Hotel
	for _, h := range listings {
		if h.Available {
			available = append(available, h)
		}
	}
	if len(available) == 0 {
		return hotelSearchResponse{
			Found:   0,
			Message: fmt.Sprintf("No availability in %s for those dates.", req.City),
		}, nil
	}

	guests := req.Guests
	if guests <= 0 {
		guests = defaultGuests
	}
	nights, dateIssue := stayNights(req.CheckIn, req.CheckOut)

	results := make([]hotelSummary, 0, len(available))
	for _, h := range available {
		results = append(results, hotelSummary{
			ID:            h.ID,
			Name:          h.Name,
			Stars:         strings.Repeat("⭐", h.Stars),
			PricePerNight: fmt.Sprintf("$%d", h.PricePerNight),
			Total:         fmt.Sprintf("$%d", h.PricePerNight*nights),
			Amenities:     h.Amenities,
		})
	}

	return hotelSearchResponse{
		Found:     len(results),
		City:      req.City,
		Nights:    nights,
		Guests:    guests,
		DateIssue: dateIssue,
		Hotels:    results,
	}, nil
}

// stayNights computes the number of nights between two YYYY-MM-DD dates,
// minimum 1. The second return value is empty for a valid range and carries
// a date issue marker otherwise.
func stayNights(checkIn, checkOut string) (int, string) {
	in, errIn := time.Parse(dateLayout, strings.TrimSpace(checkIn))
	out, errOut := time.Parse(dateLayout, strings.TrimSpace(checkOut))
	if errIn != nil || errOut != nil {
		return 1, dateIssueUnparsable
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return 1, dateIssueNotAfter
	}
	return nights, ""
}
