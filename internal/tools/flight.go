package tools

import (
	"context"
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-agent-go/tool"
	"trpc.group/trpc-go/trpc-agent-go/tool/function"

	"github.com/selvam85/google-adk-samples/internal/refdata"
)

type flightStatusRequest struct {
	FlightNumber string `json:"flight_number" jsonschema:"description=Flight number such as AA123 or UA456"`
}

type flightStatusResponse struct {
	Found        bool   `json:"found"`
	FlightNumber string `json:"flight_number,omitempty"`
	Airline      string `json:"airline,omitempty"`
	Route        string `json:"route,omitempty"`
	Departure    string `json:"departure,omitempty"`
	Arrival      string `json:"arrival,omitempty"`
	Status       string `json:"status,omitempty"`
	Gate         string `json:"gate,omitempty"`
	Delay        string `json:"delay,omitempty"`
	Error        string `json:"error,omitempty"`
	Hint         string `json:"hint,omitempty"`
}

// NewFlightStatusTool returns the get_flight_status tool backed by the static
// flight table.
func NewFlightStatusTool() tool.CallableTool {
	return function.NewFunctionTool(
		getFlightStatus,
		function.WithName("get_flight_status"),
		function.WithDescription("Get the current status of a flight, including departure and "+
			"arrival times, gate information, and delays."),
	)
}

func getFlightStatus(_ context.Context, req flightStatusRequest) (flightStatusResponse, error) {
	f, ok := refdata.FlightByNumber(req.FlightNumber)
	if !ok {
		return flightStatusResponse{
			Found: false,
			Error: fmt.Sprintf("Flight %q not found.", strings.ToUpper(strings.TrimSpace(req.FlightNumber))),
			Hint:  "Try: " + strings.Join(refdata.FlightNumbers(), ", "),
		}, nil
	}
	rsp := flightStatusResponse{
		Found:        true,
		FlightNumber: f.Number,
		Airline:      f.Airline,
		Route:        fmt.Sprintf("%s → %s", f.Origin, f.Destination),
		Departure:    f.Departure,
		Arrival:      f.Arrival,
		Status:       f.Status,
		Gate:         f.Gate,
	}
	if f.DelayMinutes > 0 {
		rsp.Delay = fmt.Sprintf("%d minutes", f.DelayMinutes)
	}
	return rsp, nil
}
