// Package tools exposes the sample reference tables as callable agent tools.
// Every tool is a pure function over static data: unknown keys produce a
// structured "not found" result with a hint listing the valid keys, never an
// error return.
package tools

import (
	"context"
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-agent-go/tool"
	"trpc.group/trpc-go/trpc-agent-go/tool/function"

	"github.com/selvam85/google-adk-samples/internal/refdata"
)

// statusUnsupported marks lookups for keys outside the reference tables.
const statusUnsupported = "unsupported"

type weatherRequest struct {
	City string `json:"city" jsonschema:"description=Name of the city to get weather for"`
}

type weatherResponse struct {
	Status      string `json:"status,omitempty"`
	City        string `json:"city,omitempty"`
	Temperature string `json:"temperature,omitempty"`
	Condition   string `json:"condition,omitempty"`
	Message     string `json:"message,omitempty"`
}

// NewWeatherTool returns the get_weather tool backed by the static weather
// table.
func NewWeatherTool() tool.CallableTool {
	return function.NewFunctionTool(
		getWeather,
		function.WithName("get_weather"),
		function.WithDescription("Get the current weather for a city. "+
			"Supported cities: "+strings.Join(refdata.WeatherCities(), ", ")+"."),
	)
}

func getWeather(_ context.Context, req weatherRequest) (weatherResponse, error) {
	r, ok := refdata.WeatherByCity(req.City)
	if !ok {
		return weatherResponse{
			Status: statusUnsupported,
			Message: fmt.Sprintf("Weather data not available for %q. Supported cities: %s",
				req.City, strings.Join(refdata.WeatherCities(), ", ")),
		}, nil
	}
	return weatherResponse{
		City:        r.City,
		Temperature: r.Temperature,
		Condition:   r.Condition,
	}, nil
}
