// Package weather provides a canned location-to-weather lookup tool. In a
// real assistant this would call a weather API; here it serves a fixed table
// so example runs are deterministic.
package weather

import (
	"context"
	"strings"

	"github.com/hearthlab/hearth/pkg/tools/toolbox"
)

// NotAvailable is returned for locations outside the table.
const NotAvailable = "Weather data not available"

// reports maps known locations to their fixed conditions. Lookup is
// case-insensitive on the location name.
var reports = map[string]string{
	"new york": "Sunny, 75°F",
	"london":   "Rainy, 60°F",
	"tokyo":    "Cloudy, 70°F",
	"sydney":   "Clear, 80°F",
}

// Tools returns a ToolBox containing the weather lookup tool.
func Tools() *toolbox.ToolBox {
	tb := toolbox.New()
	tb.Register(toolbox.Tool{
		Name:        "get_weather",
		Description: "Get the current weather for a location",
		Handler:     lookup,
	})

	return tb
}

func lookup(_ context.Context, location string) (string, error) {
	report, ok := reports[strings.ToLower(strings.TrimSpace(location))]
	if !ok {
		return NotAvailable, nil
	}
	return report, nil
}
