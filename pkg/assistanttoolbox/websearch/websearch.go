// Package websearch provides a simulated search tool that echoes the query
// inside a canned template. A real assistant would call a search API here.
package websearch

import (
	"context"
	"fmt"

	"github.com/hearthlab/hearth/pkg/tools/toolbox"
)

// Tools returns a ToolBox containing the search stub.
func Tools() *toolbox.ToolBox {
	tb := toolbox.New()
	tb.Register(toolbox.Tool{
		Name:        "search",
		Description: "Search for information on the web",
		Handler:     search,
	})

	return tb
}

func search(_ context.Context, query string) (string, error) {
	return fmt.Sprintf("Simulated search results for: %s", query), nil
}
