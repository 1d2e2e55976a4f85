// Package defaults provides a plug-and-play default toolbox builder for the
// assistant examples: weather lookup, simulated search, and the sandboxed
// calculator.
package defaults

import (
	"github.com/hearthlab/hearth/pkg/assistanttoolbox/calc"
	"github.com/hearthlab/hearth/pkg/assistanttoolbox/weather"
	"github.com/hearthlab/hearth/pkg/assistanttoolbox/websearch"
	"github.com/hearthlab/hearth/pkg/tools/toolbox"
)

// New builds the default assistant toolbox. Later entries overwrite earlier
// ones when tool names collide.
func New(extra ...*toolbox.ToolBox) *toolbox.ToolBox {
	tb := toolbox.New()
	tb.Merge(weather.Tools())
	tb.Merge(websearch.Tools())
	tb.Merge(calc.Tools())

	for _, other := range extra {
		tb.Merge(other)
	}

	return tb
}
