// Package assistanttoolbox groups the built-in tools of the assistant
// examples: a canned weather lookup, a simulated web search, and a sandboxed
// calculator. Each subpackage exposes its tools as a toolbox.ToolBox; the
// defaults subpackage merges them into the standard set.
package assistanttoolbox
