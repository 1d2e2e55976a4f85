// Package tools groups the tool registry and its protocol bridges. The
// toolbox subpackage holds the registry itself; mcpserver exposes a registry
// over the Model Context Protocol.
package tools
