// Package driving holds the interfaces the CLI, TUI and MCP front ends call.
// internal/core/services implements them.
package driving
