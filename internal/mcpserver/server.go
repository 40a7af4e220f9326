// Package mcpserver exposes the state container over the Model Context
// Protocol, so agents can manage tasks and log focus sessions through the
// same mutation path as the CLI.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/Donne-shi/daily-planner/internal/constants"
	"github.com/Donne-shi/daily-planner/internal/store"
)

// NewServer wires every tool to the shared store and returns the configured
// MCP server.
func NewServer(st *store.Store) *server.MCPServer {
	h := &handlers{store: st}

	s := server.NewMCPServer(
		constants.AppName,
		constants.Version,
		server.WithToolCapabilities(true),
	)

	s.AddTool(addTaskTool(), h.handleAddTask)
	s.AddTool(listTasksTool(), h.handleListTasks)
	s.AddTool(completeTaskTool(), h.handleCompleteTask)
	s.AddTool(logFocusSessionTool(), h.handleLogFocusSession)
	s.AddTool(weekSummaryTool(), h.handleWeekSummary)
	s.AddTool(updateSettingsTool(), h.handleUpdateSettings)

	return s
}
