package mcp

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// List assets
	s.mcpServer.AddTool(
		mcp.NewTool("list_assets",
			mcp.WithDescription("List all controllable overlay compositions with their registry keys and field ids"),
		),
		s.handleListAssets,
	)

	// Refresh registry
	s.mcpServer.AddTool(
		mcp.NewTool("refresh_registry",
			mcp.WithDescription("Re-fetch the control app model and rebuild the asset registry"),
		),
		s.handleRefreshRegistry,
	)

	// Get asset
	s.mcpServer.AddTool(
		mcp.NewTool("get_asset",
			mcp.WithDescription("Get detailed information about one composition by registry key or subcomposition id"),
			mcp.WithString("key",
				mcp.Required(),
				mcp.Description("Registry key (slug) or subcomposition id"),
			),
		),
		s.handleGetAsset,
	)

	// Animate in
	s.mcpServer.AddTool(
		mcp.NewTool("animate_in",
			mcp.WithDescription("Animate a composition on screen"),
			mcp.WithString("key",
				mcp.Required(),
				mcp.Description("Registry key (slug) or subcomposition id"),
			),
		),
		s.handleAnimateIn,
	)

	// Animate out
	s.mcpServer.AddTool(
		mcp.NewTool("animate_out",
			mcp.WithDescription("Animate a composition off screen"),
			mcp.WithString("key",
				mcp.Required(),
				mcp.Description("Registry key (slug) or subcomposition id"),
			),
		),
		s.handleAnimateOut,
	)

	// Set field
	s.mcpServer.AddTool(
		mcp.NewTool("set_field",
			mcp.WithDescription("Set a payload field on a composition. The value is coerced to the field's declared type unless as_string is set."),
			mcp.WithString("key",
				mcp.Required(),
				mcp.Description("Registry key (slug) or subcomposition id"),
			),
			mcp.WithString("field",
				mcp.Required(),
				mcp.Description("Field id within the composition's payload"),
			),
			mcp.WithString("value",
				mcp.Required(),
				mcp.Description("Value to set, as a string"),
			),
			mcp.WithBoolean("as_string",
				mcp.Description("Skip type coercion and send the raw string (default false)"),
			),
		),
		s.handleSetField,
	)

	// Time control
	s.mcpServer.AddTool(
		mcp.NewTool("time_control",
			mcp.WithDescription("Start or stop a timer field. Optionally seed a countdown duration in seconds."),
			mcp.WithString("key",
				mcp.Required(),
				mcp.Description("Registry key (slug) or subcomposition id"),
			),
			mcp.WithString("field",
				mcp.Required(),
				mcp.Description("Timer field id within the composition's payload"),
			),
			mcp.WithBoolean("run",
				mcp.Description("Whether the timer should run (default true)"),
			),
			mcp.WithNumber("value",
				mcp.Description("Timer value offset (default 0)"),
			),
			mcp.WithNumber("seconds",
				mcp.Description("Countdown duration in seconds (optional)"),
			),
		),
		s.handleTimeControl,
	)

	// Recent events
	s.mcpServer.AddTool(
		mcp.NewTool("recent_events",
			mcp.WithDescription("Show the most recent successfully dispatched commands"),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of events to return (default 20)"),
			),
		),
		s.handleRecentEvents,
	)
}
