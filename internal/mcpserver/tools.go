package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func addTaskTool() mcp.Tool {
	return mcp.NewTool("add_task",
		mcp.WithDescription("Add a task to a day's list. The date defaults to today."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Task title")),
		mcp.WithBoolean("top3",
			mcp.Description("Mark as one of the day's top three priorities")),
		mcp.WithString("date",
			mcp.Description("Day bucket in YYYY-MM-DD form (defaults to today)")),
	)
}

func listTasksTool() mcp.Tool {
	return mcp.NewTool("list_tasks",
		mcp.WithDescription("List the tasks for a day, including ids, completion state, and top-3 flags."),
		mcp.WithString("date",
			mcp.Description("Day bucket in YYYY-MM-DD form (defaults to today)")),
	)
}

func completeTaskTool() mcp.Tool {
	return mcp.NewTool("complete_task",
		mcp.WithDescription("Toggle a task's completion state by id."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task id as returned by add_task or list_tasks")),
	)
}

func logFocusSessionTool() mcp.Tool {
	return mcp.NewTool("log_focus_session",
		mcp.WithDescription("Record a completed focus (pomodoro) session."),
		mcp.WithNumber("minutes",
			mcp.Required(),
			mcp.Description("Session length in minutes")),
		mcp.WithString("date",
			mcp.Description("Day bucket in YYYY-MM-DD form (defaults to today)")),
		mcp.WithNumber("energy_score",
			mcp.Description("Energy score 1-5; requires energy_tag")),
		mcp.WithString("energy_tag",
			mcp.Description("Energy tag (drained|tired|steady|energized|flow); requires energy_score")),
	)
}

func weekSummaryTool() mcp.Tool {
	return mcp.NewTool("week_summary",
		mcp.WithDescription("Summarize a week: total focus minutes, goals, and the reflection if one exists."),
		mcp.WithString("week",
			mcp.Description("Any day of the target week in YYYY-MM-DD form (defaults to this week)")),
	)
}

func updateSettingsTool() mcp.Tool {
	return mcp.NewTool("update_settings",
		mcp.WithDescription("Merge a partial settings update; fields left out are not changed."),
		mcp.WithNumber("default_pomodoro_minutes",
			mcp.Description("Default pomodoro length in minutes")),
		mcp.WithNumber("max_pomodoro_minutes",
			mcp.Description("Maximum pomodoro length in minutes")),
		mcp.WithBoolean("voice_enabled",
			mcp.Description("Enable voice feedback")),
		mcp.WithBoolean("vibration_enabled",
			mcp.Description("Enable vibration feedback")),
		mcp.WithBoolean("dark_mode",
			mcp.Description("Enable dark mode")),
		mcp.WithString("user_name",
			mcp.Description("Display name")),
		mcp.WithString("user_avatar",
			mcp.Description("Avatar identifier")),
		mcp.WithString("mission",
			mcp.Description("Personal mission statement")),
		mcp.WithString("vision",
			mcp.Description("Personal vision statement")),
	)
}
