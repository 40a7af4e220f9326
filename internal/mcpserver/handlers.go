package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Donne-shi/daily-planner/internal/dateutil"
	"github.com/Donne-shi/daily-planner/internal/models"
	"github.com/Donne-shi/daily-planner/internal/store"
	"github.com/Donne-shi/daily-planner/internal/validation"
)

type handlers struct {
	store *store.Store
}

func (h *handlers) handleAddTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	title, _ := args["title"].(string)
	if err := validation.Title(title); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	date, _ := args["date"].(string)
	if err := validation.Day(date); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	top3, _ := args["top3"].(bool)

	task := h.store.AddTask(title, top3, date)
	return jsonResult(task)
}

func (h *handlers) handleListTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	date, _ := args["date"].(string)
	if err := validation.Day(date); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if date == "" {
		date = dateutil.Today()
	}

	tasks := h.store.TasksByDate(date)
	if tasks == nil {
		tasks = []models.Task{}
	}
	return jsonResult(map[string]any{"date": date, "tasks": tasks})
}

func (h *handlers) handleCompleteTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	id, _ := args["id"].(string)
	if id == "" {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	// The container no-ops on unknown ids; report that explicitly here so
	// the agent knows the toggle did not land.
	found := false
	for _, t := range h.store.Snapshot().Tasks {
		if t.ID == id {
			found = true
			break
		}
	}
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("task not found: %s", id)), nil
	}

	h.store.ToggleTask(id)
	for _, t := range h.store.Snapshot().Tasks {
		if t.ID == id {
			return jsonResult(t)
		}
	}
	return mcp.NewToolResultError(fmt.Sprintf("task not found: %s", id)), nil
}

func (h *handlers) handleLogFocusSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	minutesRaw, ok := args["minutes"].(float64)
	if !ok {
		return mcp.NewToolResultError("missing required parameter: minutes"), nil
	}
	minutes := int(minutesRaw)
	if err := validation.Minutes(minutes, 0); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	date, _ := args["date"].(string)
	if err := validation.Day(date); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var score *int
	if raw, ok := args["energy_score"].(float64); ok {
		n := int(raw)
		score = &n
	}
	var tag *models.EnergyTag
	if raw, ok := args["energy_tag"].(string); ok && raw != "" {
		t := models.EnergyTag(raw)
		tag = &t
	}
	if err := validation.Energy(score, tag); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	end := time.Now()
	session := h.store.AddSession(models.FocusSession{
		StartAt:         end.Add(-time.Duration(minutes) * time.Minute),
		EndAt:           end,
		DurationMinutes: minutes,
		Date:            date,
		IsCompleted:     true,
		EnergyScore:     score,
		EnergyTag:       tag,
	})
	return jsonResult(session)
}

func (h *handlers) handleWeekSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	week := dateutil.CurrentWeekStart()
	if raw, ok := args["week"].(string); ok && raw != "" {
		var err error
		week, err = dateutil.WeekStart(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	goals := h.store.GoalsByWeek(week)
	if goals == nil {
		goals = []models.WeeklyGoal{}
	}
	summary := map[string]any{
		"weekStartDate": week,
		"focusMinutes":  h.store.WeekFocusMinutes(week),
		"sessionCount":  len(h.store.WeekSessions(week)),
		"goals":         goals,
	}
	if refl, ok := h.store.ReflectionByWeek(week); ok {
		summary["reflection"] = refl
	}
	return jsonResult(summary)
}

func (h *handlers) handleUpdateSettings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	var patch models.SettingsPatch
	if raw, ok := args["default_pomodoro_minutes"].(float64); ok {
		n := int(raw)
		patch.DefaultPomodoroMinutes = &n
	}
	if raw, ok := args["max_pomodoro_minutes"].(float64); ok {
		n := int(raw)
		patch.MaxPomodoroMinutes = &n
	}
	if raw, ok := args["voice_enabled"].(bool); ok {
		patch.VoiceEnabled = &raw
	}
	if raw, ok := args["vibration_enabled"].(bool); ok {
		patch.VibrationEnabled = &raw
	}
	if raw, ok := args["dark_mode"].(bool); ok {
		patch.DarkMode = &raw
	}
	if raw, ok := args["user_name"].(string); ok {
		patch.UserName = &raw
	}
	if raw, ok := args["user_avatar"].(string); ok {
		patch.UserAvatar = &raw
	}
	if raw, ok := args["mission"].(string); ok {
		patch.Mission = &raw
	}
	if raw, ok := args["vision"].(string); ok {
		patch.Vision = &raw
	}

	if patch.Empty() {
		return mcp.NewToolResultError("no settings fields provided"), nil
	}
	if err := validation.Settings(patch, h.store.Settings()); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	updated := h.store.UpdateSettings(patch)
	return jsonResult(updated)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
