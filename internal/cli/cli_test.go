package cli

import (
	"path/filepath"
	"testing"

	"github.com/Donne-shi/daily-planner/internal/storage"
	"github.com/Donne-shi/daily-planner/internal/store"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	kv, err := storage.NewFileKV(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("new file kv: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	st := store.New(storage.NewGateway(kv))
	st.Load()
	t.Cleanup(st.Flush)
	return &Context{Store: st}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 00m"},
		{125, "2h 05m"},
	}
	for _, tt := range tests {
		if got := formatMinutes(tt.minutes); got != tt.want {
			t.Errorf("formatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	got := splitLines("one\n  two  \n\nthree")
	want := []string{"one", "two", "", "three"}
	if len(got) != len(want) {
		t.Fatalf("splitLines returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTaskAddCmdValidate(t *testing.T) {
	if err := (&TaskAddCmd{Title: "write"}).Validate(); err != nil {
		t.Errorf("valid command rejected: %v", err)
	}
	if err := (&TaskAddCmd{Title: "  "}).Validate(); err == nil {
		t.Error("blank title accepted")
	}
	if err := (&TaskAddCmd{Title: "write", Date: "tomorrow"}).Validate(); err == nil {
		t.Error("invalid date accepted")
	}
}

func TestFocusLogCmdValidate(t *testing.T) {
	score := 4
	tests := []struct {
		name    string
		cmd     FocusLogCmd
		wantErr bool
	}{
		{"minutes only", FocusLogCmd{Minutes: 25}, false},
		{"zero minutes", FocusLogCmd{Minutes: 0}, true},
		{"energy pair", FocusLogCmd{Minutes: 25, Energy: &score, Tag: "energized"}, false},
		{"score without tag", FocusLogCmd{Minutes: 25, Energy: &score}, true},
		{"tag without score", FocusLogCmd{Minutes: 25, Tag: "flow"}, true},
		{"unknown tag", FocusLogCmd{Minutes: 25, Energy: &score, Tag: "wired"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTaskCommandsRoundTrip(t *testing.T) {
	ctx := newTestContext(t)

	add := &TaskAddCmd{Title: "review notes", Date: "2024-06-10"}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("add: %v", err)
	}

	tasks := ctx.Store.TasksByDate("2024-06-10")
	if len(tasks) != 1 {
		t.Fatalf("expected one task, got %d", len(tasks))
	}

	done := &TaskDoneCmd{ID: tasks[0].ID}
	if err := done.Run(ctx); err != nil {
		t.Fatalf("done: %v", err)
	}
	if !ctx.Store.TasksByDate("2024-06-10")[0].IsCompleted {
		t.Error("task not completed")
	}

	rm := &TaskRmCmd{ID: tasks[0].ID}
	if err := rm.Run(ctx); err != nil {
		t.Fatalf("rm: %v", err)
	}
	if len(ctx.Store.TasksByDate("2024-06-10")) != 0 {
		t.Error("task not deleted")
	}
}

func TestTaskDoneUnknownID(t *testing.T) {
	ctx := newTestContext(t)

	if err := (&TaskDoneCmd{ID: "nope"}).Run(ctx); err == nil {
		t.Error("unknown id should surface an error to the user")
	}
	if err := (&TaskRmCmd{ID: "nope"}).Run(ctx); err == nil {
		t.Error("unknown id should surface an error to the user")
	}
}

func TestResetRequiresForce(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Store.AddTask("precious", false, "")

	if err := (&ResetCmd{}).Run(ctx); err == nil {
		t.Fatal("reset without --force should fail")
	}
	if len(ctx.Store.Snapshot().Tasks) != 1 {
		t.Error("reset without --force wiped data")
	}

	if err := (&ResetCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("forced reset: %v", err)
	}
	if len(ctx.Store.Snapshot().Tasks) != 0 {
		t.Error("forced reset left tasks behind")
	}
}
