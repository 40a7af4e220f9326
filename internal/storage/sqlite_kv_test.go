package storage

import (
	"path/filepath"
	"testing"
)

func newTestSQLiteKV(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := NewMemoryKV()
	if err != nil {
		t.Fatalf("new memory kv: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestSQLiteKVGetAbsent(t *testing.T) {
	kv := newTestSQLiteKV(t)

	data, err := kv.Get("sessions")
	if err != nil {
		t.Fatalf("get absent key: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil for absent key, got %q", data)
	}
}

func TestSQLiteKVUpsert(t *testing.T) {
	kv := newTestSQLiteKV(t)

	if err := kv.Set("settings", []byte(`{"darkMode":false}`)); err != nil {
		t.Fatal(err)
	}
	if err := kv.Set("settings", []byte(`{"darkMode":true}`)); err != nil {
		t.Fatal(err)
	}

	data, err := kv.Get("settings")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"darkMode":true}` {
		t.Errorf("upsert kept stale value: %q", data)
	}
}

func TestSQLiteKVDelete(t *testing.T) {
	kv := newTestSQLiteKV(t)

	if err := kv.Set("tasks", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	if err := kv.Delete("tasks"); err != nil {
		t.Fatal(err)
	}
	data, err := kv.Get("tasks")
	if err != nil {
		t.Fatal(err)
	}
	if data != nil {
		t.Errorf("key survived delete: %q", data)
	}

	if err := kv.Delete("tasks"); err != nil {
		t.Errorf("delete absent key: %v", err)
	}
}

func TestSQLiteKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "planner.db")

	kv, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := kv.Set("year_goals", []byte(`[{"id":"g1"}]`)); err != nil {
		t.Fatal(err)
	}
	kv.Close()

	kv2, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer kv2.Close()

	data, err := kv2.Get("year_goals")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[{"id":"g1"}]` {
		t.Errorf("value lost across reopen: %q", data)
	}
}

func TestOpenFactory(t *testing.T) {
	dir := t.TempDir()

	kv, err := Open(filepath.Join(dir, "planner.db"))
	if err != nil {
		t.Fatalf("open sqlite path: %v", err)
	}
	if _, ok := kv.(*SQLiteKV); !ok {
		t.Errorf("expected *SQLiteKV for .db path, got %T", kv)
	}
	kv.Close()

	kv, err = Open(filepath.Join(dir, "data"))
	if err != nil {
		t.Fatalf("open dir path: %v", err)
	}
	if _, ok := kv.(*FileKV); !ok {
		t.Errorf("expected *FileKV for directory path, got %T", kv)
	}
	kv.Close()

	if _, err := Open(""); err == nil {
		t.Error("empty path should fail")
	}
}
