package storage

import (
	"encoding/json"
	"fmt"

	"github.com/Donne-shi/daily-planner/internal/constants"
	"github.com/Donne-shi/daily-planner/internal/logger"
	"github.com/Donne-shi/daily-planner/internal/models"
)

// Gateway maps the six state collections onto their storage keys. Load is
// best-effort: a missing or undecodable key degrades to that collection's
// default value so a corrupt store never blocks startup.
type Gateway struct {
	kv KV
}

func NewGateway(kv KV) *Gateway {
	return &Gateway{kv: kv}
}

// Load reads all six keys and returns the merged snapshot. It never fails;
// decode problems are logged and replaced with defaults.
func (g *Gateway) Load() models.Snapshot {
	snap := models.NewSnapshot()
	loadKey(g.kv, constants.KeyTasks, &snap.Tasks)
	loadKey(g.kv, constants.KeySessions, &snap.Sessions)
	loadKey(g.kv, constants.KeyWeeklyGoals, &snap.WeeklyGoals)
	loadKey(g.kv, constants.KeyWeeklyReflections, &snap.WeeklyReflections)
	loadKey(g.kv, constants.KeyYearGoals, &snap.YearGoals)
	loadKey(g.kv, constants.KeySettings, &snap.Settings)
	return snap
}

// loadKey decodes one key into dst, leaving dst's default value in place on
// a missing key or decode failure. Decoding goes through a scratch value:
// Unmarshal can fail after filling part of its target, and a half-decoded
// collection must not leak into the snapshot.
func loadKey[T any](kv KV, key string, dst *T) {
	data, err := kv.Get(key)
	if err != nil {
		logger.Warn("read failed, using defaults", "key", key, "error", err)
		return
	}
	if data == nil {
		return
	}
	decoded := *dst
	if err := json.Unmarshal(data, &decoded); err != nil {
		logger.Warn("decode failed, using defaults", "key", key, "error", err)
		return
	}
	*dst = decoded
}

// Save encodes and writes all six collections. The snapshot is a value, so
// the write is atomic from the caller's point of view even if the caller
// keeps mutating state while the save runs.
func (g *Gateway) Save(snap models.Snapshot) error {
	entries := []struct {
		key   string
		value any
	}{
		{constants.KeyTasks, emptyAsList(snap.Tasks)},
		{constants.KeySessions, emptyAsList(snap.Sessions)},
		{constants.KeyWeeklyGoals, emptyAsList(snap.WeeklyGoals)},
		{constants.KeyWeeklyReflections, emptyAsList(snap.WeeklyReflections)},
		{constants.KeyYearGoals, emptyAsList(snap.YearGoals)},
		{constants.KeySettings, snap.Settings},
	}
	for _, e := range entries {
		data, err := json.Marshal(e.value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", e.key, err)
		}
		if err := g.kv.Set(e.key, data); err != nil {
			return fmt.Errorf("write %s: %w", e.key, err)
		}
	}
	return nil
}

// emptyAsList maps a nil collection to an empty slice so it persists as []
// rather than null.
func emptyAsList[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// Clear removes every persisted key.
func (g *Gateway) Clear() error {
	for _, key := range constants.StorageKeys {
		if err := g.kv.Delete(key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	return nil
}
