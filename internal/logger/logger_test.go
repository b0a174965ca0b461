package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelOff, ParseLevel("off"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestZeroLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(&buf, LevelInfo, Fields{"service": "directory-admin"})

	l.Debug("hidden", nil)
	assert.Zero(t, buf.Len(), "debug must be filtered at info level")

	l.Info("cache invalidated", map[string]interface{}{"key": "categories"})
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "cache invalidated", entry["message"])
	assert.Equal(t, "categories", entry["key"])
	assert.Equal(t, "directory-admin", entry["service"])

	buf.Reset()
	l.SetLevel(LevelDebug)
	l.Debug("now visible", nil)
	assert.Contains(t, buf.String(), "now visible")

	buf.Reset()
	l.Error(errors.New("upstream down"), nil)
	assert.Contains(t, buf.String(), "upstream down")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, LevelError, nil)

	l.Info("hidden", nil)
	assert.Zero(t, buf.Len())

	l.Error(errors.New("catalog unreachable"), map[string]interface{}{"op": "list"})
	assert.Contains(t, buf.String(), "catalog unreachable")
	assert.Contains(t, buf.String(), "op=list")
	assert.NotContains(t, buf.String(), "{")

	buf.Reset()
	l.Error(nil, nil)
	assert.Zero(t, buf.Len())
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	assert.NotPanics(t, func() {
		l.Info("x", nil)
		l.Debug("x", nil)
		l.Error(errors.New("x"), nil)
		l.SetLevel(LevelDebug)
	})
}

func TestMemoryLogger(t *testing.T) {
	l := NewMemoryLogger()
	props := map[string]interface{}{"key": "categories"}

	l.Info("cache invalidated", props)
	l.Debug("stale fetch discarded", nil)
	l.Error(errors.New("evict failed"), nil)
	props["key"] = "mutated"

	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "categories", entries[0].Fields["key"], "fields are copied")
	assert.Len(t, l.Find(LevelError, "evict failed"), 1)

	l.SetLevel(LevelError)
	l.Info("dropped", nil)
	l.Debug("dropped", nil)
	l.Fatal(errors.New("kept"), nil)
	assert.Empty(t, l.Find(LevelInfo, "dropped"))
	assert.Len(t, l.Find(LevelFatal, "kept"), 1)

	l.SetLevel(LevelOff)
	l.Error(errors.New("silenced"), nil)
	assert.Len(t, l.Entries(), 4)
}
