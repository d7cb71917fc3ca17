package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, InfoLevel).Named("loader")
	l.Debug("not visible")
	l.Info("loaded", String("file", "career.json"), Int("years", 3))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
	var entry map[string]any
	assert.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "loaded", entry["msg"])
	assert.Equal(t, "loader", entry["logger"])
	assert.Equal(t, "career.json", entry["file"])
	assert.Equal(t, float64(3), entry["years"])
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, WarnLevel)
	l.Info("dropped")
	assert.Equal(t, 0, buf.Len())
	l.SetLevel(DebugLevel)
	assert.Equal(t, DebugLevel, l.Level())
	l.Debug("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithFilter(t *testing.T) {
	var buf bytes.Buffer
	opt, err := WithFilter("debug:loader")
	assert.NoError(t, err)
	l := New(&buf, DebugLevel, opt)
	l.Named("loader").Debug("from loader")
	l.Named("render").Debug("from render")
	assert.Contains(t, buf.String(), "from loader")
	assert.NotContains(t, buf.String(), "from render")
}

func TestGetFromContext(t *testing.T) {
	l := New(&bytes.Buffer{}, InfoLevel)
	ctx := AddToContext(context.Background(), l)
	assert.Same(t, l, GetFromContext(ctx))
	assert.Same(t, Default(), GetFromContext(context.Background()))
}
