package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduction(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug("hidden")
	logger.Info("round started", "round", "abc")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "round started", entry["msg"])
	assert.Equal(t, "abc", entry["round"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewDevelopment(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Debug("cell opened", "row", 3)
	assert.Contains(t, buf.String(), "cell opened")
	assert.Contains(t, buf.String(), "row=3")
}

func TestEngineFile(t *testing.T) {
	assert.Equal(t, "/tmp/mines-engine.log", EngineFile("/tmp/mines.log"))
	assert.Equal(t, "mines-engine", EngineFile("mines"))
}

func TestConfigureLogrus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.log")
	l := logrus.New()
	var out bytes.Buffer
	l.SetOutput(&out)

	require.NoError(t, ConfigureLogrus(l, path, true))
	l.WithField("opened", 12).Debug("cascade")

	assert.Empty(t, out.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"cascade"`)
	assert.Contains(t, string(data), `"opened":12`)
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	f := NewFile(path)
	defer f.Close()

	logger := New(f, false)
	logger.Info("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
