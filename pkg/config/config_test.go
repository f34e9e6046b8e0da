package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/philipparndt/goshade/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goshade.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	v, err := cfg.ProjectionVector()
	require.NoError(t, err)
	assert.Equal(t, geometry.NewVector3(0, 0, 1), v)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
projection: [1, 0, 1]
workers: 4
debounce: 50ms
render:
  width: 320
  foreground: "#ff0000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 0, 1}, cfg.Projection)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 50*time.Millisecond, cfg.Debounce)
	assert.Equal(t, 320, cfg.Render.Width)
	assert.Equal(t, 800, cfg.Render.Height)
	assert.Equal(t, 1.0, cfg.Render.LineWidth)
	assert.Equal(t, "#ff0000", cfg.Render.Foreground)
	assert.Equal(t, "#ffffff", cfg.Render.Background)
}

func TestLoadWithoutDefaultFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", "projection: [1, 2"},
		{"short projection", "projection: [1, 2]"},
		{"zero projection", "projection: [0, 0, 0]"},
		{"negative workers", "workers: -1"},
		{"zero width", "render:\n  width: 0"},
		{"bad color", "render:\n  background: red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetProjection(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.SetProjection("1, 2,3"))
	assert.Equal(t, []float64{1, 2, 3}, cfg.Projection)

	assert.Error(t, cfg.SetProjection("1,2"))
	assert.Error(t, cfg.SetProjection("1,x,3"))
	assert.Error(t, cfg.SetProjection("0,0,0"))
	assert.Equal(t, []float64{1, 2, 3}, cfg.Projection)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0xff}, c)

	c, err = ParseColor("10203080")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0x80}, c)

	_, err = ParseColor("#12345")
	assert.Error(t, err)
	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)
}
