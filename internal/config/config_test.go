package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/showreel/internal/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every XDG directory at a temp dir and silences warnings.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("SHOWREEL_CONFIG_PATH", "")
	t.Cleanup(colors.SetOutput(io.Discard, io.Discard))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	Load()

	assert.Equal(t, filepath.Join(dir, "config", "showreel"), Get("config_dir", ""))
	assert.Equal(t, filepath.Join(dir, "state", "showreel"), Get("state_dir", ""))
	assert.Equal(t, "directional", Get("variant", ""))
	assert.Equal(t, 6000, GetInt("autoplay_interval_ms", 0))
	assert.Equal(t, 10000.0, GetFloat("swipe_threshold", 0))
	assert.Equal(t, 10.0, GetFloat("pixels_per_cell", 0))
	assert.Equal(t, "", Get("debounce_ms", "unset"))
	assert.Equal(t, "auto", Get("theme", ""))
	assert.False(t, GetBool("journal_enabled", true))
	assert.Equal(t, "default", Get("missing", "default"))
}

func TestLoadWritesSampleConfig(t *testing.T) {
	dir := isolate(t)

	Load()

	data, err := os.ReadFile(filepath.Join(dir, "config", "showreel", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# showreel configuration")
	assert.Regexp(t, `variant = ["']directional["']`, string(data))
	assert.NotRegexp(t, `(?m)^debounce_ms\s*=`, string(data))
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
variant = "card"
autoplay_interval_ms = 2500
debounce_ms = 0
swipe_threshold = 5000.5
journal_enabled = true
`), 0o644))
	t.Setenv("SHOWREEL_CONFIG_PATH", path)
	t.Setenv("SHOWREEL_THEME", "Light")

	Load()

	assert.Equal(t, "card", Get("variant", ""))
	assert.Equal(t, 2500, GetInt("autoplay_interval_ms", 0))
	assert.Equal(t, "0", Get("debounce_ms", ""))
	assert.Equal(t, 5000.5, GetFloat("swipe_threshold", 0))
	assert.True(t, GetBool("journal_enabled", false))
	assert.Equal(t, "light", Get("theme", ""))
	assert.Equal(t, path, Path())
}

func TestEnvWinsOverFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`variant = "card"`), 0o644))
	t.Setenv("SHOWREEL_CONFIG_PATH", path)
	t.Setenv("SHOWREEL_VARIANT", "directional")

	Load()

	assert.Equal(t, "directional", Get("variant", ""))
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("SHOWREEL_VARIANT", "carousel3d")
	t.Setenv("SHOWREEL_AUTOPLAY_INTERVAL_MS", "-5")
	t.Setenv("SHOWREEL_DEBOUNCE_MS", "soon")
	t.Setenv("SHOWREEL_SWIPE_THRESHOLD", "NaN")
	t.Setenv("SHOWREEL_DEBUG", "maybe")

	Load()

	assert.Equal(t, "directional", Get("variant", ""))
	assert.Equal(t, 6000, GetInt("autoplay_interval_ms", 0))
	assert.Equal(t, "", Get("debounce_ms", "x"))
	assert.Equal(t, 10000.0, GetFloat("swipe_threshold", 0))
	assert.False(t, GetBool("debug", true))
}

func TestSetOverridesValue(t *testing.T) {
	isolate(t)
	Load()

	Set("variant", "card")
	assert.Equal(t, "card", Get("variant", ""))
}

func TestValidators(t *testing.T) {
	t.Cleanup(colors.SetOutput(io.Discard, io.Discard))

	tests := []struct {
		name      string
		validator Validator
		value     string
		want      string
	}{
		{"positive int ok", PositiveIntValidator(), "15", "15"},
		{"positive int zero", PositiveIntValidator(), "0", "d"},
		{"non negative zero", NonNegativeIntValidator(), "0", "0"},
		{"non negative negative", NonNegativeIntValidator(), "-1", "d"},
		{"float ok", PositiveFloatValidator(), "12.5", "12.5"},
		{"float inf", PositiveFloatValidator(), "+Inf", "d"},
		{"enum lowercases", EnumValidator(map[string]bool{"card": true}), "CARD", "card"},
		{"enum rejects", EnumValidator(map[string]bool{"card": true}), "cube", "d"},
		{"bool yes", BoolValidator(), "yes", "true"},
		{"bool off", BoolValidator(), "off", "false"},
		{"bool invalid", BoolValidator(), "nah", "d"},
		{"empty uses default", BoolValidator(), "", "d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.validator("key", tt.value, "d")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
