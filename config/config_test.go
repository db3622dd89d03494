package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhpenta/stickergen"
	"github.com/mhpenta/stickergen/sharelink"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, EnvAPIKey)
	unsetEnv(t, EnvAPIKeyAlias)

	cfg, err := Load("", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.False(t, cfg.HasCredential())
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "embed", cfg.LinkTarget)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadCredentialFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "primary-key")
	t.Setenv(EnvAPIKeyAlias, "alias-key")

	cfg, err := Load("", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "primary-key", cfg.APIKey)

	pc := cfg.ProviderConfig()
	assert.Equal(t, stickergen.ProviderGeminiAPI, pc.Provider)
	assert.Equal(t, "primary-key", pc.APIKey)
}

func TestLoadCredentialAlias(t *testing.T) {
	unsetEnv(t, EnvAPIKey)
	t.Setenv(EnvAPIKeyAlias, "alias-key")

	cfg, err := Load("", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "alias-key", cfg.APIKey)
	assert.True(t, cfg.HasCredential())
}

func TestLoadDotEnv(t *testing.T) {
	unsetEnv(t, EnvAPIKey)
	unsetEnv(t, EnvAPIKeyAlias)

	envFile := writeFile(t, t.TempDir(), ".env", "GEMINI_API_KEY=from-dotenv\n")

	cfg, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.APIKey)
}

func TestLoadYAML(t *testing.T) {
	unsetEnv(t, EnvAPIKey)
	unsetEnv(t, EnvAPIKeyAlias)

	dir := t.TempDir()
	path := writeFile(t, dir, "stickergen.yaml", `
model: gemini-3-pro-image-preview
gallery_path: gallery.json
output_dir: out
link_target: Thumbnail
log_level: DEBUG
log_format: json
`)

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "gemini-3-pro-image-preview", cfg.Model)
	assert.Equal(t, "gallery.json", cfg.GalleryPath)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "thumbnail", cfg.LinkTarget)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, stickergen.Model("gemini-3-pro-image-preview"), cfg.ProviderConfig().DefaultModel)
	assert.Equal(t, sharelink.TargetThumbnail, cfg.Normalizer().Target)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "nope.yaml"), filepath.Join(dir, "missing.env"))
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "log_format: xml\n")
	_, err = Load(bad, filepath.Join(dir, "missing.env"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn", "json")

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"k":"v"`)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"loud":    slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}
