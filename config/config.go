// Package config loads stickergen settings: the Gemini credential from the
// environment (or a .env file) and optional settings from stickergen.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mhpenta/stickergen"
	"github.com/mhpenta/stickergen/sharelink"
)

// Environment variables holding the credential, in order of precedence.
const (
	EnvAPIKey      = "GEMINI_API_KEY"
	EnvAPIKeyAlias = "API_KEY"
)

// DefaultConfigName is the file looked up in the working directory when Load
// is given no path.
const DefaultConfigName = "stickergen"

// Config holds the stickergen settings. APIKey comes from the environment; the
// other fields come from the YAML file or their defaults.
type Config struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	GalleryPath string `mapstructure:"gallery_path"`
	OutputDir   string `mapstructure:"output_dir" validate:"required"`
	LinkTarget  string `mapstructure:"link_target" validate:"oneof=embed thumbnail download"`
	LogLevel    string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat   string `mapstructure:"log_format" validate:"oneof=json text"`
}

// Load reads the configuration. path names a YAML file; when empty,
// ./stickergen.yaml is used if it exists. envFiles are loaded with godotenv
// before the environment is read (".env" when none are given); missing files
// are skipped. Variables already set in the process are not overridden.
//
// A missing credential is not an error: generation reports it instead.
func Load(path string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetDefault("output_dir", ".")
	v.SetDefault("link_target", "embed")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	if err := v.BindEnv("api_key", EnvAPIKey, EnvAPIKeyAlias); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LinkTarget = strings.ToLower(cfg.LinkTarget)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// HasCredential reports whether an API key was found.
func (c *Config) HasCredential() bool {
	return c.APIKey != ""
}

// ProviderConfig returns the Gemini provider settings.
func (c *Config) ProviderConfig() *stickergen.ProviderConfig {
	return &stickergen.ProviderConfig{
		Provider:     stickergen.ProviderGeminiAPI,
		APIKey:       c.APIKey,
		DefaultModel: stickergen.Model(c.Model),
	}
}

// Normalizer returns a share-link normalizer for the configured target.
func (c *Config) Normalizer() *sharelink.Normalizer {
	switch c.LinkTarget {
	case "thumbnail":
		return sharelink.New(sharelink.TargetThumbnail)
	case "download":
		return sharelink.New(sharelink.TargetDownload)
	default:
		return sharelink.Default()
	}
}
