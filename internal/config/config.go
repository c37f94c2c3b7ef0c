package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/Makepad-fr/nameboard/internal/errs"
	"github.com/Makepad-fr/nameboard/internal/store"
)

var validate = validator.New()

// Config holds session settings. Nothing here persists list state.
type Config struct {
	Seed []string  `mapstructure:"seed"`
	UI   UIConfig  `mapstructure:"ui"`
	Log  LogConfig `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme   string `mapstructure:"theme" validate:"oneof=classic neon mono"`
	NoColor bool   `mapstructure:"no_color"`
}

// LogConfig controls the slog handler. An empty File means the caller picks.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}

// Load reads defaults, an optional .env file, the config file and the
// environment. Env vars use the NAMEBOARD_ prefix (NAMEBOARD_UI_THEME=neon).
// path overrides NAMEBOARD_CONFIG, which overrides ~/.config/nameboard/config.*.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("seed", store.DefaultSeed)
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.no_color", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix("NAMEBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv("NAMEBOARD_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "nameboard"))
		}
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Seed = normalizeSeed(c.Seed)
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidConfig, err)
	}
	return nil
}

// normalizeSeed trims entries, drops blanks, and falls back to the default seed
// when nothing is left.
func normalizeSeed(seed []string) []string {
	out := lo.FilterMap(seed, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
	if len(out) == 0 {
		return append([]string(nil), store.DefaultSeed...)
	}
	return out
}
