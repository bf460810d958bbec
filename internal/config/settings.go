package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/verte-zerg/typesprint/internal/i18n"
	"github.com/verte-zerg/typesprint/internal/model"
)

// Defaults. The language default follows $LANG and falls back to DefaultLang.
const (
	DefaultDuration  = 60
	DefaultLang      = "en"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

const envPrefix = "TYPESPRINT"

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Log holds logging settings.
type Log struct {
	Level  string
	Format string
	File   string
}

// Config is the resolved configuration for one run.
type Config struct {
	Settings model.Settings
	Log      Log
}

// RegisterFlags adds the settings flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("difficulty", "d", "", "passage difficulty (beginner, intermediate, advanced)")
	fs.StringP("passage", "p", "", "passage id")
	fs.Int("duration", DefaultDuration, "test duration in seconds")
	fs.StringP("lang", "l", "", "interface language (en, es; default from $LANG)")
	fs.String("log-level", DefaultLogLevel, "log level (debug, info, warn, error)")
	fs.String("log-format", DefaultLogFormat, "log format (text, json)")
	fs.String("log-file", "", fmt.Sprintf("write logs to this file instead of stderr (e.g. %s)", DefaultLogPath()))
}

// Load resolves settings from flags, TYPESPRINT_* env vars, the config file
// at path and defaults, in that order of precedence.
func Load(fs *pflag.FlagSet, path string) (Config, error) {
	v := viper.New()
	v.SetDefault("difficulty", "")
	v.SetDefault("passage", "")
	v.SetDefault("duration", DefaultDuration)
	v.SetDefault("lang", i18n.Match(os.Getenv("LANG")))
	v.SetDefault("log-level", DefaultLogLevel)
	v.SetDefault("log-format", DefaultLogFormat)
	v.SetDefault("log-file", "")

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := LoadConfig(path); err != nil {
			return Config{}, err
		}
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("toml")
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := Config{
		Settings: model.Settings{
			Difficulty: model.Difficulty(strings.ToLower(strings.TrimSpace(v.GetString("difficulty")))),
			PassageID:  strings.TrimSpace(v.GetString("passage")),
			Duration:   v.GetInt("duration"),
			Lang:       strings.ToLower(strings.TrimSpace(v.GetString("lang"))),
		},
		Log: Log{
			Level:  strings.ToLower(v.GetString("log-level")),
			Format: strings.ToLower(v.GetString("log-format")),
			File:   v.GetString("log-file"),
		},
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks resolved values.
func Validate(cfg Config) error {
	s := cfg.Settings
	if s.Difficulty != "" && !s.Difficulty.Valid() {
		return fmt.Errorf("--difficulty must be one of beginner, intermediate, advanced")
	}
	if s.Duration < 1 {
		return fmt.Errorf("--duration must be >= 1")
	}
	if !slices.Contains(i18n.Supported(), s.Lang) {
		return fmt.Errorf("--lang must be one of %s", strings.Join(i18n.Supported(), ", "))
	}
	if !slices.Contains(logLevels, cfg.Log.Level) {
		return fmt.Errorf("--log-level must be one of %s", strings.Join(logLevels, ", "))
	}
	if !slices.Contains(logFormats, cfg.Log.Format) {
		return fmt.Errorf("--log-format must be one of %s", strings.Join(logFormats, ", "))
	}
	return nil
}
