package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Nil fields are unset.
type FileConfig struct {
	Difficulty *string `toml:"difficulty"`
	Passage    *string `toml:"passage"`
	Duration   *int    `toml:"duration"`
	Lang       *string `toml:"lang"`
	LogLevel   *string `toml:"log-level"`
	LogFormat  *string `toml:"log-format"`
	LogFile    *string `toml:"log-file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an
// error; unknown keys are.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return FileConfig{}, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Template returns the commented config written by EnsureFile.
func Template() string {
	return fmt.Sprintf(`# typesprint configuration
# Uncomment a value to enable it. CLI flags and TYPESPRINT_* environment
# variables override config values.

# difficulty = "beginner"   # beginner, intermediate or advanced; empty shows the picker
# passage = ""              # Passage id (see: typesprint passages)
# duration = %d             # Test length in seconds
# lang = %q               # Interface language (en, es)
# log-level = %q        # debug, info, warn, error
# log-format = %q       # text or json
# log-file = ""             # Write logs here instead of stderr
`,
		DefaultDuration,
		DefaultLang,
		DefaultLogLevel,
		DefaultLogFormat,
	)
}

// EnsureFile writes the template to path unless a file already exists. It
// reports whether the file was created.
func EnsureFile(path string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(Template()), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	return true, nil
}
