package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/ferrous/internal/equalizer"
)

const appName = "ferrous"

// Environment variables overriding file values.
const (
	EnvServerURL = "FERROUS_SERVER_URL"
	EnvLogLevel  = "FERROUS_LOG_LEVEL"
)

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Playback  PlaybackConfig  `koanf:"playback"`
	Equalizer EqualizerConfig `koanf:"equalizer"`
	Log       LogConfig       `koanf:"log"`
}

// ServerConfig holds the library server connection.
type ServerConfig struct {
	URL            string `koanf:"url" default:"http://localhost:13337" validate:"required,url"`
	TimeoutSeconds int    `koanf:"timeout_seconds" default:"10" validate:"gte=1,lte=300"`
}

// PlaybackConfig holds the initial session modes.
type PlaybackConfig struct {
	Volume         float64 `koanf:"volume" default:"0.5" validate:"gte=0,lte=1"`
	ShuffleHistory int     `koanf:"shuffle_history" default:"16" validate:"gte=0,lte=1000"`
	Shuffle        bool    `koanf:"shuffle"`
	Repeat         bool    `koanf:"repeat"`
}

// EqualizerConfig holds the initial equalizer. A preset, when set,
// overrides both gains.
type EqualizerConfig struct {
	Preset          string  `koanf:"preset"`
	LowShelfGainDB  float64 `koanf:"low_shelf_gain_db" validate:"gte=-40,lte=40"`
	LowShelfFreqHz  float64 `koanf:"low_shelf_freq_hz" default:"250" validate:"gte=20,lte=1000"`
	HighShelfGainDB float64 `koanf:"high_shelf_gain_db" validate:"gte=-40,lte=40"`
	HighShelfFreqHz float64 `koanf:"high_shelf_freq_hz" default:"4000" validate:"gte=2000,lte=20000"`
}

// LogConfig selects the log level and destination.
type LogConfig struct {
	Level  string `koanf:"level" default:"info" validate:"oneof=debug info warn warning error"`
	Output string `koanf:"output" default:"file"` // "file", "stdout", "stderr" or a path
}

// Load reads the configuration. An explicit path replaces the default
// search; otherwise the XDG config file and ./config.toml are merged, the
// local file winning.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	configPaths := getConfigPaths()
	if path != "" {
		configPaths = []string{expandPath(path)}
		if _, err := os.Stat(configPaths[0]); err != nil {
			return nil, errors.Wrap(err, "config file")
		}
	}

	for _, p := range configPaths {
		if _, err := os.Stat(p); err == nil {
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "parse %s", p)
			}
		}
	}

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "set defaults")
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	cfg.overrideFromEnv()

	cfg.Server.URL = strings.TrimSuffix(cfg.Server.URL, "/")
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if !isStandardOutput(cfg.Log.Output) {
		cfg.Log.Output = expandPath(cfg.Log.Output)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv(EnvServerURL); v != "" {
		c.Server.URL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// Validate checks field ranges and the preset name.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if c.Equalizer.Preset != "" {
		if _, ok := equalizer.FindPreset(c.Equalizer.Preset); !ok {
			return errors.Newf("invalid config: unknown equalizer preset %q", c.Equalizer.Preset)
		}
	}
	return nil
}

// Timeout returns the library request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Server.TimeoutSeconds) * time.Second
}

// Settings returns the equalizer settings, with the preset applied.
func (e EqualizerConfig) Settings() equalizer.Settings {
	s := equalizer.Settings{
		LowShelfGainDB:  e.LowShelfGainDB,
		LowShelfFreqHz:  e.LowShelfFreqHz,
		HighShelfGainDB: e.HighShelfGainDB,
		HighShelfFreqHz: e.HighShelfFreqHz,
	}.Clamped()
	if p, ok := equalizer.FindPreset(e.Preset); ok {
		s = p.ApplyTo(s)
	}
	return s
}

// LogFile returns the file logs are written to, or "" for stdout/stderr.
func (l LogConfig) LogFile() string {
	switch {
	case isStandardOutput(l.Output):
		return ""
	case l.Output == "file":
		return filepath.Join(xdg.StateHome, appName, appName+".log")
	default:
		return l.Output
	}
}

func isStandardOutput(output string) bool {
	return output == "stdout" || output == "stderr"
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/ferrous/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
