package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "WAVESCOPE"
	EnvConfig  = "WAVESCOPE_CONFIG"
	configName = "config"
)

// Config holds static application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Window WindowConfig `mapstructure:"window"`
	Picker PickerConfig `mapstructure:"picker"`
	Render RenderConfig `mapstructure:"render"`
}

// LogConfig covers diagnostics. Timings enables dialog timing collection for the Debug menu.
type LogConfig struct {
	Level   string `mapstructure:"level"`
	JSON    bool   `mapstructure:"json"`
	Timings bool   `mapstructure:"timings"`
}

type WindowConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// PickerConfig configures the open-file dialog.
type PickerConfig struct {
	Title      string   `mapstructure:"title"`
	FilterName string   `mapstructure:"filter_name"`
	Extensions []string `mapstructure:"extensions"`
	StartDir   string   `mapstructure:"start_dir"`
}

// RenderConfig controls the repaint loop and the plot resolution.
type RenderConfig struct {
	FrameRate int     `mapstructure:"frame_rate"`
	Samples   int     `mapstructure:"samples"`
	TimeScale float64 `mapstructure:"time_scale"`
}

const (
	DefaultWidth     = 1024
	DefaultHeight    = 640
	DefaultFrameRate = 30
	DefaultSamples   = 512
	DefaultTimeScale = 1.0

	MinFrameRate = 1
	MaxFrameRate = 120
	MinSamples   = 2
	MaxSamples   = 4096
)

// Load reads configuration from defaults, an optional TOML file and the
// environment. Env overrides use the WAVESCOPE_ prefix, e.g. WAVESCOPE_LOG_LEVEL.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv(EnvConfig)
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "wavescope"))
		}
		v.SetConfigName(configName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit path that does not exist is an error, a missing default file is not
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Validate()
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.timings", true)
	v.SetDefault("window.width", DefaultWidth)
	v.SetDefault("window.height", DefaultHeight)
	v.SetDefault("picker.title", "Open File")
	v.SetDefault("picker.filter_name", "text")
	v.SetDefault("picker.extensions", []string{"txt"})
	v.SetDefault("picker.start_dir", ".")
	v.SetDefault("render.frame_rate", DefaultFrameRate)
	v.SetDefault("render.samples", DefaultSamples)
	v.SetDefault("render.time_scale", DefaultTimeScale)
}

// Validate clamps out-of-range values to usable ones.
func (c *Config) Validate() {
	if c.Window.Width <= 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = DefaultHeight
	}
	if c.Render.FrameRate < MinFrameRate {
		c.Render.FrameRate = MinFrameRate
	}
	if c.Render.FrameRate > MaxFrameRate {
		c.Render.FrameRate = MaxFrameRate
	}
	if c.Render.Samples < MinSamples {
		c.Render.Samples = MinSamples
	}
	if c.Render.Samples > MaxSamples {
		c.Render.Samples = MaxSamples
	}
	if c.Render.TimeScale <= 0 {
		c.Render.TimeScale = DefaultTimeScale
	}
	if c.Picker.FilterName == "" && len(c.Picker.Extensions) > 0 {
		c.Picker.FilterName = strings.Join(c.Picker.Extensions, ", ")
	}
	for i, ext := range c.Picker.Extensions {
		c.Picker.Extensions[i] = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	}
}
