package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"marqueetext/marquee"
)

// Config holds all application configuration
type Config struct {
	Scroll struct {
		FirstDelayMs  int `mapstructure:"first_delay_ms"`
		Speed         int `mapstructure:"speed"`
		Times         int `mapstructure:"times"`
		StartLocation int `mapstructure:"start_location"`
		TickMs        int `mapstructure:"tick_ms"`
	} `mapstructure:"scroll"`
	UI struct {
		Color string `mapstructure:"color"`
		Width int    `mapstructure:"width"`
	} `mapstructure:"ui"`
	Text struct {
		Content   string `mapstructure:"content"`
		Source    string `mapstructure:"source"`
		RefreshMs int    `mapstructure:"refresh_ms"`
	} `mapstructure:"text"`
	Log struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"`
	} `mapstructure:"log"`
}

const (
	sourceStatic     = "static"
	sourceNowPlaying = "now_playing"
)

// defaultConfig mirrors the viper defaults and backs invalid fields
func defaultConfig() Config {
	var cfg Config
	cfg.Scroll.FirstDelayMs = int(marquee.DefaultFirstDelay / time.Millisecond)
	cfg.Scroll.Speed = marquee.DefaultSpeed
	cfg.Scroll.Times = marquee.Unbounded
	cfg.Scroll.StartLocation = int(marquee.StartRight)
	cfg.Scroll.TickMs = int(marquee.DefaultTickPeriod / time.Millisecond)
	cfg.UI.Color = "2"
	cfg.UI.Width = 40
	cfg.Text.Source = sourceStatic
	cfg.Text.RefreshMs = 1000
	cfg.Log.Level = "info"
	return cfg
}

// ScrollConfig converts the scroll section into the animator's run settings
func (c Config) ScrollConfig() marquee.ScrollConfig {
	return marquee.ScrollConfig{
		FirstDelay:  time.Duration(c.Scroll.FirstDelayMs) * time.Millisecond,
		Speed:       c.Scroll.Speed,
		RepeatCount: c.Scroll.Times,
		StartSide:   marquee.StartSide(c.Scroll.StartLocation),
	}
}

// TickPeriod is the delay between animation ticks
func (c Config) TickPeriod() time.Duration {
	return time.Duration(c.Scroll.TickMs) * time.Millisecond
}

// SafeConfig wraps Config with thread-safe access
type SafeConfig struct {
	mu  sync.RWMutex
	cfg Config
}

// Get returns a copy of the current config (thread-safe read)
func (sc *SafeConfig) Get() Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.cfg
}

// Set updates the config (thread-safe write)
func (sc *SafeConfig) Set(cfg Config) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.cfg = cfg
}

var config = &SafeConfig{}

// Config file changed notification
type configReloadMsg struct{}

var configChangeChan = make(chan struct{}, 1)

// Watch for config file changes
func watchConfigCmd() tea.Cmd {
	return func() tea.Msg {
		<-configChangeChan
		return configReloadMsg{}
	}
}

// configError describes one invalid configuration field
type configError struct {
	field   string
	message string
}

func (e configError) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.message)
}

// flagKeys maps command-line flags onto config keys
var flagKeys = map[string]string{
	"text":   "text.content",
	"color":  "ui.color",
	"width":  "ui.width",
	"speed":  "scroll.speed",
	"times":  "scroll.times",
	"delay":  "scroll.first_delay_ms",
	"start":  "scroll.start_location",
	"tick":   "scroll.tick_ms",
	"source": "text.source",
	"log":    "log.file",
}

func setDefaults(v *viper.Viper) {
	d := defaultConfig()
	v.SetDefault("scroll.first_delay_ms", d.Scroll.FirstDelayMs)
	v.SetDefault("scroll.speed", d.Scroll.Speed)
	v.SetDefault("scroll.times", d.Scroll.Times)
	v.SetDefault("scroll.start_location", d.Scroll.StartLocation)
	v.SetDefault("scroll.tick_ms", d.Scroll.TickMs)
	v.SetDefault("ui.color", d.UI.Color)
	v.SetDefault("ui.width", d.UI.Width)
	v.SetDefault("text.content", d.Text.Content)
	v.SetDefault("text.source", d.Text.Source)
	v.SetDefault("text.refresh_ms", d.Text.RefreshMs)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

func initConfig(flags *pflag.FlagSet, configFile string) {
	v := viper.GetViper()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		// Set config file location following XDG standard
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check XDG_CONFIG_HOME first, fallback to ~/.config
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			homeDir, err := os.UserHomeDir()
			if err == nil {
				configHome = filepath.Join(homeDir, ".config")
			}
		}

		if configHome != "" {
			v.AddConfigPath(filepath.Join(configHome, "marquee"))
		}
	}

	// Environment variable support with MARQUEE_ prefix
	v.SetEnvPrefix("MARQUEE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file (ignore error if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file found but had errors
			fmt.Fprintf(os.Stderr, "Warning: Error reading config file: %v\n", err)
		}
	}

	// Command-line flags take precedence, but only once explicitly set
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Cannot bind flag --%s: %v\n", name, err)
			}
		}
	}

	cfg := loadConfig(v)
	errs := validateConfig(&cfg)
	printConfigWarnings(errs)
	applyDefaultsForInvalidFields(&cfg, errs)
	config.Set(cfg)

	// Watch for config file changes and live reload
	v.OnConfigChange(func(e fsnotify.Event) {
		newCfg := loadConfig(v)
		applyDefaultsForInvalidFields(&newCfg, validateConfig(&newCfg))
		config.Set(newCfg)
		// Config reloaded successfully, notify the app
		select {
		case configChangeChan <- struct{}{}:
		default:
			// Channel full, skip notification
		}
	})
	if v.ConfigFileUsed() != "" {
		v.WatchConfig()
	}
}

// loadConfig unmarshals the current viper state, falling back to defaults
func loadConfig(v *viper.Viper) Config {
	cfg := defaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error parsing config: %v\n", err)
	}
	return cfg
}

// validateConfig collects every invalid field of cfg
func validateConfig(cfg *Config) []error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, configError{field: field, message: fmt.Sprintf(format, args...)})
	}

	if cfg.Scroll.FirstDelayMs < 0 {
		add("scroll.first_delay_ms", "must not be negative (got %d)", cfg.Scroll.FirstDelayMs)
	}
	if cfg.Scroll.Speed < 1 || cfg.Scroll.Speed > 1000 {
		add("scroll.speed", "must be between 1 and 1000 (got %d)", cfg.Scroll.Speed)
	}
	if cfg.Scroll.Times < 0 {
		add("scroll.times", "must be 0 (unbounded) or positive (got %d)", cfg.Scroll.Times)
	}
	if cfg.Scroll.StartLocation != int(marquee.StartLeft) && cfg.Scroll.StartLocation != int(marquee.StartRight) {
		add("scroll.start_location", "must be 0 (left) or 1 (right) (got %d)", cfg.Scroll.StartLocation)
	}
	if cfg.Scroll.TickMs < 10 || cfg.Scroll.TickMs > 1000 {
		add("scroll.tick_ms", "must be between 10 and 1000 (got %d)", cfg.Scroll.TickMs)
	}
	if !isValidColor(cfg.UI.Color) {
		add("ui.color", "invalid color format '%s'", cfg.UI.Color)
	}
	if cfg.UI.Width < 5 || cfg.UI.Width > 500 {
		add("ui.width", "must be between 5 and 500 (got %d)", cfg.UI.Width)
	}
	if cfg.Text.Source != sourceStatic && cfg.Text.Source != sourceNowPlaying {
		add("text.source", "must be '%s' or '%s' (got '%s')", sourceStatic, sourceNowPlaying, cfg.Text.Source)
	}
	if cfg.Text.RefreshMs < 100 || cfg.Text.RefreshMs > 60000 {
		add("text.refresh_ms", "must be between 100 and 60000 (got %d)", cfg.Text.RefreshMs)
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		add("log.level", "must be debug, info, warn or error (got '%s')", cfg.Log.Level)
	}

	return errs
}

// applyDefaultsForInvalidFields resets every field named in errs to its default
func applyDefaultsForInvalidFields(cfg *Config, errs []error) {
	d := defaultConfig()
	for _, err := range errs {
		ce, ok := err.(configError)
		if !ok {
			continue
		}
		switch ce.field {
		case "scroll.first_delay_ms":
			cfg.Scroll.FirstDelayMs = d.Scroll.FirstDelayMs
		case "scroll.speed":
			cfg.Scroll.Speed = d.Scroll.Speed
		case "scroll.times":
			cfg.Scroll.Times = d.Scroll.Times
		case "scroll.start_location":
			cfg.Scroll.StartLocation = d.Scroll.StartLocation
		case "scroll.tick_ms":
			cfg.Scroll.TickMs = d.Scroll.TickMs
		case "ui.color":
			cfg.UI.Color = d.UI.Color
		case "ui.width":
			cfg.UI.Width = d.UI.Width
		case "text.source":
			cfg.Text.Source = d.Text.Source
		case "text.refresh_ms":
			cfg.Text.RefreshMs = d.Text.RefreshMs
		case "log.level":
			cfg.Log.Level = d.Log.Level
		}
	}
}

// printConfigWarnings reports invalid fields before the TUI takes the screen
func printConfigWarnings(errs []error) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr, "Warning: invalid configuration, using defaults for:")
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "  - %v\n", err)
	}
}

// isValidColor accepts ANSI codes 0-255 and #RGB / #RRGGBB hex colors
func isValidColor(color string) bool {
	if color == "" {
		return false
	}
	if color[0] == '#' {
		hex := color[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		_, err := strconv.ParseUint(hex, 16, 32)
		return err == nil
	}
	if len(color) > 3 {
		return false
	}
	for _, c := range color {
		if c < '0' || c > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(color)
	return err == nil && n <= 255
}
