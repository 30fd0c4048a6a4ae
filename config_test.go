package main

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"

	"marqueetext/marquee"
)

// TestSafeConfigConcurrency tests that SafeConfig can be safely accessed from multiple goroutines
func TestSafeConfigConcurrency(t *testing.T) {
	sc := &SafeConfig{}
	sc.Set(defaultConfig())

	var wg sync.WaitGroup

	// Start 10 writers
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cfg := defaultConfig()
				cfg.UI.Color = string(rune('0' + (id % 10)))
				cfg.UI.Width = 40 + id
				cfg.Scroll.Speed = j + 1
				sc.Set(cfg)
			}
		}(i)
	}

	// Start 10 readers
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cfg := sc.Get()
				_ = cfg.UI.Color
				_ = cfg.UI.Width
				_ = cfg.Scroll.Speed
			}
		}()
	}

	wg.Wait()
}

// TestSafeConfigGetReturnsCopy tests that Get() returns a copy, not a reference
func TestSafeConfigGetReturnsCopy(t *testing.T) {
	sc := &SafeConfig{}

	cfg1 := defaultConfig()
	cfg1.UI.Color = "1"
	cfg1.UI.Width = 45
	sc.Set(cfg1)

	retrieved1 := sc.Get()
	retrieved1.UI.Color = "2"
	retrieved1.UI.Width = 100

	retrieved2 := sc.Get()
	if retrieved2.UI.Color != "1" {
		t.Errorf("Expected color '1', got '%s'", retrieved2.UI.Color)
	}
	if retrieved2.UI.Width != 45 {
		t.Errorf("Expected width 45, got %d", retrieved2.UI.Width)
	}
}

// TestIsValidColor tests the color validation function
func TestIsValidColor(t *testing.T) {
	tests := []struct {
		name  string
		color string
		valid bool
	}{
		// ANSI codes
		{"ansi single digit", "1", true},
		{"ansi double digit", "15", true},
		{"ansi triple digit", "255", true},
		{"ansi zero", "0", true},
		{"ansi out of range", "256", false},
		{"ansi with letter", "1a", false},
		{"ansi too long", "0001", false},

		// Hex colors
		{"hex 6 digits", "#FF5733", true},
		{"hex lowercase", "#ff5733", true},
		{"hex 3 digits", "#F00", true},
		{"hex mixed case", "#Ff5733", true},
		{"hex no hash", "FF5733", false},
		{"hex invalid char", "#GG5733", false},
		{"hex wrong length", "#FF57", false},
		{"hex sign", "#+12", false},

		// Edge cases
		{"empty", "", false},
		{"just hash", "#", false},
		{"spaces", " 1 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isValidColor(tt.color)
			if result != tt.valid {
				t.Errorf("isValidColor(%q) = %v; want %v", tt.color, result, tt.valid)
			}
		})
	}
}

// TestValidateConfig tests configuration validation
func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string // expected invalid field, empty for a valid config
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"bounded times", func(c *Config) { c.Scroll.Times = 3 }, ""},
		{"left start", func(c *Config) { c.Scroll.StartLocation = 0 }, ""},
		{"now playing", func(c *Config) { c.Text.Source = sourceNowPlaying }, ""},
		{"negative delay", func(c *Config) { c.Scroll.FirstDelayMs = -1 }, "scroll.first_delay_ms"},
		{"zero speed", func(c *Config) { c.Scroll.Speed = 0 }, "scroll.speed"},
		{"negative times", func(c *Config) { c.Scroll.Times = -1 }, "scroll.times"},
		{"bad start location", func(c *Config) { c.Scroll.StartLocation = 2 }, "scroll.start_location"},
		{"tick too fast", func(c *Config) { c.Scroll.TickMs = 5 }, "scroll.tick_ms"},
		{"invalid color", func(c *Config) { c.UI.Color = "invalid" }, "ui.color"},
		{"width too small", func(c *Config) { c.UI.Width = 2 }, "ui.width"},
		{"unknown source", func(c *Config) { c.Text.Source = "stdin" }, "text.source"},
		{"refresh too fast", func(c *Config) { c.Text.RefreshMs = 10 }, "text.refresh_ms"},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			errs := validateConfig(&cfg)

			if tt.field == "" {
				if len(errs) > 0 {
					t.Errorf("Expected no errors, got %d: %v", len(errs), errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("Expected 1 error, got %d: %v", len(errs), errs)
			}
			ce, ok := errs[0].(configError)
			if !ok {
				t.Fatalf("Expected configError, got %T", errs[0])
			}
			assertEqual(t, ce.field, tt.field, "invalid field")
		})
	}
}

// TestApplyDefaultsForInvalidFields tests the full flow: validate -> apply defaults -> re-validate
func TestApplyDefaultsForInvalidFields(t *testing.T) {
	cfg := defaultConfig()
	cfg.Scroll.FirstDelayMs = -1
	cfg.Scroll.Speed = 0
	cfg.Scroll.Times = -1
	cfg.Scroll.StartLocation = 5
	cfg.Scroll.TickMs = 5
	cfg.UI.Color = "999"
	cfg.UI.Width = 2
	cfg.Text.Source = "pipe"
	cfg.Text.RefreshMs = 0
	cfg.Log.Level = "loud"
	cfg.Text.Content = "kept as is"

	errs := validateConfig(&cfg)
	if len(errs) != 10 {
		t.Fatalf("Expected 10 errors, got %d: %v", len(errs), errs)
	}

	applyDefaultsForInvalidFields(&cfg, errs)

	if newErrs := validateConfig(&cfg); len(newErrs) > 0 {
		t.Errorf("Expected no errors after applying defaults, got %d: %v", len(newErrs), newErrs)
	}
	d := defaultConfig()
	assertEqual(t, cfg.Scroll.FirstDelayMs, d.Scroll.FirstDelayMs, "first_delay_ms")
	assertEqual(t, cfg.Scroll.Speed, d.Scroll.Speed, "speed")
	assertEqual(t, cfg.Scroll.Times, d.Scroll.Times, "times")
	assertEqual(t, cfg.Scroll.StartLocation, d.Scroll.StartLocation, "start_location")
	assertEqual(t, cfg.Scroll.TickMs, d.Scroll.TickMs, "tick_ms")
	assertEqual(t, cfg.UI.Color, "2", "color")
	assertEqual(t, cfg.UI.Width, 40, "width")
	assertEqual(t, cfg.Text.Source, sourceStatic, "source")
	assertEqual(t, cfg.Text.RefreshMs, 1000, "refresh_ms")
	assertEqual(t, cfg.Log.Level, "info", "level")
	assertEqual(t, cfg.Text.Content, "kept as is", "valid fields are untouched")
}

func TestPrintConfigWarnings(t *testing.T) {
	// Just verify it doesn't panic - output goes to stderr
	printConfigWarnings([]error{
		configError{field: "ui.width", message: "must be between 5 and 500 (got 2)"},
		configError{field: "ui.color", message: "invalid color format 'notacolor'"},
	})
	printConfigWarnings(nil)
}

func TestDefaultConfigMatchesMarqueeDefaults(t *testing.T) {
	cfg := defaultConfig()
	sc := cfg.ScrollConfig()

	assertEqual(t, sc, marquee.DefaultScrollConfig(), "scroll config")
	assertEqual(t, cfg.TickPeriod(), marquee.DefaultTickPeriod, "tick period")
}

func TestLoadConfigFromYAML(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	yaml := []byte(`
scroll:
  first_delay_ms: 250
  speed: 2
  times: 3
  start_location: 0
ui:
  color: "#ff8800"
text:
  content: "breaking news"
`)
	assertNoError(t, v.ReadConfig(bytes.NewReader(yaml)))

	cfg := loadConfig(v)
	if errs := validateConfig(&cfg); len(errs) > 0 {
		t.Fatalf("Expected valid config, got %v", errs)
	}

	want := marquee.ScrollConfig{
		FirstDelay:  250 * time.Millisecond,
		Speed:       2,
		RepeatCount: 3,
		StartSide:   marquee.StartLeft,
	}
	assertEqual(t, cfg.ScrollConfig(), want, "scroll config")
	assertEqual(t, cfg.UI.Color, "#ff8800", "color")
	assertEqual(t, cfg.UI.Width, 40, "width falls back to default")
	assertEqual(t, cfg.Text.Content, "breaking news", "content")
	assertEqual(t, cfg.TickPeriod(), 20*time.Millisecond, "tick period")
}

func TestConfigErrorMessage(t *testing.T) {
	err := configError{field: "scroll.speed", message: "must be between 1 and 1000 (got 0)"}
	assertEqual(t, err.Error(), "scroll.speed: must be between 1 and 1000 (got 0)", "error text")
	assertError(t, error(err), "configError is an error")
}
